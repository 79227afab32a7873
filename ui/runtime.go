package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucontainer"
)

func Start(title string, c *ucontainer.Container) error {
	browser := CreateBrowser(title, c)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error running browser")
	}
	return nil
}
