package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucontainer"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func createContainer() *ucontainer.Container {
	c := ucontainer.New(uversion.UE4(18), false)
	n := c.Names().Name
	engine := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("Package"), ObjectName: n("/Script/Engine")})
	actor := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("Class"), OuterIndex: engine, ObjectName: n("Actor")})
	for _, objectName := range []string{"Default__Actor", "Actor_1", "Actor_2"} {
		c.AddExport(&uexport.NormalExport{
			BaseExport: uexport.BaseExport{ClassIndex: actor, ObjectName: n(objectName)},
			Properties: []uproperty.Property{
				&uproperty.IntProperty{Header: uproperty.Header{Name: n("Health")}, Value: 100},
			},
		})
	}
	return c
}

func press(b Browser, key string) Browser {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	model, _ := b.Update(msg)
	return model.(Browser)
}

func TestCreateExportRows(t *testing.T) {
	rows := CreateExportRows(createContainer())
	require.Len(t, rows, 3)
	assert.Equal(t, "Default__Actor", rows[0].ObjectName)
	assert.Equal(t, "Actor", rows[0].ClassType)
	assert.Equal(t, uexport.KindNormal, rows[0].Kind)
	assert.Equal(t, []string{"Health: IntProperty"}, rows[0].Properties)
}

func TestBrowser_Update(t *testing.T) {
	b := CreateBrowser("Actor.uasset", createContainer())
	assert.Equal(t, 0, b.Cursor())

	b = press(b, "up")
	assert.Equal(t, 0, b.Cursor())
	b = press(b, "down")
	b = press(b, "j")
	assert.Equal(t, 2, b.Cursor())
	b = press(b, "j")
	assert.Equal(t, 2, b.Cursor())
	b = press(b, "k")
	assert.Equal(t, 1, b.Cursor())
	b = press(b, "g")
	assert.Equal(t, 0, b.Cursor())
	b = press(b, "G")
	assert.Equal(t, 2, b.Cursor())

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowser_View(t *testing.T) {
	b := CreateBrowser("Actor.uasset", createContainer())
	b = press(b, "j")
	view := b.View()
	assert.Contains(t, view, "Actor.uasset")
	assert.Contains(t, view, ">   2 Actor_1 (Actor)")
	assert.Contains(t, view, "Health: IntProperty")

	model, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	view = model.(Browser).View()
	assert.Contains(t, view, "Actor_1")
	assert.NotContains(t, view, "Actor_2 (Actor)")

	empty := CreateBrowser("Empty.uasset", ucontainer.New(uversion.UE4(18), false))
	assert.Contains(t, empty.View(), "No exports")
}
