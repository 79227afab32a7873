package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucontainer"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
)

type (
	// ExportRow is what the browser shows of one export.
	ExportRow struct {
		ObjectName   string
		ClassType    string
		Kind         uexport.Kind
		SerialOffset int64
		SerialSize   int64
		Properties   []string
		Fallback     error
	}
	Browser struct {
		title  string
		rows   []ExportRow
		cursor int
		// height is the number of list lines shown, 0 shows everything
		height int
	}
)

func CreateExportRows(c *ucontainer.Container) []ExportRow {
	return lo.Map(c.Exports, func(export uexport.Export, i int) ExportRow {
		base := export.Base()
		classType, err := c.ResolveClassName(base.ClassIndex)
		if err != nil {
			classType = "?"
		}
		row := ExportRow{
			ObjectName:   base.ObjectName.String(),
			ClassType:    classType,
			Kind:         uasset.ExportKind(export),
			SerialOffset: base.SerialOffset,
			SerialSize:   base.SerialSize,
			Fallback:     c.Fallbacks[i],
		}
		if normalized, ok := export.(uexport.Normalized); ok {
			row.Properties = lo.Map(normalized.Normal().Properties, func(p uproperty.Property, _ int) string {
				return fmt.Sprintf("%s: %s", p.Base().Name.String(), p.TypeName())
			})
		}
		return row
	})
}

func CreateBrowser(title string, c *ucontainer.Container) Browser {
	return Browser{
		title: title,
		rows:  CreateExportRows(c),
	}
}

func (b Browser) Cursor() int {
	return b.cursor
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// the detail pane takes the other half
		b.height = msg.Height / 2
		if b.height < 1 {
			b.height = 1
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.rows)-1 {
				b.cursor++
			}
		case "home", "g":
			b.cursor = 0
		case "end", "G":
			if len(b.rows) > 0 {
				b.cursor = len(b.rows) - 1
			}
		}
	}
	return b, nil
}

func (b Browser) View() string {
	sb := strings.Builder{}
	sb.WriteString("ASSET SAVIOR\n\n")
	sb.WriteString(b.title + "\n\n")
	if len(b.rows) == 0 {
		sb.WriteString("No exports\n")
		return sb.String()
	}

	start, end := 0, len(b.rows)
	if b.height > 0 && b.height < len(b.rows) {
		start = b.cursor - b.height/2
		if start < 0 {
			start = 0
		}
		if start > len(b.rows)-b.height {
			start = len(b.rows) - b.height
		}
		end = start + b.height
	}
	for i := start; i < end; i++ {
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		row := b.rows[i]
		sb.WriteString(fmt.Sprintf("%s%3d %s (%s)\n", marker, i+1, row.ObjectName, row.ClassType))
	}

	row := b.rows[b.cursor]
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Class: %s\n", row.ClassType))
	sb.WriteString(fmt.Sprintf("Codec: %s\n", row.Kind))
	sb.WriteString(fmt.Sprintf("Serial offset: %d\n", row.SerialOffset))
	sb.WriteString(fmt.Sprintf("Serial size: %d\n", row.SerialSize))
	if row.Fallback != nil {
		sb.WriteString(fmt.Sprintf("Kept as raw bytes: %s\n", row.Fallback))
	}
	for _, property := range row.Properties {
		sb.WriteString("  " + property + "\n")
	}
	sb.WriteString("\nj/k to move, q to quit\n")
	return sb.String()
}
