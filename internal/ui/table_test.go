package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Section", Width: 20},
		{Title: "Title", Width: 30},
	}
	rows := []table.Row{
		{"gpu", "GPU Information"},
		{"wifi", "Wi-Fi Information"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Section")
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "gpu")
	assert.Contains(t, view, "Wi-Fi Information")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Name", Width: 20}}, []table.Row{}).View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Theme", Width: 10},
		{Title: "Accent", Width: 10},
	}
	rows := [][]string{
		{"dark", "#4fc3f7"},
		{"hacker", "#00cc00"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Theme")
	assert.Contains(t, output, "dark")
	assert.Contains(t, output, "hacker")
	assert.Contains(t, output, "#00cc00")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil))
}
