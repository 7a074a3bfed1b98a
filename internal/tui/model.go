// Package tui renders a finished mask in the terminal on a braille
// micro-grid. It is display only: the written artifacts are never
// touched.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"geomask/internal/output"
	"geomask/internal/raster"
)

type Model struct {
	width  int
	height int

	mask raster.Mask
	meta output.Meta

	inverted bool
	showMeta bool

	keys keyMap
	help help.Model

	status string
}

// New builds a preview for an already written mask and its metadata.
func New(m raster.Mask, meta output.Meta) Model {
	return Model{
		mask:   m,
		meta:   meta,
		keys:   defaultKeys(),
		help:   help.New(),
		status: fmt.Sprintf("mask %dx%d", m.W, m.H),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Invert):
			m.inverted = !m.inverted
			m.status = fmt.Sprintf("display inverted: %v", m.inverted)
		case key.Matches(msg, m.keys.Meta):
			m.showMeta = !m.showMeta
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}
