package tui

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geomask/internal/raster"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := m.width
	if contentWidth < 10 {
		contentWidth = 10
	}

	header := lipgloss.NewStyle().Width(contentWidth).Render(
		titleStyle.Render(" geomask ─ mask preview "))

	canvas := renderMask(m.mask, m.inverted, contentWidth, contentHeight)
	body := lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).Render(canvas)

	// metadata popup overlays the map column
	if m.showMeta {
		if data, err := json.MarshalIndent(m.meta, "", "  "); err == nil {
			maxW := contentWidth / 2
			if maxW < 24 {
				maxW = 24
			}
			box := boxStyle.MaxWidth(maxW).Render(string(data))
			body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
		}
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys)))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderMask paints the mask onto a 2x4-per-cell braille micro-grid,
// nearest mask cell per micro-pixel. Mask row 0 stays the top row.
func renderMask(mk raster.Mask, inverted bool, w, h int) string {
	br := newBrailleBuf(w, h)
	wMic, hMic := w*2, h*4
	for yMic := 0; yMic < hMic; yMic++ {
		row := yMic * mk.H / hMic
		for xMic := 0; xMic < wMic; xMic++ {
			col := xMic * mk.W / wMic
			v := mk.At(row, col)
			if inverted {
				v = 1 - v
			}
			if v == 1 {
				br.setPixel(xMic, yMic)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}
