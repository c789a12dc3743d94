package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Render the popup with its style without forcing width/height, keep it tight
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width > 0 && modalW > width-6 { // keep a small margin
		styledPopup = lipgloss.NewStyle().MaxWidth(width - 6).Render(styledPopup)
		modalW = lipgloss.Width(styledPopup)
	}
	if height > 0 && modalH > height-4 {
		styledPopup = lipgloss.NewStyle().MaxHeight(height - 4).Render(styledPopup)
		modalH = lipgloss.Height(styledPopup)
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Grey out the base layer so the modal stands out, then splice the
	// modal lines into it. Styled base lines would bleed through the
	// splice, so the base is reduced to plain dim text first.
	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	modalLines := strings.Split(styledPopup, "\n")
	for i, modalLine := range modalLines {
		row := y + i
		base := []rune(ansiRE.ReplaceAllString(baseLines[row], ""))
		var left string
		if len(base) > x {
			left = string(base[:x])
		} else {
			left = string(base) + strings.Repeat(" ", x-len(base))
		}
		right := ""
		if len(base) > x+modalW {
			right = string(base[x+modalW:])
		}
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		baseLines[row] = dim.Render(left) + modalLine + dim.Render(right)
	}

	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}
