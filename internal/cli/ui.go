package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/layoutrail/pkg/platform"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - tags
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleID  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Width(8)
	styleTag = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconInfo = "›"

// =============================================================================
// Printer
// =============================================================================

// printer writes styled lines to one stream. Violations never go through
// it; they are written unstyled so other tools can parse them.
type printer struct {
	w io.Writer
}

func (c *CLI) ui() printer {
	return printer{w: c.Out}
}

// title prints a section heading.
func (p printer) title(s string) {
	fmt.Fprintln(p.w, StyleTitle.Render(s))
}

// keyValue prints a labeled value.
func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

// profile prints one platform profile on a single line.
func (p printer) profile(id string, prof platform.Profile, tags []string) {
	line := "  " + styleID.Render(id) + " " +
		StyleNumber.Render(fmt.Sprintf("%gx%g", prof.WidthPx, prof.HeightPx)) +
		StyleDim.Render(fmt.Sprintf("  top %g · bottom %g · left %g · right %g",
			prof.TopPx, prof.BottomPx, prof.LeftPx, prof.RightPx))
	if len(tags) > 0 {
		line += " " + StyleDim.Render(iconInfo) + " " + styleTag.Render(strings.Join(tags, ", "))
	}
	fmt.Fprintln(p.w, line)
}

// newline prints an empty line.
func (p printer) newline() {
	fmt.Fprintln(p.w)
}
