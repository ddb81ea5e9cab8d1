// Package report renders the fixed-width text reports printed by the ETREE
// commands: styled headings and outcome lines, aligned field blocks and
// tables.
package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors of the outcome and heading styles.
var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorHead = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

// Styles applied by the Render helpers.
var (
	passStyle    = lipgloss.NewStyle().Foreground(colorPass)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	failStyle    = lipgloss.NewStyle().Foreground(colorFail)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMute)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHead)
)

const separator = "------------------------------------------------------------"

// RenderPass renders text with pass (green) styling
func RenderPass(s string) string {
	return passStyle.Render(s)
}

// RenderWarn renders text with warning (yellow) styling
func RenderWarn(s string) string {
	return warnStyle.Render(s)
}

// RenderFail renders text with fail (red) styling
func RenderFail(s string) string {
	return failStyle.Render(s)
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderHeading renders a report heading in upper case.
func RenderHeading(s string) string {
	return headingStyle.Render(strings.ToUpper(s))
}

// RenderSeparator renders the separator line under a heading.
func RenderSeparator() string {
	return mutedStyle.Render(separator)
}
