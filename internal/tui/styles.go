// SPDX-License-Identifier: EPL-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Styles colours the parts of a plot. The zero value renders plain text.
type Styles struct {
	Trace  lipgloss.Style
	Zero   lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
	Title  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles adapts to light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Trace: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1F6FB2", Dark: "#5FAFFF"}),
		Zero: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"}),
		Axis: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"}),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"}),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}),
	}
}

// PlainStyles leaves every cell unstyled.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Trace:  plain,
		Zero:   plain,
		Axis:   plain,
		Label:  plain,
		Title:  plain,
		Status: plain,
		Error:  plain,
	}
}
