// SPDX-License-Identifier: EPL-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PanLeft   key.Binding
	PanRight  key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Reset     key.Binding
	ScaleDown key.Binding
	ScaleUp   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.Reset, k.ScaleDown, k.ScaleUp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight},
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.ScaleDown, k.ScaleUp},
		{k.Quit},
	}
}

var keys = keyMap{
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "pan left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "pan right"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("up", "+", "="),
		key.WithHelp("↑/+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("down", "-"),
		key.WithHelp("↓/-", "zoom out"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "full view"),
	),
	ScaleDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "scale -"),
	),
	ScaleUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "scale +"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
