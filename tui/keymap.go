package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap holds the bindings of every state; ShortHelp and FullHelp show
// only those that apply to the current one.
type keymap struct {
	state state

	quit, forceQuit,
	selectOne, back,
	openPage, openVideo,
	showHelp key.Binding
}

func (k *keymap) setState(s state) {
	k.state = s
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		selectOne: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		openPage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open page"),
		),
		openVideo: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "open video"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) help() []key.Binding {
	switch k.state {
	case detailState:
		return []key.Binding{k.back, k.openPage, k.openVideo, k.quit}
	default:
		return []key.Binding{k.selectOne, k.openPage, k.openVideo}
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return append(k.help(), k.showHelp)
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.help(), {k.showHelp, k.forceQuit}}
}

// listKeys are shown in the help of the entry list next to its own bindings.
func (k *keymap) listKeys() []key.Binding {
	return k.help()
}
