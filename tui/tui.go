// Package tui implements an interactive browser for the entries of a homepage.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/scholarpage/scholarpage/build"
)

// Run loads the inputs described by opts and browses them until the user quits.
func Run(opts build.Options) error {
	in, err := build.Load(opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newBubble(in, opts), tea.WithAltScreen()).Run()
	return err
}
