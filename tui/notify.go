package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scholarpage/scholarpage/style"
)

type notification string

type clearNotification struct{}

// notifier shows a short message next to the help line for a few seconds.
type notifier struct {
	text string
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notification(text)
	}
}

func (n *notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notification:
		n.text = string(msg)
		return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearNotification{}
		})
	case clearNotification:
		n.text = ""
	}
	return nil
}

func (n *notifier) View(content string) string {
	if n.text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(n.text)
	return strings.Join(lines, "\n")
}
