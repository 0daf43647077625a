package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case notification, clearNotification:
		return b, b.notifier.Update(msg)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case listState:
			return b.updateList(msg)
		case detailState:
			return b.updateDetail(msg)
		}
	}

	if b.state == listState {
		var cmd tea.Cmd
		b.entriesC, cmd = b.entriesC.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *bubble) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// typing a filter must not trigger shortcuts
	if b.entriesC.FilterState() == list.Filtering {
		var cmd tea.Cmd
		b.entriesC, cmd = b.entriesC.Update(msg)
		return b, cmd
	}

	switch {
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.selectOne):
		if item := b.current(); item != nil {
			b.selected = item
			b.setState(detailState)
		}
		return b, nil
	case key.Matches(msg, b.keymap.openPage):
		return b, b.open(b.current(), (*listItem).pageURL)
	case key.Matches(msg, b.keymap.openVideo):
		return b, b.open(b.current(), (*listItem).videoURL)
	}

	var cmd tea.Cmd
	b.entriesC, cmd = b.entriesC.Update(msg)
	return b, cmd
}

func (b *bubble) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.back):
		b.selected = nil
		b.setState(listState)
	case key.Matches(msg, b.keymap.openPage):
		return b, b.open(b.selected, (*listItem).pageURL)
	case key.Matches(msg, b.keymap.openVideo):
		return b, b.open(b.selected, (*listItem).videoURL)
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}
	return b, nil
}

// open launches the link picked from item, reporting the outcome as a notification.
func (b *bubble) open(item *listItem, link func(*listItem) string) tea.Cmd {
	if item == nil {
		return nil
	}

	url := link(item)
	if url == "" {
		return notify("no link")
	}

	return func() tea.Msg {
		if err := opener(url); err != nil {
			return notification(err.Error())
		}
		return notification("opened " + url)
	}
}
