package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/scholarpage/scholarpage/build"
	"github.com/scholarpage/scholarpage/open"
)

// opener launches a URL in the browser.
var opener = open.Start

type bubble struct {
	state  state
	keymap *keymap

	entriesC list.Model
	helpC    help.Model
	notifier notifier

	// selected is the item shown in detail state.
	selected *listItem

	opts          build.Options
	width, height int
}

func newBubble(in *build.Inputs, opts build.Options) *bubble {
	b := &bubble{
		keymap: newKeymap(),
		helpC:  help.New(),
		opts:   opts,
	}

	var items []list.Item
	for _, e := range in.Publications {
		items = append(items, &listItem{internal: &entry{Entry: e}})
	}
	for _, e := range in.Talks {
		items = append(items, &listItem{internal: &entry{Entry: e, talk: true}})
	}
	for i := range in.Site.Products {
		items = append(items, &listItem{internal: &in.Site.Products[i]})
	}

	b.entriesC = list.New(items, list.NewDefaultDelegate(), 0, 0)
	b.entriesC.Title = in.Site.Name.Full()
	b.entriesC.SetStatusBarItemName("entry", "entries")
	b.entriesC.AdditionalShortHelpKeys = b.keymap.listKeys
	b.entriesC.AdditionalFullHelpKeys = b.keymap.listKeys

	b.setState(listState)
	return b
}

func (b *bubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height
	x, y := listPaddingStyle.GetFrameSize()
	b.entriesC.SetSize(width-x, height-y)
	b.helpC.Width = width
}

func (b *bubble) current() *listItem {
	if b.state == detailState {
		return b.selected
	}
	item, ok := b.entriesC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}
	return item
}

var _ help.KeyMap = (*keymap)(nil)
