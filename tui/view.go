package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/scholarpage/scholarpage/color"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/page"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/video"
)

var (
	listPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor)
)

// linkFields are the entry fields listed in the detail view, in page order.
var linkFields = []string{"html", "pdf", "supp", "video", "poster", "code", "slides"}

func (b *bubble) View() string {
	var output string

	switch b.state {
	case listState:
		output = listPaddingStyle.Render(b.entriesC.View())
	case detailState:
		output = b.viewDetail()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *bubble) viewDetail() string {
	if b.selected == nil {
		return ""
	}

	var lines []string
	switch e := b.selected.internal.(type) {
	case *entry:
		lines = b.entryLines(e)
	case *site.Product:
		lines = b.productLines(e)
	}

	return b.renderLines(lines)
}

func (b *bubble) entryLines(e *entry) []string {
	glyph := icon.Book
	if e.talk {
		glyph = icon.File
	}

	lines := []string{
		titleStyle.Render(icon.Get(glyph) + " " + e.Field("title").OrElse(e.Key)),
		"",
		b.wrap(page.AuthorList(e.Authors, ", ")),
		style.Italic(strings.TrimSpace(page.Venue(e.Entry) + " " + e.Get("year"))),
	}
	if award, ok := e.Field("award").Get(); ok {
		lines = append(lines, style.Fg(color.Red)(icon.Get(icon.Award)+" "+award))
	}

	lines = append(lines, "")
	for _, f := range linkFields {
		if url, ok := e.Field(f).Get(); ok {
			lines = append(lines, fmt.Sprintf("%s %-7s %s", icon.Get(icon.Link), f, style.Fg(color.Cyan)(url)))
		}
	}

	if raw, ok := e.Field("video").Get(); ok {
		lines = append(lines, b.videoLines(strings.TrimSpace(raw))...)
	}

	return append(lines, "", style.Faint(e.Key))
}

func (b *bubble) productLines(p *site.Product) []string {
	lines := []string{
		titleStyle.Render(p.Name),
		"",
		b.wrap(p.Desc),
	}
	for _, c := range p.Contrib {
		lines = append(lines, b.wrap("- "+c))
	}
	if p.Link != "" {
		lines = append(lines, "", fmt.Sprintf("%s %s", icon.Get(icon.Link), style.Fg(color.Cyan)(p.Link)))
	}
	if raw := strings.TrimSpace(p.Video); raw != "" {
		lines = append(lines, b.videoLines(raw)...)
	}
	return lines
}

func (b *bubble) videoLines(raw string) []string {
	src := video.Classify(raw)
	return []string{
		"",
		fmt.Sprintf("%s %s %s", icon.Get(icon.Video), style.Bold(src.Kind().String()), src.Target()),
		"",
		style.Faint(b.wrap(video.Render(raw, b.opts.Video))),
	}
}

func (b *bubble) wrap(s string) string {
	x, _ := paddingStyle.GetFrameSize()
	width := b.width - x
	if width <= 0 {
		return s
	}
	return wrap.String(s, width)
}

func (b *bubble) renderLines(lines []string) string {
	content := strings.Join(lines, "\n")
	if pad := b.height - lipgloss.Height(content) - 3; pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	content += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(content)
}
