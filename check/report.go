package check

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Format renders the report as plain text wrapped at width columns.
func (r *Report) Format(width int) string {
	var b strings.Builder

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s (%d)\n", title, len(lines))
		for _, line := range lines {
			wrapped := wordwrap.String(line, max(width-4, 20))
			b.WriteString(indent.String("- "+strings.ReplaceAll(wrapped, "\n", "\n  "), 2))
			b.WriteByte('\n')
		}
	}

	missing := make([]string, 0, len(r.Missing))
	for _, w := range r.Missing {
		missing = append(missing, w.String())
	}
	section("Missing fields", missing)

	unlinked := make([]string, 0, len(r.Unlinked))
	for _, u := range r.Unlinked {
		line := fmt.Sprintf("[%s] %s has no homepage", u.Entry, u.Name)
		if u.Suggestion != "" {
			line += fmt.Sprintf(", did you mean %q?", u.Suggestion)
		}
		unlinked = append(unlinked, line)
	}
	section("Co-authors without links", unlinked)

	videos := make([]string, 0, len(r.Videos))
	for _, v := range r.Videos {
		videos = append(videos, fmt.Sprintf("[%s] %s is not a recognized video and is shown as a link", v.Entry, v.URL))
	}
	section("Videos", videos)

	assets := make([]string, 0, len(r.Assets))
	for _, a := range r.Assets {
		assets = append(assets, fmt.Sprintf("[%s] %s does not exist", a.Entry, a.Path))
	}
	section("Assets", assets)

	section("Document", r.Document)

	return strings.TrimSuffix(b.String(), "\n")
}
