package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Video
	Book
	Link
	File
	Award
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "😵",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・ω・)",
		squares: "🟦",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "▶",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟪",
	},
	Book: {
		emoji:   "📚",
		nerd:    "",
		plain:   "#",
		kaomoji: "φ(．．)",
		squares: "🟫",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(っ˘ω˘ς)",
		squares: "⬜",
	},
	File: {
		emoji:   "📄",
		nerd:    "",
		plain:   ">",
		kaomoji: "(￣▽￣)ノ",
		squares: "⬛",
	},
	Award: {
		emoji:   "🏆",
		nerd:    "",
		plain:   "*",
		kaomoji: "\\(^o^)/",
		squares: "🟧",
	},
}
