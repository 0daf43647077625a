package tui

type state int

const (
	listState state = iota
	detailState
)
