package tui

type state int

const (
	splashState state = iota
	sectionsState
	loadingState
	gridState
	lightboxState
	contactState
	errorState
)
