package action

// An Action is anything that can be performed, explained, and possibly
// undone.
type Action interface {
	Do()

	Undo()
	Undoable() bool

	Explain() string
}
