package src

// ----------------------------- base interface -------------------------

type empty interface {
	IsEmpty() bool
}

type length interface {
	Size() int
}

// ----------------------------- container interface -------------------------

// Container is the positional linked container behind both programs.
// Insert and Remove are enqueue/dequeue on a queue and push/pop on a stack.
// Positions are 0-based, counted from the queue front or the stack top.
type Container interface {
	empty
	length
	Kind() string
	Insert(value int) error
	Remove() (int, error)
	InsertAtPosition(value, position int) error
	DeleteAtPosition(position int) error
	Clear()
	Entries() ([]Entry, error)
}
