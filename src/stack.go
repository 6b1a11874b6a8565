package src

// Stack is a LIFO stack on a singly linked chain headed by top.
// The zero value is an empty stack ready to use.
type Stack struct {
	top   *node
	alloc allocFunc
}

var _ Container = (*Stack)(nil)

func NewStack() *Stack {
	return new(Stack)
}

func (s *Stack) Push(value int) error {
	n, err := allocNode(s.alloc, value)
	if err != nil {
		return err
	}
	s.pushNode(n)
	return nil
}

func (s *Stack) Pop() (int, error) {
	n := s.popNode()
	if n == nil {
		return 0, ErrEmptyContainer
	}
	n.free()
	return n.value, nil
}

func (s *Stack) pushNode(n *node) {
	n.next = s.top
	s.top = n
}

// popNode unlinks the top node and hands it to the caller, or returns nil.
func (s *Stack) popNode() *node {
	n := s.top
	if n == nil {
		return nil
	}
	s.top = n.next
	n.next = nil
	return n
}

// moveTop transfers the top node of s onto dst.
func (s *Stack) moveTop(dst *Stack) {
	if n := s.popNode(); n != nil {
		dst.pushNode(n)
	}
}

func (s *Stack) Size() int {
	return chainLen(s.top)
}

func (s *Stack) IsEmpty() bool {
	return s.top == nil
}

// InsertAtPosition splices value in at 0-based depth position by walking the
// chain. Position 0 is a push; Size() places it at the bottom.
func (s *Stack) InsertAtPosition(value, position int) error {
	if position < 0 || position > s.Size() {
		return ErrInvalidPosition
	}
	if position == 0 {
		return s.Push(value)
	}
	n, err := allocNode(s.alloc, value)
	if err != nil {
		return err
	}
	prev := chainAt(s.top, position-1)
	n.next = prev.next
	prev.next = n
	return nil
}

// DeleteAtPosition removes the node at 0-based depth position. The nodes above
// it are parked on an auxiliary stack and pushed back afterwards.
func (s *Stack) DeleteAtPosition(position int) error {
	if position < 0 || position >= s.Size() {
		return ErrInvalidPosition
	}
	aux := new(Stack)
	for i := 0; i < position; i++ {
		s.moveTop(aux)
	}
	s.popNode().free()
	for !aux.IsEmpty() {
		aux.moveTop(s)
	}
	return nil
}

// InsertAtNPosition places value at 0-based depth position by moving the whole
// stack onto an auxiliary stack and back. The new node joins the auxiliary
// stack just before the node at position, or last when position is Size().
func (s *Stack) InsertAtNPosition(value, position int) error {
	size := s.Size()
	if position < 0 || position > size {
		return ErrInvalidPosition
	}
	n, err := allocNode(s.alloc, value)
	if err != nil {
		return err
	}
	aux := new(Stack)
	for i := 0; i < size; i++ {
		if i == position {
			aux.pushNode(n)
		}
		s.moveTop(aux)
	}
	if position == size {
		aux.pushNode(n)
	}
	for !aux.IsEmpty() {
		aux.moveTop(s)
	}
	return nil
}

// Clear releases every node.
func (s *Stack) Clear() {
	chainFree(s.top)
	s.top = nil
}

// Entries lists the stack from top to bottom without changing it.
func (s *Stack) Entries() ([]Entry, error) {
	if s.IsEmpty() {
		return nil, ErrEmptyContainer
	}
	return chainEntries(s.top), nil
}

// Values returns the values from top to bottom.
func (s *Stack) Values() []int {
	return chainValues(s.top)
}

func (s *Stack) Insert(value int) error {
	return s.Push(value)
}

func (s *Stack) Remove() (int, error) {
	return s.Pop()
}

func (s *Stack) Kind() string {
	return KIND_STACK
}
