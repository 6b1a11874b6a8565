package src

// Queue is a FIFO queue on a singly linked chain. front and rear are nil
// together; rear.next is always nil.
// The zero value is an empty queue ready to use.
type Queue struct {
	front *node
	rear  *node
	alloc allocFunc
}

var _ Container = (*Queue)(nil)

func NewQueue() *Queue {
	return new(Queue)
}

// Enqueue appends value after the rear.
func (q *Queue) Enqueue(value int) error {
	n, err := allocNode(q.alloc, value)
	if err != nil {
		return err
	}
	if q.rear == nil {
		q.front = n
	} else {
		q.rear.next = n
	}
	q.rear = n
	return nil
}

// Dequeue removes and returns the front value.
func (q *Queue) Dequeue() (int, error) {
	if q.front == nil {
		return 0, ErrEmptyContainer
	}
	n := q.front
	q.front = n.next
	// queue became empty
	if q.front == nil {
		q.rear = nil
	}
	n.free()
	return n.value, nil
}

func (q *Queue) Size() int {
	return chainLen(q.front)
}

func (q *Queue) IsEmpty() bool {
	return q.front == nil
}

// InsertAtPosition places value at 0-based position, which may equal Size()
// to append at the rear.
func (q *Queue) InsertAtPosition(value, position int) error {
	if position < 0 || position > q.Size() {
		return ErrInvalidPosition
	}
	n, err := allocNode(q.alloc, value)
	if err != nil {
		return err
	}
	if position == 0 {
		n.next = q.front
		q.front = n
		if q.rear == nil {
			q.rear = n
		}
		return nil
	}
	prev := chainAt(q.front, position-1)
	n.next = prev.next
	prev.next = n
	if n.next == nil {
		q.rear = n
	}
	return nil
}

// DeleteAtPosition removes the node at 0-based position.
func (q *Queue) DeleteAtPosition(position int) error {
	if position < 0 || position >= q.Size() {
		return ErrInvalidPosition
	}
	var prev *node
	curr := q.front
	for i := 0; i < position; i++ {
		prev = curr
		curr = curr.next
	}
	if prev == nil {
		q.front = curr.next
	} else {
		prev.next = curr.next
	}
	if curr == q.rear {
		q.rear = prev
	}
	curr.free()
	return nil
}

// Clear releases every node.
func (q *Queue) Clear() {
	chainFree(q.front)
	q.front = nil
	q.rear = nil
}

// Entries lists the queue from front to rear without changing it.
func (q *Queue) Entries() ([]Entry, error) {
	if q.IsEmpty() {
		return nil, ErrEmptyContainer
	}
	return chainEntries(q.front), nil
}

// Values returns the values from front to rear.
func (q *Queue) Values() []int {
	return chainValues(q.front)
}

func (q *Queue) Insert(value int) error {
	return q.Enqueue(value)
}

func (q *Queue) Remove() (int, error) {
	return q.Dequeue()
}

func (q *Queue) Kind() string {
	return KIND_QUEUE
}
