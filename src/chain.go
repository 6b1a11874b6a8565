package src

// allocFunc hands out a fresh, unlinked node holding value.
type allocFunc func(value int) (*node, error)

type node struct {
	value int
	next  *node
}

func newNode(value int) (*node, error) {
	return &node{value: value}, nil
}

// free detaches n from its chain.
func (n *node) free() {
	n.next = nil
}

// Entry is one row of an ordered listing. Position is 1-based.
type Entry struct {
	Position int `json:"position"`
	Value    int `json:"value"`
}

func allocNode(alloc allocFunc, value int) (*node, error) {
	if alloc == nil {
		alloc = newNode
	}
	n, err := alloc(value)
	if err != nil || n == nil {
		return nil, ErrAllocationFailure
	}
	n.value = value
	n.next = nil
	return n, nil
}

func chainLen(head *node) int {
	count := 0
	for ; head != nil; head = head.next {
		count++
	}
	return count
}

// chainAt returns the node at 0-based index i, or nil past the end.
func chainAt(head *node, i int) *node {
	for ; head != nil && i > 0; i-- {
		head = head.next
	}
	return head
}

func chainEntries(head *node) []Entry {
	var entries []Entry
	position := 1
	for ; head != nil; head = head.next {
		entries = append(entries, Entry{Position: position, Value: head.value})
		position++
	}
	return entries
}

func chainValues(head *node) []int {
	values := make([]int, 0)
	for ; head != nil; head = head.next {
		values = append(values, head.value)
	}
	return values
}

// chainFree releases every node reachable from head.
func chainFree(head *node) {
	for head != nil {
		n := head
		head = n.next
		n.free()
	}
}
