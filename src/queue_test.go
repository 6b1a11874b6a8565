package src

import (
	"errors"
	"slices"
	"testing"
)

func failAlloc(int) (*node, error) {
	return nil, errors.New("out of memory")
}

func queueOf(values ...int) *Queue {
	q := NewQueue()
	for _, v := range values {
		_ = q.Enqueue(v)
	}
	return q
}

// checkQueueEnds verifies front/rear agree with the chain.
func checkQueueEnds(t *testing.T, q *Queue) {
	t.Helper()
	if (q.front == nil) != (q.rear == nil) {
		t.Fatalf("queue ends err: front = %v, rear = %v", q.front, q.rear)
	}
	if q.rear != nil && q.rear.next != nil {
		t.Fatal("queue ends err: rear.next != nil")
	}
	if q.front != nil && chainAt(q.front, q.Size()-1) != q.rear {
		t.Fatal("queue ends err: rear is not the last node")
	}
}

func TestQueueZeroValue(t *testing.T) {
	var q Queue
	if !q.IsEmpty() || q.Size() != 0 {
		t.Error("zero queue err: size == ", q.Size())
	}
	if err := q.Enqueue(1); err != nil {
		t.Error("enqueue err: ", err)
	}
	if v, err := q.Dequeue(); err != nil || v != 1 {
		t.Error("dequeue err: v == ", v, err)
	}
}

func TestQueueScenario(t *testing.T) {
	q := queueOf(10, 20, 30)
	entries, err := q.Entries()
	if err != nil {
		t.Fatal("entries err: ", err)
	}
	want := []Entry{{1, 10}, {2, 20}, {3, 30}}
	if !slices.Equal(entries, want) {
		t.Error("entries err: entries == ", entries)
	}
	v, err := q.Dequeue()
	if err != nil || v != 10 {
		t.Error("dequeue err: v == ", v, err)
	}
	if !slices.Equal(q.Values(), []int{20, 30}) {
		t.Error("dequeue err: values == ", q.Values())
	}
	checkQueueEnds(t, q)
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 100; i++ {
		_ = q.Enqueue(i)
		if i%3 == 0 {
			_, _ = q.Dequeue()
		}
	}
	prev := -1
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatal("dequeue err: ", err)
		}
		if v <= prev {
			t.Fatalf("fifo err: %d after %d", v, prev)
		}
		prev = v
	}
	checkQueueEnds(t, q)
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()
	if _, err := q.Dequeue(); !errors.Is(err, ErrEmptyContainer) {
		t.Error("dequeue empty err: ", err)
	}
	_ = q.Enqueue(1)
	_, _ = q.Dequeue()
	if _, err := q.Dequeue(); !errors.Is(err, ErrEmptyContainer) {
		t.Error("dequeue exhausted err: ", err)
	}
	checkQueueEnds(t, q)
	if _, err := q.Entries(); !errors.Is(err, ErrEmptyContainer) {
		t.Error("entries empty err: ", err)
	}
}

func TestQueueInsertAtPosition(t *testing.T) {
	tests := []struct {
		position int
		want     []int
	}{
		{0, []int{9, 1, 2, 3}},
		{1, []int{1, 9, 2, 3}},
		{2, []int{1, 2, 9, 3}},
		{3, []int{1, 2, 3, 9}},
	}
	for _, tt := range tests {
		q := queueOf(1, 2, 3)
		if err := q.InsertAtPosition(9, tt.position); err != nil {
			t.Error("insert err: ", err)
		}
		if !slices.Equal(q.Values(), tt.want) {
			t.Errorf("insert at %d err: values == %v", tt.position, q.Values())
		}
		entries, _ := q.Entries()
		if entries[tt.position] != (Entry{Position: tt.position + 1, Value: 9}) {
			t.Errorf("insert at %d err: entry == %v", tt.position, entries[tt.position])
		}
		checkQueueEnds(t, q)
	}

	// rear follows an append so enqueue still lands last
	q := queueOf(1)
	_ = q.InsertAtPosition(2, 1)
	_ = q.Enqueue(3)
	if !slices.Equal(q.Values(), []int{1, 2, 3}) {
		t.Error("insert at end err: values == ", q.Values())
	}

	q = NewQueue()
	if err := q.InsertAtPosition(5, 0); err != nil {
		t.Error("insert into empty err: ", err)
	}
	checkQueueEnds(t, q)
}

func TestQueueInsertInvalidPosition(t *testing.T) {
	q := queueOf(1, 2)
	for _, p := range []int{-1, 3, 100} {
		if err := q.InsertAtPosition(9, p); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("insert at %d err: %v", p, err)
		}
	}
	if !slices.Equal(q.Values(), []int{1, 2}) {
		t.Error("invalid insert changed queue: ", q.Values())
	}
	if err := NewQueue().InsertAtPosition(1, 1); !errors.Is(err, ErrInvalidPosition) {
		t.Error("insert into empty err: ", err)
	}
}

func TestQueueDeleteAtPosition(t *testing.T) {
	tests := []struct {
		position int
		want     []int
	}{
		{0, []int{2, 3, 4}},
		{1, []int{1, 3, 4}},
		{3, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		q := queueOf(1, 2, 3, 4)
		if err := q.DeleteAtPosition(tt.position); err != nil {
			t.Error("delete err: ", err)
		}
		if !slices.Equal(q.Values(), tt.want) {
			t.Errorf("delete at %d err: values == %v", tt.position, q.Values())
		}
		if q.Size() != 3 {
			t.Error("delete err: size == ", q.Size())
		}
		checkQueueEnds(t, q)
	}

	q := queueOf(7)
	_ = q.DeleteAtPosition(0)
	if !q.IsEmpty() {
		t.Error("delete last err: size == ", q.Size())
	}
	checkQueueEnds(t, q)
	_ = q.Enqueue(8)
	if !slices.Equal(q.Values(), []int{8}) {
		t.Error("enqueue after delete err: ", q.Values())
	}
}

func TestQueueDeleteInvalidPosition(t *testing.T) {
	q := queueOf(1, 2)
	for _, p := range []int{-1, 2, 5} {
		if err := q.DeleteAtPosition(p); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("delete at %d err: %v", p, err)
		}
	}
	if q.Size() != 2 {
		t.Error("invalid delete changed queue: ", q.Values())
	}
	if err := NewQueue().DeleteAtPosition(0); !errors.Is(err, ErrInvalidPosition) {
		t.Error("delete from empty err: ", err)
	}
}

func TestQueueClear(t *testing.T) {
	q := queueOf(1, 2, 3)
	first := q.front
	q.Clear()
	if !q.IsEmpty() || q.rear != nil {
		t.Error("clear err: size == ", q.Size())
	}
	if first.next != nil {
		t.Error("clear err: released node still linked")
	}
	_ = q.Enqueue(4)
	if !slices.Equal(q.Values(), []int{4}) {
		t.Error("enqueue after clear err: ", q.Values())
	}
}

func TestQueueAllocationFailure(t *testing.T) {
	q := queueOf(1, 2)
	q.alloc = failAlloc
	if err := q.Enqueue(3); !errors.Is(err, ErrAllocationFailure) {
		t.Error("enqueue alloc err: ", err)
	}
	if err := q.InsertAtPosition(3, 1); !errors.Is(err, ErrAllocationFailure) {
		t.Error("insert alloc err: ", err)
	}
	if !slices.Equal(q.Values(), []int{1, 2}) {
		t.Error("failed alloc changed queue: ", q.Values())
	}
	checkQueueEnds(t, q)
}

func TestQueueSizeMatchesLive(t *testing.T) {
	q := NewQueue()
	live := 0
	for i := 0; i < 20; i++ {
		_ = q.Enqueue(i)
		live++
		if i%4 == 0 {
			_ = q.DeleteAtPosition(live / 2)
			live--
		}
		if i%5 == 0 {
			_ = q.InsertAtPosition(-i, live)
			live++
		}
		if q.Size() != live || q.IsEmpty() != (live == 0) {
			t.Fatalf("size err: size == %d, live == %d", q.Size(), live)
		}
	}
}
