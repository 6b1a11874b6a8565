package src

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestWriteListingText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeListing(&buf, queueOf(10, 20), FORMAT_TEXT); err != nil {
		t.Fatal("writeListing err: ", err)
	}
	want := "Queue Contents (Front to Rear):\nPosition 1: 10\nPosition 2: 20\n\n"
	if buf.String() != want {
		t.Errorf("writeListing err: %q", buf.String())
	}

	buf.Reset()
	_ = writeListing(&buf, NewStack(), FORMAT_TEXT)
	if buf.String() != "The stack is empty.\n" {
		t.Errorf("writeListing err: empty == %q", buf.String())
	}
}

func TestWriteListingJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeListing(&buf, stackOf(3, 2, 1), FORMAT_JSON); err != nil {
		t.Fatal("writeListing err: ", err)
	}
	var l listing
	if err := sonic.Unmarshal(buf.Bytes(), &l); err != nil {
		t.Fatal("unmarshal err: ", err)
	}
	if l.Kind != KIND_STACK || l.Size != 3 || len(l.Entries) != 3 {
		t.Fatal("writeListing err: ", l)
	}
	if l.Entries[0] != (Entry{Position: 1, Value: 3}) {
		t.Error("writeListing err: first == ", l.Entries[0])
	}

	buf.Reset()
	_ = writeListing(&buf, NewQueue(), FORMAT_JSON)
	if !strings.Contains(buf.String(), `"entries":[]`) {
		t.Error("writeListing err: empty json == ", buf.String())
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrEmptyContainer, "The queue is empty."},
		{ErrInvalidPosition, "Invalid position."},
		{ErrAllocationFailure, "Memory allocation failed."},
		{ErrInvalidOption, "Invalid option. Please try again."},
		{ErrUnknownCommand, "(error) unknown command"},
	}
	for _, tt := range tests {
		if msg := errorMessage(KIND_QUEUE, tt.err); msg != tt.want {
			t.Errorf("errorMessage err: %q", msg)
		}
	}
}

func TestWriteRule(t *testing.T) {
	var buf bytes.Buffer
	writeRule(&buf, 5)
	writeRule(&buf, 200)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines[0]) != 20 || len(lines[1]) != 60 {
		t.Error("writeRule err: ", len(lines[0]), len(lines[1]))
	}
}
