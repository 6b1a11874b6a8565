package src

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
)

type listing struct {
	Kind    string  `json:"kind"`
	Size    int     `json:"size"`
	Entries []Entry `json:"entries"`
}

func newListing(c Container) *listing {
	l := &listing{Kind: c.Kind(), Entries: make([]Entry, 0)}
	if entries, err := c.Entries(); err == nil {
		l.Entries = entries
	}
	l.Size = len(l.Entries)
	return l
}

func contentsTitle(kind string) string {
	if kind == KIND_QUEUE {
		return "Queue Contents (Front to Rear):"
	}
	return "Stack Contents (Top to Bottom):"
}

func emptyMessage(kind string) string {
	return fmt.Sprintf("The %s is empty.", kind)
}

// writeListing prints c in order with 1-based positions.
func writeListing(w io.Writer, c Container, format string) error {
	if format == FORMAT_JSON {
		buf, err := sonic.Marshal(newListing(c))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", buf)
		return err
	}

	entries, err := c.Entries()
	if err != nil {
		_, err = fmt.Fprintln(w, emptyMessage(c.Kind()))
		return err
	}
	var b strings.Builder
	b.WriteString(contentsTitle(c.Kind()))
	b.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&b, "Position %d: %d\n", e.Position, e.Value)
	}
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}

// errorMessage turns a container or cli error into the line shown to the user.
func errorMessage(kind string, err error) string {
	switch err {
	case ErrEmptyContainer:
		return emptyMessage(kind)
	case ErrInvalidPosition:
		return "Invalid position."
	case ErrAllocationFailure:
		return "Memory allocation failed."
	case ErrInvalidOption:
		return "Invalid option. Please try again."
	}
	return "(error) " + err.Error()
}

func writeRule(w io.Writer, width int) {
	if width < 20 {
		width = 20
	}
	if width > 60 {
		width = 60
	}
	fmt.Fprintln(w, strings.Repeat("-", width))
}
