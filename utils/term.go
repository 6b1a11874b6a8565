package utils

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TermWidth returns the column count of the terminal behind f, or def.
func TermWidth(f *os.File, def int) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return def
	}
	return int(ws.Col)
}

// SaveTermState snapshots the terminal mode of f.
func SaveTermState(f *os.File) (*unix.Termios, error) {
	return unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
}

// RestoreTermState puts f back into a mode taken by SaveTermState.
func RestoreTermState(f *os.File, st *unix.Termios) error {
	return unix.IoctlSetTermios(int(f.Fd()), unix.TCSETS, st)
}
