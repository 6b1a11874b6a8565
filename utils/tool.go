package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StrToInt parses a decimal integer, ignoring surrounding spaces.
// e.g. " -12 " -> -12
func StrToInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// HomeFile returns file joined to the user home directory, or file itself
// when it is already absolute or no home is known.
func HomeFile(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		ErrorP("home dir err: ", err)
		return file
	}
	return filepath.Join(home, file)
}

func Exit(code int) {
	os.Exit(code)
}
