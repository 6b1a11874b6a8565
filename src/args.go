// Package src
//
// Lib args provides cli flag parsing and command line splitting
package src

import (
	"flag"
	"strings"
	"unicode"
)

var transChar = map[string]string{
	"n": "\n",
	"r": "\r",
	"t": "\t",
	"b": "\b",
	"a": "\a",
}

// ------------------------------ args tools --------------------------

// return next not space index by index
//
// e.g. s = "hello  world" i = 5, will return 7
func nextLineIdx(line string, i int) int {
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	return i
}

func checkTerminated(line, key string, i int) (status int) {
	// closing quote must be followed by a space or nothing at all
	if string(line[i]) == key {
		if i+1 < len(line) && !unicode.IsSpace(rune(line[i+1])) {
			return SPA_TERMINATED
		}
		return SPA_DONE
	}
	// unterminated quotes
	if i+1 == len(line) {
		return SPA_TERMINATED
	}
	return SPA_CONTINUE
}

func normalHandle(line string, i int) (string, int, int) {
	var current strings.Builder
	for ; i < len(line); i++ {
		if unicode.IsSpace(rune(line[i])) {
			break
		}
		current.WriteByte(line[i])
	}
	return current.String(), i, SPA_DONE
}

func quotesHandle(line string, i int) (string, int, int) {
	var current strings.Builder
	for ; i < len(line); i++ {
		// e.g. \r \n \" and so on
		if line[i] == '\\' && i+1 < len(line) {
			i++
			tc, ok := transChar[string(line[i])]
			if !ok {
				current.WriteByte(line[i])
				continue
			}
			current.WriteString(tc)
			continue
		}
		if status := checkTerminated(line, "\"", i); status != SPA_CONTINUE {
			return current.String(), i, status
		}
		current.WriteByte(line[i])
	}
	return current.String(), i, SPA_DONE
}

func singleQuotesHandle(line string, i int) (string, int, int) {
	var current strings.Builder
	for ; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) && line[i+1] == '\'' {
			current.WriteByte('\'')
			i++
			continue
		}
		if status := checkTerminated(line, "'", i); status != SPA_CONTINUE {
			return current.String(), i, status
		}
		current.WriteByte(line[i])
	}
	return current.String(), i, SPA_DONE
}

// splitArgs splits a command line into words, honouring quotes.
// It returns nil for an empty line or unbalanced quotes.
func splitArgs(line string) []string {
	if len(line) == 0 {
		return nil
	}
	var args []string
	// skip space
	i := nextLineIdx(line, 0)
	for i < len(line) {
		current, status := "", 0
		switch line[i] {
		case '"':
			current, i, status = quotesHandle(line, i+1)
		case '\'':
			current, i, status = singleQuotesHandle(line, i+1)
		default:
			current, i, status = normalHandle(line, i)
		}
		if status == SPA_TERMINATED {
			return nil
		}
		args = append(args, current)
		i = nextLineIdx(line, i+1)
	}
	return args
}

// splitCommands splits a -e script into its non-empty commands.
func splitCommands(script string) []string {
	var cmds []string
	for _, cmd := range strings.Split(script, CMD_SEPARATOR) {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// ------------------------------- cli args ---------------------------

type cliArgs struct {
	confPath string // config file path
	json     bool   // force json listings
	eval     string // commands to run without a prompt
}

var CliArgs cliArgs

func ParseCliArgs() {
	flag.StringVar(&CliArgs.confPath, "c", CONFIG, "config path")
	flag.BoolVar(&CliArgs.json, "json", false, "print listings as json")
	flag.StringVar(&CliArgs.eval, "e", "", "run ';' separated commands and exit")
	flag.Parse()
}

// confRequired reports whether -c was given explicitly.
func confRequired() bool {
	required := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			required = true
		}
	})
	return required
}
