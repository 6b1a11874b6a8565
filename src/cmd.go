package src

import (
	"fmt"
	"simple-lists/utils"
	"strconv"
)

// commandProc runs one command. argv holds the parsed integer arguments,
// positions still 1-based as the user typed them.
type commandProc func(s *cliSession, argv []int) error

type listCommand struct {
	name    string
	choice  int // menu number
	title   string
	proc    commandProc
	arity   int      // including the command name
	prompts []string // one per argument, asked in menu mode
	preview bool     // show the contents before asking for arguments
}

// lookupCommand finds a command by name or by its menu number.
func lookupCommand(table []listCommand, cmdStr string) *listCommand {
	choice, err := strconv.Atoi(cmdStr)
	for i := range table {
		if table[i].name == cmdStr || (err == nil && table[i].choice == choice) {
			return &table[i]
		}
	}
	return nil
}

func lookupChoice(table []listCommand, choice int) *listCommand {
	for i := range table {
		if table[i].choice == choice {
			return &table[i]
		}
	}
	return nil
}

// parseArgv converts the words after the command name to integers.
func parseArgv(words []string) ([]int, error) {
	argv := make([]int, 0, len(words))
	for _, w := range words {
		v, err := utils.StrToInt(w)
		if err != nil {
			return nil, ErrNotInteger
		}
		argv = append(argv, v)
	}
	return argv, nil
}

// processCommand checks arity, parses the arguments and runs cmd.
func processCommand(s *cliSession, cmd *listCommand, words []string) error {
	if cmd.arity != len(words)+1 {
		return ErrWrongArgs
	}
	argv, err := parseArgv(words)
	if err != nil {
		return err
	}
	utils.Info("process command: ", cmd.name, argv)
	return cmd.proc(s, argv)
}

// =================================== commands ====================================

// queueCommandTable keeps the menu numbers of the original queue program.
var queueCommandTable = []listCommand{
	{"enqueue", 1, "Enqueue into queue", insertCommand, 2, []string{"Enter value to enqueue: "}, false},
	{"dequeue", 2, "Dequeue from queue", removeCommand, 1, nil, true},
	{"insert", 3, "Insert at specific position", queueInsertCommand, 3, []string{"Enter position to insert: ", "Enter value to insert: "}, true},
	{"delete", 4, "Delete at specific position", deleteCommand, 2, []string{"Enter position to delete: "}, true},
	{"print", 5, "Print queue with position numbers", printCommand, 1, nil, false},
	{"exit", 6, "Exit", exitCommand, 1, nil, false},
	{"size", 7, "Print queue size", sizeCommand, 1, nil, false},
	{"clear", 8, "Clear queue", clearCommand, 1, nil, false},
}

// stackCommandTable keeps the menu numbers of the original stack program.
var stackCommandTable = []listCommand{
	{"push", 1, "Insert into stack", insertCommand, 2, []string{"Enter value to insert: "}, false},
	{"delete", 2, "Delete at specific position", deleteCommand, 2, []string{"Enter position to delete: "}, true},
	{"ninsert", 3, "Insert at specific position using stack", stackNInsertCommand, 3, []string{"Enter value to insert: ", "Enter position to insert: "}, true},
	{"print", 4, "Print stack with position numbers", printCommand, 1, nil, false},
	{"exit", 5, "Exit", exitCommand, 1, nil, false},
	{"pop", 6, "Pop from stack", removeCommand, 1, nil, true},
	{"size", 7, "Print stack size", sizeCommand, 1, nil, false},
	{"clear", 8, "Clear stack", clearCommand, 1, nil, false},
	{"insert", 9, "Insert at specific position", stackInsertCommand, 3, []string{"Enter value to insert: ", "Enter position to insert: "}, true},
}

func commandTable(kind string) []listCommand {
	if kind == KIND_QUEUE {
		return queueCommandTable
	}
	return stackCommandTable
}

// insertCommand value
func insertCommand(s *cliSession, argv []int) error {
	if err := s.c.Insert(argv[0]); err != nil {
		return err
	}
	s.printf("Inserted %d into the %s.\n", argv[0], s.c.Kind())
	return nil
}

func removeCommand(s *cliSession, argv []int) error {
	v, err := s.c.Remove()
	if err != nil {
		return err
	}
	if s.c.Kind() == KIND_QUEUE {
		s.printf("Dequeued element: %d\n", v)
	} else {
		s.printf("Popped element: %d\n", v)
	}
	return nil
}

// queueInsertCommand position value
func queueInsertCommand(s *cliSession, argv []int) error {
	return s.insertAt(argv[1], argv[0], s.c.InsertAtPosition)
}

// stackInsertCommand value position
func stackInsertCommand(s *cliSession, argv []int) error {
	return s.insertAt(argv[0], argv[1], s.c.InsertAtPosition)
}

// stackNInsertCommand value position
func stackNInsertCommand(s *cliSession, argv []int) error {
	st, ok := s.c.(*Stack)
	if !ok {
		return ErrUnknownCommand
	}
	return s.insertAt(argv[0], argv[1], st.InsertAtNPosition)
}

// deleteCommand position
func deleteCommand(s *cliSession, argv []int) error {
	if err := s.c.DeleteAtPosition(argv[0] - 1); err != nil {
		return err
	}
	s.printf("Deleted position %d.\n", argv[0])
	return nil
}

func printCommand(s *cliSession, argv []int) error {
	return s.printListing()
}

func sizeCommand(s *cliSession, argv []int) error {
	s.printf("Size: %d\n", s.c.Size())
	return nil
}

func clearCommand(s *cliSession, argv []int) error {
	s.c.Clear()
	s.printf("The %s is cleared.\n", s.c.Kind())
	return nil
}

func exitCommand(s *cliSession, argv []int) error {
	s.exit()
	return nil
}

// insertAt runs a positional insert with a 1-based user position.
func (s *cliSession) insertAt(value, position int, insert func(value, position int) error) error {
	if err := insert(value, position-1); err != nil {
		return err
	}
	s.printf("Inserted %d at position %d.\n", value, position)
	return nil
}

func (s *cliSession) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
