package src

import (
	"bufio"
	"errors"
	"io"
	"os"
	"simple-lists/utils"
	"strings"

	linenoise "github.com/GeertJohan/go.linenoise"
	"golang.org/x/sys/unix"
)

type cliSession struct {
	c           Container
	table       []listCommand
	conf        *configVal
	out         io.Writer
	readLine    func(prompt string) (string, error)
	interactive bool
	quit        bool
	ruleWidth   int
	termState   *unix.Termios // terminal mode before linenoise took over
}

// readErr marks a failed prompt read (ctrl-c, ctrl-d, end of input).
type readErr struct {
	err error
}

func (e readErr) Error() string {
	return "read line: " + e.err.Error()
}

func (e readErr) Unwrap() error {
	return e.err
}

func newCliSession(c Container, conf *configVal, out io.Writer) *cliSession {
	if conf == nil {
		conf = defaultConfig()
	}
	return &cliSession{
		c:         c,
		table:     commandTable(c.Kind()),
		conf:      conf,
		out:       out,
		ruleWidth: DEFAULT_RULE_WIDTH,
	}
}

func newContainer(kind string) Container {
	if kind == KIND_QUEUE {
		return NewQueue()
	}
	return NewStack()
}

// exit releases the container and stops the loop.
func (s *cliSession) exit() {
	if s.quit {
		return
	}
	s.quit = true
	s.clearScreen()
	s.printf("Exiting...\n")
	s.c.Clear()
}

func (s *cliSession) clearScreen() {
	if s.interactive && s.conf.ClearScreen {
		linenoise.Clear()
	}
}

func (s *cliSession) printListing() error {
	return writeListing(s.out, s.c, s.conf.Format)
}

func (s *cliSession) reportErr(err error) {
	s.printf("%s\n", errorMessage(s.c.Kind(), err))
}

// argsHint names the arguments of cmd in order, e.g. "<position> <value>".
func argsHint(cmd *listCommand) string {
	hints := make([]string, 0, len(cmd.prompts))
	for _, prompt := range cmd.prompts {
		// "Enter value to insert: " -> value
		if words := strings.Fields(prompt); len(words) > 1 {
			hints = append(hints, "<"+words[1]+">")
		}
	}
	return strings.Join(hints, " ")
}

func (s *cliSession) printHelp() {
	for i := range s.table {
		cmd := &s.table[i]
		s.printf("%d. %-8s %-20s %s\n", cmd.choice, cmd.name, argsHint(cmd), cmd.title)
	}
}

/*------------------------------------------------------------------------------
 * Command lines
 *--------------------------------------------------------------------------- */

// runLine executes one "name args..." line. The name may also be a menu number.
func (s *cliSession) runLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	args := splitArgs(line)
	if len(args) == 0 {
		return ErrWrongArgs
	}
	if args[0] == "help" {
		s.printHelp()
		return nil
	}
	cmd := lookupCommand(s.table, args[0])
	if cmd == nil {
		return ErrUnknownCommand
	}
	return processCommand(s, cmd, args[1:])
}

// runLines executes lines until exit and returns CLI_ERR when any line failed.
func (s *cliSession) runLines(lines []string) int {
	status := CLI_OK
	for _, line := range lines {
		if s.quit {
			break
		}
		if err := s.runLine(line); err != nil {
			s.reportErr(err)
			status = CLI_ERR
		}
	}
	return status
}

/*------------------------------------------------------------------------------
 * User interface
 *--------------------------------------------------------------------------- */

func (s *cliSession) renderMenu() {
	title := "Queue Operations:"
	if s.c.Kind() == KIND_STACK {
		title = "Stack Operations:"
	}
	s.printf("%s\n", title)
	writeRule(s.out, s.ruleWidth)
	for _, cmd := range s.table {
		s.printf("%d. %s\n", cmd.choice, cmd.title)
	}
}

// menuCommand asks for the arguments of cmd one prompt at a time.
// A failed prompt read comes back as readErr.
func (s *cliSession) menuCommand(cmd *listCommand) error {
	if s.c.Kind() == KIND_STACK {
		s.printf("You chose to %s.\n", strings.ToLower(cmd.title))
	}
	if cmd.preview {
		if err := s.printListing(); err != nil {
			return err
		}
	}
	words := make([]string, 0, len(cmd.prompts))
	for _, prompt := range cmd.prompts {
		line, err := s.readLine(prompt)
		if err != nil {
			return readErr{err}
		}
		words = append(words, strings.TrimSpace(line))
	}
	return processCommand(s, cmd, words)
}

// step reads one menu choice, or a full command line, and runs it.
func (s *cliSession) step() error {
	s.renderMenu()
	line, err := s.readLine(s.conf.Prompt)
	if err != nil {
		return readErr{err}
	}
	s.clearScreen()

	line = strings.TrimSpace(line)
	choice, convErr := utils.StrToInt(line)
	if convErr != nil {
		// a typed command such as "push 4"
		if err := s.runLine(line); err != nil {
			s.reportErr(err)
		}
		return nil
	}
	cmd := lookupChoice(s.table, choice)
	if cmd == nil {
		s.reportErr(ErrInvalidOption)
		return nil
	}
	if err := s.menuCommand(cmd); err != nil {
		var re readErr
		if errors.As(err, &re) {
			return err
		}
		s.reportErr(err)
	}
	return nil
}

func (s *cliSession) repl() {
	for !s.quit {
		if err := s.step(); err != nil {
			// ctrl-c or ctrl-d at a prompt
			utils.Info(err)
			s.exit()
			break
		}
		s.printf("\n")
	}
}

func (s *cliSession) historyFile() string {
	return utils.HomeFile(s.conf.History)
}

func (s *cliSession) loadHistory() {
	if s.conf.History == "" {
		return
	}
	if err := linenoise.SetHistoryCapacity(s.conf.HistoryMax); err != nil {
		utils.ErrorP("set history capacity err: ", err)
	}
	file := s.historyFile()
	if _, err := os.Stat(file); err != nil {
		return
	}
	if err := linenoise.LoadHistory(file); err != nil {
		utils.ErrorP("load history err: ", err)
	}
}

func (s *cliSession) saveHistory() {
	if s.conf.History == "" {
		return
	}
	if err := linenoise.SaveHistory(s.historyFile()); err != nil {
		utils.ErrorP("save history err: ", err)
	}
}

func linenoiseReadLine(prompt string) (string, error) {
	line, err := linenoise.Line(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		if err := linenoise.AddHistory(line); err != nil {
			utils.ErrorP("add history err: ", err)
		}
	}
	return line, nil
}

// scannerReadLine reads lines from r, ignoring the prompt.
func scannerReadLine(r io.Reader) func(string) (string, error) {
	scanner := bufio.NewScanner(r)
	return func(string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
}

// interactiveMode drives the numbered menu on a terminal.
func (s *cliSession) interactiveMode() int {
	s.interactive = true
	s.readLine = linenoiseReadLine
	s.ruleWidth = utils.TermWidth(os.Stdout, DEFAULT_RULE_WIDTH)
	if st, err := utils.SaveTermState(os.Stdin); err == nil {
		s.termState = st
	}
	s.loadHistory()
	SetupSignalHandler(func(sig os.Signal) {
		utils.Exit(s.onSignal(sig))
	})
	s.repl()
	s.saveHistory()
	return CLI_OK
}

// onSignal puts the terminal back in the mode it had before linenoise, which
// os.Exit would otherwise leave raw. It runs on the signal goroutine, so it
// touches neither the container nor the linenoise history.
func (s *cliSession) onSignal(sig os.Signal) int {
	utils.InfoF("signal-handler Received %s, exiting...", sig.String())
	if s.termState != nil {
		if err := utils.RestoreTermState(os.Stdin, s.termState); err != nil {
			utils.ErrorP("restore terminal err: ", err)
		}
	}
	return CLI_OK
}

// scriptMode runs one command per line of r, without menu or prompts.
func (s *cliSession) scriptMode(r io.Reader) int {
	s.readLine = scannerReadLine(r)
	status := CLI_OK
	for !s.quit {
		line, err := s.readLine("")
		if err != nil {
			if err != io.EOF {
				utils.ErrorP("read script err: ", err)
				status = CLI_ERR
			}
			break
		}
		if s.runLines([]string{line}) != CLI_OK {
			status = CLI_ERR
		}
	}
	if !s.quit {
		s.c.Clear()
	}
	return status
}

func (s *cliSession) noninteractive(cmds []string) int {
	status := s.runLines(cmds)
	if !s.quit {
		s.c.Clear()
	}
	return status
}

// CliStart runs the program for kind (KIND_QUEUE or KIND_STACK) and exits.
func CliStart(kind string) {
	conf, err := loadConfig(CliArgs.confPath, confRequired())
	if err != nil {
		utils.Error("load config err: ", err)
	}
	if CliArgs.json {
		conf.Format = FORMAT_JSON
	}
	utils.SetLevel(conf.LogLevel)
	utils.InfoF("%s-cli started, config: %s", kind, CliArgs.confPath)

	s := newCliSession(newContainer(kind), conf, os.Stdout)
	var status int
	switch {
	case CliArgs.eval != "":
		status = s.noninteractive(splitCommands(CliArgs.eval))
	case utils.IsTerminal(os.Stdin):
		status = s.interactiveMode()
	default:
		status = s.scriptMode(os.Stdin)
	}
	utils.Exit(status)
}
