package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amirbrooks/tasklist/internal/render"
	"github.com/amirbrooks/tasklist/internal/store"
)

// Session drives the command loop over one input and one output stream.
// Everything is synchronous: each prompt blocks on the next line.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	list   *store.List
	pal    render.Palette
	logger *log.Logger
}

func NewSession(in io.Reader, out io.Writer, list *store.List, pal render.Palette, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		list:   list,
		pal:    pal,
		logger: logger,
	}
}

// Loop reads actions until end. end persists the list and returns nil;
// exhausted input also returns (without saving) so a closed stream never
// spins on the re-prompt.
func (s *Session) Loop() error {
	for {
		s.println("Input an action (add, print, edit, delete, end):")
		line, ok := s.readLine()
		if !ok {
			s.logger.Debug("input stream closed, exiting without saving")
			return s.in.Err()
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "add":
			s.cmdAdd()
		case "print":
			s.cmdPrint()
		case "edit":
			s.cmdEdit()
		case "delete":
			s.cmdDelete()
		case "end":
			if err := s.list.Save(); err != nil {
				return err
			}
			s.println("Tasklist exiting!")
			return nil
		default:
			s.println("The input action is invalid")
		}
	}
}

func (s *Session) cmdAdd() {
	priority, ok := s.promptPriority()
	if !ok {
		return
	}
	date, ok := s.promptDate()
	if !ok {
		return
	}
	clock, ok := s.promptTime()
	if !ok {
		return
	}
	description := s.promptDescription()
	if description == "" {
		// The whole add is discarded; the gathered fields are dropped.
		s.println("The task is blank")
		return
	}
	s.list.Add(description, priority, date, clock)
}

func (s *Session) cmdPrint() {
	if s.list.Count() == 0 {
		s.println("No tasks have been input")
		return
	}
	s.printTable()
}

func (s *Session) cmdEdit() {
	if s.list.Count() == 0 {
		s.println("No tasks have been input")
		return
	}
	s.printTable()
	n, ok := s.promptTaskNumber()
	if !ok {
		return
	}
	field, ok := s.promptField()
	if !ok {
		return
	}
	var err error
	switch field {
	case "priority":
		p, ok := s.promptPriority()
		if !ok {
			return
		}
		err = s.list.SetPriority(n, p)
	case "date":
		d, ok := s.promptDate()
		if !ok {
			return
		}
		err = s.list.SetDate(n, d)
	case "time":
		c, ok := s.promptTime()
		if !ok {
			return
		}
		err = s.list.SetTime(n, c)
	case "task":
		description := s.promptDescription()
		if description == "" {
			s.println("The task is blank")
			return
		}
		err = s.list.SetDescription(n, description)
	}
	if err != nil {
		s.logger.Error("edit task", "number", n, "field", field, "err", err)
		return
	}
	s.println("The task is changed")
}

func (s *Session) cmdDelete() {
	if s.list.Count() == 0 {
		s.println("No tasks have been input")
		return
	}
	s.printTable()
	n, ok := s.promptTaskNumber()
	if !ok {
		return
	}
	if err := s.list.Delete(n); err != nil {
		s.logger.Error("delete task", "number", n, "err", err)
		return
	}
	s.println("The task is deleted")
}

func (s *Session) printTable() {
	fmt.Fprint(s.out, render.Table(s.list.Tasks(), s.pal))
}

// readLine returns ok=false once the input stream is exhausted. Every
// prompt loop treats that as an abort signal rather than a retry.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) promptPriority() (store.Priority, bool) {
	for {
		s.println("Input the task priority (C, H, N, L):")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if p, valid := store.ParsePriority(line); valid {
			return p, true
		}
		// A mismatch re-prompts without a message.
	}
}

func (s *Session) promptDate() (string, bool) {
	for {
		s.println("Input the date (yyyy-mm-dd):")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if date, valid := store.ParseDate(line); valid {
			return date, true
		}
		s.println("The input date is invalid")
	}
}

func (s *Session) promptTime() (string, bool) {
	for {
		s.println("Input the time (hh:mm):")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if clock, valid := store.ParseClock(line); valid {
			return clock, true
		}
		s.println("The input time is invalid")
	}
}

// promptDescription collects lines until a blank line (or end of input)
// and joins the non-blank ones. Trailing whitespace is trimmed per line.
func (s *Session) promptDescription() string {
	s.println("Input a new task (enter a blank line to end):")
	var lines []string
	for {
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) promptTaskNumber() (int, bool) {
	for {
		s.printf("Input the task number (1-%d):\n", s.list.Count())
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= s.list.Count() {
			return n, true
		}
		s.println("Invalid task number")
	}
}

func (s *Session) promptField() (string, bool) {
	for {
		s.println("Input a field to edit (priority, date, time, task):")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		switch field := strings.ToLower(strings.TrimSpace(line)); field {
		case "priority", "date", "time", "task":
			return field, true
		}
		s.println("Invalid field")
	}
}
