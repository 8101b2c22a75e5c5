// Package shell implements the interactive front-desk menu.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tomasbasham/frontdesk"
)

// Menu options.
const (
	optionAdmit   = "1"
	optionAttend  = "2"
	optionRemove  = "3"
	optionHistory = "4"
	optionExit    = "5"
)

const menu = `Hospital management system
1. Add new person to be attended
2. Attend next person
3. Remove person from the queue
4. Show people in attendance
5. Exit
Enter an option: `

const separator = "-------------------------------------------------"

var errEndOfInput = errors.New("end of input")

// Shell drives a [frontdesk.Desk] from line oriented input. It loads the
// attendance history when a session starts and saves it when the session
// ends, whether by the exit option, end of input or cancellation.
type Shell struct {
	desk   *frontdesk.Desk
	out    io.Writer
	logger logrus.FieldLogger

	lines <-chan line
	in    io.Reader
}

// New creates a [Shell] reading commands from in and writing the menu to out.
func New(desk *frontdesk.Desk, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Shell {
	return &Shell{
		desk:   desk,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run loads the history and serves menu commands until the operator exits.
// A failed save on exit is reported and the menu is shown again so the
// operator can retry; a failed save at end of input or on cancellation is
// returned.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.desk.Load(ctx); err != nil {
		return errors.Wrap(err, "shell : failed to load attendance history")
	}
	s.logger.WithField("attended", s.desk.HistoryLen()).Info("session started")

	s.lines = scanLines(ctx, s.in)

	for {
		s.printf("%s", menu)

		option, err := s.readLine(ctx)
		if err != nil {
			s.printf("\n")
			return s.end(ctx, err)
		}

		switch option {
		case optionAdmit:
			err = s.admit(ctx)
		case optionAttend:
			s.attend()
		case optionRemove:
			err = s.remove(ctx)
		case optionHistory:
			s.showHistory()
		case optionExit:
			if err := s.save(ctx); err != nil {
				s.printf("The attendance could not be saved: %v\n", err)
				continue
			}
			return nil
		default:
			s.printf("Invalid option\n")
		}

		if err != nil {
			return s.end(ctx, err)
		}
	}
}

// end saves the session after input stopped. The context may already be
// cancelled, so the save runs detached from it.
func (s *Shell) end(ctx context.Context, cause error) error {
	if errors.Is(cause, errEndOfInput) {
		cause = nil
	}

	if err := s.save(context.WithoutCancel(ctx)); err != nil {
		return err
	}
	return cause
}

func (s *Shell) save(ctx context.Context) error {
	unsaved := s.desk.Unsaved()
	if err := s.desk.Save(ctx); err != nil {
		s.logger.WithError(err).Error("failed to save attendance history")
		return err
	}
	s.logger.WithField("saved", unsaved).Info("attendance history saved")
	return nil
}

func (s *Shell) admit(ctx context.Context) error {
	var p frontdesk.Person

	id, err := s.promptInt(ctx, "Enter the person's identification: ")
	if err != nil {
		return s.invalid(err)
	}
	p.ID = id

	if p.FirstName, err = s.prompt(ctx, "Enter the person's first name: "); err != nil {
		return err
	}
	if p.LastName, err = s.prompt(ctx, "Enter the person's last name: "); err != nil {
		return err
	}

	age, err := s.promptInt(ctx, "Enter the person's age: ")
	if err != nil {
		return s.invalid(err)
	}
	p.Age = age

	gender, err := s.prompt(ctx, "Enter the person's gender: ")
	if err != nil {
		return err
	}
	if len(gender) != 1 {
		s.printf("Invalid gender: enter a single character\n")
		return nil
	}
	p.Gender = gender[0]

	if p.Phone, err = s.prompt(ctx, "Enter the person's phone number: "); err != nil {
		return err
	}
	if p.ServiceDate, err = s.prompt(ctx, "Enter the person's service date: "); err != nil {
		return err
	}

	tier, position, err := s.desk.Admit(p)
	if err != nil {
		s.printf("The person could not be added: %v\n", err)
		return nil
	}

	s.printf("The person has been added to the %s priority queue at position %d\n", tier, position)
	return nil
}

func (s *Shell) attend() {
	p, ok := s.desk.ServeNext()
	if !ok {
		s.printf("The queues are empty\n")
		return
	}

	s.printf("The person to be attended is: %s\n", p.FullName())
	s.printf("Age: %d\n", p.Age)
	s.printf("Phone number: %s\n", p.Phone)
	s.printf("Service date: %s\n", p.ServiceDate)
}

func (s *Shell) remove(ctx context.Context) error {
	id, err := s.promptInt(ctx, "Enter the person's identification: ")
	if err != nil {
		return s.invalid(err)
	}
	age, err := s.promptInt(ctx, "Enter the person's age: ")
	if err != nil {
		return s.invalid(err)
	}

	if _, err := s.desk.Remove(id, age); err != nil {
		if errors.Is(err, frontdesk.ErrNotFound) {
			s.printf("The person is not in the queue\n")
			return nil
		}
		return err
	}

	s.printf("The person with ID:%d has been removed from the queue\n", id)
	return nil
}

func (s *Shell) showHistory() {
	empty := true
	for p := range s.desk.History() {
		empty = false
		s.printf("%s\n", separator)
		s.printf("| The person in attendance is: %s\n", p.FullName())
		s.printf("| Age: %d\n", p.Age)
		s.printf("| Phone number: %s\n", p.Phone)
		s.printf("| Service date: %s\n", p.ServiceDate)
		s.printf("%s\n", separator)
	}

	if empty {
		s.printf("There are no people in attendance\n")
	}
}

// invalid reports malformed numeric input and returns to the menu. Input and
// context errors are passed through.
func (s *Shell) invalid(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		s.printf("Invalid number %q\n", numErr.Num)
		return nil
	}
	return err
}

func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	return s.readLine(ctx)
}

func (s *Shell) promptInt(ctx context.Context, label string) (int32, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case l, ok := <-s.lines:
		if !ok {
			return "", errEndOfInput
		}
		if l.err != nil {
			return "", errors.Wrap(l.err, "read input")
		}
		return strings.TrimSpace(l.text), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// line is one line of operator input, or the error that stopped reading.
type line struct {
	text string
	err  error
}

// scanLines feeds lines from r into the returned channel until r is
// exhausted or ctx is done. A read error is sent as the last value before the
// channel is closed. A read from a terminal cannot be interrupted, so after
// cancellation the goroutine lingers until the pending read returns.
func scanLines(ctx context.Context, r io.Reader) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)

		send := func(l line) bool {
			select {
			case lines <- l:
				return true
			case <-ctx.Done():
				return false
			}
		}

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send(line{text: scanner.Text()}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			send(line{err: err})
		}
	}()
	return lines
}
