// Package shell implements the numbered text menu used to manage tram stop hours.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/rycus86/tram-stop-hours/pkg/hours"
	"go.uber.org/zap"
	"io"
	"strings"
)

const menu = `Menu:
1 - Add record
2 - Edit record
3 - Delete record
4 - Show all records
5 - Calculate and show results
Enter - Exit
`

type Shell struct {
	store  *hours.Store
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(store *hours.Store, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shell{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run serves commands until an empty line or the end of the input.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)

		choice, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		s.logger.Debug("menu choice", zap.String("choice", choice))

		switch choice {
		case "1":
			err = s.add()
		case "2":
			err = s.edit()
		case "3":
			err = s.delete()
		case "4":
			fmt.Fprint(s.out, hours.FormatAll(s.store.All()))
		case "5":
			fmt.Fprint(s.out, hours.FormatSummary(s.store.Summarize()))
		case "":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Shell) add() error {
	record, err := s.readRecord("")
	if err != nil {
		return err
	}

	s.store.Add(record)
	s.logger.Debug("record added", zap.String("stop", record.StopName), zap.Int("records", s.store.Len()))
	return nil
}

func (s *Shell) edit() error {
	index, err := s.readIndex("Enter the index of the record to edit: ")
	if err != nil {
		return err
	}

	record, err := s.readRecord("new ")
	if err != nil {
		return err
	}

	return s.report(s.store.EditAt(index, record))
}

func (s *Shell) delete() error {
	index, err := s.readIndex("Enter the index of the record to delete: ")
	if err != nil {
		return err
	}

	return s.report(s.store.DeleteAt(index))
}

// report prints store errors the user can recover from and passes anything else on.
func (s *Shell) report(err error) error {
	if errors.Is(err, hours.ErrInvalidIndex) {
		s.logger.Info("rejected record index", zap.Error(err))
		fmt.Fprintln(s.out, "Invalid index.")
		return nil
	}
	return err
}

func (s *Shell) readRecord(adjective string) (hours.Record, error) {
	var record hours.Record

	name, err := s.prompt("Enter the " + adjective + "stop name: ")
	if err != nil {
		return record, err
	}

	routes, err := s.prompt("Enter the " + adjective + "route numbers (comma separated): ")
	if err != nil {
		return record, err
	}

	passengers, err := s.readPassengerCount("Enter the " + adjective + "passenger count: ")
	if err != nil {
		return record, err
	}

	comment, err := s.prompt("Enter the " + adjective + "comment: ")
	if err != nil {
		return record, err
	}

	return hours.Record{
		StopName:       name,
		RouteNumbers:   hours.ParseRoutes(routes),
		PassengerCount: passengers,
		Comment:        comment,
	}, nil
}

func (s *Shell) readPassengerCount(question string) (int, error) {
	for {
		line, err := s.prompt(question)
		if err != nil {
			return 0, err
		}

		n, err := hours.ParsePassengerCount(line)
		if err == nil {
			return n, nil
		}
		s.logger.Debug("rejected passenger count", zap.Error(err))
	}
}

func (s *Shell) readIndex(question string) (int, error) {
	for {
		line, err := s.prompt(question)
		if err != nil {
			return 0, err
		}

		n, err := hours.ParseIndex(line)
		if err == nil {
			return n, nil
		}
		s.logger.Debug("rejected record index", zap.Error(err))
		fmt.Fprintln(s.out, "Please enter a whole number.")
	}
}

func (s *Shell) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	return s.readLine()
}

// readLine returns the next line without its line ending. A final line with
// no newline is returned as is; io.EOF is only reported once nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
