package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/fintrack/internal/entity/expense"
)

// readError marks a failure of the input stream itself, as opposed to bad user input.
type readError struct {
	err error
}

func (e readError) Error() string {
	return "read input: " + e.err.Error()
}

func (e readError) Unwrap() error {
	return e.err
}

func (s *Shell) print(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

// prompt prints label and returns the next input line without its line ending.
func (s *Shell) prompt(label string) (string, error) {
	s.print("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", readError{err: err}
		}
		return "", readError{err: io.EOF}
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Shell) promptTrimmed(label string) (string, error) {
	line, err := s.prompt(label)
	return strings.TrimSpace(line), err
}

func (s *Shell) readAmount() (float64, error) {
	text, err := s.promptTrimmed("Enter amount: ")
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(expense.ErrInvalidAmount, "%q is not a number", text)
	}
	if amount < 0 {
		return 0, errors.Wrapf(expense.ErrInvalidAmount, "%v is negative", amount)
	}
	return amount, nil
}

func (s *Shell) readCategory() (expense.Category, error) {
	text, err := s.promptTrimmed(fmt.Sprintf("Enter category (%s): ", strings.Join(expense.Labels(), ", ")))
	if err != nil {
		return 0, err
	}
	return expense.ParseCategory(text)
}

// readYesNo repeats the question until the answer is y or n.
func (s *Shell) readYesNo(question string) (bool, error) {
	for {
		answer, err := s.promptTrimmed(question)
		if err != nil {
			return false, err
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

func (s *Shell) readDate(label string) (time.Time, error) {
	text, err := s.promptTrimmed(label)
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(text)
}

// parseDate accepts YYYY-MM-DD or the year, month and day separated by spaces.
func parseDate(text string) (time.Time, error) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		return expense.ParseDate(fields[0])
	case 3:
		parts := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return time.Time{}, errors.Wrapf(expense.ErrInvalidDate, "%q", text)
			}
			parts = append(parts, n)
		}
		y, m, d := parts[0], time.Month(parts[1]), parts[2]
		date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if date.Year() != y || date.Month() != m || date.Day() != d {
			return time.Time{}, errors.Wrapf(expense.ErrInvalidDate, "%q", text)
		}
		if err := expense.CheckDate(date); err != nil {
			return time.Time{}, err
		}
		return date, nil
	}
	return time.Time{}, errors.Wrapf(expense.ErrInvalidDate, "%q", text)
}
