package expense

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

const (
	minYear = 1
	maxYear = 9999
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// Expense is an immutable record of a single spending. A zero date means no date was recorded.
type Expense struct {
	amount   float64
	category Category
	desc     string
	date     time.Time
}

// New validates the amount and returns the expense. Pass the zero time.Time for an undated expense.
func New(amount float64, category Category, desc string, date time.Time) (Expense, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Expense{}, errors.Wrapf(ErrInvalidAmount, "%v", amount)
	}
	if _, err := category.Label(); err != nil {
		return Expense{}, err
	}
	if !date.IsZero() {
		if err := CheckDate(date); err != nil {
			return Expense{}, err
		}
	}
	return Expense{
		amount:   amount,
		category: category,
		desc:     desc,
		date:     Day(date),
	}, nil
}

func (e Expense) Amount() float64 {
	return e.amount
}

func (e Expense) Category() Category {
	return e.category
}

func (e Expense) Desc() string {
	return e.desc
}

func (e Expense) Date() (time.Time, bool) {
	return e.date, !e.date.IsZero()
}

func (e Expense) HasDate() bool {
	return !e.date.IsZero()
}

func (e Expense) Equal(other Expense) bool {
	return e == other
}

// Day truncates t to its calendar date at midnight UTC. The zero time stays zero.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckDate accepts calendar days that survive a round trip through DateLayout. The first day
// of year 1 is the zero time and stands for "no date", so it is rejected as well.
func CheckDate(t time.Time) error {
	d := Day(t)
	if d.IsZero() || d.Year() < minYear || d.Year() > maxYear {
		return errors.Wrapf(ErrInvalidDate, "%04d-%02d-%02d is out of range", t.Year(), int(t.Month()), t.Day())
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", s)
	}
	if err = CheckDate(d); err != nil {
		return time.Time{}, err
	}
	return d, nil
}
