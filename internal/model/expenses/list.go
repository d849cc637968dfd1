package expenses

import (
	"time"

	"github.com/pkg/errors"
	"max.ks1230/fintrack/internal/entity/expense"
)

var ErrInvalidRange = errors.New("invalid date range")

// List is an append-only, insertion-ordered collection of expenses.
type List struct {
	items []expense.Expense
}

func New() *List {
	return &List{items: make([]expense.Expense, 0)}
}

// Add appends e. Expenses are values, so later changes by the caller cannot reach the stored copy.
func (l *List) Add(e expense.Expense) {
	l.items = append(l.items, e)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Items() []expense.Expense {
	res := make([]expense.Expense, len(l.items))
	copy(res, l.items)
	return res
}

func (l *List) Equal(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !l.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

func (l *List) ViewAll() View {
	return newView(l.items, func(expense.Expense) bool { return true })
}

func (l *List) ViewByCategory(category expense.Category) View {
	return newView(l.items, func(e expense.Expense) bool {
		return e.Category() == category
	})
}

// ViewByDateRange returns dated expenses within [from, to], compared by calendar day.
func (l *List) ViewByDateRange(from, to time.Time) (View, error) {
	from, to = expense.Day(from), expense.Day(to)
	if to.Before(from) {
		return View{}, errors.Wrapf(ErrInvalidRange, "%s is before %s",
			to.Format(expense.DateLayout), from.Format(expense.DateLayout))
	}
	return newView(l.items, func(e expense.Expense) bool {
		d, ok := e.Date()
		return ok && !d.Before(from) && !d.After(to)
	}), nil
}
