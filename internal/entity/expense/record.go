package expense

import (
	"time"

	"github.com/pkg/errors"
)

// Record is the plain key-value form of an Expense used by every storage format.
type Record struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Desc     string  `json:"desc"`
	Date     *string `json:"date"`
}

func (e Expense) ToRecord() Record {
	rec := Record{
		Amount:   e.amount,
		Category: e.category.String(),
		Desc:     e.desc,
	}
	if e.HasDate() {
		d := e.date.Format(DateLayout)
		rec.Date = &d
	}
	return rec
}

// FromRecord converts a record back into an Expense. A nil or empty date means undated.
func FromRecord(rec Record) (Expense, error) {
	category, err := ParseCategory(rec.Category)
	if err != nil {
		return Expense{}, errors.Wrap(err, "from record")
	}

	var date time.Time
	if rec.Date != nil && *rec.Date != "" {
		date, err = ParseDate(*rec.Date)
		if err != nil {
			return Expense{}, errors.Wrap(err, "from record")
		}
	}

	e, err := New(rec.Amount, category, rec.Desc, date)
	if err != nil {
		return Expense{}, errors.Wrap(err, "from record")
	}
	return e, nil
}
