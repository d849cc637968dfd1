package expenses

import (
	"fmt"
	"io"

	"max.ks1230/fintrack/internal/entity/expense"
)

type SummaryRecord struct {
	Category expense.Category
	Amount   float64
}

// Summary holds one record per category in canonical order, zero sums included.
type Summary struct {
	Records []SummaryRecord
	Total   float64
}

func (l *List) SummaryByCategory() Summary {
	sums := make(map[expense.Category]float64)
	for _, e := range l.items {
		sums[e.Category()] += e.Amount()
	}

	categories := expense.Categories()
	res := Summary{Records: make([]SummaryRecord, 0, len(categories))}
	for _, c := range categories {
		res.Records = append(res.Records, SummaryRecord{Category: c, Amount: sums[c]})
		res.Total += sums[c]
	}
	return res
}

// Amount returns the sum recorded for c.
func (s Summary) Amount(c expense.Category) float64 {
	for _, rec := range s.Records {
		if rec.Category == c {
			return rec.Amount
		}
	}
	return 0
}

func (s Summary) Render(w io.Writer) error {
	for _, rec := range s.Records {
		if _, err := fmt.Fprintf(w, "%s: %.2f\n", rec.Category, rec.Amount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %.2f\n", s.Total)
	return err
}
