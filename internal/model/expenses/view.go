package expenses

import (
	"fmt"
	"io"
	"text/tabwriter"

	"max.ks1230/fintrack/internal/entity/expense"
)

const noDate = "-"

// View is a filtered subsequence of a List together with the sum of its amounts.
type View struct {
	Items []expense.Expense
	Total float64
}

func newView(items []expense.Expense, keep func(expense.Expense) bool) View {
	res := View{Items: make([]expense.Expense, 0)}
	for _, e := range items {
		if keep(e) {
			res.Items = append(res.Items, e)
			res.Total += e.Amount()
		}
	}
	return res
}

func (v View) Empty() bool {
	return len(v.Items) == 0
}

// Render writes the view as a table followed by the total.
func (v View) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tCategory\tAmount\tDescription")
	for i, e := range v.Items {
		date := noDate
		if d, ok := e.Date(); ok {
			date = d.Format(expense.DateLayout)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", i+1, date, e.Category(), e.Amount(), e.Desc())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %.2f\n", v.Total)
	return err
}
