package expenses

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

var ErrInvalidPeriod = errors.New("invalid period")

type bounds func(n *now.Now) (time.Time, time.Time)

var periodFilters = map[string]bounds{
	"week": func(n *now.Now) (time.Time, time.Time) {
		return n.BeginningOfWeek(), n.EndOfWeek()
	},
	"month": func(n *now.Now) (time.Time, time.Time) {
		return n.BeginningOfMonth(), n.EndOfMonth()
	},
	"year": func(n *now.Now) (time.Time, time.Time) {
		return n.BeginningOfYear(), n.EndOfYear()
	},
}

// ViewByPeriod returns the expenses dated within the week, month or year containing at.
func (l *List) ViewByPeriod(period string, at time.Time) (View, error) {
	filter, ok := periodFilters[period]
	if !ok {
		return View{}, errors.Wrapf(ErrInvalidPeriod, "%q", period)
	}
	from, to := filter(now.With(at))
	return l.ViewByDateRange(from, to)
}

func Periods() []string {
	res := make([]string, 0, len(periodFilters))
	for k := range periodFilters {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func IsPeriod(s string) bool {
	_, ok := periodFilters[s]
	return ok
}
