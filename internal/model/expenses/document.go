package expenses

import (
	"github.com/pkg/errors"
	"max.ks1230/fintrack/internal/entity/expense"
)

// Document is the format-neutral form of a whole List.
type Document struct {
	Items []expense.Record `json:"exp_list"`
}

func (l *List) Serialize() Document {
	doc := Document{Items: make([]expense.Record, 0, len(l.items))}
	for _, e := range l.items {
		doc.Items = append(doc.Items, e.ToRecord())
	}
	return doc
}

// Deserialize builds a List from doc, keeping record order. It stops at the first invalid record.
func Deserialize(doc Document) (*List, error) {
	l := &List{items: make([]expense.Expense, 0, len(doc.Items))}
	for i, rec := range doc.Items {
		e, err := expense.FromRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		l.Add(e)
	}
	return l, nil
}
