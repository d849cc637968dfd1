package expense

import "github.com/pkg/errors"

type Category int

const (
	Rent Category = iota
	Transport
	Food
	Health
	Lifestyle
	Savings
	Leisure
)

var ErrInvalidCategory = errors.New("invalid category")

// categories is the canonical order used by summaries and prompts.
var categories = []Category{Rent, Transport, Food, Health, Lifestyle, Savings, Leisure}

var labels = map[Category]string{
	Rent:      "rent",
	Transport: "transport",
	Food:      "food",
	Health:    "health",
	Lifestyle: "lifestyle",
	Savings:   "savings",
	Leisure:   "leisure",
}

// Categories returns every category in canonical order.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// Labels returns the text label of every category in canonical order.
func Labels() []string {
	res := make([]string, 0, len(categories))
	for _, c := range categories {
		res = append(res, labels[c])
	}
	return res
}

// Label returns the text label of c. Values outside the enumeration fail with ErrInvalidCategory.
func (c Category) Label() (string, error) {
	l, ok := labels[c]
	if !ok {
		return "", errors.Wrapf(ErrInvalidCategory, "category %d has no label", int(c))
	}
	return l, nil
}

func (c Category) String() string {
	l, err := c.Label()
	if err != nil {
		return "unknown"
	}
	return l
}

// ParseCategory matches text case-sensitively against the label table.
func ParseCategory(text string) (Category, error) {
	for c, l := range labels {
		if l == text {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidCategory, "%q", text)
}
