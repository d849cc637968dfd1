package expense

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func Test_OnNegativeAmount_ShouldFailWithInvalidAmount(t *testing.T) {
	_, err := New(-1, Food, "groceries", testDate)
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = New(math.NaN(), Food, "groceries", testDate)
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = New(math.Inf(1), Food, "groceries", testDate)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func Test_OnZeroAmount_ShouldCreateExpense(t *testing.T) {
	e, err := New(0, Rent, "", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Amount())
	assert.False(t, e.HasDate())
}

func Test_OnNew_ShouldExposeFields(t *testing.T) {
	e, err := New(100, Food, "Weekly grocery shopping.", testDate)
	require.NoError(t, err)

	assert.Equal(t, 100.0, e.Amount())
	assert.Equal(t, Food, e.Category())
	assert.Equal(t, "Weekly grocery shopping.", e.Desc())
	d, ok := e.Date()
	assert.True(t, ok)
	assert.Equal(t, testDate, d)
}

func Test_OnNewWithTimeOfDay_ShouldKeepOnlyTheDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	e, err := New(1, Food, "lunch", time.Date(2025, 6, 10, 13, 45, 0, 0, loc))
	require.NoError(t, err)

	same, err := New(1, Food, "lunch", testDate)
	require.NoError(t, err)
	assert.True(t, e.Equal(same))
	assert.Equal(t, e, same)
}

func Test_OnUnknownCategoryValue_ShouldFail(t *testing.T) {
	_, err := New(1, Category(42), "x", testDate)
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.Equal(t, "unknown", Category(42).String())
}

func Test_OnParseCategory_ShouldMatchLabelsCaseSensitively(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCategory("Food")
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	_, err = ParseCategory("invalid")
	assert.True(t, errors.Is(err, ErrInvalidCategory))
}

func Test_OnLabels_ShouldFollowCanonicalOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"rent", "transport", "food", "health", "lifestyle", "savings", "leisure"},
		Labels())
}

func Test_OnRecordRoundTrip_ShouldReturnEqualExpense(t *testing.T) {
	dated, err := New(100, Food, "groceries", testDate)
	require.NoError(t, err)
	undated, err := New(12.5, Transport, "bus ticket", time.Time{})
	require.NoError(t, err)

	for _, e := range []Expense{dated, undated} {
		back, err := FromRecord(e.ToRecord())
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}

func Test_OnToRecord_ShouldFormatDateOrLeaveItNil(t *testing.T) {
	dated, _ := New(100, Food, "groceries", testDate)
	rec := dated.ToRecord()
	require.NotNil(t, rec.Date)
	assert.Equal(t, "2025-06-10", *rec.Date)
	assert.Equal(t, "food", rec.Category)

	undated, _ := New(100, Food, "groceries", time.Time{})
	assert.Nil(t, undated.ToRecord().Date)
}

func Test_OnFromRecordWithBadFields_ShouldReturnTypedErrors(t *testing.T) {
	bad := "2025-13-40"
	empty := ""

	_, err := FromRecord(Record{Amount: 1, Category: "cars"})
	assert.True(t, errors.Is(err, ErrInvalidCategory))

	_, err = FromRecord(Record{Amount: 1, Category: "food", Date: &bad})
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = FromRecord(Record{Amount: -5, Category: "food"})
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	e, err := FromRecord(Record{Amount: 1, Category: "food", Date: &empty})
	require.NoError(t, err)
	assert.False(t, e.HasDate())
}

func Test_OnDateOutsideWritableRange_ShouldFailWithInvalidDate(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(-5, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1, 1, 1, 18, 30, 0, 0, time.UTC),
	} {
		_, err := New(1, Food, "x", d)
		assert.True(t, errors.Is(err, ErrInvalidDate), d.String())
	}

	_, err := ParseDate("0001-01-01")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func Test_OnBoundaryDates_ShouldRoundTripThroughRecord(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC),
	} {
		e, err := New(1, Food, "x", d)
		require.NoError(t, err)
		assert.True(t, e.HasDate())

		back, err := FromRecord(e.ToRecord())
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}
