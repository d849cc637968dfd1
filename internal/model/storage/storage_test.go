package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"max.ks1230/fintrack/internal/entity/expense"
	"max.ks1230/fintrack/internal/model/expenses"
)

type fileNames struct{}

func (fileNames) JSONFile() string { return "exp.json" }
func (fileNames) CSVFile() string  { return "exp.csv" }

func sampleList(t *testing.T) *expenses.List {
	t.Helper()
	l := expenses.New()
	for _, args := range []struct {
		amount float64
		cat    expense.Category
		desc   string
		date   time.Time
	}{
		{100, expense.Food, "groceries", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{0.1, expense.Transport, "bus, single ride", time.Time{}},
		{1250.75, expense.Rent, `flat "A"`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	} {
		e, err := expense.New(args.amount, args.cat, args.desc, args.date)
		require.NoError(t, err)
		l.Add(e)
	}
	return l
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_OnJSONRoundTrip_ShouldRestoreList(t *testing.T) {
	store := NewJSONStore(fileNames{}, zaptest.NewLogger(t))
	dir := t.TempDir()
	list := sampleList(t)

	path, err := store.Export(dir, list)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exp.json"), path)

	back, err := store.Import(path)
	require.NoError(t, err)
	assert.True(t, list.Equal(back))
}

func Test_OnJSONExport_ShouldWriteExpListKeyAndNullDates(t *testing.T) {
	store := NewJSONStore(fileNames{}, zaptest.NewLogger(t))
	path, err := store.Export(t.TempDir(), sampleList(t))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"exp_list"`)
	assert.Contains(t, string(raw), `"date": null`)
	assert.Contains(t, string(raw), `"date": "2025-06-10"`)
}

func Test_OnExportIntoDirWithExistingFile_ShouldFailAndKeepFile(t *testing.T) {
	store := NewJSONStore(fileNames{}, zaptest.NewLogger(t))
	dir := t.TempDir()
	existing := filepath.Join(dir, "exp.json")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0o644))

	_, err := store.Export(dir, sampleList(t))
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	raw, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(raw))
}

func Test_OnExportToBadTarget_ShouldFail(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))

	_, err := store.Export(filepath.Join(t.TempDir(), "missing"), sampleList(t))
	assert.True(t, errors.Is(err, ErrFileNotFound))

	file := writeFile(t, "plain.txt", "x")
	_, err = store.Export(file, sampleList(t))
	assert.True(t, errors.Is(err, ErrNotDirectory))
}

func Test_OnJSONImportOfBadFiles_ShouldFailWithTypedErrors(t *testing.T) {
	store := NewJSONStore(fileNames{}, zaptest.NewLogger(t))

	_, err := store.Import(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, ErrFileNotFound))

	_, err = store.Import(writeFile(t, "exp.txt", `{"exp_list": []}`))
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = store.Import(writeFile(t, "exp.json", `{"exp_list": [`))
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = store.Import(writeFile(t, "exp.json", `{"items": []}`))
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = store.Import(t.TempDir())
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = store.Import(writeFile(t, "exp.json",
		`{"exp_list": [{"amount": 1, "category": "food", "desc": "x", "date": "10/06/2025"}]}`))
	assert.True(t, errors.Is(err, expense.ErrInvalidDate))
}

func Test_OnJSONImport_ShouldAcceptUpperCaseExtensionAndEmptyList(t *testing.T) {
	store := NewJSONStore(fileNames{}, zaptest.NewLogger(t))
	list, err := store.Import(writeFile(t, "EXP.JSON", `{"exp_list": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}

func Test_OnCSVRoundTrip_ShouldRestoreList(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))
	dir := t.TempDir()
	list := sampleList(t)

	path, err := store.Export(dir, list)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exp.csv"), path)

	back, err := store.Import(path)
	require.NoError(t, err)
	assert.True(t, list.Equal(back))
}

func Test_OnCSVImportWithReorderedColumns_ShouldParse(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))
	path := writeFile(t, "exp.csv", "date,desc,category,amount\n2025-06-10,groceries,food,100\n,bus,transport,2.5\n")

	list, err := store.Import(path)
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "groceries", list.Items()[0].Desc())
	assert.False(t, list.Items()[1].HasDate())
	assert.Equal(t, 102.5, list.ViewAll().Total)
}

func Test_OnCSVImportWithByteOrderMark_ShouldParse(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))
	path := writeFile(t, "exp.csv", "\ufeffamount,category,desc,date\n100,food,groceries,2025-06-10\n")

	list, err := store.Import(path)
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, 100.0, list.Items()[0].Amount())
}

func Test_OnCSVImportWithoutDescColumn_ShouldFailWithInvalidFormat(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))
	path := writeFile(t, "exp.csv", "amount,category,date\n100,food,2025-06-10\n")

	_, err := store.Import(path)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func Test_OnCSVImportOfBadFiles_ShouldFailWithTypedErrors(t *testing.T) {
	store := NewCSVStore(fileNames{}, zaptest.NewLogger(t))

	for name, content := range map[string]string{
		"empty":        "",
		"extra column": "amount,category,desc,date,note\n",
		"duplicate":    "amount,category,desc,desc\n",
		"bad amount":   "amount,category,desc,date\nten,food,x,\n",
		"ragged row":   "amount,category,desc,date\n1,food\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Import(writeFile(t, "exp.csv", content))
			assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
		})
	}

	_, err := store.Import(writeFile(t, "exp.json", "amount,category,desc,date\n"))
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = store.Import(filepath.Join(t.TempDir(), "exp.csv"))
	assert.True(t, errors.Is(err, ErrFileNotFound))

	_, err = store.Import(writeFile(t, "exp.csv", "amount,category,desc,date\n-1,food,x,\n"))
	assert.True(t, errors.Is(err, expense.ErrInvalidAmount))

	_, err = store.Import(writeFile(t, "exp.csv", "amount,category,desc,date\n1,Food,x,\n"))
	assert.True(t, errors.Is(err, expense.ErrInvalidCategory))
}
