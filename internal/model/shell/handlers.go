package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/entity/expense"
	"max.ks1230/fintrack/internal/model/expenses"
	"max.ks1230/fintrack/internal/model/storage"
)

const (
	noExpensesMessage = "No expenses found."
	overwriteWarning  = "Warning: this will overwrite the current expense list."
	failedLoadMessage = "Failed to load."
)

var failureMessages = []struct {
	err  error
	text string
}{
	{expense.ErrInvalidAmount, "Amount must be a non-negative number."},
	{expense.ErrInvalidCategory, "Unknown category."},
	{expense.ErrInvalidDate, "Invalid date given."},
	{expenses.ErrInvalidRange, "TO is an earlier date than FROM."},
	{expenses.ErrInvalidPeriod, "Unknown period."},
	{storage.ErrFileNotFound, "File not found."},
	{storage.ErrInvalidFormat, "Invalid file format."},
	{storage.ErrAlreadyExists, "The file already exists."},
	{storage.ErrNotDirectory, "Not a directory."},
}

func failureMessage(err error) string {
	for _, m := range failureMessages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return "Operation failed."
}

func (s *Shell) handleAdd(_ context.Context) error {
	amount, err := s.readAmount()
	if err != nil {
		return errors.Wrap(err, "add expense")
	}
	category, err := s.readCategory()
	if err != nil {
		return errors.Wrap(err, "add expense")
	}
	desc, err := s.prompt("Enter description: ")
	if err != nil {
		return errors.Wrap(err, "add expense")
	}

	var date time.Time
	withDate, err := s.readYesNo("Do you want to add a date? (y/n) ")
	if err != nil {
		return errors.Wrap(err, "add expense")
	}
	if withDate {
		date, err = s.readDate("Enter date (YYYY-MM-DD or YYYY MM DD): ")
		if err != nil {
			return errors.Wrap(err, "add expense")
		}
	}

	exp, err := expense.New(amount, category, desc, date)
	if err != nil {
		return errors.Wrap(err, "add expense")
	}
	s.list.Add(exp)
	s.logger.Info("expense added",
		zap.Float64("amount", amount),
		zap.String("category", category.String()),
		zap.Int("items", s.list.Len()),
	)
	s.println("Expense added.")
	return nil
}

func (s *Shell) handleViewAll(_ context.Context) error {
	return s.render(s.list.ViewAll())
}

func (s *Shell) handleViewByDate(_ context.Context) error {
	s.println("Date FROM")
	text, err := s.promptTrimmed(fmt.Sprintf("Enter date (YYYY-MM-DD or YYYY MM DD) or a period (%s): ",
		strings.Join(expenses.Periods(), ", ")))
	if err != nil {
		return errors.Wrap(err, "view by date")
	}

	if expenses.IsPeriod(text) {
		view, err := s.list.ViewByPeriod(text, s.now())
		if err != nil {
			return errors.Wrap(err, "view by date")
		}
		return s.render(view)
	}

	from, err := parseDate(text)
	if err != nil {
		return errors.Wrap(err, "view by date")
	}
	s.println("Date TO")
	to, err := s.readDate("Enter date (YYYY-MM-DD or YYYY MM DD): ")
	if err != nil {
		return errors.Wrap(err, "view by date")
	}

	view, err := s.list.ViewByDateRange(from, to)
	if err != nil {
		return errors.Wrap(err, "view by date")
	}
	return s.render(view)
}

func (s *Shell) handleViewByCategory(_ context.Context) error {
	category, err := s.readCategory()
	if err != nil {
		return errors.Wrap(err, "view by category")
	}
	return s.render(s.list.ViewByCategory(category))
}

func (s *Shell) handleSummary(_ context.Context) error {
	return errors.Wrap(s.list.SummaryByCategory().Render(s.out), "summary")
}

func (s *Shell) render(view expenses.View) error {
	if view.Empty() {
		s.println(noExpensesMessage)
		return nil
	}
	return errors.Wrap(view.Render(s.out), "render view")
}

func (s *Shell) handleSaveJSON(_ context.Context) error {
	return s.export(s.stores.JSON, "JSON")
}

func (s *Shell) handleSaveCSV(_ context.Context) error {
	return s.export(s.stores.CSV, "CSV")
}

func (s *Shell) export(store FileStore, format string) error {
	dir, err := s.promptTrimmed("Store directory (for the " + format + " file): ")
	if err != nil {
		return errors.Wrap(err, "export")
	}
	path, err := store.Export(dir, s.list)
	if err != nil {
		return errors.Wrap(err, "export")
	}
	s.print("Saved %d expenses to %s\n", s.list.Len(), path)
	return nil
}

func (s *Shell) handleLoadJSON(_ context.Context) error {
	return s.load(s.stores.JSON, "JSON")
}

func (s *Shell) handleLoadCSV(_ context.Context) error {
	return s.load(s.stores.CSV, "CSV")
}

// load replaces the session list only after the import has fully succeeded.
func (s *Shell) load(store FileStore, format string) error {
	s.println(overwriteWarning)
	path, err := s.promptTrimmed("Enter a path to the " + format + " file of expenses: ")
	if err != nil {
		return errors.Wrap(err, "import")
	}
	list, err := store.Import(path)
	if err != nil {
		s.println(failedLoadMessage)
		return errors.Wrap(err, "import")
	}
	s.replaceList(list)
	return nil
}

func (s *Shell) handleSaveDB(ctx context.Context) error {
	if err := s.stores.DB.SaveList(ctx, s.list); err != nil {
		return errors.Wrap(err, "save to database")
	}
	s.print("Saved %d expenses to the database\n", s.list.Len())
	return nil
}

func (s *Shell) handleLoadDB(ctx context.Context) error {
	s.println(overwriteWarning)
	list, err := s.stores.DB.LoadList(ctx)
	if err != nil {
		s.println(failedLoadMessage)
		return errors.Wrap(err, "load from database")
	}
	s.replaceList(list)
	return nil
}

func (s *Shell) replaceList(list *expenses.List) {
	s.list = list
	s.logger.Info("expense list replaced", zap.Int("items", list.Len()))
	s.print("Loaded %d expenses\n", list.Len())
}
