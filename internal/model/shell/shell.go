package shell

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/model/expenses"
)

const exitOption = 10

// FileStore exports a list into a directory and imports one back from a file.
type FileStore interface {
	Export(dir string, list *expenses.List) (string, error)
	Import(path string) (*expenses.List, error)
}

// DBStore keeps a single list in a database.
type DBStore interface {
	SaveList(ctx context.Context, list *expenses.List) error
	LoadList(ctx context.Context) (*expenses.List, error)
}

// Stores groups the persistence backends of a session. DB may be nil.
type Stores struct {
	JSON FileStore
	CSV  FileStore
	DB   DBStore
}

type handler func(ctx context.Context) error

type operation struct {
	name   string
	title  string
	handle handler
}

type handlerMap map[int]operation

// Shell runs the numbered menu over a line oriented input stream. It owns the session list.
type Shell struct {
	in          *bufio.Scanner
	out         io.Writer
	list        *expenses.List
	stores      Stores
	logger      *zap.Logger
	now         func() time.Time
	handlersMap handlerMap
}

func New(in io.Reader, out io.Writer, stores Stores, logger *zap.Logger) *Shell {
	res := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		list:   expenses.New(),
		stores: stores,
		logger: logger,
		now:    time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *Shell) handlerMap {
	m := handlerMap{
		1:          {name: "add", title: "Add expense", handle: s.handleAdd},
		2:          {name: "view_all", title: "View all expenses", handle: s.handleViewAll},
		3:          {name: "view_by_date", title: "View expenses by date", handle: s.handleViewByDate},
		4:          {name: "view_by_category", title: "View expenses by category", handle: s.handleViewByCategory},
		5:          {name: "summary", title: "View expenses summary by category", handle: s.handleSummary},
		6:          {name: "save_json", title: "Save to JSON", handle: s.handleSaveJSON},
		7:          {name: "save_csv", title: "Save to CSV", handle: s.handleSaveCSV},
		8:          {name: "load_json", title: "Load from JSON", handle: s.handleLoadJSON},
		9:          {name: "load_csv", title: "Load from CSV", handle: s.handleLoadCSV},
		exitOption: {name: "exit", title: "Exit"},
	}
	if s.stores.DB != nil {
		m[11] = operation{name: "save_db", title: "Save to database", handle: s.handleSaveDB}
		m[12] = operation{name: "load_db", title: "Load from database", handle: s.handleLoadDB}
	}
	return m
}

// List returns the current session list.
func (s *Shell) List() *expenses.List {
	return s.list
}

// Run serves the menu until the user exits or the input ends. Only input stream failures are
// returned; operation failures are reported to the user and the loop goes on.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("Application started.")
	defer s.logger.Info("Application stopped.")

	for ctx.Err() == nil {
		s.printMenu()
		line, err := s.promptTrimmed("Enter option number: ")
		if err != nil {
			return inputFailure(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			s.println("Invalid input.")
			continue
		}
		op, ok := s.handlersMap[choice]
		if !ok {
			s.logger.Info("unknown menu option", zap.Int("choice", choice))
			s.println("Invalid number.")
			continue
		}
		if choice == exitOption {
			s.logger.Info("Choice - exit", zap.Int("choice", choice))
			return nil
		}

		if err = s.execute(ctx, choice, op); err != nil {
			var rerr readError
			if errors.As(err, &rerr) {
				return inputFailure(err)
			}
		}
	}
	return nil
}

// inputFailure turns the end of input into a clean stop.
func inputFailure(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) execute(ctx context.Context, choice int, op operation) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "shell."+op.name)
	defer span.Finish()

	s.logger.Info("Choice - start", zap.Int("choice", choice), zap.String("operation", op.name))
	defer s.logger.Info("Choice - end", zap.Int("choice", choice), zap.String("operation", op.name))

	start := time.Now()
	err := op.handle(ctx)
	observeOperation(op.name, time.Since(start), err != nil)

	if err == nil {
		return nil
	}
	ext.Error.Set(span, true)

	var rerr readError
	if errors.As(err, &rerr) {
		return err
	}
	s.logger.Error("operation failed", zap.String("operation", op.name), zap.Error(err))
	s.println(failureMessage(err))
	return err
}

func (s *Shell) printMenu() {
	keys := make([]int, 0, len(s.handlersMap))
	for k := range s.handlersMap {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	s.println("")
	for _, k := range keys {
		s.print("%-4s%s\n", strconv.Itoa(k)+".", s.handlersMap[k].title)
	}
	s.println("")
}
