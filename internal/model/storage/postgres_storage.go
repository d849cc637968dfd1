package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/entity/expense"
	"max.ks1230/fintrack/internal/model/expenses"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

const expensesTable = "expenses"

// Rows per INSERT statement. Each row binds 5 parameters.
const insertBatchSize = 1000

const createTableQuery = `
CREATE TABLE IF NOT EXISTS expenses (
	position     INTEGER PRIMARY KEY,
	amount       DOUBLE PRECISION NOT NULL,
	category     TEXT NOT NULL,
	description  TEXT NOT NULL,
	expense_date DATE NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config config, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, logger: logger}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createTableQuery)
	return errors.Wrap(err, "ensure schema")
}

// SaveList replaces the stored expenses with list in a single transaction.
func (s *PostgresStorage) SaveList(ctx context.Context, list *expenses.List) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "saveList")
	defer span.Finish()

	s.logger.Info("SaveList - start", zap.Int("items", list.Len()))
	defer s.logger.Info("SaveList - end")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save list")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			s.logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = psql.Delete(expensesTable).RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save list")
	}

	for _, query := range insertQueries(list.Serialize().Items) {
		if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "save list")
		}
	}
	return errors.Wrap(tx.Commit(), "save list")
}

// insertQueries splits records into statements that stay below the Postgres limit of 65535
// bind parameters.
func insertQueries(records []expense.Record) []sq.InsertBuilder {
	res := make([]sq.InsertBuilder, 0, len(records)/insertBatchSize+1)
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		res = append(res, insertQuery(records[start:end], start))
	}
	return res
}

// insertQuery stores records at positions starting from offset.
func insertQuery(records []expense.Record, offset int) sq.InsertBuilder {
	query := psql.Insert(expensesTable).
		Columns("position", "amount", "category", "description", "expense_date")
	for i, rec := range records {
		var date interface{}
		if rec.Date != nil {
			date = *rec.Date
		}
		query = query.Values(offset+i, rec.Amount, rec.Category, rec.Desc, date)
	}
	return query
}

func selectQuery() sq.SelectBuilder {
	return psql.Select("amount", "category", "description", "to_char(expense_date, 'YYYY-MM-DD')").
		From(expensesTable).
		OrderBy("position")
}

// LoadList reads the stored expenses back in their saved order.
func (s *PostgresStorage) LoadList(ctx context.Context) (*expenses.List, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "loadList")
	defer span.Finish()

	s.logger.Info("LoadList - start")
	defer s.logger.Info("LoadList - end")

	rows, err := selectQuery().RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load list")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			s.logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	doc := expenses.Document{Items: make([]expense.Record, 0)}
	for rows.Next() {
		var (
			rec  expense.Record
			date sql.NullString
		)
		if err = rows.Scan(&rec.Amount, &rec.Category, &rec.Desc, &date); err != nil {
			return nil, errors.Wrap(err, "load list")
		}
		if date.Valid {
			rec.Date = &date.String
		}
		doc.Items = append(doc.Items, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "load list")
	}

	list, err := expenses.Deserialize(doc)
	return list, errors.Wrap(err, "load list")
}
