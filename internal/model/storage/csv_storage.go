package storage

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/entity/expense"
	"max.ks1230/fintrack/internal/model/expenses"
)

const csvExt = ".csv"

const utf8BOM = "\ufeff"

const (
	colAmount   = "amount"
	colCategory = "category"
	colDesc     = "desc"
	colDate     = "date"
)

var csvHeader = []string{colAmount, colCategory, colDesc, colDate}

type csvConfig interface {
	CSVFile() string
}

type CSVStore struct {
	fileName string
	logger   *zap.Logger
}

func NewCSVStore(config csvConfig, logger *zap.Logger) *CSVStore {
	return &CSVStore{
		fileName: config.CSVFile(),
		logger:   logger,
	}
}

func (s *CSVStore) Export(dir string, list *expenses.List) (string, error) {
	s.logger.Info("Export CSV - start", zap.String("dir", dir), zap.Int("items", list.Len()))
	defer s.logger.Info("Export CSV - end")

	f, err := createExportFile(dir, s.fileName)
	if err != nil {
		return "", errors.Wrap(err, "export csv")
	}

	err = finishExport(f, writeCSV(f, list.Serialize()))
	if err != nil {
		return "", errors.Wrap(err, "export csv")
	}
	return f.Name(), nil
}

func writeCSV(w io.Writer, doc expenses.Document) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, rec := range doc.Items {
		date := ""
		if rec.Date != nil {
			date = *rec.Date
		}
		row := []string{
			strconv.FormatFloat(rec.Amount, 'f', -1, 64),
			rec.Category,
			rec.Desc,
			date,
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	writer.Flush()
	return writer.Error()
}

// Import reads a list from path. The header must hold exactly the amount, category, desc and
// date columns, in any order.
func (s *CSVStore) Import(path string) (*expenses.List, error) {
	s.logger.Info("Import CSV - start", zap.String("path", path))
	defer s.logger.Info("Import CSV - end")

	if err := checkImportPath(path, csvExt); err != nil {
		return nil, errors.Wrap(err, "import csv")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "import csv")
	}
	defer f.Close()

	doc, err := readCSV(f)
	if err != nil {
		return nil, errors.Wrap(err, "import csv")
	}

	list, err := expenses.Deserialize(doc)
	if err != nil {
		return nil, errors.Wrap(err, "import csv")
	}
	s.logger.Info("imported expenses", zap.Int("items", list.Len()))
	return list, nil
}

func readCSV(r io.Reader) (expenses.Document, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return expenses.Document{}, errors.Wrap(ErrInvalidFormat, "missing header")
		}
		return expenses.Document{}, errors.Wrapf(ErrInvalidFormat, "read header: %s", err)
	}
	colIndex, err := headerIndex(header)
	if err != nil {
		return expenses.Document{}, err
	}

	doc := expenses.Document{Items: make([]expense.Record, 0)}
	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return expenses.Document{}, errors.Wrapf(ErrInvalidFormat, "line %d: %s", line, readErr)
		}

		amount, convErr := strconv.ParseFloat(strings.TrimSpace(row[colIndex[colAmount]]), 64)
		if convErr != nil {
			return expenses.Document{}, errors.Wrapf(ErrInvalidFormat, "line %d: amount %q",
				line, row[colIndex[colAmount]])
		}
		rec := expense.Record{
			Amount:   amount,
			Category: row[colIndex[colCategory]],
			Desc:     row[colIndex[colDesc]],
		}
		if date := strings.TrimSpace(row[colIndex[colDate]]); date != "" {
			rec.Date = &date
		}
		doc.Items = append(doc.Items, rec)
	}
	return doc, nil
}

func headerIndex(header []string) (map[string]int, error) {
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		colIndex[strings.TrimSpace(col)] = i
	}
	if len(header) != len(csvHeader) || len(colIndex) != len(csvHeader) {
		return nil, errors.Wrapf(ErrInvalidFormat, "columns %v, want %v", header, csvHeader)
	}
	for _, col := range csvHeader {
		if _, ok := colIndex[col]; !ok {
			return nil, errors.Wrapf(ErrInvalidFormat, "missing column %q", col)
		}
	}
	return colIndex, nil
}
