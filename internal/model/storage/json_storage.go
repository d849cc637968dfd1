package storage

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/entity/expense"
	"max.ks1230/fintrack/internal/model/expenses"
)

const (
	jsonExt     = ".json"
	jsonListKey = "exp_list"
)

type jsonConfig interface {
	JSONFile() string
}

type JSONStore struct {
	fileName string
	logger   *zap.Logger
}

func NewJSONStore(config jsonConfig, logger *zap.Logger) *JSONStore {
	return &JSONStore{
		fileName: config.JSONFile(),
		logger:   logger,
	}
}

// Export writes list to the configured file name inside dir and returns the file path.
func (s *JSONStore) Export(dir string, list *expenses.List) (string, error) {
	s.logger.Info("Export JSON - start", zap.String("dir", dir), zap.Int("items", list.Len()))
	defer s.logger.Info("Export JSON - end")

	f, err := createExportFile(dir, s.fileName)
	if err != nil {
		return "", errors.Wrap(err, "export json")
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = finishExport(f, enc.Encode(list.Serialize()))
	if err != nil {
		return "", errors.Wrap(err, "export json")
	}
	return f.Name(), nil
}

// Import reads a list from path. The document must be a JSON object holding the exp_list key.
func (s *JSONStore) Import(path string) (*expenses.List, error) {
	s.logger.Info("Import JSON - start", zap.String("path", path))
	defer s.logger.Info("Import JSON - end")

	if err := checkImportPath(path, jsonExt); err != nil {
		return nil, errors.Wrap(err, "import json")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "import json")
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "import json: %s", err)
	}
	items, ok := fields[jsonListKey]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidFormat, "import json: missing %q key", jsonListKey)
	}

	var doc expenses.Document
	if err = json.Unmarshal(items, &doc.Items); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "import json: %s", err)
	}
	if doc.Items == nil {
		doc.Items = make([]expense.Record, 0)
	}

	list, err := expenses.Deserialize(doc)
	if err != nil {
		return nil, errors.Wrap(err, "import json")
	}
	s.logger.Info("imported expenses", zap.Int("items", list.Len()))
	return list, nil
}
