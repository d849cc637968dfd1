package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
)

type config interface {
	LogFile() string
}

// New builds the session logger. LOG_ENV selects the dev or prod encoder. The log file is
// truncated on every start. An empty file name disables logging.
func New(config config) (*zap.Logger, error) {
	path := config.LogFile()
	if path == "" {
		return zap.NewNop(), nil
	}

	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var zcfg zap.Config
	switch env {
	case "dev":
		zcfg = zap.NewDevelopmentConfig()
	case "prod":
		zcfg = zap.NewProductionConfig()
	default:
		return nil, errors.Errorf("unknown %s %q", logEnvKey, env)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "logger init")
	}
	if err = f.Close(); err != nil {
		return nil, errors.Wrap(err, "logger init")
	}

	zcfg.OutputPaths = []string{path}
	logger, err := zcfg.Build()
	return logger, errors.Wrap(err, "logger init")
}
