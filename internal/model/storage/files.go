package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidFormat = errors.New("invalid format")
	ErrAlreadyExists = errors.New("file already exists")
	ErrNotDirectory  = errors.New("not a directory")
)

const exportFileMode = 0o644

// checkImportPath makes sure path is an existing regular file with the given extension.
func checkImportPath(path, ext string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrFileNotFound, path)
		}
		return errors.Wrap(err, "stat import file")
	}
	if info.IsDir() {
		return errors.Wrapf(ErrInvalidFormat, "%s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return errors.Wrapf(ErrInvalidFormat, "%s does not have a %s extension", path, ext)
	}
	return nil
}

// createExportFile creates dir/name, refusing to touch a file that is already there.
func createExportFile(dir, name string) (*os.File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrFileNotFound, dir)
		}
		return nil, errors.Wrap(err, "stat export directory")
	}
	if !info.IsDir() {
		return nil, errors.Wrap(ErrNotDirectory, dir)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, exportFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, errors.Wrap(ErrAlreadyExists, path)
		}
		return nil, errors.Wrap(err, "create export file")
	}
	return f, nil
}

// finishExport closes f and removes it when writing failed.
func finishExport(f *os.File, writeErr error) error {
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(f.Name())
		return writeErr
	}
	return nil
}
