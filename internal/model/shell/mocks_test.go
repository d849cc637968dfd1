package shell

import (
	"context"

	"github.com/stretchr/testify/mock"
	"max.ks1230/fintrack/internal/model/expenses"
)

type fileStoreMock struct {
	mock.Mock
}

func (m *fileStoreMock) Export(dir string, list *expenses.List) (string, error) {
	args := m.Called(dir, list)
	return args.String(0), args.Error(1)
}

func (m *fileStoreMock) Import(path string) (*expenses.List, error) {
	args := m.Called(path)
	list, _ := args.Get(0).(*expenses.List)
	return list, args.Error(1)
}

type dbStoreMock struct {
	mock.Mock
}

func (m *dbStoreMock) SaveList(ctx context.Context, list *expenses.List) error {
	return m.Called(ctx, list).Error(0)
}

func (m *dbStoreMock) LoadList(ctx context.Context) (*expenses.List, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*expenses.List)
	return list, args.Error(1)
}
