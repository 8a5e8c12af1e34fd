package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pkordes/phonebook/internal/handler"
	"github.com/pkordes/phonebook/internal/service"
)

// mockEntryServicer is a testify mock for handler.EntryServicer.
type mockEntryServicer struct {
	mock.Mock
}

func (m *mockEntryServicer) Add(ctx context.Context, in service.CreateEntryInput) (service.EntryView, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(service.EntryView), args.Error(1)
}

func (m *mockEntryServicer) Update(ctx context.Context, in service.UpdateEntryInput) (service.EntryView, bool, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(service.EntryView), args.Bool(1), args.Error(2)
}

func (m *mockEntryServicer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEntryServicer) GetByID(ctx context.Context, id uuid.UUID) (service.EntryView, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.EntryView), args.Bool(1), args.Error(2)
}

func (m *mockEntryServicer) List(ctx context.Context) ([]service.EntryView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.EntryView), args.Error(1)
}

func (m *mockEntryServicer) ListByTag(ctx context.Context, tag string) ([]service.EntryView, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]service.EntryView), args.Error(1)
}

// mockExportServicer is a testify mock for handler.ExportServicer.
type mockExportServicer struct {
	mock.Mock
}

func (m *mockExportServicer) Export(ctx context.Context, tag string) ([]service.ExportRow, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]service.ExportRow), args.Error(1)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.EntryServicer  = (*mockEntryServicer)(nil)
	_ handler.ExportServicer = (*mockExportServicer)(nil)
)
