package main

import (
	"context"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockEntryStore is a mock implementation of the entries store
type MockEntryStore struct {
	mock.Mock
}

func (m *MockEntryStore) GetByPeriod(ctx context.Context, category string, year, month store.FlexInt) ([]store.Entry, error) {
	args := m.Called(ctx, category, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Entry), args.Error(1)
}

func (m *MockEntryStore) GetByYear(ctx context.Context, category string, year store.FlexInt) ([]store.Entry, error) {
	args := m.Called(ctx, category, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Entry), args.Error(1)
}

func (m *MockEntryStore) GetYearlyTotals(ctx context.Context, year store.FlexInt) (store.YearlyTotals, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.YearlyTotals), args.Error(1)
}

func (m *MockEntryStore) InsertEntry(ctx context.Context, entry *store.NewEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryStore) UpdateEntry(ctx context.Context, id store.FlexInt, update *store.EntryUpdate) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryStore) DeleteEntry(ctx context.Context, id store.FlexInt) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsStore is a mock implementation of the settings store
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) GetSettings(ctx context.Context) (*store.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Settings), args.Error(1)
}

func (m *MockSettingsStore) SaveSettings(ctx context.Context, settings *store.SettingsUpdate) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockHealthStore is a mock implementation of the database health check
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
