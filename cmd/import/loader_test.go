package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/farxc/cesla-billing/internal/logger"
	"github.com/farxc/cesla-billing/internal/report"
	"github.com/farxc/cesla-billing/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEntryInserter struct {
	mock.Mock
}

func (m *MockEntryInserter) InsertEntry(ctx context.Context, entry *store.NewEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func departmentIs(name string) any {
	return mock.MatchedBy(func(e *store.NewEntry) bool { return e.Department == name })
}

func TestLoadEntriesContinuesPastFailedRows(t *testing.T) {
	csv := "category;year;month;department;amount\n" +
		"utilities;2024;1;IT;1.234,56\n" +
		"utilities;2024;1;HR;10\n" +
		"utilities;2024;2;Nursing;20\n"

	rows, rowErrors, err := report.ReadEntries(strings.NewReader(csv), report.EncodingUTF8, ';')
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, rows, 3)

	inserter := new(MockEntryInserter)
	inserter.On("InsertEntry", mock.Anything, departmentIs("IT")).Return(int64(1), nil).Once()
	inserter.On("InsertEntry", mock.Anything, departmentIs("HR")).
		Return(int64(0), errors.New("numeric field overflow")).Once()
	inserter.On("InsertEntry", mock.Anything, departmentIs("Nursing")).Return(int64(2), nil).Once()

	logs := &bytes.Buffer{}
	inserted := loadEntries(context.Background(), inserter, rows, logger.NewWithWriter(logs, logger.LevelDebug))

	assert.Equal(t, 2, inserted)
	assert.Contains(t, logs.String(), "numeric field overflow")
	assert.Contains(t, logs.String(), "department=HR")
	inserter.AssertExpectations(t)
}

func TestLoadEntriesStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inserter := new(MockEntryInserter)
	rows := []store.NewEntry{{Category: "utilities", Department: "IT"}}

	logs := &bytes.Buffer{}
	inserted := loadEntries(ctx, inserter, rows, logger.NewWithWriter(logs, logger.LevelDebug))

	assert.Zero(t, inserted)
	assert.Contains(t, logs.String(), "remaining=1")
	inserter.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything)
}
