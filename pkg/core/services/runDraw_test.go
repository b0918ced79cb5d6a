package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/internal/config"
	"github.com/acampayo/mealdraw/pkg/core/assigner"
	"github.com/acampayo/mealdraw/pkg/db"
)

// mockStore implements a test double for the draw history store
type mockStore struct {
	runs        []db.DrawRun
	assignments []db.Assignment
	notes       []db.CapacityNote
	insertErr   error
	getErr      error
}

func (m *mockStore) InsertDrawRun(ctx context.Context, run db.DrawRun, assignments []db.Assignment, notes []db.CapacityNote) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.runs = append(m.runs, run)
	m.assignments = append(m.assignments, assignments...)
	m.notes = append(m.notes, notes...)
	return nil
}

func (m *mockStore) GetDrawRuns(ctx context.Context) ([]db.DrawRun, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.runs, nil
}

func (m *mockStore) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var matched []db.Assignment
	for _, a := range m.assignments {
		if a.RunID == runID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Groups: []config.GroupConfig{
			{Kind: "lunch", Day: 9},
			{Kind: "dinner", Day: 9},
			{Kind: "lunch", Day: 10},
		},
	}
}

const testMessage = `TODO:
Juan
María
Pedro
Lucía

- Dinner 9
Carlos
`

func TestRunDraw_AssignsAndRecords(t *testing.T) {
	mock := &mockStore{}

	result, err := RunDraw(context.Background(), mock, testConfig(), zap.NewNop(), testMessage, 7, false)
	require.NoError(t, err)

	assert.Len(t, result.Outcome.Assignment, 5)
	assert.Equal(t, "Dinner 9", result.Outcome.Assignment["Carlos"])
	assert.True(t, result.Persisted)

	require.Len(t, mock.runs, 1)
	assert.Equal(t, result.RunID, mock.runs[0].ID)
	assert.Equal(t, int64(7), mock.runs[0].Seed)
	assert.Equal(t, 5, mock.runs[0].PeopleCount)
	assert.Equal(t, 3, mock.runs[0].GroupCount)
	assert.Len(t, mock.assignments, 5)
	assert.Empty(t, mock.notes)
}

func TestRunDraw_DryRunSkipsStore(t *testing.T) {
	mock := &mockStore{}

	result, err := RunDraw(context.Background(), mock, testConfig(), zap.NewNop(), testMessage, 7, true)
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.Empty(t, mock.runs)
}

func TestRunDraw_NilStoreStillDraws(t *testing.T) {
	result, err := RunDraw(context.Background(), nil, testConfig(), zap.NewNop(), testMessage, 7, false)
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.Len(t, result.Outcome.Assignment, 5)
}

func TestRunDraw_SameSeedSameAssignment(t *testing.T) {
	first, err := RunDraw(context.Background(), nil, testConfig(), zap.NewNop(), testMessage, 99, false)
	require.NoError(t, err)

	second, err := RunDraw(context.Background(), nil, testConfig(), zap.NewNop(), testMessage, 99, false)
	require.NoError(t, err)

	assert.Equal(t, first.Outcome.Assignment, second.Outcome.Assignment)
}

func TestRunDraw_RecordsCapacityNotes(t *testing.T) {
	mock := &mockStore{}
	cfg := &config.Config{
		Groups: []config.GroupConfig{
			{Kind: "lunch", Day: 9},
			{Kind: "dinner", Day: 9},
		},
	}
	msg := `- Dinner 9
a
b
c
`

	result, err := RunDraw(context.Background(), mock, cfg, zap.NewNop(), msg, 1, false)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	require.Len(t, mock.notes, 1)
	assert.Equal(t, "Dinner 9", mock.notes[0].GroupID)
	assert.Equal(t, result.RunID, mock.notes[0].RunID)
}

func TestRunDraw_EmptyMessage(t *testing.T) {
	_, err := RunDraw(context.Background(), &mockStore{}, testConfig(), zap.NewNop(), "", 1, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no participants")
}

func TestRunDraw_UnknownGroupReference(t *testing.T) {
	msg := `- Dinner 12
Carlos
`

	_, err := RunDraw(context.Background(), &mockStore{}, testConfig(), zap.NewNop(), msg, 1, false)
	assert.ErrorIs(t, err, assigner.ErrUnknownGroupReference)
}

func TestRunDraw_StoreFailurePropagates(t *testing.T) {
	mock := &mockStore{insertErr: errors.New("connection lost")}

	_, err := RunDraw(context.Background(), mock, testConfig(), zap.NewNop(), testMessage, 1, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record draw")
}
