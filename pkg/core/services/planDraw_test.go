package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/pkg/db"
)

func TestPlanDraw_DistributesRemainderToLunches(t *testing.T) {
	planned, err := PlanDraw(testConfig(), zap.NewNop(), 7)
	require.NoError(t, err)
	require.Len(t, planned, 3)

	assert.Equal(t, "Lunch 9", planned[0].Spec.ID())
	assert.Equal(t, 3, planned[0].TargetCeiling)
	assert.Equal(t, "Dinner 9", planned[1].Spec.ID())
	assert.Equal(t, 2, planned[1].TargetCeiling)
	assert.Equal(t, "Lunch 10", planned[2].Spec.ID())
	assert.Equal(t, 2, planned[2].TargetCeiling)
}

func TestPlanDraw_NegativeCount(t *testing.T) {
	_, err := PlanDraw(testConfig(), zap.NewNop(), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestListDraws_ReturnsStoredRuns(t *testing.T) {
	mock := &mockStore{runs: []db.DrawRun{
		{ID: "r1", CreatedAt: time.Now(), Seed: 7, PeopleCount: 5, GroupCount: 3},
	}}

	runs, err := ListDraws(context.Background(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].ID)
}

func TestListDraws_StoreFailure(t *testing.T) {
	mock := &mockStore{getErr: errors.New("connection lost")}

	_, err := ListDraws(context.Background(), mock, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch draw runs")
}

func TestShowDraw_ReturnsRunWithAssignments(t *testing.T) {
	mock := &mockStore{
		runs: []db.DrawRun{
			{ID: "r1", CreatedAt: time.Now(), Seed: 7, PeopleCount: 2, GroupCount: 2},
			{ID: "r2", CreatedAt: time.Now(), Seed: 8, PeopleCount: 1, GroupCount: 2},
		},
		assignments: []db.Assignment{
			{ID: "a1", RunID: "r1", GroupID: "Lunch 9", Person: "Juan", Position: 0},
			{ID: "a2", RunID: "r1", GroupID: "Dinner 9", Person: "Carlos", Position: 0},
			{ID: "a3", RunID: "r2", GroupID: "Lunch 9", Person: "Lucía", Position: 0},
		},
	}

	run, assignments, err := ShowDraw(context.Background(), mock, zap.NewNop(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", run.ID)
	require.Len(t, assignments, 2)
	assert.Equal(t, "Juan", assignments[0].Person)
	assert.Equal(t, "Carlos", assignments[1].Person)
}

func TestShowDraw_UnknownRun(t *testing.T) {
	mock := &mockStore{runs: []db.DrawRun{{ID: "r1"}}}

	_, _, err := ShowDraw(context.Background(), mock, zap.NewNop(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recorded draw")
}
