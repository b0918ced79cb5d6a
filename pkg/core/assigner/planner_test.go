package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

func TestPlanTargetSizes_EvenSplit(t *testing.T) {
	universe := []model.GroupSpec{
		{Kind: model.MealLunch, Day: 9},
		{Kind: model.MealDinner, Day: 9},
		{Kind: model.MealLunch, Day: 10},
	}

	targets, err := PlanTargetSizes(9, universe)
	require.NoError(t, err)

	assert.Equal(t, 3, targets["Lunch 9"])
	assert.Equal(t, 3, targets["Dinner 9"])
	assert.Equal(t, 3, targets["Lunch 10"])
}

func TestPlanTargetSizes_RemainderGoesToLunchesFirst(t *testing.T) {
	// 7 people over 2 lunches and 1 dinner: base 2, remainder 1,
	// the first declared lunch takes the extra unit
	universe := []model.GroupSpec{
		{Kind: model.MealLunch, Day: 9},
		{Kind: model.MealLunch, Day: 10},
		{Kind: model.MealDinner, Day: 9},
	}

	targets, err := PlanTargetSizes(7, universe)
	require.NoError(t, err)

	assert.Equal(t, 3, targets["Lunch 9"])
	assert.Equal(t, 2, targets["Lunch 10"])
	assert.Equal(t, 2, targets["Dinner 9"])
}

func TestPlanTargetSizes_DinnerOnlyGrowsAfterAllLunches(t *testing.T) {
	// Remainder of 3 over 2 lunches and 2 dinners: both lunches and the
	// first declared dinner grow by one
	universe := []model.GroupSpec{
		{Kind: model.MealDinner, Day: 9},
		{Kind: model.MealLunch, Day: 9},
		{Kind: model.MealDinner, Day: 10},
		{Kind: model.MealLunch, Day: 10},
	}

	targets, err := PlanTargetSizes(7, universe)
	require.NoError(t, err)

	assert.Equal(t, 2, targets["Lunch 9"])
	assert.Equal(t, 2, targets["Lunch 10"])
	assert.Equal(t, 2, targets["Dinner 9"])
	assert.Equal(t, 1, targets["Dinner 10"])
}

func TestPlanTargetSizes_ZeroPeople(t *testing.T) {
	universe := []model.GroupSpec{
		{Kind: model.MealLunch, Day: 9},
		{Kind: model.MealDinner, Day: 9},
	}

	targets, err := PlanTargetSizes(0, universe)
	require.NoError(t, err)

	assert.Equal(t, 0, targets["Lunch 9"])
	assert.Equal(t, 0, targets["Dinner 9"])
}

func TestPlanTargetSizes_NoGroups(t *testing.T) {
	_, err := PlanTargetSizes(5, nil)
	assert.ErrorIs(t, err, ErrNoGroupsDefined)
}
