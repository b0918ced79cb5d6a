package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

func lunchGroup(index, size int) *Group {
	g := &Group{Spec: model.GroupSpec{Kind: model.MealLunch, Day: 9 + index}, Index: index}
	g.Members = make([]Person, size)
	return g
}

func dinnerGroup(index, size int) *Group {
	g := &Group{Spec: model.GroupSpec{Kind: model.MealDinner, Day: 9 + index}, Index: index}
	g.Members = make([]Person, size)
	return g
}

func TestGroupLess_SmallerSizeWins(t *testing.T) {
	small := dinnerGroup(1, 1)
	big := lunchGroup(0, 2)

	assert.True(t, groupLess(small, big))
	assert.False(t, groupLess(big, small))
}

func TestGroupLess_LunchBeatsDinnerOnEqualSize(t *testing.T) {
	lunch := lunchGroup(1, 2)
	dinner := dinnerGroup(0, 2)

	assert.True(t, groupLess(lunch, dinner))
	assert.False(t, groupLess(dinner, lunch))
}

func TestGroupLess_DeclarationOrderBreaksFinalTie(t *testing.T) {
	first := lunchGroup(0, 2)
	second := lunchGroup(1, 2)

	assert.True(t, groupLess(first, second))
	assert.False(t, groupLess(second, first))
}

func TestPersonLess_FewerOptionsFirst(t *testing.T) {
	pinned := Person{Name: "a", Eligible: map[string]bool{"Lunch 9": true}}
	flexible := Person{Name: "b", Eligible: map[string]bool{"Lunch 9": true, "Dinner 9": true}}

	assert.True(t, personLess(pinned, flexible))
	assert.False(t, personLess(flexible, pinned))
	assert.False(t, personLess(pinned, pinned))
}

func TestTiedBestGroups_KeepsAllLunchTies(t *testing.T) {
	a := lunchGroup(0, 1)
	b := lunchGroup(1, 1)
	c := dinnerGroup(2, 1)
	d := lunchGroup(3, 2)

	tied := tiedBestGroups([]*Group{a, b, c, d})

	// Both empty-enough lunches tie; the dinner loses on kind rank and
	// the bigger lunch loses on size
	assert.Equal(t, []*Group{a, b}, tied)
}

func TestTiedBestGroups_DinnerOnlyWhenStrictlySmaller(t *testing.T) {
	a := lunchGroup(0, 2)
	b := dinnerGroup(1, 1)

	tied := tiedBestGroups([]*Group{a, b})

	assert.Equal(t, []*Group{b}, tied)
}
