package jobsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
)

func TestSalaryRangeControl_StartsAtDefault(t *testing.T) {
	c := jobsearch.NewSalaryRangeControl()
	assert.Equal(t, jobsearch.SalaryBounds{Min: 0, Max: 2_000_000}, c.Range())
	assert.False(t, c.Touched())
	assert.False(t, c.Initialized())
}

func TestSalaryRangeControl_SyncOnlyOnFirstNonEmptyLoad(t *testing.T) {
	c := jobsearch.NewSalaryRangeControl()

	assert.False(t, c.Sync(jobsearch.DefaultSalaryBounds(), 0), "empty collection does not initialize")
	assert.False(t, c.Initialized())

	first := jobsearch.SalaryBounds{Min: 50000, Max: 1850000}
	assert.True(t, c.Sync(first, 3))
	assert.Equal(t, first, c.Range())

	assert.False(t, c.Sync(jobsearch.SalaryBounds{Min: 0, Max: 900000}, 5), "later recomputes do not overwrite")
	assert.Equal(t, first, c.Range())
}

func TestSalaryRangeControl_BoundsEqualToDefaultStillInitialize(t *testing.T) {
	c := jobsearch.NewSalaryRangeControl()
	assert.True(t, c.Sync(jobsearch.DefaultSalaryBounds(), 2))
	assert.True(t, c.Initialized())
	assert.False(t, c.Touched(), "coinciding values are not mistaken for user input")
}

func TestSalaryRangeControl_TouchedBeforeLoadWins(t *testing.T) {
	c := jobsearch.NewSalaryRangeControl()
	c.Set(400000, 100000)

	assert.True(t, c.Touched())
	assert.Equal(t, jobsearch.SalaryBounds{Min: 100000, Max: 400000}, c.Range(), "inverted input is swapped")

	assert.False(t, c.Sync(jobsearch.SalaryBounds{Min: 50000, Max: 1850000}, 10))
	assert.Equal(t, jobsearch.SalaryBounds{Min: 100000, Max: 400000}, c.Range())
}
