package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func (i item) EntityID() string { return i.ID }

func TestCollectionLifecycle(t *testing.T) {
	var c Collection[item]

	assert.False(t, c.Loading())
	assert.Empty(t, c.Items())
	assert.NoError(t, c.Err())

	gen := c.Begin()
	assert.True(t, c.Loading())

	c.SettleReplace(gen, []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, nil)
	assert.False(t, c.Loading())
	require.Len(t, c.Items(), 2)
	assert.Equal(t, "a", c.Items()[0].Name)
}

func TestCollectionAppendUpdateRemove(t *testing.T) {
	var c Collection[item]

	c.SettleReplace(c.Begin(), []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, nil)

	c.SettleAppend(c.Begin(), item{ID: "3", Name: "c"}, nil)
	require.Len(t, c.Items(), 3)
	assert.Equal(t, "3", c.Items()[2].ID)

	// Update replaces in place, keeping position.
	c.SettleUpdate(c.Begin(), item{ID: "1", Name: "A"}, nil)
	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Name)

	c.SettleRemove(c.Begin(), "2", nil)
	items = c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []string{"1", "3"}, []string{items[0].ID, items[1].ID})
}

func TestCollectionErrorHandling(t *testing.T) {
	var c Collection[item]

	c.SettleReplace(c.Begin(), []item{{ID: "1"}}, nil)

	failure := errors.New("boom")
	c.SettleReplace(c.Begin(), nil, failure)
	assert.ErrorIs(t, c.Err(), failure)
	// A failed fetch does not clobber the items.
	assert.Len(t, c.Items(), 1)

	// The next request clears the error at issue time.
	gen := c.Begin()
	assert.NoError(t, c.Err())
	c.SettleReplace(gen, []item{{ID: "2"}}, nil)
	assert.NoError(t, c.Err())
}

// Two overlapping fetches: the later-issued request owns the final state even
// when it settles first; the stale settlement is discarded entirely.
func TestCollectionStaleResponseSuppression(t *testing.T) {
	var c Collection[item]

	genOld := c.Begin()
	genNew := c.Begin()
	assert.True(t, c.Loading())

	c.SettleReplace(genNew, []item{{ID: "new"}}, nil)
	c.SettleReplace(genOld, []item{{ID: "old"}}, nil)

	assert.False(t, c.Loading())
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "new", c.Items()[0].ID)
}

func TestCollectionStaleErrorDiscarded(t *testing.T) {
	var c Collection[item]

	genOld := c.Begin()
	genNew := c.Begin()

	c.SettleReplace(genNew, []item{{ID: "new"}}, nil)
	c.SettleReplace(genOld, nil, errors.New("stale failure"))

	assert.NoError(t, c.Err())
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "new", c.Items()[0].ID)
}

func TestCollectionReset(t *testing.T) {
	var c Collection[item]

	gen := c.Begin()
	c.SettleReplace(gen, []item{{ID: "1"}}, nil)

	// An outstanding request at reset time becomes stale.
	pending := c.Begin()
	c.Reset()
	c.SettleReplace(pending, []item{{ID: "ghost"}}, nil)

	assert.Empty(t, c.Items())
	assert.NoError(t, c.Err())
}
