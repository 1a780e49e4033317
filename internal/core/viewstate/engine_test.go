package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/remark/internal/core/prefs"
)

// spyStore counts writes so tests can assert hydration never persists.
type spyStore struct {
	*prefs.Memory
	sets int
}

func newSpyStore() *spyStore {
	return &spyStore{Memory: prefs.NewMemory()}
}

func (s *spyStore) Set(key, value string) {
	s.sets++
	s.Memory.Set(key, value)
}

func TestEngineSortCycle(t *testing.T) {
	e := NewEngine(prefs.NewMemory())

	e.SetSort(SortName)
	assert.Equal(t, SortName, e.State().SortKey)
	assert.Equal(t, OrderAsc, e.State().SortOrder)

	e.SetSort(SortName)
	assert.Equal(t, OrderDesc, e.State().SortOrder)

	e.SetSort(SortName)
	assert.Equal(t, SortNone, e.State().SortKey)
	assert.Equal(t, OrderNone, e.State().SortOrder)
}

func TestEngineSortSwitchesKeyToAscending(t *testing.T) {
	e := NewEngine(prefs.NewMemory())

	e.SetSort(SortName)
	e.SetSort(SortName) // name descending

	// Switching columns jumps straight to ascending, no intermediate none.
	e.SetSort(SortEmail)
	assert.Equal(t, SortEmail, e.State().SortKey)
	assert.Equal(t, OrderAsc, e.State().SortOrder)
}

func TestEngineSortResetsPage(t *testing.T) {
	e := NewEngine(prefs.NewMemory())
	e.SetComments(makeComments(30))

	e.SetPage(3)
	require.Equal(t, 3, e.State().Page)

	e.SetSort(SortPostID)
	assert.Equal(t, 1, e.State().Page)
}

func TestEngineSearchResetsPage(t *testing.T) {
	e := NewEngine(prefs.NewMemory())
	e.SetComments(makeComments(30))

	e.SetPage(2)
	e.SetSearch("comment")
	assert.Equal(t, 1, e.State().Page)
	assert.Equal(t, "comment", e.State().Search)
}

func TestEngineSetPageClamps(t *testing.T) {
	e := NewEngine(prefs.NewMemory())
	e.SetComments(makeComments(12))

	e.SetPage(5)
	assert.Equal(t, 2, e.State().Page, "clamped to last page")

	e.SetPage(0)
	assert.Equal(t, 1, e.State().Page, "clamped to first page")

	e.NextPage()
	e.NextPage()
	assert.Equal(t, 2, e.State().Page)

	e.PrevPage()
	e.PrevPage()
	assert.Equal(t, 1, e.State().Page)
}

func TestEngineSetPageSize(t *testing.T) {
	e := NewEngine(prefs.NewMemory())
	e.SetComments(makeComments(100))

	e.SetPage(3)
	e.SetPageSize(25)
	assert.Equal(t, 25, e.State().PageSize)
	assert.Equal(t, 1, e.State().Page, "page size change returns to page one")

	e.SetPageSize(37)
	assert.Equal(t, 25, e.State().PageSize, "sizes outside the allowed set are ignored")
}

func TestEngineCyclePageSize(t *testing.T) {
	e := NewEngine(prefs.NewMemory())

	want := []int{25, 50, 100, 10}
	for _, n := range want {
		e.CyclePageSize()
		assert.Equal(t, n, e.State().PageSize)
	}
}

func TestEngineResetIdempotent(t *testing.T) {
	e := NewEngine(prefs.NewMemory())
	e.SetComments(makeComments(50))

	e.SetSearch("comment 1")
	e.SetSort(SortEmail)
	e.SetPageSize(25)

	e.Reset()
	once := e.State()
	assert.Equal(t, Default(), once)

	e.Reset()
	assert.Equal(t, once, e.State())
}

func TestEnginePersistsEveryMutation(t *testing.T) {
	store := prefs.NewMemory()
	e := NewEngine(store)
	e.SetComments(makeComments(30))

	e.SetSearch("fox")
	e.SetSort(SortPostID)
	e.SetPage(2)

	tests := map[string]string{
		"search":    "fox",
		"page":      "2",
		"pageSize":  "10",
		"sortKey":   "postId",
		"sortOrder": "asc",
	}
	for key, want := range tests {
		got, ok := store.Get(key)
		require.True(t, ok, "key %s missing", key)
		assert.Equal(t, want, got, "key %s", key)
	}
}

func TestEngineApplySort(t *testing.T) {
	e := NewEngine(prefs.NewMemory())

	e.ApplySort(SortEmail, OrderDesc)
	assert.Equal(t, SortEmail, e.State().SortKey)
	assert.Equal(t, OrderDesc, e.State().SortOrder)

	// Half-none pairs degrade to fully none.
	e.ApplySort(SortName, OrderNone)
	assert.Equal(t, SortNone, e.State().SortKey)
	assert.Equal(t, OrderNone, e.State().SortOrder)
}

func TestEngineHydrate(t *testing.T) {
	t.Run("restores well-formed values", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("search", "dolor")
		store.Set("page", "2")
		store.Set("pageSize", "25")
		store.Set("sortKey", "email")
		store.Set("sortOrder", "desc")

		e := NewEngine(store)
		e.SetComments(makeComments(80))
		e.Hydrate()

		s := e.State()
		assert.Equal(t, "dolor", s.Search)
		assert.Equal(t, 25, s.PageSize)
		assert.Equal(t, SortEmail, s.SortKey)
		assert.Equal(t, OrderDesc, s.SortOrder)
	})

	t.Run("malformed page size falls back to default", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("pageSize", "37")

		e := NewEngine(store)
		e.Hydrate()
		assert.Equal(t, 10, e.State().PageSize)
	})

	t.Run("non-numeric page falls back to default", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("page", "two")

		e := NewEngine(store)
		e.Hydrate()
		assert.Equal(t, 1, e.State().Page)
	})

	t.Run("half-valid sort degrades to none", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("sortKey", "name")
		store.Set("sortOrder", "sideways")

		e := NewEngine(store)
		e.Hydrate()
		assert.Equal(t, SortNone, e.State().SortKey)
		assert.Equal(t, OrderNone, e.State().SortOrder)
	})

	t.Run("page clamped to restored data", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("page", "9")

		e := NewEngine(store)
		e.SetComments(makeComments(12))
		e.Hydrate()
		assert.Equal(t, 2, e.State().Page)
	})

	t.Run("writes nothing back", func(t *testing.T) {
		store := newSpyStore()
		store.Memory.Set("search", "persisted earlier")

		e := NewEngine(store)
		e.SetComments(makeComments(5))
		e.Hydrate()
		assert.Zero(t, store.sets)
	})

	t.Run("runs once", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("search", "first")

		e := NewEngine(store)
		e.Hydrate()

		store.Set("search", "second")
		e.Hydrate()
		assert.Equal(t, "first", e.State().Search)
	})
}

func TestEngineDefaultPageSize(t *testing.T) {
	t.Run("applies before hydration", func(t *testing.T) {
		e := NewEngine(prefs.NewMemory())
		e.SetDefaultPageSize(50)
		e.Hydrate()
		assert.Equal(t, 50, e.State().PageSize)
	})

	t.Run("saved preference wins", func(t *testing.T) {
		store := prefs.NewMemory()
		store.Set("pageSize", "25")

		e := NewEngine(store)
		e.SetDefaultPageSize(50)
		e.Hydrate()
		assert.Equal(t, 25, e.State().PageSize)
	})

	t.Run("invalid size ignored", func(t *testing.T) {
		e := NewEngine(prefs.NewMemory())
		e.SetDefaultPageSize(37)
		assert.Equal(t, 10, e.State().PageSize)
	})
}

func TestEngineDeriveMatchesPureDerive(t *testing.T) {
	comments := makeComments(40)

	e := NewEngine(prefs.NewMemory())
	e.SetComments(comments)
	e.SetSearch("comment")
	e.SetSort(SortName)
	e.SetPage(2)

	assert.Equal(t, Derive(e.State(), comments), e.Derive())
}
