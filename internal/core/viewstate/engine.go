package viewstate

import (
	"strconv"

	"github.com/colonyops/remark/internal/core/comment"
	"github.com/colonyops/remark/internal/core/prefs"
)

// Preference keys written by the engine. Values are flat strings;
// numeric fields are stringified.
const (
	keySearch    = "search"
	keyPage      = "page"
	keyPageSize  = "pageSize"
	keySortKey   = "sortKey"
	keySortOrder = "sortOrder"
)

// Engine owns a ViewState and the comment collection it applies to.
// All mutators run sequentially on the UI event loop; the engine does
// no locking of its own.
//
// User-driven mutators flush the full state to the preference store.
// Hydrate and SetComments do not write, so restoring saved preferences
// never loops back into persistence.
type Engine struct {
	state    ViewState
	store    prefs.Store
	comments []comment.Comment
	hydrated bool
}

// NewEngine creates an engine with default state backed by store.
func NewEngine(store prefs.Store) *Engine {
	return &Engine{
		state: Default(),
		store: store,
	}
}

// State returns a copy of the current view state.
func (e *Engine) State() ViewState {
	return e.state
}

// SetDefaultPageSize adjusts the pre-hydration page size default. It is
// ignored after hydration, for sizes outside the allowed set, and is
// never persisted.
func (e *Engine) SetDefaultPageSize(n int) {
	if e.hydrated || !ValidPageSize(n) {
		return
	}
	e.state.PageSize = n
}

// SetComments installs the source collection (the data-loaded event)
// and re-clamps the page against it. Not persisted: loading data is not
// a user interaction.
func (e *Engine) SetComments(comments []comment.Comment) {
	e.comments = comments
	e.state.Page = ClampPage(e.state.Page, e.filteredCount(), e.state.PageSize)
}

// Comments returns the installed source collection.
func (e *Engine) Comments() []comment.Comment {
	return e.comments
}

// Derive computes the current view over the installed collection.
func (e *Engine) Derive() View {
	return Derive(e.state, e.comments)
}

// SetSearch replaces the search query and returns to the first page.
func (e *Engine) SetSearch(query string) {
	e.state.Search = query
	e.state.Page = 1
	e.persist()
}

// SetSort advances the sort cycle for key. A key that is not currently
// active starts at ascending; repeating the active key moves
// ascending → descending → none. Always returns to the first page.
func (e *Engine) SetSort(key SortKey) {
	if key == SortNone {
		return
	}

	switch {
	case e.state.SortKey != key:
		e.state.SortKey = key
		e.state.SortOrder = OrderAsc
	case e.state.SortOrder == OrderAsc:
		e.state.SortOrder = OrderDesc
	default:
		e.state.SortKey = SortNone
		e.state.SortOrder = OrderNone
	}

	e.state.Page = 1
	e.persist()
}

// ApplySort sets an explicit sort, bypassing the cycle. The key/order
// coupling is enforced: if either side is none, both become none.
func (e *Engine) ApplySort(key SortKey, order SortOrder) {
	if key == SortNone || order == OrderNone {
		key, order = SortNone, OrderNone
	}
	e.state.SortKey = key
	e.state.SortOrder = order
	e.state.Page = 1
	e.persist()
}

// SetPage moves to page n, clamped to the valid range for the current
// filter and page size. Out-of-range values clamp rather than reject.
func (e *Engine) SetPage(n int) {
	e.state.Page = ClampPage(n, e.filteredCount(), e.state.PageSize)
	e.persist()
}

// NextPage advances one page, clamped.
func (e *Engine) NextPage() { e.SetPage(e.state.Page + 1) }

// PrevPage goes back one page, clamped.
func (e *Engine) PrevPage() { e.SetPage(e.state.Page - 1) }

// SetPageSize switches to one of the allowed page sizes and returns to
// the first page. Sizes outside the allowed set are ignored.
func (e *Engine) SetPageSize(n int) {
	if !ValidPageSize(n) {
		return
	}
	e.state.PageSize = n
	e.state.Page = 1
	e.persist()
}

// CyclePageSize advances to the next allowed page size, wrapping.
func (e *Engine) CyclePageSize() {
	for i, n := range PageSizes {
		if n == e.state.PageSize {
			e.SetPageSize(PageSizes[(i+1)%len(PageSizes)])
			return
		}
	}
	e.SetPageSize(PageSizes[0])
}

// Reset restores every field to its default.
func (e *Engine) Reset() {
	e.state = Default()
	e.persist()
}

// Hydrate restores the view state from the preference store. Each field
// falls back to its default when the stored value is missing or does
// not parse; a broken field never fails the rest of the hydration.
// Runs once, after the collection is installed, and writes nothing
// back.
func (e *Engine) Hydrate() {
	if e.hydrated {
		return
	}
	e.hydrated = true

	s := Default()
	s.PageSize = e.state.PageSize // configured default, see SetDefaultPageSize

	if v, ok := e.store.Get(keySearch); ok {
		s.Search = v
	}

	if v, ok := e.store.Get(keyPageSize); ok {
		if n, err := strconv.Atoi(v); err == nil && ValidPageSize(n) {
			s.PageSize = n
		}
	}

	if v, ok := e.store.Get(keyPage); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			s.Page = n
		}
	}

	key, keyOK := SortNone, true
	if v, ok := e.store.Get(keySortKey); ok {
		key, keyOK = ParseSortKey(v)
	}
	order, orderOK := OrderNone, true
	if v, ok := e.store.Get(keySortOrder); ok {
		order, orderOK = ParseSortOrder(v)
	}

	// Key and order are coupled; a half-valid pair degrades to none.
	if keyOK && orderOK && key != SortNone && order != OrderNone {
		s.SortKey = key
		s.SortOrder = order
	}

	e.state = s
	e.state.Page = ClampPage(s.Page, e.filteredCount(), s.PageSize)
}

// persist flushes the full state as flat string pairs.
func (e *Engine) persist() {
	e.store.Set(keySearch, e.state.Search)
	e.store.Set(keyPage, strconv.Itoa(e.state.Page))
	e.store.Set(keyPageSize, strconv.Itoa(e.state.PageSize))
	e.store.Set(keySortKey, string(e.state.SortKey))
	e.store.Set(keySortOrder, string(e.state.SortOrder))
}

func (e *Engine) filteredCount() int {
	return len(Filter(e.comments, e.state.Search))
}
