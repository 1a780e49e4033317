// Package viewstate owns the search, sort, and pagination state for the
// comment list and derives filtered/sorted/paginated views from it.
package viewstate

import "slices"

// SortKey identifies the comment field a sort applies to.
type SortKey string

// Sortable comment fields. SortNone means the filtered order (which is
// the source order) is preserved.
const (
	SortNone   SortKey = ""
	SortPostID SortKey = "postId"
	SortName   SortKey = "name"
	SortEmail  SortKey = "email"
)

// ParseSortKey maps a stored string onto a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortNone, SortPostID, SortName, SortEmail:
		return SortKey(s), true
	}
	return SortNone, false
}

// SortOrder is the direction of an active sort.
type SortOrder string

// Sort directions. OrderNone is only valid together with SortNone.
const (
	OrderNone SortOrder = ""
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder maps a stored string onto a SortOrder.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case OrderNone, OrderAsc, OrderDesc:
		return SortOrder(s), true
	}
	return OrderNone, false
}

// PageSizes are the selectable page sizes, in cycle order.
var PageSizes = []int{10, 25, 50, 100}

// ValidPageSize reports whether n is a selectable page size.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// ViewState is the mutable record of the current list selections.
// SortKey and SortOrder are coupled: both are none or neither is.
type ViewState struct {
	Search    string
	Page      int
	PageSize  int
	SortKey   SortKey
	SortOrder SortOrder
}

// Default returns the initial view state: no search, first page, ten
// rows, unsorted.
func Default() ViewState {
	return ViewState{
		Search:    "",
		Page:      1,
		PageSize:  10,
		SortKey:   SortNone,
		SortOrder: OrderNone,
	}
}

// Sorted reports whether a sort is active.
func (s ViewState) Sorted() bool {
	return s.SortKey != SortNone
}
