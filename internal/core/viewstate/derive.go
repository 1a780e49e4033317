package viewstate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/colonyops/remark/internal/core/comment"
)

// View is the derived output for one render pass.
type View struct {
	Filtered   []comment.Comment
	Sorted     []comment.Comment
	Paginated  []comment.Comment
	TotalPages int
}

// Derive computes the filtered, sorted, and paginated views of comments
// for the given state. It is a pure function: the input slice is never
// modified and identical inputs produce identical output.
func Derive(s ViewState, comments []comment.Comment) View {
	filtered := Filter(comments, s.Search)
	sorted := Sort(filtered, s.SortKey, s.SortOrder)
	page, total := Paginate(sorted, s.Page, s.PageSize)

	return View{
		Filtered:   filtered,
		Sorted:     sorted,
		Paginated:  page,
		TotalPages: total,
	}
}

// Filter returns the comments whose name, email, or body contains query
// case-insensitively. An empty query matches everything. Matching
// lower-cases both sides and nothing more; whitespace is significant.
func Filter(comments []comment.Comment, query string) []comment.Comment {
	if query == "" {
		return comments
	}

	q := strings.ToLower(query)

	var out []comment.Comment
	for _, c := range comments {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Body), q) {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns a sorted copy of comments. The sort is stable, so
// equal-key comments keep their relative order from the input. With
// SortNone the input is returned as-is.
func Sort(comments []comment.Comment, key SortKey, order SortOrder) []comment.Comment {
	if key == SortNone || order == OrderNone {
		return comments
	}

	out := slices.Clone(comments)

	compare := func(a, b comment.Comment) int {
		switch key {
		case SortPostID:
			return cmp.Compare(a.PostID, b.PostID)
		case SortName:
			return strings.Compare(a.Name, b.Name)
		case SortEmail:
			return strings.Compare(a.Email, b.Email)
		default:
			return 0
		}
	}

	slices.SortStableFunc(out, func(a, b comment.Comment) int {
		c := compare(a, b)
		if order == OrderDesc {
			return -c
		}
		return c
	})

	return out
}

// Paginate slices out the requested page and returns it with the total
// page count. TotalPages is at least 1 even for an empty collection, in
// which case the page slice is empty. The last page may be shorter than
// pageSize.
func Paginate(comments []comment.Comment, page, pageSize int) ([]comment.Comment, int) {
	total := TotalPages(len(comments), pageSize)

	start := (page - 1) * pageSize
	if start >= len(comments) || start < 0 {
		return nil, total
	}

	end := min(start+pageSize, len(comments))
	return comments[start:end], total
}

// TotalPages returns ceil(count/pageSize), minimum 1.
func TotalPages(count, pageSize int) int {
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage confines page to [1, TotalPages(count, pageSize)].
func ClampPage(page, count, pageSize int) int {
	total := TotalPages(count, pageSize)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
