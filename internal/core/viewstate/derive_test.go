package viewstate

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/remark/internal/core/comment"
)

// makeComments builds n comments with distinct IDs and postIDs 1..n.
func makeComments(n int) []comment.Comment {
	out := make([]comment.Comment, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, comment.Comment{
			PostID: i,
			ID:     i,
			Name:   fmt.Sprintf("comment %02d", i),
			Email:  fmt.Sprintf("user%02d@example.com", i),
			Body:   fmt.Sprintf("body of comment %02d", i),
		})
	}
	return out
}

func TestFilter(t *testing.T) {
	comments := []comment.Comment{
		{ID: 1, Name: "quick brown fox", Email: "fox@forest.io", Body: "jumps over"},
		{ID: 2, Name: "lazy dog", Email: "dog@yard.io", Body: "sleeps at Acme Corp"},
		{ID: 3, Name: "cat", Email: "cat@roof.io", Body: "watches birds"},
	}

	t.Run("empty query matches all", func(t *testing.T) {
		got := Filter(comments, "")
		assert.Equal(t, comments, got)
	})

	t.Run("case-insensitive body match", func(t *testing.T) {
		got := Filter(comments, "acme")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("matches across name email body", func(t *testing.T) {
		tests := []struct {
			query string
			ids   []int
		}{
			{query: "fox", ids: []int{1}},
			{query: "ROOF.IO", ids: []int{3}},
			{query: "o", ids: []int{1, 2, 3}},
			{query: "nowhere", ids: nil},
		}

		for _, tt := range tests {
			got := Filter(comments, tt.query)
			var ids []int
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.ids, ids, "query %q", tt.query)
		}
	})

	t.Run("result is a subset containing the query", func(t *testing.T) {
		comments := makeComments(50)
		got := Filter(comments, "comment 0")
		for _, c := range got {
			assert.Contains(t, comments, c)
			matched := strings.Contains(strings.ToLower(c.Name), "comment 0") ||
				strings.Contains(strings.ToLower(c.Email), "comment 0") ||
				strings.Contains(strings.ToLower(c.Body), "comment 0")
			assert.True(t, matched)
		}
	})

	t.Run("no whitespace normalization", func(t *testing.T) {
		got := Filter(comments, " fox")
		assert.Empty(t, got, "leading whitespace is significant")
	})
}

func TestSort(t *testing.T) {
	comments := []comment.Comment{
		{ID: 1, PostID: 3, Name: "charlie", Email: "c@x.io"},
		{ID: 2, PostID: 1, Name: "alpha", Email: "a@x.io"},
		{ID: 3, PostID: 2, Name: "bravo", Email: "b@x.io"},
	}

	t.Run("none preserves input order", func(t *testing.T) {
		got := Sort(comments, SortNone, OrderNone)
		assert.Equal(t, comments, got)
	})

	t.Run("postId numeric ascending", func(t *testing.T) {
		got := Sort(comments, SortPostID, OrderAsc)
		var ids []int
		for _, c := range got {
			ids = append(ids, c.PostID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("desc is reversed asc when no ties", func(t *testing.T) {
		for _, key := range []SortKey{SortPostID, SortName, SortEmail} {
			asc := Sort(comments, key, OrderAsc)
			desc := Sort(comments, key, OrderDesc)

			reversed := slices.Clone(asc)
			slices.Reverse(reversed)
			assert.Equal(t, reversed, desc, "key %s", key)
		}
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		tied := []comment.Comment{
			{ID: 1, PostID: 7, Name: "same"},
			{ID: 2, PostID: 7, Name: "same"},
			{ID: 3, PostID: 7, Name: "same"},
		}

		got := Sort(tied, SortName, OrderAsc)
		var ids []int
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids)

		got = Sort(tied, SortName, OrderDesc)
		ids = nil
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids, "descending keeps tied order too")
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := slices.Clone(comments)
		_ = Sort(comments, SortPostID, OrderDesc)
		assert.Equal(t, before, comments)
	})
}

func TestPaginate(t *testing.T) {
	t.Run("pages concatenate to the full sequence", func(t *testing.T) {
		comments := makeComments(37)
		pageSize := 10

		var rebuilt []comment.Comment
		_, total := Paginate(comments, 1, pageSize)
		for p := 1; p <= total; p++ {
			page, _ := Paginate(comments, p, pageSize)
			rebuilt = append(rebuilt, page...)
		}

		assert.Equal(t, comments, rebuilt)
		assert.Equal(t, 4, total)
	})

	t.Run("last page may be short", func(t *testing.T) {
		comments := makeComments(12)
		page, total := Paginate(comments, 2, 10)
		assert.Len(t, page, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("empty collection yields one empty page", func(t *testing.T) {
		page, total := Paginate(nil, 1, 10)
		assert.Empty(t, page)
		assert.Equal(t, 1, total)
	})

	t.Run("exact multiple has full last page", func(t *testing.T) {
		comments := makeComments(20)
		page, total := Paginate(comments, 2, 10)
		assert.Len(t, page, 10)
		assert.Equal(t, 2, total)
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		pageSize int
		want     int
	}{
		{count: 0, pageSize: 10, want: 1},
		{count: 1, pageSize: 10, want: 1},
		{count: 10, pageSize: 10, want: 1},
		{count: 11, pageSize: 10, want: 2},
		{count: 500, pageSize: 100, want: 5},
		{count: 501, pageSize: 100, want: 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize),
			"count=%d pageSize=%d", tt.count, tt.pageSize)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 100, 10))
	assert.Equal(t, 1, ClampPage(-5, 100, 10))
	assert.Equal(t, 10, ClampPage(99, 100, 10))
	assert.Equal(t, 7, ClampPage(7, 100, 10))
	assert.Equal(t, 1, ClampPage(3, 0, 10))
}

func TestDerive(t *testing.T) {
	t.Run("twelve comments two pages", func(t *testing.T) {
		comments := makeComments(12)
		s := Default()
		s.Page = 2

		view := Derive(s, comments)
		assert.Len(t, view.Paginated, 2)
		assert.Equal(t, 2, view.TotalPages)
		assert.Equal(t, 11, view.Paginated[0].ID)
	})

	t.Run("sort operates on filtered result", func(t *testing.T) {
		comments := []comment.Comment{
			{ID: 1, PostID: 9, Name: "keep zulu", Email: "z@x.io"},
			{ID: 2, PostID: 2, Name: "drop", Email: "d@x.io"},
			{ID: 3, PostID: 4, Name: "keep alpha", Email: "a@x.io"},
		}

		s := Default()
		s.Search = "keep"
		s.SortKey = SortName
		s.SortOrder = OrderAsc

		view := Derive(s, comments)
		require.Len(t, view.Sorted, 2)
		assert.Equal(t, "keep alpha", view.Sorted[0].Name)
		assert.Equal(t, "keep zulu", view.Sorted[1].Name)
	})

	t.Run("pure function", func(t *testing.T) {
		comments := makeComments(30)
		s := ViewState{Search: "3", Page: 1, PageSize: 25, SortKey: SortEmail, SortOrder: OrderDesc}

		first := Derive(s, comments)
		second := Derive(s, comments)
		assert.Equal(t, first, second)
	})
}
