package service

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/osumare/task-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedTasks(n int) []domain.Task {
	tasks := make([]domain.Task, 0, n)
	for i := 1; i <= n; i++ {
		tasks = append(tasks, domain.Task{
			ID:          fmt.Sprintf("id-%d", i),
			Title:       fmt.Sprintf("T%d", i),
			Description: fmt.Sprintf("description %d", i),
		})
	}
	return tasks
}

func titles(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestQueryTasks_Pagination(t *testing.T) {
	t.Parallel()

	params := DefaultListParams()
	params.Page = 2
	params.Limit = 3

	page, err := QueryTasks(numberedTasks(7), params)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 7, page.TotalTasks)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []string{"T4", "T5", "T6"}, titles(page.Tasks))
}

func TestQueryTasks_PagesConcatenateToFullSet(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{1, 2, 3, 5, 7, 10} {
		limit := limit
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			t.Parallel()

			params := DefaultListParams()
			params.Limit = limit

			first, err := QueryTasks(numberedTasks(7), params)
			require.NoError(t, err)

			var all []string
			for p := 1; p <= first.TotalPages; p++ {
				params.Page = p
				page, err := QueryTasks(numberedTasks(7), params)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Tasks), limit)
				all = append(all, titles(page.Tasks)...)
			}

			assert.Equal(t, titles(numberedTasks(7)), all)
		})
	}
}

func TestQueryTasks_OutOfRangePage(t *testing.T) {
	t.Parallel()

	params := DefaultListParams()
	params.Page = 100

	page, err := QueryTasks(numberedTasks(3), params)
	require.NoError(t, err)
	assert.NotNil(t, page.Tasks)
	assert.Empty(t, page.Tasks)
	assert.Equal(t, 3, page.TotalTasks)
	assert.Equal(t, 1, page.TotalPages)
}

func TestQueryTasks_HugeLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          int
		expectedTasks []string
	}{
		{name: "first page holds everything", page: 1, expectedTasks: []string{"T1", "T2"}},
		{name: "second page is empty", page: 2, expectedTasks: []string{}},
		{name: "huge page is empty", page: math.MaxInt, expectedTasks: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := DefaultListParams()
			params.Limit = math.MaxInt
			params.Page = tt.page

			page, err := QueryTasks(numberedTasks(2), params)
			require.NoError(t, err)
			assert.Equal(t, 2, page.TotalTasks)
			assert.Equal(t, 1, page.TotalPages)
			assert.Equal(t, tt.expectedTasks, titles(page.Tasks))
		})
	}
}

func TestQueryTasks_EmptySnapshot(t *testing.T) {
	t.Parallel()

	page, err := QueryTasks(nil, DefaultListParams())
	require.NoError(t, err)
	assert.NotNil(t, page.Tasks)
	assert.Equal(t, 0, page.TotalTasks)
	assert.Equal(t, 0, page.TotalPages)
}

func TestQueryTasks_Search(t *testing.T) {
	t.Parallel()

	snapshot := []domain.Task{
		{ID: "1", Title: "Buy milk", Description: "from the store"},
		{ID: "2", Title: "Walk dog", Description: "around the PARK"},
		{ID: "3", Title: "Read", Description: "a book"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty keeps all", search: "", want: []string{"Buy milk", "Read", "Walk dog"}},
		{name: "title match ignores case", search: "MILK", want: []string{"Buy milk"}},
		{name: "description match", search: "park", want: []string{"Walk dog"}},
		{name: "no match", search: "zebra", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultListParams()
			params.Search = tt.search

			page, err := QueryTasks(append([]domain.Task(nil), snapshot...), params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page.Tasks))
			assert.Equal(t, len(tt.want), page.TotalTasks)
		})
	}
}

func TestQueryTasks_Sort(t *testing.T) {
	t.Parallel()

	snapshot := func() []domain.Task {
		return []domain.Task{
			{ID: "c", Title: "banana", Description: "same"},
			{ID: "a", Title: "Apple", Description: "same"},
			{ID: "b", Title: "cherry", Description: "same"},
		}
	}

	t.Run("title ascending ignores case", func(t *testing.T) {
		page, err := QueryTasks(snapshot(), DefaultListParams())
		require.NoError(t, err)
		assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(page.Tasks))
	})

	t.Run("title descending", func(t *testing.T) {
		params := DefaultListParams()
		params.Order = OrderDesc

		page, err := QueryTasks(snapshot(), params)
		require.NoError(t, err)
		assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(page.Tasks))
	})

	t.Run("equal keys keep insertion order", func(t *testing.T) {
		params := DefaultListParams()
		params.SortBy = domain.TaskFieldDescription

		page, err := QueryTasks(snapshot(), params)
		require.NoError(t, err)
		assert.Equal(t, []string{"banana", "Apple", "cherry"}, titles(page.Tasks))
	})

	t.Run("by id", func(t *testing.T) {
		params := DefaultListParams()
		params.SortBy = domain.TaskFieldID

		page, err := QueryTasks(snapshot(), params)
		require.NoError(t, err)
		assert.Equal(t, []string{"Apple", "cherry", "banana"}, titles(page.Tasks))
	})
}

func TestListParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(p *ListParams)
		wantErr error
	}{
		{name: "defaults", mutate: func(p *ListParams) {}},
		{name: "zero page", mutate: func(p *ListParams) { p.Page = 0 }, wantErr: domain.ErrInvalidPagination},
		{name: "negative limit", mutate: func(p *ListParams) { p.Limit = -1 }, wantErr: domain.ErrInvalidPagination},
		{name: "unknown field", mutate: func(p *ListParams) { p.SortBy = "priority" }, wantErr: domain.ErrInvalidSortField},
		{name: "unknown order", mutate: func(p *ListParams) { p.Order = "up" }, wantErr: domain.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultListParams()
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, domain.ErrValidation))

			_, queryErr := QueryTasks(numberedTasks(2), params)
			assert.True(t, errors.Is(queryErr, tt.wantErr))
		})
	}
}
