package service

import (
	"slices"
	"strings"

	"github.com/osumare/task-api/internal/domain"
)

// Defaults applied to list requests that omit a parameter.
const (
	DefaultPage   = 1
	DefaultLimit  = 5
	DefaultSortBy = domain.TaskFieldTitle
	DefaultOrder  = OrderAsc
)

// Sort orders accepted by list requests.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListParams controls filtering, ordering and pagination of a task listing.
type ListParams struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
	Search string
}

// DefaultListParams returns the parameters used when a request sets none.
func DefaultListParams() ListParams {
	return ListParams{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
	}
}

// Validate checks that the parameters describe a query the engine can run.
func (p ListParams) Validate() error {
	if p.Page < 1 {
		return domain.NewValidationError("page", "must be a positive integer", domain.ErrInvalidPagination)
	}
	if p.Limit < 1 {
		return domain.NewValidationError("limit", "must be a positive integer", domain.ErrInvalidPagination)
	}
	if _, ok := (&domain.Task{}).Field(p.SortBy); !ok {
		return domain.NewValidationError("sortBy", "is not a task field", domain.ErrInvalidSortField)
	}
	if p.Order != OrderAsc && p.Order != OrderDesc {
		return domain.NewValidationError("order", "must be asc or desc", domain.ErrInvalidSortOrder)
	}
	return nil
}

// TaskPage is one page of a filtered and sorted task listing.
type TaskPage struct {
	Page       int           `json:"page"`
	TotalTasks int           `json:"totalTasks"`
	TotalPages int           `json:"totalPages"`
	Tasks      []domain.Task `json:"tasks"`
}

// QueryTasks filters, sorts and paginates a snapshot of tasks.
// The snapshot is sorted in place; callers must pass a slice they own.
func QueryTasks(snapshot []domain.Task, params ListParams) (*TaskPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	filtered := filterTasks(snapshot, params.Search)

	if err := sortTasks(filtered, params.SortBy, params.Order == OrderDesc); err != nil {
		return nil, err
	}

	total := len(filtered)
	page := &TaskPage{
		Page:       params.Page,
		TotalTasks: total,
		TotalPages: total / params.Limit,
		Tasks:      []domain.Task{},
	}
	if total%params.Limit != 0 {
		page.TotalPages++
	}

	// Guard the multiplication against overflow for absurd page numbers
	if params.Page-1 > total/params.Limit {
		return page, nil
	}
	start := (params.Page - 1) * params.Limit
	if start >= total {
		return page, nil
	}
	end := min(start+params.Limit, total)

	page.Tasks = append(page.Tasks, filtered[start:end]...)
	return page, nil
}

// filterTasks keeps tasks whose title or description contains search,
// ignoring case. An empty search keeps everything.
func filterTasks(tasks []domain.Task, search string) []domain.Task {
	if search == "" {
		return tasks
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// sortTasks orders tasks by the named field, case-insensitively and stably.
func sortTasks(tasks []domain.Task, field string, descending bool) error {
	if _, ok := (&domain.Task{}).Field(field); !ok {
		return domain.NewValidationError("sortBy", "is not a task field", domain.ErrInvalidSortField)
	}

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		keyA, _ := a.Field(field)
		keyB, _ := b.Field(field)
		cmp := strings.Compare(strings.ToLower(keyA), strings.ToLower(keyB))
		if descending {
			return -cmp
		}
		return cmp
	})
	return nil
}
