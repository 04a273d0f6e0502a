// Package service contains the application use cases for tasks. It
// orchestrates the task store (defined in internal/store) and the query
// engine to fulfill the operations exposed by the API.
//
// Key components:
//
// 1. TaskService: create, get, list, update and delete tasks. Store errors
// are translated into service errors so the API layer never depends on the
// persistence package.
//
// 2. Query engine (QueryTasks): filters a snapshot by free-text search, sorts
// it by a named field and slices out one page.
//
// Error handling follows the rest of the application: expected conditions are
// sentinel errors (ErrTaskNotFound, domain.ErrValidation), unexpected ones are
// wrapped in TaskServiceError. Callers match them with errors.Is/errors.As.
package service
