package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Task event types.
const (
	TypeTaskCreated = "task.created"
	TypeTaskUpdated = "task.updated"
	TypeTaskDeleted = "task.deleted"
)

// TaskEvent records a change to a single task.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the TypeTask* constants
	Type string `json:"type"`

	// TaskID identifies the task that changed
	TaskID string `json:"task_id"`

	// Payload holds the task state after the change, serialized as JSON.
	// It is empty for deletions.
	Payload json.RawMessage `json:"payload,omitempty"`

	// OccurredAt is the timestamp when the change was made
	OccurredAt time.Time `json:"occurred_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TaskEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTaskEvent creates a TaskEvent with the specified type, task ID and payload.
// A nil payload leaves the event payload empty.
func NewTaskEvent(eventType, taskID string, payload interface{}) (*TaskEvent, error) {
	event := &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TaskID:     taskID,
		OccurredAt: time.Now().UTC(),
	}

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		event.Payload = payloadBytes
	}

	return event, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}
