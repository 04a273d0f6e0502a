// Package events lets the task service announce changes to tasks without
// knowing who listens.
//
// The primary components are:
// - TaskEvent: a change to a single task (created, updated, deleted)
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
// - InMemoryEventEmitter: synchronous in-process dispatch
// - AuditLogHandler: writes every event to the structured log
package events
