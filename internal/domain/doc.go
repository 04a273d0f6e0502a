// Package domain contains the task entity, its validation rules and the
// sentinel errors shared by every layer. It has no knowledge of storage or
// HTTP.
package domain
