// Package memory provides process-local implementations of the storage
// interfaces defined in the internal/store package. Nothing written here
// survives a restart.
package memory
