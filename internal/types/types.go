// internal/types/types.go
package types

// EntityID identifies an ant or enemy for the lifetime of a run. Zero means none.
type EntityID uint64
