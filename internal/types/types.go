// internal/types/types.go
package types

// EntityID is a handle into the entity tables. Zero is never issued.
type EntityID uint64

// NoEntity is the empty handle.
const NoEntity EntityID = 0
