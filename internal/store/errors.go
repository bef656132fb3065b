package store

import "fmt"

// LoadFailedError indicates the persisted document exists but could not be
// read or parsed. The cache is left empty when this is returned.
type LoadFailedError struct {
	Reason string
}

func (e *LoadFailedError) Error() string {
	return fmt.Sprintf("store: load failed: %s", e.Reason)
}

// SaveFailedError indicates an upsert could not be persisted. The
// in-memory mutation has been rolled back.
type SaveFailedError struct {
	Reason string
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("store: save failed: %s", e.Reason)
}

// DeleteFailedError indicates a removal could not be persisted. The
// in-memory removal has been rolled back.
type DeleteFailedError struct {
	Reason string
}

func (e *DeleteFailedError) Error() string {
	return fmt.Sprintf("store: delete failed: %s", e.Reason)
}

// ClipNotFoundError indicates a delete targeted an id with no record.
type ClipNotFoundError struct {
	ID string
}

func (e *ClipNotFoundError) Error() string {
	return fmt.Sprintf("store: clip %s not found", e.ID)
}
