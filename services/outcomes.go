package services

import (
	"errors"
)

// ErrValidation marks client-correctable input problems (missing/invalid
// fields, unknown enum tags, bad dates). Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// UpdateOutcome tags the result of a sparse update so callers can tell
// "not found" from "exists but nothing changed" for every entity, not just
// projects.
type UpdateOutcome int

const (
	// UpdateApplied means at least one row was written
	UpdateApplied UpdateOutcome = iota
	// UpdateUnchanged means the row exists but the write changed nothing
	UpdateUnchanged
	// UpdateNotFound means no row with that id exists
	UpdateNotFound
	// UpdateNoFields means the payload contained no updatable fields; no write was issued
	UpdateNoFields
)

// AffectedRows reports the row count the HTTP contract exposes for the outcome
func (o UpdateOutcome) AffectedRows() int64 {
	switch o {
	case UpdateApplied, UpdateUnchanged:
		return 1
	}
	return 0
}

// DeleteOutcome tags the result of a delete.
type DeleteOutcome int

const (
	// DeleteDone means the row was removed
	DeleteDone DeleteOutcome = iota
	// DeleteNotFound means no row with that id exists (repeat deletes land here)
	DeleteNotFound
	// DeleteBlocked means a referential guard refused the delete
	DeleteBlocked
)

// resolveUpdate turns a raw affected-row count into a tagged outcome,
// re-checking existence when the database reports zero rows.
func resolveUpdate(affected int64, exists func() (bool, error)) (UpdateOutcome, error) {
	if affected > 0 {
		return UpdateApplied, nil
	}
	ok, err := exists()
	if err != nil {
		return UpdateNotFound, err
	}
	if ok {
		return UpdateUnchanged, nil
	}
	return UpdateNotFound, nil
}
