package display

import (
	"context"
	"errors"
)

// ErrNotFound signals that no display document exists for the requested
// entity type, bundle, and mode. "No form display configured yet" is an
// expected condition; callers match with errors.Is and scaffold a fresh one.
var ErrNotFound = errors.New("display: document not found")

// Reader resolves a display document by its target coordinates.
type Reader interface {
	Read(ctx context.Context, entityType, bundle, mode string) (FormDisplay, error)
}

// Writer persists a display document. Writes must be idempotent for
// identical input.
type Writer interface {
	Write(ctx context.Context, doc FormDisplay) error
}
