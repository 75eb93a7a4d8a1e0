package model

import "errors"

var (
	// ErrMissingTarget is returned by Parse when the document lacks a target
	// entity type or bundle. An unconfigured display is an expected condition,
	// so callers should match with errors.Is rather than treat it as fatal.
	ErrMissingTarget = errors.New("model: document is missing target entity type or bundle")

	// ErrFieldNotFound is returned by the settings-class writes when the named
	// field has no record. A silently dropped settings write is more likely a
	// caller bug than a benign re-invocation, so this path does not no-op.
	ErrFieldNotFound = errors.New("model: field not found")

	// ErrCycle is returned by MoveGroupToParent when the move would place a
	// group inside itself or one of its own descendants.
	ErrCycle = errors.New("model: move would create a cycle")
)
