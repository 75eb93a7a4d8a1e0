package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

// DefaultStorePrefix is the file name prefix form display documents carry in
// a config directory.
const DefaultStorePrefix = "core.entity_form_display"

// Store reads and writes display documents in a config directory, one YAML
// file per entity type/bundle/mode under
// <prefix>.<entity>.<bundle>.<mode>.yml. It satisfies both display.Reader
// and display.Writer.
type Store struct {
	dir    string
	prefix string
}

var (
	_ display.Reader = (*Store)(nil)
	_ display.Writer = (*Store)(nil)
)

// StoreOption customises store construction.
type StoreOption func(*Store)

// WithStorePrefix overrides the file name prefix.
func WithStorePrefix(prefix string) StoreOption {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewStore constructs a Store rooted at the given config directory.
func NewStore(dir string, options ...StoreOption) (*Store, error) {
	if dir == "" {
		return nil, errors.New("display store: directory is required")
	}
	store := &Store{
		dir:    filepath.Clean(dir),
		prefix: DefaultStorePrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(store)
	}
	return store, nil
}

// Path returns the file path a document with the given coordinates lives at.
func (s *Store) Path(entityType, bundle, mode string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.%s.%s.%s.yml", s.prefix, entityType, bundle, mode))
}

// Read resolves and decodes the document for the given coordinates. A missing
// file surfaces as display.ErrNotFound so callers can treat "no form display
// configured yet" as the expected condition it is.
func (s *Store) Read(ctx context.Context, entityType, bundle, mode string) (display.FormDisplay, error) {
	if entityType == "" || bundle == "" {
		return display.FormDisplay{}, errors.New("display store: entity type and bundle are required")
	}
	if mode == "" {
		mode = "default"
	}
	select {
	case <-ctx.Done():
		return display.FormDisplay{}, ctx.Err()
	default:
	}

	path := s.Path(entityType, bundle, mode)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return display.FormDisplay{}, fmt.Errorf("display store: %s: %w", path, display.ErrNotFound)
		}
		return display.FormDisplay{}, fmt.Errorf("display store: read %s: %w", path, err)
	}

	return display.Decode(data)
}

// Write encodes and persists the document under its id coordinates, creating
// the config directory when missing. Encoding is deterministic, so writing
// the same document twice leaves identical bytes on disk.
func (s *Store) Write(ctx context.Context, doc display.FormDisplay) error {
	if doc.TargetEntityType == "" || doc.Bundle == "" {
		return errors.New("display store: document is missing target entity type or bundle")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	mode := doc.Mode
	if mode == "" {
		mode = "default"
	}

	data, err := display.Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("display store: create %s: %w", s.dir, err)
	}

	path := s.Path(doc.TargetEntityType, doc.Bundle, mode)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("display store: write %s: %w", path, err)
	}
	return nil
}
