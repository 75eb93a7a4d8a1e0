package display

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches raw display documents from a Source. Implementations live in
// internal/display/loader; construct one through the root package helpers.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions tunes loader construction.
type LoaderOptions struct {
	// FileSystem backs fs sources. Required when fs sources are used.
	FileSystem fs.FS
	// HTTPClient overrides the client used for url sources.
	HTTPClient *http.Client
	// AllowHTTPFallback enables url sources with a default client when no
	// HTTPClient is supplied.
	AllowHTTPFallback bool
	// RequestTimeout bounds each url fetch.
	RequestTimeout time.Duration
}
