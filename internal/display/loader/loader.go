package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

// Loader fetches raw display documents from files, an fs.FS, or HTTP,
// switching on the source kind. HTTP stays off unless the options enable it.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ display.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options display.LoaderOptions) display.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the document the source addresses and wraps it in a
// display.Document.
func (l *Loader) Load(ctx context.Context, src display.Source) (display.Document, error) {
	if src == nil {
		return display.Document{}, errors.New("display loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return display.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case display.SourceKindFile:
		data, err = l.loadFile(src.Location())
	case display.SourceKindFS:
		data, err = l.loadFromFS(src.Location())
	case display.SourceKindURL:
		if !l.allowHTTP {
			return display.Document{}, errors.New("display loader: http support disabled")
		}
		data, err = l.loadHTTP(ctx, src.Location())
	default:
		err = fmt.Errorf("display loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return display.Document{}, err
	}

	return display.NewDocument(src, data)
}

func (l *Loader) loadFile(location string) ([]byte, error) {
	if location == "" {
		return nil, errors.New("display loader: file path is required")
	}
	if err := checkExtension(location); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (l *Loader) loadFromFS(name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("display loader: fs path is required")
	}
	if l.fs == nil {
		return nil, errors.New("display loader: fs is not configured")
	}
	if err := checkExtension(name); err != nil {
		return nil, err
	}
	return fs.ReadFile(l.fs, name)
}

// checkExtension rejects paths that cannot hold a display document. Config
// exports are YAML files; catching a stray path here beats a decode error
// that names no file.
func checkExtension(location string) error {
	switch strings.ToLower(path.Ext(filepath.ToSlash(location))) {
	case ".yml", ".yaml":
		return nil
	default:
		return fmt.Errorf("display loader: %q is not a YAML document", location)
	}
}
