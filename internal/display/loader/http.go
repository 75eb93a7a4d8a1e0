package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxDocumentBytes bounds a fetched payload. Display documents are small;
// anything past this is not one.
const maxDocumentBytes = 4 << 20

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("display loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("display loader: url is required")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/yaml, text/yaml")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("display loader: fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("display loader: fetch %s: document exceeds %d bytes", url, maxDocumentBytes)
	}
	return data, nil
}
