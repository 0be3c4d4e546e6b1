package viewport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxAssetSize caps the downloaded model.
const DefaultMaxAssetSize = 64 << 20

// ErrAssetTooLarge is returned when the asset exceeds the size cap.
var ErrAssetTooLarge = errors.New("asset exceeds size limit")

// StatusError is returned when the asset host answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// RemoteLoader fetches a static glTF binary over HTTP.
type RemoteLoader struct {
	url     string
	client  *http.Client
	maxSize int64
}

// RemoteOption configures a RemoteLoader.
type RemoteOption func(*RemoteLoader)

// WithClient sets the HTTP client.
func WithClient(c *http.Client) RemoteOption {
	return func(l *RemoteLoader) { l.client = c }
}

// WithMaxSize sets the download cap in bytes.
func WithMaxSize(n int64) RemoteOption {
	return func(l *RemoteLoader) { l.maxSize = n }
}

// NewRemoteLoader creates a loader for url.
func NewRemoteLoader(url string, opts ...RemoteOption) *RemoteLoader {
	l := &RemoteLoader{
		url:     url,
		client:  http.DefaultClient,
		maxSize: DefaultMaxAssetSize,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *RemoteLoader) Load(ctx context.Context) (*Model, error) {
	if l.url == "" {
		return nil, errors.New("no asset URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch asset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: l.url}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	if int64(len(data)) > l.maxSize {
		return nil, ErrAssetTooLarge
	}

	info, err := InspectGLB(data)
	if err != nil {
		return nil, err
	}
	return &Model{
		Source: SourceRemote,
		URL:    l.url,
		Size:   len(data),
		Info:   info,
	}, nil
}
