// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultMaxBytes bounds an asset when WithMaxBytes is not given.
const DefaultMaxBytes = 256 << 20

// Loader fetches assets over HTTP or from the file system.
type Loader struct {
	client   *http.Client
	maxBytes int64
	log      *slog.Logger
}

type Option func(*Loader)

// WithHTTPClient replaces the client used for http and https locators.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithTimeout bounds each HTTP fetch.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		c := *l.client
		c.Timeout = d
		l.client = &c
	}
}

// WithMaxBytes fails loads larger than n bytes.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

func New(opts ...Option) *Loader {
	l := &Loader{
		client:   &http.Client{},
		maxBytes: DefaultMaxBytes,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.log = l.log.With("component", "loader")

	return l
}

// Load fetches locator on a new goroutine and then calls onSuccess with the
// bytes or onFailure with an error wrapping ErrLoadFailure. Exactly one of
// them is called, once.
func (l *Loader) Load(ctx context.Context, locator string, onSuccess func([]byte), onFailure func(error)) {
	go func() {
		data, err := l.Fetch(ctx, locator)
		if err != nil {
			if onFailure != nil {
				onFailure(err)
			}
			return
		}

		if onSuccess != nil {
			onSuccess(data)
		}
	}()
}

// Fetch reads the whole asset at locator.
func (l *Loader) Fetch(ctx context.Context, locator string) ([]byte, error) {
	start := time.Now()

	data, err := l.fetch(ctx, locator)
	if err == nil && len(data) == 0 {
		err = errEmptyAsset
	}

	if err != nil {
		l.log.Warn("load failed", "locator", locator, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, locator, err)
	}

	l.log.Info("asset loaded",
		"locator", locator,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	return data, nil
}

func (l *Loader) fetch(ctx context.Context, locator string) ([]byte, error) {
	if locator == "" {
		return nil, fmt.Errorf("empty locator")
	}

	u, err := url.Parse(locator)
	if err != nil || len(u.Scheme) < 2 {
		// plain path, including Windows drive letters
		return l.readFile(locator)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.get(ctx, u.String())
	case "file":
		return l.readFile(u.Path)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func (l *Loader) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	l.log.Debug("received response", "url", rawURL, "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return l.readAll(resp.Body)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.readAll(f)
}

func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("asset larger than %d bytes", l.maxBytes)
	}

	return data, nil
}
