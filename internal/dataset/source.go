package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source fetches the raw dataset resource.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// Ensure both sources implement Source at compile time.
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*HTTPSource)(nil)
)

const (
	defaultUserAgent   = "certcheck/0.1"
	defaultHTTPTimeout = 10 * time.Second

	// maxResourceBytes caps how much of the resource is read into memory.
	maxResourceBytes = 64 << 20
)

// NewSource returns an HTTP source for http(s) URLs and a file source for
// anything else.
func NewSource(location string, timeout time.Duration) (Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, fmt.Errorf("dataset location is empty")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(trimmed, timeout)
	}
	return &FileSource{Path: trimmed}, nil
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("dataset file %s does not exist", s.Path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()
	return readCapped(file)
}

func (s *FileSource) String() string { return s.Path }

// HTTPSource downloads the dataset from a static URL.
type HTTPSource struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

// NewHTTPSource builds an HTTPSource for rawURL.
func NewHTTPSource(rawURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse dataset url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("dataset url %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("dataset url %q has no host", rawURL)
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPSource{
		url:       u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch performs a single GET and returns the body.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("GET %s returned status %d", s.url.Redacted(), resp.StatusCode)
	}
	return readCapped(resp.Body)
}

func (s *HTTPSource) String() string { return s.url.Redacted() }

func readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxResourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(data) > maxResourceBytes {
		return nil, fmt.Errorf("dataset exceeds %d bytes", maxResourceBytes)
	}
	return data, nil
}
