// Package httpfetch provides a fetcher.Fetcher implementation backed by
// net/http.
package httpfetch

import (
	"context"
	"errors"
	"grader/pkg/fetcher"
	"grader/pkg/serrors"
	"io"
	"net/http"
)

// Options configure a Client. Zero values disable the corresponding behavior.
type Options struct {
	// UserAgent is sent with every request when not empty.
	UserAgent string
	// MaxBodyBytes caps the size of a response body; 0 means unlimited.
	MaxBodyBytes int64
}

// Client fetches pages over HTTP(S). It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// Fetch issues a GET request for URL and returns the response whatever its
// status code. Transport failures are reported as serrors.ErrUnavailable, an
// expired context as serrors.ErrTimeout.
func (c *Client) Fetch(ctx context.Context, URL string) (*fetcher.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not create request")
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if c.options.UserAgent != "" {
		req.Header.Set("User-Agent", c.options.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "could not fetch %s", URL)
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not fetch %s", URL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var body io.Reader = resp.Body
	if c.options.MaxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, c.options.MaxBodyBytes+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if c.options.MaxBodyBytes > 0 && int64(len(b)) > c.options.MaxBodyBytes {
		return nil, serrors.With(serrors.ErrUnavailable,
			"response body of %s exceeds %d bytes", URL, c.options.MaxBodyBytes)
	}

	finalURL := URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &fetcher.Page{
		URL:         finalURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        b,
	}, nil
}

// Ensure Client conforms to the fetcher.Fetcher interface at compile time.
var _ fetcher.Fetcher = (*Client)(nil)

// New constructs a Client using httpClient; a nil httpClient means
// http.DefaultClient.
func New(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		options:    opts,
	}
}

