package httpfetch_test

import (
	"context"
	"errors"
	"grader/pkg/fetcher/httpfetch"
	"grader/pkg/serrors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc, opts httpfetch.Options) *httpfetch.Client {
	return httpfetch.New(&http.Client{Transport: fn}, opts)
}

func TestClient_Fetch_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "example.com", r.URL.Host)
		require.Equal(t, "/index.html", r.URL.Path)
		require.Equal(t, "grader-test", r.Header.Get("User-Agent"))

		h := http.Header{}
		h.Set("Content-Type", "text/html; charset=utf-8")

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("<h1>hi</h1>")),
			Request:    r,
		}, nil
	}, httpfetch.Options{UserAgent: "grader-test"})

	page, err := c.Fetch(context.Background(), "https://example.com/index.html")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, page.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", page.ContentType)
	require.Equal(t, "https://example.com/index.html", page.URL)
	require.Equal(t, "<h1>hi</h1>", string(page.Body))
}

func TestClient_Fetch_non2xxIsNotAnError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("<p>gone</p>")),
		}, nil
	}, httpfetch.Options{})

	page, err := c.Fetch(context.Background(), "https://example.com/missing")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, page.StatusCode)
	require.Equal(t, "<p>gone</p>", string(page.Body))
}

func TestClient_Fetch_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}, httpfetch.Options{})

	page, err := c.Fetch(context.Background(), "https://example.com/")
	require.Error(t, err)
	require.Nil(t, page)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "connection refused")
}

func TestClient_Fetch_noScheme(t *testing.T) {
	c := httpfetch.New(nil, httpfetch.Options{})

	_, err := c.Fetch(context.Background(), "does-not-exist.html")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Fetch_bodyLimit(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("0123456789")),
		}, nil
	}, httpfetch.Options{MaxBodyBytes: 4})

	_, err := c.Fetch(context.Background(), "https://example.com/")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "exceeds 4 bytes")
}

func TestClient_Fetch_deadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := httpfetch.New(srv.Client(), httpfetch.Options{}).Fetch(ctx, srv.URL)
	require.ErrorIs(t, err, serrors.ErrTimeout)
}
