// Package fetcher defines the abstraction used to retrieve a remote HTML page
// by URL.
package fetcher

import "context"

// Page is a fetched HTTP response.
type Page struct {
	URL         string // URL is the final URL after redirects.
	StatusCode  int    // StatusCode is the HTTP status of the response.
	ContentType string // ContentType is the raw Content-Type response header.
	Body        []byte // Body is the full response body.
}

// Fetcher retrieves pages. A non-2xx response is returned as a Page, only
// failures to obtain a response at all are errors.
//
//go:generate mockgen -package mockfetcher -source=interface.go -destination=mock/mockfetcher.go *
type Fetcher interface {
	// Fetch performs a GET request for URL and reads the full body.
	Fetch(ctx context.Context, URL string) (*Page, error)
}
