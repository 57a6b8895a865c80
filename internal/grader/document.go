package grader

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ParseDocument parses r into a queryable document. When contentType is set
// (a Content-Type header value), the body is decoded to UTF-8 using its
// charset, the document's meta tags or content sniffing. An empty contentType
// reads r as UTF-8.
func ParseDocument(r io.Reader, contentType string) (*goquery.Document, error) {
	if contentType != "" {
		decoded, err := charset.NewReader(r, contentType)
		if err != nil {
			return nil, fmt.Errorf("could not decode document: %w", err)
		}
		r = decoded
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}

	return goquery.NewDocumentFromNode(root), nil
}
