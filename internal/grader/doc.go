// Package grader checks an HTML document for the presence of CSS selectors.
//
// A run loads a JSON array of selectors, obtains the HTML from a local file or
// a URL, parses it into a goquery document and reports, for every distinct
// selector in sorted order, whether it matches at least one element.
package grader
