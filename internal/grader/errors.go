package grader

import "grader/pkg/serrors"

// Error kinds returned by this package. Every kind terminates an invocation.
var (
	// ErrChecksFileMissing means the checks path is not an existing local file.
	ErrChecksFileMissing = serrors.NewKind("CHECKS_FILE_MISSING")
	// ErrChecksUnreadable means the checks file exists but could not be read.
	ErrChecksUnreadable = serrors.NewKind("CHECKS_FILE_UNREADABLE")
	// ErrChecksInvalid means the checks file is not a JSON array of strings.
	ErrChecksInvalid = serrors.NewKind("CHECKS_FILE_INVALID")
	// ErrHTMLFetch means the html source is neither a local file nor a fetchable URL.
	ErrHTMLFetch = serrors.NewKind("HTML_FETCH_FAILED")
	// ErrHTMLUnreadable means a local html file could not be read or parsed.
	ErrHTMLUnreadable = serrors.NewKind("HTML_FILE_UNREADABLE")
	// ErrInvalidSelector means the selector engine rejected a check.
	ErrInvalidSelector = serrors.NewKind("INVALID_SELECTOR")
)
