package grader

import (
	"bytes"
	"context"
	"fmt"
	"grader/pkg/domain"
	"grader/pkg/fetcher"
	"grader/pkg/logger"
	"grader/pkg/serrors"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure a Checker.
type Options struct {
	// Stdout receives the report and informational lines.
	Stdout io.Writer
	// FetchTimeout bounds a remote fetch; 0 waits indefinitely.
	FetchTimeout time.Duration
}

// Checker runs one grading pass per call to Run.
type Checker struct {
	fetcher fetcher.Fetcher
	options Options
}

// New constructs a Checker that uses f for remote sources.
func New(f fetcher.Fetcher, opts Options) *Checker {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	return &Checker{
		fetcher: f,
		options: opts,
	}
}

// Run obtains the HTML named by source, evaluates the checks in checksPath
// against it and writes the report to Stdout.
//
// A local source is read synchronously. A remote source is fetched by a
// single asynchronous task; the report is produced only once it succeeds.
func (c *Checker) Run(ctx context.Context, checksPath, source string) error {
	src := Resolve(source)
	ctx = logger.WithFields(ctx, zap.String("source", src.Location), zap.Stringer("kind", src.Kind))

	if src.Kind == SourceLocal {
		content, err := os.ReadFile(src.Location)
		if err != nil {
			return serrors.Wrap(ErrHTMLUnreadable, err, "could not read html file")
		}

		return c.check(ctx, content, "", checksPath)
	}

	fmt.Fprintf(c.options.Stdout, "%s does not exist as local file, fetching as URL\n", src.Location)

	page, err := c.fetch(ctx, src.Location)
	if err != nil {
		return err
	}
	if page.StatusCode < 200 || page.StatusCode >= 300 {
		logger.Warn(ctx, "html source responded with non-success status, checking body anyway",
			zap.Int("status_code", page.StatusCode))
	}

	return c.check(ctx, page.Body, page.ContentType, checksPath)
}

// fetch runs the remote fetch as one task and waits for its outcome.
func (c *Checker) fetch(ctx context.Context, URL string) (*fetcher.Page, error) {
	if c.options.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.FetchTimeout)
		defer cancel()
	}

	logger.Debug(ctx, "fetching html source")

	var page *fetcher.Page
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.fetcher.Fetch(gctx, URL)
		if err != nil {
			return err
		}
		page = p

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, serrors.Wrap(ErrHTMLFetch, err, "")
	}

	logger.Debug(ctx, "fetched html source", zap.Int("bytes", len(page.Body)), zap.String("final_url", page.URL))

	return page, nil
}

func (c *Checker) check(ctx context.Context, content []byte, contentType, checksPath string) error {
	report, err := CheckHTML(content, contentType, checksPath)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "evaluated checks", zap.Int("checks", report.Len()))

	return WriteReport(c.options.Stdout, report)
}

// CheckHTML parses content, loads the checks file and evaluates it.
func CheckHTML(content []byte, contentType, checksPath string) (*domain.Report, error) {
	doc, err := ParseDocument(bytes.NewReader(content), contentType)
	if err != nil {
		return nil, serrors.Wrap(ErrHTMLUnreadable, err, "")
	}

	checks, err := LoadChecks(checksPath)
	if err != nil {
		return nil, err
	}

	return Evaluate(doc, checks)
}
