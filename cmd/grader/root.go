package main

import (
	"context"
	"errors"
	"fmt"
	"grader/internal/buildinfo"
	"grader/internal/config"
	"grader/internal/grader"
	"grader/pkg/fetcher/httpfetch"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

const (
	defaultChecksFile = "checks.json"
	defaultHTMLFile   = "index.html"
)

// NewRootCmd creates the grader command. The checks path is validated before
// anything runs; the html source is resolved lazily by the checker.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grader",
		Short: "Check an HTML document for required CSS selectors",
		Long: `grader loads a JSON array of CSS selectors and reports, as JSON, whether
each selector matches at least one element of the HTML document.

The document is read from --file when it names a local file, otherwise
--file is fetched as a URL.`,
		Version:       buildinfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			checks, _ := cmd.Flags().GetString("checks")

			return grader.RequireChecksFile(checks)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			checks, _ := cmd.Flags().GetString("checks")
			file, _ := cmd.Flags().GetString("file")

			f := httpfetch.New(&http.Client{}, httpfetch.Options{
				UserAgent:    cfg.Fetch.UserAgent,
				MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
			})
			c := grader.New(f, grader.Options{
				Stdout:       cmd.OutOrStdout(),
				FetchTimeout: cfg.Fetch.Timeout,
			})

			return c.Run(cmd.Context(), checks, file)
		},
	}

	cmd.Flags().StringP("checks", "c", defaultChecksFile, "Path to checks.json")
	cmd.Flags().StringP("file", "f", defaultHTMLFile, "Path (or URL) to index.html")

	return cmd
}

// execute runs the root command with args and returns the process exit code.
// A missing checks file is reported on stdout, every other failure as
// "Error: ..." on stderr.
func execute(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if errors.Is(err, grader.ErrChecksFileMissing) {
		fmt.Fprintln(stdout, err)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return 1
}
