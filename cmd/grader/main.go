// Package main provides the grader CLI, which checks an HTML file or URL for
// the presence of the CSS selectors listed in a JSON checks file.
//
// Usage:
//
//	grader [-c|--checks checks.json] [-f|--file index.html|URL]
package main

import (
	"context"
	"grader/internal/config"
	"grader/pkg/logger"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main loads env configuration and logging, runs the root command and exits
// with its status.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("could not load config: ", err)
	}
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	logger.Sync()

	os.Exit(code)
}
