// Package api configures the HTTP listeners of the web command: the public
// page server, which only routes the root path, and the optional admin
// listener exposing metrics and pprof.
package api

import (
	"context"
	"fmt"
	"grader/internal/api/handler"
	"grader/internal/config"
	"grader/pkg/controller"
	"grader/pkg/logger"
	"grader/pkg/metrics"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options holds configuration for the page server.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// HTMLFile is the file served at the root path.
	HTMLFile string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request; 0 disables it.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
}

// NewOptions maps the HTTP section of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.ListenAddr(),
		HTMLFile:          cfg.HTTP.HTMLFile,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}
}

// Deps are the collaborators of the page server.
type Deps struct {
	// Meter records page metrics; nil disables them.
	Meter metric.Meter
}

// NewHandler returns the page server's handler: GET / serves the HTML file,
// every other path is answered by the mux default.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	page, err := handler.NewPage(opts.HTMLFile, deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("could not create page handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", page)

	var h http.Handler = controller.WithLogger(mux)
	if opts.RequestTimeout > 0 {
		h = http.TimeoutHandler(h, opts.RequestTimeout, "request timed out")
	}

	return h, nil
}

// NewServer wires up and returns a configured *http.Server for the page.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	h, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          zap.NewStdLog(logger.Get(context.Background())),
	}, nil
}

// NewAdminServer returns a server exposing the provider's metrics at
// metricsPath and pprof under controller.PprofPath.
func NewAdminServer(addr, metricsPath string, provider *metrics.Provider) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, provider.Handler())
	controller.RegisterPprof(mux)

	return &http.Server{
		Addr:              addr,
		Handler:           controller.WithLogger(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
