// Package handler contains the HTTP handlers of the page server.
package handler

import (
	"grader/pkg/logger"
	"grader/pkg/metrics"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Page serves a single HTML file. The file is read from disk on every
// request, so edits show up without a restart.
type Page struct {
	path     string
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewPage returns a handler serving the file at path. A nil meter disables
// metrics.
func NewPage(path string, meter metric.Meter) (*Page, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	requests, err := meter.Int64Counter("page.requests",
		metric.WithDescription("Requests for the served page by status code"))
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("page.read.duration",
		metric.WithDescription("Time spent reading and writing the served page"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return &Page{
		path:     path,
		requests: requests,
		latency:  latency,
	}, nil
}

func (h *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	status := http.StatusOK
	defer func() {
		attrs := metric.WithAttributes(attribute.Int("status_code", status))
		h.requests.Add(ctx, 1, attrs)
		h.latency.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	content, err := os.ReadFile(h.path)
	if err != nil {
		status = http.StatusInternalServerError
		logger.Error(ctx, "could not read page", zap.String("path", h.path), zap.Error(err))
		http.Error(w, http.StatusText(status), status)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(content); err != nil {
		logger.Warn(ctx, "could not write page", zap.Error(err))
	}
}
