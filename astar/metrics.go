package astar

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/pathcost"
)

var meter = otel.Meter(tracerName)

// Metrics for route searches.
var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	expandedNodes metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"astar_search_duration_seconds",
			metric.WithDescription("Duration of A* route searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"astar_search_total",
			metric.WithDescription("Total number of A* route searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expandedNodes, err = meter.Int64Histogram(
			"astar_expanded_nodes",
			metric.WithDescription("Number of search states expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records metrics for a completed search.
func recordSearchMetrics(ctx context.Context, duration time.Duration, expanded int, found bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("found", found))

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	expandedNodes.Record(ctx, int64(expanded))
}

// startComputeSpan creates a span for a Compute call.
func startComputeSpan(ctx context.Context, tracer trace.Tracer, source, target int, h pathcost.Heuristic) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Router.Compute",
		trace.WithAttributes(
			attribute.Int("astar.source", source),
			attribute.Int("astar.target", target),
			attribute.String("astar.heuristic", h.String()),
		),
	)
}

// setComputeSpanResult sets the result attributes on a Compute span.
func setComputeSpanResult(span trace.Span, res *Result) {
	span.SetAttributes(
		attribute.Bool("astar.found", res.Found()),
		attribute.Int("astar.cost", res.Cost),
		attribute.Int("astar.turns", res.Turns),
		attribute.Int("astar.expanded", res.Expanded),
	)
}

// setComputeSpanError marks a Compute span as failed.
func setComputeSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
