package alerts

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "lucid/alerts"

// Span names. A span covers a widget from the moment it is shown until its
// result settles or it is removed.
const (
	spanDialog       = "alerts.dialog"
	spanNotification = "alerts.notification"
)

func (m *Manager) startSpan(name string, id uint64, start time.Time, attrs ...attribute.KeyValue) oteltrace.Span {
	attrs = append(attrs, attribute.String("lucid.id", strconv.FormatUint(id, 10)))
	_, span := m.tracer.Start(context.Background(), name,
		oteltrace.WithTimestamp(start),
		oteltrace.WithAttributes(attrs...),
	)
	return span
}

func endSpan(span oteltrace.Span, outcome string, end time.Time) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String("lucid.outcome", outcome))
	span.End(oteltrace.WithTimestamp(end))
}
