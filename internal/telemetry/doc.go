// Package telemetry wires the process-wide observability backends: an OTLP
// trace exporter configured from the environment and a Prometheus registry
// served over HTTP.
package telemetry
