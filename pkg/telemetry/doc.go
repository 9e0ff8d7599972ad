// Package telemetry provides structured logging and Prometheus metrics
// for dscforge. The Logger wraps zerolog with extraction-domain field
// helpers (run ID, resource, parameter); Metrics counts runs, rendered
// blocks, formatted parameters, registered credentials and quote
// rewrites. A disabled MetricsConfig yields no-op recorders, so call
// sites never need to branch.
package telemetry
