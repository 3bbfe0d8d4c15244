/*
Package observability exposes Prometheus metrics for hierarchy builds, queries
and renders.

Metrics are registered on a caller-supplied registerer so tests and embedding
programs can keep their own registry. All methods are safe on a nil *Metrics,
which records nothing.
*/
package observability
