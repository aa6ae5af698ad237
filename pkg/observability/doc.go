/*
Package observability turns session lifecycle events into logs and Prometheus
metrics.

Both are exposed as domain.LifecycleHooks, so hosts wire them with
session.WithLifecycleHooks and combine them with LifecycleHooks.Merge.
*/
package observability
