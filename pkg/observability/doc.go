/*
Package observability provides tools for monitoring the devconsole engine.

It turns the engine's LifecycleHooks into Prometheus metrics and structured log
records. Both are plain hook sets and can be combined with LifecycleHooks.Merge.
*/
package observability
