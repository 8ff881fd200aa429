// Package httpserver runs an http.Handler with timeouts, lifecycle hooks and
// graceful shutdown.
//
// Run binds the listener before invoking start hooks, serves until the
// supplied context is cancelled (wire it to signal.NotifyContext in main),
// then shuts down within the configured timeout.
package httpserver
