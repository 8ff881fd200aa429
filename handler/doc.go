// Package handler provides typed HTTP handlers with server-rendered and
// datastar responses.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders, and returns a Response:
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		return handler.Templ(views.Success())
//	}
//
//	r.Post("/", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](errHandler),
//	))
//
// Responses adapt to the request: Templ renders HTML for regular requests and
// an element patch for datastar requests; SSE runs a callback with a
// StreamContext for sending several patches and signal updates in one
// response. Errors from binding or rendering go to the ErrorHandler, and
// NewErrorHandler builds one that classifies errors by status, logs them and
// renders an error page or a datastar toast.
package handler
