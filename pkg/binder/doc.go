// Package binder decodes HTTP requests into Go structs.
//
// Binders have the signature func(r *http.Request, v any) error and are
// chained by handler.WithBinders. A binder that does not apply to a request
// returns ErrBinderNotApplicable and the chain moves on, so one handler can
// accept several encodings:
//
//	handler.Wrap(submit, handler.WithBinders[handler.Context, Request](
//		binder.Signals(), // datastar requests, JSON signals
//		binder.Form(),    // plain HTML form posts
//	))
//
// Form binds `form:"name"` tags and recurses into embedded structs.
// Signals decodes datastar signals with `json` tags and caps the body size.
// Both binders use IsDataStar to decide which one applies.
package binder
