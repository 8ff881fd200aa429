package binder

import "errors"

var (
	// ErrBinderNotApplicable tells the binder chain to try the next binder.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
	ErrRequestTooLarge      = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
