package binder

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DefaultMaxSignalsBytes bounds the JSON body of a datastar request.
const DefaultMaxSignalsBytes = 16 << 10

// Signals decodes datastar signals into v using its `json` tags. GET
// requests carry signals in the "datastar" query parameter, other methods in
// the JSON body, read up to DefaultMaxSignalsBytes. Requests without the
// Datastar-Request header are not applicable.
func Signals() func(r *http.Request, v any) error {
	return SignalsWithLimit(DefaultMaxSignalsBytes)
}

// SignalsWithLimit is Signals with a custom body limit in bytes.
func SignalsWithLimit(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrBinderNotApplicable
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return errors.Join(ErrRequestTooLarge, err)
			}
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}
