package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/signupform/pkg/binder"
)

// PatchPrepend inserts the patch before the first child of the target.
const PatchPrepend = datastar.ElementPatchModePrepend

// IsDataStar reports whether r was issued by the datastar client. Binders
// and responses share this predicate.
func IsDataStar(r *http.Request) bool {
	return binder.IsDataStar(r)
}
