package binder

import (
	"net/http"
	"strings"
)

// DataStarRequestHeader is attached by the datastar client to every backend action.
const DataStarRequestHeader = "Datastar-Request"

// IsDataStar reports whether r was issued by the datastar client. Only the
// request header counts: an SSE Accept header or a "datastar" query
// parameter can come from anywhere.
func IsDataStar(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true")
}
