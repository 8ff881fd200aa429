package clientip

import "errors"

// ErrInvalidProxy is returned by New for a trusted proxy that is neither an
// address nor a CIDR prefix.
var ErrInvalidProxy = errors.New("clientip: invalid trusted proxy")
