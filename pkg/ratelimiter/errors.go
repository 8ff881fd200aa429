package ratelimiter

import "errors"

// ErrInvalidConfig is returned by NewBucket for a non-positive capacity,
// refill rate or refill interval.
var ErrInvalidConfig = errors.New("invalid rate limiter configuration")
