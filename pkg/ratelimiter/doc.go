// Package ratelimiter implements a token bucket limiter over a pluggable Store.
//
// Each key owns a bucket of Config.Capacity tokens that refills by
// Config.RefillRate tokens every Config.RefillInterval. A request consumes
// one token; a negative remainder means the request is denied.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       20,
//	    RefillRate:     10,
//	    RefillInterval: time.Second,
//	})
//
// SetHeaders writes the X-RateLimit-* and Retry-After response headers for a Result.
package ratelimiter
