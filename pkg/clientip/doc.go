// Package clientip resolves the originating client address of a request.
//
// By default only RemoteAddr counts. A Resolver built with trusted proxies
// also reads CF-Connecting-IP, X-Forwarded-For and X-Real-IP, but only when
// the request arrives from one of those proxies, so clients cannot pick
// their own address. Addresses are normalized by net/netip. Middleware
// stores the result in the request context for rate limiting and logging.
package clientip
