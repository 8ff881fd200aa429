package clientip

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"
)

// Headers are checked in order when the peer is a trusted proxy.
var Headers = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Config lists the proxies allowed to report the client address.
type Config struct {
	// TrustedProxies holds addresses or CIDR prefixes. Empty trusts nobody.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Resolver determines the client address of a request. Proxy headers are
// honored only when RemoteAddr belongs to a trusted proxy, otherwise the peer
// address is the client.
type Resolver struct {
	trusted []netip.Prefix
}

// New parses cfg. Bare addresses are treated as single-host prefixes.
func New(cfg Config) (*Resolver, error) {
	r := &Resolver{}
	for _, raw := range cfg.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, raw)
			}
			r.trusted = append(r.trusted, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, raw)
		}
		addr = addr.Unmap()
		r.trusted = append(r.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return r, nil
}

// GetIP returns the peer address of r, ignoring proxy headers.
func GetIP(r *http.Request) string {
	return (&Resolver{}).GetIP(r)
}

// GetIP returns the client address of r, or "" when none is valid.
func (rs *Resolver) GetIP(r *http.Request) string {
	peer, ok := remoteAddr(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !rs.isTrusted(peer) {
		return peer.String()
	}

	for _, h := range Headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if ip := rs.fromHeader(value); ip != "" {
			return ip
		}
	}
	return peer.String()
}

// fromHeader walks a comma separated hop list from the nearest hop and
// returns the first address that is not a trusted proxy. When every hop is
// trusted the farthest one is the client.
func (rs *Resolver) fromHeader(value string) string {
	hops := strings.Split(value, ",")
	var farthest string
	for _, hop := range slices.Backward(hops) {
		addr, ok := parseAddr(hop)
		if !ok {
			continue
		}
		if !rs.isTrusted(addr) {
			return addr.String()
		}
		farthest = addr.String()
	}
	return farthest
}

func (rs *Resolver) isTrusted(addr netip.Addr) bool {
	for _, p := range rs.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteAddr(s string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(s)
	if err != nil {
		return parseAddr(s)
	}
	return parseAddr(host)
}

func parseAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	// IPv4-mapped IPv6 addresses key the same bucket as plain IPv4.
	return addr.Unmap().WithZone(""), true
}
