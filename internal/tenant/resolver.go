// Package tenant maps an inbound Host header to the shop it addresses.
//
// Resolution is purely lexical: it never consults storage, so a slug that
// belongs to no shop is still returned and rejected later by the page layer.
package tenant

import (
	"net"
	"strings"

	"tenant-storefront/internal/config"
)

// reserved label that always means the root site
const reservedLabel = "www"

type Resolver struct {
	primaryDomain string
	allowLocal    bool
	localSuffix   string
}

func NewResolver(cfg config.Tenant) *Resolver {
	return &Resolver{
		primaryDomain: normalizeHost(cfg.PrimaryDomain),
		allowLocal:    cfg.AllowLocalSubdomains,
		localSuffix:   strings.Trim(strings.ToLower(cfg.LocalSuffix), "."),
	}
}

// Resolve returns the tenant slug for host, or ok=false for the root site.
func (r *Resolver) Resolve(host string) (slug string, ok bool) {
	host = normalizeHost(stripPort(host))
	if host == "" || net.ParseIP(host) != nil {
		return "", false
	}

	slug = r.extract(host)
	if slug == "" || slug == reservedLabel {
		return "", false
	}

	return slug, true
}

func (r *Resolver) extract(host string) string {
	if r.primaryDomain != "" {
		if host == r.primaryDomain {
			return ""
		}
		if sub, found := strings.CutSuffix(host, "."+r.primaryDomain); found {
			return sub
		}
	}

	if r.allowLocal && r.localSuffix != "" {
		if sub, found := strings.CutSuffix(host, "."+r.localSuffix); found {
			return sub
		}
	}

	labels := strings.Split(host, ".")
	if len(labels) > 2 {
		return strings.Join(labels[:len(labels)-2], ".")
	}

	return ""
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	if i := strings.IndexByte(host, ':'); i >= 0 && !strings.HasPrefix(host, "[") {
		return host[:i]
	}
	return host
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
}
