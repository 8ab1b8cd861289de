// Package availability classifies a domain name's registration status using
// a two-tier lookup: an RDAP query first, an authoritative-nameserver check
// when the registry answer stays ambiguous. Every code path terminates in one
// of the three statuses; network failures never escape as errors, and no tier
// is retried, so the total request volume per domain stays predictable.
package availability

import (
	"context"
	"errors"
	"strings"

	"hunter/pkg/availability/rdap"
	"hunter/pkg/domain"
	"hunter/pkg/logger"
	"hunter/pkg/serrors"

	"go.uber.org/zap"
)

// signal is the tri-state outcome of a single lookup tier. Only the final
// three-way domain.Status leaves this package.
type signal int

const (
	signalUnclear signal = iota
	signalAvailable
	signalRegistered
)

// RegistryClient is the primary lookup tier.
type RegistryClient interface {
	// Lookup returns the typed RDAP record for fqdn, serrors.ErrNotFound when
	// the registry has no record, or another error on failure.
	Lookup(ctx context.Context, fqdn string) (*rdap.Record, error)
}

// NSResolver is the fallback lookup tier.
type NSResolver interface {
	// LookupNS returns the delegated nameservers for fqdn,
	// serrors.ErrNotFound/ErrNoData when no delegation exists, or another
	// error on failure.
	LookupNS(ctx context.Context, fqdn string) ([]string, error)
}

// Resolver combines the two tiers into a total classification.
type Resolver struct {
	registry RegistryClient
	ns       NSResolver
}

// NewResolver constructs a Resolver from the two lookup collaborators.
func NewResolver(registry RegistryClient, ns NSResolver) *Resolver {
	return &Resolver{registry: registry, ns: ns}
}

// Resolve classifies fqdn. The fallback tier runs only when the primary
// answer is unclear; a still-unclear outcome becomes POSSIBLE_AVAILABLE.
func (r *Resolver) Resolve(ctx context.Context, fqdn string) domain.Status {
	switch r.primary(ctx, fqdn) {
	case signalAvailable:
		return domain.StatusAvailable
	case signalRegistered:
		return domain.StatusRegistered
	case signalUnclear:
	}

	logger.Debug(ctx, "registry answer unclear, trying nameservers", zap.String("domain", fqdn))

	switch r.fallback(ctx, fqdn) {
	case signalAvailable:
		return domain.StatusAvailable
	case signalRegistered:
		return domain.StatusRegistered
	case signalUnclear:
	}

	return domain.StatusPossibleAvailable
}

// primary interprets the RDAP record. A not-found registry answer means the
// name is available; an active/ok status token or the presence of delegation
// or registrant data means registered; everything else stays unclear.
func (r *Resolver) primary(ctx context.Context, fqdn string) signal {
	rec, err := r.registry.Lookup(ctx, fqdn)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return signalAvailable
		}
		logger.Debug(ctx, "registry lookup failed", zap.String("domain", fqdn), zap.Error(err))

		return signalUnclear
	}

	for _, s := range rec.Statuses {
		ls := strings.ToLower(s)
		if strings.Contains(ls, "active") || strings.Contains(ls, "ok") {
			return signalRegistered
		}
	}
	if rec.HasNameservers || rec.HasEntities {
		return signalRegistered
	}

	return signalUnclear
}

// fallback interprets the NS answer. Delegated nameservers mean registered;
// NXDOMAIN or an empty answer means available; other failures stay unclear.
func (r *Resolver) fallback(ctx context.Context, fqdn string) signal {
	hosts, err := r.ns.LookupNS(ctx, fqdn)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrNoData) {
			return signalAvailable
		}
		logger.Debug(ctx, "nameserver lookup failed", zap.String("domain", fqdn), zap.Error(err))

		return signalUnclear
	}
	if len(hosts) > 0 {
		return signalRegistered
	}

	return signalAvailable
}
