// Package whoisinfo fetches a WHOIS record summary for manual verification of
// a candidate domain. It is not part of the batch pipeline; the two-tier
// resolver alone decides availability there.
package whoisinfo

import (
	"errors"
	"fmt"

	"hunter/pkg/serrors"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Info is the parsed subset of a WHOIS record worth showing a human.
type Info struct {
	// Registrar is the sponsoring registrar's name.
	Registrar string
	// CreatedDate and ExpirationDate are the registry's date strings, verbatim.
	CreatedDate    string
	ExpirationDate string
	// Statuses is the EPP status list.
	Statuses []string
	// NameServers lists the delegated nameservers.
	NameServers []string
}

// Lookup queries WHOIS for fqdn and parses the answer. A record the parser
// recognizes as unregistered maps to serrors.ErrNotFound.
func Lookup(fqdn string) (*Info, error) {
	raw, err := whois.Whois(fqdn)
	if err != nil {
		return nil, fmt.Errorf("could not query whois: %w", err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "%s is not registered", fqdn)
		}

		return nil, fmt.Errorf("could not parse whois record: %w", err)
	}

	info := &Info{}
	if parsed.Domain != nil {
		info.CreatedDate = parsed.Domain.CreatedDate
		info.ExpirationDate = parsed.Domain.ExpirationDate
		info.Statuses = parsed.Domain.Status
		info.NameServers = parsed.Domain.NameServers
	}
	if parsed.Registrar != nil {
		info.Registrar = parsed.Registrar.Name
	}

	return info, nil
}
