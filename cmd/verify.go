package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hunter/internal/config"
	"hunter/pkg/availability"
	"hunter/pkg/availability/nsquery"
	"hunter/pkg/availability/rdap"
	"hunter/pkg/availability/whoisinfo"
	"hunter/pkg/serrors"

	"github.com/spf13/cobra"
)

// verifyCommand constructs the 'verify' subcommand: a one-shot check of a
// single domain, combining the pipeline's two-tier resolution with a WHOIS
// record for manual confirmation before registering.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <domain>",
		Short: "Checks a single domain and prints its WHOIS record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fqdn := strings.ToLower(strings.TrimSpace(args[0]))

			resolver := availability.NewResolver(
				rdap.New(&http.Client{}, cfg.RDAP.BaseURL, cfg.RDAP.Timeout),
				nsquery.New(cfg.DNS.Servers, cfg.DNS.Timeout),
			)

			fmt.Printf("%s: %s\n", fqdn, resolver.Resolve(ctx, fqdn))

			info, err := whoisinfo.Lookup(fqdn)
			if err != nil {
				if errors.Is(err, serrors.ErrNotFound) {
					fmt.Println("whois: no registration found")

					return nil
				}

				return fmt.Errorf("could not fetch whois record: %w", err)
			}

			fmt.Printf("registrar:  %s\n", info.Registrar)
			fmt.Printf("created:    %s\n", info.CreatedDate)
			fmt.Printf("expires:    %s\n", info.ExpirationDate)
			fmt.Printf("status:     %s\n", strings.Join(info.Statuses, ", "))
			fmt.Printf("nameserver: %s\n", strings.Join(info.NameServers, ", "))

			return nil
		},
	}

	return cmd
}
