package main

import (
	"context"
	"net/http"

	"hunter/internal/config"
	"hunter/internal/hunter"
	"hunter/pkg/availability"
	"hunter/pkg/availability/nsquery"
	"hunter/pkg/availability/rdap"
	"hunter/pkg/logger"
	"hunter/pkg/metrics"
	"hunter/pkg/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// huntCommand constructs the 'hunt' subcommand that executes one full run:
// build the universe, check today's batch, deliver the interesting results.
func huntCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Runs one daily batch of domain checks",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			opts := hunter.Options{
				Sources: buildSources(cfg),
				Resolver: availability.NewResolver(
					rdap.New(&http.Client{}, cfg.RDAP.BaseURL, cfg.RDAP.Timeout),
					nsquery.New(cfg.DNS.Servers, cfg.DNS.Timeout),
				),
				Notifiers:   buildNotifiers(cfg),
				TLDs:        cfg.Hunt.TLDs,
				Affixes:     cfg.Hunt.Affixes,
				BatchSize:   cfg.Hunt.BatchSize,
				Concurrency: cfg.Hunt.Concurrency,
				CheckDelay:  cfg.Hunt.CheckDelay,
			}

			if cfg.Database.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				opts.Store = strg
			}

			if cfg.Metrics.Addr != "" {
				m, err := metrics.New()
				if err != nil {
					logger.Fatal(ctx, "could not create metrics", zap.Error(err))
				}
				opts.Metrics = m
				go func() {
					if err := http.ListenAndServe(cfg.Metrics.Addr, metrics.Handler()); err != nil { //nolint: gosec
						logger.Error(ctx, "metrics listener failed", zap.Error(err))
					}
				}()
				defer func() {
					_ = m.Shutdown(ctx)
				}()
			}

			h, err := hunter.New(opts)
			if err != nil {
				logger.Fatal(ctx, "could not create hunter", zap.Error(err))
			}

			summary, err := h.Run(ctx)
			if err != nil {
				logger.Fatal(ctx, "run failed", zap.Error(err))
			}

			logger.Info(ctx, "hunt complete",
				zap.String("run_id", summary.RunID.String()),
				zap.Int("checked", summary.Checked),
				zap.Int("interesting_bases", summary.InterestingBases))
		},
	}

	return cmd
}

// buildNotifiers assembles the delivery channels. The CSV report is always
// on; email and webhook activate when their addresses are configured.
func buildNotifiers(cfg *config.Config) []hunter.Notifier {
	notifiers := []hunter.Notifier{
		report.NewCSVWriter(cfg.Report.CSVPath),
	}

	if cfg.Notify.WebhookURL != "" {
		notifiers = append(notifiers, report.NewWebhook(nil, cfg.Notify.WebhookURL, cfg.Report.MaxEmailGroups))
	}

	if cfg.Notify.SMTP.Host != "" {
		from := cfg.Notify.SMTP.From
		if from == "" {
			from = cfg.Notify.SMTP.Username
		}
		notifiers = append(notifiers, report.NewEmailer(report.EmailOptions{
			Host:      cfg.Notify.SMTP.Host,
			Port:      cfg.Notify.SMTP.Port,
			Username:  cfg.Notify.SMTP.Username,
			Password:  cfg.Notify.SMTP.Password,
			From:      from,
			To:        cfg.Notify.SMTP.To,
			MaxGroups: cfg.Report.MaxEmailGroups,
		}))
	}

	return notifiers
}
