// Package hunter orchestrates one daily run: build the keyword universe,
// select the day's batch, check every (label, TLD) pair, and deliver the
// interesting results.
package hunter

import (
	"context"
	"time"

	"hunter/internal/keyword"
	"hunter/internal/runner"
	"hunter/pkg/domain"
	"hunter/pkg/logger"
	"hunter/pkg/metrics"
	"hunter/pkg/serrors"
	"hunter/pkg/source"
	"hunter/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolver classifies the registration status of a single domain name.
type Resolver interface {
	Resolve(ctx context.Context, fqdn string) domain.Status
}

// Notifier delivers a finished run's interesting groups somewhere: a CSV
// file, a mailbox, a webhook.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, summary domain.Summary, groups []domain.Group) error
}

// Options wires a Hunter's collaborators and tuning knobs.
type Options struct {
	// Sources feed the keyword universe.
	Sources []source.Source
	// Resolver performs the per-domain status check.
	Resolver Resolver
	// Notifiers receive the interesting groups. Called only when at least one
	// group is interesting.
	Notifiers []Notifier
	// Store persists run history; nil disables persistence.
	Store storage.RunStore
	// Metrics records run instrumentation; nil disables it.
	Metrics *metrics.Metrics

	// TLDs are checked per label, leading dot included.
	TLDs []string
	// Affixes expand each label into its variations.
	Affixes []string
	// BatchSize is the number of labels per daily batch.
	BatchSize int
	// Concurrency is the size of the check worker pool.
	Concurrency int
	// CheckDelay is the per-worker pause after each check.
	CheckDelay time.Duration
}

// Hunter runs the pipeline end to end.
type Hunter struct {
	opts Options

	// now is the clock, replaceable in tests to pin the batch rotation.
	now func() time.Time
}

// New constructs a Hunter. It fails when the options cannot produce any
// check: no sources, no resolver, or no TLDs.
func New(opts Options) (*Hunter, error) {
	if len(opts.Sources) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one source is required")
	}
	if opts.Resolver == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "a resolver is required")
	}
	if len(opts.TLDs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one TLD is required")
	}
	if opts.Concurrency < 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "concurrency must be at least 1, got %d", opts.Concurrency)
	}
	if len(opts.Affixes) == 0 {
		opts.Affixes = keyword.DefaultAffixes
	}

	return &Hunter{opts: opts, now: time.Now}, nil
}

// Run executes one full run and returns its summary. Delivery failures are
// logged and do not fail the run; only setup problems surface as errors.
func (h *Hunter) Run(ctx context.Context) (domain.Summary, error) {
	runID := uuid.New()
	startedAt := h.now()
	ctx = logger.With(ctx, zap.String("run_id", runID.String()))

	universe := keyword.BuildUniverse(ctx, h.opts.Sources, h.opts.Affixes, h.opts.Metrics)
	batch := keyword.SelectBatch(universe, h.opts.BatchSize, startedAt)
	if batch.Empty() {
		logger.Warn(ctx, "empty batch, nothing to check")

		return domain.Summary{RunID: runID, StartedAt: startedAt}, nil
	}
	logger.Info(ctx, "batch selected",
		zap.Int("batch_index", batch.Index),
		zap.Int("batch_total", batch.Total),
		zap.Int("labels", len(batch.Labels)))

	tasks := domain.Tasks(batch.Labels, h.opts.TLDs)
	results, err := runner.Run(ctx, tasks, h.check, h.opts.Concurrency, h.opts.CheckDelay)
	if err != nil {
		return domain.Summary{}, err
	}

	groups := groupByBase(tasks, results)
	interesting := filterInteresting(groups)
	summary := summarize(runID, startedAt, h.now().Sub(startedAt), results, interesting)

	logger.Info(ctx, "run finished",
		zap.Int("checked", summary.Checked),
		zap.Int("available", summary.Available),
		zap.Int("possible", summary.Possible),
		zap.Int("registered", summary.Registered),
		zap.Int("interesting_bases", summary.InterestingBases),
		zap.Duration("duration", summary.Duration))

	if len(interesting) > 0 {
		h.deliver(ctx, summary, interesting)
	} else {
		logger.Info(ctx, "nothing interesting, skipping delivery")
	}

	return summary, nil
}

// check resolves one domain and records the outcome.
func (h *Hunter) check(ctx context.Context, fqdn string) domain.Status {
	started := time.Now()
	status := h.opts.Resolver.Resolve(ctx, fqdn)
	h.opts.Metrics.RecordCheck(ctx, status, time.Since(started))

	return status
}

// deliver fans the interesting groups out to every notifier and the store.
// Each failure is logged; one broken channel never blocks the others.
func (h *Hunter) deliver(ctx context.Context, summary domain.Summary, groups []domain.Group) {
	for _, notifier := range h.opts.Notifiers {
		if err := notifier.Notify(ctx, summary, groups); err != nil {
			logger.Error(ctx, "notifier failed",
				zap.String("notifier", notifier.Name()), zap.Error(err))

			continue
		}
		logger.Info(ctx, "notifier delivered", zap.String("notifier", notifier.Name()))
	}

	if h.opts.Store == nil {
		return
	}
	if err := h.opts.Store.StoreRun(ctx, summary, groups); err != nil {
		logger.Error(ctx, "could not persist run", zap.Error(err))

		return
	}
	logger.Info(ctx, "run persisted")
}
