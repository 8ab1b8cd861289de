package keyword

import (
	"context"
	"sort"
	"sync"

	"hunter/pkg/logger"
	"hunter/pkg/source"

	"go.uber.org/zap"
)

// SourceMetrics records the size of each source fetch. A nil *metrics.Metrics
// satisfies it as a no-op.
type SourceMetrics interface {
	RecordSource(ctx context.Context, source string, names int)
}

// BuildUniverse assembles the full candidate universe from the given sources:
// fetch everything, deduplicate the raw names, normalize and validate them,
// expand each surviving label into its variations, and sort the union
// lexicographically. The sort fixes the order the batch selector depends on:
// given identical source output, the universe (and therefore every batch
// boundary) is identical across runs.
//
// Sources are fetched concurrently; a source that fails is logged and
// contributes nothing.
func BuildUniverse(ctx context.Context, sources []source.Source, affixes []string, sm SourceMetrics) []string {
	raw := make(map[string]struct{})

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, src := range sources {
		wg.Add(1)
		go func(src source.Source) {
			defer wg.Done()

			names, err := src.Fetch(ctx)
			if err != nil {
				logger.Warn(ctx, "source fetch failed, continuing without it",
					zap.String("source", src.Name()), zap.Error(err))

				return
			}
			logger.Info(ctx, "source fetched",
				zap.String("source", src.Name()), zap.Int("names", len(names)))
			if sm != nil {
				sm.RecordSource(ctx, src.Name(), len(names))
			}

			mu.Lock()
			for _, name := range names {
				raw[name] = struct{}{}
			}
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	normalized := make(map[string]struct{}, len(raw))
	for name := range raw {
		label := Normalize(name)
		if IsValid(label) {
			normalized[label] = struct{}{}
		}
	}

	union := make(map[string]struct{}, len(normalized))
	for label := range normalized {
		for _, v := range Variations(label, affixes) {
			union[v] = struct{}{}
		}
	}

	universe := make([]string, 0, len(union))
	for label := range union {
		universe = append(universe, label)
	}
	sort.Strings(universe)

	logger.Info(ctx, "keyword universe built",
		zap.Int("raw", len(raw)),
		zap.Int("normalized", len(normalized)),
		zap.Int("universe", len(universe)))

	return universe
}
