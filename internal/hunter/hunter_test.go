package hunter

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hunter/pkg/domain"
	"hunter/pkg/report"
	"hunter/pkg/source"

	"github.com/stretchr/testify/require"
)

// mapResolver answers from a fixed table, defaulting to registered.
type mapResolver struct {
	statuses map[string]domain.Status
}

func (m *mapResolver) Resolve(_ context.Context, fqdn string) domain.Status {
	if status, ok := m.statuses[fqdn]; ok {
		return status
	}

	return domain.StatusRegistered
}

// recordingNotifier captures what it was asked to deliver.
type recordingNotifier struct {
	calls   int
	summary domain.Summary
	groups  []domain.Group
	err     error
}

func (r *recordingNotifier) Name() string { return "recording" }

func (r *recordingNotifier) Notify(_ context.Context, summary domain.Summary, groups []domain.Group) error {
	r.calls++
	r.summary = summary
	r.groups = groups

	return r.err
}

// failingSource always errors, producing an empty universe on its own.
type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Fetch(context.Context) ([]string, error) {
	return nil, errors.New("boom")
}

func newTestHunter(t *testing.T, opts Options) *Hunter {
	t.Helper()

	h, err := New(opts)
	require.NoError(t, err)
	// pin the clock so the batch rotation always picks index 0
	h.now = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }

	return h
}

func TestHunter_Run_OpenAIScenario(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	notifier := &recordingNotifier{}
	resolver := &mapResolver{statuses: map[string]domain.Status{
		"openai.com": domain.StatusRegistered,
		"openai.app": domain.StatusAvailable,
		"openai.ai":  domain.StatusRegistered,
		"openai.so":  domain.StatusPossibleAvailable,
	}}

	h := newTestHunter(t, Options{
		Sources:     []source.Source{source.NewStatic("buzzwords", []string{"OpenAI"})},
		Resolver:    resolver,
		Notifiers:   []Notifier{report.NewCSVWriter(csvPath), notifier},
		TLDs:        []string{".com", ".app", ".ai", ".so"},
		Affixes:     []string{"ai", "labs", "cloud", "tech"},
		BatchSize:   500,
		Concurrency: 2,
	})

	summary, err := h.Run(context.Background())
	require.NoError(t, err)

	// "openai" plus its eight affix variations, four TLDs each
	require.Equal(t, 36, summary.Checked)
	require.Equal(t, summary.Checked, summary.Available+summary.Possible+summary.Registered)
	require.Equal(t, 1, summary.Available)
	require.Equal(t, 1, summary.Possible)
	require.Equal(t, 1, summary.InterestingBases)

	require.Equal(t, 1, notifier.calls)
	require.Len(t, notifier.groups, 1)
	require.Equal(t, "openai", notifier.groups[0].Base)

	file, err := os.Open(csvPath)
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"base", "domain", "status"},
		{"openai", "openai.com", "REGISTERED"},
		{"openai", "openai.app", "AVAILABLE"},
		{"openai", "openai.ai", "REGISTERED"},
		{"openai", "openai.so", "POSSIBLE_AVAILABLE"},
	}, rows)
}

func TestHunter_Run_EmptyUniverseIsNoOp(t *testing.T) {
	notifier := &recordingNotifier{}

	h := newTestHunter(t, Options{
		Sources:     []source.Source{failingSource{}},
		Resolver:    &mapResolver{},
		Notifiers:   []Notifier{notifier},
		TLDs:        []string{".com"},
		BatchSize:   200,
		Concurrency: 2,
	})

	summary, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, summary.Checked)
	require.Zero(t, notifier.calls)
}

func TestHunter_Run_NothingInterestingSkipsDelivery(t *testing.T) {
	notifier := &recordingNotifier{}

	h := newTestHunter(t, Options{
		Sources:     []source.Source{source.NewStatic("buzzwords", []string{"taken"})},
		Resolver:    &mapResolver{}, // everything registered
		Notifiers:   []Notifier{notifier},
		TLDs:        []string{".com", ".ai"},
		BatchSize:   200,
		Concurrency: 2,
	})

	summary, err := h.Run(context.Background())
	require.NoError(t, err)
	require.NotZero(t, summary.Checked)
	require.Equal(t, summary.Checked, summary.Registered)
	require.Zero(t, notifier.calls)
}

func TestHunter_Run_NotifierFailureDoesNotFailRun(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("smtp down")}
	healthy := &recordingNotifier{}
	resolver := &mapResolver{statuses: map[string]domain.Status{"grok.com": domain.StatusAvailable}}

	h := newTestHunter(t, Options{
		Sources:     []source.Source{source.NewStatic("buzzwords", []string{"grok"})},
		Resolver:    resolver,
		Notifiers:   []Notifier{failing, healthy},
		TLDs:        []string{".com"},
		BatchSize:   200,
		Concurrency: 1,
	})

	_, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, failing.calls)
	require.Equal(t, 1, healthy.calls)
}

func TestNew_Validation(t *testing.T) {
	valid := Options{
		Sources:     []source.Source{source.NewStatic("b", []string{"x"})},
		Resolver:    &mapResolver{},
		TLDs:        []string{".com"},
		Concurrency: 1,
	}

	_, err := New(valid)
	require.NoError(t, err)

	noSources := valid
	noSources.Sources = nil
	_, err = New(noSources)
	require.Error(t, err)

	noResolver := valid
	noResolver.Resolver = nil
	_, err = New(noResolver)
	require.Error(t, err)

	noTLDs := valid
	noTLDs.TLDs = nil
	_, err = New(noTLDs)
	require.Error(t, err)

	badConcurrency := valid
	badConcurrency.Concurrency = 0
	_, err = New(badConcurrency)
	require.Error(t, err)
}
