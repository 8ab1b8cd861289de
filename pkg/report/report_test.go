package report_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hunter/pkg/domain"
	"hunter/pkg/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func fixture() (domain.Summary, []domain.Group) {
	summary := domain.Summary{
		RunID:            uuid.MustParse("3f1c7a52-0000-4000-8000-000000000001"),
		StartedAt:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Duration:         90 * time.Second,
		Checked:          8,
		Available:        1,
		Possible:         1,
		Registered:       6,
		InterestingBases: 2,
	}
	groups := []domain.Group{
		{
			Base: "openai",
			Results: []domain.CheckResult{
				{Base: "openai", Domain: "openai.com", Status: domain.StatusRegistered},
				{Base: "openai", Domain: "openai.app", Status: domain.StatusAvailable},
				{Base: "openai", Domain: "openai.so", Status: domain.StatusPossibleAvailable},
			},
		},
		{
			Base: "grok",
			Results: []domain.CheckResult{
				{Base: "grok", Domain: "grok.ai", Status: domain.StatusAvailable},
			},
		},
	}

	return summary, groups
}

func TestCSVWriter_Notify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	summary, groups := fixture()

	require.NoError(t, report.NewCSVWriter(path).Notify(context.Background(), summary, groups))

	file, err := os.Open(path)
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
		{"openai", "openai.so", "POSSIBLE_AVAILABLE"},
		{"grok", "grok.ai", "AVAILABLE"},
	}, rows)
}

func TestBuildBody(t *testing.T) {
	summary, groups := fixture()

	body := report.BuildBody(summary, groups, 0)
	require.Contains(t, body, "Checked 8 domains")
	require.Contains(t, body, "2 interesting base names")
	require.Contains(t, body, "openai.app")
	require.Contains(t, body, "grok.ai")
}

func TestBuildBody_CapsGroups(t *testing.T) {
	summary, groups := fixture()

	body := report.BuildBody(summary, groups, 1)
	require.Contains(t, body, "openai.app")
	require.NotContains(t, body, "grok.ai")
	require.Contains(t, body, "and 1 more base names")
}

func TestBuildBody_NothingInteresting(t *testing.T) {
	summary, _ := fixture()

	body := report.BuildBody(summary, nil, 0)
	require.Contains(t, body, "Nothing interesting")
}

func TestWebhook_Notify(t *testing.T) {
	var got struct {
		Text string `json:"text"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	summary, groups := fixture()
	hook := report.NewWebhook(srv.Client(), srv.URL, 0)

	require.NoError(t, hook.Notify(context.Background(), summary, groups))
	require.Contains(t, got.Text, "openai.app")
}

func TestWebhook_Notify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	summary, groups := fixture()
	hook := report.NewWebhook(srv.Client(), srv.URL, 0)

	require.Error(t, hook.Notify(context.Background(), summary, groups))
}

func TestEmailer_Name(t *testing.T) {
	mailer := report.NewEmailer(report.EmailOptions{Host: "smtp.example.com", Port: 465})
	require.Equal(t, "email", mailer.Name())
}

func TestBuildBody_RunID(t *testing.T) {
	summary, groups := fixture()

	body := report.BuildBody(summary, groups, 0)
	require.True(t, strings.HasPrefix(body, "Domain hunt "+summary.RunID.String()))
}
