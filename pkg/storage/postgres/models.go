package postgres

import (
	"time"

	"github.com/google/uuid"

	"hunter/pkg/domain"
)

// PgRun is the database representation of one run's summary.
type PgRun struct {
	ID               uuid.UUID `db:"id"`
	StartedAt        time.Time `db:"started_at"`
	DurationMs       int64     `db:"duration_ms"`
	Checked          int       `db:"checked"`
	Available        int       `db:"available"`
	Possible         int       `db:"possible"`
	Registered       int       `db:"registered"`
	InterestingBases int       `db:"interesting_bases"`
}

// PgRunResult is the database representation of one checked domain inside an
// interesting group.
type PgRunResult struct {
	RunID     uuid.UUID `db:"run_id"`
	Base      string    `db:"base"`
	Domain    string    `db:"domain"`
	Status    string    `db:"status"`
	ElapsedMs int64     `db:"elapsed_ms"`
}

func summaryToPg(summary domain.Summary) PgRun {
	return PgRun{
		ID:               summary.RunID,
		StartedAt:        summary.StartedAt,
		DurationMs:       summary.Duration.Milliseconds(),
		Checked:          summary.Checked,
		Available:        summary.Available,
		Possible:         summary.Possible,
		Registered:       summary.Registered,
		InterestingBases: summary.InterestingBases,
	}
}

func groupsToPg(runID uuid.UUID, groups []domain.Group) []PgRunResult {
	var rows []PgRunResult
	for _, group := range groups {
		for _, result := range group.Results {
			rows = append(rows, PgRunResult{
				RunID:     runID,
				Base:      group.Base,
				Domain:    result.Domain,
				Status:    string(result.Status),
				ElapsedMs: result.Elapsed.Milliseconds(),
			})
		}
	}

	return rows
}
