package postgres

import (
	"context"
	"fmt"

	"hunter/pkg/domain"
	"hunter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// Ensure PgSQL satisfies storage.RunStore.
var _ storage.RunStore = (*PgSQL)(nil)

const (
	runsTable       = "runs"
	runResultsTable = "run_results"
)

// StoreRun persists the run summary and the rows of every interesting group
// in a single transaction.
func (p *PgSQL) StoreRun(ctx context.Context, summary domain.Summary, groups []domain.Group) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin tx: %w", err)
	}
	builder := goqu.NewTx("postgres", tx)

	if err := p.storeRunTx(ctx, builder, summary, groups); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) storeRunTx(ctx context.Context, builder *goqu.TxDatabase, summary domain.Summary, groups []domain.Group) error {
	if _, err := builder.Insert(runsTable).
		Rows(summaryToPg(summary)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store run into pg: %w", err)
	}

	rows := groupsToPg(summary.RunID, groups)
	if len(rows) == 0 {
		return nil
	}

	if _, err := builder.Insert(runResultsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store run results into pg: %w", err)
	}

	return nil
}
