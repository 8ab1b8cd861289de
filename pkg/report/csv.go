package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"hunter/pkg/domain"
)

// CSVWriter persists the interesting groups of a run as a CSV file with the
// columns base, domain and status. The file is written only when the run is
// delivered to the writer, so a run with nothing interesting leaves no file
// behind.
type CSVWriter struct {
	path string
}

// NewCSVWriter constructs a CSVWriter targeting path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Name identifies the notifier in logs.
func (w *CSVWriter) Name() string { return "csv" }

// Notify writes one row per checked domain of every group, in group order.
func (w *CSVWriter) Notify(_ context.Context, _ domain.Summary, groups []domain.Group) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create csv file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cw := csv.NewWriter(file)
	if err := cw.Write([]string{"base", "domain", "status"}); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}
	for _, group := range groups {
		for _, result := range group.Results {
			if err := cw.Write([]string{group.Base, result.Domain, string(result.Status)}); err != nil {
				return fmt.Errorf("could not write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}
