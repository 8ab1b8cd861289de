// Package domain holds the core value types shared across the hunter
// pipeline: availability statuses, check tasks and results, and the per-run
// summary. Everything here is immutable once produced.
package domain
