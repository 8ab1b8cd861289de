// Package source defines the collaborator interface for external collections
// of raw company and project names, plus shared fetch plumbing.
package source

import "context"

// Source is a single external collection of raw names. Implementations must
// be safe for concurrent use; a failing Fetch degrades the run rather than
// aborting it, so errors should describe the cause and nothing more.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Fetch returns the raw, unnormalized name strings the source currently
	// lists. The returned order carries no meaning.
	Fetch(ctx context.Context) ([]string, error)
}
