package source

import "context"

// Static serves a fixed, configured list of names (buzzwords, manual
// additions). It never fails.
type Static struct {
	name  string
	names []string
}

// NewStatic constructs a Static source.
func NewStatic(name string, names []string) *Static {
	return &Static{name: name, names: names}
}

// Name identifies the source in logs.
func (s *Static) Name() string { return s.name }

// Fetch returns a copy of the configured list.
func (s *Static) Fetch(context.Context) ([]string, error) {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out, nil
}

// Ensure Static satisfies Source.
var _ Source = (*Static)(nil)
