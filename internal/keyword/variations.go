package keyword

import "sort"

// DefaultAffixes are the prefix/suffix fragments used to expand a base label
// when no affix set is configured.
var DefaultAffixes = []string{"ai", "labs", "cloud", "tech"} //nolint: gochecknoglobals

// Variations expands a valid base label into the label itself plus
// base+affix and affix+base for every affix. Combinations longer than
// MaxLabelLen are dropped rather than truncated; an over-length concatenation
// is unlikely to be a useful domain label. The result is deduplicated and
// sorted so it is stable across runs.
func Variations(base string, affixes []string) []string {
	if !IsValid(base) {
		return nil
	}

	set := map[string]struct{}{base: {}}
	for _, affix := range affixes {
		if suffixed := base + affix; len(suffixed) <= MaxLabelLen {
			set[suffixed] = struct{}{}
		}
		if prefixed := affix + base; len(prefixed) <= MaxLabelLen {
			set[prefixed] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
