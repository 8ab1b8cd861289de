package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies the registration state of a single domain name.
type Status string

const (
	// StatusAvailable indicates the registry reports the domain as not found.
	StatusAvailable Status = "AVAILABLE"
	// StatusRegistered indicates the domain carries an active registration or
	// delegated nameservers.
	StatusRegistered Status = "REGISTERED"
	// StatusPossibleAvailable indicates both lookup tiers stayed ambiguous;
	// the domain may be available but the result needs manual confirmation.
	StatusPossibleAvailable Status = "POSSIBLE_AVAILABLE"
)

// CheckTask pairs a base label with a TLD and the resulting domain name to
// query. Tasks are derived deterministically from a batch of labels and the
// configured TLD set.
type CheckTask struct {
	// Base is the candidate label the domain was generated from.
	Base string
	// TLD is the top-level domain, including the leading dot.
	TLD string
	// Domain is Base + TLD, the name actually checked.
	Domain string
}

// Tasks expands labels against the TLD set, label-major, preserving TLD
// iteration order within each label. One task per (label, TLD) pair.
func Tasks(labels []string, tlds []string) []CheckTask {
	tasks := make([]CheckTask, 0, len(labels)*len(tlds))
	for _, label := range labels {
		for _, tld := range tlds {
			tasks = append(tasks, CheckTask{
				Base:   label,
				TLD:    tld,
				Domain: label + tld,
			})
		}
	}

	return tasks
}

// CheckResult is the outcome of resolving a single domain.
type CheckResult struct {
	// Base is the candidate label the domain was generated from.
	Base string
	// Domain is the fully qualified name that was checked.
	Domain string
	// Status is the final three-way classification.
	Status Status
	// Elapsed is how long the two-tier resolution took, excluding the
	// post-check pacing delay.
	Elapsed time.Duration
}

// Group collects the results of every TLD checked for one base label.
type Group struct {
	// Base is the shared candidate label.
	Base string
	// Results holds one entry per checked TLD, in task order.
	Results []CheckResult
}

// Interesting reports whether at least one member of the group is not
// registered, i.e. worth reporting.
func (g Group) Interesting() bool {
	for _, result := range g.Results {
		if result.Status != StatusRegistered {
			return true
		}
	}

	return false
}

// Summary aggregates one run's results.
type Summary struct {
	// RunID uniquely identifies the run.
	RunID uuid.UUID
	// StartedAt is when the run began checking domains.
	StartedAt time.Time
	// Duration is the wall-clock time of the checking stage.
	Duration time.Duration

	// Checked is the total number of domains attempted.
	Checked int
	// Available counts AVAILABLE results.
	Available int
	// Possible counts POSSIBLE_AVAILABLE results.
	Possible int
	// Registered counts REGISTERED results.
	Registered int
	// InterestingBases counts base labels with at least one non-registered
	// member.
	InterestingBases int
}
