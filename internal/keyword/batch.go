package keyword

import "time"

// Batch is one contiguous slice of the universe, selected by day-of-month
// rotation. The final batch of a cycle may be shorter than the batch size.
type Batch struct {
	// Index is the zero-based rotation index of this batch.
	Index int
	// Total is the number of batches the universe splits into.
	Total int
	// Start and End are the universe offsets of the slice, half-open.
	Start int
	End   int
	// Labels is the selected slice of the universe.
	Labels []string
}

// Empty reports whether the batch selects no labels.
func (b Batch) Empty() bool { return len(b.Labels) == 0 }

// SelectBatch partitions the universe into fixed-size batches and picks the
// one for now's day of month: index = (day-1) mod totalBatches. There is no
// persisted cursor; rotation is purely a function of the universe's sort
// order and the calendar day, so a changed universe shifts batch boundaries
// on subsequent days. An empty universe yields an empty batch.
func SelectBatch(universe []string, size int, now time.Time) Batch {
	if len(universe) == 0 {
		return Batch{Total: 0}
	}
	if size < 1 {
		size = 1
	}

	total := (len(universe) + size - 1) / size
	index := (now.Day() - 1) % total

	start := index * size
	end := start + size
	if end > len(universe) {
		end = len(universe)
	}

	return Batch{
		Index:  index,
		Total:  total,
		Start:  start,
		End:    end,
		Labels: universe[start:end],
	}
}
