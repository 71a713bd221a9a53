package model

const PointDiffHistoryCapacity = 100

type PointDiffEntry struct {
	TimeSeconds float64 `json:"timeSeconds"`
	Diff        int     `json:"diff"`
}

// PointDiffHistory is a fixed-capacity ring buffer of score differential
// changes, kept as an auditable trail. The oldest entry is evicted first.
type PointDiffHistory struct {
	entries [PointDiffHistoryCapacity]PointDiffEntry
	head    int
	size    int
}

// Record appends an entry only when the differential actually changed.
// Returns true when an entry was written.
func (h *PointDiffHistory) Record(timeSeconds float64, diff int) bool {
	if last, ok := h.Last(); ok && last.Diff == diff {
		return false
	}

	index := (h.head + h.size) % PointDiffHistoryCapacity
	h.entries[index] = PointDiffEntry{TimeSeconds: timeSeconds, Diff: diff}

	if h.size < PointDiffHistoryCapacity {
		h.size++
	} else {
		h.head = (h.head + 1) % PointDiffHistoryCapacity
	}

	return true
}

func (h *PointDiffHistory) Len() int {
	return h.size
}

func (h *PointDiffHistory) Last() (PointDiffEntry, bool) {
	if h.size == 0 {
		return PointDiffEntry{}, false
	}

	index := (h.head + h.size - 1) % PointDiffHistoryCapacity

	return h.entries[index], true
}

// Items returns the history oldest first.
func (h *PointDiffHistory) Items() []PointDiffEntry {
	items := make([]PointDiffEntry, 0, h.size)

	for i := 0; i < h.size; i++ {
		items = append(items, h.entries[(h.head+i)%PointDiffHistoryCapacity])
	}

	return items
}

func (h *PointDiffHistory) Reset() {
	h.head = 0
	h.size = 0
}
