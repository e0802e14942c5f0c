package blocks

import (
	"sort"

	"github.com/sjcet-apps/billboard-core/internal/models"
)

// PositionAssignment records a position write produced by a renumber pass.
type PositionAssignment struct {
	ID       string
	Position int
}

// Less orders blocks for display: position ascending, blocks without a
// position last, ties broken by ID so the order is deterministic.
func Less(a, b *models.BlockModel) bool {
	switch {
	case a.Position == nil && b.Position == nil:
		return a.ID < b.ID
	case a.Position == nil:
		return false
	case b.Position == nil:
		return true
	case *a.Position != *b.Position:
		return *a.Position < *b.Position
	default:
		return a.ID < b.ID
	}
}

// Sort sorts blocks in display order, in place.
func Sort(items []models.BlockModel) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(&items[i], &items[j])
	})
}

// NextPosition returns the position for a newly created block:
// max(existing)+1, or 0 for the first block.
func NextPosition(items []models.BlockModel) int {
	next := 0
	for i := range items {
		if p := items[i].Position; p != nil && *p+1 > next {
			next = *p + 1
		}
	}
	return next
}

// Renumber produces the writes needed to make positions dense (0..n-1) in
// the current display order. Blocks already holding their slot are skipped.
func Renumber(items []models.BlockModel) []PositionAssignment {
	Sort(items)
	var out []PositionAssignment
	for i := range items {
		if items[i].Position == nil || *items[i].Position != i {
			out = append(out, PositionAssignment{ID: items[i].ID, Position: i})
		}
	}
	return out
}

// NeedsRepair reports whether any block lacks a position or positions are
// not dense from zero.
func NeedsRepair(items []models.BlockModel) bool {
	sorted := make([]models.BlockModel, len(items))
	copy(sorted, items)
	Sort(sorted)
	for i := range sorted {
		if sorted[i].Position == nil || *sorted[i].Position != i {
			return true
		}
	}
	return false
}

// Move reorders ids so that activeID lands at overID's index, shifting the
// blocks in between (the drag-and-drop contract). Returns false when either
// id is missing or the move is a no-op.
func Move(ids []string, activeID, overID string) ([]string, bool) {
	from, to := -1, -1
	for i, id := range ids {
		if id == activeID {
			from = i
		}
		if id == overID {
			to = i
		}
	}
	if from < 0 || to < 0 || from == to {
		return ids, false
	}

	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	out = append(out[:to], append([]string{activeID}, out[to:]...)...)
	return out, true
}
