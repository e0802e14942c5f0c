package blocks

import (
	"testing"

	"github.com/sjcet-apps/billboard-core/internal/models"
)

func intp(v int) *int { return &v }

func block(id string, pos *int) models.BlockModel {
	b := models.BlockModel{Type: models.BlockText, Position: pos}
	b.ID = id
	return b
}

func orderOf(items []models.BlockModel) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func sameOrder(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortPositionAscending(t *testing.T) {
	items := []models.BlockModel{
		block("c", intp(2)),
		block("a", intp(0)),
		block("b", intp(1)),
	}
	Sort(items)
	if got := orderOf(items); !sameOrder(got, "a", "b", "c") {
		t.Errorf("Sort order = %v, want [a b c]", got)
	}
}

func TestSortNilPositionsLast(t *testing.T) {
	items := []models.BlockModel{
		block("legacy-b", nil),
		block("a", intp(0)),
		block("legacy-a", nil),
		block("b", intp(1)),
	}
	Sort(items)
	// Positioned blocks first, then nil positions ordered by id.
	if got := orderOf(items); !sameOrder(got, "a", "b", "legacy-a", "legacy-b") {
		t.Errorf("Sort order = %v, want [a b legacy-a legacy-b]", got)
	}
}

func TestSortTieBreaksOnID(t *testing.T) {
	items := []models.BlockModel{
		block("z", intp(3)),
		block("m", intp(3)),
		block("a", intp(3)),
	}
	Sort(items)
	if got := orderOf(items); !sameOrder(got, "a", "m", "z") {
		t.Errorf("Sort order = %v, want [a m z]", got)
	}
}

func TestNextPosition(t *testing.T) {
	if got := NextPosition(nil); got != 0 {
		t.Errorf("NextPosition(empty) = %d, want 0", got)
	}

	items := []models.BlockModel{
		block("a", intp(0)),
		block("b", intp(4)), // sparse on purpose
		block("c", nil),
	}
	if got := NextPosition(items); got != 5 {
		t.Errorf("NextPosition = %d, want 5", got)
	}
}

func TestRenumberMakesPositionsDense(t *testing.T) {
	items := []models.BlockModel{
		block("a", intp(0)),
		block("b", intp(2)),
		block("c", intp(5)),
		block("d", nil),
	}
	assignments := Renumber(items)

	got := map[string]int{}
	for _, a := range assignments {
		got[a.ID] = a.Position
	}
	// "a" already holds slot 0 and is skipped.
	if _, ok := got["a"]; ok {
		t.Error("Renumber rewrote a block already in its slot")
	}
	if got["b"] != 1 || got["c"] != 2 || got["d"] != 3 {
		t.Errorf("Renumber assignments = %v, want b=1 c=2 d=3", got)
	}
}

func TestNeedsRepair(t *testing.T) {
	dense := []models.BlockModel{
		block("a", intp(0)),
		block("b", intp(1)),
	}
	if NeedsRepair(dense) {
		t.Error("NeedsRepair(dense) = true, want false")
	}

	sparse := []models.BlockModel{
		block("a", intp(0)),
		block("b", intp(2)),
	}
	if !NeedsRepair(sparse) {
		t.Error("NeedsRepair(sparse) = false, want true")
	}

	missing := []models.BlockModel{
		block("a", intp(0)),
		block("b", nil),
	}
	if !NeedsRepair(missing) {
		t.Error("NeedsRepair(nil position) = false, want true")
	}
}

// Deleting the middle block of [0 1 2] must leave the survivors at [0 1].
func TestRenumberAfterDelete(t *testing.T) {
	survivors := []models.BlockModel{
		block("a", intp(0)),
		block("c", intp(2)),
	}
	assignments := Renumber(survivors)
	if len(assignments) != 1 {
		t.Fatalf("Renumber produced %d writes, want 1", len(assignments))
	}
	if assignments[0].ID != "c" || assignments[0].Position != 1 {
		t.Errorf("assignment = %+v, want c->1", assignments[0])
	}
}

func TestMove(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	moved, ok := Move(ids, "a", "c")
	if !ok || !sameOrder(moved, "b", "c", "a", "d") {
		t.Errorf("Move(a over c) = %v ok=%v, want [b c a d]", moved, ok)
	}

	moved, ok = Move(ids, "d", "a")
	if !ok || !sameOrder(moved, "d", "a", "b", "c") {
		t.Errorf("Move(d over a) = %v ok=%v, want [d a b c]", moved, ok)
	}

	if _, ok := Move(ids, "a", "a"); ok {
		t.Error("Move onto itself reported ok")
	}
	if _, ok := Move(ids, "missing", "a"); ok {
		t.Error("Move with unknown active id reported ok")
	}
}
