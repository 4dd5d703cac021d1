package sorting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/registry"
)

var allIDs = []string{IDBubble, IDInsertion, IDMerge}

func isSortedDir(data []int, ascending bool) bool {
	for i := 1; i < len(data); i++ {
		if ascending && data[i-1] > data[i] {
			return false
		}
		if !ascending && data[i-1] < data[i] {
			return false
		}
	}
	return true
}

func randomData(rng *rand.Rand, n, lo, hi int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = lo + rng.Intn(hi-lo+1)
	}
	return data
}

func TestRegistered(t *testing.T) {
	list := registry.List()
	if len(list) != len(allIDs) {
		t.Fatalf("expected %d registered algorithms, got %d", len(allIDs), len(list))
	}
	for i, id := range allIDs {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
	}
}

func TestScenarioBubble(t *testing.T) {
	tests := []struct {
		name      string
		ascending bool
		expected  []int
	}{
		{"ascending", true, []int{1, 2, 3, 4, 5}},
		{"descending", false, []int{5, 4, 3, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := []int{5, 3, 4, 1, 2}
			core.RunToCompletion(NewBubble(data, tc.ascending))
			if !slices.Equal(data, tc.expected) {
				t.Errorf("bubble sort result = %v, expected %v", data, tc.expected)
			}
		})
	}
}

func TestAllAlgorithmsSortRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, id := range allIDs {
		for _, ascending := range []bool{true, false} {
			for trial := 0; trial < 20; trial++ {
				n := rng.Intn(60)
				data := randomData(rng, n, -50, 50)

				want := slices.Clone(data)
				slices.Sort(want)
				if !ascending {
					slices.Reverse(want)
				}

				s, err := registry.Create(id, data, ascending)
				if err != nil {
					t.Fatalf("Create(%s) failed: %v", id, err)
				}
				core.RunToCompletion(s)

				if !slices.Equal(data, want) {
					t.Fatalf("%s ascending=%v: got %v, expected %v", id, ascending, data, want)
				}
			}
		}
	}
}

func TestLengthAndMultisetInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, id := range allIDs {
		t.Run(id, func(t *testing.T) {
			data := randomData(rng, 40, 0, 10)
			want := slices.Clone(data)
			slices.Sort(want)

			s, err := registry.Create(id, data, true)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			for s.Step() {
				if len(data) != 40 {
					t.Fatalf("length changed to %d mid-sort", len(data))
				}
				got := slices.Clone(data)
				slices.Sort(got)
				if !slices.Equal(got, want) {
					t.Fatalf("multiset changed mid-sort: %v", data)
				}
			}
		})
	}
}

func TestStepAfterDone(t *testing.T) {
	for _, id := range allIDs {
		t.Run(id, func(t *testing.T) {
			s, _ := registry.Create(id, []int{3, 1, 2}, true)
			core.RunToCompletion(s)

			if !s.Done() {
				t.Error("Done() should be true after completion")
			}
			if s.Step() {
				t.Error("Step() after completion should return false")
			}
			if len(s.Marks()) != 0 {
				t.Errorf("Marks() should be empty after completion, got %v", s.Marks())
			}
		})
	}
}

func TestTrivialInputs(t *testing.T) {
	inputs := [][]int{nil, {}, {7}, {1, 1, 1}}

	for _, id := range allIDs {
		for _, in := range inputs {
			data := slices.Clone(in)
			s, _ := registry.Create(id, data, true)
			if id != IDMerge && s.Step() {
				t.Errorf("%s on %v: expected no steps", id, in)
			}
			core.RunToCompletion(s)
			if !slices.Equal(data, in) {
				t.Errorf("%s changed %v into %v", id, in, data)
			}
		}
	}
}

func TestAlreadySortedNeedsNoSwaps(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	for _, id := range []string{IDBubble, IDInsertion} {
		s, _ := registry.Create(id, data, true)
		if steps := core.RunToCompletion(s); steps != 0 {
			t.Errorf("%s took %d steps on sorted input, expected 0", id, steps)
		}
		if s.Stats().Comparisons == 0 {
			t.Errorf("%s should still count comparisons", id)
		}
	}
}

func TestBubbleMarks(t *testing.T) {
	data := []int{2, 1, 3}
	b := NewBubble(data, true)

	if !b.Step() {
		t.Fatal("expected a swap")
	}
	marks := b.Marks()
	if len(marks) != 2 {
		t.Fatalf("expected 2 marks, got %v", marks)
	}
	if marks[0] != (core.Mark{Index: 0, Role: core.RolePrimary}) {
		t.Errorf("first mark = %+v", marks[0])
	}
	if marks[1] != (core.Mark{Index: 1, Role: core.RoleSecondary}) {
		t.Errorf("second mark = %+v", marks[1])
	}
}

func TestInsertionStepCount(t *testing.T) {
	// Number of shifts equals number of inversions.
	data := []int{4, 3, 2, 1}
	s := NewInsertion(data, true)

	if steps := core.RunToCompletion(s); steps != 6 {
		t.Errorf("insertion sort took %d steps, expected 6", steps)
	}
	if s.Stats().Steps != 6 {
		t.Errorf("Stats().Steps = %d, expected 6", s.Stats().Steps)
	}
}

func TestInsertionMarksStayInRange(t *testing.T) {
	data := []int{2, 1}
	s := NewInsertion(data, true)

	s.Step()
	for _, m := range s.Marks() {
		if m.Index < 0 || m.Index >= len(data) {
			t.Errorf("mark out of range: %+v", m)
		}
	}
}

func TestMergeFirstStepWrites(t *testing.T) {
	data := []int{4, 3, 2, 1}
	m := NewMerge(data, true)

	// The recursive descent costs nothing; the first step is already a write
	// of the first two-element merge.
	if !m.Step() {
		t.Fatal("expected a merge write")
	}
	if data[0] != 3 {
		t.Errorf("first write should place 3 at index 0, got %v", data)
	}
	marks := m.Marks()
	if len(marks) != 1 || marks[0].Index != 0 {
		t.Errorf("expected a single mark at index 0, got %v", marks)
	}
}

func TestMergeStepsPerWrite(t *testing.T) {
	// Eight elements: three levels of merges, eight writes each.
	data := []int{8, 7, 6, 5, 4, 3, 2, 1}
	m := NewMerge(data, true)

	if steps := core.RunToCompletion(m); steps != 24 {
		t.Errorf("merge sort took %d steps, expected 24", steps)
	}
}

func TestMergeDescendingWithTies(t *testing.T) {
	data := []int{2, 2, 1, 1, 3}
	m := NewMerge(data, false)
	core.RunToCompletion(m)

	if !isSortedDir(data, false) {
		t.Errorf("descending merge result not sorted: %v", data)
	}
}
