package memo

import "testing"

func TestLookUpBestMatchMiss(t *testing.T) {
	mt := NewTable()
	key := Key{ClauseID: 1, Start: 5}

	if m, ok := mt.LookUpBestMatch(key, false); ok || m != nil {
		t.Fatalf("expected miss, got %v, %v", m, ok)
	}
	positions := mt.NonMatchPositions(1)
	if len(positions) != 1 || positions[0] != 5 {
		t.Errorf("NonMatchPositions = %v, want [5]", positions)
	}
}

func TestLookUpBestMatchSynthesizesZeroWidth(t *testing.T) {
	mt := NewTable()
	key := Key{ClauseID: 2, Start: 3}

	m, ok := mt.LookUpBestMatch(key, true)
	if !ok {
		t.Fatal("canMatchZero lookup should always succeed")
	}
	if m.Len != 0 {
		t.Errorf("Len = %d, want 0", m.Len)
	}
	if _, stored := mt.Get(key); stored {
		t.Error("synthesized zero-width match must not be inserted into the table")
	}
}

func TestInsertBestMatchReplacesOnlyWhenBetter(t *testing.T) {
	mt := NewTable()
	key := Key{ClauseID: 1, Start: 0}

	short := &Match{Key: key, Len: 2}
	inserted, improved := mt.InsertBestMatch(short)
	if !inserted || improved {
		t.Fatalf("first insert: inserted=%v improved=%v, want true,false", inserted, improved)
	}

	worse := &Match{Key: key, Len: 1}
	inserted, improved = mt.InsertBestMatch(worse)
	if inserted || improved {
		t.Fatalf("worse match should not replace: inserted=%v improved=%v", inserted, improved)
	}

	longer := &Match{Key: key, Len: 5}
	inserted, improved = mt.InsertBestMatch(longer)
	if inserted || !improved {
		t.Fatalf("longer match should replace: inserted=%v improved=%v", inserted, improved)
	}

	got, ok := mt.Get(key)
	if !ok || got.Len != 5 {
		t.Errorf("Get = %+v, want Len 5", got)
	}
}

func TestBetterTieBreaksOnSubClauseIdx(t *testing.T) {
	a := &Match{Len: 3, FirstMatchingSubClauseIdx: 1}
	b := &Match{Len: 3, FirstMatchingSubClauseIdx: 0}
	if Better(a, b) {
		t.Error("lower sub-clause index should win an equal-length tie")
	}
	if !Better(b, a) {
		t.Error("b should be better than a")
	}
}

func TestCeilingAndFloorMatch(t *testing.T) {
	mt := NewTable()
	for _, pos := range []int{2, 5, 9} {
		mt.InsertBestMatch(&Match{Key: Key{ClauseID: 7, Start: pos}, Len: 1})
	}

	if m, ok := mt.CeilingMatch(7, 3); !ok || m.Key.Start != 5 {
		t.Errorf("CeilingMatch(3) = %+v, %v, want start 5", m, ok)
	}
	if m, ok := mt.CeilingMatch(7, 9); !ok || m.Key.Start != 9 {
		t.Errorf("CeilingMatch(9) exact = %+v, %v", m, ok)
	}
	if _, ok := mt.CeilingMatch(7, 10); ok {
		t.Error("CeilingMatch past the last entry should miss")
	}

	if m, ok := mt.FloorMatch(7, 6); !ok || m.Key.Start != 5 {
		t.Errorf("FloorMatch(6) = %+v, %v, want start 5", m, ok)
	}
	if _, ok := mt.FloorMatch(7, 1); ok {
		t.Error("FloorMatch before the first entry should miss")
	}
}

func TestGetNonOverlappingMatchesAdvancesPastZeroWidth(t *testing.T) {
	mt := NewTable()
	mt.InsertBestMatch(&Match{Key: Key{ClauseID: 3, Start: 0}, Len: 0})
	mt.InsertBestMatch(&Match{Key: Key{ClauseID: 3, Start: 1}, Len: 2})
	mt.InsertBestMatch(&Match{Key: Key{ClauseID: 3, Start: 3}, Len: 0})

	matches := mt.GetNonOverlappingMatches(3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 non-overlapping matches, got %d", len(matches))
	}
	starts := []int{matches[0].Key.Start, matches[1].Key.Start, matches[2].Key.Start}
	want := []int{0, 1, 3}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("starts = %v, want %v", starts, want)
		}
	}
}
