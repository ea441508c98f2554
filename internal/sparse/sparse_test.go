package sparse

import "testing"

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5)
	if s.Size() != 1 {
		t.Errorf("size should be 1, got %d", s.Size())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Size() != 4 {
		t.Errorf("size should be 4, got %d", s.Size())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSparseSet_Remove(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after remove")
	}
	if s.Size() != 2 {
		t.Errorf("size should be 2 after remove, got %d", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}
}

func TestSparseSet_RemoveMiddleElement(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(1)
	if s.Contains(1) {
		t.Error("1 should not be in set after removal")
	}
	if !s.Contains(2) || !s.Contains(3) {
		t.Error("2 and 3 should still be in set")
	}
	if s.Size() != 2 {
		t.Errorf("expected size 2, got %d", s.Size())
	}
}

func TestSparseSet_RemoveNonExistent(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	s.Remove(3)
	if s.Size() != 1 {
		t.Errorf("expected size 1, got %d", s.Size())
	}
}

func TestSparseSet_ClearPreservesCapacity(t *testing.T) {
	s := NewSparseSet(100)
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	s.Clear()
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	if s.Size() != 50 {
		t.Errorf("size should be 50, got %d", s.Size())
	}
}

func TestSparseSet_CrossValidation(t *testing.T) {
	// Garbage values left behind in sparse after Clear must not cause
	// false positives on later, unrelated inserts.
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not contain old values")
	}

	s.Insert(3)
	if !s.Contains(3) {
		t.Error("should contain 3")
	}
	if s.Contains(5) || s.Contains(10) {
		t.Error("should not contain old values")
	}
}

func TestSparseSet_ContainsOutOfBounds(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	if s.Contains(10) {
		t.Error("Contains(10) should be false for capacity 10")
	}
	if s.Contains(100) {
		t.Error("Contains(100) should be false for capacity 10")
	}
}

func TestSparseSet_Iter(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var collected []uint32
	s.Iter(func(v uint32) { collected = append(collected, v) })

	if len(collected) != 3 {
		t.Fatalf("expected 3 items, got %d", len(collected))
	}
	if collected[0] != 7 || collected[1] != 2 || collected[2] != 5 {
		t.Errorf("expected [7,2,5], got %v", collected)
	}
}

func TestSparseSet_IterEmpty(t *testing.T) {
	s := NewSparseSet(10)
	called := false
	s.Iter(func(uint32) { called = true })
	if called {
		t.Error("Iter should not call function on empty set")
	}
}

func BenchmarkSparseSet_Insert(b *testing.B) {
	s := NewSparseSet(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for j := uint32(0); j < 100; j++ {
			s.Insert(j)
		}
	}
}

func BenchmarkSparseSet_Contains(b *testing.B) {
	s := NewSparseSet(1000)
	for j := uint32(0); j < 100; j++ {
		s.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < 100; j++ {
			s.Contains(j)
		}
	}
}
