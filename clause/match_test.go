package clause

import (
	"testing"

	"github.com/coregx/pika/memo"
)

// assignIDs gives each clause in post-order a distinct ID, mimicking what
// compile.Compile's reachability pass does, so Match's memo.Key lookups are
// meaningful in isolation from the compile package.
func assignIDs(cs ...*Clause) {
	for i, c := range cs {
		c.ID = uint32(i)
	}
}

func TestTerminalMatch(t *testing.T) {
	tests := []struct {
		name    string
		c       *Clause
		input   string
		start   int
		wantLen int
		wantOK  bool
	}{
		{"literal match", Lit("abc"), "abcdef", 0, 3, true},
		{"literal mismatch", Lit("abc"), "xbcdef", 0, 0, false},
		{"literal past end", Lit("abc"), "ab", 0, 0, false},
		{"anychar ok", AnyChar(), "x", 0, 1, true},
		{"anychar at end", AnyChar(), "", 0, 0, false},
		{"nothing always matches", Nothing(), "", 0, 0, true},
		{"charset match", CharSet(false, ByteRange{Lo: 'a', Hi: 'z'}), "m", 0, 1, true},
		{"charset no match", CharSet(false, ByteRange{Lo: 'a', Hi: 'z'}), "M", 0, 0, false},
		{"negated charset", CharSet(true, ByteRange{Lo: 'a', Hi: 'z'}), "M", 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignIDs(tt.c)
			mt := memo.NewTable()
			m, ok := tt.c.Match(mt, tt.start, []byte(tt.input))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && m.Len != tt.wantLen {
				t.Errorf("Len = %d, want %d", m.Len, tt.wantLen)
			}
		})
	}
}

func TestSeqMatch(t *testing.T) {
	a, b := Lit("foo"), Lit("bar")
	seq := SeqOf(a, b)
	assignIDs(a, b, seq)

	mt := memo.NewTable()
	input := []byte("foobarbaz")

	if _, ok := mt.LookUpBestMatch(a.key(0), a.CanMatchZeroChars); ok {
		t.Fatal("a should not be memoized yet")
	}
	ma, ok := a.Match(mt, 0, input)
	if !ok {
		t.Fatal("a should match at 0")
	}
	mt.InsertBestMatch(ma)

	mb, ok := b.Match(mt, 3, input)
	if !ok {
		t.Fatal("b should match at 3")
	}
	mt.InsertBestMatch(mb)

	m, ok := seq.Match(mt, 0, input)
	if !ok {
		t.Fatal("seq should match")
	}
	if m.Len != 6 {
		t.Errorf("seq Len = %d, want 6", m.Len)
	}
}

func TestFirstPicksEarliestAlternative(t *testing.T) {
	a, b := Lit("a"), Lit("ab")
	first := FirstOf(a, b)
	assignIDs(a, b, first)

	mt := memo.NewTable()
	input := []byte("ab")
	ma, _ := a.Match(mt, 0, input)
	mt.InsertBestMatch(ma)
	mb, _ := b.Match(mt, 0, input)
	mt.InsertBestMatch(mb)

	m, ok := first.Match(mt, 0, input)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Len != 1 {
		t.Errorf("First should take the earlier alternative's match (len 1), got %d", m.Len)
	}
	if m.FirstMatchingSubClauseIdx != 0 {
		t.Errorf("FirstMatchingSubClauseIdx = %d, want 0", m.FirstMatchingSubClauseIdx)
	}
}

func TestLongestPicksLongestAlternative(t *testing.T) {
	a, b := Lit("a"), Lit("ab")
	longest := LongestOf(a, b)
	assignIDs(a, b, longest)

	mt := memo.NewTable()
	input := []byte("ab")
	ma, _ := a.Match(mt, 0, input)
	mt.InsertBestMatch(ma)
	mb, _ := b.Match(mt, 0, input)
	mt.InsertBestMatch(mb)

	m, ok := longest.Match(mt, 0, input)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Len != 2 {
		t.Errorf("Longest should prefer len 2, got %d", m.Len)
	}
}

func TestOptionalNeverFails(t *testing.T) {
	child := Lit("x")
	opt := OptionalOf(child)
	assignIDs(child, opt)

	mt := memo.NewTable()
	m, ok := opt.Match(mt, 0, []byte("y"))
	if !ok {
		t.Fatal("Optional must never fail")
	}
	if m.Len != 0 {
		t.Errorf("Len = %d, want 0", m.Len)
	}
}

func TestNotFollowedBy(t *testing.T) {
	child := Lit("x")
	nfb := NotFollowedByOf(child)
	assignIDs(child, nfb)

	mt := memo.NewTable()
	if cm, ok := child.Match(mt, 0, []byte("x")); ok {
		mt.InsertBestMatch(cm)
	}
	if _, ok := nfb.Match(mt, 0, []byte("x")); ok {
		t.Error("NotFollowedBy should fail when child matches")
	}
	if m, ok := nfb.Match(memo.NewTable(), 0, []byte("y")); !ok || m.Len != 0 {
		t.Error("NotFollowedBy should zero-width succeed when child fails")
	}
}
