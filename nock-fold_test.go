package nock

import (
	"math/big"
	"testing"
)

func TestHash(t *testing.T) {
	shared := N(1, 2)
	same := []struct{ a, b Noun }{
		{N(1, 2, 3), N(1, 2, 3)},
		{N(1, 2, 3), N(1, N(2, 3))},
		{AtomFromDigits([]byte{5}), AtomFromDigits([]byte{5, 0, 0})},
		{Cell(shared, shared), N(N(1, 2), N(1, 2))},
	}
	for _, tt := range same {
		if Hash(tt.a) != Hash(tt.b) {
			t.Errorf("Hash(%s) != Hash(%s)", tt.a, tt.b)
		}
	}
	differ := []struct{ a, b Noun }{
		{N(N(1, 2), 3), N(1, 2, 3)},
		{N(1, 2, 3), N(1, 2)},
		{N(1, 2), N(2, 1)},
		{N(0), N(0, 0)},
	}
	for _, tt := range differ {
		if Hash(tt.a) == Hash(tt.b) {
			t.Errorf("Hash(%s) == Hash(%s)", tt.a, tt.b)
		}
	}
}

func TestFoldVisitsSharedNodesOnce(t *testing.T) {
	shared := N(1, 2)
	n := Cell(shared, Cell(shared, shared))
	var atoms, cells int
	Fold(n,
		func([]byte) struct{} { atoms++; return struct{}{} },
		func(struct{}, struct{}) struct{} { cells++; return struct{}{} },
	)
	if atoms != 2 || cells != 3 {
		t.Fatalf("visited %d atoms, %d cells; want 2, 3", atoms, cells)
	}

	// fresh memo per call
	atoms, cells = 0, 0
	Fold(n,
		func([]byte) struct{} { atoms++; return struct{}{} },
		func(struct{}, struct{}) struct{} { cells++; return struct{}{} },
	)
	if atoms != 2 || cells != 3 {
		t.Fatalf("second fold visited %d atoms, %d cells; want 2, 3", atoms, cells)
	}
}

func TestLeafCountOfDeeplySharedNoun(t *testing.T) {
	n := N(7)
	for i := 0; i < 200; i++ {
		n = Cell(n, n)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 200)
	if got := LeafCount(n); got.Cmp(want) != 0 {
		t.Fatalf("LeafCount = %s, want %s", got, want)
	}
	if got := LeafCount(N(1, 2, 3)); got.Int64() != 3 {
		t.Fatalf("LeafCount([1 2 3]) = %s", got)
	}
}
