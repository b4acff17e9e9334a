package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Fatalf("cover produced %v", got)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 2, Start: 0, End: 100}

	if got := a.Cover(b); got != a {
		t.Fatalf("spans from different files must not merge, got %v", got)
	}
}
