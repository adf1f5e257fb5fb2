package gotreesitter

import "testing"

func TestLengthArithmetic(t *testing.T) {
	a := Length{Bytes: 10, Extent: Point{Row: 1, Column: 4}}
	b := Length{Bytes: 5, Extent: Point{Column: 5}}
	if got, want := lengthAdd(a, b), (Length{Bytes: 15, Extent: Point{Row: 1, Column: 9}}); got != want {
		t.Errorf("lengthAdd same row = %+v, want %+v", got, want)
	}
	c := Length{Bytes: 7, Extent: Point{Row: 2, Column: 3}}
	if got, want := lengthAdd(a, c), (Length{Bytes: 17, Extent: Point{Row: 3, Column: 3}}); got != want {
		t.Errorf("lengthAdd across rows = %+v, want %+v", got, want)
	}
	if got := lengthSub(lengthAdd(a, c), a); got != c {
		t.Errorf("lengthSub = %+v, want %+v", got, c)
	}
	if got := lengthSub(a, a); got != (Length{}) {
		t.Errorf("lengthSub of equal lengths = %+v", got)
	}
}

func TestMapBoundary(t *testing.T) {
	// "abc\ndef" with "c\nd" at bytes [2,5) replaced by "XYZ\n".
	e := InputEdit{
		StartByte: 2, OldEndByte: 5, NewEndByte: 6,
		StartPoint:  Point{Column: 2},
		OldEndPoint: Point{Row: 1, Column: 1},
		NewEndPoint: Point{Row: 1, Column: 0},
	}
	tests := []struct {
		name string
		in   Length
		want Length
	}{
		{"before", Length{Bytes: 1, Extent: Point{Column: 1}}, Length{Bytes: 1, Extent: Point{Column: 1}}},
		{"at start", Length{Bytes: 2, Extent: Point{Column: 2}}, Length{Bytes: 2, Extent: Point{Column: 2}}},
		{"inside", Length{Bytes: 3, Extent: Point{Column: 3}}, Length{Bytes: 6, Extent: Point{Row: 1}}},
		{"at old end", Length{Bytes: 5, Extent: Point{Row: 1, Column: 1}}, Length{Bytes: 6, Extent: Point{Row: 1}}},
		{"after on same row", Length{Bytes: 7, Extent: Point{Row: 1, Column: 3}}, Length{Bytes: 8, Extent: Point{Row: 1, Column: 2}}},
		{"later row", Length{Bytes: 9, Extent: Point{Row: 2, Column: 1}}, Length{Bytes: 10, Extent: Point{Row: 2, Column: 1}}},
	}
	for _, tt := range tests {
		if got := mapBoundary(tt.in, e); got != tt.want {
			t.Errorf("%s: mapBoundary(%+v) = %+v, want %+v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestMapBoundaryInsertion(t *testing.T) {
	e := InputEdit{StartByte: 4, OldEndByte: 4, NewEndByte: 6,
		StartPoint: Point{Column: 4}, OldEndPoint: Point{Column: 4}, NewEndPoint: Point{Column: 6}}
	// A boundary at the insertion point moves past the new text, so the
	// text joins the node that ends there.
	if got, want := mapBoundary(Length{Bytes: 4, Extent: Point{Column: 4}}, e), (Length{Bytes: 6, Extent: Point{Column: 6}}); got != want {
		t.Errorf("boundary at insertion = %+v, want %+v", got, want)
	}
}

func TestAffectedBy(t *testing.T) {
	replace := InputEdit{StartByte: 10, OldEndByte: 12, NewEndByte: 15}
	insert := InputEdit{StartByte: 10, OldEndByte: 10, NewEndByte: 13}
	tests := []struct {
		name             string
		start, end, look uint32
		edit             InputEdit
		want             bool
	}{
		{"before", 0, 5, 0, replace, false},
		{"before with lookahead into edit", 0, 9, 2, replace, true},
		{"ends at start", 0, 10, 0, replace, false},
		{"overlaps", 8, 11, 0, replace, true},
		{"after", 12, 20, 0, replace, false},
		{"insert at end of node", 5, 10, 0, insert, true},
		{"insert at start of node", 10, 14, 0, insert, false},
		{"insert inside", 8, 14, 0, insert, true},
		{"insert after lookahead", 0, 8, 1, insert, false},
		{"insert at document start", 0, 3, 0, InputEdit{NewEndByte: 1}, true},
	}
	for _, tt := range tests {
		if got := affectedBy(tt.start, tt.end, tt.look, tt.edit); got != tt.want {
			t.Errorf("%s: affectedBy = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestEditValidate(t *testing.T) {
	ok := InputEdit{StartByte: 1, OldEndByte: 3, NewEndByte: 2, OldEndPoint: Point{Column: 3}, NewEndPoint: Point{Column: 2}, StartPoint: Point{Column: 1}}
	if err := ok.validate(3); err != nil {
		t.Errorf("valid edit rejected: %v", err)
	}
	if err := ok.validate(2); err == nil {
		t.Error("edit past the end accepted")
	}
}

func TestAdvancePoint(t *testing.T) {
	if got, want := advancePoint(Point{Row: 2, Column: 5}, []byte("ab\n\ncd")), (Point{Row: 4, Column: 2}); got != want {
		t.Errorf("advancePoint = %+v, want %+v", got, want)
	}
	if got, want := pointAt([]byte("x\ny"), 3), (Point{Row: 1, Column: 1}); got != want {
		t.Errorf("pointAt = %+v, want %+v", got, want)
	}
}
