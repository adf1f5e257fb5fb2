package gotreesitter_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// reparse applies one replacement to tree and returns the incremental result
// together with the new source.
func reparse(t *testing.T, tree *gotreesitter.Tree, start, oldEnd uint32, text string) (*gotreesitter.Tree, []byte) {
	t.Helper()
	edit, src, err := gotreesitter.EditFromOffsets(tree.Source(), start, oldEnd, text)
	if err != nil {
		t.Fatalf("EditFromOffsets: %v", err)
	}
	p := gotreesitter.NewParser(tree.Language())
	next, err := p.Reparse(context.Background(), tree, src, edit)
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}
	if err := next.CheckSpans(); err != nil {
		t.Fatalf("CheckSpans after edit: %v", err)
	}
	return next, src
}

func TestReparseMatchesFreshParse(t *testing.T) {
	base := "x = 1;\n{ y = x * 2;\n  z = (y + 3);\n}\nw = z;\n"
	tests := []struct {
		name        string
		start, end  uint32
		replacement string
	}{
		{"change number", 4, 5, "42"},
		{"insert statement", 7, 7, "q = 0;\n"},
		{"delete block open", 7, 8, ""},
		{"break assignment", 2, 3, ""},
		{"replace everything", 0, uint32(len(base)), "a;"},
		{"append", uint32(len(base)), uint32(len(base)), "v = w;\n"},
		{"prepend comment", 0, 0, "# header\n"},
		{"close paren removed", 32, 33, ""},
		{"introduce garbage", 14, 14, "@@"},
	}
	lang := blockLanguage(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := parseBlocks(t, base)
			got, src := reparse(t, old, tt.start, tt.end, tt.replacement)
			want := gotreesitter.NewParser(lang).Parse(src)
			if diff := cmp.Diff(want.String(), got.String()); diff != "" {
				t.Errorf("incremental tree differs from fresh parse (-want +got):\n%s", diff)
			}
			if got := leafText(got); got != string(src) {
				t.Errorf("leaves concatenate to %q, want %q", got, src)
			}
			if got.Revision() <= old.Revision() {
				t.Errorf("revision %d did not advance past %d", got.Revision(), old.Revision())
			}
		})
	}
}

func TestReparseSequence(t *testing.T) {
	tree := parseBlocks(t, "a = 1;\n")
	edits := []struct {
		start, end uint32
		text       string
	}{
		{7, 7, "{ b = a;\n"},
		{16, 16, "}\n"},
		{4, 5, "(1 + 2)"},
		{0, 1, "aa"},
		{9, 9, "# note\n"},
	}
	lang := blockLanguage(t)
	for i, e := range edits {
		var src []byte
		tree, src = reparse(t, tree, e.start, e.end, e.text)
		want := gotreesitter.NewParser(lang).Parse(src)
		if tree.String() != want.String() {
			t.Fatalf("edit %d on %q:\n got %s\nwant %s", i, src, tree, want)
		}
	}
	if tree.RootNode().HasError() {
		t.Errorf("final tree has errors: %s", tree)
	}
}

func TestReparseReusesUntouchedSubtrees(t *testing.T) {
	src := "{ a = 1; }\n{ b = 2; }\n{ c = 3; }\n"
	old := parseBlocks(t, src)
	first := old.RootNode().NamedChild(0)
	third := old.RootNode().NamedChild(2)

	// Replace "2" in the second block.
	next, _ := reparse(t, old, 17, 18, "20")
	if got := next.RootNode().NamedChild(0); got.ID() != first.ID() {
		t.Errorf("first block was rebuilt: id %d, want %d", got.ID(), first.ID())
	}
	if got := next.RootNode().NamedChild(2); got.ID() != third.ID() {
		t.Errorf("third block was rebuilt: id %d, want %d", got.ID(), third.ID())
	}
	if got := next.RootNode().NamedChild(2).StartByte(); got != 23 {
		t.Errorf("third block starts at %d, want 23", got)
	}
	if next.Stats().NodesReused == 0 {
		t.Error("no nodes reused")
	}
	fresh := parseBlocks(t, string(next.Source()))
	if next.Stats().TokensLexed >= fresh.Stats().TokensLexed {
		t.Errorf("incremental parse lexed %d tokens, fresh parse %d", next.Stats().TokensLexed, fresh.Stats().TokensLexed)
	}
}

func TestEditIsPure(t *testing.T) {
	src := "x = 1;\ny = 2;\n"
	tree := parseBlocks(t, src)
	before := tree.String()
	rootID := tree.RootNode().ID()

	edit, _, err := gotreesitter.EditFromOffsets(tree.Source(), 4, 5, "100")
	if err != nil {
		t.Fatal(err)
	}
	edited, err := tree.Edit(edit)
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if tree.String() != before || tree.RootNode().ID() != rootID {
		t.Error("Edit modified the receiver")
	}
	if tree.Damaged() {
		t.Error("receiver reports damage")
	}
	if !edited.Damaged() {
		t.Error("edited tree reports no damage")
	}
	if got, want := edited.Revision(), tree.Revision()+1; got != want {
		t.Errorf("revision = %d, want %d", got, want)
	}
	if got := len(edited.Edits()); got != 1 {
		t.Errorf("edited tree records %d edits, want 1", got)
	}
	if got := edited.RootNode().EndByte(); got != uint32(len(src)+2) {
		t.Errorf("edited root ends at %d, want %d", got, len(src)+2)
	}

	// The second statement lies past the edit: shifted, not copied.
	oldSecond := tree.RootNode().NamedChild(1)
	newSecond := edited.RootNode().NamedChild(1)
	if newSecond.ID() != oldSecond.ID() {
		t.Errorf("untouched statement copied: id %d, want %d", newSecond.ID(), oldSecond.ID())
	}
	if got, want := newSecond.StartByte(), oldSecond.StartByte()+2; got != want {
		t.Errorf("shifted statement starts at %d, want %d", got, want)
	}
	if got, want := newSecond.StartPoint(), oldSecond.StartPoint(); got != want {
		t.Errorf("shifted statement point = %+v, want %+v", got, want)
	}
}

func TestEditRejectsInvalidRanges(t *testing.T) {
	tree := parseBlocks(t, "x = 1;")
	tests := []struct {
		name string
		edit gotreesitter.InputEdit
	}{
		{"start after old end", gotreesitter.InputEdit{StartByte: 4, OldEndByte: 2, NewEndByte: 4}},
		{"start after new end", gotreesitter.InputEdit{StartByte: 4, OldEndByte: 4, NewEndByte: 3}},
		{"beyond source", gotreesitter.InputEdit{StartByte: 2, OldEndByte: 40, NewEndByte: 2}},
		{"points reversed", gotreesitter.InputEdit{
			StartByte: 2, OldEndByte: 3, NewEndByte: 3,
			StartPoint:  gotreesitter.Point{Row: 1},
			OldEndPoint: gotreesitter.Point{Row: 0, Column: 3},
			NewEndPoint: gotreesitter.Point{Row: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tree.Edit(tt.edit)
			if !errors.Is(err, gotreesitter.ErrInvalidEdit) {
				t.Fatalf("err = %v, want ErrInvalidEdit", err)
			}
			var ee *gotreesitter.EditError
			if !errors.As(err, &ee) || ee.Edit != tt.edit {
				t.Errorf("err = %v, want an EditError carrying the edit", err)
			}
		})
	}
}

func TestReparseRejectsMismatchedSource(t *testing.T) {
	tree := parseBlocks(t, "x = 1;")
	edit, _, err := gotreesitter.EditFromOffsets(tree.Source(), 4, 5, "22")
	if err != nil {
		t.Fatal(err)
	}
	p := gotreesitter.NewParser(tree.Language())
	_, err = p.Reparse(context.Background(), tree, []byte("x = 1;"), edit)
	if !errors.Is(err, gotreesitter.ErrInvalidEdit) {
		t.Fatalf("err = %v, want ErrInvalidEdit", err)
	}
	if tree.String() != "(program (assignment left: (identifier) right: (number)))" {
		t.Errorf("failed reparse changed the old tree: %s", tree)
	}
}

func TestParseIncrementalWithoutEdits(t *testing.T) {
	tree := parseBlocks(t, "x = 1;")
	p := gotreesitter.NewParser(tree.Language())

	same := p.ParseIncremental([]byte("x = 1;"), tree)
	if same.RootNode().ID() != tree.RootNode().ID() {
		t.Errorf("unchanged source rebuilt the root")
	}

	// Changed text without a recorded edit falls back to a full parse.
	changed := p.ParseIncremental([]byte("y = 2;"), tree)
	if got := changed.RootNode().NamedChild(0).ChildByFieldName("left").Text(); got != "y" {
		t.Errorf("left = %q, want y", got)
	}
	if changed.Stats().NodesReused != 0 {
		t.Errorf("reused %d nodes from an unrelated tree", changed.Stats().NodesReused)
	}
}

func TestEditFromOffsets(t *testing.T) {
	src := []byte("ab\ncd\nef")
	edit, out, err := gotreesitter.EditFromOffsets(src, 4, 7, "X\nYZ")
	if err != nil {
		t.Fatal(err)
	}
	want := gotreesitter.InputEdit{
		StartByte:   4,
		OldEndByte:  7,
		NewEndByte:  8,
		StartPoint:  gotreesitter.Point{Row: 1, Column: 1},
		OldEndPoint: gotreesitter.Point{Row: 2, Column: 1},
		NewEndPoint: gotreesitter.Point{Row: 2, Column: 2},
	}
	if diff := cmp.Diff(want, edit); diff != "" {
		t.Errorf("edit mismatch (-want +got):\n%s", diff)
	}
	if got := string(out); got != "ab\ncX\nYZf" {
		t.Errorf("edited source = %q", got)
	}
	if string(src) != "ab\ncd\nef" {
		t.Errorf("EditFromOffsets modified its input")
	}

	if _, _, err := gotreesitter.EditFromOffsets(src, 5, 20, ""); !errors.Is(err, gotreesitter.ErrInvalidEdit) {
		t.Errorf("out of range edit: err = %v, want ErrInvalidEdit", err)
	}
}

func TestLexCacheCheckpoints(t *testing.T) {
	src := "a = 1;\n{ b = 2;\n  c = 3;\n}\nd;\n"
	tree := parseBlocks(t, src)
	cache := tree.LexCache()

	var offsets []uint32
	for _, cp := range cache.Checkpoints() {
		offsets = append(offsets, cp.Offset)
	}
	// Every line start begins a token: 0, 7, 16 (the indentation), 25, 27.
	lines := []uint32{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			lines = append(lines, uint32(i+1))
		}
	}
	for _, want := range lines {
		if _, ok := cache.Lookup(want); !ok {
			t.Errorf("no checkpoint at or before line start %d (have %v)", want, offsets)
		}
	}

	// Inside the block the scanner state records one open brace.
	cp, ok := cache.Lookup(17)
	if !ok || cp.Offset != 16 {
		t.Fatalf("Lookup(17) = %+v, %t; want the checkpoint at 16", cp, ok)
	}
	if cp.State[0] != 1 {
		t.Errorf("checkpoint at 16 has brace depth %d, want 1", cp.State[0])
	}
	if cp.Point != (gotreesitter.Point{Row: 2}) {
		t.Errorf("checkpoint point = %+v, want row 2", cp.Point)
	}

	tokens := gotreesitter.ScanRange(tree.Language(), tree.Source(), cp, 18, 25)
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	if diff := cmp.Diff([]string{"c", " ", "=", " ", "3", ";", "\n"}, texts); diff != "" {
		t.Errorf("ScanRange (-want +got):\n%s", diff)
	}
}

func TestLexCacheSurvivesEdit(t *testing.T) {
	src := "a = 1;\nb = 2;\nc = 3;\n"
	tree := parseBlocks(t, src)
	before := tree.LexCache().Len()
	// Three line starts plus end of input.
	if before != 4 {
		t.Fatalf("checkpoints = %d, want 4", before)
	}

	edit, newSrc, err := gotreesitter.EditFromOffsets(tree.Source(), 11, 12, "22")
	if err != nil {
		t.Fatal(err)
	}
	edited, err := tree.Edit(edit)
	if err != nil {
		t.Fatal(err)
	}
	// Lines after the edit are shifted and held back until confirmed.
	if got := edited.LexCache().Len(); got != 2 {
		t.Errorf("checkpoints after edit = %d, want 2", got)
	}

	next := gotreesitter.NewParser(tree.Language()).ParseIncremental(newSrc, edited)
	var offsets []uint32
	for _, cp := range next.LexCache().Checkpoints() {
		offsets = append(offsets, cp.Offset)
	}
	if diff := cmp.Diff([]uint32{0, 7, 15, 22}, offsets); diff != "" {
		t.Errorf("checkpoints after reparse (-want +got):\n%s", diff)
	}
}

// recordingScanner notes the offset of every scan.
type recordingScanner struct {
	gotreesitter.Scanner
	starts []int
}

func (s *recordingScanner) Scan(lx *gotreesitter.ExternalLexer, st gotreesitter.ScannerState) gotreesitter.ScannerState {
	s.starts = append(s.starts, lx.Offset())
	return s.Scanner.Scan(lx, st)
}

func TestReparseResumesAtCheckpoint(t *testing.T) {
	lang := *blockLanguage(t)
	scanner := &recordingScanner{Scanner: lang.Scanner}
	lang.Scanner = scanner
	p := gotreesitter.NewParser(&lang)

	src := "a = 1;\nb = 2;\n{ c = 3;\n  d = 4;\n}\ne = 5;\n"
	old := p.Parse([]byte(src))
	edit, newSrc, err := gotreesitter.EditFromOffsets(old.Source(), 29, 30, "44")
	if err != nil {
		t.Fatal(err)
	}
	edited, err := old.Edit(edit)
	if err != nil {
		t.Fatal(err)
	}
	cp, ok := edited.LexCache().Lookup(edit.StartByte)
	if !ok || cp.Offset != 23 {
		t.Fatalf("Lookup(%d) = %+v, %t; want the checkpoint at 23", edit.StartByte, cp, ok)
	}

	scanner.starts = nil
	got := p.ParseIncremental(newSrc, edited)
	if len(scanner.starts) == 0 {
		t.Fatal("reparse never ran the scanner")
	}
	if first := scanner.starts[0]; first != int(cp.Offset) {
		t.Errorf("reparse first scanned at %d, want the checkpoint at %d", first, cp.Offset)
	}
	for _, at := range scanner.starts {
		if at < int(cp.Offset) {
			t.Errorf("reparse scanned at %d, before the checkpoint", at)
		}
	}
	if got.Stats().TokensReplayed == 0 {
		t.Error("no old tokens replayed ahead of the checkpoint")
	}
	want := p.Parse(newSrc)
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Errorf("incremental tree differs from fresh parse (-want +got):\n%s", diff)
	}
	if err := got.CheckSpans(); err != nil {
		t.Fatal(err)
	}
}

func TestReparseReplayStopsAtErrors(t *testing.T) {
	lang := blockLanguage(t)
	src := "a = (1;\nb = 2;\nc = 3;\n"
	old := parseBlocks(t, src)
	if !old.RootNode().HasError() {
		t.Fatalf("expected an error in %s", old)
	}
	got, newSrc := reparse(t, old, 19, 20, "30")
	want := gotreesitter.NewParser(lang).Parse(newSrc)
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Errorf("incremental tree differs from fresh parse (-want +got):\n%s", diff)
	}
}

func TestRunScannerFromCheckpoint(t *testing.T) {
	tree := parseBlocks(t, "x = 1;\n{ y; }\n")
	cp, ok := tree.LexCache().Lookup(7)
	if !ok {
		t.Fatal("no checkpoint")
	}
	tok, after := gotreesitter.RunScanner(tree.Language(), tree.Source(),
		gotreesitter.Length{Bytes: cp.Offset, Extent: cp.Point}, cp.State)
	if tok.Text != "{" || tok.StartByte != 7 || tok.EndByte != 8 {
		t.Errorf("token = %q [%d,%d), want { [7,8)", tok.Text, tok.StartByte, tok.EndByte)
	}
	if after[0] != 1 {
		t.Errorf("state after { has depth %d, want 1", after[0])
	}
}

func FuzzReparseEquivalence(f *testing.F) {
	f.Add("x = 1;\n{ y = 2; }\n", uint16(4), uint16(1), "3 + 4")
	f.Add("{ a; }", uint16(0), uint16(1), "")
	f.Add("a = (b;\n", uint16(6), uint16(0), ")")
	lang := blockLanguage(f)
	f.Fuzz(func(t *testing.T, src string, at, del uint16, ins string) {
		if len(src) > 512 || len(ins) > 64 {
			t.Skip()
		}
		start := uint32(at) % uint32(len(src)+1)
		end := start + uint32(del)%uint32(len(src)-int(start)+1)
		p := gotreesitter.NewParser(lang)
		old := p.Parse([]byte(src))
		edit, newSrc, err := gotreesitter.EditFromOffsets(old.Source(), start, end, ins)
		if err != nil {
			t.Fatalf("EditFromOffsets: %v", err)
		}
		got, err := p.Reparse(context.Background(), old, newSrc, edit)
		if err != nil {
			t.Fatalf("Reparse: %v", err)
		}
		want := p.Parse(newSrc)
		if got.String() != want.String() {
			t.Fatalf("src %q edit %+v:\nincremental %s\nfresh       %s", src, edit, got, want)
		}
		if err := got.CheckSpans(); err != nil {
			t.Fatal(err)
		}
		if text := leafText(got); text != string(newSrc) {
			t.Fatalf("leaves %q, want %q", text, newSrc)
		}
	})
}

func FuzzParseRoundTrip(f *testing.F) {
	for _, seed := range []string{"", "x = 1;", "{ a = (1 + 2) * 3; }", "}{;;(", "a = 1 @ # c\n", strings.Repeat("{", 40)} {
		f.Add(seed)
	}
	lang := blockLanguage(f)
	f.Fuzz(func(t *testing.T, src string) {
		tree := gotreesitter.NewParser(lang).Parse([]byte(src))
		if err := tree.CheckSpans(); err != nil {
			t.Fatal(err)
		}
		if got := leafText(tree); got != src {
			t.Fatalf("leaves %q, want %q", got, src)
		}
	})
}

func TestReparseBoundsArenaGrowth(t *testing.T) {
	lang := blockLanguage(t)
	p := gotreesitter.NewParser(lang)
	tree := p.Parse([]byte("x = 1;\n{ y = x; }\n"))
	live := tree.NodeCount()
	largest := 0
	for i := 0; i < 6000; i++ {
		digit := "1"
		if i%2 == 0 {
			digit = "2"
		}
		edit, src, err := gotreesitter.EditFromOffsets(tree.Source(), 4, 5, digit)
		if err != nil {
			t.Fatal(err)
		}
		next, err := p.Reparse(context.Background(), tree, src, edit)
		if err != nil {
			t.Fatalf("edit %d: %v", i, err)
		}
		if next.Revision() <= tree.Revision() {
			t.Fatalf("edit %d: revision %d did not advance past %d", i, next.Revision(), tree.Revision())
		}
		tree = next
		largest = max(largest, tree.ArenaLen())
	}
	if largest > 2*4096 {
		t.Errorf("arena grew to %d nodes for a tree of %d", largest, live)
	}
	if want := p.Parse(tree.Source()); tree.String() != want.String() {
		t.Errorf("after edits:\n got %s\nwant %s", tree, want)
	}
}
