package grammars

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// lexAll runs the xonsh scanner over src until EOF.
func lexAll(t testing.TB, src string) []gotreesitter.Token {
	t.Helper()
	lang := XonshLanguage()
	source := []byte(src)
	state := lang.Scanner.InitialState()
	var at gotreesitter.Length
	var out []gotreesitter.Token
	for i := 0; i < 4*len(src)+64; i++ {
		tok, next := gotreesitter.RunScanner(lang, source, at, state)
		if tok.Symbol == gotreesitter.EOFSymbol {
			return out
		}
		out = append(out, tok)
		at = gotreesitter.Length{Bytes: tok.EndByte, Extent: tok.EndPoint}
		state = next
	}
	t.Fatalf("scanner did not reach EOF for %q", src)
	return nil
}

// tokenKinds names the tokens of src, leaving out whitespace.
func tokenKinds(t testing.TB, src string) []string {
	t.Helper()
	lang := XonshLanguage()
	var kinds []string
	for _, tok := range lexAll(t, src) {
		name := lang.SymbolName(tok.Symbol)
		if name == "_whitespace" {
			continue
		}
		kinds = append(kinds, name)
	}
	return kinds
}

func TestXonshScannerTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "assignment",
			src:  "x = 1\n",
			want: []string{"identifier", "=", "integer", "_newline"},
		},
		{
			name: "command",
			src:  "echo hello\n",
			want: []string{"word", "word", "_newline"},
		},
		{
			name: "indented block",
			src:  "if x:\n    y\n",
			want: []string{"if", "identifier", ":", "_newline", "_indent", "identifier", "_newline", "_dedent"},
		},
		{
			name: "pipeline",
			src:  "ls -la | grep x\n",
			want: []string{"word", "word", "pipe_operator", "word", "word", "_newline"},
		},
		{
			name: "env variable",
			src:  "$HOME\n",
			want: []string{"env_variable", "_newline"},
		},
		{
			name: "format string",
			src:  "f\"a{b!r:>10}c\"\n",
			want: []string{
				"string_start", "string_content", "{", "identifier", "type_conversion",
				":", "_format_text", "}", "string_content", "string_end", "_newline",
			},
		},
		{
			name: "captured subprocess",
			src:  "echo $(ls -l)\n",
			want: []string{"word", "$(", "word", "word", ")", "_newline"},
		},
		{
			name: "redirects",
			src:  "cmd 2>&1 > out.txt\n",
			want: []string{"word", "stream_merge_operator", "redirect_operator", "word", "_newline"},
		},
		{
			name: "env prefix",
			src:  "$FOO=bar make\n",
			want: []string{"env_variable", "=", "word", "word", "_newline"},
		},
		{
			name: "python evaluation",
			src:  "echo @(x + 1)\n",
			want: []string{"word", "@(", "identifier", "+", "integer", ")", "_newline"},
		},
		{
			name: "globs",
			src:  "x = g`*.py` + `a.*`\n",
			want: []string{"identifier", "=", "glob_pattern", "+", "regex_glob", "_newline"},
		},
		{
			name: "path string",
			src:  "p = p\"/tmp\"\n",
			want: []string{"identifier", "=", "path_string_start", "string_content", "string_end", "_newline"},
		},
		{
			name: "brackets suppress newlines",
			src:  "x = (1,\n     2)\n",
			want: []string{"identifier", "=", "(", "integer", ",", "integer", ")", "_newline"},
		},
		{
			name: "missing final newline",
			src:  "pass",
			want: []string{"pass", "_newline"},
		},
		{
			name: "comment lines keep indentation",
			src:  "if x:\n    # note\n    y\n",
			want: []string{"if", "identifier", ":", "_newline", "_indent", "comment", "identifier", "_newline", "_dedent"},
		},
		{
			name: "help",
			src:  "len?\n",
			want: []string{"identifier", "?", "_newline"},
		},
		{
			name: "macro call",
			src:  "f!(a, (b, c))\n",
			want: []string{"identifier", "!(", "macro_argument", ",", "macro_argument", ")", "_newline"},
		},
		{
			name: "spaced capture is not a macro call",
			src:  "x = f !(ls)\n",
			want: []string{"identifier", "=", "identifier", "!(", "word", ")", "_newline"},
		},
		{
			name: "subprocess macro",
			src:  "echo! a | b\n",
			want: []string{"word", "!", "macro_argument", "_newline"},
		},
		{
			name: "subprocess macro in substitution",
			src:  "x = $(echo! a b)\n",
			want: []string{"identifier", "=", "$(", "word", "!", "macro_argument", ")", "_newline"},
		},
		{
			name: "block macro",
			src:  "with! ctx:\n    x\n",
			want: []string{"with", "!", "identifier", ":", "_newline", "_indent", "identifier", "_newline", "_dedent"},
		},
		{
			name: "at object",
			src:  "@.env\n",
			want: []string{"@.", "identifier", "_newline"},
		},
		{
			name: "matrix product with a float",
			src:  "a @.5\n",
			want: []string{"identifier", "@", "float", "_newline"},
		},
		{
			name: "xontrib load",
			src:  "xontrib load vox\n",
			want: []string{"xontrib", "load", "identifier", "_newline"},
		},
		{
			name: "xontrib and load as names",
			src:  "xontrib = load\n",
			want: []string{"identifier", "=", "identifier", "_newline"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenKinds(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens of %q mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestXonshScannerTokensCoverSource(t *testing.T) {
	inputs := []string{
		"x = 1\n",
		"for i in range(3):\n\tprint(i)\nelse:\n\tpass\n",
		"echo $(ls -l) | wc -l && echo done\n",
		"s = f'{x:{width}}' \"\"\"multi\nline\"\"\"\n",
		"x = 'unterminated\ny = 2\n",
		"$[ls @$(which python)] ![echo hi]\n",
	}
	for _, src := range inputs {
		var text string
		var prev uint32
		for _, tok := range lexAll(t, src) {
			if tok.StartByte != prev {
				t.Fatalf("%q: token %q starts at %d, previous ended at %d", src, tok.Text, tok.StartByte, prev)
			}
			text += tok.Text
			prev = tok.EndByte
		}
		if text != src {
			t.Errorf("token texts = %q, want %q", text, src)
		}
	}
}

func TestXonshScannerIndentBalance(t *testing.T) {
	inputs := []string{
		"if a:\n    if b:\n        c\n    d\ne\n",
		"def f():\n    return 1\n",
		"class A:\n    def f(self):\n        pass\n\n\n",
		"while x:\n  y\n        z\n",
		"if a:\n        b\n    c\n",
		"if a:\n    b",
	}
	lang := XonshLanguage()
	indent, _ := lang.SymbolByName("_indent")
	dedent, _ := lang.SymbolByName("_dedent")
	for _, src := range inputs {
		var opened, closed int
		for _, tok := range lexAll(t, src) {
			switch tok.Symbol {
			case indent:
				opened++
			case dedent:
				closed++
			}
		}
		if opened != closed {
			t.Errorf("%q: %d indents, %d dedents", src, opened, closed)
		}
	}
}

func TestXonshScannerInconsistentDedent(t *testing.T) {
	lang := XonshLanguage()
	dedent, _ := lang.SymbolByName("_dedent")
	var flagged int
	for _, tok := range lexAll(t, "if a:\n        b\n    c\n") {
		if tok.Symbol == dedent && tok.IsError {
			flagged++
		}
	}
	if flagged != 1 {
		t.Fatalf("error-flagged dedents = %d, want 1", flagged)
	}
}

func TestXonshScannerMixedTabsAndSpaces(t *testing.T) {
	lang := XonshLanguage()
	ws, _ := lang.SymbolByName("_whitespace")
	tests := []struct {
		src  string
		want int
	}{
		{"if x:\n\ty = 1\n        z = 2\n", 1},
		{"if x:\n\ty = 1\n\tz = 2\n", 0},
		{"if x:\n        y = 1\n        z = 2\n", 0},
		{"if x:\n    \ty = 1\n\tz = 2\n", 1},
	}
	for _, tt := range tests {
		var flagged int
		for _, tok := range lexAll(t, tt.src) {
			if tok.IsError {
				if tok.Symbol != ws {
					t.Errorf("%q: error on %s, want the leading whitespace", tt.src, lang.SymbolName(tok.Symbol))
				}
				flagged++
			}
		}
		if flagged != tt.want {
			t.Errorf("%q: %d error tokens, want %d", tt.src, flagged, tt.want)
		}
	}
}

func TestXonshScannerUnterminatedString(t *testing.T) {
	lang := XonshLanguage()
	end, _ := lang.SymbolByName("string_end")
	toks := lexAll(t, "x = \"abc\ny = 1\n")
	var found bool
	for _, tok := range toks {
		if tok.Symbol != end {
			continue
		}
		found = true
		if !tok.IsMissing || !tok.IsError {
			t.Errorf("string_end missing=%v error=%v, want both set", tok.IsMissing, tok.IsError)
		}
		if tok.StartByte != tok.EndByte {
			t.Errorf("string_end spans %d bytes, want 0", tok.EndByte-tok.StartByte)
		}
	}
	if !found {
		t.Fatal("no string_end emitted")
	}
	if got := tokenKinds(t, "x = \"abc\ny = 1\n")[6:]; !cmp.Equal(got, []string{"identifier", "=", "integer", "_newline"}) {
		t.Errorf("tokens after the broken line = %v", got)
	}
}

func TestXonshScannerStateRoundTrip(t *testing.T) {
	st := scanState{
		flags:    flagSubprocess | flagCmdHead,
		dedents:  2,
		depth:    3,
		nIndents: 2,
		nFrames:  2,
	}
	st.indents[0] = makeIndentLevel(4, 4)
	st.indents[1] = makeIndentLevel(8, 2)
	st.frames[0] = frame{kind: frameSubstParen}
	st.frames[1] = frame{kind: frameString, data: strDouble | strFormat}

	got := decodeState(st.encode())
	if diff := cmp.Diff(st, got, cmp.AllowUnexported(scanState{}, frame{})); diff != "" {
		t.Fatalf("state round trip mismatch (-want +got):\n%s", diff)
	}
	if got.indents[1].width() != 8 || got.indents[1].chars() != 2 {
		t.Errorf("indent level = (%d, %d), want (8, 2)", got.indents[1].width(), got.indents[1].chars())
	}
}

func TestXonshScannerStateEncodingIgnoresDeadSlots(t *testing.T) {
	var a, b scanState
	a.push(frame{kind: frameGroup})
	a.pop()
	b.nIndents = 1
	b.indents[0] = makeIndentLevel(4, 4)
	b.nIndents = 0
	if a.encode() != b.encode() {
		t.Fatal("states with no live frames or indents encode differently")
	}
}

func TestXonshScannerFrameLimit(t *testing.T) {
	src := ""
	for i := 0; i < maxFrames+5; i++ {
		src += "$("
	}
	src += "ls\n"
	// Nesting beyond the frame capacity degrades to error tokens but the
	// scanner still reaches EOF.
	lexAll(t, src)
}

func TestIsStringPrefix(t *testing.T) {
	tests := map[string]bool{
		"r": true, "b": true, "f": true, "u": true, "p": true,
		"rb": true, "Br": true, "fr": true, "pf": true, "pr": true,
		"ub": false, "bf": false, "rr": false, "x": false, "": false, "rbfp": false,
	}
	for prefix, want := range tests {
		if got := isStringPrefix(prefix); got != want {
			t.Errorf("isStringPrefix(%q) = %v, want %v", prefix, got, want)
		}
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		src     string
		n       int
		isFloat bool
	}{
		{"123", 3, false},
		{"1_000 ", 5, false},
		{"0x1F)", 4, false},
		{"3.14", 4, true},
		{".5", 2, true},
		{"1e10", 4, true},
		{"2j", 2, true},
		{"1..", 1, false},
	}
	for _, tt := range tests {
		n, isFloat := scanNumber([]byte(tt.src))
		if n != tt.n || isFloat != tt.isFloat {
			t.Errorf("scanNumber(%q) = (%d, %v), want (%d, %v)", tt.src, n, isFloat, tt.n, tt.isFloat)
		}
	}
}

func TestMeasureIndent(t *testing.T) {
	tests := []struct {
		src   string
		width int
		chars int
		eof   bool
	}{
		{"    x", 4, 4, false},
		{"\tx", 8, 1, false},
		{"  \tx", 8, 3, false},
		{"\n\n  # c\n  x", 2, 2, false},
		{"   \n", 0, 0, true},
	}
	for _, tt := range tests {
		lvl, _, eof := measureIndent([]byte(tt.src))
		if eof != tt.eof {
			t.Errorf("measureIndent(%q) eof = %v, want %v", tt.src, eof, tt.eof)
			continue
		}
		if !eof && (lvl.width() != tt.width || lvl.chars() != tt.chars) {
			t.Errorf("measureIndent(%q) = (%d, %d), want (%d, %d)", tt.src, lvl.width(), lvl.chars(), tt.width, tt.chars)
		}
	}
}
