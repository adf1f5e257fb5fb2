package grammars

import "testing"

func TestSubprocessLine(t *testing.T) {
	keywords := XonshLanguage().Scanner.(*XonshScanner).keywordSet
	tests := []struct {
		line string
		want bool
	}{
		{"echo hello", true},
		{"ls -la", true},
		{"ls --all", true},
		{"git commit -m 'msg'", true},
		{"cd ..", true},
		{"cd /tmp", true},
		{"cd ~", true},
		{"cd ~/src", true},
		{"ls ~/src/*.go", true},
		{"make && make install", true},
		{"false || true", true},
		{"echo $HOME", true},
		{"echo @(x)", true},
		{"ls *.py", true},
		{"echo {a,b}", true},
		{"print x", true},
		{"ls 1", true},
		{"./configure --prefix=/usr", true},
		{"/usr/bin/env python", true},
		{"echo! hello world", true},
		{"cmd!", true},
		{"ls", false},
		{"x = 1", false},
		{"x == 1", false},
		{"print(x)", false},
		{"a.b.c", false},
		{"a[1] + b", false},
		{"a - b", false},
		{"a -1", false},
		{"a / b", false},
		{"a + ~b", false},
		{"x if y else z", false},
		{"f(x) and g(y)", false},
		{"a not in b", false},
		{"x is None", false},
		{"return x", false},
		{"import os", false},
		{"f'{x}'", false},
		{"r`.*`", false},
		{"x += 1", false},
		{"x: int = 1", false},
		{"d[k] = v", false},
		{"f!(x)", false},
		{"x!= y", false},
	}
	for _, tt := range tests {
		got, _ := subprocessLine([]byte(tt.line+"\n"), false, keywords)
		if got != tt.want {
			t.Errorf("subprocessLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSubprocessLineGroup(t *testing.T) {
	keywords := XonshLanguage().Scanner.(*XonshScanner).keywordSet
	tests := []struct {
		content string
		want    bool
	}{
		{"echo hello)", true},
		{" ls -l)", true},
		{"x + 1)", false},
		{"a, b)", false},
		{"x) y", false},
	}
	for _, tt := range tests {
		got, _ := subprocessLine([]byte(tt.content), true, keywords)
		if got != tt.want {
			t.Errorf("subprocessLine(%q, group) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestSubprocessLineReportsExamined(t *testing.T) {
	keywords := XonshLanguage().Scanner.(*XonshScanner).keywordSet
	line := []byte("ls\nnext line")
	_, n := subprocessLine(line, false, keywords)
	if n < 3 {
		t.Fatalf("examined %d bytes, want at least the line break", n)
	}
	if n > len("ls\n")+1 {
		t.Fatalf("examined %d bytes, past the logical line", n)
	}
}

func TestEnvScopedCommand(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"$FOO=bar make", true},
		{"$A=1 $B=2 cmd arg", true},
		{"$A='x y' cmd", true},
		{"$A=1", false},
		{"$A=1;", false},
		{"$A=1 $B=2", false},
	}
	for _, tt := range tests {
		got, _ := envScopedCommand([]byte(tt.line + "\n"))
		if got != tt.want {
			t.Errorf("envScopedCommand(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestXontribLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"xontrib load vox", true},
		{"xontrib load vox abbrevs", true},
		{"xontrib  load  my.pkg  # note", true},
		{"xontrib load", false},
		{"xontrib load -v vox", false},
		{"xontrib list", false},
		{"xontrib = 1", false},
		{"xontribs load vox", false},
	}
	for _, tt := range tests {
		got, _ := xontribLine([]byte(tt.line + "\n"))
		if got != tt.want {
			t.Errorf("xontribLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestMacroArgLen(t *testing.T) {
	tests := []struct {
		src   string
		comma bool
		stop  byte
		want  string
	}{
		{"a, b)", true, ')', "a"},
		{"(a, b), c)", true, ')', "(a, b)"},
		{"'x, y' , z)", true, ')', "'x, y'"},
		{"x + 1  )", true, ')', "x + 1"},
		{"a | b, c\nnext", false, 0, "a | b, c"},
		{"a b) tail", false, ')', "a b"},
		{"a b] tail", false, ']', "a b"},
	}
	for _, tt := range tests {
		n, _ := macroArgLen([]byte(tt.src), tt.comma, tt.stop)
		if got := tt.src[:n]; got != tt.want {
			t.Errorf("macroArgLen(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
