package grammars

import "testing"

func TestDetectLanguageXonsh(t *testing.T) {
	for _, name := range []string{"build.xsh", "/home/u/.xonshrc", "scripts/deploy.xsh"} {
		entry := DetectLanguage(name)
		if entry == nil {
			t.Fatalf("expected to detect xonsh for %s, got nil", name)
		}
		if entry.Name != "xonsh" {
			t.Fatalf("%s: expected language name %q, got %q", name, "xonsh", entry.Name)
		}
	}
}

func TestDetectLanguageUnknown(t *testing.T) {
	entry := DetectLanguage("readme.xyz")
	if entry != nil {
		t.Fatalf("expected nil for unknown extension, got %q", entry.Name)
	}
}

func TestAllLanguages(t *testing.T) {
	langs := AllLanguages()
	if len(langs) == 0 {
		t.Fatal("expected at least one registered language, got 0")
	}
	if LookupLanguage("xonsh") == nil {
		t.Fatal("expected xonsh language to be registered")
	}
	if LookupLanguage("python") != nil {
		t.Fatal("python should not be registered")
	}
}

func TestDetectLanguageByShebang(t *testing.T) {
	if entry := DetectLanguageByShebang("#!/usr/bin/env xonsh"); entry == nil || entry.Name != "xonsh" {
		t.Fatalf("expected xonsh for env shebang, got %v", entry)
	}
	if entry := DetectLanguageByShebang("#!/usr/bin/env python3"); entry != nil {
		t.Fatalf("expected nil for unregistered shebang, got %q", entry.Name)
	}
}

func TestDetectLanguageForContent(t *testing.T) {
	entry := DetectLanguageForContent("deploy", []byte("#!/usr/bin/env xonsh\r\necho hi\n"))
	if entry == nil || entry.Name != "xonsh" {
		t.Fatalf("expected xonsh from shebang, got %v", entry)
	}
	if entry := DetectLanguageForContent("notes", []byte("hello\n")); entry != nil {
		t.Fatalf("expected nil, got %q", entry.Name)
	}
}

func TestXonshHighlightsCoverKeywords(t *testing.T) {
	lang := XonshLanguage()
	for name, sym := range XonshLanguage().Scanner.(*XonshScanner).keywords {
		if name == "True" || name == "False" || name == "None" {
			continue
		}
		if _, ok := XonshHighlights[`"`+name+`"`]; !ok {
			t.Errorf("keyword %q (%s) has no highlight rule", name, lang.SymbolName(sym))
		}
	}
}
