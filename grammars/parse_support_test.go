package grammars

import (
	"testing"

	"github.com/odvcencio/xonshts/gotreesitter"
)

var parseSmokeSamples = map[string]string{
	"xonsh": "def f():\n    return $(ls -l)\n",
}

func TestSupportedLanguagesParseSmoke(t *testing.T) {
	reports := AuditParseSupport()
	for _, report := range reports {
		sample, ok := parseSmokeSamples[report.Name]
		if !ok {
			t.Fatalf("missing parse smoke sample for language %q", report.Name)
		}
		if report.Backend == ParseBackendUnsupported {
			t.Fatalf("%s unsupported: %s", report.Name, report.Reason)
		}

		entry := LookupLanguage(report.Name)
		tree := gotreesitter.NewParser(entry.Language()).Parse([]byte(sample))
		root := tree.RootNode()
		if root.IsNull() {
			t.Fatalf("%s: nil root", report.Name)
		}
		if root.HasError() {
			t.Errorf("%s: unexpected error in %s", report.Name, tree)
		}
		if root.EndByte() != uint32(len(sample)) {
			t.Errorf("%s: root ends at %d, want %d", report.Name, root.EndByte(), len(sample))
		}
	}
}

func TestEvaluateParseSupport(t *testing.T) {
	entry := *LookupLanguage("xonsh")
	lang := XonshLanguage()

	report := EvaluateParseSupport(entry, lang)
	if report.Backend != ParseBackendScanner {
		t.Fatalf("backend = %q (%s), want %q", report.Backend, report.Reason, ParseBackendScanner)
	}
	if !report.HasScanner || report.StateCount == 0 {
		t.Fatalf("report = %+v", report)
	}

	newer := *lang
	newer.ABIVersion = "v1.99.0"
	if got := EvaluateParseSupport(entry, &newer); got.VersionCompatible || got.Backend != ParseBackendUnsupported {
		t.Errorf("newer tables: compatible=%v backend=%q", got.VersionCompatible, got.Backend)
	}

	otherMajor := *lang
	otherMajor.ABIVersion = "v0.9.0"
	if got := EvaluateParseSupport(entry, &otherMajor); got.VersionCompatible {
		t.Error("tables with a different major version reported compatible")
	}

	bare := *lang
	bare.Scanner = nil
	if got := EvaluateParseSupport(entry, &bare); got.Backend != ParseBackendUnsupported {
		t.Errorf("language without scanner: backend = %q", got.Backend)
	}

	if got := EvaluateParseSupport(entry, nil); got.Reason == "" {
		t.Error("nil language: empty reason")
	}
}
