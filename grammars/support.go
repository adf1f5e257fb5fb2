package grammars

import (
	"sort"

	"golang.org/x/mod/semver"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// ParseBackend describes how a language can be parsed in this runtime.
type ParseBackend string

const (
	ParseBackendUnsupported ParseBackend = "unsupported"
	ParseBackendScanner     ParseBackend = "scanner"
)

// ParseSupport summarizes parser support status for one registered language.
type ParseSupport struct {
	Name              string
	LanguageVersion   string
	RuntimeVersion    string
	VersionCompatible bool
	Backend           ParseBackend
	Reason            string
	HasScanner        bool
	StateCount        uint32
	SymbolCount       uint32
}

// EvaluateParseSupport reports whether a language's tables can run on this
// runtime and whether it carries a scanner to feed them.
func EvaluateParseSupport(entry LangEntry, lang *gotreesitter.Language) ParseSupport {
	report := ParseSupport{
		Name:           entry.Name,
		RuntimeVersion: gotreesitter.RuntimeABI,
		Backend:        ParseBackendUnsupported,
	}
	if lang == nil {
		report.Reason = "language failed to load"
		return report
	}
	report.LanguageVersion = lang.Version()
	report.VersionCompatible = lang.CompatibleWithRuntime()
	report.HasScanner = lang.Scanner != nil
	report.StateCount = lang.StateCount
	report.SymbolCount = lang.SymbolCount

	switch {
	case !semver.IsValid(report.LanguageVersion):
		report.Reason = "language ABI version is not a semantic version"
	case !report.VersionCompatible && semver.Compare(report.LanguageVersion, gotreesitter.RuntimeABI) > 0:
		report.Reason = "language tables are newer than the runtime"
	case !report.VersionCompatible:
		report.Reason = "language ABI major version differs from the runtime"
	case !report.HasScanner:
		report.Reason = "no scanner attached"
	default:
		report.Backend = ParseBackendScanner
		report.Reason = "scanner-driven LR tables"
	}
	return report
}

// AuditParseSupport evaluates parse support for all registered languages.
func AuditParseSupport() []ParseSupport {
	entries := AllLanguages()
	reports := make([]ParseSupport, 0, len(entries))
	for _, entry := range entries {
		reports = append(reports, EvaluateParseSupport(entry, loadEntry(entry)))
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Name < reports[j].Name
	})
	return reports
}

// loadEntry calls the entry's loader, turning a panic into a nil language.
func loadEntry(entry LangEntry) (lang *gotreesitter.Language) {
	defer func() {
		if recover() != nil {
			lang = nil
		}
	}()
	return entry.Language()
}
