package grammars

import (
	"path/filepath"
	"strings"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// LangEntry holds a registered language with its loader, file matching rules
// and highlight captures.
type LangEntry struct {
	Name       string
	Extensions []string                      // e.g. [".xsh"]
	Filenames  []string                      // exact base names, e.g. [".xonshrc"]
	Shebangs   []string                      // e.g. ["#!/usr/bin/env xonsh"]
	Language   func() *gotreesitter.Language // lazy loader
	Highlights gotreesitter.CaptureRules
}

var registry []LangEntry

func init() {
	Register(LangEntry{
		Name:       "xonsh",
		Extensions: []string{".xsh"},
		Filenames:  []string{".xonshrc", "xonshrc"},
		Shebangs:   []string{"#!/usr/bin/env xonsh", "#!/usr/bin/xonsh", "#!/usr/local/bin/xonsh"},
		Language:   XonshLanguage,
		Highlights: XonshHighlights,
	})
}

// Register adds a language to the registry.
func Register(entry LangEntry) {
	registry = append(registry, entry)
}

// DetectLanguage returns the LangEntry for a filename, or nil if unknown.
// Exact file names are matched before extensions.
func DetectLanguage(filename string) *LangEntry {
	base := filepath.Base(filename)
	for i := range registry {
		for _, name := range registry[i].Filenames {
			if base == name {
				return &registry[i]
			}
		}
	}
	for i := range registry {
		for _, ext := range registry[i].Extensions {
			if strings.HasSuffix(filename, ext) {
				return &registry[i]
			}
		}
	}
	return nil
}

// DetectLanguageByShebang checks the first line of content for shebang matches.
func DetectLanguageByShebang(firstLine string) *LangEntry {
	for i := range registry {
		for _, shebang := range registry[i].Shebangs {
			if strings.HasPrefix(firstLine, shebang) {
				return &registry[i]
			}
		}
	}
	return nil
}

// DetectLanguageForContent matches by file name, then by the shebang on the
// first line of src.
func DetectLanguageForContent(filename string, src []byte) *LangEntry {
	if entry := DetectLanguage(filename); entry != nil {
		return entry
	}
	first := src
	if i := strings.IndexByte(string(src), '\n'); i >= 0 {
		first = src[:i]
	}
	return DetectLanguageByShebang(strings.TrimRight(string(first), "\r"))
}

// LookupLanguage returns the entry registered under name, or nil.
func LookupLanguage(name string) *LangEntry {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i]
		}
	}
	return nil
}

// AllLanguages returns all registered languages.
func AllLanguages() []LangEntry {
	return registry
}

// XonshHighlights maps xonsh node kinds to highlight capture names.
var XonshHighlights = xonshHighlights()

func xonshHighlights() gotreesitter.CaptureRules {
	rules := gotreesitter.CaptureRules{
		"comment":                  "comment",
		"string":                   "string",
		"path_string":              "string.special.path",
		"escape_sequence":          "string.escape",
		"interpolation":            "embedded",
		"integer":                  "number",
		"float":                    "number",
		"true":                     "constant.builtin",
		"false":                    "constant.builtin",
		"none":                     "constant.builtin",
		"ellipsis":                 "constant.builtin",
		"identifier":               "variable",
		"env_variable":             "variable.builtin",
		"env_variable_braced":      "variable.builtin",
		"call.function":            "function.call",
		"function_definition.name": "function",
		"class_definition.name":    "type",
		"decorator":                "attribute",
		"attribute.attribute":      "property",
		"keyword_argument.name":    "variable.parameter",
		"parameters":               "variable.parameter",
		"type":                     "type",
		"word":                     "string.special",
		"subprocess_command":       "function.call",
		"subprocess_modifier":      "keyword.modifier",
		"pipe_operator":            "operator",
		"logical_operator":         "operator",
		"redirect_operator":        "operator",
		"stream_merge_operator":    "operator",
		"brace_expansion":          "string.special",
		"regex_glob":               "string.regexp",
		"regex_path_glob":          "string.regexp",
		"glob_pattern":             "string.special",
		"glob_path":                "string.special.path",
		"formatted_glob":           "string.special",
		"custom_function_glob":     "string.special",
		"\"$(\"":                   "punctuation.special",
		"\"!(\"":                   "punctuation.special",
		"\"$[\"":                   "punctuation.special",
		"\"![\"":                   "punctuation.special",
		"\"@(\"":                   "punctuation.special",
		"\"@$(\"":                  "punctuation.special",
		"\"${\"":                   "punctuation.special",
		"\"@.\"":                   "punctuation.special",
		"at_object":                "variable.builtin",
		"macro_call.function":      "function.macro",
		"macro_argument":           "string.special",
		"subprocess_macro":         "function.macro",
	}
	for _, kw := range []string{
		"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
		"elif", "else", "except", "finally", "for", "from", "global", "if", "import", "in",
		"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try", "while",
		"with", "yield", "xontrib", "load",
	} {
		rules[`"`+kw+`"`] = "keyword"
	}
	return rules
}
