// Package config loads the YAML configuration shared by the xonshts
// commands. Files are checked against an embedded JSON schema before they
// are decoded.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// FileName is the configuration file looked up by Find.
const FileName = ".xonshts.yaml"

//go:embed schema.json
var schemaJSON []byte

// Config is the full configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Parser    ParserConfig    `yaml:"parser"`
	LSP       LSPConfig       `yaml:"lsp"`
	Web       WebConfig       `yaml:"web"`
	Highlight HighlightConfig `yaml:"highlight"`
	Watch     WatchConfig     `yaml:"watch"`
}

// LogConfig is passed to commonlog.Configure.
type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"` // "" logs to stderr
}

// ParserConfig bounds error recovery.
type ParserConfig struct {
	MaxRecoveryAttempts    int `yaml:"maxRecoveryAttempts"`
	MaxRecoveryPerPosition int `yaml:"maxRecoveryPerPosition"`
}

// LSPConfig configures the language server.
type LSPConfig struct {
	Name string `yaml:"name"`
}

// WebConfig configures the WebSocket parse service.
type WebConfig struct {
	Addr string `yaml:"addr"`
}

// HighlightConfig selects the chroma style and formatter.
type HighlightConfig struct {
	Style     string `yaml:"style"`
	Formatter string `yaml:"formatter"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Verbosity: 0},
		Parser:    ParserConfig{MaxRecoveryAttempts: 4096, MaxRecoveryPerPosition: 8},
		LSP:       LSPConfig{Name: "xonshts"},
		Web:       WebConfig{Addr: "127.0.0.1:7457"},
		Highlight: HighlightConfig{Style: "monokai", Formatter: "terminal256"},
		Watch:     WatchConfig{Debounce: "150ms"},
	}
}

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["duration"] = func(v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		_, err := time.ParseDuration(s)
		return err == nil
	}
	const url = "schema://xonshts/config.json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("config schema: %v", err))
	}
	return compiler.MustCompile(url)
}

// Parse decodes YAML configuration over the defaults. Keys the schema does
// not know and values of the wrong type are rejected.
func Parse(data []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if doc != nil {
		// Maps with non-string keys fail here rather than in the validator.
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if err := schema.Validate(value); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the nearest FileName in dir or one of its parents, or "".
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// WatchDebounce returns the parsed watch debounce interval.
func (c *Config) WatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d < 0 {
		return 150 * time.Millisecond
	}
	return d
}

// ParserOptions returns the parser options the configuration selects.
func (c *Config) ParserOptions(log commonlog.Logger) []gotreesitter.ParserOption {
	opts := []gotreesitter.ParserOption{
		gotreesitter.WithMaxRecoveryAttempts(c.Parser.MaxRecoveryAttempts),
		gotreesitter.WithMaxRecoveryPerPosition(c.Parser.MaxRecoveryPerPosition),
	}
	if log != nil {
		opts = append(opts, gotreesitter.WithLogger(log))
	}
	return opts
}

// ConfigureLogging applies the log settings to commonlog. A backend must be
// registered, usually by importing github.com/tliron/commonlog/simple.
func (c *Config) ConfigureLogging() {
	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(c.Log.Verbosity, path)
}
