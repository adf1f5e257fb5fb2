// Package lsp serves xonsh documents over the Language Server Protocol.
// Documents are kept in sync incrementally: each content change becomes an
// edit of the document's syntax tree, and diagnostics are published from
// the error and missing nodes of the reparsed tree.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/odvcencio/xonshts/editor"
	"github.com/odvcencio/xonshts/gotreesitter"
)

const diagnosticSource = "xonshts"

// Server is a language server for xonsh.
type Server struct {
	name    string
	version string
	lang    *gotreesitter.Language
	opts    []gotreesitter.ParserOption
	log     commonlog.Logger

	handler protocol.Handler
	server  *server.Server

	mu   sync.Mutex
	docs map[protocol.DocumentUri]*editor.Document
}

// NewServer creates a server named name that parses documents with lang.
func NewServer(lang *gotreesitter.Language, name, version string, opts ...gotreesitter.ParserOption) *Server {
	s := &Server{
		name:    name,
		version: version,
		lang:    lang,
		opts:    opts,
		log:     commonlog.GetLogger("xonshts.lsp"),
		docs:    make(map[protocol.DocumentUri]*editor.Document),
	}
	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.textDocumentDidOpen,
		TextDocumentDidChange:      s.textDocumentDidChange,
		TextDocumentDidClose:       s.textDocumentDidClose,
		TextDocumentFoldingRange:   s.textDocumentFoldingRange,
		TextDocumentDocumentSymbol: s.textDocumentDocumentSymbol,
	}
	s.server = server.NewServer(&s.handler, name, false)
	return s
}

// RunStdio serves a single client over standard input and output.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// RunTCP serves clients that connect to address.
func (s *Server) RunTCP(address string) error {
	return s.server.RunTCP(address)
}

// RunWebSocket serves clients over WebSocket connections to address.
func (s *Server) RunWebSocket(address string) error {
	return s.server.RunWebSocket(address)
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) document(uri protocol.DocumentUri) *editor.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := editor.NewDocument(s.lang, s.opts...)
	doc.SetText(params.TextDocument.Text)

	s.mu.Lock()
	s.docs[params.TextDocument.URI] = doc
	s.mu.Unlock()

	s.log.Debugf("opened %s (%d bytes)", params.TextDocument.URI, len(params.TextDocument.Text))
	s.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	doc := s.document(uri)
	if doc == nil {
		s.log.Warningf("change for unknown document %s", uri)
		return nil
	}
	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				doc.SetText(change.Text)
				continue
			}
			start, end := change.Range.IndexesIn(doc.Text())
			if err := doc.ReplaceRange(editor.Range{Start: start, End: end}, change.Text); err != nil {
				// The client and server disagree about the text; the next
				// full sync repairs it.
				s.log.Errorf("apply change to %s: %s", uri, err)
				return err
			}
		case protocol.TextDocumentContentChangeEventWhole:
			doc.SetText(change.Text)
		}
	}
	tree := doc.Tree()
	stats := tree.Stats()
	s.log.Debugf("reparsed %s: revision %d, %d tokens lexed, %d replayed, %d nodes reused", uri, tree.Revision(), stats.TokensLexed, stats.TokensReplayed, stats.NodesReused)
	s.publishDiagnostics(ctx, uri, doc)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *editor.Document) {
	idx := newLineIndex(doc.Text())
	diags := []protocol.Diagnostic{}
	for _, d := range doc.Diagnostics() {
		diags = append(diags, protocol.Diagnostic{
			Range:    idx.rangeOf(d.Range),
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   strPtr(diagnosticSource),
			Message:  d.Message,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func (s *Server) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	var out []protocol.FoldingRange
	for _, r := range editor.FoldRegionsFromTree(doc.Tree()) {
		fr := protocol.FoldingRange{StartLine: uint32(r.StartLine), EndLine: uint32(r.EndLine)}
		if r.Kind == "string" {
			fr.Kind = strPtr(string(protocol.FoldingRangeKindComment))
		} else {
			fr.Kind = strPtr(string(protocol.FoldingRangeKindRegion))
		}
		out = append(out, fr)
	}
	return out, nil
}

func (s *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	idx := newLineIndex(doc.Text())
	return documentSymbols(doc.Tree().RootNode(), idx), nil
}

// documentSymbols lists the definitions under n: functions, classes and
// environment variable assignments, with definitions nested in their
// enclosing ones.
func documentSymbols(n gotreesitter.Node, idx *lineIndex) []protocol.DocumentSymbol {
	out := []protocol.DocumentSymbol{}
	for _, c := range n.Children() {
		var kind protocol.SymbolKind
		var name gotreesitter.Node
		switch c.Kind() {
		case "function_definition":
			kind, name = protocol.SymbolKindFunction, c.ChildByFieldName("name")
		case "class_definition":
			kind, name = protocol.SymbolKindClass, c.ChildByFieldName("name")
		case "env_assignment":
			kind, name = protocol.SymbolKindVariable, c.ChildByFieldName("name")
		default:
			if c.ChildCount() > 0 && !c.IsError() {
				out = append(out, documentSymbols(c, idx)...)
			}
			continue
		}
		if name.IsNull() || name.IsMissing() {
			continue
		}
		out = append(out, protocol.DocumentSymbol{
			Name:           name.Text(),
			Kind:           kind,
			Range:          idx.rangeOf(c.Range()),
			SelectionRange: idx.rangeOf(name.Range()),
			Children:       documentSymbols(c, idx),
		})
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
