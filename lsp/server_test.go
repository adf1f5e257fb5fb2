package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

const testURI = "file:///tmp/script.xsh"

type recorder struct {
	published []protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {
		if method == protocol.ServerTextDocumentPublishDiagnostics {
			r.published = append(r.published, params.(protocol.PublishDiagnosticsParams))
		}
	}}
}

func (r *recorder) last(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func newTestServer() *Server {
	return NewServer(grammars.XonshLanguage(), "xonshts", "test")
}

func open(t *testing.T, s *Server, rec *recorder, text string) {
	t.Helper()
	require.NoError(t, s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "xonsh", Version: 1, Text: text},
	}))
}

func change(uri string, changes ...any) *protocol.DidChangeTextDocumentParams {
	return &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: changes,
	}
}

func span(l1, c1, l2, c2 uint32) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{Line: l1, Character: c1},
		End:   protocol.Position{Line: l2, Character: c2},
	}
}

func TestLineIndexPosition(t *testing.T) {
	idx := newLineIndex("a\n\U0001F600é b\n")
	tests := []struct {
		offset int
		want   protocol.Position
	}{
		{0, protocol.Position{}},
		{1, protocol.Position{Line: 0, Character: 1}},
		{2, protocol.Position{Line: 1}},
		{6, protocol.Position{Line: 1, Character: 2}},
		{8, protocol.Position{Line: 1, Character: 3}},
		{10, protocol.Position{Line: 1, Character: 5}},
		{11, protocol.Position{Line: 2}},
		{99, protocol.Position{Line: 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.position(tt.offset), "position(%d)", tt.offset)
	}
}

func TestInitializeAdvertisesIncrementalSync(t *testing.T) {
	s := newTestServer()
	res, err := s.initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	result := res.(protocol.InitializeResult)
	assert.Equal(t, "xonshts", result.ServerInfo.Name)
	sync, ok := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindIncremental, *sync.Change)
	assert.NotNil(t, result.Capabilities.FoldingRangeProvider)
	assert.NotNil(t, result.Capabilities.DocumentSymbolProvider)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "x = (1\n")

	got := rec.last(t)
	assert.Equal(t, testURI, got.URI)
	require.NotEmpty(t, got.Diagnostics)
	for _, d := range got.Diagnostics {
		assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
		assert.Equal(t, "xonshts", *d.Source)
	}
}

func TestDidChangeAppliesIncrementalEdits(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "x = (1\necho hi\n")
	require.NotEmpty(t, rec.last(t).Diagnostics)

	err := s.textDocumentDidChange(rec.context(), change(testURI,
		protocol.TextDocumentContentChangeEvent{Range: span(0, 4, 0, 6), Text: "1"},
		protocol.TextDocumentContentChangeEvent{Range: span(1, 5, 1, 7), Text: "$HOME"},
	))
	require.NoError(t, err)

	doc := s.document(testURI)
	assert.Equal(t, "x = 1\necho $HOME\n", doc.Text())
	assert.Empty(t, rec.last(t).Diagnostics)

	fresh := gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte(doc.Text()))
	assert.Equal(t, fresh.String(), doc.Tree().String())
}

func TestDidChangeWholeDocument(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "x = 1\n")
	require.NoError(t, s.textDocumentDidChange(rec.context(), change(testURI,
		protocol.TextDocumentContentChangeEventWhole{Text: "def f(:\n"},
	)))
	assert.Equal(t, "def f(:\n", s.document(testURI).Text())
	assert.NotEmpty(t, rec.last(t).Diagnostics)
}

func TestDidChangeRejectsOutOfSyncRanges(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "x = 1\n")
	err := s.textDocumentDidChange(rec.context(), change(testURI,
		protocol.TextDocumentContentChangeEvent{Range: span(0, 5, 0, 2), Text: "y"},
	))
	assert.ErrorIs(t, err, gotreesitter.ErrInvalidEdit)
	assert.Equal(t, "x = 1\n", s.document(testURI).Text())
}

func TestDidChangeUnknownDocument(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	assert.NoError(t, s.textDocumentDidChange(rec.context(), change("file:///nope.xsh",
		protocol.TextDocumentContentChangeEventWhole{Text: "x"},
	)))
	assert.Empty(t, rec.published)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "x = (1\n")
	require.NoError(t, s.textDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))
	assert.Nil(t, s.document(testURI))
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestFoldingRange(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "def f():\n    x = 1\n    return x\n")

	ranges, err := s.textDocumentFoldingRange(rec.context(), &protocol.FoldingRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, uint32(0), ranges[0].StartLine)
	assert.Equal(t, uint32(2), ranges[0].EndLine)
	assert.Equal(t, string(protocol.FoldingRangeKindRegion), *ranges[0].Kind)
}

func TestDocumentSymbol(t *testing.T) {
	s, rec := newTestServer(), &recorder{}
	open(t, s, rec, "def f():\n    def g():\n        pass\n    return g\nclass C:\n    pass\n$EDITOR = 'vim'\n")

	res, err := s.textDocumentDocumentSymbol(rec.context(), &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	symbols := res.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 3)

	assert.Equal(t, "f", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[0].Kind)
	require.Len(t, symbols[0].Children, 1)
	assert.Equal(t, "g", symbols[0].Children[0].Name)
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, symbols[0].Children[0].SelectionRange.Start)

	assert.Equal(t, "C", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindClass, symbols[1].Kind)
	assert.Equal(t, "$EDITOR", symbols[2].Name)
	assert.Equal(t, protocol.SymbolKindVariable, symbols[2].Kind)
}
