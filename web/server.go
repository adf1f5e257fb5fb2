// Package web serves incremental xonsh parsing over a WebSocket JSON-RPC
// protocol. A client opens a session with some text, sends edits as byte
// ranges and asks for the tree, which is only re-sent when its digest
// changed.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tliron/commonlog"

	"github.com/odvcencio/xonshts/editor"
	"github.com/odvcencio/xonshts/export"
	"github.com/odvcencio/xonshts/gotreesitter"
)

//go:embed static/*
var staticFS embed.FS

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeServerError    = -32000
)

var errUnknownSession = errors.New("unknown session")

// Server is the HTTP handler for the parse service: /ws speaks JSON-RPC over
// WebSocket and every other path serves the bundled page.
type Server struct {
	lang       *gotreesitter.Language
	parserOpts []gotreesitter.ParserOption
	highlights gotreesitter.CaptureRules
	log        commonlog.Logger

	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  []*wsClient
	sessions map[string]*session
}

// Option configures a Server.
type Option func(*Server)

// WithParserOptions sets the options of every session's parser.
func WithParserOptions(opts ...gotreesitter.ParserOption) Option {
	return func(s *Server) { s.parserOpts = opts }
}

// WithHighlights sets the capture rules used by the highlight method.
func WithHighlights(rules gotreesitter.CaptureRules) Option {
	return func(s *Server) { s.highlights = rules }
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// session is one document being edited by a client.
type session struct {
	id    string
	owner *wsClient
	mu    sync.Mutex
	doc   *editor.Document
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewServer creates a parse service for lang.
func NewServer(lang *gotreesitter.Language, opts ...Option) *Server {
	s := &Server{
		lang:     lang,
		log:      commonlog.GetLogger("xonshts.web"),
		sessions: make(map[string]*session),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/ws" {
		s.handleWebSocket(w, r)
		return
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		http.Error(w, "static files unavailable", http.StatusInternalServerError)
		return
	}
	http.FileServer(http.FS(sub)).ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("websocket upgrade: %s", err)
		return
	}
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.mu.Unlock()
	s.log.Debugf("client connected from %s", r.RemoteAddr)

	defer func() {
		conn.Close()
		s.dropClient(client)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			_ = client.write(rpcResponse{Error: &rpcError{Code: codeParseError, Message: err.Error()}})
			continue
		}
		if err := client.write(s.handleRPC(client, req)); err != nil {
			s.log.Warningf("write response: %s", err)
			return
		}
	}
}

// dropClient forgets a disconnected client and closes its sessions.
func (s *Server) dropClient(client *wsClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clients {
		if c == client {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	for id, sess := range s.sessions {
		if sess.owner == client {
			delete(s.sessions, id)
		}
	}
}

func (s *Server) handleRPC(client *wsClient, req rpcRequest) rpcResponse {
	var (
		result any
		err    error
	)
	switch req.Method {
	case "open":
		result, err = s.rpcOpen(client, req.Params)
	case "edit":
		result, err = s.rpcEdit(req.Params)
	case "tree":
		result, err = s.rpcTree(req.Params)
	case "highlight":
		result, err = s.rpcHighlight(req.Params)
	case "folds":
		result, err = s.rpcFolds(req.Params)
	case "close":
		result, err = s.rpcClose(req.Params)
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}
	}
	if err != nil {
		code := codeServerError
		var perr *paramsError
		if errors.As(err, &perr) {
			code = codeInvalidParams
		}
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: code, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: result}
}

type paramsError struct{ err error }

func (e *paramsError) Error() string { return "invalid params: " + e.err.Error() }

func (e *paramsError) Unwrap() error { return e.err }

func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &paramsError{err}
	}
	return nil
}

type sessionParams struct {
	Session string `json:"session"`
}

func (s *Server) session(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownSession, id)
	}
	return sess, nil
}

// treeState is returned by methods that change a session's tree.
type treeState struct {
	Session     string         `json:"session"`
	Revision    uint64         `json:"revision"`
	Digest      string         `json:"digest"`
	HasError    bool           `json:"hasError"`
	Diagnostics []diagnostic   `json:"diagnostics"`
	Stats       parseStatsJSON `json:"stats"`
}

type diagnostic struct {
	StartByte uint32 `json:"startByte"`
	EndByte   uint32 `json:"endByte"`
	Message   string `json:"message"`
	Missing   bool   `json:"missing,omitempty"`
}

type parseStatsJSON struct {
	TokensLexed    int `json:"tokensLexed"`
	TokensReplayed int `json:"tokensReplayed"`
	NodesReused    int `json:"nodesReused"`
	NodesCreated   int `json:"nodesCreated"`
	RecoverySteps  int `json:"recoverySteps"`
}

func stateOf(sess *session) (treeState, error) {
	tree := sess.doc.Tree()
	digest, err := export.TreeDigest(tree)
	if err != nil {
		return treeState{}, err
	}
	stats := tree.Stats()
	st := treeState{
		Session:     sess.id,
		Revision:    tree.Revision(),
		Digest:      digest.String(),
		HasError:    tree.RootNode().HasError(),
		Diagnostics: []diagnostic{},
		Stats: parseStatsJSON{
			TokensLexed:    stats.TokensLexed,
			TokensReplayed: stats.TokensReplayed,
			NodesReused:    stats.NodesReused,
			NodesCreated:   stats.NodesCreated,
			RecoverySteps:  stats.RecoverySteps,
		},
	}
	for _, d := range sess.doc.Diagnostics() {
		st.Diagnostics = append(st.Diagnostics, diagnostic{
			StartByte: d.Range.StartByte,
			EndByte:   d.Range.EndByte,
			Message:   d.Message,
			Missing:   d.Missing,
		})
	}
	return st, nil
}

func (s *Server) rpcOpen(client *wsClient, raw json.RawMessage) (any, error) {
	var p struct {
		Text string `json:"text"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	sess := &session{
		id:    uuid.NewString(),
		owner: client,
		doc:   editor.NewDocument(s.lang, s.parserOpts...),
	}
	sess.doc.SetText(p.Text)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.log.Debugf("session %s opened (%d bytes)", sess.id, len(p.Text))
	return stateOf(sess)
}

func (s *Server) rpcEdit(raw json.RawMessage) (any, error) {
	var p struct {
		sessionParams
		Start  *int   `json:"start"`
		OldEnd *int   `json:"oldEnd"`
		Text   string `json:"text"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	if p.Start == nil || p.OldEnd == nil {
		return nil, &paramsError{errors.New("start and oldEnd are required")}
	}
	sess, err := s.session(p.Session)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.doc.ReplaceRange(editor.Range{Start: *p.Start, End: *p.OldEnd}, p.Text); err != nil {
		return nil, &paramsError{err}
	}
	st, err := stateOf(sess)
	if err != nil {
		return nil, err
	}
	s.Broadcast("session/changed", map[string]any{
		"session":  sess.id,
		"revision": st.Revision,
		"digest":   st.Digest,
	})
	return st, nil
}

func (s *Server) rpcTree(raw json.RawMessage) (any, error) {
	var p struct {
		sessionParams
		Format      string `json:"format"`
		IfNoneMatch string `json:"ifNoneMatch"`
		Anonymous   bool   `json:"anonymous"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	sess, err := s.session(p.Session)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	tree := sess.doc.Tree()
	digest, err := export.TreeDigest(tree)
	if err != nil {
		return nil, err
	}
	res := map[string]any{"digest": digest.String(), "revision": tree.Revision()}
	if p.IfNoneMatch == digest.String() {
		res["unchanged"] = true
		return res, nil
	}
	switch p.Format {
	case "", "sexpr":
		res["tree"] = export.SExpression(tree)
	case "json":
		res["tree"] = export.FromTree(tree, export.Options{Anonymous: p.Anonymous, Text: true})
	default:
		return nil, &paramsError{fmt.Errorf("unknown format %q", p.Format)}
	}
	return res, nil
}

func (s *Server) rpcHighlight(raw json.RawMessage) (any, error) {
	var p sessionParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	sess, err := s.session(p.Session)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	type span struct {
		Start   uint32 `json:"start"`
		End     uint32 `json:"end"`
		Capture string `json:"capture"`
	}
	h := gotreesitter.NewHighlighter(s.lang, s.highlights)
	spans := []span{}
	for _, r := range h.HighlightTree(sess.doc.Tree()) {
		spans = append(spans, span{Start: r.StartByte, End: r.EndByte, Capture: r.Capture})
	}
	return map[string]any{"ranges": spans}, nil
}

func (s *Server) rpcFolds(raw json.RawMessage) (any, error) {
	var p sessionParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	sess, err := s.session(p.Session)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	type fold struct {
		StartLine int    `json:"startLine"`
		EndLine   int    `json:"endLine"`
		Kind      string `json:"kind"`
	}
	folds := []fold{}
	for _, r := range editor.FoldRegionsFromTree(sess.doc.Tree()) {
		folds = append(folds, fold{StartLine: r.StartLine, EndLine: r.EndLine, Kind: r.Kind})
	}
	return map[string]any{"folds": folds}, nil
}

func (s *Server) rpcClose(raw json.RawMessage) (any, error) {
	var p sessionParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	s.mu.Lock()
	_, ok := s.sessions[p.Session]
	delete(s.sessions, p.Session)
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownSession, p.Session)
	}
	return map[string]string{"status": "closed"}, nil
}

// Broadcast sends a notification to all connected WebSocket clients.
func (s *Server) Broadcast(method string, params any) {
	s.mu.Lock()
	clients := append([]*wsClient(nil), s.clients...)
	s.mu.Unlock()

	msg := map[string]any{"method": method, "params": params}
	for _, c := range clients {
		if err := c.write(msg); err != nil {
			s.log.Debugf("broadcast %s: %s", method, err)
		}
	}
}
