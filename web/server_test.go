package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

type testClient struct {
	t    *testing.T
	conn *websocket.Conn
	id   int
	// notifications received while waiting for responses
	notes []map[string]any
}

func dial(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &testClient{t: t, conn: conn}
}

type response struct {
	ID     *int            `json:"id"`
	Method string          `json:"method"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *testClient) call(method string, params any) response {
	c.t.Helper()
	c.id++
	require.NoError(c.t, c.conn.WriteJSON(map[string]any{"id": c.id, "method": method, "params": params}))
	for {
		var resp response
		require.NoError(c.t, c.conn.ReadJSON(&resp))
		if resp.Method != "" {
			var note map[string]any
			raw, _ := json.Marshal(resp)
			_ = json.Unmarshal(raw, &note)
			c.notes = append(c.notes, note)
			continue
		}
		require.NotNil(c.t, resp.ID)
		require.Equal(c.t, c.id, *resp.ID)
		return resp
	}
}

func (c *testClient) result(method string, params any, v any) {
	c.t.Helper()
	resp := c.call(method, params)
	require.Nil(c.t, resp.Error, "%s failed: %+v", method, resp.Error)
	require.NoError(c.t, json.Unmarshal(resp.Result, v))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(grammars.XonshLanguage(), WithHighlights(grammars.XonshHighlights)))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenEditTree(t *testing.T) {
	c := dial(t, newTestServer(t))

	var opened treeState
	c.result("open", map[string]any{"text": "x = 1\n"}, &opened)
	require.NotEmpty(t, opened.Session)
	assert.False(t, opened.HasError)
	assert.Len(t, opened.Digest, 64)

	var tree map[string]any
	c.result("tree", map[string]any{"session": opened.Session}, &tree)
	assert.Equal(t, "(module (expression_statement (assignment left: (identifier) right: (integer))))", tree["tree"])

	var edited treeState
	c.result("edit", map[string]any{"session": opened.Session, "start": 4, "oldEnd": 5, "text": "$(ls"}, &edited)
	assert.True(t, edited.HasError)
	assert.NotEmpty(t, edited.Diagnostics)
	assert.NotEqual(t, opened.Digest, edited.Digest)
	assert.Greater(t, edited.Revision, opened.Revision)

	c.result("edit", map[string]any{"session": opened.Session, "start": 8, "oldEnd": 8, "text": ")"}, &edited)
	assert.False(t, edited.HasError)
	assert.Empty(t, edited.Diagnostics)

	want := gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte("x = $(ls)\n")).String()
	c.result("tree", map[string]any{"session": opened.Session, "format": "sexpr"}, &tree)
	assert.Equal(t, want, tree["tree"])
	assert.Equal(t, edited.Digest, tree["digest"])
}

func TestTreeSkipsUnchangedDigest(t *testing.T) {
	c := dial(t, newTestServer(t))
	var opened treeState
	c.result("open", map[string]any{"text": "ls -la\n"}, &opened)

	var tree map[string]any
	c.result("tree", map[string]any{"session": opened.Session, "ifNoneMatch": opened.Digest}, &tree)
	assert.Equal(t, true, tree["unchanged"])
	assert.NotContains(t, tree, "tree")

	c.result("tree", map[string]any{"session": opened.Session, "format": "json"}, &tree)
	node, ok := tree["tree"].(map[string]any)
	require.True(t, ok, "json tree is an object")
	assert.Equal(t, "module", node["kind"])
}

func TestHighlightAndFolds(t *testing.T) {
	c := dial(t, newTestServer(t))
	var opened treeState
	c.result("open", map[string]any{"text": "if x:\n    # note\n    pass\n"}, &opened)

	var hl struct {
		Ranges []struct {
			Start, End uint32
			Capture    string
		}
	}
	c.result("highlight", map[string]any{"session": opened.Session}, &hl)
	var captures []string
	for _, r := range hl.Ranges {
		captures = append(captures, r.Capture)
	}
	assert.Contains(t, captures, "keyword")
	assert.Contains(t, captures, "comment")

	var folds struct {
		Folds []struct {
			StartLine, EndLine int
			Kind               string
		}
	}
	c.result("folds", map[string]any{"session": opened.Session}, &folds)
	require.Len(t, folds.Folds, 1)
	assert.Equal(t, 0, folds.Folds[0].StartLine)
	assert.Equal(t, 2, folds.Folds[0].EndLine)
	assert.Equal(t, "if_statement", folds.Folds[0].Kind)
}

func TestRPCErrors(t *testing.T) {
	c := dial(t, newTestServer(t))

	resp := c.call("bogus", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)

	resp = c.call("tree", map[string]any{"session": "missing"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeServerError, resp.Error.Code)

	var opened treeState
	c.result("open", map[string]any{"text": "x\n"}, &opened)
	resp = c.call("edit", map[string]any{"session": opened.Session, "start": 5, "oldEnd": 9, "text": ""})
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)

	resp = c.call("edit", map[string]any{"session": opened.Session, "text": "y"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)

	resp = c.call("tree", map[string]any{"session": opened.Session, "format": "xml"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)
}

func TestClose(t *testing.T) {
	c := dial(t, newTestServer(t))
	var opened treeState
	c.result("open", map[string]any{"text": "x\n"}, &opened)

	var closed map[string]string
	c.result("close", map[string]any{"session": opened.Session}, &closed)
	assert.Equal(t, "closed", closed["status"])

	resp := c.call("close", map[string]any{"session": opened.Session})
	require.NotNil(t, resp.Error)
}

func TestEditBroadcastsChange(t *testing.T) {
	srv := newTestServer(t)
	editor, watcher := dial(t, srv), dial(t, srv)

	var opened treeState
	editor.result("open", map[string]any{"text": "x\n"}, &opened)
	// Make sure the watcher is registered before the edit.
	watcher.call("bogus", nil)

	var edited treeState
	editor.result("edit", map[string]any{"session": opened.Session, "start": 0, "oldEnd": 1, "text": "y"}, &edited)

	var note map[string]any
	require.NoError(t, watcher.conn.ReadJSON(&note))
	assert.Equal(t, "session/changed", note["method"])
	params := note["params"].(map[string]any)
	assert.Equal(t, opened.Session, params["session"])
	assert.Equal(t, edited.Digest, params["digest"])
}

func TestServesPage(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/ws")
}
