package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipDir(t *testing.T) {
	cases := []struct {
		name string
		skip bool
	}{
		{name: ".git", skip: true},
		{name: "node_modules", skip: true},
		{name: "vendor", skip: true},
		{name: "__pycache__", skip: true},
		{name: "src", skip: false},
	}

	for _, tc := range cases {
		got := shouldSkipDir(tc.name)
		if got != tc.skip {
			t.Errorf("shouldSkipDir(%q) = %v, want %v", tc.name, got, tc.skip)
		}
	}
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func TestCollectSourceFiles(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, map[string]string{
		"B.xsh":                "ls\n",
		"nested/a.xsh":         "ls\n",
		"nested/.xonshrc":      "$PATH = []\n",
		"bin/tool":             "#!/usr/bin/env xonsh\necho hi\n",
		"bin/other":            "#!/bin/sh\necho hi\n",
		"notes.txt":            "ls\n",
		"vendor/skip.xsh":      "ls\n",
		".git/hooks/x.xsh":     "ls\n",
		"node_modules/y/z.xsh": "ls\n",
	})

	files, err := collectSourceFiles(tmp)
	require.NoError(t, err)
	var got []string
	for _, f := range files {
		rel, err := filepath.Rel(tmp, f.Abs)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"B.xsh", "bin/tool", "nested/.xonshrc", "nested/a.xsh"}, got)

	single, err := collectSourceFiles(filepath.Join(tmp, "notes.txt"))
	require.NoError(t, err)
	assert.Len(t, single, 1)

	_, err = collectSourceFiles(filepath.Join(tmp, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, map[string]string{
		"good.xsh":       "for f in $(ls):\n    echo @(f)\n",
		"sub/broken.xsh": "def f(:\n    pass\n",
	})

	out, errOut, err := run(t, "", "check", filepath.Join(tmp, "good.xsh"))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "1 files checked, 0 with problems")

	out, errOut, err = run(t, "", "check", "-j", "2", tmp)
	require.ErrorIs(t, err, errSyntax)
	assert.Contains(t, out, "broken.xsh:1:")
	assert.NotContains(t, out, "good.xsh")
	assert.Contains(t, errOut, "2 files checked, 1 with problems")
}
