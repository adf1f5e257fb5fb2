package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/editor"
	"github.com/odvcencio/xonshts/grammars"
)

// sourceFile is a file to check: Rel is the path as shown to the user.
type sourceFile struct {
	Rel string
	Abs string
}

func shouldSkipDir(name string) bool {
	switch name {
	case ".git", "node_modules", "vendor", "__pycache__":
		return true
	default:
		return false
	}
}

// collectSourceFiles walks root for files a registered language claims by
// name or shebang. A root that is a file is returned as is.
func collectSourceFiles(root string) ([]sourceFile, error) {
	clean := filepath.Clean(root)
	info, err := os.Stat(clean)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []sourceFile{{Rel: filepath.ToSlash(clean), Abs: clean}}, nil
	}

	var out []sourceFile
	err = filepath.WalkDir(clean, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != clean && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if grammars.DetectLanguage(path) == nil && !hasShebang(path) {
			return nil
		}
		out = append(out, sourceFile{
			Rel: filepath.ToSlash(path),
			Abs: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Rel) < strings.ToLower(out[j].Rel)
	})
	return out, nil
}

// hasShebang reports whether the first line of the file names a registered
// interpreter.
func hasShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 128)
	n, _ := f.Read(buf)
	line, _, _ := strings.Cut(string(buf[:n]), "\n")
	return grammars.DetectLanguageByShebang(strings.TrimRight(line, "\r")) != nil
}

type checkResult struct {
	file  sourceFile
	diags []editor.Diagnostic
	err   error
}

func newCheckCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse every xonsh file under the given paths and report syntax errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			var files []sourceFile
			for _, root := range args {
				found, err := collectSourceFiles(root)
				if err != nil {
					return err
				}
				files = append(files, found...)
			}
			if jobs < 1 {
				jobs = runtime.GOMAXPROCS(0)
			}

			results := make([]checkResult, len(files))
			sem := make(chan struct{}, jobs)
			var wg sync.WaitGroup
			for i, f := range files {
				i, f := i, f
				wg.Add(1)
				sem <- struct{}{}
				go func() {
					defer wg.Done()
					defer func() { <-sem }()
					results[i] = a.checkFile(f)
				}()
			}
			wg.Wait()

			out := cmd.OutOrStdout()
			var problems, failed int
			for _, r := range results {
				if r.err != nil {
					return fmt.Errorf("%s: %w", r.file.Rel, r.err)
				}
				if len(r.diags) > 0 {
					failed++
					problems += len(r.diags)
					_ = reportDiagnostics(out, r.file.Rel, r.diags)
				}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d files checked, %d with problems\n", len(files), failed)
			if problems > 0 {
				return fmt.Errorf("%d %w in %d files", problems, errSyntax, failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files parsed at once (default GOMAXPROCS)")
	return cmd
}

func (a *app) checkFile(f sourceFile) checkResult {
	data, err := os.ReadFile(f.Abs)
	if err != nil {
		return checkResult{file: f, err: err}
	}
	_, lang, err := a.entryFor(f.Abs, data)
	if err != nil {
		return checkResult{file: f, err: err}
	}
	doc := editor.NewDocument(lang, a.parserOptions()...)
	doc.SetText(string(data))
	return checkResult{file: f, diags: doc.Diagnostics()}
}
