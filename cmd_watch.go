package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/odvcencio/xonshts/editor"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file incrementally each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debounce") {
				debounce = a.cfg.WatchDebounce()
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			_, lang, err := a.entryFor(args[0], data)
			if err != nil {
				return err
			}
			w := &fileWatcher{
				name: args[0],
				doc:  editor.NewDocument(lang, a.parserOptions()...),
				out:  cmd.OutOrStdout(),
				log:  commonlog.GetLogger("xonshts.watch"),
			}
			if err := w.doc.Open(args[0]); err != nil {
				return err
			}
			w.report()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer watcher.Close()
			// Editors often replace files by renaming, so watch the directory.
			if err := watcher.Add(filepath.Dir(w.doc.Path())); err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			fire := make(chan struct{}, 1)
			var timer *time.Timer
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != w.doc.Path() || !ev.Has(fsnotify.Write|fsnotify.Create) {
						continue
					}
					if timer == nil {
						timer = time.AfterFunc(debounce, func() {
							select {
							case fire <- struct{}{}:
							default:
							}
						})
					} else {
						timer.Reset(debounce)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					w.log.Warningf("watch %s: %s", w.name, err)
				case <-fire:
					data, err := os.ReadFile(w.doc.Path())
					if err != nil {
						w.log.Warningf("read %s: %s", w.name, err)
						continue
					}
					changed, err := w.sync(string(data))
					if err != nil {
						return err
					}
					if changed {
						w.report()
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "quiet period before re-parsing (default from config)")
	return cmd
}

// fileWatcher keeps a document in step with a file on disk.
type fileWatcher struct {
	name string
	doc  *editor.Document
	out  io.Writer
	log  commonlog.Logger
}

// sync turns the difference between the document and text into a single
// edit over the span that changed.
func (w *fileWatcher) sync(text string) (bool, error) {
	old := w.doc.Text()
	start, oldEnd, newEnd := diffSpan(old, text)
	if start == oldEnd && start == newEnd {
		return false, nil
	}
	if err := w.doc.ApplyEdit(start, old[start:oldEnd], text[start:newEnd]); err != nil {
		return false, err
	}
	return true, nil
}

func (w *fileWatcher) report() {
	tree := w.doc.Tree()
	st := tree.Stats()
	diags := w.doc.Diagnostics()
	fmt.Fprintf(w.out, "%s: revision %d, %d tokens lexed, %d nodes reused, %d created, %d problems\n",
		w.name, tree.Revision(), st.TokensLexed, st.NodesReused, st.NodesCreated, len(diags))
	_ = reportDiagnostics(w.out, w.name, diags)
}

// diffSpan returns the differing middle of a and b: a[start:aEnd] was
// replaced by b[start:bEnd].
func diffSpan(a, b string) (start, aEnd, bEnd int) {
	n := min(len(a), len(b))
	for start < n && a[start] == b[start] {
		start++
	}
	aEnd, bEnd = len(a), len(b)
	for aEnd > start && bEnd > start && a[aEnd-1] == b[bEnd-1] {
		aEnd--
		bEnd--
	}
	return start, aEnd, bEnd
}
