package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/attractmode/titleseq/sequence"
	"github.com/attractmode/titleseq/sequence/storage"
	"github.com/attractmode/titleseq/titlescript"
)

func newCheckCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Report LOAD commands whose save reference is lost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useColor := ShouldUseColor(*noColor)
			lost, err := runCheck(args[0], useColor)
			if err != nil {
				return err
			}
			if lost > 0 {
				return fmt.Errorf("%d lost save reference(s)", lost)
			}
			return nil
		},
	}
}

// runCheck prints a report for one sequence and returns how many LOAD
// references failed to resolve.
func runCheck(path string, useColor bool) (int, error) {
	seq, err := sequence.Load(path)
	if err != nil {
		return 0, err
	}

	// Decoding collapses lost references into sentinels and forgets the
	// filename the author wrote, so diagnose against the raw script.
	raw, err := seq.Script()
	if err != nil {
		return 0, err
	}
	lost := titlescript.FindLostReferences(raw, seq.Saves)

	if len(lost) == 0 {
		fmt.Printf("%s %s\n", Colorize("ok", ColorGreen, useColor), path)
		return 0, nil
	}

	for _, ref := range lost {
		msg := fmt.Sprintf("line %d: LOAD %s matches no save entry", ref.Line, ref.Name)
		if hint := closestSaveName(ref.Name, seq.Saves); hint != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}
		fmt.Printf("%s %s\n", Colorize("lost", ColorRed, useColor), msg)
	}
	return len(lost), nil
}

// closestSaveName picks the best fuzzy match for a lost filename, or ""
// when nothing comes close.
func closestSaveName(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		// Return the best match (lowest distance)
		return ranks[0].Target
	}
	return ""
}

func newWatchCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-check a sequence whenever it changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			useColor := ShouldUseColor(*noColor)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			// Archives change as a single file, so watch their parent.
			watchPath := path
			if strings.EqualFold(filepath.Ext(path), storage.ArchiveExtension) {
				watchPath = filepath.Dir(path)
			}
			if err := watcher.Add(watchPath); err != nil {
				return fmt.Errorf("watching %s: %w", watchPath, err)
			}

			if _, err := runCheck(path, useColor); err != nil {
				fmt.Println(err)
			}

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
						continue
					}
					slog.Debug("sequence changed", "event", event.String())
					if _, err := runCheck(path, useColor); err != nil {
						fmt.Println(err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Printf("watch error: %v\n", err)
				}
			}
		},
	}
}
