package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attractmode/titleseq/sequence"
	"github.com/attractmode/titleseq/sequence/storage"
	"github.com/attractmode/titleseq/titlescript"
)

func newListCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir...]",
		Short: "List title sequences found in the given or configured directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dirs := args
			if len(dirs) == 0 {
				dirs = cfg.SequenceDirs
			}
			if len(dirs) == 0 {
				dirs = []string{"."}
			}

			useColor := ShouldUseColor(*noColor || cfg.NoColor)
			for _, dir := range dirs {
				for _, path := range findSequences(dir) {
					kind := "directory"
					if strings.EqualFold(filepath.Ext(path), storage.ArchiveExtension) {
						kind = "archive"
					}
					fmt.Printf("%s %s\n", path, Colorize("("+kind+")", ColorGray, useColor))
				}
			}
			return nil
		},
	}
}

// findSequences returns the sequence roots directly under dir: folders
// holding a script.txt and .parkseq archives.
func findSequences(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var found []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if _, err := os.Stat(filepath.Join(path, storage.ScriptFileName)); err == nil {
				found = append(found, path)
			}
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), storage.ArchiveExtension) {
			found = append(found, path)
		}
	}
	return found
}

func newShowCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print the saves and commands of a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequence.Load(args[0])
			if err != nil {
				return err
			}
			useColor := ShouldUseColor(*noColor)

			backend := "directory"
			if seq.IsZip {
				backend = "archive"
			}
			fmt.Printf("%s %s\n", seq.Name, Colorize("("+backend+")", ColorGray, useColor))

			fmt.Printf("\nSaves (%d):\n", len(seq.Saves))
			for i, save := range seq.Saves {
				fmt.Printf("  [%d] %s\n", i, save)
			}

			fmt.Printf("\nCommands (%d):\n", len(seq.Commands))
			for _, c := range seq.Commands {
				text := titlescript.CommandText(c, seq.Saves)
				if c.Kind == titlescript.CommandLoad && int(c.SaveIndex) >= len(seq.Saves) {
					text = Colorize(text, ColorYellow, useColor)
				}
				fmt.Printf("  %s\n", text)
			}
			return nil
		},
	}
}
