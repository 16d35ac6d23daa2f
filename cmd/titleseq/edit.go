package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attractmode/titleseq/sequence"
	"github.com/attractmode/titleseq/titlescript"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <path>",
		Short: "Re-encode a sequence's script in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequence.Load(args[0])
			if err != nil {
				return err
			}
			if write {
				return seq.Save()
			}
			fmt.Print(string(titlescript.Encode(seq.Name, seq.Saves, seq.Commands)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back instead of printing it")
	return cmd
}

func newParkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "park",
		Short: "Add, rename, or remove a save entry of a sequence",
	}
	cmd.AddCommand(newParkAddCmd(), newParkRenameCmd(), newParkRemoveCmd())
	return cmd
}

func newParkAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <sequence> <file>",
		Short: "Import a save file into a sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequence.Load(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[1])
			}
			if err := seq.AddPark(args[1], name); err != nil {
				return err
			}
			return seq.Save()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Entry name inside the sequence (default: source filename)")
	return cmd
}

func newParkRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <sequence> <index> <new-name>",
		Short: "Rename the save entry at the given index",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, index, err := loadWithIndex(args[0], args[1])
			if err != nil {
				return err
			}
			if err := seq.RenamePark(index, args[2]); err != nil {
				return err
			}
			return seq.Save()
		},
	}
}

func newParkRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sequence> <index>",
		Short: "Delete the save entry at the given index and repair LOAD commands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, index, err := loadWithIndex(args[0], args[1])
			if err != nil {
				return err
			}
			if err := seq.RemovePark(index); err != nil {
				return err
			}
			return seq.Save()
		},
	}
}

// loadWithIndex loads a sequence and validates a user-supplied entry index
// before it reaches the mutation contract, which treats out-of-range
// indices as caller bugs.
func loadWithIndex(path, indexArg string) (*sequence.Sequence, int, error) {
	seq, err := sequence.Load(path)
	if err != nil {
		return nil, 0, err
	}
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return nil, 0, fmt.Errorf("index %q is not a number", indexArg)
	}
	if index < 0 || index >= len(seq.Saves) {
		return nil, 0, fmt.Errorf("index %d out of range: sequence has %d save(s)", index, len(seq.Saves))
	}
	return seq, index, nil
}
