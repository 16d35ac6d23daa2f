// Package sequence owns a title sequence: the decoded command list, the
// ordered save entries those commands reference by position, and the
// storage backend the whole thing persists in.
//
// Mutations are synchronous and single-writer. Every mutating operation
// performs its backend I/O first and touches in-memory state only on
// success, so a failed call leaves the sequence exactly as it was. Nothing
// is flushed implicitly: a mutation that must survive needs an explicit
// Save.
package sequence

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/attractmode/titleseq/internal/invariant"
	"github.com/attractmode/titleseq/sequence/storage"
	"github.com/attractmode/titleseq/titlescript"
)

// Sequence is one attract-mode presentation: a display name, where it is
// stored, the save entries it can load, and the commands that drive it.
// Save order is significant; LOAD commands reference saves by position.
type Sequence struct {
	Name     string
	Path     string
	IsZip    bool
	Saves    []string
	Commands []titlescript.Command

	store storage.Store
}

// Load opens the sequence at path. A .parkseq file is read as a zip
// archive; anything else is treated as a directory. The script is decoded
// against the saves found in the same backend, so every LOAD command comes
// back with either a valid save index or the invalid sentinel.
func Load(path string) (*Sequence, error) {
	slog.Debug("loading title sequence", "path", path)

	isZip := strings.EqualFold(filepath.Ext(path), storage.ArchiveExtension)
	store := storeFor(path, isZip)

	script, err := store.ReadScript()
	if err != nil {
		return nil, fmt.Errorf("loading sequence %s: %w", path, err)
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("loading sequence %s: empty %s", path, storage.ScriptFileName)
	}
	saves, err := store.ListSaves()
	if err != nil {
		return nil, fmt.Errorf("loading sequence %s: %w", path, err)
	}

	return &Sequence{
		Name:     nameFromPath(path),
		Path:     path,
		IsZip:    isZip,
		Saves:    saves,
		Commands: titlescript.Decode(script, saves),
		store:    store,
	}, nil
}

// New creates an empty in-memory sequence bound to path. Nothing is
// written until Save.
func New(name, path string, isZip bool) *Sequence {
	return &Sequence{
		Name:  name,
		Path:  path,
		IsZip: isZip,
		store: storeFor(path, isZip),
	}
}

// Script reads the raw script text back from the backend. Diagnostics use
// this: the decoded command list no longer carries the filenames of LOAD
// lines that failed to resolve.
func (s *Sequence) Script() ([]byte, error) {
	script, err := s.store.ReadScript()
	if err != nil {
		return nil, fmt.Errorf("reading script of %s: %w", s.Path, err)
	}
	return script, nil
}

// Save encodes the command list and writes the script back to the backend.
func (s *Sequence) Save() error {
	script := titlescript.Encode(s.Name, s.Saves, s.Commands)
	if err := s.store.WriteScript(script); err != nil {
		return fmt.Errorf("saving sequence %s: %w", s.Path, err)
	}
	return nil
}

func storeFor(path string, isZip bool) storage.Store {
	if isZip {
		return storage.NewArchive(path)
	}
	return storage.NewDirectory(path)
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Sequence) containsSave(name string) bool {
	for _, save := range s.Saves {
		if save == name {
			return true
		}
	}
	return false
}

// mustValidIndex asserts that index addresses an existing save entry.
// Rename and remove treat a bad index as a bug in the caller, not a
// recoverable error.
func (s *Sequence) mustValidIndex(index int) {
	invariant.IndexInRange(index, len(s.Saves), "save index")
}
