// Package storage provides the two persistence backends a title sequence
// can live in: a loose directory of files, or a single zip archive. Both
// satisfy Store; the choice is made once when the sequence is opened and
// never changes for the lifetime of the sequence.
package storage

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// ScriptFileName is the canonical name of the script inside either backend.
const ScriptFileName = "script.txt"

// ArchiveExtension marks a sequence stored as a single archive file.
const ArchiveExtension = ".parkseq"

var (
	// ErrNotFound reports a missing script or save entry.
	ErrNotFound = errors.New("entry not found")

	// ErrBackendOpen reports a directory or archive that cannot be opened
	// for the requested access.
	ErrBackendOpen = errors.New("cannot open storage backend")
)

// Store is the contract the sequence layer drives its backend through.
// Implementations report failures as errors; they never leave a
// half-written script behind a returned error.
type Store interface {
	// ListSaves enumerates the save-like entries of the backend, as
	// paths relative to the backend root, in a stable order.
	ListSaves() ([]string, error)

	// ReadScript returns the raw script text.
	ReadScript() ([]byte, error)

	// WriteScript replaces the script text.
	WriteScript(data []byte) error

	// OpenSave opens a single-use read stream over one save entry.
	OpenSave(name string) (io.ReadCloser, error)

	// AddSave stores data under name, replacing any existing entry.
	AddSave(name string, data []byte) error

	// RenameSave renames an existing entry.
	RenameSave(oldName, newName string) error

	// DeleteSave removes an existing entry.
	DeleteSave(name string) error
}

// The directory backend accepts legacy save formats alongside current ones;
// archives are expected to hold only current-format saves. The asymmetry is
// deliberate and matches how sequences have historically been distributed.
var (
	directorySaveExtensions = []string{".sc6", ".sv6", ".park", ".sv4", ".sc4"}
	archiveSaveExtensions   = []string{".sv6", ".sc6", ".park"}
)

func hasAnyExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
