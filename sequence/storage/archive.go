package storage

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Archive stores a sequence as a single zip file whose entries are
// script.txt plus the saves. Zip has no in-place update, so every mutation
// rewrites the container: entries are read out, changed in memory, and
// written to a temporary file that replaces the original only on success.
// A failed mutation leaves the old archive untouched.
type Archive struct {
	path string
}

// NewArchive returns a backend over the archive at path. The archive is
// opened per operation, mirroring how a mutating caller reopens it in
// write mode each time.
func NewArchive(path string) *Archive {
	return &Archive{path: path}
}

type archiveEntry struct {
	name string
	data []byte
}

func (a *Archive) ListSaves() ([]string, error) {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.path, ErrBackendOpen)
	}
	defer r.Close()

	var saves []string
	for _, f := range r.File {
		if hasAnyExtension(f.Name, archiveSaveExtensions) {
			saves = append(saves, f.Name)
		}
	}
	return saves, nil
}

func (a *Archive) ReadScript() ([]byte, error) {
	data, err := a.readEntry(ScriptFileName)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a *Archive) WriteScript(data []byte) error {
	return a.rewrite(func(entries []archiveEntry) ([]archiveEntry, error) {
		return setEntry(entries, ScriptFileName, data), nil
	})
}

// OpenSave reads the whole entry into memory and hands back a reader over
// it, so the handle stays usable after the archive is closed.
func (a *Archive) OpenSave(name string) (io.ReadCloser, error) {
	data, err := a.readEntry(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (a *Archive) AddSave(name string, data []byte) error {
	return a.rewrite(func(entries []archiveEntry) ([]archiveEntry, error) {
		return setEntry(entries, name, data), nil
	})
}

func (a *Archive) RenameSave(oldName, newName string) error {
	return a.rewrite(func(entries []archiveEntry) ([]archiveEntry, error) {
		for i := range entries {
			if entries[i].name == oldName {
				entries[i].name = newName
				return entries, nil
			}
		}
		return nil, fmt.Errorf("%s in %s: %w", oldName, a.path, ErrNotFound)
	})
}

func (a *Archive) DeleteSave(name string) error {
	return a.rewrite(func(entries []archiveEntry) ([]archiveEntry, error) {
		for i := range entries {
			if entries[i].name == name {
				return append(entries[:i], entries[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%s in %s: %w", name, a.path, ErrNotFound)
	})
}

func (a *Archive) readEntry(name string) ([]byte, error) {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.path, ErrBackendOpen)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in %s: %w", name, a.path, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s in %s: %w", name, a.path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s in %s: %w", name, a.path, ErrNotFound)
}

// rewrite loads every entry, applies mutate, and atomically swaps in a new
// archive. A missing archive is treated as empty so the first write can
// create it.
func (a *Archive) rewrite(mutate func([]archiveEntry) ([]archiveEntry, error)) error {
	entries, err := a.readAllEntries()
	if err != nil {
		return err
	}

	entries, err = mutate(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), ".parkseq-*")
	if err != nil {
		return fmt.Errorf("creating temporary archive: %w", err)
	}
	tmpPath := tmp.Name()

	w := zip.NewWriter(tmp)
	for _, entry := range entries {
		ew, err := w.Create(entry.name)
		if err == nil {
			_, err = ew.Write(entry.data)
		}
		if err != nil {
			w.Close()
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing %s to %s: %w", entry.name, a.path, err)
		}
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("finalizing %s: %w", a.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalizing %s: %w", a.path, err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", a.path, err)
	}
	return nil
}

func (a *Archive) readAllEntries() ([]archiveEntry, error) {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", a.path, ErrBackendOpen)
	}
	defer r.Close()

	var entries []archiveEntry
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in %s: %w", f.Name, a.path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s in %s: %w", f.Name, a.path, err)
		}
		entries = append(entries, archiveEntry{name: f.Name, data: data})
	}
	return entries, nil
}

func setEntry(entries []archiveEntry, name string, data []byte) []archiveEntry {
	for i := range entries {
		if entries[i].name == name {
			entries[i].data = data
			return entries
		}
	}
	return append(entries, archiveEntry{name: name, data: data})
}
