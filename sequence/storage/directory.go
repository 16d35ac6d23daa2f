package storage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Directory stores a sequence as a folder holding script.txt plus loose
// save files. Entry names are slash-separated paths relative to the folder,
// since saves may sit in subdirectories.
type Directory struct {
	root string
}

// NewDirectory returns a backend rooted at the given folder. The folder is
// not required to exist yet; operations report errors lazily.
func NewDirectory(root string) *Directory {
	return &Directory{root: root}
}

func (d *Directory) ListSaves() ([]string, error) {
	var saves []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !hasAnyExtension(entry.Name(), directorySaveExtensions) {
			return nil
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		saves = append(saves, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scanning %s: %w", d.root, ErrBackendOpen)
		}
		return nil, fmt.Errorf("scanning %s: %w", d.root, err)
	}
	sort.Strings(saves)
	return saves, nil
}

func (d *Directory) ReadScript() ([]byte, error) {
	path := filepath.Join(d.root, ScriptFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func (d *Directory) WriteScript(data []byte) error {
	path := filepath.Join(d.root, ScriptFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (d *Directory) OpenSave(name string) (io.ReadCloser, error) {
	path := filepath.Join(d.root, filepath.FromSlash(name))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

func (d *Directory) AddSave(name string, data []byte) error {
	path := filepath.Join(d.root, filepath.FromSlash(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (d *Directory) RenameSave(oldName, newName string) error {
	oldPath := filepath.Join(d.root, filepath.FromSlash(oldName))
	newPath := filepath.Join(d.root, filepath.FromSlash(newName))
	if err := os.Rename(oldPath, newPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", oldPath, ErrNotFound)
		}
		return fmt.Errorf("renaming %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

func (d *Directory) DeleteSave(name string) error {
	path := filepath.Join(d.root, filepath.FromSlash(name))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}
