package sequence

import (
	"fmt"
	"io"
)

// ParkHandle is a single-use read stream over one save entry. The directory
// backend hands out a file stream; the archive backend a memory reader over
// the entry bytes. Holding a handle open across a rename or remove of the
// same entry is undefined; acquire, read, close.
type ParkHandle struct {
	Reader   io.ReadCloser
	HintPath string
}

func (h *ParkHandle) Close() error {
	return h.Reader.Close()
}

// GetParkHandle opens the save entry at index for reading.
func (s *Sequence) GetParkHandle(index int) (*ParkHandle, error) {
	if index < 0 || index >= len(s.Saves) {
		return nil, fmt.Errorf("park handle: index %d out of range [0, %d)", index, len(s.Saves))
	}
	name := s.Saves[index]
	rc, err := s.store.OpenSave(name)
	if err != nil {
		return nil, fmt.Errorf("park handle for %s: %w", name, err)
	}
	return &ParkHandle{Reader: rc, HintPath: name}, nil
}
