package sequence

import (
	"fmt"
	"os"

	"github.com/attractmode/titleseq/titlescript"
)

// AddPark imports the save file at srcPath into the sequence's backend
// under name and appends name to the save list.
//
// The duplicate check compares srcPath against the names already in the
// save list. That is how the format has always behaved: the comparison is
// against the source path, not the destination name, so importing the same
// file twice under the same name still appends a second entry. Callers that
// care should check for the name themselves before calling.
func (s *Sequence) AddPark(srcPath, name string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("adding park %s: %w", srcPath, err)
	}
	if err := s.store.AddSave(name, data); err != nil {
		return fmt.Errorf("adding park %s: %w", srcPath, err)
	}
	if !s.containsSave(srcPath) {
		s.Saves = append(s.Saves, name)
	}
	return nil
}

// RenamePark renames the save entry at index. Positions do not change, so
// LOAD commands keep their indices. index must be valid; an out-of-range
// index panics.
func (s *Sequence) RenamePark(index int, name string) error {
	s.mustValidIndex(index)

	if err := s.store.RenameSave(s.Saves[index], name); err != nil {
		return fmt.Errorf("renaming park %s: %w", s.Saves[index], err)
	}
	s.Saves[index] = name
	return nil
}

// RemovePark deletes the save entry at index from the backend and the save
// list, then repairs every LOAD command in one full pass: a command that
// referenced the removed entry loses its reference (invalid sentinel), and
// commands referencing later entries shift down with them. index must be
// valid; an out-of-range index panics.
func (s *Sequence) RemovePark(index int) error {
	s.mustValidIndex(index)

	if err := s.store.DeleteSave(s.Saves[index]); err != nil {
		return fmt.Errorf("removing park %s: %w", s.Saves[index], err)
	}
	s.Saves = append(s.Saves[:index], s.Saves[index+1:]...)

	for i := range s.Commands {
		c := &s.Commands[i]
		if c.Kind != titlescript.CommandLoad || c.SaveIndex == titlescript.SaveIndexInvalid {
			continue
		}
		if int(c.SaveIndex) == index {
			c.SaveIndex = titlescript.SaveIndexInvalid
		} else if int(c.SaveIndex) > index {
			c.SaveIndex--
		}
	}
	return nil
}
