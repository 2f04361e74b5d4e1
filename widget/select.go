package widget

import (
	"errors"
	"fmt"
)

var ErrUnknownOption = errors.New("unknown option")

// Option is one entry of a Select.
type Option struct {
	Value string
	Label string
}

// Select is a custom dropdown backed by a hidden value.
type Select struct {
	ID      ID
	Options []Option

	panels   *Panels
	selected int
}

// NewSelect returns a select registered with panels. An empty id is
// replaced by a generated one. Nothing is selected initially.
func NewSelect(panels *Panels, id ID, options ...Option) *Select {
	if id == "" {
		id = NewID()
	}
	return &Select{ID: id, Options: options, panels: panels, selected: -1}
}

// Toggle opens or closes the option list.
func (s *Select) Toggle() { s.panels.Toggle(s.ID) }

// Open reports whether the option list is shown.
func (s *Select) Open() bool { return s.panels.IsOpen(s.ID) }

// Choose selects the option with the given value and closes the list.
func (s *Select) Choose(value string) error {
	for i, o := range s.Options {
		if o.Value == value {
			s.selected = i
			s.panels.Close(s.ID)
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", s.ID, value, ErrUnknownOption)
}

// Value is the hidden input value, empty when nothing is selected.
func (s *Select) Value() string {
	if s.selected < 0 {
		return ""
	}
	return s.Options[s.selected].Value
}

// Display is the text shown on the closed select.
func (s *Select) Display() string {
	if s.selected < 0 {
		return ""
	}
	return s.Options[s.selected].Label
}

// Selected reports whether option i is the selected one.
func (s *Select) Selected(i int) bool { return i == s.selected }
