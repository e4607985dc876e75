// Package selection holds the transient interaction state of the diagram:
// what is hovered, what is pinned, the display mode and which help section
// is expanded. Every transition returns a new State.
package selection

import (
	"fmt"

	"github.com/jsphweid/fifths/model"
)

type Section string

const (
	SectionNone   Section = ""
	SectionModes  Section = "modes"
	SectionTheory Section = "theory"
)

func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionModes, SectionTheory:
		return Section(s), nil
	}
	return SectionNone, fmt.Errorf("unknown section %q", s)
}

type State struct {
	Pinned  *model.Key       `json:"pinned"`
	Hovered *model.Key       `json:"hovered"`
	Visual  model.VisualMode `json:"visual"`
	Section Section          `json:"section"`
}

func New() State {
	return State{Visual: model.VisualFunctional, Section: SectionModes}
}

// Display is the key the diagram is currently about. Pinned wins over hover.
func (s State) Display() (model.Key, bool) {
	if s.Pinned != nil {
		return *s.Pinned, true
	}
	if s.Hovered != nil {
		return *s.Hovered, true
	}
	return model.Key{}, false
}

func (s State) IsPinned(k model.Key) bool {
	return s.Pinned != nil && *s.Pinned == k
}

// Hover is ignored while something is pinned.
func (s State) Hover(k model.Key) State {
	if s.Pinned != nil {
		return s
	}
	s.Hovered = &k
	return s
}

func (s State) Leave() State {
	if s.Pinned != nil {
		return s
	}
	s.Hovered = nil
	return s
}

// Click pins k, or unpins it when it is already the pinned key.
func (s State) Click(k model.Key) State {
	if s.IsPinned(k) {
		s.Pinned = nil
		return s
	}
	s.Pinned = &k
	return s
}

func (s State) SetVisual(v model.VisualMode) State {
	s.Visual = v
	return s
}

// ToggleSection collapses sec if it is open, otherwise opens it.
func (s State) ToggleSection(sec Section) State {
	if s.Section == sec {
		s.Section = SectionNone
		return s
	}
	s.Section = sec
	return s
}
