package model

import "fmt"

type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

func (m Mode) Other() Mode {
	if m == Major {
		return Minor
	}
	return Major
}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Major, Minor:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Key is one entry of the major or minor table. Label is the display string
// verbatim, including dual spellings like "F♯/G♭".
type Key struct {
	Label string `json:"label"`
	Mode  Mode   `json:"mode"`
}

func (k Key) String() string {
	return fmt.Sprintf("%v (%v)", k.Label, k.Mode)
}
