// Package style turns classification tags and selection state into the
// colours and strokes the diagram is drawn with.
package style

import (
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/jsphweid/fifths/theory"
)

const (
	IdleMajor = "#e0e0e0"
	IdleMinor = "#d0d0d0"

	StrokeColtrane = "#0066cc"
	StrokePinned   = "#d35400"
	StrokeActive   = "#333"
	StrokeIdle     = "#999"
)

var fills = map[model.Tag]string{
	model.TagTonic:                "#4a90e2",
	model.TagDominantDegree:       "#e74c3c",
	model.TagSubdominantDegree:    "#2ecc71",
	model.TagSupertonic:           "#f39c12",
	model.TagSubmediant:           "#3498db",
	model.TagMediant:              "#e67e22",
	model.TagLeadingTone:          "#95a5a6",
	model.TagRelative:             "#9b59b6",
	model.TagInCircleNeighborhood: "#90c890",
	model.TagInScale:              "#b0b0b0",
}

func Fill(tag model.Tag, mode model.Mode) string {
	if fill, ok := fills[tag]; ok {
		return fill
	}
	if mode == model.Minor {
		return IdleMinor
	}
	return IdleMajor
}

type Appearance struct {
	Tag         model.Tag `json:"tag"`
	Fill        string    `json:"fill"`
	Stroke      string    `json:"stroke"`
	StrokeWidth int       `json:"stroke_width"`
	Radius      int       `json:"radius"`
	Active      bool      `json:"active"`
	Pinned      bool      `json:"pinned"`

	// Roman numeral, only set on active scale members
	Badge string `json:"badge,omitempty"`
}

func radius(mode model.Mode, active bool) int {
	r := 28
	if mode == model.Minor {
		r = 24
	}
	if active {
		r += 4
	}
	return r
}

// ringMatches says whether a chord of quality q belongs on the ring of mode.
func ringMatches(mode model.Mode, q model.Quality) bool {
	if mode == model.Major {
		return q == model.QualityMajor
	}
	return q == model.QualityMinor || q == model.QualityDiminished
}

// Appear decides how note is drawn under the given selection state.
func Appear(note model.Key, s selection.State) (Appearance, error) {
	a := Appearance{
		Tag:         model.TagNone,
		Fill:        Fill(model.TagNone, note.Mode),
		Stroke:      StrokeIdle,
		StrokeWidth: 2,
		Radius:      radius(note.Mode, false),
		Pinned:      s.IsPinned(note),
	}

	display, ok := s.Display()
	if !ok {
		return a, nil
	}

	tag, err := theory.Classify(note, display, s.Visual)
	if err != nil {
		return a, err
	}
	a.Tag = tag
	a.Fill = Fill(tag, note.Mode)

	rel, err := theory.Relative(display)
	if err != nil {
		return a, err
	}
	degree, inScale, err := theory.ScaleDegreeOf(note, display)
	if err != nil {
		return a, err
	}
	a.Active = note == display || note == rel || (inScale && ringMatches(note.Mode, degree.Quality))
	a.Radius = radius(note.Mode, a.Active)
	if a.Active && inScale {
		a.Badge = degree.Degree
	}

	switch {
	case tag == model.TagInColtraneCycle:
		a.Stroke, a.StrokeWidth = StrokeColtrane, 4
	case a.Pinned:
		a.Stroke, a.StrokeWidth = StrokePinned, 4
	case a.Active:
		a.Stroke, a.StrokeWidth = StrokeActive, 3
	}
	return a, nil
}
