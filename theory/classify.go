package theory

import (
	"fmt"

	"github.com/jsphweid/fifths/model"
	"golang.org/x/exp/slices"
)

var degreeTags = map[string]model.Tag{
	"I": model.TagTonic, "i": model.TagTonic,
	"V": model.TagDominantDegree, "v": model.TagDominantDegree,
	"IV": model.TagSubdominantDegree, "iv": model.TagSubdominantDegree,
	"ii": model.TagSupertonic, "ii°": model.TagSupertonic,
	"iii": model.TagMediant, "III": model.TagMediant,
	"vi": model.TagSubmediant, "VI": model.TagSubmediant,
	"vii°": model.TagLeadingTone, "VII": model.TagLeadingTone,
}

// DegreeTag maps a Roman numeral to the tag of its harmonic function.
func DegreeTag(degree string) model.Tag {
	if tag, ok := degreeTags[degree]; ok {
		return tag
	}
	return model.TagNone
}

// Classify tags note relative to the selected reference key under a display
// mode. The display mode only changes which relationships are reported.
func Classify(note model.Key, reference model.Key, visual model.VisualMode) (model.Tag, error) {
	if _, err := IndexOf(note); err != nil {
		return model.TagNone, err
	}
	if _, err := IndexOf(reference); err != nil {
		return model.TagNone, err
	}

	switch visual {
	case model.VisualNormal:
		return classifyNormal(note, reference)
	case model.VisualFunctional:
		return classifyFunctional(note, reference)
	case model.VisualColtrane:
		return classifyColtrane(note, reference)
	}
	return model.TagNone, fmt.Errorf("unknown visual mode %q", visual)
}

// only the major ring lights up in normal mode
func classifyNormal(note, reference model.Key) (model.Tag, error) {
	if note.Mode != model.Major {
		return model.TagNone, nil
	}
	ref, err := asMajor(reference)
	if err != nil {
		return model.TagNone, err
	}
	if note == ref {
		return model.TagTonic, nil
	}
	neighborhood, err := CircleNeighborhood(reference)
	if err != nil {
		return model.TagNone, err
	}
	if slices.Contains(neighborhood, note) {
		return model.TagInCircleNeighborhood, nil
	}
	return model.TagNone, nil
}

func classifyFunctional(note, reference model.Key) (model.Tag, error) {
	if note == reference {
		return model.TagTonic, nil
	}
	rel, err := Relative(reference)
	if err != nil {
		return model.TagNone, err
	}
	if note == rel {
		return model.TagRelative, nil
	}
	d, ok, err := ScaleDegreeOf(note, reference)
	if err != nil || !ok {
		return model.TagNone, err
	}
	return DegreeTag(d.Degree), nil
}

func classifyColtrane(note, reference model.Key) (model.Tag, error) {
	if note == reference {
		return model.TagTonic, nil
	}
	cycle, err := ColtraneCycle(reference)
	if err != nil {
		return model.TagNone, err
	}
	if slices.Contains(cycle, note) {
		return model.TagInColtraneCycle, nil
	}
	_, ok, err := ScaleDegreeOf(note, reference)
	if err != nil || !ok {
		return model.TagNone, err
	}
	return model.TagInScale, nil
}
