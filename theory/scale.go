package theory

import (
	"github.com/jsphweid/fifths/model"
)

// offsets are counted in fifths from the tonic's index, not in semitones
type degreeSpec struct {
	table    model.Mode
	offset   int
	degree   string
	quality  model.Quality
	function string
}

var majorDegrees = []degreeSpec{
	{model.Major, 0, "I", model.QualityMajor, "Tonic"},
	{model.Minor, 11, "ii", model.QualityMinor, "Supertonic"},
	{model.Minor, 1, "iii", model.QualityMinor, "Mediant"},
	{model.Major, 11, "IV", model.QualityMajor, "Subdominant"},
	{model.Major, 1, "V", model.QualityMajor, "Dominant"},
	{model.Minor, 0, "vi", model.QualityMinor, "Submediant"},
	{model.Minor, 2, "vii°", model.QualityDiminished, "Leading tone"},
}

var minorDegrees = []degreeSpec{
	{model.Minor, 0, "i", model.QualityMinor, "Tonic"},
	{model.Minor, 2, "ii°", model.QualityDiminished, "Supertonic"},
	{model.Major, 0, "III", model.QualityMajor, "Mediant"},
	{model.Minor, 11, "iv", model.QualityMinor, "Subdominant"},
	{model.Minor, 1, "v", model.QualityMinor, "Dominant"},
	{model.Major, 11, "VI", model.QualityMajor, "Submediant"},
	{model.Major, 1, "VII", model.QualityMajor, "Subtonic"},
}

// DiatonicScale returns the seven chords of the tonic's major or natural
// minor scale, in degree order.
func DiatonicScale(tonic model.Key) ([]model.ScaleDegree, error) {
	i, err := IndexOf(tonic)
	if err != nil {
		return nil, err
	}

	specs := majorDegrees
	if tonic.Mode == model.Minor {
		specs = minorDegrees
	}

	res := make([]model.ScaleDegree, 0, len(specs))
	for _, s := range specs {
		res = append(res, model.ScaleDegree{
			Key:      at(s.table, i+s.offset),
			Degree:   s.degree,
			Quality:  s.quality,
			Function: s.function,
		})
	}
	return res, nil
}

// ScaleDegreeOf finds note in the tonic's scale. A note outside the scale is
// ok == false; err is only set for a tonic that isn't in the tables.
func ScaleDegreeOf(note model.Key, tonic model.Key) (model.ScaleDegree, bool, error) {
	scale, err := DiatonicScale(tonic)
	if err != nil {
		return model.ScaleDegree{}, false, err
	}
	for _, d := range scale {
		if d.Key == note {
			return d, true, nil
		}
	}
	return model.ScaleDegree{}, false, nil
}
