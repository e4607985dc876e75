package chord

import (
	"bytes"
	"testing"

	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/model"
	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	cases := []struct {
		notes   model.Notes
		label   string
		quality model.Quality
	}{
		{model.Notes{60, 64, 67}, "C", model.QualityMajor},
		{model.Notes{64, 67, 72}, "C", model.QualityMajor},
		{model.Notes{57, 60, 64}, "Am", model.QualityMinor},
		{model.Notes{71, 74, 77}, "Bm", model.QualityDiminished},
		{model.Notes{66, 70, 73}, "F♯/G♭", model.QualityMajor},
		{model.Notes{63, 66, 70, 75}, "D♯m/E♭m", model.QualityMinor},
	}
	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			key, quality, ok := Identify(c.notes)
			assert.True(t, ok)
			assert.Equal(t, c.label, key.Label)
			assert.Equal(t, c.quality, quality)
		})
	}
}

func TestIdentifyRejectsNonTriads(t *testing.T) {
	for _, notes := range []model.Notes{{60}, {60, 64}, {60, 64, 68}, {60, 62, 64, 67}} {
		_, _, ok := Identify(notes)
		assert.False(t, ok)
	}
}

func TestExportedScaleAnalyzesBackToItsDegrees(t *testing.T) {
	tonic := model.Key{Label: "E♭", Mode: model.Major}
	var buf bytes.Buffer
	assert.NoError(t, midi.WriteScale(&buf, tonic, midi.DefaultOptions()))

	s, err := midi.Read(&buf)
	assert.NoError(t, err)

	chords := GetChords(s)
	assert.Len(t, chords, 7)

	analyses, err := Analyze(chords, tonic)

	assert := assert.New(t)
	assert.NoError(err)
	var degrees []string
	for _, a := range analyses {
		assert.False(a.Chromatic)
		degrees = append(degrees, a.Degree.Degree)
	}
	assert.Equal([]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}, degrees)
	assert.Equal(uint32(0), chords[0].AbsTickOffset)
	assert.Less(chords[0].AbsTickOffset, chords[1].AbsTickOffset)
}

func TestAnalyzeMarksChromaticChords(t *testing.T) {
	chords := []model.Chord{
		{Notes: model.Notes{62, 66, 69}}, // D major in C
		{Notes: model.Notes{62, 65, 69}}, // D minor in C
		{Notes: model.Notes{60, 62}},
	}
	analyses, err := Analyze(chords, model.Key{Label: "C", Mode: model.Major})

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(analyses[0].Chromatic)
	assert.False(analyses[1].Chromatic)
	assert.Equal("ii", analyses[1].Degree.Degree)
	assert.True(analyses[2].Chromatic)
	assert.Empty(analyses[2].Key.Label)
}
