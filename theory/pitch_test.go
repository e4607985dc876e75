package theory

import (
	"testing"

	"github.com/jsphweid/fifths/model"
	"github.com/stretchr/testify/assert"
)

func TestPitchClassRoundTrip(t *testing.T) {
	for _, k := range allKeys() {
		pc, err := PitchClass(k)
		assert.NoError(t, err)
		assert.Equal(t, k, KeyForPitchClass(pc, k.Mode))
	}
}

func TestPitchClasses(t *testing.T) {
	assert := assert.New(t)
	pc, _ := PitchClass(major("C"))
	assert.Equal(0, pc)
	pc, _ = PitchClass(major("F♯/G♭"))
	assert.Equal(6, pc)
	pc, _ = PitchClass(minor("Am"))
	assert.Equal(9, pc)
	pc, _ = PitchClass(minor("B♭m"))
	assert.Equal(10, pc)
}

func TestSpelledPitchClassMatchesTables(t *testing.T) {
	for _, k := range allKeys() {
		spelled, err := SpelledPitchClass(k.Label)
		assert.NoError(t, err, k.Label)
		pc, _ := PitchClass(k)
		assert.Equal(t, pc, spelled, k.Label)
	}
}

func TestSpelledPitchClass(t *testing.T) {
	assert := assert.New(t)
	pc, err := SpelledPitchClass("B♭m")
	assert.NoError(err)
	assert.Equal(10, pc)

	pc, _ = SpelledPitchClass("F♯/G♭")
	assert.Equal(6, pc)

	_, err = SpelledPitchClass("F♯/A♭")
	assert.Error(err)
	_, err = SpelledPitchClass("H")
	assert.Error(err)
	_, err = SpelledPitchClass("C#")
	assert.Error(err)
}

func TestTriads(t *testing.T) {
	scale, _ := DiatonicScale(major("C"))

	assert := assert.New(t)
	triad, err := Triad(scale[0])
	assert.NoError(err)
	assert.Equal([]int{0, 4, 7}, triad)

	triad, _ = Triad(scale[1])
	assert.Equal([]int{2, 5, 9}, triad)

	// B diminished
	triad, _ = Triad(scale[6])
	assert.Equal([]int{11, 2, 5}, triad)
}

func TestParseKey(t *testing.T) {
	cases := map[string]model.Key{
		"C":       major("C"),
		" g ":     major("G"),
		"Bb":      major("B♭"),
		"F#":      major("F♯/G♭"),
		"Gb":      major("F♯/G♭"),
		"F♯/G♭":   major("F♯/G♭"),
		"am":      minor("Am"),
		"F#m":     minor("F♯m"),
		"Ebm":     minor("D♯m/E♭m"),
		"D♯m":     minor("D♯m/E♭m"),
		"bbm":     minor("B♭m"),
		"D♯m/E♭m": minor("D♯m/E♭m"),
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			got, err := ParseKey(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseKeyNotFound(t *testing.T) {
	for _, input := range []string{"", "H", "C#", "Abm", "Xm"} {
		_, err := ParseKey(input)
		assert.ErrorIs(t, err, ErrNotFound, input)
	}
}

func TestParseKeyMode(t *testing.T) {
	assert := assert.New(t)

	k, err := ParseKeyMode("F♯/G♭", "major")
	assert.NoError(err)
	assert.Equal(major("F♯/G♭"), k)

	k, err = ParseKeyMode("Ebm", "minor")
	assert.NoError(err)
	assert.Equal(minor("D♯m/E♭m"), k)

	_, err = ParseKeyMode("Am", "major")
	assert.ErrorIs(err, ErrNotFound)

	k, err = ParseKeyMode("f#", "minor")
	assert.NoError(err)
	assert.Equal(minor("F♯m"), k)

	_, err = ParseKeyMode("C", "dorian")
	assert.Error(err)
}
