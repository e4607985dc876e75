package theory

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/util"
)

// PitchClass of the key's root, C = 0. A fifth is 7 semitones, so walking the
// table clockwise adds 7 each step. The minor table starts at A = 9.
func PitchClass(k model.Key) (int, error) {
	i, err := IndexOf(k)
	if err != nil {
		return 0, err
	}
	if k.Mode == model.Minor {
		return util.Mod(9+7*i, constants.NumKeys), nil
	}
	return util.Mod(7*i, constants.NumKeys), nil
}

// KeyForPitchClass inverts PitchClass. 7 is its own inverse mod 12.
func KeyForPitchClass(pc int, mode model.Mode) model.Key {
	if mode == model.Minor {
		return at(model.Minor, 7*(pc-9))
	}
	return at(model.Major, 7*pc)
}

var letters = map[rune]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// SpelledPitchClass reads the pitch class off a label's spelling rather than
// its table position. Every spelling of a dual label must agree.
func SpelledPitchClass(label string) (int, error) {
	pc := -1
	for _, spelling := range strings.Split(label, "/") {
		spelling = strings.TrimSuffix(spelling, "m")
		runes := []rune(spelling)
		if len(runes) == 0 {
			return 0, fmt.Errorf("empty spelling in %q", label)
		}
		n, ok := letters[runes[0]]
		if !ok {
			return 0, fmt.Errorf("unknown note letter in %q", label)
		}
		for _, r := range runes[1:] {
			switch r {
			case '♯':
				n++
			case '♭':
				n--
			default:
				return 0, fmt.Errorf("unknown accidental %q in %q", r, label)
			}
		}
		n = util.Mod(n, constants.NumKeys)
		if pc >= 0 && n != pc {
			return 0, fmt.Errorf("spellings of %q disagree", label)
		}
		pc = n
	}
	return pc, nil
}

var triadIntervals = map[model.Quality][]int{
	model.QualityMajor:      {0, 4, 7},
	model.QualityMinor:      {0, 3, 7},
	model.QualityDiminished: {0, 3, 6},
}

// Triad returns the pitch classes of the chord on a scale degree, root first.
func Triad(d model.ScaleDegree) ([]int, error) {
	root, err := PitchClass(d.Key)
	if err != nil {
		return nil, err
	}
	var res []int
	for _, interval := range triadIntervals[d.Quality] {
		res = append(res, util.Mod(root+interval, constants.NumKeys))
	}
	return res, nil
}

func TriadIntervals(q model.Quality) []int {
	return triadIntervals[q]
}
