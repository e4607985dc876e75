package chord

import (
	"sort"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/theory"
	"github.com/jsphweid/fifths/util"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

type reducedEvent struct {
	AbsTicks  uint32
	IsNoteOff bool
	Note      uint8
}

func reduceEvents(s *smf.SMF) []reducedEvent {
	var res []reducedEvent
	for _, events := range s.Tracks {
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// note on with zero velocity is a note off
				res = append(res, reducedEvent{AbsTicks: absTicks, IsNoteOff: velocity == 0, Note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, reducedEvent{AbsTicks: absTicks, IsNoteOff: true, Note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].AbsTicks != res[j].AbsTicks {
			return res[i].AbsTicks < res[j].AbsTicks
		}
		return res[i].IsNoteOff && !res[j].IsNoteOff
	})
	return res
}

// GetChords returns what is sounding after each tick that changes it, across
// all tracks, in time order. Silence isn't a chord.
func GetChords(s *smf.SMF) []model.Chord {
	var chords []model.Chord
	pressed := make(map[uint8]bool)
	var last model.Notes

	events := reduceEvents(s)
	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}

		// wait for the rest of this tick
		if i < len(events)-1 && events[i+1].AbsTicks == evt.AbsTicks {
			continue
		}

		notes := util.GetKeysSorted(pressed)
		if len(notes) > 0 && !slices.Equal(notes, last) {
			chords = append(chords, model.Chord{AbsTickOffset: evt.AbsTicks, Notes: notes})
		}
		last = notes
	}
	return chords
}

var shapes = []model.Quality{model.QualityMajor, model.QualityMinor, model.QualityDiminished}

// Identify names a major, minor or diminished triad in any voicing or
// inversion. Diminished triads are named after the minor key on their root.
func Identify(notes model.Notes) (model.Key, model.Quality, bool) {
	var pcs []int
	for _, n := range notes {
		pcs = append(pcs, int(n)%12)
	}
	pcs = util.Uniq(pcs)
	if len(pcs) != 3 {
		return model.Key{}, "", false
	}

	for _, root := range pcs {
		var intervals []int
		for _, pc := range pcs {
			intervals = append(intervals, util.Mod(pc-root, 12))
		}
		slices.Sort(intervals)

		for _, q := range shapes {
			if !slices.Equal(intervals, theory.TriadIntervals(q)) {
				continue
			}
			mode := model.Minor
			if q == model.QualityMajor {
				mode = model.Major
			}
			return theory.KeyForPitchClass(root, mode), q, true
		}
	}
	return model.Key{}, "", false
}

// Analyze places every chord in the scale of tonic. A chord counts as
// diatonic only when both its root and its quality match a degree.
func Analyze(chords []model.Chord, tonic model.Key) ([]model.ChordAnalysis, error) {
	if _, err := theory.IndexOf(tonic); err != nil {
		return nil, err
	}

	var res []model.ChordAnalysis
	for _, c := range chords {
		a := model.ChordAnalysis{AbsTickOffset: c.AbsTickOffset, Notes: c.Notes, Chromatic: true}
		key, quality, ok := Identify(c.Notes)
		if ok {
			a.Key, a.Quality = key, quality
			d, found, err := theory.ScaleDegreeOf(key, tonic)
			if err != nil {
				return nil, err
			}
			if found && d.Quality == quality {
				a.Degree = &d
				a.Chromatic = false
			}
		}
		res = append(res, a)
	}
	return res, nil
}
