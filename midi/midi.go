package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/theory"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

// highest octave whose triads stay under note 128
const MaxOctave = 8

type Options struct {
	BPM      float64
	Octave   uint8 // midi octave of the roots, 4 puts C on 60
	Velocity uint8
	Channel  uint8
}

func DefaultOptions() Options {
	return Options{BPM: 90, Octave: 4, Velocity: 90, Channel: 0}
}

// ScaleTrack plays the seven diatonic triads of tonic, one half note each.
func ScaleTrack(tonic model.Key, opts Options) (smf.Track, error) {
	if opts.Octave > MaxOctave {
		return nil, fmt.Errorf("octave %v is above %v", opts.Octave, MaxOctave)
	}
	scale, err := theory.DiatonicScale(tonic)
	if err != nil {
		return nil, err
	}

	ticks := smf.MetricTicks(960)
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%v %v", tonic.Label, tonic.Mode)))
	track.Add(0, smf.MetaTempo(opts.BPM))
	track.Add(0, smf.MetaMeter(4, 4))

	for _, d := range scale {
		notes, err := Voicing(d, opts.Octave)
		if err != nil {
			return nil, err
		}
		for _, n := range notes {
			track.Add(0, gomidi.NoteOn(opts.Channel, n, opts.Velocity))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = ticks.Ticks4th() * 2
			}
			track.Add(delta, gomidi.NoteOff(opts.Channel, n))
		}
	}
	track.Close(0)
	return track, nil
}

// Voicing stacks the triad of d in root position above the root's octave.
func Voicing(d model.ScaleDegree, octave uint8) ([]uint8, error) {
	root, err := theory.PitchClass(d.Key)
	if err != nil {
		return nil, err
	}
	base := int(octave+1)*12 + root
	var res []uint8
	for _, interval := range theory.TriadIntervals(d.Quality) {
		res = append(res, uint8(base+interval))
	}
	return res, nil
}

func WriteScale(w io.Writer, tonic model.Key, opts Options) error {
	track, err := ScaleTrack(tonic, opts)
	if err != nil {
		return err
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	if err := s.Add(track); err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}
