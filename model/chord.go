package model

type Notes = []uint8

// Chord is a set of simultaneously sounding notes pulled out of a midi file.
type Chord struct {
	AbsTickOffset uint32
	Notes         Notes
}

// ChordAnalysis places a chord in the scale of some tonic.
type ChordAnalysis struct {
	AbsTickOffset uint32 `json:"abs_tick_offset"`
	Notes         Notes  `json:"notes"`

	// NOTE: zero values when the notes aren't a recognised triad
	Key     Key     `json:"key"`
	Quality Quality `json:"quality"`

	Degree    *ScaleDegree `json:"degree,omitempty"`
	Chromatic bool         `json:"chromatic"`
}
