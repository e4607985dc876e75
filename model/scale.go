package model

import "fmt"

type Quality string

const (
	QualityMajor      Quality = "major"
	QualityMinor      Quality = "minor"
	QualityDiminished Quality = "diminished"
)

// ScaleDegree is one member of a diatonic scale. Degree is the Roman numeral
// and doubles as the badge shown next to the key.
type ScaleDegree struct {
	Key      Key     `json:"key"`
	Degree   string  `json:"degree"`
	Quality  Quality `json:"quality"`
	Function string  `json:"function"`
}

type VisualMode string

const (
	VisualNormal     VisualMode = "normal"
	VisualFunctional VisualMode = "functional"
	VisualColtrane   VisualMode = "coltrane"
)

func ParseVisualMode(s string) (VisualMode, error) {
	switch VisualMode(s) {
	case VisualNormal, VisualFunctional, VisualColtrane:
		return VisualMode(s), nil
	}
	return "", fmt.Errorf("unknown visual mode %q", s)
}
