// Package diagram lays the 24 keys out on two concentric rings and renders
// them as SVG.
package diagram

import (
	"math"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/jsphweid/fifths/style"
	"github.com/jsphweid/fifths/theory"
)

const (
	Center      = 250
	MajorRadius = 180
	MinorRadius = 100
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Node struct {
	Key        model.Key        `json:"key"`
	Index      int              `json:"index"`
	Position   Point            `json:"position"`
	Appearance style.Appearance `json:"appearance"`
}

type View struct {
	State selection.State `json:"state"`
	Major []Node          `json:"major"`
	Minor []Node          `json:"minor"`

	// Scale is empty when nothing is displayed
	Scale    []model.ScaleDegree `json:"scale"`
	Relative *model.Key          `json:"relative,omitempty"`
}

// Position puts index 0 at 12 o'clock and walks clockwise 30° per key.
func Position(index int, mode model.Mode) Point {
	angle := float64(index*30-90) * math.Pi / 180
	r := float64(MajorRadius)
	if mode == model.Minor {
		r = MinorRadius
	}
	return Point{
		X: Center + r*math.Cos(angle),
		Y: Center + r*math.Sin(angle),
	}
}

func ring(mode model.Mode, s selection.State) ([]Node, error) {
	var res []Node
	for i, label := range theory.Table(mode) {
		k := model.Key{Label: label, Mode: mode}
		a, err := style.Appear(k, s)
		if err != nil {
			return nil, err
		}
		res = append(res, Node{Key: k, Index: i, Position: Position(i, mode), Appearance: a})
	}
	return res, nil
}

// Build computes everything one render pass needs for state s.
func Build(s selection.State) (View, error) {
	v := View{State: s, Scale: []model.ScaleDegree{}}

	var err error
	if v.Major, err = ring(model.Major, s); err != nil {
		return v, err
	}
	if v.Minor, err = ring(model.Minor, s); err != nil {
		return v, err
	}

	display, ok := s.Display()
	if !ok {
		return v, nil
	}
	if v.Scale, err = theory.DiatonicScale(display); err != nil {
		return v, err
	}
	rel, err := theory.Relative(display)
	if err != nil {
		return v, err
	}
	v.Relative = &rel
	return v, nil
}
