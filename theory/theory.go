// Package theory maps a tonic to its neighbours on the circle of fifths.
// Everything here is a pure function of the two key tables in constants.
package theory

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/util"
)

var ErrNotFound = errors.New("key not found")

func Table(mode model.Mode) [constants.NumKeys]string {
	if mode == model.Minor {
		return constants.MinorKeys
	}
	return constants.MajorKeys
}

func IndexOf(k model.Key) (int, error) {
	if k.Mode != model.Major && k.Mode != model.Minor {
		return -1, fmt.Errorf("%w: %q has unknown mode %q", ErrNotFound, k.Label, k.Mode)
	}
	for i, label := range Table(k.Mode) {
		if label == k.Label {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q in %v table", ErrNotFound, k.Label, k.Mode)
}

// at wraps i around the table for mode.
func at(mode model.Mode, i int) model.Key {
	return model.Key{Label: Table(mode)[util.Mod(i, constants.NumKeys)], Mode: mode}
}

// Dominant is one step clockwise.
func Dominant(tonic model.Key) (model.Key, error) {
	i, err := IndexOf(tonic)
	if err != nil {
		return model.Key{}, err
	}
	return at(tonic.Mode, i+1), nil
}

// Subdominant is one step counter-clockwise.
func Subdominant(tonic model.Key) (model.Key, error) {
	i, err := IndexOf(tonic)
	if err != nil {
		return model.Key{}, err
	}
	return at(tonic.Mode, i-1), nil
}

// Relative sits at the same index of the other table.
func Relative(tonic model.Key) (model.Key, error) {
	i, err := IndexOf(tonic)
	if err != nil {
		return model.Key{}, err
	}
	return at(tonic.Mode.Other(), i), nil
}

func asMajor(tonic model.Key) (model.Key, error) {
	if tonic.Mode == model.Minor {
		return Relative(tonic)
	}
	if _, err := IndexOf(tonic); err != nil {
		return model.Key{}, err
	}
	return tonic, nil
}

// CircleNeighborhood is the window of 7 major keys that share notes with the
// tonic's key signature: one before the tonic (or its relative major), the
// tonic, and five after.
func CircleNeighborhood(tonic model.Key) ([]model.Key, error) {
	ref, err := asMajor(tonic)
	if err != nil {
		return nil, err
	}
	j, _ := IndexOf(ref)
	res := make([]model.Key, 0, constants.ScaleSize)
	for step := -1; step <= 5; step++ {
		res = append(res, at(model.Major, j+step))
	}
	return res, nil
}

// ColtraneCycle returns the other two members of the major-third cycle
// containing tonic, in clockwise order.
func ColtraneCycle(tonic model.Key) ([]model.Key, error) {
	i, err := IndexOf(tonic)
	if err != nil {
		return nil, err
	}
	return []model.Key{at(tonic.Mode, i+4), at(tonic.Mode, i+8)}, nil
}

// ColtraneCycles partitions a table into its 4 augmented-triad cycles.
func ColtraneCycles(mode model.Mode) [][]model.Key {
	var res [][]model.Key
	for i := 0; i < constants.NumKeys/3; i++ {
		res = append(res, []model.Key{at(mode, i), at(mode, i+4), at(mode, i+8)})
	}
	return res
}
