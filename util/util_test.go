package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModWrapsNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(12, 12))
	assert.Equal(3, Mod(27, 12))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[uint32]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []uint32{1, 2, 3}, GetKeysSorted(m))
}

func TestUniqKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []int{4, 1, 7}, Uniq([]int{4, 1, 4, 7, 1}))
}
