package theory

import (
	"testing"

	"github.com/jsphweid/fifths/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFunctional(t *testing.T) {
	cases := []struct {
		note      model.Key
		reference model.Key
		want      model.Tag
	}{
		{major("C"), major("C"), model.TagTonic},
		{minor("Am"), major("C"), model.TagRelative},
		{major("G"), major("C"), model.TagDominantDegree},
		{major("F"), major("C"), model.TagSubdominantDegree},
		{minor("Dm"), major("C"), model.TagSupertonic},
		{minor("Em"), major("C"), model.TagMediant},
		{minor("Bm"), major("C"), model.TagLeadingTone},
		{major("D"), major("C"), model.TagNone},
		{major("C"), minor("Am"), model.TagRelative},
		{minor("Em"), minor("Am"), model.TagDominantDegree},
		{major("F"), minor("Am"), model.TagSubmediant},
		{major("G"), minor("Am"), model.TagLeadingTone},
		{minor("Bm"), minor("Am"), model.TagSupertonic},
		{minor("Am"), minor("Am"), model.TagTonic},
	}

	for _, c := range cases {
		t.Run(c.note.String()+" in "+c.reference.String(), func(t *testing.T) {
			tag, err := Classify(c.note, c.reference, model.VisualFunctional)
			assert.NoError(t, err)
			assert.Equal(t, c.want, tag)
		})
	}
}

func TestClassifyNormalOnlyTagsMajorRing(t *testing.T) {
	assert := assert.New(t)

	tag, _ := Classify(major("C"), minor("Am"), model.VisualNormal)
	assert.Equal(model.TagTonic, tag)

	tag, _ = Classify(major("B"), major("C"), model.VisualNormal)
	assert.Equal(model.TagInCircleNeighborhood, tag)

	tag, _ = Classify(major("B♭"), major("C"), model.VisualNormal)
	assert.Equal(model.TagNone, tag)

	tag, _ = Classify(minor("Am"), minor("Am"), model.VisualNormal)
	assert.Equal(model.TagNone, tag)
}

func TestClassifyColtrane(t *testing.T) {
	assert := assert.New(t)

	tag, _ := Classify(major("C"), major("C"), model.VisualColtrane)
	assert.Equal(model.TagTonic, tag)

	tag, _ = Classify(major("E"), major("C"), model.VisualColtrane)
	assert.Equal(model.TagInColtraneCycle, tag)

	tag, _ = Classify(minor("Em"), major("C"), model.VisualColtrane)
	assert.Equal(model.TagInScale, tag)

	// cycle partners stay within the reference's ring
	tag, _ = Classify(minor("C♯m"), major("C"), model.VisualColtrane)
	assert.Equal(model.TagNone, tag)
}

func TestClassifyRejectsBadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := Classify(major("C"), major("C"), "psychedelic")
	assert.Error(err)

	_, err = Classify(major("X"), major("C"), model.VisualFunctional)
	assert.ErrorIs(err, ErrNotFound)
}
