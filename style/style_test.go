package style

import (
	"testing"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/stretchr/testify/assert"
)

func key(label string, mode model.Mode) model.Key { return model.Key{Label: label, Mode: mode} }

func TestIdleWhenNothingSelected(t *testing.T) {
	a, err := Appear(key("C", model.Major), selection.New())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(IdleMajor, a.Fill)
	assert.Equal(StrokeIdle, a.Stroke)
	assert.Equal(28, a.Radius)
	assert.False(a.Active)

	a, _ = Appear(key("Am", model.Minor), selection.New())
	assert.Equal(IdleMinor, a.Fill)
	assert.Equal(24, a.Radius)
}

func TestFunctionalColours(t *testing.T) {
	s := selection.New().Hover(key("C", model.Major))
	cases := map[model.Key]string{
		key("C", model.Major):  "#4a90e2",
		key("G", model.Major):  "#e74c3c",
		key("F", model.Major):  "#2ecc71",
		key("Dm", model.Minor): "#f39c12",
		key("Am", model.Minor): "#9b59b6",
		key("Em", model.Minor): "#e67e22",
		key("Bm", model.Minor): "#95a5a6",
		key("D", model.Major):  IdleMajor,
	}
	for k, want := range cases {
		a, err := Appear(k, s)
		assert.NoError(t, err)
		assert.Equal(t, want, a.Fill, k.String())
	}
}

func TestActiveScaleMembersGetBadges(t *testing.T) {
	s := selection.New().Hover(key("C", model.Major))

	assert := assert.New(t)
	a, _ := Appear(key("G", model.Major), s)
	assert.True(a.Active)
	assert.Equal("V", a.Badge)
	assert.Equal(32, a.Radius)
	assert.Equal(StrokeActive, a.Stroke)
	assert.Equal(3, a.StrokeWidth)

	a, _ = Appear(key("Bm", model.Minor), s)
	assert.Equal("vii°", a.Badge)
	assert.Equal(28, a.Radius)

	a, _ = Appear(key("E", model.Major), s)
	assert.False(a.Active)
	assert.Empty(a.Badge)
}

func TestStrokePrecedence(t *testing.T) {
	assert := assert.New(t)

	pinned := selection.New().Click(key("C", model.Major))
	a, _ := Appear(key("C", model.Major), pinned)
	assert.Equal(StrokePinned, a.Stroke)
	assert.Equal(4, a.StrokeWidth)

	coltrane := pinned.SetVisual(model.VisualColtrane)
	a, _ = Appear(key("E", model.Major), coltrane)
	assert.Equal(StrokeColtrane, a.Stroke)
	assert.Equal(IdleMajor, a.Fill)

	a, _ = Appear(key("Em", model.Minor), coltrane)
	assert.Equal("#b0b0b0", a.Fill)
}

func TestNormalModeNeighborhood(t *testing.T) {
	s := selection.New().SetVisual(model.VisualNormal).Hover(key("Am", model.Minor))

	assert := assert.New(t)
	a, _ := Appear(key("C", model.Major), s)
	assert.Equal("#4a90e2", a.Fill)
	a, _ = Appear(key("B", model.Major), s)
	assert.Equal("#90c890", a.Fill)
	a, _ = Appear(key("Em", model.Minor), s)
	assert.Equal(IdleMinor, a.Fill)
}

func TestRenderSummary(t *testing.T) {
	out, err := RenderSummary(selection.New().Click(key("C", model.Major)))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(out, "pinned")
	assert.Contains(out, "Dm")
	assert.Contains(out, "Leading tone")
	assert.Contains(out, "Relative minor:")
}

func TestRenderRingHasEveryKey(t *testing.T) {
	out, err := RenderRing(model.Minor, selection.New())
	assert.NoError(t, err)
	for _, label := range []string{"Am", "D♯m/E♭m", "Dm"} {
		assert.Contains(t, out, label)
	}
}
