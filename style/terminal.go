package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/jsphweid/fifths/theory"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fills[model.TagTonic]))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	pinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(StrokePinned)).Padding(0, 1)
)

func swatch(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

// RenderSummary is the text panel under the diagram: the display key, its
// seven scale degrees coloured by function, and its relative.
func RenderSummary(s selection.State) (string, error) {
	display, ok := s.Display()
	if !ok {
		return mutedStyle.Render("Hover over a key to see its scale degrees. Click a key to pin it."), nil
	}

	scale, err := theory.DiatonicScale(display)
	if err != nil {
		return "", err
	}
	rel, err := theory.Relative(display)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	tonicDegree := "I"
	if display.Mode == model.Minor {
		tonicDegree = "i"
	}
	b.WriteString(headerStyle.Render(display.Label))
	b.WriteString(fmt.Sprintf(" (%v) - Tonic (%v)", display.Mode, tonicDegree))
	if s.Pinned != nil {
		b.WriteString(pinStyle.Render("pinned"))
	}
	b.WriteString("\n")

	for _, d := range scale {
		color := Fill(theory.DegreeTag(d.Degree), d.Key.Mode)
		b.WriteString(fmt.Sprintf("  %v %v %v\n",
			swatch(color).Render(fmt.Sprintf("%-5v", d.Degree+":")),
			d.Key.Label,
			mutedStyle.Render("("+string(d.Quality)+", "+d.Function+")"),
		))
	}

	b.WriteString(fmt.Sprintf("%v %v\n",
		swatch(fills[model.TagRelative]).Render(fmt.Sprintf("Relative %v:", rel.Mode)),
		rel.Label,
	))
	return b.String(), nil
}

// RenderRing prints one table as a row of coloured labels.
func RenderRing(mode model.Mode, s selection.State) (string, error) {
	var cells []string
	for _, label := range theory.Table(mode) {
		a, err := Appear(model.Key{Label: label, Mode: mode}, s)
		if err != nil {
			return "", err
		}
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#333")).Background(lipgloss.Color(a.Fill))
		if a.Active {
			style = style.Bold(true)
		}
		if a.Tag == model.TagInColtraneCycle || a.Pinned {
			style = style.Underline(true)
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...), nil
}

var legend = []struct {
	tag   model.Tag
	label string
}{
	{model.TagTonic, "I/i (Tonic)"},
	{model.TagDominantDegree, "V/v (Dom)"},
	{model.TagSubdominantDegree, "IV/iv (Sub)"},
	{model.TagSupertonic, "ii/ii°"},
	{model.TagSubmediant, "vi/VI"},
	{model.TagMediant, "iii/III"},
	{model.TagLeadingTone, "vii°/VII"},
	{model.TagRelative, "Rel"},
}

// RenderLegend only means something in functional mode.
func RenderLegend() string {
	var items []string
	for _, l := range legend {
		items = append(items, swatch(fills[l.tag]).Render("●")+" "+l.label)
	}
	return strings.Join(items, "  ")
}
