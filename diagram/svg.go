package diagram

import (
	"html/template"
	"io"
	"unicode/utf8"

	"github.com/jsphweid/fifths/model"
)

type svgNode struct {
	Node
	FontSize    int
	LabelY      float64
	BadgeX      float64
	BadgeY      float64
	BadgeSize   int
	MinorCenter Point
}

type svgData struct {
	Major []svgNode
	Minor []svgNode
}

var svgTemplate = template.Must(template.New("diagram").Parse(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="-20 0 540 500">
<circle cx="250" cy="250" r="200" fill="none" stroke="#d0d0d0" stroke-width="2"/>
<circle cx="250" cy="250" r="180" fill="none" stroke="#d0d0d0" stroke-width="1" stroke-dasharray="5,5"/>
<circle cx="250" cy="250" r="120" fill="none" stroke="#d0d0d0" stroke-width="2"/>
<circle cx="250" cy="250" r="100" fill="none" stroke="#d0d0d0" stroke-width="1" stroke-dasharray="5,5"/>
{{- range .Major}}
<line x1="250" y1="250" x2="{{printf "%.2f" .Position.X}}" y2="{{printf "%.2f" .Position.Y}}" stroke="#e0e0e0" stroke-width="1" opacity="0.2"/>
<line x1="{{printf "%.2f" .Position.X}}" y1="{{printf "%.2f" .Position.Y}}" x2="{{printf "%.2f" .MinorCenter.X}}" y2="{{printf "%.2f" .MinorCenter.Y}}" stroke="#c0c0c0" stroke-width="1" opacity="0.3" stroke-dasharray="3,3"/>
{{- end}}
{{- range .Minor}}
<line x1="250" y1="250" x2="{{printf "%.2f" .Position.X}}" y2="{{printf "%.2f" .Position.Y}}" stroke="#d0d0d0" stroke-width="1" opacity="0.2"/>
{{- end}}
{{- range .Major}}{{template "node" .}}{{end}}
{{- range .Minor}}{{template "node" .}}{{end}}
</svg>
{{define "node"}}
<g class="key {{.Appearance.Tag}}" data-label="{{.Key.Label}}" data-mode="{{.Key.Mode}}">
<circle cx="{{printf "%.2f" .Position.X}}" cy="{{printf "%.2f" .Position.Y}}" r="{{.Appearance.Radius}}" fill="{{.Appearance.Fill}}" stroke="{{.Appearance.Stroke}}" stroke-width="{{.Appearance.StrokeWidth}}"/>
<text x="{{printf "%.2f" .Position.X}}" y="{{printf "%.2f" .LabelY}}" text-anchor="middle" fill="#333" font-size="{{.FontSize}}" font-weight="bold">{{.Key.Label}}</text>
{{- if .Appearance.Badge}}
<text x="{{printf "%.2f" .BadgeX}}" y="{{printf "%.2f" .BadgeY}}" text-anchor="middle" fill="#333" font-size="{{.BadgeSize}}" font-weight="bold" stroke="white" stroke-width="0.5" paint-order="stroke fill">{{.Appearance.Badge}}</text>
{{- end}}
</g>
{{- end}}`))

func toSVGNode(n Node) svgNode {
	sn := svgNode{Node: n, MinorCenter: Position(n.Index, model.Minor)}
	length := utf8.RuneCountInString(n.Key.Label)
	if n.Key.Mode == model.Major {
		sn.FontSize = 17
		if length > 2 {
			sn.FontSize = 13
		}
		sn.LabelY = n.Position.Y + 6
		sn.BadgeX, sn.BadgeY, sn.BadgeSize = n.Position.X+20, n.Position.Y-15, 14
		return sn
	}
	sn.FontSize = 14
	if length > 3 {
		sn.FontSize = 11
	}
	sn.LabelY = n.Position.Y + 5
	sn.BadgeX, sn.BadgeY, sn.BadgeSize = n.Position.X+18, n.Position.Y-12, 12
	return sn
}

// WriteSVG draws the view. Relative spokes join each major key to the minor
// key at the same index.
func WriteSVG(w io.Writer, v View) error {
	var data svgData
	for _, n := range v.Major {
		data.Major = append(data.Major, toSVGNode(n))
	}
	for _, n := range v.Minor {
		data.Minor = append(data.Minor, toSVGNode(n))
	}
	return svgTemplate.Execute(w, data)
}
