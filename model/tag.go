package model

// Tag is the semantic classification of a candidate key against the current
// selection. Colours are decided by the view layer, never here.
type Tag string

const (
	TagNone                 Tag = "none"
	TagTonic                Tag = "is-tonic"
	TagRelative             Tag = "is-relative"
	TagDominantDegree       Tag = "is-dominant-degree"
	TagSubdominantDegree    Tag = "is-subdominant-degree"
	TagSupertonic           Tag = "is-supertonic"
	TagMediant              Tag = "is-mediant"
	TagSubmediant           Tag = "is-submediant"
	TagLeadingTone          Tag = "is-leading-tone"
	TagInCircleNeighborhood Tag = "is-in-circle-neighborhood"
	TagInColtraneCycle      Tag = "is-in-coltrane-cycle"
	TagInScale              Tag = "is-in-scale"
)
