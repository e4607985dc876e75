package model

type KeysResponse struct {
	Major []string `json:"major"`
	Minor []string `json:"minor"`
}

type TheoryResponse struct {
	Key          Key           `json:"key"`
	Dominant     Key           `json:"dominant"`
	Subdominant  Key           `json:"subdominant"`
	Relative     Key           `json:"relative"`
	Neighborhood []Key         `json:"neighborhood"`
	Scale        []ScaleDegree `json:"scale"`
	Coltrane     []Key         `json:"coltrane"`
}

type ClassifyResponse struct {
	Key       Key        `json:"key"`
	Reference Key        `json:"reference"`
	Visual    VisualMode `json:"visual"`
	Tag       Tag        `json:"tag"`
}

type SessionResponse struct {
	Id string `json:"id"`
}

// SessionEvent is one interaction coming from the view. Only the fields its
// Type needs are read.
type SessionEvent struct {
	Type    string `json:"type"`
	Key     string `json:"key"`
	Mode    string `json:"mode"`
	Visual  string `json:"visual"`
	Section string `json:"section"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
