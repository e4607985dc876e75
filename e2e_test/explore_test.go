//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/fifths/cmd"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	cmd.LoadServeState()
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getView(t *testing.T, id string) diagram.View {
	resp, err := http.Get(server.URL + "/sessions/" + id + "/view")
	if err != nil {
		t.Fatal(err)
	}
	respBody, _ := io.ReadAll(resp.Body)

	var view diagram.View
	if err := json.Unmarshal(respBody, &view); err != nil {
		panic(err.Error())
	}
	return view
}

func tagsOf(view diagram.View) map[string]model.Tag {
	res := make(map[string]model.Tag)
	for _, n := range append(view.Major, view.Minor...) {
		if n.Appearance.Tag != model.TagNone {
			res[n.Key.Label] = n.Appearance.Tag
		}
	}
	return res
}

func TestHoverThenPinE2E(t *testing.T) {
	var created model.SessionResponse
	json.NewDecoder(post(t, "/sessions", nil).Body).Decode(&created)
	id := created.Id

	post(t, "/sessions/"+id+"/events", model.SessionEvent{Type: "hover", Key: "C", Mode: "major"})

	assert := assert.New(t)
	assert.Equal(map[string]model.Tag{
		"C":  model.TagTonic,
		"G":  model.TagDominantDegree,
		"F":  model.TagSubdominantDegree,
		"Am": model.TagRelative,
		"Dm": model.TagSupertonic,
		"Em": model.TagMediant,
		"Bm": model.TagLeadingTone,
	}, tagsOf(getView(t, id)))

	// pin A minor, then hovering elsewhere changes nothing
	post(t, "/sessions/"+id+"/events", model.SessionEvent{Type: "click", Key: "Am", Mode: "minor"})
	post(t, "/sessions/"+id+"/events", model.SessionEvent{Type: "hover", Key: "E", Mode: "major"})
	view := getView(t, id)
	assert.Equal(model.Key{Label: "C", Mode: model.Major}, *view.Relative)

	post(t, "/sessions/"+id+"/events", model.SessionEvent{Type: "visual", Visual: "normal"})
	assert.Equal(map[string]model.Tag{
		"C": model.TagTonic,
		"F": model.TagInCircleNeighborhood,
		"G": model.TagInCircleNeighborhood,
		"D": model.TagInCircleNeighborhood,
		"A": model.TagInCircleNeighborhood,
		"E": model.TagInCircleNeighborhood,
		"B": model.TagInCircleNeighborhood,
	}, tagsOf(getView(t, id)))

	post(t, "/sessions/"+id+"/events", model.SessionEvent{Type: "visual", Visual: "coltrane"})
	tags := tagsOf(getView(t, id))
	assert.Equal(model.TagInColtraneCycle, tags["C♯m"])
	assert.Equal(model.TagInColtraneCycle, tags["Fm"])
	assert.Equal(model.TagInScale, tags["G"])
}
