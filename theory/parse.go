package theory

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jsphweid/fifths/model"
)

func normalize(input string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(input) {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case r == '#':
			b.WriteRune('♯')
		case r == 'b':
			b.WriteRune('♭')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseKey turns user input like "Bb", "F#m" or "Gb" into a table key. A
// trailing m means minor, and either spelling of a dual label matches.
func ParseKey(input string) (model.Key, error) {
	name := normalize(input)
	mode := model.Major
	if strings.HasSuffix(name, "m") {
		mode = model.Minor
	}

	for _, label := range Table(mode) {
		if label == name {
			return model.Key{Label: label, Mode: mode}, nil
		}
		for _, spelling := range strings.Split(label, "/") {
			if spelling == name {
				return model.Key{Label: label, Mode: mode}, nil
			}
		}
	}
	return model.Key{}, fmt.Errorf("%w: %q", ErrNotFound, input)
}

// ParseKeyMode is ParseKey for callers that send the mode separately, like
// the http query params. An exact label is tried before ParseKey, and the
// trailing m is optional for minor keys.
func ParseKeyMode(input string, mode string) (model.Key, error) {
	m, err := model.ParseMode(mode)
	if err != nil {
		return model.Key{}, err
	}
	k := model.Key{Label: input, Mode: m}
	if _, err := IndexOf(k); err == nil {
		return k, nil
	}
	if m == model.Minor && !strings.HasSuffix(normalize(input), "m") {
		input += "m"
	}
	k, err = ParseKey(input)
	if err != nil {
		return model.Key{}, err
	}
	if k.Mode != m {
		return model.Key{}, fmt.Errorf("%w: %q is not a %v key", ErrNotFound, input, m)
	}
	return k, nil
}
