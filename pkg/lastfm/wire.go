package lastfm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// oneOrMany decodes a repeated field that the API returns as a bare
// object when exactly one element exists and as an array otherwise.
// Every mapper that projects a repeated field (tags, tracks, similar
// artists, top lists) decodes through this type so the single-object
// case never reaches iteration code.
type oneOrMany[T any] []T

func (l *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0 || string(data) == "null":
		*l = nil
	case data[0] == '[':
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = many
	default:
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = oneOrMany[T]{one}
	}
	return nil
}

// count is a numeric wire field. The API serializes counts as strings;
// a few fields arrive as bare numbers, and absent or null values decode
// to the empty string.
type count string

func (c *count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = count(s)
		return nil
	}
	*c = count(data)
	return nil
}

// parseCount converts a numeric wire field to an int. A missing or
// non-numeric value is a hard failure, never a silent zero.
func parseCount(field string, c count) (int, error) {
	if c == "" {
		return 0, fmt.Errorf("lastfm: missing numeric field %q", field)
	}
	n, err := strconv.Atoi(string(c))
	if err != nil {
		return 0, fmt.Errorf("lastfm: field %q: invalid number %q", field, string(c))
	}
	return n, nil
}

// parseOptCount is parseCount for fields the API may omit entirely,
// such as album track durations. Absence maps to nil; junk still fails.
func parseOptCount(field string, c count) (*int, error) {
	if c == "" {
		return nil, nil
	}
	n, err := parseCount(field, c)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// imageVariant is one entry of the size-ordered image list.
type imageVariant struct {
	Size string `json:"size"`
	URL  string `json:"#text"`
}

// imageList is the API's ordered list of image variants by size.
type imageList []imageVariant

// largest returns the URL of the last (largest) variant. The API
// returns an empty string for missing images, which normalizes to
// absence rather than passing "" through.
func (l imageList) largest() *string {
	if len(l) == 0 {
		return nil
	}
	return optText(l[len(l)-1].URL)
}

// optText normalizes the API's two spellings of "no value", the empty
// string and the literal "None", to absence.
func optText(s string) *string {
	if s == "" || s == "None" {
		return nil
	}
	return &s
}

// nameURL is the name and URL pair used by tags, similar artists and
// top lists on the wire.
type nameURL struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// nameURLs projects a wire pair list into the output representation.
func nameURLs(in oneOrMany[nameURL]) []NameURL {
	out := make([]NameURL, len(in))
	for i, v := range in {
		out[i] = NameURL{Name: v.Name, URL: v.URL}
	}
	return out
}
