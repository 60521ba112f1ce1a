// Package card defines the card record shared by the parser, the cache and
// the Scryfall client, together with type classification and deck ordering.
package card

import (
	"encoding/json"
	"fmt"
)

// Image face keys used in ImageURIs.Faces.
const (
	FaceFront = "front"
	FaceBack  = "back"
)

// Card is one deck entry. Optional attributes are pointers or nil slices so
// that "not known yet" is distinguishable from an empty value.
type Card struct {
	Name            string     `json:"name"`
	Count           int        `json:"count"`
	Set             string     `json:"set"`
	CollectorNumber *string    `json:"collector_number,omitempty"`
	Foil            bool       `json:"foil"`
	Section         string     `json:"section,omitempty"`
	ManaCost        *string    `json:"mana_cost,omitempty"`
	TypeLine        *string    `json:"type_line,omitempty"`
	ColorIdentity   []string   `json:"color_identity"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	Art             *string    `json:"art,omitempty"`
}

// Key is the identity of a card inside a cache list.
type Key struct {
	Name            string
	Set             string
	CollectorNumber string
	HasNumber       bool
}

// Key returns the identity key of c.
func (c Card) Key() Key {
	k := Key{Name: c.Name, Set: c.Set}
	if c.CollectorNumber != nil {
		k.CollectorNumber = *c.CollectorNumber
		k.HasNumber = true
	}
	return k
}

func (k Key) String() string {
	if k.HasNumber {
		return fmt.Sprintf("%s [%s:%s]", k.Name, k.Set, k.CollectorNumber)
	}
	if k.Set != "" {
		return fmt.Sprintf("%s [%s]", k.Name, k.Set)
	}
	return k.Name
}

// ImageURIs is either a set of face image urls or an error explaining why no
// image could be resolved.
type ImageURIs struct {
	Faces map[string]string
	Err   *ImageError
}

// ImageError is the inline error marker stored on a card.
type ImageError struct {
	Message string `json:"errMessage"`
}

// FaceImages builds an ImageURIs holding face urls. An empty back is omitted.
func FaceImages(front, back string) *ImageURIs {
	faces := map[string]string{FaceFront: front}
	if back != "" {
		faces[FaceBack] = back
	}
	return &ImageURIs{Faces: faces}
}

// ImageFailure builds an ImageURIs holding an error marker.
func ImageFailure(msg string) *ImageURIs {
	return &ImageURIs{Err: &ImageError{Message: msg}}
}

// IsError reports whether the images are an error marker.
func (u *ImageURIs) IsError() bool {
	return u != nil && u.Err != nil
}

// MarshalJSON writes {"front":..,"back":..} or {"error":{"errMessage":..}}.
func (u ImageURIs) MarshalJSON() ([]byte, error) {
	if u.Err != nil {
		return json.Marshal(struct {
			Error *ImageError `json:"error"`
		}{u.Err})
	}
	faces := u.Faces
	if faces == nil {
		faces = map[string]string{}
	}
	return json.Marshal(faces)
}

// UnmarshalJSON accepts both shapes written by MarshalJSON.
func (u *ImageURIs) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("image_uris: %w", err)
	}

	if e, ok := raw["error"]; ok {
		var ie ImageError
		if err := json.Unmarshal(e, &ie); err != nil {
			return fmt.Errorf("image_uris error: %w", err)
		}
		u.Faces = nil
		u.Err = &ie
		return nil
	}

	u.Err = nil
	u.Faces = make(map[string]string, len(raw))
	for face, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			// Bulk exports carry extra non-string keys; only urls are kept.
			continue
		}
		u.Faces[face] = s
	}
	return nil
}

// Str returns a pointer to s, for the optional string fields.
func Str(s string) *string {
	return &s
}

// Value dereferences an optional string, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
