package graph

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Stop is a node. Name, Lat and Long are optional; Lat and Long are kept as the
// numeric text found in the feed.
type Stop struct {
	ID   string `validate:"required"`
	Name string
	Lat  string `validate:"omitempty,latitude"`
	Long string `validate:"omitempty,longitude"`
}

// NewStop returns an attribute-less stop
func NewStop(id string) (Stop, error) {
	s := Stop{ID: id}
	if err := validate.Struct(s); err != nil {
		return Stop{}, fmt.Errorf("stop %q: %w", id, err)
	}
	return s, nil
}

// WithAttributes returns a copy of s carrying name and coordinates
func (s Stop) WithAttributes(name, lat, long string) (Stop, error) {
	s.Name, s.Lat, s.Long = name, lat, long
	if err := validate.Struct(s); err != nil {
		return Stop{}, fmt.Errorf("stop %q: %w", s.ID, err)
	}
	return s, nil
}

// HasAttributes reports whether any optional attribute is set
func (s Stop) HasAttributes() bool {
	return s.Name != "" || s.Lat != "" || s.Long != ""
}

// Segment is an undirected edge between A and B
type Segment struct {
	A          string `validate:"required"`
	B          string `validate:"required"`
	TravelTime int    `validate:"gte=0"`
}

// NewSegment validates and returns a segment
func NewSegment(a, b string, travelTime int) (Segment, error) {
	s := Segment{A: a, B: b, TravelTime: travelTime}
	if err := validate.Struct(s); err != nil {
		return Segment{}, fmt.Errorf("segment %q-%q: %w", a, b, err)
	}
	return s, nil
}
