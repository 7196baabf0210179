package tgmedia

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField reports a result built without one of its
// required fields.
var ErrMissingRequiredField = errors.New("missing required field")

type InlineResultType string

const (
	InlineResultTypeLocation InlineResultType = "location"
)

// InlineQueryResultLocation is a location on a map offered as an inline
// query answer. Thumbnail fields are optional and stay out of the
// serialized object when unset.
type InlineQueryResultLocation struct {
	Type        InlineResultType `json:"type"`
	ID          string           `json:"id"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Title       string           `json:"title"`
	ThumbURL    string           `json:"thumb_url,omitempty"`
	ThumbWidth  int              `json:"thumb_width,omitempty"`
	ThumbHeight int              `json:"thumb_height,omitempty"`
}

// NewInlineQueryResultLocation builds a location result. The id must be
// unique within the answered query, 1-64 bytes.
func NewInlineQueryResultLocation(id string, latitude, longitude float64, title string) (*InlineQueryResultLocation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id", ErrMissingRequiredField)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingRequiredField)
	}
	return &InlineQueryResultLocation{
		Type:      InlineResultTypeLocation,
		ID:        id,
		Latitude:  latitude,
		Longitude: longitude,
		Title:     title,
	}, nil
}
