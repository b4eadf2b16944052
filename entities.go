package mediarss

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ErrEmptyValue is returned by constructors when a required value is empty
// or blank.
var ErrEmptyValue = errors.New("mediarss: empty value")

// TextConstruct is the payload of the media:title and media:description
// elements: a string plus the encoding it uses.
type TextConstruct struct {
	Value string   `json:"value,omitempty"`
	Type  TextType `json:"type,omitempty"`
}

// NewTextConstruct creates a TextConstruct with a non-empty value.
func NewTextConstruct(value string, typ TextType) (*TextConstruct, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: text construct", ErrEmptyValue)
	}
	return &TextConstruct{Value: value, Type: typ}, nil
}

// Copyright is the media:copyright element: a notice plus an optional URL
// pointing to the terms of use.
type Copyright struct {
	Value string   `json:"value,omitempty"`
	URL   *url.URL `json:"url,omitempty"`
}

// Player is the media:player element: a URL of a page capable of playing
// the media object, with an optional window size.
type Player struct {
	URL    *url.URL `json:"url,omitempty"`
	Height *int     `json:"height,omitempty"`
	Width  *int     `json:"width,omitempty"`
}

// NewPlayer creates a Player for the given URL.
func NewPlayer(rawURL string) (*Player, error) {
	u, err := parseRequiredURL("player url", rawURL)
	if err != nil {
		return nil, err
	}
	return &Player{URL: u}, nil
}

// Category is the media:category element: a taxonomy entry with an optional
// scheme URI and a human readable label.
type Category struct {
	Value  string   `json:"value,omitempty"`
	Scheme *url.URL `json:"scheme,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// NewCategory creates a Category with a non-empty value.
func NewCategory(value string) (*Category, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: category", ErrEmptyValue)
	}
	return &Category{Value: value}, nil
}

// Credit is the media:credit element: an entity that contributed to the
// media object. Roles are kept lower-case, per the Media RSS specification.
type Credit struct {
	Entity string   `json:"entity,omitempty"`
	Role   string   `json:"role,omitempty"`
	Scheme *url.URL `json:"scheme,omitempty"`
}

// NewCredit creates a Credit for a non-empty entity.
func NewCredit(entity string) (*Credit, error) {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return nil, fmt.Errorf("%w: credit entity", ErrEmptyValue)
	}
	return &Credit{Entity: entity}, nil
}

// SetRole assigns the credited role, normalized to lower-case.
func (self *Credit) SetRole(role string) {
	self.Role = strings.ToLower(strings.TrimSpace(role))
}

// Hash is the media:hash element: a digest of the media object's binary.
type Hash struct {
	Value     string        `json:"value,omitempty"`
	Algorithm HashAlgorithm `json:"algo,omitempty"`
}

// NewHash creates a Hash with a non-empty digest value.
func NewHash(value string, algo HashAlgorithm) (*Hash, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: hash", ErrEmptyValue)
	}
	return &Hash{Value: value, Algorithm: algo}, nil
}

// Rating is the media:rating element: permissible audience information
// under a rating scheme.
type Rating struct {
	Value  string       `json:"value,omitempty"`
	Scheme RatingScheme `json:"scheme,omitempty"`
}

// Restriction is the media:restriction element: syndication restrictions
// on the media object. Values holds the space-delimited restriction
// entries (country codes or URIs, depending on Type).
type Restriction struct {
	Relationship RestrictionRelationship `json:"relationship,omitempty"`
	Type         RestrictionType         `json:"type,omitempty"`
	Values       []string                `json:"values,omitempty"`
}

// Text is one entry of the media:text series: a transcript or closed
// captioning piece, optionally scoped to a time range within the media.
type Text struct {
	Value    string         `json:"value,omitempty"`
	Type     TextType       `json:"type,omitempty"`
	Language *language.Tag  `json:"-"`
	Start    *time.Duration `json:"start,omitempty"`
	End      *time.Duration `json:"end,omitempty"`
}

// NewText creates a Text with a non-empty value.
func NewText(value string) (*Text, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: text", ErrEmptyValue)
	}
	return &Text{Value: value}, nil
}

// Thumbnail is the media:thumbnail element: a representative image,
// optionally sized and, for moving media, offset into the stream.
type Thumbnail struct {
	URL    *url.URL       `json:"url,omitempty"`
	Height *int           `json:"height,omitempty"`
	Width  *int           `json:"width,omitempty"`
	Time   *time.Duration `json:"time,omitempty"`
}

// NewThumbnail creates a Thumbnail for the given URL.
func NewThumbnail(rawURL string) (*Thumbnail, error) {
	u, err := parseRequiredURL("thumbnail url", rawURL)
	if err != nil {
		return nil, err
	}
	return &Thumbnail{URL: u}, nil
}

// PeerLink is the media:peerLink element: a P2P link to the media object.
type PeerLink struct {
	Href *url.URL `json:"href,omitempty"`
	Type string   `json:"type,omitempty"`
}

func parseRequiredURL(what, rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyValue, what)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("mediarss: parse %s: %w", what, err)
	}
	return u, nil
}
