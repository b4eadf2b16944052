package mediarss

import (
	"net/url"
	"time"

	"golang.org/x/text/language"

	"github.com/dsh2dsh/mediarss/internal/json"
)

// https://www.rssboard.org/media-rss
const (
	// Namespace is the Media RSS namespace URI.
	Namespace = "http://search.yahoo.com/mrss/"

	// NamespaceNoSlash appears in feeds written against early drafts of the
	// specification.
	NamespaceNoSlash = "http://search.yahoo.com/mrss"

	// Prefix is the conventional namespace prefix.
	Prefix = "media"
)

// Common is the set of fields shared by Content, Group and the Extension
// itself. The three composites embed it; load, write and compare helpers
// operate purely in terms of it.
type Common struct {
	Title       *TextConstruct `json:"title,omitempty"`
	Description *TextConstruct `json:"description,omitempty"`
	Copyright   *Copyright     `json:"copyright,omitempty"`
	Player      *Player        `json:"player,omitempty"`

	Keywords     []string       `json:"keywords,omitempty"`
	Categories   []*Category    `json:"categories,omitempty"`
	Credits      []*Credit      `json:"credits,omitempty"`
	Hashes       []*Hash        `json:"hashes,omitempty"`
	Ratings      []*Rating      `json:"ratings,omitempty"`
	Restrictions []*Restriction `json:"restrictions,omitempty"`
	TextSeries   []*Text        `json:"text,omitempty"`
	Thumbnails   []*Thumbnail   `json:"thumbnails,omitempty"`
	PeerLinks    []*PeerLink    `json:"peerLinks,omitempty"`
}

// Content is the media:content element: one publishable representation of a
// media object. Absent fields are nil.
type Content struct {
	URL          *url.URL       `json:"url,omitempty"`
	FileSize     *int64         `json:"fileSize,omitempty"`
	Type         string         `json:"type,omitempty"`
	Medium       Medium         `json:"medium,omitempty"`
	IsDefault    bool           `json:"isDefault,omitempty"`
	Expression   Expression     `json:"expression,omitempty"`
	Bitrate      *int           `json:"bitrate,omitempty"`
	FrameRate    *int           `json:"framerate,omitempty"`
	SamplingRate *float64       `json:"samplingrate,omitempty"`
	Channels     *int           `json:"channels,omitempty"`
	Duration     *time.Duration `json:"duration,omitempty"`
	Height       *int           `json:"height,omitempty"`
	Width        *int           `json:"width,omitempty"`
	Language     *language.Tag  `json:"-"`

	Common
}

// Group is the media:group element: an ordered set of Content objects that
// are different representations of the same logical media. It carries no
// attributes of its own.
type Group struct {
	Contents []*Content `json:"contents,omitempty"`

	Common
}

// Extension is the full Media RSS payload of one feed entry: the sequence
// of content and group children plus the common fields attached directly to
// the entry.
type Extension struct {
	Contents []*Content `json:"contents,omitempty"`
	Groups   []*Group   `json:"groups,omitempty"`

	Common
}

func (self *Content) String() string {
	s, _ := json.MarshalString(self)
	return s
}

func (self *Group) String() string {
	s, _ := json.MarshalString(self)
	return s
}

func (self *Extension) String() string {
	s, _ := json.MarshalString(self)
	return s
}
