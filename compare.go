package mediarss

import (
	"cmp"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// The comparators below define one equivalence over extension object
// graphs: two values are the same logical object exactly when Compare
// returns zero. The order is lexicographic, first difference wins, with two
// global rules: a nil value sorts before any non-nil one, and a shorter
// sequence sorts before a longer one regardless of its elements.

// compareSeq orders two sequences. Length dominates; only equal-length
// sequences are compared pairwise.
func compareSeq[T any](a, b []T, compare func(a, b T) int) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareStrings orders strings case-insensitively.
func compareStrings(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// compareNil resolves the nil cases of two optional values. done is false
// when both are present and the caller has to compare them itself.
func compareNil(aNil, bNil bool) (c int, done bool) {
	switch {
	case aNil && bNil:
		return 0, true
	case aNil:
		return -1, true
	case bNil:
		return 1, true
	}
	return 0, false
}

func compareOptional[T cmp.Ordered](a, b *T) int {
	if c, done := compareNil(a == nil, b == nil); done {
		return c
	}
	return cmp.Compare(*a, *b)
}

// compareURLs orders URLs by their serialized form, case-insensitively.
// url.URL.String keeps percent-escaping in the canonical form, so
// equivalent escapings compare equal.
func compareURLs(a, b *url.URL) int {
	if c, done := compareNil(a == nil, b == nil); done {
		return c
	}
	return compareStrings(a.String(), b.String())
}

func compareLangs(a, b *language.Tag) int {
	if c, done := compareNil(a == nil, b == nil); done {
		return c
	}
	return compareStrings(a.String(), b.String())
}

func (self *TextConstruct) Compare(other *TextConstruct) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	return cmp.Compare(self.Type, other.Type)
}

func (self *Copyright) Compare(other *Copyright) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	return compareURLs(self.URL, other.URL)
}

func (self *Player) Compare(other *Player) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareURLs(self.URL, other.URL); c != 0 {
		return c
	}
	if c := compareOptional(self.Height, other.Height); c != 0 {
		return c
	}
	return compareOptional(self.Width, other.Width)
}

func (self *Category) Compare(other *Category) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	if c := compareURLs(self.Scheme, other.Scheme); c != 0 {
		return c
	}
	return compareStrings(self.Label, other.Label)
}

func (self *Credit) Compare(other *Credit) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Entity, other.Entity); c != 0 {
		return c
	}
	if c := compareStrings(self.Role, other.Role); c != 0 {
		return c
	}
	return compareURLs(self.Scheme, other.Scheme)
}

func (self *Hash) Compare(other *Hash) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	return cmp.Compare(self.Algorithm, other.Algorithm)
}

func (self *Rating) Compare(other *Rating) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	return cmp.Compare(self.Scheme, other.Scheme)
}

func (self *Restriction) Compare(other *Restriction) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := cmp.Compare(self.Relationship, other.Relationship); c != 0 {
		return c
	}
	if c := cmp.Compare(self.Type, other.Type); c != 0 {
		return c
	}
	return compareSeq(self.Values, other.Values, compareStrings)
}

func (self *Text) Compare(other *Text) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareStrings(self.Value, other.Value); c != 0 {
		return c
	}
	if c := cmp.Compare(self.Type, other.Type); c != 0 {
		return c
	}
	if c := compareLangs(self.Language, other.Language); c != 0 {
		return c
	}
	if c := compareOptional(self.Start, other.Start); c != 0 {
		return c
	}
	return compareOptional(self.End, other.End)
}

func (self *Thumbnail) Compare(other *Thumbnail) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareURLs(self.URL, other.URL); c != 0 {
		return c
	}
	if c := compareOptional(self.Height, other.Height); c != 0 {
		return c
	}
	if c := compareOptional(self.Width, other.Width); c != 0 {
		return c
	}
	return compareOptional(self.Time, other.Time)
}

func (self *PeerLink) Compare(other *PeerLink) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareURLs(self.Href, other.Href); c != 0 {
		return c
	}
	return compareStrings(self.Type, other.Type)
}

// Compare orders the common fields: the four singular fields first, then
// every collection.
func (self *Common) Compare(other *Common) int {
	if c := self.Copyright.Compare(other.Copyright); c != 0 {
		return c
	}
	if c := self.Description.Compare(other.Description); c != 0 {
		return c
	}
	if c := self.Player.Compare(other.Player); c != 0 {
		return c
	}
	if c := self.Title.Compare(other.Title); c != 0 {
		return c
	}

	if c := compareSeq(self.Keywords, other.Keywords, compareStrings); c != 0 {
		return c
	}
	if c := compareSeq(self.Categories, other.Categories, (*Category).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Credits, other.Credits, (*Credit).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Hashes, other.Hashes, (*Hash).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Ratings, other.Ratings, (*Rating).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Restrictions, other.Restrictions, (*Restriction).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.TextSeries, other.TextSeries, (*Text).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Thumbnails, other.Thumbnails, (*Thumbnail).Compare); c != 0 {
		return c
	}
	return compareSeq(self.PeerLinks, other.PeerLinks, (*PeerLink).Compare)
}

// Compare orders contents by their primary attributes, then the secondary
// ones, then the common fields.
func (self *Content) Compare(other *Content) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}

	if c := compareURLs(self.URL, other.URL); c != 0 {
		return c
	}
	if c := compareOptional(self.FileSize, other.FileSize); c != 0 {
		return c
	}
	if c := compareStrings(self.Type, other.Type); c != 0 {
		return c
	}
	if c := cmp.Compare(self.Medium, other.Medium); c != 0 {
		return c
	}
	if c := compareBools(self.IsDefault, other.IsDefault); c != 0 {
		return c
	}
	if c := cmp.Compare(self.Expression, other.Expression); c != 0 {
		return c
	}
	if c := compareOptional(self.Bitrate, other.Bitrate); c != 0 {
		return c
	}

	if c := compareOptional(self.FrameRate, other.FrameRate); c != 0 {
		return c
	}
	if c := compareOptional(self.SamplingRate, other.SamplingRate); c != 0 {
		return c
	}
	if c := compareOptional(self.Channels, other.Channels); c != 0 {
		return c
	}
	if c := compareOptional(self.Duration, other.Duration); c != 0 {
		return c
	}
	if c := compareOptional(self.Height, other.Height); c != 0 {
		return c
	}
	if c := compareOptional(self.Width, other.Width); c != 0 {
		return c
	}
	if c := compareLangs(self.Language, other.Language); c != 0 {
		return c
	}

	return self.Common.Compare(&other.Common)
}

// Equal reports whether both contents are the same logical object.
func (self *Content) Equal(other *Content) bool { return self.Compare(other) == 0 }

func (self *Group) Compare(other *Group) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareSeq(self.Contents, other.Contents, (*Content).Compare); c != 0 {
		return c
	}
	return self.Common.Compare(&other.Common)
}

// Equal reports whether both groups are the same logical object.
func (self *Group) Equal(other *Group) bool { return self.Compare(other) == 0 }

func (self *Extension) Compare(other *Extension) int {
	if c, done := compareNil(self == nil, other == nil); done {
		return c
	}
	if c := compareSeq(self.Contents, other.Contents, (*Content).Compare); c != 0 {
		return c
	}
	if c := compareSeq(self.Groups, other.Groups, (*Group).Compare); c != 0 {
		return c
	}
	return self.Common.Compare(&other.Common)
}

// Equal reports whether both extensions carry the same logical payload.
// Used to detect duplicate or equivalent feed entries.
func (self *Extension) Equal(other *Extension) bool {
	return self.Compare(other) == 0
}
