package mediarss

import (
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dsh2dsh/mediarss/internal/xml"
)

// WriteTo streams the whole extension payload to w as a sequence of
// media:* elements, each top-level element declaring the namespace prefix.
// Unset fields produce no output, so writing and re-parsing yields an
// equal Extension.
func (self *Extension) WriteTo(w io.Writer) error {
	enc := xml.NewWriter(w, Prefix, Namespace)
	for _, c := range self.Contents {
		c.encode(enc)
	}
	for _, g := range self.Groups {
		g.encode(enc)
	}
	self.Common.encode(enc)
	return enc.Flush()
}

func (self *Content) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Group) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

// WriteTo writes the construct as a media:title element. When it is a
// description, it is written through its parent instead.
func (self *TextConstruct) WriteTo(w io.Writer) error {
	return writeTo(w, func(enc *xml.Writer) { self.encode(enc, "title") })
}

func (self *Copyright) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Player) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Category) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Credit) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Hash) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Rating) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Restriction) WriteTo(w io.Writer) error {
	return writeTo(w, self.encode)
}

func (self *Text) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func (self *Thumbnail) WriteTo(w io.Writer) error {
	return writeTo(w, self.encode)
}

func (self *PeerLink) WriteTo(w io.Writer) error { return writeTo(w, self.encode) }

func writeTo(w io.Writer, encode func(enc *xml.Writer)) error {
	enc := xml.NewWriter(w, Prefix, Namespace)
	encode(enc)
	return enc.Flush()
}

func (self *Common) encode(enc *xml.Writer) {
	if self.Title != nil {
		self.Title.encode(enc, "title")
	}
	if self.Description != nil {
		self.Description.encode(enc, "description")
	}
	if self.Copyright != nil {
		self.Copyright.encode(enc)
	}
	if self.Player != nil {
		self.Player.encode(enc)
	}

	if len(self.Keywords) != 0 {
		enc.Start("keywords")
		enc.Text(strings.Join(self.Keywords, ", "))
		enc.End()
	}

	for _, v := range self.Categories {
		v.encode(enc)
	}
	for _, v := range self.Credits {
		v.encode(enc)
	}
	for _, v := range self.Hashes {
		v.encode(enc)
	}
	for _, v := range self.Ratings {
		v.encode(enc)
	}
	for _, v := range self.Restrictions {
		v.encode(enc)
	}
	for _, v := range self.TextSeries {
		v.encode(enc)
	}
	for _, v := range self.Thumbnails {
		v.encode(enc)
	}
	for _, v := range self.PeerLinks {
		v.encode(enc)
	}
}

func (self *Content) encode(enc *xml.Writer) {
	enc.Start("content")
	urlAttr(enc, "url", self.URL)
	if self.FileSize != nil {
		enc.Attr("fileSize", strconv.FormatInt(*self.FileSize, 10))
	}
	if self.Type != "" {
		enc.Attr("type", self.Type)
	}
	if self.Medium != MediumNone {
		enc.Attr("medium", self.Medium.String())
	}
	// absence means false, per the wire format
	if self.IsDefault {
		enc.Attr("isDefault", "true")
	}
	if self.Expression != ExpressionNone {
		enc.Attr("expression", self.Expression.String())
	}
	intAttr(enc, "bitrate", self.Bitrate)
	intAttr(enc, "framerate", self.FrameRate)
	if self.SamplingRate != nil {
		enc.Attr("samplingrate", strconv.FormatFloat(*self.SamplingRate, 'f', -1, 64))
	}
	intAttr(enc, "channels", self.Channels)
	durationAttr(enc, "duration", self.Duration)
	intAttr(enc, "height", self.Height)
	intAttr(enc, "width", self.Width)
	if self.Language != nil {
		enc.Attr("lang", self.Language.String())
	}

	self.Common.encode(enc)
	enc.End()
}

func (self *Group) encode(enc *xml.Writer) {
	enc.Start("group")
	for _, c := range self.Contents {
		c.encode(enc)
	}
	self.Common.encode(enc)
	enc.End()
}

func (self *TextConstruct) encode(enc *xml.Writer, name string) {
	enc.Start(name)
	if self.Type != TextTypeNone {
		enc.Attr("type", self.Type.String())
	}
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Copyright) encode(enc *xml.Writer) {
	enc.Start("copyright")
	urlAttr(enc, "url", self.URL)
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Player) encode(enc *xml.Writer) {
	enc.Start("player")
	urlAttr(enc, "url", self.URL)
	intAttr(enc, "height", self.Height)
	intAttr(enc, "width", self.Width)
	enc.End()
}

func (self *Category) encode(enc *xml.Writer) {
	enc.Start("category")
	urlAttr(enc, "scheme", self.Scheme)
	if self.Label != "" {
		enc.Attr("label", self.Label)
	}
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Credit) encode(enc *xml.Writer) {
	enc.Start("credit")
	if self.Role != "" {
		enc.Attr("role", strings.ToLower(self.Role))
	}
	urlAttr(enc, "scheme", self.Scheme)
	if self.Entity != "" {
		enc.Text(self.Entity)
	}
	enc.End()
}

func (self *Hash) encode(enc *xml.Writer) {
	enc.Start("hash")
	if self.Algorithm != HashAlgorithmNone {
		enc.Attr("algo", self.Algorithm.String())
	}
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Rating) encode(enc *xml.Writer) {
	enc.Start("rating")
	if self.Scheme != RatingSchemeNone {
		enc.Attr("scheme", self.Scheme.String())
	}
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Restriction) encode(enc *xml.Writer) {
	enc.Start("restriction")
	if self.Relationship != RelationshipNone {
		enc.Attr("relationship", self.Relationship.String())
	}
	if self.Type != RestrictionTypeNone {
		enc.Attr("type", self.Type.String())
	}
	if len(self.Values) != 0 {
		enc.Text(strings.Join(self.Values, " "))
	}
	enc.End()
}

func (self *Text) encode(enc *xml.Writer) {
	enc.Start("text")
	if self.Type != TextTypeNone {
		enc.Attr("type", self.Type.String())
	}
	if self.Language != nil {
		enc.Attr("lang", self.Language.String())
	}
	durationAttr(enc, "start", self.Start)
	durationAttr(enc, "end", self.End)
	if self.Value != "" {
		enc.Text(self.Value)
	}
	enc.End()
}

func (self *Thumbnail) encode(enc *xml.Writer) {
	enc.Start("thumbnail")
	urlAttr(enc, "url", self.URL)
	intAttr(enc, "height", self.Height)
	intAttr(enc, "width", self.Width)
	durationAttr(enc, "time", self.Time)
	enc.End()
}

func (self *PeerLink) encode(enc *xml.Writer) {
	enc.Start("peerLink")
	urlAttr(enc, "href", self.Href)
	if self.Type != "" {
		enc.Attr("type", self.Type)
	}
	enc.End()
}

func urlAttr(enc *xml.Writer, name string, u *url.URL) {
	if u != nil {
		enc.Attr(name, u.String())
	}
}

func intAttr(enc *xml.Writer, name string, v *int) {
	if v != nil {
		enc.Attr(name, strconv.Itoa(*v))
	}
}

func durationAttr(enc *xml.Writer, name string, d *time.Duration) {
	if d != nil {
		enc.Attr(name, formatDuration(*d))
	}
}

// formatDuration writes whole seconds as a bare integer and anything finer
// as invariant decimal seconds. Both forms re-parse to the same value.
func formatDuration(d time.Duration) string {
	if d%time.Second == 0 {
		return strconv.FormatInt(int64(d/time.Second), 10)
	}
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
