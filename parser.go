package mediarss

import (
	"fmt"
	"io"
	"iter"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/dsh2dsh/mediarss/internal/xml"
	"github.com/dsh2dsh/mediarss/options"
)

// Parse reads an XML element from r (any container carrying Media RSS
// children, typically an RSS item or an Atom entry) and collects every
// media:* child into an Extension. Elements outside the Media RSS
// namespace are skipped.
//
// Malformed attribute values never abort parsing: the affected field stays
// unset and loading continues. Structural XML errors do propagate.
func Parse(r io.Reader, opts *options.ParseOptions) (*Extension, error) {
	if opts == nil {
		opts = options.DefaultParseOptions()
	}

	p := xml.NewParser(r, opts.CharsetReader)
	if _, err := p.FindRoot(); err != nil {
		return nil, err
	}

	self := parser{p: p, ext: new(Extension), strict: opts.StrictNamespace}
	return self.parse()
}

type parser struct {
	p      *xml.Parser
	ext    *Extension
	strict bool

	err error
}

func (self *parser) parse() (*Extension, error) {
	name := strings.ToLower(self.p.Name)
	children := self.makeChildrenSeq(name)
	if children == nil {
		return nil, self.Err()
	}

	for child := range children {
		if !self.inNamespace() {
			self.p.Skip(child)
			continue
		}
		self.body(child)
	}

	if err := self.Err(); err != nil {
		return nil, err
	}
	return self.ext, nil
}

func (self *parser) Err() error {
	switch {
	case self.err != nil:
		return self.err
	case self.p.Err() != nil:
		return fmt.Errorf("mediarss: xml parser errored: %w", self.p.Err())
	}
	return nil
}

// inNamespace reports whether the current start tag belongs to the Media
// RSS namespace. Outside of strict mode a bare media: prefix is accepted
// too, because feeds in the wild use it without ever declaring it.
func (self *parser) inNamespace() bool {
	switch self.p.Space {
	case Namespace, NamespaceNoSlash:
		return true
	case Prefix:
		return !self.strict
	}
	return false
}

func (self *parser) body(name string) {
	switch name {
	case "content":
		if c, ok := self.content(name); ok {
			self.ext.Contents = append(self.ext.Contents, c)
		}
	case "group":
		if g, ok := self.group(name); ok {
			self.ext.Groups = append(self.ext.Groups, g)
		}
	default:
		if handled, _ := self.common(name, &self.ext.Common); !handled {
			self.p.Skip(name)
		}
	}
}

// common consumes one of the common-entity child elements into c. handled
// reports whether name was recognized at all (the caller skips the element
// otherwise); loaded reports whether the element carried any data.
func (self *parser) common(name string, c *Common) (handled, loaded bool) {
	handled = true
	switch name {
	case "title":
		if t, ok := self.textConstruct(name); ok {
			c.Title, loaded = t, true
		}
	case "description":
		if t, ok := self.textConstruct(name); ok {
			c.Description, loaded = t, true
		}
	case "copyright":
		if v, ok := self.copyright(name); ok {
			c.Copyright, loaded = v, true
		}
	case "player":
		if v, ok := self.player(name); ok {
			c.Player, loaded = v, true
		}
	case "keywords":
		if kw := self.keywords(name); len(kw) != 0 {
			c.Keywords, loaded = kw, true
		}
	case "category":
		if v, ok := self.category(name); ok {
			c.Categories, loaded = append(c.Categories, v), true
		}
	case "credit":
		if v, ok := self.credit(name); ok {
			c.Credits, loaded = append(c.Credits, v), true
		}
	case "hash":
		if v, ok := self.hash(name); ok {
			c.Hashes, loaded = append(c.Hashes, v), true
		}
	case "rating":
		if v, ok := self.rating(name); ok {
			c.Ratings, loaded = append(c.Ratings, v), true
		}
	case "restriction":
		if v, ok := self.restriction(name); ok {
			c.Restrictions, loaded = append(c.Restrictions, v), true
		}
	case "text":
		if v, ok := self.text(name); ok {
			c.TextSeries, loaded = append(c.TextSeries, v), true
		}
	case "thumbnail":
		if v, ok := self.thumbnail(name); ok {
			c.Thumbnails, loaded = append(c.Thumbnails, v), true
		}
	case "peerlink":
		if v, ok := self.peerLink(name); ok {
			c.PeerLinks, loaded = append(c.PeerLinks, v), true
		}
	default:
		handled = false
	}
	return handled, loaded
}

func (self *parser) content(name string) (*Content, bool) {
	children := self.makeChildrenSeq(name)
	if children == nil {
		return nil, false
	}

	c := new(Content)
	var loaded bool
	for attr, value := range self.p.AttributeSeq() {
		if value != "" && self.contentAttr(c, attr, value) {
			loaded = true
		}
	}

	for child := range children {
		if !self.inNamespace() {
			self.p.Skip(child)
			continue
		}
		handled, ok := self.common(child, &c.Common)
		if !handled {
			self.p.Skip(child)
			continue
		}
		loaded = loaded || ok
	}

	if self.err != nil {
		return nil, false
	}
	return c, loaded
}

// contentAttr sets one media:content attribute, reporting whether the value
// was understood. Unparsable values leave the field at its default.
func (self *parser) contentAttr(c *Content, name, value string) bool {
	switch name {
	case "url":
		if u := parseURL(value); u != nil {
			c.URL = u
			return true
		}
	case "filesize":
		if n := parseInt64(value); n != nil {
			c.FileSize = n
			return true
		}
	case "type":
		c.Type = strings.TrimSpace(value)
		return c.Type != ""
	case "medium":
		if m := MediumByName(value); m != MediumNone {
			c.Medium = m
			return true
		}
	case "isdefault":
		if b, err := strconv.ParseBool(value); err == nil {
			c.IsDefault = b
			return true
		}
	case "expression":
		if e := ExpressionByName(value); e != ExpressionNone {
			c.Expression = e
			return true
		}
	case "bitrate":
		if n := parseInt(value); n != nil {
			c.Bitrate = n
			return true
		}
	case "framerate":
		if n := parseInt(value); n != nil {
			c.FrameRate = n
			return true
		}
	case "samplingrate":
		if f := parseFloat(value); f != nil {
			c.SamplingRate = f
			return true
		}
	case "channels":
		if n := parseInt(value); n != nil {
			c.Channels = n
			return true
		}
	case "duration":
		if d := parseDuration(value); d != nil {
			c.Duration = d
			return true
		}
	case "height":
		if n := parseInt(value); n != nil {
			c.Height = n
			return true
		}
	case "width":
		if n := parseInt(value); n != nil {
			c.Width = n
			return true
		}
	case "lang":
		if t := parseLang(value); t != nil {
			c.Language = t
			return true
		}
	}
	return false
}

func (self *parser) group(name string) (*Group, bool) {
	children := self.makeChildrenSeq(name)
	if children == nil {
		return nil, false
	}

	g := new(Group)
	var loaded bool
	for child := range children {
		if !self.inNamespace() {
			self.p.Skip(child)
			continue
		}

		if child == "content" {
			if c, ok := self.content(child); ok {
				g.Contents = append(g.Contents, c)
				loaded = true
			}
			continue
		}

		handled, ok := self.common(child, &g.Common)
		if !handled {
			self.p.Skip(child)
			continue
		}
		loaded = loaded || ok
	}

	if self.err != nil {
		return nil, false
	}
	return g, loaded
}

func (self *parser) textConstruct(name string) (*TextConstruct, bool) {
	t := new(TextConstruct)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			if typ := TextTypeByName(self.p.Attribute("type")); typ != TextTypeNone {
				t.Type, loaded = typ, true
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				t.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return t, loaded
}

func (self *parser) copyright(name string) (*Copyright, bool) {
	c := new(Copyright)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			if u := parseURL(self.p.Attribute("url")); u != nil {
				c.URL, loaded = u, true
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				c.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return c, loaded
}

func (self *parser) player(name string) (*Player, bool) {
	p := new(Player)
	var loaded bool
	err := self.p.WithSkip(name, func() error {
		for attr, value := range self.p.AttributeSeq() {
			if value == "" {
				continue
			}
			switch attr {
			case "url":
				if u := parseURL(value); u != nil {
					p.URL, loaded = u, true
				}
			case "height":
				if n := parseInt(value); n != nil {
					p.Height, loaded = n, true
				}
			case "width":
				if n := parseInt(value); n != nil {
					p.Width, loaded = n, true
				}
			}
		}
		return nil
	})
	if err != nil {
		self.err = err
		return nil, false
	}
	return p, loaded
}

func (self *parser) keywords(name string) []string {
	var keywords []string
	err := self.p.WithText(name, nil, func(s string) error {
		for kw := range strings.SplitSeq(s, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		return nil
	})
	if err != nil {
		self.err = err
		return nil
	}
	return keywords
}

func (self *parser) category(name string) (*Category, bool) {
	c := new(Category)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			for attr, value := range self.p.AttributeSeq() {
				if value == "" {
					continue
				}
				switch attr {
				case "scheme":
					if u := parseURL(value); u != nil {
						c.Scheme, loaded = u, true
					}
				case "label":
					c.Label, loaded = value, true
				}
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				c.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return c, loaded
}

func (self *parser) credit(name string) (*Credit, bool) {
	c := new(Credit)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			for attr, value := range self.p.AttributeSeq() {
				if value == "" {
					continue
				}
				switch attr {
				case "role":
					c.SetRole(value)
					loaded = loaded || c.Role != ""
				case "scheme":
					if u := parseURL(value); u != nil {
						c.Scheme, loaded = u, true
					}
				}
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				c.Entity, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return c, loaded
}

func (self *parser) hash(name string) (*Hash, bool) {
	h := new(Hash)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			if algo := HashAlgorithmByName(self.p.Attribute("algo")); algo != HashAlgorithmNone {
				h.Algorithm, loaded = algo, true
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				h.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return h, loaded
}

func (self *parser) rating(name string) (*Rating, bool) {
	r := new(Rating)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			if scheme := RatingSchemeByName(self.p.Attribute("scheme")); scheme != RatingSchemeNone {
				r.Scheme, loaded = scheme, true
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				r.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return r, loaded
}

func (self *parser) restriction(name string) (*Restriction, bool) {
	r := new(Restriction)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			for attr, value := range self.p.AttributeSeq() {
				if value == "" {
					continue
				}
				switch attr {
				case "relationship":
					if rel := RelationshipByName(value); rel != RelationshipNone {
						r.Relationship, loaded = rel, true
					}
				case "type":
					if typ := RestrictionTypeByName(value); typ != RestrictionTypeNone {
						r.Type, loaded = typ, true
					}
				}
			}
			return nil
		},
		func(s string) error {
			if values := strings.Fields(s); len(values) != 0 {
				r.Values, loaded = values, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return r, loaded
}

func (self *parser) text(name string) (*Text, bool) {
	t := new(Text)
	var loaded bool
	err := self.p.WithText(name,
		func() error {
			for attr, value := range self.p.AttributeSeq() {
				if value == "" {
					continue
				}
				switch attr {
				case "type":
					if typ := TextTypeByName(value); typ != TextTypeNone {
						t.Type, loaded = typ, true
					}
				case "lang":
					if tag := parseLang(value); tag != nil {
						t.Language, loaded = tag, true
					}
				case "start":
					if d := parseDuration(value); d != nil {
						t.Start, loaded = d, true
					}
				case "end":
					if d := parseDuration(value); d != nil {
						t.End, loaded = d, true
					}
				}
			}
			return nil
		},
		func(s string) error {
			if s != "" {
				t.Value, loaded = s, true
			}
			return nil
		})
	if err != nil {
		self.err = err
		return nil, false
	}
	return t, loaded
}

func (self *parser) thumbnail(name string) (*Thumbnail, bool) {
	t := new(Thumbnail)
	var loaded bool
	err := self.p.WithSkip(name, func() error {
		for attr, value := range self.p.AttributeSeq() {
			if value == "" {
				continue
			}
			switch attr {
			case "url":
				if u := parseURL(value); u != nil {
					t.URL, loaded = u, true
				}
			case "height":
				if n := parseInt(value); n != nil {
					t.Height, loaded = n, true
				}
			case "width":
				if n := parseInt(value); n != nil {
					t.Width, loaded = n, true
				}
			case "time":
				if d := parseDuration(value); d != nil {
					t.Time, loaded = d, true
				}
			}
		}
		return nil
	})
	if err != nil {
		self.err = err
		return nil, false
	}
	return t, loaded
}

func (self *parser) peerLink(name string) (*PeerLink, bool) {
	l := new(PeerLink)
	var loaded bool
	err := self.p.WithSkip(name, func() error {
		for attr, value := range self.p.AttributeSeq() {
			if value == "" {
				continue
			}
			switch attr {
			case "href":
				if u := parseURL(value); u != nil {
					l.Href, loaded = u, true
				}
			case "type":
				l.Type, loaded = strings.TrimSpace(value), true
			}
		}
		return nil
	})
	if err != nil {
		self.err = err
		return nil, false
	}
	return l, loaded
}

func (self *parser) makeChildrenSeq(name string) iter.Seq[string] {
	children, err := self.p.MakeChildrenSeq(name)
	if err != nil {
		self.err = err
		return nil
	}

	return func(yield func(string) bool) {
		for name := range children {
			if err := self.Err(); err != nil {
				self.err = err
				return
			}

			if !yield(name) {
				break
			}
		}

		if err := self.Err(); err != nil {
			self.err = err
			return
		}
	}
}

func parseURL(value string) *url.URL {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return nil
	}
	return u
}

func parseInt(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

func parseInt64(value string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(value string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseLang parses an RFC 3066 style language tag. Failures are logged and
// swallowed: a bad lang attribute never fails the surrounding element.
func parseLang(value string) *language.Tag {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		logrus.WithError(err).WithField("lang", value).
			Warn("mediarss: ignore unparsable language tag")
		return nil
	}
	return &tag
}

// parseDuration parses a duration attribute. The bare integer form (whole
// seconds) always wins; decimal seconds and h:mm:ss[.frac] clock literals
// are tried after it.
func parseDuration(value string) *time.Duration {
	value = strings.TrimSpace(value)
	if n, err := strconv.ParseInt(value, 10, 64); err == nil && n >= 0 {
		d := time.Duration(n) * time.Second
		return &d
	}

	if strings.Contains(value, ":") {
		return parseClock(value)
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
		d := durationSeconds(f)
		return &d
	}
	return nil
}

func durationSeconds(f float64) time.Duration {
	return time.Duration(math.Round(f * float64(time.Second)))
}

func parseClock(value string) *time.Duration {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil
	}

	var d time.Duration
	for _, part := range parts[:len(parts)-1] {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil
		}
		d = d*60 + time.Duration(n)*time.Second
	}
	d *= 60

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || seconds < 0 {
		return nil
	}
	d += durationSeconds(seconds)
	return &d
}
