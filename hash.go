package mediarss

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoAlgorithm is returned by GenerateHash when no digest algorithm was
// specified.
var ErrNoAlgorithm = errors.New("mediarss: hash algorithm not specified")

// GenerateHash digests data with the given algorithm and returns the
// base64 form carried by the media:hash element.
func GenerateHash(algo HashAlgorithm, data []byte) (string, error) {
	var sum []byte
	switch algo {
	case HashMD5:
		d := md5.Sum(data)
		sum = d[:]
	case HashSHA1:
		d := sha1.Sum(data)
		sum = d[:]
	default:
		return "", fmt.Errorf("%w: %d", ErrNoAlgorithm, algo)
	}
	return base64.StdEncoding.EncodeToString(sum), nil
}

// Hash64 returns a structural FNV-1a hash over every field. Values equal
// per Compare hash equal: fields enter the hash the same way they enter the
// comparison (case folded strings, serialized URLs).
func (self *Content) Hash64() uint64 {
	h := fnv.New64a()
	self.hashInto(h)
	return h.Sum64()
}

func (self *Group) Hash64() uint64 {
	h := fnv.New64a()
	self.hashInto(h)
	return h.Sum64()
}

func (self *Extension) Hash64() uint64 {
	h := fnv.New64a()
	self.hashInto(h)
	return h.Sum64()
}

func (self *Content) hashInto(h hash.Hash64) {
	hashURL(h, self.URL)
	hashInt64(h, self.FileSize)
	hashString(h, self.Type)
	hashInt(h, int(self.Medium))
	hashBool(h, self.IsDefault)
	hashInt(h, int(self.Expression))
	hashIntPtr(h, self.Bitrate)
	hashIntPtr(h, self.FrameRate)
	hashFloat(h, self.SamplingRate)
	hashIntPtr(h, self.Channels)
	hashDuration(h, self.Duration)
	hashIntPtr(h, self.Height)
	hashIntPtr(h, self.Width)
	if self.Language != nil {
		hashString(h, self.Language.String())
	}
	hashSep(h)
	self.Common.hashInto(h)
}

func (self *Group) hashInto(h hash.Hash64) {
	for _, c := range self.Contents {
		c.hashInto(h)
	}
	hashSep(h)
	self.Common.hashInto(h)
}

func (self *Extension) hashInto(h hash.Hash64) {
	for _, c := range self.Contents {
		c.hashInto(h)
	}
	hashSep(h)
	for _, g := range self.Groups {
		g.hashInto(h)
	}
	hashSep(h)
	self.Common.hashInto(h)
}

func (self *Common) hashInto(h hash.Hash64) {
	if self.Title != nil {
		hashString(h, self.Title.Value)
		hashInt(h, int(self.Title.Type))
	}
	hashSep(h)
	if self.Description != nil {
		hashString(h, self.Description.Value)
		hashInt(h, int(self.Description.Type))
	}
	hashSep(h)
	if self.Copyright != nil {
		hashString(h, self.Copyright.Value)
		hashURL(h, self.Copyright.URL)
	}
	hashSep(h)
	if self.Player != nil {
		hashURL(h, self.Player.URL)
		hashIntPtr(h, self.Player.Height)
		hashIntPtr(h, self.Player.Width)
	}
	hashSep(h)

	for _, v := range self.Keywords {
		hashString(h, v)
	}
	hashSep(h)
	for _, v := range self.Categories {
		hashString(h, v.Value)
		hashURL(h, v.Scheme)
		hashString(h, v.Label)
	}
	hashSep(h)
	for _, v := range self.Credits {
		hashString(h, v.Entity)
		hashString(h, v.Role)
		hashURL(h, v.Scheme)
	}
	hashSep(h)
	for _, v := range self.Hashes {
		hashString(h, v.Value)
		hashInt(h, int(v.Algorithm))
	}
	hashSep(h)
	for _, v := range self.Ratings {
		hashString(h, v.Value)
		hashInt(h, int(v.Scheme))
	}
	hashSep(h)
	for _, v := range self.Restrictions {
		hashInt(h, int(v.Relationship))
		hashInt(h, int(v.Type))
		for _, entry := range v.Values {
			hashString(h, entry)
		}
	}
	hashSep(h)
	for _, v := range self.TextSeries {
		hashString(h, v.Value)
		hashInt(h, int(v.Type))
		if v.Language != nil {
			hashString(h, v.Language.String())
		}
		hashDuration(h, v.Start)
		hashDuration(h, v.End)
	}
	hashSep(h)
	for _, v := range self.Thumbnails {
		hashURL(h, v.URL)
		hashIntPtr(h, v.Height)
		hashIntPtr(h, v.Width)
		hashDuration(h, v.Time)
	}
	hashSep(h)
	for _, v := range self.PeerLinks {
		hashURL(h, v.Href)
		hashString(h, v.Type)
	}
}

// hash.Hash.Write never returns an error, so the helpers below drop it.

func hashString(h hash.Hash64, s string) {
	h.Write([]byte(strings.ToLower(s))) //nolint:errcheck
	hashSep(h)
}

func hashURL(h hash.Hash64, u *url.URL) {
	if u != nil {
		hashString(h, u.String())
	} else {
		hashSep(h)
	}
}

func hashInt(h hash.Hash64, n int) {
	hashString(h, strconv.Itoa(n))
}

func hashIntPtr(h hash.Hash64, n *int) {
	if n != nil {
		hashInt(h, *n)
	} else {
		hashSep(h)
	}
}

func hashInt64(h hash.Hash64, n *int64) {
	if n != nil {
		hashString(h, strconv.FormatInt(*n, 10))
	} else {
		hashSep(h)
	}
}

func hashFloat(h hash.Hash64, f *float64) {
	if f != nil {
		hashString(h, strconv.FormatFloat(*f, 'f', -1, 64))
	} else {
		hashSep(h)
	}
}

func hashDuration(h hash.Hash64, d *time.Duration) {
	if d != nil {
		hashString(h, strconv.FormatInt(int64(*d), 10))
	} else {
		hashSep(h)
	}
}

func hashBool(h hash.Hash64, b bool) {
	if b {
		hashString(h, "true")
	} else {
		hashString(h, "false")
	}
}

func hashSep(h hash.Hash64) {
	h.Write([]byte{0}) //nolint:errcheck
}
