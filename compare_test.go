package mediarss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSeq_lengthDominates(t *testing.T) {
	// a shorter sequence sorts lesser no matter what it holds
	short := []*Credit{{Entity: "zzz"}}
	long := []*Credit{{Entity: "aaa"}, {Entity: "aaa"}, {Entity: "aaa"}}

	assert.Equal(t, -1, compareSeq(short, long, (*Credit).Compare))
	assert.Equal(t, 1, compareSeq(long, short, (*Credit).Compare))

	a := &Extension{Common: Common{Credits: short}}
	b := &Extension{Common: Common{Credits: long}}
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
}

func TestCompareSeq_firstDifferenceWins(t *testing.T) {
	a := []string{"alpha", "beta"}
	b := []string{"alpha", "gamma"}
	assert.Negative(t, compareSeq(a, b, compareStrings))
	assert.Zero(t, compareSeq(a, a, compareStrings))
}

func TestContent_Compare_caseInsensitive(t *testing.T) {
	a := &Content{Type: "VIDEO/MP4"}
	b := &Content{Type: "video/mp4"}
	assert.True(t, a.Equal(b))
}

func TestContent_Compare_nilSortsFirst(t *testing.T) {
	with := &Content{Common: Common{Title: &TextConstruct{Value: "a"}}}
	without := new(Content)
	assert.Positive(t, with.Compare(without))
	assert.Negative(t, without.Compare(with))

	var nilContent *Content
	assert.Negative(t, nilContent.Compare(without))
	assert.Zero(t, nilContent.Compare(nil))
}

func TestExtension_Equal_reflexiveSymmetric(t *testing.T) {
	ext := parseString(t, wrapItem(
		`<media:content url="http://example.com/a.mp4" bitrate="128"/>`+
			`<media:title>t</media:title>`), nil)
	other := parseString(t, wrapItem(
		`<media:content url="http://example.com/a.mp4" bitrate="128"/>`+
			`<media:title>t</media:title>`), nil)

	assert.True(t, ext.Equal(ext))
	assert.True(t, ext.Equal(other))
	assert.True(t, other.Equal(ext))

	different := parseString(t, wrapItem(
		`<media:content url="http://example.com/b.mp4" bitrate="128"/>`+
			`<media:title>t</media:title>`), nil)
	assert.False(t, ext.Equal(different))
	assert.False(t, different.Equal(ext))
}

func TestGroup_Compare(t *testing.T) {
	a := &Group{Contents: []*Content{{Type: "video/mp4"}}}
	b := &Group{Contents: []*Content{{Type: "video/mp4"}}}
	assert.True(t, a.Equal(b))

	b.Contents = append(b.Contents, &Content{Type: "audio/mpeg"})
	assert.Negative(t, a.Compare(b), "fewer contents sorts lesser")
}

func TestCompareURLs_caseInsensitive(t *testing.T) {
	a := parseURL("HTTP://EXAMPLE.COM/A.mp4")
	b := parseURL("http://example.com/a.mp4")
	assert.Zero(t, compareURLs(a, b))
	assert.Positive(t, compareURLs(a, nil))
	assert.Zero(t, compareURLs(nil, nil))
}
