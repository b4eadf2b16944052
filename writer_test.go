package mediarss

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_WriteTo_empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, new(Content).WriteTo(&b))
	assert.Equal(t,
		`<media:content xmlns:media="http://search.yahoo.com/mrss/"/>`,
		b.String(), "unset fields are never emitted")
}

func TestContent_WriteTo(t *testing.T) {
	fileSize, bitrate := int64(12345), 128
	duration := 185 * time.Second
	c := &Content{
		URL:       parseURL("http://example.com/a.mp4"),
		FileSize:  &fileSize,
		Type:      "video/mp4",
		Medium:    MediumVideo,
		IsDefault: true,
		Bitrate:   &bitrate,
		Duration:  &duration,
	}

	var b strings.Builder
	require.NoError(t, c.WriteTo(&b))
	s := b.String()
	assert.Contains(t, s, `url="http://example.com/a.mp4"`)
	assert.Contains(t, s, `fileSize="12345"`)
	assert.Contains(t, s, `type="video/mp4"`)
	assert.Contains(t, s, `medium="video"`)
	assert.Contains(t, s, `isDefault="true"`)
	assert.Contains(t, s, `bitrate="128"`)
	assert.Contains(t, s, `duration="185"`)
	assert.NotContains(t, s, "framerate")
	assert.NotContains(t, s, "expression")
}

func TestContent_WriteTo_isDefaultOmitted(t *testing.T) {
	var b strings.Builder
	require.NoError(t, (&Content{Type: "audio/mpeg"}).WriteTo(&b))
	assert.NotContains(t, b.String(), "isDefault",
		"false is expressed by absence")
}

func TestCredit_WriteTo_lowersRole(t *testing.T) {
	var b strings.Builder
	c := &Credit{Entity: "Jane Doe", Role: "PRODUCER"}
	require.NoError(t, c.WriteTo(&b))
	assert.Equal(t,
		`<media:credit xmlns:media="http://search.yahoo.com/mrss/"`+
			` role="producer">Jane Doe</media:credit>`,
		b.String())
}

func TestTextConstruct_WriteTo_escapes(t *testing.T) {
	var b strings.Builder
	tc := &TextConstruct{Value: `AT&T <"quoted">`, Type: TextTypePlain}
	require.NoError(t, tc.WriteTo(&b))
	s := b.String()
	assert.Contains(t, s, "AT&amp;T")
	assert.NotContains(t, s, `<"`)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 5 * time.Second, want: "5"},
		{d: 185 * time.Second, want: "185"},
		{d: 90 * time.Second, want: "90"},
		{d: 10*time.Second + 300*time.Millisecond, want: "10.3"},
		{d: 0, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestExtension_roundTrip(t *testing.T) {
	ext := parseString(t, wrapItem(
		`<media:content url="http://example.com/movie.mp4" fileSize="12216320"`+
			` type="video/mp4" medium="video" isDefault="true" expression="full"`+
			` bitrate="128" framerate="25" samplingrate="44.1" channels="2"`+
			` duration="185" height="200" width="300" lang="en-us">`+
			`<media:title type="plain">The Moo Song</media:title>`+
			`<media:credit role="producer">producer name</media:credit>`+
			`<media:hash algo="md5">dfdec888b72151965a34b4b59031290a</media:hash>`+
			`</media:content>`+
			`<media:group>`+
			`<media:content url="http://x/1.mp4"/>`+
			`<media:content url="http://x/2.mp4"/>`+
			`<media:title>group title</media:title>`+
			`</media:group>`+
			`<media:title type="plain">Item Title</media:title>`+
			`<media:description>plain description</media:description>`+
			`<media:keywords>kitty, cat, big dog</media:keywords>`+
			`<media:copyright url="http://blah.com/more.html">2005 FooBar Media</media:copyright>`+
			`<media:player url="http://www.foo.com/player?id=1111" height="200" width="400"/>`+
			`<media:category scheme="http://search.yahoo.com/mrss/category_schema" label="Music">music/artist</media:category>`+
			`<media:rating scheme="urn:mpaa">pg</media:rating>`+
			`<media:restriction relationship="deny" type="uri">http://example.com</media:restriction>`+
			`<media:text type="plain" lang="en" start="3" end="10.3">transcript</media:text>`+
			`<media:thumbnail url="http://www.foo.com/keyframe.jpg" width="75" height="50" time="12:05:01.123"/>`+
			`<media:peerLink type="application/x-bittorrent" href="http://www.example.org/sample.torrent"/>`),
		nil)

	var b strings.Builder
	require.NoError(t, ext.WriteTo(&b))

	again := parseString(t, "<item>"+b.String()+"</item>", nil)
	assert.Zero(t, ext.Compare(again))
	assert.True(t, ext.Equal(again))
	assert.Equal(t, ext.Hash64(), again.Hash64())
}

func TestLeaf_roundTrip(t *testing.T) {
	seconds := func(d time.Duration) *time.Duration { return &d }
	n := func(v int) *int { return &v }

	src := &Extension{
		Common: Common{
			Thumbnails: []*Thumbnail{{
				URL:    parseURL("http://x/t.jpg"),
				Height: n(50),
				Width:  n(75),
				Time:   seconds(10*time.Second + 300*time.Millisecond),
			}},
			Restrictions: []*Restriction{{
				Relationship: RelationshipAllow,
				Type:         RestrictionTypeCountry,
				Values:       []string{"au", "us"},
			}},
		},
	}

	var b strings.Builder
	require.NoError(t, src.WriteTo(&b))

	again := parseString(t, "<item>"+b.String()+"</item>", nil)
	require.Len(t, again.Thumbnails, 1)
	assert.True(t, src.Equal(again))
}
