package xml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var b strings.Builder
	w := NewWriter(&b, "media", "http://search.yahoo.com/mrss/")

	w.Start("content")
	w.Attr("url", "http://example.com/a.mp4")
	w.Start("title")
	w.Text("The Moo Song")
	w.End()
	w.End()
	require.NoError(t, w.Flush())

	assert.Equal(t,
		`<media:content xmlns:media="http://search.yahoo.com/mrss/"`+
			` url="http://example.com/a.mp4">`+
			`<media:title>The Moo Song</media:title>`+
			`</media:content>`,
		b.String())
}

func TestWriter_selfClosing(t *testing.T) {
	var b strings.Builder
	w := NewWriter(&b, "media", "ns")
	w.Start("thumbnail")
	w.Attr("url", "http://x/t.jpg")
	w.End()
	require.NoError(t, w.Flush())
	assert.Equal(t, `<media:thumbnail xmlns:media="ns" url="http://x/t.jpg"/>`,
		b.String())
}

func TestWriter_escapes(t *testing.T) {
	var b strings.Builder
	w := NewWriter(&b, "media", "ns")
	w.Start("title")
	w.Attr("label", `a"b<c`)
	w.Text("AT&T <tag>")
	w.End()
	require.NoError(t, w.Flush())

	s := b.String()
	assert.Contains(t, s, "&amp;")
	assert.Contains(t, s, "&#34;")
	assert.NotContains(t, s, "<tag>")
}

func TestWriter_errors(t *testing.T) {
	t.Run("attr outside start tag", func(t *testing.T) {
		var b strings.Builder
		w := NewWriter(&b, "media", "ns")
		w.Start("title")
		w.Text("x")
		w.Attr("type", "plain")
		w.End()
		require.Error(t, w.Flush())
	})

	t.Run("end without start", func(t *testing.T) {
		var b strings.Builder
		w := NewWriter(&b, "media", "ns")
		w.End()
		require.Error(t, w.Flush())
	})

	t.Run("unclosed element", func(t *testing.T) {
		var b strings.Builder
		w := NewWriter(&b, "media", "ns")
		w.Start("title")
		require.Error(t, w.Flush())
	})
}

func TestWriter_namespaceOncePerRoot(t *testing.T) {
	var b strings.Builder
	w := NewWriter(&b, "media", "ns")
	w.Start("content")
	w.Start("title")
	w.End()
	w.End()
	w.Start("group")
	w.End()
	require.NoError(t, w.Flush())

	s := b.String()
	assert.Equal(t, 2, strings.Count(s, `xmlns:media="ns"`),
		"each top level element declares the prefix, nested ones don't")
}
