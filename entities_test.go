package mediarss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_rejectEmpty(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{name: "credit", call: func() error {
			_, err := NewCredit("  ")
			return err
		}},
		{name: "hash", call: func() error {
			_, err := NewHash("", HashMD5)
			return err
		}},
		{name: "text", call: func() error {
			_, err := NewText("")
			return err
		}},
		{name: "textConstruct", call: func() error {
			_, err := NewTextConstruct(" ", TextTypePlain)
			return err
		}},
		{name: "thumbnail", call: func() error {
			_, err := NewThumbnail("")
			return err
		}},
		{name: "category", call: func() error {
			_, err := NewCategory("")
			return err
		}},
		{name: "player", call: func() error {
			_, err := NewPlayer("")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), ErrEmptyValue)
		})
	}
}

func TestConstructors(t *testing.T) {
	credit, err := NewCredit(" Jane Doe ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", credit.Entity)
	credit.SetRole(" PRODUCER ")
	assert.Equal(t, "producer", credit.Role)

	hash, err := NewHash("dfdec888", HashMD5)
	require.NoError(t, err)
	assert.Equal(t, HashMD5, hash.Algorithm)

	th, err := NewThumbnail("http://x/t.jpg")
	require.NoError(t, err)
	require.NotNil(t, th.URL)
	assert.Equal(t, "http://x/t.jpg", th.URL.String())

	tc, err := NewTextConstruct("hello", TextTypeHTML)
	require.NoError(t, err)
	assert.Equal(t, TextTypeHTML, tc.Type)
}
