package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Name)
	require.Len(t, p.Interests, 2)
	reg := DefaultIcons()
	for _, in := range p.Interests {
		_, err := reg.SVG(in.Icon)
		assert.NoError(t, err, "interest %q uses unregistered icon", in.Title)
	}
}

func TestParseProfileErrors(t *testing.T) {
	_, err := ParseProfile([]byte("tagline: no name\n"))
	assert.Error(t, err)

	_, err = ParseProfile([]byte("name: x\nunknown: 1\n"))
	assert.Error(t, err)

	_, err = ParseProfile([]byte("name: [unterminated\n"))
	assert.Error(t, err)
}
