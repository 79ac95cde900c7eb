package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIcons(t *testing.T) {
	assert.Equal(t, []string{"dna", "laptop-code", "plus"}, DefaultIcons().Names())
}

func TestIconSVG(t *testing.T) {
	r := NewIconRegistry(IconPlus)
	svg, err := r.SVG("plus")
	require.NoError(t, err)
	assert.Contains(t, string(svg), `class="icon icon-plus"`)
	assert.Contains(t, string(svg), IconPlus.Path)

	_, err = r.SVG("dna")
	assert.Error(t, err)

	r.Add(IconDNA)
	_, err = r.SVG("dna")
	assert.NoError(t, err)
}
