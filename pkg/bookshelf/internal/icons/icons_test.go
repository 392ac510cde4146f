package icons

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []Name{Book, Search, Category} {
		t.Run(string(name), func(t *testing.T) {
			img, err := Load(name, 32)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
			assert.Positive(t, opaquePixels(img))
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("dragon", 32)
	assert.Error(t, err)
}

func TestRasterizeScales(t *testing.T) {
	doc := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#FF0000"/></svg>`)

	img, err := Rasterize(doc, 20, 20)
	require.NoError(t, err)

	r, g, b, a := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRasterizeRejects(t *testing.T) {
	_, err := Rasterize([]byte(`<svg viewBox="0 0 1 1"`), 8, 8)
	assert.Error(t, err, "truncated xml")

	_, err = Rasterize([]byte(`not an svg`), 8, 8)
	assert.ErrorIs(t, err, ErrEmptyIcon)

	_, err = Rasterize([]byte(`<svg viewBox="0 0 1 1"></svg>`), 0, 8)
	assert.Error(t, err)
}
