package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solved = solver.Grid{
	[]rune("+-+-+"),
	[]rune("|...|"),
	[]rune("+-+-+"),
}

func TestColorize(t *testing.T) {
	out := Colorize(solved, '.')
	assert.Equal(t, solved.String(), color.ClearCode(out))
}

func TestImage(t *testing.T) {
	t.Run("One pixel per glyph", func(t *testing.T) {
		pic, err := Image(solved, '.', 1)
		require.NoError(t, err)
		assert.Equal(t, 5, pic.Bounds().Dx())
		assert.Equal(t, 3, pic.Bounds().Dy())
		assert.Equal(t, pathColor, pic.At(2, 1))
		assert.Equal(t, wallColor, pic.At(0, 0))
	})

	t.Run("Rejects bad scale", func(t *testing.T) {
		_, err := Image(solved, '.', 0)
		assert.ErrorIs(t, err, ErrInvalidScale)
	})
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, solved, '.', 4))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, decoded.Bounds().Dx())
	assert.Equal(t, 12, decoded.Bounds().Dy())
}

func TestImageOpenCellsStayOpen(t *testing.T) {
	unsolved := solver.Grid{[]rune("+-+-+"), []rune("|   |"), []rune("+-+-+")}
	pic, err := Image(unsolved, ' ', 1)
	require.NoError(t, err)
	assert.Equal(t, openColor, pic.At(2, 1))
}
