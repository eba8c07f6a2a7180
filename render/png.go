package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/yalue/image_utils"
)

var ErrInvalidScale = errors.New("scale must be at least 1")

var (
	wallColor = color.Black
	openColor = color.White
	pathColor = color.RGBA{R: 0xdd, G: 0x22, B: 0x22, A: 0xff}
)

// gridImage draws a display grid with one pixel per glyph.
type gridImage struct {
	grid  solver.Grid
	glyph rune
}

func (g *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (g *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.grid.Cols(), g.grid.Rows())
}

func (g *gridImage) At(x, y int) color.Color {
	if y < 0 || y >= len(g.grid) || x < 0 || x >= len(g.grid[y]) {
		return openColor
	}
	switch g.grid[y][x] {
	case ' ':
		return openColor
	case g.glyph:
		return pathColor
	}
	return wallColor
}

// Image returns g as an image where each glyph is a scale x scale block.
func Image(g solver.Grid, glyph rune, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, ErrInvalidScale
	}
	pic := &gridImage{grid: g, glyph: glyph}
	if scale == 1 {
		return pic, nil
	}
	return image_utils.ResizeImage(pic, g.Cols()*scale, g.Rows()*scale), nil
}

// WritePNG encodes g as a PNG image to w.
func WritePNG(w io.Writer, g solver.Grid, glyph rune, scale int) error {
	pic, err := Image(g, glyph, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
