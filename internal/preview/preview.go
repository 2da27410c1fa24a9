package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"voxelworld/internal/registry"
	"voxelworld/internal/world"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ColumnSource answers the highest occupied block of a column.
type ColumnSource interface {
	TopBlockAt(x, z int) (y int, id world.BlockType, ok bool)
}

// Options selects the square of columns to draw.
type Options struct {
	CenterX, CenterZ int
	Radius           int    // in blocks
	Scale            int    // output pixels per column
	Caption          string // drawn in the top-left corner when set
}

// Background fills columns with no loaded block.
var Background = color.RGBA{A: 0xff}

// Render draws a top-down map: pixel (px, pz) shows the registry colour of
// the top block of column (CenterX-Radius+px, CenterZ-Radius+pz).
func Render(src ColumnSource, opt Options) *image.RGBA {
	side := 2*opt.Radius + 1
	tiles := image.NewRGBA(image.Rect(0, 0, side, side))
	for pz := 0; pz < side; pz++ {
		for px := 0; px < side; px++ {
			c := Background
			if _, id, ok := src.TopBlockAt(opt.CenterX-opt.Radius+px, opt.CenterZ-opt.Radius+pz); ok {
				c = registry.Color(id)
			}
			tiles.SetRGBA(px, pz, c)
		}
	}

	scale := max(opt.Scale, 1)
	out := image.NewRGBA(image.Rect(0, 0, side*scale, side*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), tiles, tiles.Bounds(), xdraw.Src, nil)

	if opt.Caption != "" {
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(2, basicfont.Face7x13.Ascent+2),
		}
		d.DrawString(opt.Caption)
	}
	return out
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	return f.Close()
}
