// Package render draws game snapshots as character cells.
package render

import (
	"math"

	"github.com/lguibr/duopong/game"
)

// Raster is a grid of cell intensities in [0, 1], row major.
type Raster struct {
	Cols, Rows int
	Cells      []float64
}

func (r Raster) At(col, row int) float64 {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return 0
	}
	return r.Cells[row*r.Cols+col]
}

// Rasterize scales the snapshot field onto cols x rows cells and paints every
// sprite with its alpha. Overlapping sprites keep the brightest value.
func Rasterize(snap game.Snapshot, cols, rows int) Raster {
	r := Raster{Cols: max(cols, 0), Rows: max(rows, 0)}
	r.Cells = make([]float64, r.Cols*r.Rows)
	if r.Cols == 0 || r.Rows == 0 || snap.Field.W <= 0 || snap.Field.H <= 0 {
		return r
	}

	for _, s := range snap.Entities {
		c0, c1 := span(s.Rect.X, s.Rect.W, snap.Field.X, snap.Field.W, r.Cols)
		r0, r1 := span(s.Rect.Y, s.Rect.H, snap.Field.Y, snap.Field.H, r.Rows)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				i := row*r.Cols + col
				r.Cells[i] = math.Max(r.Cells[i], s.Alpha)
			}
		}
	}
	return r
}

// span maps [pos, pos+size) in field units to a half-open cell range. Anything
// visible covers at least one cell.
func span(pos, size, origin, extent, cells int) (int, int) {
	scale := float64(cells) / float64(extent)
	lo := int(math.Floor(float64(pos-origin) * scale))
	hi := int(math.Ceil(float64(pos+size-origin) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, cells)
}

func centerOffset(width, text int) int {
	return max((width-text)/2, 0)
}
