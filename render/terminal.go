package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
)

// CellWriter is the part of tcell.Screen the terminal renderer needs.
type CellWriter interface {
	SetContent(x int, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Shade characters from faint to solid.
var shades = []rune{' ', '░', '▒', '▓', '█'}

// Terminal draws snapshots into a CellWriter. Row 0 holds the score line,
// the next row and the last row frame the field.
type Terminal struct {
	out CellWriter

	scoreStyle   tcell.Style
	borderStyle  tcell.Style
	spriteStyle  tcell.Style
	overlayStyle tcell.Style
}

func NewTerminal(out CellWriter) *Terminal {
	return &Terminal{
		out:          out,
		scoreStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		borderStyle:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		spriteStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		overlayStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Draw paints the whole screen. The caller calls Show afterwards.
func (t *Terminal) Draw(snap game.Snapshot) {
	width, height := t.out.Size()
	if width <= 0 || height <= 0 {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t.out.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	t.text(0, centerOffset(width, len(ScoreLine(snap))), ScoreLine(snap), t.scoreStyle)

	// Field interior sits inside a one cell border below the score line.
	cols, rows := width-2, height-3
	if cols <= 0 || rows <= 0 {
		return
	}
	t.frame(1, width, rows)

	raster := Rasterize(snap, cols, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			alpha := raster.At(col, row)
			if alpha <= 0 {
				continue
			}
			style := t.spriteStyle
			if alpha < overlayThreshold {
				style = style.Dim(true)
			}
			t.out.SetContent(col+1, row+2, shade(alpha), nil, style)
		}
	}

	if o := snap.Overlay; o != nil && o.Alpha >= overlayThreshold {
		text := []rune(o.Text)
		if len(text) > cols {
			text = text[:cols]
		}
		t.text(2+rows/2, 1+centerOffset(cols, len(text)), string(text), t.overlayStyle)
	}
}

func (t *Terminal) frame(top, width, rows int) {
	bottom := top + rows + 1
	for x := 0; x < width; x++ {
		t.out.SetContent(x, top, '─', nil, t.borderStyle)
		t.out.SetContent(x, bottom, '─', nil, t.borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		t.out.SetContent(0, y, '│', nil, t.borderStyle)
		t.out.SetContent(width-1, y, '│', nil, t.borderStyle)
	}
	t.out.SetContent(0, top, '┌', nil, t.borderStyle)
	t.out.SetContent(width-1, top, '┐', nil, t.borderStyle)
	t.out.SetContent(0, bottom, '└', nil, t.borderStyle)
	t.out.SetContent(width-1, bottom, '┘', nil, t.borderStyle)
}

func (t *Terminal) text(y, x int, s string, style tcell.Style) {
	for _, r := range s {
		t.out.SetContent(x, y, r, nil, style)
		x++
	}
}

func shade(alpha float64) rune {
	index := int(alpha*float64(len(shades)-1) + 0.5)
	return shades[min(max(index, 1), len(shades)-1)]
}
