package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/duopong/game"
)

// ASCII characters for intensity, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// overlayThreshold hides banner text during the dark half of a blink.
const overlayThreshold = 0.5

// alphaToASCII maps an intensity in [0, 1] to a ramp character.
func alphaToASCII(alpha float64) byte {
	if alpha <= 0 {
		return asciiChars[0]
	}
	index := int(alpha * float64(len(asciiChars)-1))
	index = min(max(index, 1), len(asciiChars)-1)
	return asciiChars[index]
}

// ScoreLine is the header shared by every renderer.
func ScoreLine(snap game.Snapshot) string {
	return fmt.Sprintf("P1 %s  %s  P2 %s", snap.Scores[0], snap.State, snap.Scores[1])
}

// RenderToASCII draws the snapshot as a framed block of cols x rows
// characters under a score line.
func RenderToASCII(snap game.Snapshot, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	raster := Rasterize(snap, cols, rows)

	lines := make([][]byte, rows)
	for row := range lines {
		line := make([]byte, cols)
		for col := range line {
			line[col] = alphaToASCII(raster.At(col, row))
		}
		lines[row] = line
	}

	if o := snap.Overlay; o != nil && o.Alpha >= overlayThreshold {
		text := o.Text
		if len(text) > cols {
			text = text[:cols]
		}
		copy(lines[rows/2][centerOffset(cols, len(text)):], text)
	}

	var ascii strings.Builder
	border := "+" + strings.Repeat("-", cols) + "+\n"
	ascii.WriteString(ScoreLine(snap))
	ascii.WriteString("\n")
	ascii.WriteString(border)
	for _, line := range lines {
		ascii.WriteString("|")
		ascii.Write(line)
		ascii.WriteString("|\n")
	}
	ascii.WriteString(border)
	return ascii.String()
}
