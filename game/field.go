package game

import (
	"fmt"

	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

// NewField returns the playfield rectangle anchored at the origin. Zero
// dimensions fall back to the defaults.
func NewField(width, height int) aabb.Rect {
	if width == 0 {
		width = utils.FieldWidth
	}
	if height == 0 {
		height = utils.FieldHeight
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("field size must be positive, got %dx%d", width, height))
	}
	return aabb.Rect{W: width, H: height}
}
