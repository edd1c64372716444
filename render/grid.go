package render

import (
	"math"

	"github.com/nambule/audiomemorygame/constants"
)

// Grid describes the board geometry for one frame
type Grid struct {
	Cards   int
	Cols    int
	Rows    int
	CellW   int
	CellH   int
	OriginX int
	OriginY int
}

// gridColumns returns the column count for a card total, the
// narrowest arrangement that stays square-ish
func gridColumns(cards int) int {
	if cards <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(cards))))
}

// Layout computes card cell positions for the given screen size
func Layout(cards, width, height int) Grid {
	g := Grid{
		Cards: cards,
		CellW: constants.CardCellWidth,
		CellH: constants.CardCellHeight,
	}
	if cards <= 0 {
		return g
	}

	g.Cols = gridColumns(cards)
	g.Rows = (cards + g.Cols - 1) / g.Cols

	g.OriginX = (width - g.Cols*g.CellW) / 2
	if g.OriginX < 0 {
		g.OriginX = 0
	}

	// Row 0 is the status bar, the last row the debug line
	g.OriginY = 1 + (height-2-g.Rows*g.CellH)/2
	if g.OriginY < 1 {
		g.OriginY = 1
	}

	return g
}

// CellOrigin returns the top-left screen cell of a card
func (g Grid) CellOrigin(id int) (int, int) {
	return g.OriginX + (id%g.Cols)*g.CellW, g.OriginY + (id/g.Cols)*g.CellH
}

// CellAt maps a screen position to a card ID, false when the
// position falls outside the grid or past the final partial row
func (g Grid) CellAt(x, y int) (int, bool) {
	if g.Cards <= 0 || x < g.OriginX || y < g.OriginY {
		return 0, false
	}
	col := (x - g.OriginX) / g.CellW
	row := (y - g.OriginY) / g.CellH
	return g.CardIndex(col, row)
}

// CardIndex converts grid coordinates to a card ID
func (g Grid) CardIndex(col, row int) (int, bool) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return 0, false
	}
	id := row*g.Cols + col
	if id >= g.Cards {
		return 0, false
	}
	return id, true
}
