package render

import (
	"testing"

	"github.com/nambule/audiomemorygame/constants"
)

// TestLayoutDimensions verifies the square-ish column fit across board sizes
func TestLayoutDimensions(t *testing.T) {
	tests := []struct {
		name         string
		cards        int
		expectedCols int
		expectedRows int
	}{
		{
			name:         "Level 1 board (4 cards)",
			cards:        4,
			expectedCols: 2,
			expectedRows: 2,
		},
		{
			name:         "Level 2 board (6 cards)",
			cards:        6,
			expectedCols: 3,
			expectedRows: 2,
		},
		{
			name:         "Level 3 board (8 cards, partial last row)",
			cards:        8,
			expectedCols: 3,
			expectedRows: 3,
		},
		{
			name:         "Level 4 board (10 cards)",
			cards:        10,
			expectedCols: 4,
			expectedRows: 3,
		},
		{
			name:         "Mid-game board (32 cards)",
			cards:        32,
			expectedCols: 6,
			expectedRows: 6,
		},
		{
			name:         "Full board (64 cards)",
			cards:        64,
			expectedCols: 8,
			expectedRows: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Layout(tt.cards, 80, 24)
			if g.Cols != tt.expectedCols {
				t.Errorf("Expected %d cols, got %d", tt.expectedCols, g.Cols)
			}
			if g.Rows != tt.expectedRows {
				t.Errorf("Expected %d rows, got %d", tt.expectedRows, g.Rows)
			}
			if g.CellW != constants.CardCellWidth {
				t.Errorf("Expected cell width %d, got %d", constants.CardCellWidth, g.CellW)
			}
			if g.CellH != constants.CardCellHeight {
				t.Errorf("Expected cell height %d, got %d", constants.CardCellHeight, g.CellH)
			}
		})
	}
}

// TestLayoutCentering verifies the grid is centered between the status
// bar and the debug row
func TestLayoutCentering(t *testing.T) {
	g := Layout(4, 80, 24)

	// 2 cols * 7 wide = 14, centered on 80
	if g.OriginX != 33 {
		t.Errorf("Expected origin x 33, got %d", g.OriginX)
	}
	// 2 rows * 3 high = 6, centered in rows 1..22
	if g.OriginY != 9 {
		t.Errorf("Expected origin y 9, got %d", g.OriginY)
	}
}

// TestLayoutClampsOnSmallScreens verifies origins never go negative or
// overlap the status bar when the board outgrows the screen
func TestLayoutClampsOnSmallScreens(t *testing.T) {
	g := Layout(64, 10, 5)

	if g.OriginX != 0 {
		t.Errorf("Expected origin x clamped to 0, got %d", g.OriginX)
	}
	if g.OriginY != 1 {
		t.Errorf("Expected origin y clamped to 1, got %d", g.OriginY)
	}
}

// TestLayoutEmptyBoard verifies a zero-card layout is inert
func TestLayoutEmptyBoard(t *testing.T) {
	g := Layout(0, 80, 24)

	if g.Cols != 0 || g.Rows != 0 {
		t.Errorf("Expected 0x0 grid, got %dx%d", g.Cols, g.Rows)
	}
	if _, ok := g.CellAt(40, 12); ok {
		t.Error("Expected CellAt to miss on an empty board")
	}
}

// TestCellOrigin verifies card position to screen cell mapping
func TestCellOrigin(t *testing.T) {
	g := Layout(6, 80, 24)

	tests := []struct {
		name      string
		id        int
		expectedX int
		expectedY int
	}{
		{"First card", 0, 29, 9},
		{"End of first row", 2, 43, 9},
		{"Start of second row", 3, 29, 12},
		{"Last card", 5, 43, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.CellOrigin(tt.id)
			if x != tt.expectedX || y != tt.expectedY {
				t.Errorf("Expected origin (%d,%d), got (%d,%d)", tt.expectedX, tt.expectedY, x, y)
			}
		})
	}
}

// TestCellAt verifies screen position to card hit testing
func TestCellAt(t *testing.T) {
	g := Layout(6, 80, 24)

	tests := []struct {
		name       string
		x, y       int
		expectedID int
		expectedOK bool
	}{
		{"Center of first card", 32, 10, 0, true},
		{"Top-left corner of first card", 29, 9, 0, true},
		{"Center of middle card, second row", 39, 13, 4, true},
		{"Bottom-right corner of last card", 49, 14, 5, true},
		{"Left of the grid", 28, 10, 0, false},
		{"Above the grid", 32, 0, 0, false},
		{"Right of the grid", 50, 10, 0, false},
		{"Below the grid", 32, 15, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := g.CellAt(tt.x, tt.y)
			if ok != tt.expectedOK {
				t.Fatalf("Expected ok=%v, got %v", tt.expectedOK, ok)
			}
			if ok && id != tt.expectedID {
				t.Errorf("Expected card %d, got %d", tt.expectedID, id)
			}
		})
	}
}

// TestCellAtPartialRow verifies the empty tail of the last row misses
func TestCellAtPartialRow(t *testing.T) {
	// 8 cards on a 3x3 grid leaves one empty cell at the tail
	g := Layout(8, 80, 24)

	if id, ok := g.CellAt(30, 14); !ok || id != 6 {
		t.Errorf("Expected card 6 in the last row, got %d (ok=%v)", id, ok)
	}
	if _, ok := g.CellAt(44, 14); ok {
		t.Error("Expected the empty tail cell to miss")
	}
}

// TestCardIndex verifies grid coordinate bounds checking
func TestCardIndex(t *testing.T) {
	g := Layout(8, 80, 24)

	tests := []struct {
		name       string
		col, row   int
		expectedID int
		expectedOK bool
	}{
		{"First cell", 0, 0, 0, true},
		{"Last occupied cell", 1, 2, 7, true},
		{"Empty tail cell", 2, 2, 0, false},
		{"Negative column", -1, 0, 0, false},
		{"Negative row", 0, -1, 0, false},
		{"Column past the grid", 3, 0, 0, false},
		{"Row past the grid", 0, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := g.CardIndex(tt.col, tt.row)
			if ok != tt.expectedOK {
				t.Fatalf("Expected ok=%v, got %v", tt.expectedOK, ok)
			}
			if ok && id != tt.expectedID {
				t.Errorf("Expected card %d, got %d", tt.expectedID, id)
			}
		})
	}
}
