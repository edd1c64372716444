package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/constants"
	"github.com/nambule/audiomemorygame/engine"
	"github.com/nambule/audiomemorygame/tones"
)

// BoardRenderer draws the card grid
type BoardRenderer struct{}

// NewBoardRenderer creates a board renderer
func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

// Render draws every card cell, the cursor highlight, and flip-count pips
func (b *BoardRenderer) Render(screen tcell.Screen, snap engine.Snapshot, view View) {
	width, height := screen.Size()
	g := Layout(len(snap.Cards), width, height)
	base := tcell.StyleDefault.Background(RgbBackground)

	for _, card := range snap.Cards {
		b.drawCard(screen, g, card, snap, view, base)
	}
}

func (b *BoardRenderer) drawCard(screen tcell.Screen, g Grid, card engine.Card, snap engine.Snapshot, view View, base tcell.Style) {
	x, y := g.CellOrigin(card.ID)
	labelY := y + g.CellH/2

	onCursor := view.CursorX == card.ID%g.Cols && view.CursorY == card.ID/g.Cols
	offender := snap.GameOver && card.FlipCount >= constants.MaxFlips

	label, style := cardLabel(card, base)
	if offender {
		style = base.Foreground(tcell.ColorBlack).Background(RgbCardVoided)
	} else if onCursor {
		style = base.Foreground(tcell.ColorBlack).Background(RgbCursor)
	}

	// Paint the label row across the full cell so highlights read as a block
	if onCursor || offender {
		for i := 0; i < g.CellW; i++ {
			screen.SetContent(x+i, labelY, ' ', nil, style)
		}
	}

	runes := []rune(label)
	drawText(screen, x+(g.CellW-len(runes))/2, labelY, label, style)

	b.drawPips(screen, g, card, x, y, base)
}

// cardLabel picks the face text and style for a card's state
func cardLabel(card engine.Card, base tcell.Style) (string, tcell.Style) {
	switch {
	case card.Matched:
		return fmt.Sprintf("%s ✓", tones.NoteName(card.SoundID)), base.Foreground(RgbCardMatched)
	case card.Flipped:
		return fmt.Sprintf("[ %s ]", tones.NoteName(card.SoundID)), base.Foreground(RgbCardFace)
	default:
		return "[ ? ]", base.Foreground(RgbCardBack)
	}
}

// drawPips renders the per-card flip counter once a card is two flips
// from the limit, switching to the warning color at one flip short
func (b *BoardRenderer) drawPips(screen tcell.Screen, g Grid, card engine.Card, x, y int, base tcell.Style) {
	if card.FlipCount < constants.MaxFlips-2 || card.Matched {
		return
	}

	pips := strings.Repeat("•", card.FlipCount)
	style := base.Foreground(RgbPips)
	if card.FlipCount >= constants.MaxFlips-1 {
		style = base.Foreground(RgbPipsWarn)
	}

	runes := []rune(pips)
	drawText(screen, x+(g.CellW-len(runes))/2, y+g.CellH-1, pips, style)
}
