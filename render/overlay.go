package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/constants"
	"github.com/nambule/audiomemorygame/engine"
)

// OverlayRenderer draws centered modal text over the board
type OverlayRenderer struct{}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

type overlayLine struct {
	text  string
	title bool
}

// Render draws at most one overlay, in precedence order: game complete,
// game over, paused, then the startup help
func (o *OverlayRenderer) Render(screen tcell.Screen, snap engine.Snapshot, view View) {
	lines := overlayLines(snap, view)
	if len(lines) == 0 {
		return
	}

	width, height := screen.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	titleStyle := base.Foreground(RgbOverlayTitle).Bold(true)
	textStyle := base.Foreground(RgbOverlayText)

	startY := (height - len(lines)) / 2
	if startY < 1 {
		startY = 1
	}

	for i, line := range lines {
		style := textStyle
		if line.title {
			style = titleStyle
		}
		runes := []rune(line.text)
		x := (width - len(runes)) / 2
		if x < 0 {
			x = 0
		}
		drawText(screen, x, startY+i, line.text, style)
	}
}

func overlayLines(snap engine.Snapshot, view View) []overlayLine {
	switch {
	case snap.GameComplete:
		return []overlayLine{
			{"GAME COMPLETE", true},
			{"", false},
			{fmt.Sprintf("every level cleared, final score %d", snap.BestScore), false},
			{"", false},
			{"R restart   q quit", false},
		}
	case snap.GameOver:
		return gameOverLines(snap)
	case snap.Paused:
		return []overlayLine{
			{"PAUSED", true},
			{"", false},
			{"p resume   q quit", false},
		}
	case view.ShowHelp:
		return []overlayLine{
			{"AUDIO MEMORY", true},
			{"", false},
			{"match the pairs by their tones", false},
			{"", false},
			{"arrows/hjkl  move cursor", false},
			{"enter/space  reveal card", false},
			{"p pause   m mute   r reset level", false},
			{"- previous level   R restart", false},
			{"q quit", false},
			{"", false},
			{"flip any card five times and the game is lost", false},
		}
	default:
		return nil
	}
}

func gameOverLines(snap engine.Snapshot) []overlayLine {
	lines := []overlayLine{
		{"GAME OVER", true},
		{"", false},
	}

	// Name the offending card by its grid position
	cols := gridColumns(len(snap.Cards))
	for _, card := range snap.Cards {
		if card.FlipCount >= constants.MaxFlips {
			lines = append(lines, overlayLine{
				fmt.Sprintf("card at row %d, column %d hit the flip limit", card.ID/cols+1, card.ID%cols+1),
				false,
			})
			break
		}
	}

	lines = append(lines,
		overlayLine{"", false},
		overlayLine{"r retry level   R restart   q quit", false},
	)
	return lines
}
