package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/engine"
)

// StatusRenderer draws the top status bar
type StatusRenderer struct{}

// NewStatusRenderer creates a status bar renderer
func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

// Render draws the state badge, the run counters, and the right-aligned
// best score and audio indicator on row 0
func (s *StatusRenderer) Render(screen tcell.Screen, snap engine.Snapshot, view View) {
	width, _ := screen.Size()
	base := tcell.StyleDefault.Background(RgbBackground)

	// Clear status bar
	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, base)
	}

	// Draw state badge
	badgeText, badgeBg := stateBadge(snap)
	badgeStyle := base.Foreground(RgbStatusText).Background(badgeBg)
	next := drawText(screen, 0, 0, badgeText, badgeStyle)

	// Draw run counters
	stats := fmt.Sprintf(" Level %d  Pairs %d/%d  Moves %d  Time %ds",
		snap.Level, snap.Matched, snap.Pairs, snap.Moves, snap.Seconds)
	drawText(screen, next, 0, stats, base.Foreground(RgbStatusBar))

	// Right side: best score then audio indicator
	best := " Best — "
	if snap.HasBestScore {
		best = fmt.Sprintf(" Best %d ", snap.BestScore)
	}

	audioText := " ♪ "
	audioStyle := base.Foreground(RgbStatusBar)
	switch {
	case view.Silent:
		audioText = " NO AUDIO "
		audioStyle = base.Foreground(RgbMuted)
	case view.Muted:
		audioText = " MUTED "
		audioStyle = base.Foreground(RgbMuted)
	}

	startX := width - len([]rune(best)) - len([]rune(audioText))
	if startX < 0 {
		startX = 0
	}
	next = drawText(screen, startX, 0, best, base.Foreground(RgbBestScore))
	drawText(screen, next, 0, audioText, audioStyle)
}

// stateBadge picks the leading badge for the machine state
func stateBadge(snap engine.Snapshot) (string, tcell.Color) {
	switch {
	case snap.GameComplete:
		return " DONE ", RgbBadgeDone
	case snap.GameOver:
		return " OVER ", RgbBadgeOver
	case snap.Paused:
		return " PAUSE ", RgbBadgePause
	default:
		return " PLAY ", RgbBadgePlay
	}
}
