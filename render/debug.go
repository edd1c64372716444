package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/engine"
	"github.com/nambule/audiomemorygame/status"
)

// DebugRenderer prints the process counters on the bottom row
type DebugRenderer struct {
	enabled bool
}

// NewDebugRenderer creates a debug renderer, visible only when enabled
func NewDebugRenderer(enabled bool) *DebugRenderer {
	return &DebugRenderer{enabled: enabled}
}

// IsVisible reports whether the debug row should be drawn
func (d *DebugRenderer) IsVisible() bool {
	return d.enabled
}

// Render draws the counter snapshot as name=value pairs
func (d *DebugRenderer) Render(screen tcell.Screen, snap engine.Snapshot, view View) {
	width, height := screen.Size()
	y := height - 1

	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDebugText)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	stats := status.Default.Snapshot()
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s=%d", s.Name, s.Value))
	}
	drawText(screen, 0, y, strings.Join(parts, " "), style)
}
