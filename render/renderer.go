package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/engine"
)

// View carries per-frame presentation state that lives outside the game core
type View struct {
	CursorX  int // Grid column of the cursor
	CursorY  int // Grid row of the cursor
	Muted    bool
	Silent   bool // No audio device could be opened
	ShowHelp bool // Startup key list, until the first input
}

// Renderer is implemented by every layer of the frame
type Renderer interface {
	Render(screen tcell.Screen, snap engine.Snapshot, view View)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBoard Priority = iota
	PriorityStatus
	PriorityOverlay
	PriorityDebug
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Pipeline coordinates the render pass
type Pipeline struct {
	renderers []rendererEntry
	regCount  int
}

// NewPipeline creates an empty render pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (p *Pipeline) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    p.regCount,
	}
	p.regCount++

	// Insertion sort: find position and insert
	pos := len(p.renderers)
	for i, e := range p.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	p.renderers = append(p.renderers, rendererEntry{})
	copy(p.renderers[pos+1:], p.renderers[pos:])
	p.renderers[pos] = entry
}

// RenderFrame executes the render pass: fill, render all, show
func (p *Pipeline) RenderFrame(screen tcell.Screen, snap engine.Snapshot, view View) {
	screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	for _, entry := range p.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(screen, snap, view)
	}

	screen.Show()
}

// drawText writes a string left to right and returns the next column
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	return col
}
