package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchview/engine"
)

// RenderPriority orders renderer execution, lowest first
type RenderPriority int

const (
	// PriorityPitch draws the field background and markings
	PriorityPitch RenderPriority = 100

	// PriorityEntities draws players and the ball over the pitch
	PriorityEntities RenderPriority = 200

	// PriorityHUD draws text overlays last so nothing paints over them
	PriorityHUD RenderPriority = 400
)

// RenderContext carries everything a renderer may read for one frame
type RenderContext struct {
	Width  int
	Height int
	Snap   engine.Snapshot
}

// Renderer is implemented by anything with visual output
type Renderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Pipeline coordinates the render pass: clear, render in priority order, show
type Pipeline struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewPipeline creates a pipeline for the given screen
func NewPipeline(screen tcell.Screen) *Pipeline {
	return &Pipeline{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority, keeping the list
// sorted via insertion sort
func (p *Pipeline) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority, index: p.regCount}
	p.regCount++

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

// RenderFrame executes one full render pass for the given snapshot
func (p *Pipeline) RenderFrame(snap engine.Snapshot) {
	width, height := p.screen.Size()
	ctx := RenderContext{Width: width, Height: height, Snap: snap}

	p.screen.Clear()
	for _, entry := range p.renderers {
		entry.renderer.Render(ctx, p.screen)
	}
	p.screen.Show()
}

// drawText writes a string left to right starting at (x, y), clipped to the screen
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return
	}
	cx := x
	for _, r := range text {
		if cx >= 0 && cx < width {
			screen.SetContent(cx, y, r, nil, style)
		}
		cx++
	}
}

// drawTextCentered writes a string centered on the given row
func drawTextCentered(screen tcell.Screen, y int, text string, style tcell.Style) {
	width, _ := screen.Size()
	drawText(screen, (width-len([]rune(text)))/2, y, text, style)
}
