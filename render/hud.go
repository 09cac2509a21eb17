package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const helpText = "space play/pause  <-/-> step  f fast-forward  b rewind  r restart  q quit"

// HUDRenderer draws the title row, the playback status line and the key
// help. With no data loaded it draws the standing message instead of
// status, leaving every command a visible no-op.
type HUDRenderer struct {
	title  tcell.Style
	status tcell.Style
	dim    tcell.Style
}

// NewHUDRenderer creates the HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{
		title:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		status: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		dim:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func (r *HUDRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	drawTextCentered(screen, 0, "F O O T B A L L   R E P L A Y", r.title)

	if ctx.Snap.NoData {
		drawTextCentered(screen, ctx.Height/2, "No data available", r.title)
		drawTextCentered(screen, ctx.Height-1, helpText, r.dim)
		return
	}

	status := fmt.Sprintf("frame %d/%d  t=%6.2fs  %s",
		ctx.Snap.FrameIndex+1, ctx.Snap.FrameCount, ctx.Snap.Elapsed, ctx.Snap.State)
	switch {
	case ctx.Snap.FastForward:
		status += "  >>"
	case ctx.Snap.Rewind:
		status += "  <<"
	}
	drawTextCentered(screen, ctx.Height-2, status, r.status)
	drawTextCentered(screen, ctx.Height-1, helpText, r.dim)
}
