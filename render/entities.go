package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchview/match"
)

// Ball glyph by interpolated height: the marker grows as the ball rises,
// standing in for the radius scaling a pixel renderer would do.
var ballGlyphs = [...]rune{'·', '•', 'o', 'O'}

// EntityRenderer draws the 22 players and the ball from the current
// interpolated snapshot.
type EntityRenderer struct {
	home tcell.Style
	away tcell.Style
	ball tcell.Style
}

// NewEntityRenderer creates the entity renderer with the default team colors
func NewEntityRenderer() *EntityRenderer {
	grass := tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	return &EntityRenderer{
		home: grass.Foreground(tcell.ColorRed).Bold(true),
		away: grass.Foreground(tcell.ColorDodgerBlue).Bold(true),
		ball: grass.Foreground(tcell.ColorWhite).Bold(true),
	}
}

func (r *EntityRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.Snap.NoData {
		return
	}
	x, y, w, h := PitchArea(ctx.Width, ctx.Height)
	frame := ctx.Snap.Frame

	for i, p := range frame.Players {
		style := r.home
		if i >= match.AwayStart {
			style = r.away
		}
		r.plot(screen, x, y, w, h, p.X, p.Y, '@', style)
	}

	r.plot(screen, x, y, w, h, frame.Ball.X, frame.Ball.Y, ballGlyph(frame.Ball.Z), r.ball)
}

// plot clips to the pitch rectangle; out-of-range telemetry is skipped, not clamped
func (r *EntityRenderer) plot(screen tcell.Screen, x, y, w, h int, px, py float64, glyph rune, style tcell.Style) {
	col, row := MapPosition(px, py, x, y, w, h)
	if col < x || col >= x+w || row < y || row >= y+h {
		return
	}
	screen.SetContent(col, row, glyph, nil, style)
}

func ballGlyph(z float64) rune {
	switch {
	case z < 0.25:
		return ballGlyphs[0]
	case z < 0.5:
		return ballGlyphs[1]
	case z < 0.75:
		return ballGlyphs[2]
	default:
		return ballGlyphs[3]
	}
}
