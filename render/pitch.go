package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// FIFA standard pitch is 105m x 68m; box markings below are fractions of
// those dimensions, taken from the same standard.
const (
	penaltyAreaDepth = 16.5 / 105.0
	penaltyAreaSpan  = 40.32 / 68.0
	goalAreaDepth    = 5.5 / 105.0
	goalAreaSpan     = 18.32 / 68.0
	centerRadius     = 9.15 / 68.0
)

// Margins reserved around the pitch for the HUD rows and breathing room
const (
	marginTop    = 2
	marginBottom = 3
	marginSide   = 3
)

// PitchArea computes the pitch rectangle for a screen of the given size.
// The pitch is horizontal (goals left and right) and fills the available
// space; terminal cells are roughly twice as tall as wide, so the width is
// not aspect-locked to 105:68 — stretching reads better than letterboxing
// in practice.
func PitchArea(width, height int) (x, y, w, h int) {
	w = width - 2*marginSide
	h = height - marginTop - marginBottom
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return marginSide, marginTop, w, h
}

// MapPosition projects a normalized pitch coordinate into screen cells
// within the given pitch rectangle. Out-of-range coordinates project
// outside the rectangle; callers clip.
func MapPosition(px, py float64, x, y, w, h int) (int, int) {
	return x + int(px*float64(w-1)+0.5), y + int(py*float64(h-1)+0.5)
}

// PitchRenderer draws the grass, touchlines, halfway line, center circle
// and both penalty and goal areas.
type PitchRenderer struct {
	grass tcell.Style
	line  tcell.Style
}

// NewPitchRenderer creates the pitch renderer with the default colors
func NewPitchRenderer() *PitchRenderer {
	grass := tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	return &PitchRenderer{
		grass: grass,
		line:  grass.Foreground(tcell.ColorWhite),
	}
}

func (r *PitchRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	x, y, w, h := PitchArea(ctx.Width, ctx.Height)

	// Grass
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, r.grass)
		}
	}

	r.drawBox(screen, x, y, w, h)
	r.drawHalfwayLine(screen, x, y, w, h)
	r.drawCenterCircle(screen, x, y, w, h)
	r.drawBoxes(screen, x, y, w, h)
}

// drawBox draws the touchlines and goal lines
func (r *PitchRenderer) drawBox(screen tcell.Screen, x, y, w, h int) {
	for col := x; col < x+w; col++ {
		screen.SetContent(col, y, tcell.RuneHLine, nil, r.line)
		screen.SetContent(col, y+h-1, tcell.RuneHLine, nil, r.line)
	}
	for row := y; row < y+h; row++ {
		screen.SetContent(x, row, tcell.RuneVLine, nil, r.line)
		screen.SetContent(x+w-1, row, tcell.RuneVLine, nil, r.line)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, r.line)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, r.line)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, r.line)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, r.line)
}

func (r *PitchRenderer) drawHalfwayLine(screen tcell.Screen, x, y, w, h int) {
	mid := x + w/2
	for row := y + 1; row < y+h-1; row++ {
		screen.SetContent(mid, row, tcell.RuneVLine, nil, r.line)
	}
}

// drawCenterCircle approximates the circle by marking, for each row it
// crosses, the two columns where the ellipse boundary falls. Terminal
// cells are taller than wide, so the horizontal radius is doubled to read
// as a circle.
func (r *PitchRenderer) drawCenterCircle(screen tcell.Screen, x, y, w, h int) {
	cx := x + w/2
	cy := y + h/2
	ry := centerRadius * float64(h)
	rx := 2 * ry
	if ry < 1 {
		return
	}

	for dy := -int(ry); dy <= int(ry); dy++ {
		frac := float64(dy) / ry
		span := rx * math.Sqrt(1-frac*frac)
		screen.SetContent(cx-int(span+0.5), cy+dy, '·', nil, r.line)
		screen.SetContent(cx+int(span+0.5), cy+dy, '·', nil, r.line)
	}
	screen.SetContent(cx, cy, '·', nil, r.line)
}

// drawBoxes draws penalty and goal areas at both ends
func (r *PitchRenderer) drawBoxes(screen tcell.Screen, x, y, w, h int) {
	r.drawArea(screen, x, y, w, h, penaltyAreaDepth, penaltyAreaSpan)
	r.drawArea(screen, x, y, w, h, goalAreaDepth, goalAreaSpan)
}

// drawArea draws one mirrored pair of rectangles hanging off the goal lines.
// depth and span are fractions of the pitch length and width.
func (r *PitchRenderer) drawArea(screen tcell.Screen, x, y, w, h int, depth, span float64) {
	d := int(depth*float64(w) + 0.5)
	s := int(span*float64(h) + 0.5)
	top := y + (h-s)/2
	bottom := top + s - 1
	if d < 1 || s < 2 {
		return
	}

	for _, inner := range []int{x + d, x + w - 1 - d} {
		for row := top; row <= bottom; row++ {
			screen.SetContent(inner, row, tcell.RuneVLine, nil, r.line)
		}
	}
	for col := x + 1; col <= x+d; col++ {
		screen.SetContent(col, top, tcell.RuneHLine, nil, r.line)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, r.line)
	}
	for col := x + w - 1 - d; col < x+w-1; col++ {
		screen.SetContent(col, top, tcell.RuneHLine, nil, r.line)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, r.line)
	}
}
