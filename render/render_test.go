package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchview/engine"
	"github.com/lixenwraith/pitchview/match"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func newTestPipeline(screen tcell.Screen) *Pipeline {
	p := NewPipeline(screen)
	p.Register(NewPitchRenderer(), PriorityPitch)
	p.Register(NewEntityRenderer(), PriorityEntities)
	p.Register(NewHUDRenderer(), PriorityHUD)
	return p
}

// screenRows flattens the simulation cells into one string per row
func screenRows(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func containsRow(rows []string, substr string) bool {
	for _, row := range rows {
		if strings.Contains(row, substr) {
			return true
		}
	}
	return false
}

func testSnapshot() engine.Snapshot {
	players := make([]match.Position, match.PlayerCount)
	for i := range players {
		players[i] = match.Position{X: float64(i) / match.PlayerCount, Y: 0.5}
	}
	return engine.Snapshot{
		Frame: match.Frame{
			Time:    1.25,
			Ball:    match.BallPosition{X: 0.5, Y: 0.5, Z: 0.9},
			Players: players,
		},
		State:      engine.StatePaused,
		Elapsed:    1.25,
		FrameIndex: 37,
		FrameCount: 900,
	}
}

func TestRenderFrameDrawsPitchEntitiesAndHUD(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	newTestPipeline(screen).RenderFrame(testSnapshot())

	rows := screenRows(screen)
	if !containsRow(rows, "F O O T B A L L") {
		t.Error("title row missing")
	}
	if !containsRow(rows, "frame 38/900") {
		t.Error("status row missing or wrong frame counter")
	}
	if !containsRow(rows, "PAUSED") {
		t.Error("playback state missing from HUD")
	}
	if !containsRow(rows, "@") {
		t.Error("no player glyphs drawn")
	}

	// Ball at (0.5, 0.5) with z=0.9 projects to the pitch center and is
	// drawn after the players, so its high-flight glyph owns that cell
	x, y, w, h := PitchArea(80, 24)
	col, row := MapPosition(0.5, 0.5, x, y, w, h)
	if r, _, _, _ := screen.GetContent(col, row); r != 'O' {
		t.Errorf("cell (%d,%d) = %q, want high ball glyph 'O'", col, row, r)
	}
}

func TestRenderFrameNoData(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	newTestPipeline(screen).RenderFrame(engine.Snapshot{State: engine.StateStopped, NoData: true})

	rows := screenRows(screen)
	if !containsRow(rows, "No data available") {
		t.Error("no-data message missing")
	}
	if containsRow(rows, "@") {
		t.Error("player glyphs drawn without data")
	}
}

func TestScrubIndicators(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	snap := testSnapshot()
	snap.FastForward = true
	newTestPipeline(screen).RenderFrame(snap)

	if !containsRow(screenRows(screen), ">>") {
		t.Error("fast-forward indicator missing")
	}
}

func TestMapPositionCorners(t *testing.T) {
	x, y, w, h := 3, 2, 74, 19

	tests := []struct {
		px, py   float64
		col, row int
	}{
		{0, 0, x, y},
		{1, 1, x + w - 1, y + h - 1},
		{0.5, 0.5, x + (w-1)/2 + 1, y + (h-1)/2},
	}
	for _, tt := range tests {
		col, row := MapPosition(tt.px, tt.py, x, y, w, h)
		if col != tt.col || row != tt.row {
			t.Errorf("MapPosition(%v, %v) = (%d, %d), want (%d, %d)",
				tt.px, tt.py, col, row, tt.col, tt.row)
		}
	}
}
