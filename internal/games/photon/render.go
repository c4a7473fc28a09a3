package photon

import (
	"fmt"

	"github.com/vovakirdan/photonics/internal/core"
)

// Terminal glyphs.
const (
	GlyphStar     = '.'
	GlyphPhoton   = '●'
	GlyphDetector = '▀'
	GlyphSpark    = '·'
	GlyphElectron = 'e'
	GlyphHole     = 'o'
	GlyphWire     = '│'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 60
	minScreenH = 20
)

// Band diagram rectangles and wire endpoints in world coordinates.
var (
	conductionRect = core.NewRect(20, 120, 60, 150)
	valenceRect    = core.NewRect(20, 320, 60, 150)
	wireTopY       = 120
	wireBottomY    = 240
)

// viewport maps world pixels to screen cells. Row 0 is the HUD.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func (v viewport) x(wx float64) int {
	return int(wx * float64(v.cols) / float64(v.worldW))
}

func (v viewport) y(wy float64) int {
	return 1 + int(wy*float64(v.rows-1)/float64(v.worldH))
}

func (v viewport) w(ww int) int {
	return core.Max(1, ww*v.cols/v.worldW)
}

func (v viewport) h(wh int) int {
	return core.Max(1, wh*(v.rows-1)/v.worldH)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := viewport{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		cols:   dst.Width(),
		rows:   dst.Height(),
	}

	switch g.phase {
	case core.PhaseIntro:
		g.renderIntro(dst)
		return
	case core.PhaseCountdown:
		dst.DrawTextCenteredColored(dst.Height()/2-1, IntroTitle, core.ColorWhite)
		dst.DrawTextCenteredColored(dst.Height()/2+2, fmt.Sprintf("Starting in %d...", g.countdown), core.ColorYellow)
		return
	case core.PhaseQuiz:
		g.renderQuiz(dst)
		return
	case core.PhaseQuizResult:
		g.renderQuizResult(dst)
		return
	}

	g.renderStars(dst, v)
	g.renderBands(dst, v)
	g.renderPhotons(dst, v)
	g.renderDetector(dst, v)
	g.renderPairs(dst, v)
	g.renderSparks(dst, v)
	g.renderPanel(dst, v)
	g.renderHUD(dst)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, "Press P to resume")
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-1, IntroTitle, core.ColorWhite)
	dst.DrawTextCenteredColored(mid+1, IntroSubtitle, core.ColorCyan)
	dst.DrawTextCenteredColored(dst.Height()-2, "Press Enter to skip", core.ColorGray)
}

// renderHUD draws the caught counter.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Photons Caught: %d", g.score), core.ColorWhite)
	if g.free {
		hint := "Free play"
		dst.DrawTextColored(dst.Width()-len(hint)-1, 0, hint, core.ColorGray)
	}
}

func (g *Game) renderStars(dst *core.Screen, v viewport) {
	for _, s := range g.stars {
		dst.SetColored(v.x(s.Pos.X), v.y(s.Pos.Y), GlyphStar, core.ColorGray)
	}
}

// renderBands draws the energy-band diagram with carriers.
func (g *Game) renderBands(dst *core.Screen, v viewport) {
	for _, r := range []core.Rect{conductionRect, valenceRect} {
		dst.DrawRectColored(core.NewRect(v.x(float64(r.X)), v.y(float64(r.Y)), v.w(r.W), v.h(r.H)), '░', core.ColorGray)
	}
	arrowX := v.x(float64(g.cfg.Band.ElectronX))
	dst.DrawVLineColored(arrowX, v.y(float64(conductionRect.Bottom())), v.y(float64(valenceRect.Y))-v.y(float64(conductionRect.Bottom())), '↑', core.ColorBlue)

	for _, e := range g.electrons {
		dst.SetColored(v.x(e.X), v.y(e.Y), GlyphElectron, core.ColorOrange)
	}
	for _, h := range g.holes {
		dst.SetColored(v.x(h.X), v.y(h.Y), GlyphHole, core.ColorWhite)
	}
	for _, b := range g.bands {
		// The rising electron shares the hole's column
		dst.SetColored(v.x(b.Hole.X), v.y(b.ElectronY), GlyphElectron, core.ColorOrange)
		dst.SetColored(v.x(b.Hole.X), v.y(b.Hole.Y), GlyphHole, core.ColorYellow)
	}

	// Labels go last and below the valence band so carriers never cover them
	dst.DrawTextColored(0, v.y(float64(conductionRect.Y))-1, LabelConduction, core.ColorWhite)
	valenceRow := min(v.y(float64(valenceRect.Bottom()))+1, dst.Height()-1)
	dst.DrawTextColored(0, valenceRow, LabelValence, core.ColorWhite)
}

func (g *Game) renderPhotons(dst *core.Screen, v viewport) {
	for _, p := range g.photons {
		dst.SetColored(v.x(p.Pos.X), v.y(p.Pos.Y), GlyphPhoton, core.ColorBlue)
	}
}

func (g *Game) renderDetector(dst *core.Screen, v viewport) {
	d := g.detector
	x := v.x(float64(d.X))
	y := v.y(float64(d.Y))
	for i := range v.w(d.W) {
		dst.SetColored(x+i, y, GlyphDetector, core.ColorGreen)
	}
}

func (g *Game) renderPairs(dst *core.Screen, v viewport) {
	current := false
	for _, p := range g.pairs {
		dst.SetColored(v.x(p.ElectronX), v.y(p.Y)-1, GlyphElectron, core.ColorOrange)
		dst.SetColored(v.x(p.HoleX), v.y(p.Y)-1, GlyphHole, core.ColorYellow)
		if p.Current {
			current = true
		}
	}
	if current {
		top := v.y(float64(wireTopY))
		wireX := v.x(float64(g.cfg.World.Width - 100))
		dst.DrawVLineColored(wireX, top, v.y(float64(wireBottomY))-top+1, GlyphWire, core.ColorRed)
	}
}

func (g *Game) renderSparks(dst *core.Screen, v viewport) {
	for _, s := range g.sparks {
		for _, p := range s.Particles {
			if p.Life > 0 {
				dst.SetColored(v.x(p.Pos.X), v.y(p.Pos.Y), GlyphSpark, core.ColorCyan)
			}
		}
	}
}

// renderPanel draws the applications panel, legend and bulb on the right.
func (g *Game) renderPanel(dst *core.Screen, v viewport) {
	panelX := v.x(float64(g.cfg.World.Width - g.cfg.World.PanelWidth))
	for y := 1; y < dst.Height(); y++ {
		dst.SetColored(panelX, y, '│', core.ColorDarkGray)
	}

	x := panelX + 2
	app := Applications[g.appIndex]
	dst.DrawTextColored(x, 2, "Applications", core.ColorCyan)
	dst.DrawTextColored(x, 4, app.Title, core.ColorGreen)
	dst.DrawTextColored(x, 5, app.Description, core.ColorWhite)

	dst.DrawTextColored(x, 7, LegendPhoton, core.ColorBlue)
	dst.DrawTextColored(x, 8, LegendElectron, core.ColorOrange)
	dst.DrawTextColored(x, 9, LegendHole, core.ColorYellow)
	if g.legendHighlight > 0 {
		// Point at the carriers a catch just created
		dst.SetColored(x-1, 8, '▸', core.ColorOrange)
		dst.SetColored(x-1, 9, '▸', core.ColorYellow)
	}

	bulbY := v.y(250)
	if g.bulbGlow > 0 {
		dst.DrawTextColored(x+3, bulbY, "(*)", core.ColorYellow)
	} else {
		dst.DrawTextColored(x+3, bulbY, "( )", core.ColorGray)
	}
	dst.DrawTextColored(x+4, bulbY+1, "U", core.ColorGray)
}

func (g *Game) renderQuiz(dst *core.Screen) {
	q, idx, ok := g.quizSession.Current()
	if !ok {
		return
	}
	x := 4
	y := 2
	dst.DrawTextColored(x, y, fmt.Sprintf("Quiz %d/%d", idx+1, g.quizSession.Total()), core.ColorWhite)
	dst.DrawTextColored(x, y+2, q.Prompt, core.ColorWhite)
	for i, opt := range q.Options {
		c := core.ColorWhite
		if i == q.Correct {
			c = core.ColorCyan
		}
		dst.DrawTextColored(x+2, y+4+i, fmt.Sprintf("%d. %s", i+1, opt), c)
	}
	dst.DrawTextColored(x, y+9, "Press 1-4 to answer", core.ColorGray)
}

func (g *Game) renderQuizResult(dst *core.Screen) {
	s := g.quizSession
	c := core.ColorRed
	if s.Passed(g.cfg.Quiz.PassMark) {
		c = core.ColorGreen
	}
	dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("You scored %d/%d!", s.Score(), s.Total()), c)
}
