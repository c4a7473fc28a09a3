package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/photonics/internal/assets"
	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/games/photon"
)

// Energy band diagram geometry in world pixels.
const (
	bandX          = 20
	bandW          = 60
	bandH          = 150
	conductionTopY = 120
	valenceTopY    = 320
)

var (
	colBlack    = core.ColorBlack.RGBA()
	colWhite    = core.ColorWhite.RGBA()
	colBlue     = core.ColorBlue.RGBA()
	colOrange   = core.ColorOrange.RGBA()
	colYellow   = core.ColorYellow.RGBA()
	colGreen    = core.ColorGreen.RGBA()
	colRed      = core.ColorRed.RGBA()
	colDarkGray = core.ColorDarkGray.RGBA()
	colCyan     = core.ColorCyan.RGBA()
	colGray     = core.ColorGray.RGBA()
)

// sprites are the GPU images built once from the loaded assets.
type sprites struct {
	bulbOff *ebiten.Image
	bulbOn  *ebiten.Image
	white   *ebiten.Image // 1x1 source for filled triangles
}

func newSprites(a *assets.Assets) *sprites {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &sprites{
		bulbOff: ebiten.NewImageFromImage(a.BulbOff),
		bulbOn:  ebiten.NewImageFromImage(a.BulbOn),
		white:   white.SubImage(white.Bounds().Inset(1)).(*ebiten.Image),
	}
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	screen.Fill(colBlack)

	switch snap.Phase {
	case core.PhaseIntro:
		a.drawIntro(screen)
		return
	case core.PhaseCountdown:
		a.drawIntro(screen)
		drawTextCentered(screen, fmt.Sprintf("Starting in %d...", snap.Countdown),
			a.fonts.quiz, float64(screen.Bounds().Dy()/2+70), colYellow)
		return
	case core.PhaseQuiz:
		a.drawQuiz(screen, &snap)
		return
	case core.PhaseQuizResult:
		a.drawQuizResult(screen, &snap)
		return
	}

	a.drawWorld(screen, &snap)
	a.drawPanel(screen, &snap)
	drawText(screen, fmt.Sprintf("Photons Caught: %d", snap.Score), a.fonts.hud, 20, 20, colWhite)

	if snap.Paused {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 160}, false)
		drawTextCentered(screen, "PAUSED", a.fonts.title, float64(h/2-30), colWhite)
		drawTextCentered(screen, "Press P to resume", a.fonts.subtitle, float64(h/2+10), colWhite)
	}
}

func (a *App) drawIntro(screen *ebiten.Image) {
	h := float64(screen.Bounds().Dy())
	// The full title does not fit on one line at this size
	head, rest, found := strings.Cut(photon.IntroTitle, ": ")
	if found {
		drawTextCentered(screen, head+":", a.fonts.title, h/2-90, colWhite)
		drawTextCentered(screen, rest, a.fonts.title, h/2-60, colWhite)
	} else {
		drawTextCentered(screen, photon.IntroTitle, a.fonts.title, h/2-60, colWhite)
	}
	drawTextCentered(screen, photon.IntroSubtitle, a.fonts.subtitle, h/2+20, colCyan)
}

func (a *App) drawWorld(screen *ebiten.Image, snap *photon.Snapshot) {
	for _, s := range snap.Stars {
		vector.DrawFilledCircle(screen, float32(s.Pos.X), float32(s.Pos.Y), 2, colWhite, true)
	}

	a.drawBands(screen, snap)

	cfg := a.game.Config()
	for _, p := range snap.Photons {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(cfg.Photon.Radius), colBlue, true)
	}

	d := snap.Detector
	drawRoundedRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), 6, colGreen)

	// Wire from the panel edge down to the bulb
	wireX := float32(cfg.World.Width - 100)
	for _, p := range snap.Pairs {
		if p.Current {
			vector.StrokeLine(screen, float32(p.ElectronX), float32(p.Y), wireX, 120, 2, colRed, true)
			vector.StrokeLine(screen, wireX, 120, wireX, 240, 2, colRed, true)
		}
		vector.DrawFilledCircle(screen, float32(p.ElectronX), float32(p.Y), 6, colOrange, true)
		vector.DrawFilledCircle(screen, float32(p.HoleX), float32(p.Y), 6, colYellow, true)
	}

	for _, s := range snap.Sparks {
		for _, p := range s.Particles {
			vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 2, colCyan, true)
		}
	}
}

// drawBands draws the conduction and valence bands with their carriers.
func (a *App) drawBands(screen *ebiten.Image, snap *photon.Snapshot) {
	vector.DrawFilledRect(screen, bandX, conductionTopY, bandW, bandH, colGray, false)
	vector.DrawFilledRect(screen, bandX, valenceTopY, bandW, bandH, colGray, false)
	drawText(screen, photon.LabelConduction, a.fonts.hud, 10, 90, colWhite)
	drawText(screen, photon.LabelValence, a.fonts.hud, 5, 475, colWhite)

	// Excitation arrow across the gap
	vector.StrokeLine(screen, 50, conductionTopY+bandH, 50, valenceTopY, 2, colWhite, true)
	a.fillTriangle(screen, [3][2]float32{{45, 295}, {55, 295}, {50, 285}}, colBlue)

	cfg := a.game.Config().Band
	er, hr := float32(cfg.ElectronDrawRadius), float32(cfg.HoleDrawRadius)
	for _, e := range snap.Electrons {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), er, colOrange, true)
	}
	for _, h := range snap.Holes {
		vector.StrokeCircle(screen, float32(h.X), float32(h.Y), hr, 1, colWhite, true)
	}
	for _, b := range snap.Bands {
		hx, hy := float32(b.Hole.X), float32(b.Hole.Y)
		ey := float32(b.ElectronY)
		vector.DrawFilledCircle(screen, hx, hy, er, colYellow, true)
		vector.DrawFilledCircle(screen, hx, ey, er, colOrange, true)
		vector.StrokeLine(screen, hx, hy, hx, ey, 2, colRed, true)
	}
}

// drawPanel draws the applications panel on the right.
func (a *App) drawPanel(screen *ebiten.Image, snap *photon.Snapshot) {
	cfg := a.game.Config().World
	w, h := float32(cfg.Width), float32(cfg.Height)
	left := float64(cfg.Width - cfg.PanelWidth)

	vector.DrawFilledRect(screen, w-float32(cfg.PanelWidth), 0, float32(cfg.PanelWidth), h, colDarkGray, false)
	drawText(screen, "Applications", a.fonts.heading, left+20, 10, colCyan)

	app := photon.Applications[snap.AppIndex%len(photon.Applications)]
	drawText(screen, app.Title, a.fonts.hud, left+10, 60, colGreen)
	drawText(screen, app.Description, a.fonts.hud, left+10, 90, colWhite)

	legend := []struct {
		text string
		clr  color.Color
	}{
		{photon.LegendPhoton, colBlue},
		{photon.LegendElectron, colOrange},
		{photon.LegendHole, colYellow},
	}
	for i, l := range legend {
		y := 130 + float64(i)*30
		if snap.LegendHighlight {
			vector.DrawFilledRect(screen, float32(left+4), float32(y+2), 4, 20, l.clr, false)
		}
		drawText(screen, l.text, a.fonts.hud, left+10, y, l.clr)
	}

	bulb := a.sprites.bulbOff
	if snap.BulbGlow {
		bulb = a.sprites.bulbOn
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cfg.Width-130), 250)
	screen.DrawImage(bulb, op)
}

func (a *App) drawQuiz(screen *ebiten.Image, snap *photon.Snapshot) {
	screen.Fill(colDarkGray)
	drawText(screen, fmt.Sprintf("Q%d: %s", snap.QuestionNum, snap.Question.Prompt), a.fonts.quiz, 60, 100, colWhite)
	for i, opt := range snap.Question.Options {
		clr := colWhite
		if i == snap.Question.Correct {
			clr = colCyan
		}
		drawText(screen, fmt.Sprintf("%d. %s", i+1, opt), a.fonts.quiz, 100, 160+float64(i)*40, clr)
	}
	drawText(screen, "Press 1-4 to answer", a.fonts.subtitle, 60, float64(screen.Bounds().Dy()-60), colGray)
}

func (a *App) drawQuizResult(screen *ebiten.Image, snap *photon.Snapshot) {
	clr := colRed
	if snap.QuizPassed {
		clr = colGreen
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawText(screen, fmt.Sprintf("You scored %d/%d!", snap.QuizScore, snap.QuizTotal),
		a.fonts.title, float64(w/2-120), float64(h/2), clr)
}

// drawRoundedRect fills a rectangle with circular corners of radius r.
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	r = min(r, w/2, h/2)
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, clr, true)
	for _, c := range [4][2]float32{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		vector.DrawFilledCircle(dst, c[0], c[1], r, clr, true)
	}
}

func (a *App) fillTriangle(dst *ebiten.Image, pts [3][2]float32, clr color.RGBA) {
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(clr.R) / 0xff,
			ColorG: float32(clr.G) / 0xff,
			ColorB: float32(clr.B) / 0xff,
			ColorA: float32(clr.A) / 0xff,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, a.sprites.white, op)
}
