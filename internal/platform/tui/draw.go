package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/fx"
	"github.com/vovakirdan/neondash/internal/game"
	"github.com/vovakirdan/neondash/internal/level"
)

const (
	hudRows     = 1
	progressLen = 20
)

// Renderer is the terminal render sink. It keeps the effects of past frames
// alive and projects each frame into a character screen.
type Renderer struct {
	screen *core.Screen
	arena  *fx.Arena
	phys   game.Physics
	logger *log.Logger

	levels  int
	last    game.RunState
	started bool
}

// NewRenderer creates a renderer drawing into a width x height screen.
func NewRenderer(width, height int, phys game.Physics, arenaCap int, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{
		screen: core.NewScreen(width, height),
		arena:  fx.NewArena(arenaCap),
		phys:   phys,
		logger: logger,
		levels: 1,
	}
}

// Screen returns the screen the last frame was drawn into.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the screen size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// SetLevelCount tells the menu how many levels can be picked.
func (r *Renderer) SetLevelCount(n int) {
	r.levels = core.Max(n, 1)
}

// Effects returns the live effects.
func (r *Renderer) Effects() []fx.Effect {
	return r.arena.Effects()
}

// SubmitFrame implements game.RenderSink.
func (r *Renderer) SubmitFrame(f game.Frame) {
	r.logTransition(f)
	r.arena.Update()
	r.arena.Absorb(f.Emissions)
	r.draw(f)
}

func (r *Renderer) logTransition(f game.Frame) {
	if r.started && f.State == r.last {
		return
	}
	r.started = true
	r.last = f.State

	id := ""
	if f.Level != nil {
		id = f.Level.ID
	}
	switch f.State {
	case game.StateRunning:
		r.logger.Debug("run started", "level", id)
	case game.StateDead:
		r.logger.Debug("run ended", "level", id, "result", "dead", "percent", f.Percent, "deaths", f.Deaths)
	case game.StateWon:
		r.logger.Info("level complete", "level", id, "ticks", f.Tick, "deaths", f.Deaths)
	}
}

// viewport maps world pixels to screen cells.
type viewport struct {
	camX   float64
	pxCol  float64
	pxRow  float64
	origin int
}

func (r *Renderer) viewport(camX float64) viewport {
	p := r.phys
	cols := core.Max(r.screen.Width()/core.Max(p.ViewportCols, 1), 1)
	rows := core.Max((r.screen.Height()-hudRows)/(p.GroundRow+1), 1)
	return viewport{
		camX:   camX,
		pxCol:  p.TileSize / float64(cols),
		pxRow:  p.TileSize / float64(rows),
		origin: hudRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.camX) / v.pxCol))
}

func (v viewport) row(y float64) int {
	return v.origin + int(math.Floor(y/v.pxRow))
}

// rect projects a world box to the cells it covers.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := core.Max(int(math.Ceil((b.X+b.W-v.camX)/v.pxCol)), x0+1)
	y1 := core.Max(v.origin+int(math.Ceil((b.Y+b.H)/v.pxRow)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (r *Renderer) draw(f game.Frame) {
	r.screen.Clear()
	if f.Level == nil {
		return
	}
	v := r.viewport(f.CameraX)
	accent := core.NeonColor(f.LevelIndex)

	r.drawGround(v, accent)
	r.drawVictoryLine(v, f.Level)
	r.drawPlatforms(v, f.Level.Platforms)
	r.drawPortals(v, f.Level.Portals)
	r.drawSpikes(v, f.Level.Spikes)
	r.drawEffects(v, fx.KindTrail)
	if !f.Pose.Dead {
		r.drawAvatar(v, f.Pose, accent)
	}
	r.drawEffects(v, fx.KindParticle)
	r.drawHUD(f, accent)

	switch f.State {
	case game.StateMenu:
		r.drawOverlay(accent, "N E O N   D A S H", "< "+f.Level.Name+" >",
			fmt.Sprintf("level %d/%d", f.LevelIndex+1, r.levels), "press space to start")
	case game.StateDead:
		r.drawOverlay(core.ColorPink, "CRASHED", fmt.Sprintf("%d%% complete", f.Percent), "press space to retry")
	case game.StateWon:
		r.drawOverlay(core.ColorLime, "LEVEL COMPLETE", f.Level.Name, "press space for the next level")
	}
}

func (r *Renderer) drawGround(v viewport, accent core.Color) {
	top := v.row(r.phys.GroundY())
	r.screen.DrawHLine(0, top, r.screen.Width(), '▀', accent)
	for y := top + 1; y < r.screen.Height(); y++ {
		r.screen.DrawHLine(0, y, r.screen.Width(), '░', core.ColorGray)
	}
}

func (r *Renderer) drawVictoryLine(v viewport, lvl *level.Level) {
	x := v.col(r.phys.VictoryX(lvl))
	r.screen.DrawVLine(x, v.origin, v.row(r.phys.GroundY())-v.origin, '┃', core.ColorLime)
}

func (r *Renderer) tileBox(x, y, w, h int) core.Box {
	t := r.phys.TileSize
	return core.NewBox(float64(x)*t, float64(y)*t, float64(w)*t, float64(h)*t)
}

func (r *Renderer) drawPlatforms(v viewport, platforms []level.Platform) {
	for _, p := range platforms {
		rect := v.rect(r.tileBox(p.X, p.Y, p.W, p.H))
		r.screen.DrawRect(rect, '▓', core.ColorBlue)
		r.screen.DrawHLine(rect.X, rect.Y, rect.W, '▀', core.ColorWhite)
	}
}

func (r *Renderer) drawPortals(v viewport, portals []level.Portal) {
	for _, p := range portals {
		rect := v.rect(r.tileBox(p.X, p.Y, 1, 1))
		c := core.ColorMagenta
		if p.Mode == level.ModeCube {
			c = core.ColorCyan
		}
		// The ring stands a little taller than its trigger tile.
		r.screen.DrawVLine(rect.X, rect.Y-1, rect.H+2, '(', c)
		r.screen.DrawVLine(rect.Right()-1, rect.Y-1, rect.H+2, ')', c)
	}
}

func (r *Renderer) drawSpikes(v viewport, spikes []level.Tile) {
	width := r.screen.Width()
	for _, s := range spikes {
		rect := v.rect(r.tileBox(s.X, s.Y, 1, 1))
		if rect.Right() < 0 || rect.X >= width {
			continue
		}
		mid := rect.X + rect.W/2
		for y := rect.Y; y < rect.Bottom(); y++ {
			// Each row down widens by one cell on both sides.
			spread := core.Min(y-rect.Y+1, rect.W/2)
			if y == rect.Bottom()-1 {
				spread = rect.W / 2
			}
			for x := mid - spread; x < mid; x++ {
				r.screen.SetColored(x, y, '◢', core.ColorPink)
			}
			for x := mid; x < mid+spread; x++ {
				r.screen.SetColored(x, y, '◣', core.ColorPink)
			}
			if rect.W == 1 {
				r.screen.SetColored(rect.X, y, '▲', core.ColorPink)
			}
		}
	}
}

func (r *Renderer) drawAvatar(v viewport, pose game.Pose, accent core.Color) {
	rect := v.rect(core.NewBox(pose.X, pose.Y, pose.W, pose.H))
	if pose.Mode == level.ModeShip {
		r.screen.DrawRect(rect, '═', core.ColorYellow)
		nose := '▶'
		switch {
		case pose.Rotation < -0.1:
			nose = '◥'
		case pose.Rotation > 0.1:
			nose = '◢'
		}
		r.screen.DrawVLine(rect.Right()-1, rect.Y, rect.H, nose, core.ColorYellow)
		return
	}

	fill := '█'
	if game.SnapRotation(pose.Rotation) != pose.Rotation {
		fill = '▒'
	}
	r.screen.DrawRect(rect, fill, accent)
}

func (r *Renderer) drawEffects(v viewport, kind fx.Kind) {
	for _, e := range r.arena.Effects() {
		if e.Kind != kind {
			continue
		}
		glyph := '·'
		switch {
		case kind == fx.KindParticle && e.Size > 6:
			glyph = '*'
		case e.Alpha > 0.6:
			glyph = '•'
		case e.Alpha > 0.3:
			glyph = '∙'
		}
		r.screen.SetColored(v.col(e.X), v.row(e.Y), glyph, e.Color)
	}
}

func (r *Renderer) drawHUD(f game.Frame, accent core.Color) {
	width := r.screen.Width()
	r.screen.DrawHLine(0, 0, width, ' ', core.ColorDefault)
	r.screen.DrawTextColored(1, 0, strings.ToUpper(f.Level.Name), accent)

	filled := f.Percent * progressLen / 100
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("-", progressLen-filled) + "]"
	r.screen.DrawTextCentered(0, fmt.Sprintf("%s %3d%%", bar, f.Percent), core.ColorWhite)

	right := fmt.Sprintf("%s  deaths %d ", f.Pose.Mode, f.Deaths)
	r.screen.DrawTextColored(width-len(right), 0, right, core.ColorGray)
}

func (r *Renderer) drawOverlay(c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 4
	box := core.NewRect((r.screen.Width()-w)/2, (r.screen.Height()-h)/2, w, h)

	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, c)
	for i, l := range lines {
		lc := core.ColorWhite
		if i == 0 {
			lc = c
		}
		r.screen.DrawTextCentered(box.Y+2+i, l, lc)
	}
}
