package mobhold

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/sim"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/terrain"
)

// Minimum terminal size for a playable view.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Upgrade menu layout.
const (
	menuWidth     = 56
	menuOptionH   = 3 // Name row, description row, spacer
	menuHeaderH   = 2
	menuFooterH   = 2
	menuTitle     = " LEVEL UP "
	menuHintKeys  = "1-3 / ↑↓ + Enter / click"
	readyGlyphDot = '·'
)

// glyph is a cached rune and color for a catalog entry.
type glyph struct {
	r rune
	c core.Color
}

func newGlyph(s, color string, fallback rune) glyph {
	g := glyph{r: fallback, c: core.ColorWhite}
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		g.r = r
	}
	if c, ok := core.ParseColor(color); ok {
		g.c = c
	}
	return g
}

// palette maps catalog types to glyphs.
type palette struct {
	monsters map[string]glyph
	weapons  map[string]glyph
	scrolls  map[string]glyph
}

func newPalette(cfg config.MobholdConfig) palette {
	p := palette{
		monsters: make(map[string]glyph, len(cfg.Monsters)),
		weapons:  make(map[string]glyph, len(cfg.Weapons)),
		scrolls:  make(map[string]glyph, len(cfg.Scrolls)),
	}
	for _, m := range cfg.Monsters {
		p.monsters[m.Type] = newGlyph(m.Glyph, m.Color, 'm')
	}
	for _, w := range cfg.Weapons {
		p.weapons[w.Type] = newGlyph(w.Glyph, w.Color, '•')
	}
	for _, s := range cfg.Scrolls {
		p.scrolls[s.Type] = newGlyph(s.Glyph, s.Color, '?')
	}
	return p
}

func (p palette) scrollByKind(cfg *config.MobholdConfig, kind config.ScrollKind) glyph {
	for _, s := range cfg.Scrolls {
		if s.Kind == kind {
			return p.scrolls[s.Type]
		}
	}
	return glyph{r: '?', c: core.ColorWhite}
}

// mapArea is the part of the screen showing the world: everything
// between the HUD row and the footer row.
func mapArea(w, h int) core.Rect {
	return core.NewRect(0, 1, max(1, w), max(1, h-2))
}

// worldToCell projects a world position into the map area. The camera
// sits on the center cell.
func worldToCell(area core.Rect, camera, pos sim.Vec2) (int, int) {
	cx := area.X + area.W/2 + int(math.Floor((pos.X-camera.X)/CellW))
	cy := area.Y + area.H/2 + int(math.Floor((pos.Y-camera.Y)/CellH))
	return cx, cy
}

// cellToWorld returns the world position at the center of a map cell.
func cellToWorld(area core.Rect, camera sim.Vec2, x, y int) sim.Vec2 {
	kx := x - area.X - area.W/2
	ky := y - area.Y - area.H/2
	return sim.Vec2{
		X: camera.X + (float64(kx)+0.5)*CellW,
		Y: camera.Y + (float64(ky)+0.5)*CellH,
	}
}

// menuRect is the upgrade panel for n options.
func menuRect(w, h, n int) core.Rect {
	mw := min(menuWidth, w-2)
	mh := menuHeaderH + n*menuOptionH + menuFooterH
	return core.CenteredRect(w, h, mw, mh)
}

// menuHit maps a click to the option under it.
func menuHit(w, h, n, x, y int) (int, bool) {
	r := menuRect(w, h, n)
	if !r.Inset(1).Contains(x, y) {
		return 0, false
	}
	row := y - r.Y - menuHeaderH
	if row < 0 {
		return 0, false
	}
	i := row / menuOptionH
	if i >= n || row%menuOptionH == menuOptionH-1 {
		return 0, false
	}
	return i, true
}

// Render draws the world, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() != g.rt.ScreenW || dst.Height() != g.rt.ScreenH {
		g.rt.ScreenW, g.rt.ScreenH = dst.Width(), dst.Height()
		g.resize(dst.Width(), dst.Height())
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	area := mapArea(dst.Width(), dst.Height())

	g.renderTerrain(dst, area, snap.Camera)
	g.renderEffects(dst, area, &snap)
	g.renderEnemies(dst, area, &snap)
	g.renderProjectiles(dst, area, &snap)
	g.renderPlayer(dst, area, &snap)
	g.renderHUD(dst, &snap)
	g.renderFooter(dst, &snap)

	switch {
	case snap.State == sim.StateUpgrading:
		g.renderMenu(dst, snap.Options)
	case snap.State == sim.StatePaused:
		g.renderPaused(dst)
	case snap.State == sim.StateGameOver:
		g.renderGameOver(dst, &snap)
	case snap.ReadyTimer > 0:
		g.renderReady(dst, snap.ReadyTimer)
	}
}

func (g *Game) renderTerrain(dst *core.Screen, area core.Rect, camera sim.Vec2) {
	tg := g.world.Terrain()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			p := cellToWorld(area, camera, x, y)
			tx, ty := tg.TileCoord(p.X, p.Y)
			r, c := tileGlyph(tg.TileAt(tx, ty).Kind)
			dst.SetColored(x, y, r, c)
		}
	}
}

func tileGlyph(k terrain.Kind) (rune, core.Color) {
	switch k {
	case terrain.GrassDecorated:
		return ',', core.ColorDarkGreen
	case terrain.Plant:
		return '♣', core.ColorGreen
	case terrain.MountainTop:
		return '▲', core.ColorBrightWhite
	case terrain.MountainMiddle, terrain.MountainBase:
		return '▲', core.ColorBrown
	case terrain.RidgeLeft, terrain.RidgeMiddle, terrain.RidgeRight:
		return '▬', core.ColorGray
	default:
		return ' ', core.ColorDefault
	}
}

func (g *Game) renderEffects(dst *core.Screen, area core.Rect, snap *sim.Snapshot) {
	// Blood first so explosions and scroll bursts draw over it.
	for _, e := range snap.Effects {
		if e.Kind != sim.EffectBlood {
			continue
		}
		x, y := worldToCell(area, snap.Camera, e.Pos)
		if area.Contains(x, y) {
			r := '░'
			if e.Frame < e.TotalFrames/2 {
				r = '▒'
			}
			dst.SetColored(x, y, r, core.ColorRed)
		}
	}

	for _, e := range snap.Effects {
		x, y := worldToCell(area, snap.Camera, e.Pos)
		switch e.Kind {
		case sim.EffectExplosion:
			g.renderExplosion(dst, area, x, y, e)
		case sim.EffectScroll:
			gl := g.palette.scrollByKind(g.world.Config(), e.Scroll)
			if area.Contains(x, y-1) {
				dst.SetColored(x, y-1, gl.r, gl.c)
			}
		}
	}
}

// renderExplosion draws a blast that shrinks as its frames advance.
func (g *Game) renderExplosion(dst *core.Screen, area core.Rect, cx, cy int, e sim.Effect) {
	radius := g.world.Config().Bomb.ExplodeRadius
	progress := float64(e.Frame) / float64(max(1, e.TotalFrames))
	rx := int(radius / CellW)
	ry := int(radius / CellH)

	r, c := '✺', core.ColorBrightYellow
	switch {
	case progress > 0.66:
		r, c = '·', core.ColorGray
	case progress > 0.33:
		r, c = '*', core.ColorOrange
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / float64(max(1, rx))
			ny := float64(dy) / float64(max(1, ry))
			if nx*nx+ny*ny > 1 {
				continue
			}
			if x, y := cx+dx, cy+dy; area.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, area core.Rect, snap *sim.Snapshot) {
	for _, e := range snap.Enemies {
		x, y := worldToCell(area, snap.Camera, e.Pos)
		if !area.Contains(x, y) {
			continue
		}
		gl, ok := g.palette.monsters[e.Type]
		if !ok {
			gl = glyph{r: 'm', c: core.ColorWhite}
		}
		switch {
		case e.Freeze != nil:
			gl.c = core.ColorBrightCyan
		case e.Burn != nil:
			gl.c = core.ColorOrange
		}
		dst.SetColored(x, y, gl.r, gl.c)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, area core.Rect, snap *sim.Snapshot) {
	for _, p := range snap.Projectiles {
		x, y := worldToCell(area, snap.Camera, p.Pos)
		if !area.Contains(x, y) {
			continue
		}
		gl := g.palette.weapons[p.Weapon]
		switch {
		case p.Bomb:
			// Weapon glyph as is.
		case p.Kind == config.KindRadial:
			if int(p.Spin/math.Pi*2)%2 == 0 {
				gl.r = '✦'
			} else {
				gl.r = '✧'
			}
		default:
			gl.r = arrowGlyph(p.Angle)
		}
		dst.SetColored(x, y, gl.r, gl.c)
	}

	for _, o := range snap.Orbiters {
		x, y := worldToCell(area, snap.Camera, o.Pos)
		if area.Contains(x, y) {
			gl := g.palette.weapons[o.Weapon]
			dst.SetColored(x, y, gl.r, gl.c)
		}
	}
}

var arrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// arrowGlyph picks the arrow closest to an angle. Y grows downward.
func arrowGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % len(arrows)
	if octant < 0 {
		octant += len(arrows)
	}
	return arrows[octant]
}

func (g *Game) renderPlayer(dst *core.Screen, area core.Rect, snap *sim.Snapshot) {
	x, y := worldToCell(area, snap.Camera, snap.Player.Pos)
	if !area.Contains(x, y) {
		return
	}
	c := core.ColorBrightWhite
	if snap.SpeedBoost > 0 {
		c = core.ColorBrightGreen
	}
	// Blink while invincible.
	if snap.Invincible > 0 && int(snap.Invincible*10)%2 == 1 {
		c = core.ColorGray
	}
	dst.SetColored(x, y, '@', c)
}

func (g *Game) renderHUD(dst *core.Screen, snap *sim.Snapshot) {
	left := fmt.Sprintf(" Score %s  Kills %s  %s",
		humanize.Comma(int64(snap.Score)),
		humanize.Comma(int64(snap.Kills)),
		formatClock(snap.GameTime),
	)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := utf8.RuneCountInString(left) + 2
	for _, w := range snap.Weapons {
		gl := g.palette.weapons[w.Type]
		dst.SetColored(x, 0, gl.r, gl.c)
		lvl := fmt.Sprintf("%d", w.Level+1)
		dst.DrawTextColored(x+1, 0, lvl, core.ColorGray)
		x += len(lvl) + 2
	}
	for _, s := range snap.Scrolls {
		gl := g.palette.scrolls[s.Type]
		if snap.GameTime < s.HighlightUntil {
			gl.c = core.ColorBrightWhite
		}
		dst.SetColored(x, 0, gl.r, gl.c)
		x += 2
	}

	if g.best > 0 {
		best := fmt.Sprintf("Best %s ", humanize.Comma(int64(max(g.best, snap.Score))))
		bx := dst.Width() - utf8.RuneCountInString(best)
		if bx > x {
			dst.DrawTextColored(bx, 0, best, core.ColorYellow)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, snap *sim.Snapshot) {
	y := dst.Height() - 1
	hint := " WASD/arrows move  click to walk  P pause  R restart  Q quit"
	dst.DrawTextColored(0, y, hint, core.ColorGray)

	var status []string
	if snap.SpeedBoost > 0 {
		status = append(status, fmt.Sprintf("boost %.1fs", snap.SpeedBoost))
	}
	if snap.Invincible > 0 {
		status = append(status, fmt.Sprintf("shield %.1fs", snap.Invincible))
	}
	if next, ok := g.nextThreshold(snap.UpgradeIndex); ok {
		status = append(status, fmt.Sprintf("next %s", humanize.Comma(int64(next))))
	}
	if len(status) == 0 {
		return
	}
	s := strings.Join(status, "  ") + " "
	if x := dst.Width() - utf8.RuneCountInString(s); x > utf8.RuneCountInString(hint) {
		dst.DrawTextColored(x, y, s, core.ColorCyan)
	}
}

func (g *Game) nextThreshold(index int) (int, bool) {
	th := g.world.Config().Upgrades.Thresholds
	if index >= len(th) {
		return 0, false
	}
	return th[index], true
}

func (g *Game) renderMenu(dst *core.Screen, opts []sim.UpgradeOption) {
	r := menuRect(dst.Width(), dst.Height(), len(opts))
	dst.Panel(r, core.ColorBrightYellow)
	title := menuTitle
	dst.DrawTextColored(r.X+(r.W-utf8.RuneCountInString(title))/2, r.Y, title, core.ColorBrightYellow)

	for i, o := range opts {
		y := r.Y + menuHeaderH + i*menuOptionH
		c := core.ColorWhite
		marker := "  "
		if i == g.cursor {
			c = core.ColorBrightWhite
			marker = "> "
		}
		head := fmt.Sprintf("%s%d. %s", marker, i+1, optionTitle(o))
		dst.DrawTextColored(r.X+2, y, truncate(head, r.W-4), c)
		dst.DrawTextColored(r.X+7, y+1, truncate(o.Description, r.W-9), core.ColorGray)
	}

	hint := truncate(menuHintKeys, r.W-4)
	dst.DrawTextColored(r.X+(r.W-utf8.RuneCountInString(hint))/2, r.Bottom()-2, hint, core.ColorGray)
}

func optionTitle(o sim.UpgradeOption) string {
	switch o.Kind {
	case sim.OptionUpgrade:
		return fmt.Sprintf("%s → level %d", o.Type, o.Level+1)
	case sim.OptionNewWeapon:
		return fmt.Sprintf("New weapon: %s", o.Type)
	default:
		return fmt.Sprintf("New scroll: %s", o.Type)
	}
}

func (g *Game) renderPaused(dst *core.Screen) {
	r := core.CenteredRect(dst.Width(), dst.Height(), 24, 5)
	dst.Panel(r, core.ColorCyan)
	dst.DrawTextCentered(r.Y+1, "PAUSED", core.ColorBrightCyan)
	dst.DrawTextCentered(r.Y+3, "P to resume", core.ColorGray)
}

func (g *Game) renderReady(dst *core.Screen, left float64) {
	msg := fmt.Sprintf("Get ready %c %.1f", readyGlyphDot, left)
	dst.DrawTextCentered(dst.Height()/2-2, msg, core.ColorBrightYellow)
}

func (g *Game) renderGameOver(dst *core.Screen, snap *sim.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score  %s", humanize.Comma(int64(snap.Score))),
		fmt.Sprintf("Kills  %s", humanize.Comma(int64(snap.Kills))),
		fmt.Sprintf("Time   %s", formatClock(snap.GameTime)),
	}
	if g.killedBy != "" {
		lines = append(lines, fmt.Sprintf("Killed by %s", g.killedBy))
	}
	if snap.Score > g.best && g.best > 0 {
		lines = append(lines, "New best!")
	}

	r := core.CenteredRect(dst.Width(), dst.Height(), 30, len(lines)+6)
	dst.Panel(r, core.ColorBrightRed)
	dst.DrawTextCentered(r.Y+1, "GAME OVER", core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+3+i, l, core.ColorWhite)
	}
	dst.DrawTextCentered(r.Bottom()-2, "R restart  Q quit", core.ColorGray)
}

// formatClock renders game milliseconds as mm:ss.
func formatClock(ms float64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
