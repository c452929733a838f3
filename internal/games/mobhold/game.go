// Package mobhold adapts the survival simulation to the terminal
// platform: it maps key presses and mouse clicks to simulation input,
// draws the world into a cell buffer and records run statistics.
package mobhold

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/sim"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/terrain"
	"github.com/vovakirdan/mobhold/internal/logging"
	"github.com/vovakirdan/mobhold/internal/registry"
	"github.com/vovakirdan/mobhold/internal/storage"
)

// GameID is the registry and storage identifier.
const GameID = "mobhold"

// World units covered by one terminal cell. Cells are roughly twice as
// tall as they are wide.
const (
	CellW = 16.0
	CellH = 32.0
)

// Terminals report key presses, not releases, so a direction stays held
// for a short while after each press. Auto-repeat keeps it alive.
const holdTime = 180 * time.Millisecond

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes game events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// LoadConfig resolves the configuration from the search path and applies
// the difficulty preset.
func LoadConfig() (config.MobholdConfig, error) {
	cfg, err := config.LoadMobhold(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyMobholdPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

var directions = []struct {
	action, opposite core.Action
}{
	{core.ActionUp, core.ActionDown},
	{core.ActionDown, core.ActionUp},
	{core.ActionLeft, core.ActionRight},
	{core.ActionRight, core.ActionLeft},
}

// Game implements registry.Game for Mobhold.
type Game struct {
	cfg     config.MobholdConfig
	world   *sim.World
	rt      core.RuntimeConfig
	palette palette

	held   map[core.Action]time.Duration
	click  *core.Click
	cursor int // Highlighted upgrade option

	best     int
	upgrades int
	killedBy string
}

// New creates a game. Reset must be called before stepping.
func New() *Game {
	return &Game{held: make(map[core.Action]time.Duration)}
}

func (g *Game) ID() string    { return GameID }
func (g *Game) Title() string { return "Mobhold" }

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to built-in config", "error", err)
		cfg = config.DefaultMobholdConfig()
		if difficultyPreset != "" {
			config.ApplyMobholdPreset(&cfg, difficultyPreset)
		}
	}
	g.ResetWith(cfg, rt)
}

// ResetWith starts a new run with an explicit configuration. The terrain
// of a previous run is carried over.
func (g *Game) ResetWith(cfg config.MobholdConfig, rt core.RuntimeConfig) {
	var gen *terrain.Generator
	if g.world != nil {
		gen = g.world.Terrain()
	}
	g.cfg = cfg
	g.rt = rt
	g.world = sim.NewWithTerrain(cfg, rt.Seed, gen)
	g.palette = newPalette(cfg)
	g.resize(rt.ScreenW, rt.ScreenH)

	clear(g.held)
	g.click = nil
	g.cursor = 0
	g.upgrades = 0
	g.killedBy = ""

	logger.Info("run started", "seed", rt.Seed, "difficulty", g.difficultyName())
}

// resize matches the simulation viewport to the map area.
func (g *Game) resize(w, h int) {
	area := mapArea(w, h)
	g.world.SetViewport(float64(area.W)*CellW, float64(area.H)*CellH)
}

// Step advances the run by dt of wall-clock time.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if in.Click != nil {
		c := *in.Click
		g.click = &c
	}

	switch g.world.State() {
	case sim.StateUpgrading:
		g.handleMenu(in)
	case sim.StateGameOver, sim.StatePaused:
		g.click = nil
	}

	input := g.input(in, dt)
	ev := g.world.Update(dt.Seconds(), input)
	g.record(ev)

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	switch g.world.State() {
	case sim.StatePaused:
		g.world.Resume()
		logger.Debug("resumed")
	case sim.StatePlaying:
		g.world.Pause()
		logger.Debug("paused", "time", g.elapsed())
	}
}

// handleMenu moves the upgrade cursor and applies a choice.
func (g *Game) handleMenu(in core.InputFrame) {
	opts := g.world.Options()
	if len(opts) == 0 {
		return
	}
	if g.cursor >= len(opts) {
		g.cursor = 0
	}

	choice := -1
	switch {
	case in.Has(core.ActionUp) || in.Has(core.ActionLeft):
		g.cursor = (g.cursor + len(opts) - 1) % len(opts)
	case in.Has(core.ActionDown) || in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % len(opts)
	case in.Has(core.ActionConfirm):
		choice = g.cursor
	}
	for _, a := range []core.Action{core.ActionChoice1, core.ActionChoice2, core.ActionChoice3} {
		if in.Has(a) {
			choice, _ = a.Choice()
		}
	}
	if g.click != nil {
		if i, ok := menuHit(g.rt.ScreenW, g.rt.ScreenH, len(opts), g.click.X, g.click.Y); ok {
			choice = i
		}
		g.click = nil
	}

	if choice >= 0 && choice < len(opts) {
		g.choose(choice)
	}
}

func (g *Game) choose(i int) {
	opt := g.world.Options()[i]
	if !g.world.SelectUpgrade(i) {
		return
	}
	g.upgrades++
	g.cursor = 0
	clear(g.held)
	logger.Info("upgrade taken", "kind", opt.Kind, "type", opt.Type, "level", opt.Level+1)
}

// input converts held keys and the latest click into simulation input.
func (g *Game) input(in core.InputFrame, dt time.Duration) sim.Input {
	for _, d := range directions {
		if in.Has(d.action) {
			g.held[d.action] = holdTime
			delete(g.held, d.opposite)
			continue
		}
		if left, ok := g.held[d.action]; ok {
			if left -= dt; left > 0 {
				g.held[d.action] = left
			} else {
				delete(g.held, d.action)
			}
		}
	}

	var si sim.Input
	if g.world.State() != sim.StatePlaying {
		return si
	}
	_, si.Keys.Up = g.held[core.ActionUp]
	_, si.Keys.Down = g.held[core.ActionDown]
	_, si.Keys.Left = g.held[core.ActionLeft]
	_, si.Keys.Right = g.held[core.ActionRight]

	if g.click != nil {
		area := mapArea(g.rt.ScreenW, g.rt.ScreenH)
		if area.Contains(g.click.X, g.click.Y) {
			si.Pointer = sim.Pointer{
				Active: true,
				Held:   g.click.Held,
				Pos:    cellToWorld(area, g.world.Camera(), g.click.X, g.click.Y),
			}
		}
		g.click = nil
	}
	return si
}

// record logs step events and tracks run statistics.
func (g *Game) record(ev sim.StepEvents) {
	for _, k := range ev.Kills {
		logger.Debug("kill", "enemy", k.Type, "id", k.ID, "by", k.Source, "score", k.Score)
	}
	if ev.Swarm {
		logger.Info("swarm", "spawned", ev.SwarmSpawned, "time", g.elapsed())
	}
	if ev.UpgradeOffered {
		opts := g.world.Options()
		names := make([]string, len(opts))
		for i, o := range opts {
			names[i] = fmt.Sprintf("%s %s", o.Kind, o.Type)
		}
		g.cursor = 0
		logger.Info("upgrade offered", "score", g.world.Score(), "options", names)
	}
	if ev.GameOver {
		g.killedBy = ev.KilledBy
		logger.Info("game over",
			"score", g.world.Score(),
			"kills", g.world.Kills(),
			"time", g.elapsed(),
			"killed_by", ev.KilledBy,
		)
	}
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.world.GameTime() * float64(time.Millisecond))
}

func (g *Game) difficultyName() string {
	if difficultyPreset == "" {
		return string(config.DifficultyNormal)
	}
	return string(difficultyPreset)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	st := g.world.State()
	return core.GameState{
		Score:     g.world.Score(),
		Kills:     g.world.Kills(),
		Elapsed:   g.elapsed(),
		GameOver:  st == sim.StateGameOver,
		Paused:    st == sim.StatePaused,
		Upgrading: st == sim.StateUpgrading,
	}
}

// SetBestScore sets the best stored score shown in the HUD.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// World exposes the simulation for headless drivers and tests.
func (g *Game) World() *sim.World {
	return g.world
}

// RunRecord summarizes the current run for storage.
func (g *Game) RunRecord() storage.Run {
	return runRecord(g.world, g.rt.Seed, g.difficultyName(), g.upgrades, g.killedBy)
}

func runRecord(w *sim.World, seed int64, difficulty string, upgrades int, killedBy string) storage.Run {
	var loadout []string
	for _, pw := range w.Weapons() {
		loadout = append(loadout, fmt.Sprintf("%s L%d", pw.Type, pw.Level+1))
	}
	for _, ps := range w.Scrolls() {
		loadout = append(loadout, ps.Type)
	}
	return storage.Run{
		GameID:     GameID,
		Seed:       seed,
		Difficulty: difficulty,
		Score:      w.Score(),
		Kills:      w.Kills(),
		Duration:   time.Duration(math.Round(w.GameTime())) * time.Millisecond,
		Upgrades:   upgrades,
		Loadout:    loadout,
		KilledBy:   killedBy,
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
