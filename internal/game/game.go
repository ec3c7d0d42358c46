package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ashgrowen/blackzone/internal/audio"
	"github.com/ashgrowen/blackzone/internal/combat"
	"github.com/ashgrowen/blackzone/internal/entity"
	"github.com/ashgrowen/blackzone/internal/gamedata"
	"github.com/ashgrowen/blackzone/internal/item"
	"github.com/ashgrowen/blackzone/internal/mission"
	"github.com/ashgrowen/blackzone/internal/msglog"
	"github.com/ashgrowen/blackzone/internal/objects"
	"github.com/ashgrowen/blackzone/internal/profile"
	"github.com/ashgrowen/blackzone/internal/telemetry"
	"github.com/ashgrowen/blackzone/internal/ui"
	"github.com/ashgrowen/blackzone/internal/weather"
	"github.com/ashgrowen/blackzone/internal/world"
)

const (
	// tickInterval is the fixed frame budget: 20 simulation ticks per second.
	tickInterval   = 50 * time.Millisecond
	ticksPerSecond = int(time.Second / tickInterval)

	// periodicEvery schedules weather shifts and spawn checks, in ticks.
	periodicEvery = 500

	enemyCap       = 15
	initialEnemies = 10

	// extractionDelay is the blocking hold on the pad before extraction.
	extractionDelay = time.Second

	extractionXP     = 500
	objectiveBonusXP = 250

	msgCap      = 100
	eventBuffer = 16
)

// Game wires every collaborator together and owns the tick loop. All
// state is mutated from the loop goroutine only; the input pump is the
// single other goroutine and communicates through the events channel.
type Game struct {
	cfg    Config
	seed   int64
	logger logr.Logger

	screen   *ui.Screen
	renderer *ui.Renderer
	events   chan tcell.Event

	rng      *rand.Rand
	itemReg  *gamedata.ItemRegistry
	enemyReg *gamedata.EnemyRegistry
	prof     *profile.Profile
	cues     *audio.Cues

	sm       *StateMachine
	msgs     *msglog.Log
	resolver *combat.Resolver
	player   *entity.Player
	enemies  *entity.Manager
	loot     *item.LootManager
	objects  *objects.Manager
	missions *mission.Manager
	weather  *weather.System
	zone     *world.Zone

	// Per-raid state
	ticks       uint64
	raid        raidState
	lastSummary raidSummary

	// Overlay screen state
	invScreen     ui.InventoryScreen
	lootScreen    ui.LootScreen
	openContainer *item.Container

	inputHandlers map[Mode]func(context.Context, *tcell.EventKey)
	renderFuncs   map[Mode]func()

	running bool
}

// New creates a game on the real terminal.
func New(cfg Config, logger logr.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := newGame(screen, cfg, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame wires the collaborators onto an existing screen.
func newGame(screen *ui.Screen, cfg Config, logger logr.Logger) (*Game, error) {
	itemReg, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	enemyReg, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}

	path := cfg.ProfilePath
	if path == "" {
		path = profile.DefaultPath()
	}
	prof, err := profile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	msgs := msglog.New(msgCap)
	resolver := combat.NewResolver()

	player := entity.NewPlayer(itemReg)
	if prof.Level > 1 || prof.XP > 0 {
		player.RestoreProgress(prof.Level, prof.XP)
	}

	g := &Game{
		cfg:      cfg,
		seed:     seed,
		logger:   logger,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		events:   make(chan tcell.Event, eventBuffer),
		rng:      rng,
		itemReg:  itemReg,
		enemyReg: enemyReg,
		prof:     prof,
		cues:     audio.New(cfg.Audio),
		sm:       NewStateMachine(),
		msgs:     msgs,
		resolver: resolver,
		player:   player,
		enemies:  entity.NewManager(enemyReg, resolver, msgs),
		loot:     item.NewLootManager(itemReg),
		objects:  objects.NewManager(),
		missions: mission.NewManager(msgs),
		weather:  weather.NewSystem(rng),
		running:  true,
	}
	g.inputHandlers = g.buildInputHandlers()
	g.renderFuncs = g.buildRenderFuncs()
	return g, nil
}

// Run executes the tick loop until the operator quits or the context is
// canceled. It returns only after the final tick completes.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	span.SetAttributes(
		attribute.String("operator.id", g.prof.OperatorID),
		attribute.Int64("seed", g.seed),
	)
	defer span.End()

	done := make(chan struct{})
	defer close(done)
	go g.pumpEvents(done)

	g.logger.Info("session started", "operator", g.prof.OperatorID, "seed", g.seed)

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		default:
			g.tick(ctx)
		}
	}

	g.logger.Info("session ended", "raids", g.prof.Raids)
	return nil
}

// pumpEvents forwards terminal events to the loop. It exits when the
// screen is finalized (PollEvent returns nil) or the session ends.
func (g *Game) pumpEvents(done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-done:
			return
		}
	}
}

// tick runs one frame: at most one input event, simulation if the raid
// is live, one render, then sleep off the rest of the budget.
func (g *Game) tick(ctx context.Context) {
	start := time.Now()

	select {
	case ev := <-g.events:
		g.handleEvent(ctx, ev)
	default:
	}

	if g.sm.Current() == ModeActive {
		g.updateActive(ctx)
	}

	g.render()

	time.Sleep(pacing(time.Since(start)))
}

// pacing returns how long to sleep after a tick that took elapsed. A
// tick over budget gets no sleep, never a negative one.
func pacing(elapsed time.Duration) time.Duration {
	if remaining := tickInterval - elapsed; remaining > 0 {
		return remaining
	}
	return 0
}

// updateActive advances one simulation step. Order is fixed: missions,
// pooled objects, enemies, player, then the death check, then periodic
// events. Everything updates before death is checked, so a hostile
// lands its blow even on the tick the operator goes down.
func (g *Game) updateActive(ctx context.Context) {
	g.ticks++

	g.missions.Update(g.ticks)
	g.objects.Update(g.zone.IsPassable, g.strikeAt)
	g.enemies.Update(g.ticks, g.zone, g.player)
	g.player.Update()

	if !g.player.IsAlive() {
		g.finishRaid(ctx, false)
		g.transition(ModeGameOver)
	}

	if g.ticks%periodicEvery == 0 {
		g.weather.Advance()
		g.msgs.Push(msglog.LevelInfo, g.weather.Describe())
		if g.enemies.AliveCount() < enemyCap {
			g.enemies.SpawnOne(g.zone, g.player.X, g.player.Y)
		}
	}
}

// strikeAt resolves a projectile hitting whatever stands on the tile.
// Returns false when the tile holds no target so the round keeps flying.
func (g *Game) strikeAt(x, y, damage int) bool {
	e := g.enemies.EnemyAt(x, y)
	if e == nil {
		return false
	}
	result := g.resolver.ResolveShot(damage, e)
	g.cues.Impact()
	if result.Killed {
		g.onKill(e)
	} else {
		g.msgs.Pushf(msglog.LevelInfo, "Hit %s for %d.", e.Name, result.Damage)
	}
	return true
}

// onKill removes the hostile and pays out experience and credit.
func (g *Game) onKill(e *entity.Enemy) {
	g.enemies.Remove(e)
	g.raid.kills++
	g.missions.MarkKill()
	g.cues.Kill()

	g.msgs.Pushf(msglog.LevelInfo, "Killed %s. +%d XP.", e.Name, e.Def.XP)
	if levels := g.player.GrantXP(e.Def.XP); levels > 0 {
		g.msgs.Pushf(msglog.LevelLoot, "Level up. Now level %d.", g.player.Level)
	}
}

// transition requests a mode change and logs a denial instead of
// failing. No reachable input sequence produces one.
func (g *Game) transition(to Mode) {
	if !g.sm.Transition(to) {
		g.logger.V(1).Info("transition denied",
			"from", g.sm.Current().String(), "to", to.String())
	}
}

// Close releases the terminal and the audio device.
func (g *Game) Close() {
	g.cues.Close()
	if g.screen != nil {
		g.screen.Close()
	}
}
