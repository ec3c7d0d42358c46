package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ashgrowen/blackzone/internal/msglog"
	"github.com/ashgrowen/blackzone/internal/profile"
	"github.com/ashgrowen/blackzone/internal/telemetry"
	"github.com/ashgrowen/blackzone/internal/world"
)

// raidState is the bookkeeping for the raid in progress.
type raidState struct {
	id        string
	seed      int64
	kills     int
	lootTaken int
	startedAt time.Time
}

// raidSummary is what the death screen shows after a lost raid.
type raidSummary struct {
	kills    int
	seconds  int
	lootLost int
	level    int
}

// subSeed derives a named deterministic stream from the raid seed, so
// zone layout, loot rolls, enemy placement and objectives each get
// independent reproducible randomness.
func subSeed(seed int64, stream string) int64 {
	return int64(xxhash.Sum64String(fmt.Sprintf("%d/%s", seed, stream)))
}

// startRaid resets all per-raid state and deploys the operator into a
// freshly generated zone. It leaves the machine in Active mode.
func (g *Game) startRaid(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "raid.start")
	defer span.End()

	g.raid = raidState{
		id:        uuid.NewString(),
		seed:      g.rng.Int63(),
		startedAt: time.Now(),
	}
	g.ticks = 0
	g.msgs.Clear()
	g.objects.Reset()

	g.zone = world.NewZone(world.DefaultWidth, world.DefaultHeight,
		rand.New(rand.NewSource(subSeed(g.raid.seed, "zone"))))
	g.zone.Generate(ctx)

	sx, sy := g.zone.SpawnPoint()
	g.player.Deploy(sx, sy)

	g.loot.Generate(g.zone, rand.New(rand.NewSource(subSeed(g.raid.seed, "loot"))))

	g.enemies.Reset(rand.New(rand.NewSource(subSeed(g.raid.seed, "enemies"))))
	g.enemies.Generate(g.zone, initialEnemies, sx, sy)

	g.missions.Setup(g.zone, rand.New(rand.NewSource(subSeed(g.raid.seed, "missions"))))
	g.weather.Reset()

	g.openContainer = nil
	g.invScreen.Reset()
	g.lootScreen.Reset()

	g.msgs.Push(msglog.LevelInfo, "Deployment complete. The zone is hot.")
	g.msgs.Push(msglog.LevelInfo, "Reach an extraction pad and press F to get out.")

	span.SetAttributes(
		attribute.String("raid.id", g.raid.id),
		attribute.Int64("raid.seed", g.raid.seed),
		attribute.Int("raid.enemies", g.enemies.AliveCount()),
		attribute.Int("raid.objectives", g.missions.Total()),
	)
	g.logger.Info("raid started", "raid", g.raid.id, "seed", g.raid.seed)

	g.screen.Clear()
	g.transition(ModeActive)
}

// finishRaid settles a raid's outcome: experience and logs on success,
// loot stripping and the death summary on failure. Either way the raid
// is recorded and the profile persisted. The caller decides what comes
// next: a new raid after extraction, the death screen after a loss.
func (g *Game) finishRaid(ctx context.Context, success bool) {
	spanName := "raid.death"
	if success {
		spanName = "raid.extract"
	}
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	seconds := int(g.ticks) / ticksPerSecond
	rec := profile.RaidRecord{
		ID:        g.raid.id,
		StartedAt: g.raid.startedAt,
		Extracted: success,
		Kills:     g.raid.kills,
		LootTaken: g.raid.lootTaken,
		Ticks:     g.ticks,
	}

	completed := g.missions.CompletedCount()
	xp := 0
	if success {
		g.cues.Extract()
		g.msgs.Push(msglog.LevelCritical, "Extraction successful.")
		xp = extractionXP
		g.player.GrantXP(extractionXP)
		if completed > 0 {
			bonus := completed * objectiveBonusXP
			g.player.GrantXP(bonus)
			g.msgs.Pushf(msglog.LevelLoot, "Objective bonus: +%d XP.", bonus)
			xp += bonus
		}
		rec.XP = xp
	} else {
		g.cues.Death()
		g.msgs.Push(msglog.LevelCritical, "You are down. The zone keeps what you carried.")
		lost := g.player.Inventory().StripMissionLoot()
		g.lastSummary = raidSummary{
			kills:    g.raid.kills,
			seconds:  seconds,
			lootLost: lost,
			level:    g.player.Level,
		}
	}

	g.prof.Level = g.player.Level
	g.prof.XP = g.player.XP
	g.prof.RecordRaid(rec)
	if err := g.prof.Save(ctx); err != nil {
		g.logger.Error(err, "profile save failed", "path", g.prof.Path())
	}

	span.SetAttributes(
		attribute.String("raid.id", g.raid.id),
		attribute.Bool("raid.extracted", success),
		attribute.Int("raid.xp", xp),
		attribute.Int("raid.kills", g.raid.kills),
		attribute.Int("raid.loot_taken", g.raid.lootTaken),
		attribute.Int("raid.objectives_done", completed),
		attribute.Int64("raid.ticks", int64(g.ticks)),
	)
	g.logger.Info("raid ended",
		"raid", g.raid.id, "extracted", success,
		"kills", g.raid.kills, "seconds", seconds)
}
