package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStartRaidFromMenu(t *testing.T) {
	g := newTestGame(t)

	press(g, tcell.KeyEnter, '\r')

	if g.sm.Current() != ModeActive {
		t.Fatalf("Expected active after deploying, got %s", g.sm.Current())
	}
	if g.ticks != 0 {
		t.Errorf("Expected a fresh tick counter, got %d", g.ticks)
	}
	if g.raid.id == "" {
		t.Error("Expected a raid ID")
	}

	// The briefing is the only thing in a fresh log.
	if g.msgs.Len() != 2 {
		t.Fatalf("Expected 2 briefing messages, got %d", g.msgs.Len())
	}
	first := g.msgs.Recent(2)[0].Text
	if first != "Deployment complete. The zone is hot." {
		t.Errorf("Unexpected briefing: %q", first)
	}

	if g.enemies.AliveCount() != initialEnemies {
		t.Errorf("Expected %d hostiles, got %d", initialEnemies, g.enemies.AliveCount())
	}

	sx, sy := g.zone.SpawnPoint()
	if g.player.X != sx || g.player.Y != sy {
		t.Errorf("Expected the operator at the insertion point (%d,%d), got (%d,%d)",
			sx, sy, g.player.X, g.player.Y)
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("Expected full health on deploy, got %d/%d", g.player.Health, g.player.MaxHealth)
	}

	if g.missions.Total() < 3 {
		t.Errorf("Expected at least 3 objectives, got %d", g.missions.Total())
	}
}

func TestRaidsUseDistinctSeedStreams(t *testing.T) {
	// Each subsystem draws from its own stream of the raid seed.
	if subSeed(1, "zone") == subSeed(1, "loot") {
		t.Error("Expected zone and loot streams to differ")
	}
	if subSeed(1, "zone") == subSeed(2, "zone") {
		t.Error("Expected different raids to differ")
	}
	if subSeed(7, "enemies") != subSeed(7, "enemies") {
		t.Error("Expected the stream derivation to be deterministic")
	}
}

func TestExtractionAwardsXP(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()
	g.startRaid(ctx)

	g.finishRaid(ctx, true)

	// Base extraction pay, no objective bonus.
	if g.player.XP != extractionXP {
		t.Errorf("Expected %d XP, got %d", extractionXP, g.player.XP)
	}
	if g.prof.Extractions != 1 {
		t.Errorf("Expected 1 extraction, got %d", g.prof.Extractions)
	}
	if g.prof.Raids != 1 {
		t.Errorf("Expected 1 raid, got %d", g.prof.Raids)
	}
	if g.prof.XP != extractionXP {
		t.Errorf("Expected profile XP %d, got %d", extractionXP, g.prof.XP)
	}
	if len(g.prof.History) != 1 || !g.prof.History[0].Extracted {
		t.Error("Expected one extracted raid in the history")
	}
	if !containsMessage(g, "Extraction successful") {
		t.Error("Expected an extraction message")
	}
}

func TestExtractionObjectiveBonus(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()
	g.startRaid(ctx)

	// Overshooting the scavenge target completes exactly one objective.
	g.missions.MarkLoot(100)
	if g.missions.CompletedCount() != 1 {
		t.Fatalf("Expected 1 completed objective, got %d", g.missions.CompletedCount())
	}

	g.finishRaid(ctx, true)

	// Expected: 500 extraction + 250 bonus = 750 XP
	want := extractionXP + objectiveBonusXP
	if g.player.XP != want {
		t.Errorf("Expected %d XP, got %d", want, g.player.XP)
	}
	if !containsMessage(g, "Objective bonus") {
		t.Error("Expected a bonus message")
	}
}

func TestExtractionKeyRollsIntoNextRaid(t *testing.T) {
	g := newTestGame(t)
	g.startRaid(context.Background())
	firstRaid := g.raid.id

	pads := g.zone.Pads()
	if len(pads) == 0 {
		t.Fatal("Expected at least one extraction pad")
	}
	g.player.X, g.player.Y = pads[0].X, pads[0].Y

	pressRune(g, 'f')

	if g.sm.Current() != ModeActive {
		t.Errorf("Expected the next raid live, got %s", g.sm.Current())
	}
	if g.raid.id == firstRaid {
		t.Error("Expected a new raid ID")
	}
	if g.ticks != 0 {
		t.Errorf("Expected a fresh tick counter, got %d", g.ticks)
	}
	if g.prof.Extractions != 1 {
		t.Errorf("Expected 1 extraction recorded, got %d", g.prof.Extractions)
	}
	// The old log is gone, only the new briefing remains.
	if g.msgs.Len() != 2 {
		t.Errorf("Expected 2 briefing messages, got %d", g.msgs.Len())
	}
}

func TestExtractionKeyOffPad(t *testing.T) {
	g := newTestGame(t)
	g.startRaid(context.Background())

	// The insertion point is never on a pad.
	pressRune(g, 'f')

	if g.prof.Extractions != 0 {
		t.Errorf("Expected no extraction, got %d", g.prof.Extractions)
	}
	if !containsMessage(g, "No extraction pad here") {
		t.Error("Expected a rejection message")
	}
}

func TestAbandonedRaidIsNotRecorded(t *testing.T) {
	g := newTestGame(t)
	g.startRaid(context.Background())

	press(g, tcell.KeyEscape, 0)

	if g.sm.Current() != ModeMainMenu {
		t.Fatalf("Expected main_menu, got %s", g.sm.Current())
	}
	if g.prof.Raids != 0 {
		t.Errorf("Expected an abandoned raid to go unrecorded, got %d", g.prof.Raids)
	}
}

func TestDeathThenRedeployFromGameOver(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()
	g.startRaid(ctx)

	g.player.TakeDamage(g.player.Health)
	g.updateActive(ctx)
	if g.sm.Current() != ModeGameOver {
		t.Fatalf("Expected game_over, got %s", g.sm.Current())
	}

	press(g, tcell.KeyEnter, '\r')

	if g.sm.Current() != ModeActive {
		t.Errorf("Expected a fresh raid from the death screen, got %s", g.sm.Current())
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("Expected a revived operator, got %d/%d", g.player.Health, g.player.MaxHealth)
	}
	if g.prof.Raids != 1 {
		t.Errorf("Expected exactly the lost raid recorded, got %d", g.prof.Raids)
	}
}
