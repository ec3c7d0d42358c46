package combat

import "testing"

// mockTarget is a test implementation of the Target interface.
type mockTarget struct {
	hp int
}

func (m *mockTarget) IsAlive() bool { return m.hp > 0 }

func (m *mockTarget) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

func TestResolveShot(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 30}

	// Shot: 12 power, unmitigated
	result := resolver.ResolveShot(12, target)

	if result.Damage != 12 {
		t.Errorf("Expected 12 damage, got %d", result.Damage)
	}
	if result.Killed {
		t.Error("Target with 18 HP left should not be dead")
	}
	if target.hp != 18 {
		t.Errorf("Expected target HP 18, got %d", target.hp)
	}
}

func TestResolveShotKills(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 10}

	// 34 power against 10 HP: only 10 damage lands, target dies
	result := resolver.ResolveShot(34, target)

	if !result.Killed {
		t.Error("Expected the shot to kill the target")
	}
	if result.Damage != 10 {
		t.Errorf("Expected 10 actual damage, got %d", result.Damage)
	}
}

func TestResolveShotMinimum(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 5}

	// Degenerate power still deals 1
	result := resolver.ResolveShot(0, target)

	if result.Damage != 1 {
		t.Errorf("Expected minimum 1 damage, got %d", result.Damage)
	}
}

func TestResolveMelee(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 100}

	// Strike: 8 power, 2 armor
	// Expected: 8 - 2 = 6 damage
	result := resolver.ResolveMelee(8, 2, target)

	if result.Damage != 6 {
		t.Errorf("Expected 6 damage, got %d", result.Damage)
	}
	if target.hp != 94 {
		t.Errorf("Expected target HP 94, got %d", target.hp)
	}
}

func TestResolveMeleeMinimum(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 100}

	// Strike: 3 power, 10 armor
	// Expected: 3 - 10 = -7 -> min 1 damage
	result := resolver.ResolveMelee(3, 10, target)

	if result.Damage != 1 {
		t.Errorf("Expected minimum 1 damage, got %d", result.Damage)
	}
}

func TestCalculateMeleePreview(t *testing.T) {
	resolver := NewResolver()
	target := &mockTarget{hp: 50}

	damage := resolver.CalculateMelee(8, 2)

	// Should calculate but not apply
	if damage != 6 {
		t.Errorf("Expected preview damage 6, got %d", damage)
	}
	if target.hp != 50 {
		t.Error("Preview should not have damaged anything")
	}
}
