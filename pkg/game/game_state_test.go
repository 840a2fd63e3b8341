package game

import (
	"testing"
)

// TestNewGameState 测试初始状态
func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	if gs.Phase() != PhasePlaying {
		t.Errorf("Expected initial phase Playing, got %s", gs.Phase())
	}
	if gs.Score() != 0 {
		t.Errorf("Expected initial score 0, got %d", gs.Score())
	}

	var zero GameState
	if !zero.IsPlaying() {
		t.Error("Zero value should be Playing")
	}
}

// TestAddScore 测试加分规则
func TestAddScore(t *testing.T) {
	tests := []struct {
		name     string
		adds     []int
		expected int
	}{
		{"single point", []int{1}, 1},
		{"several points", []int{1, 1, 3}, 5},
		{"zero ignored", []int{0}, 0},
		{"negative ignored", []int{2, -5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			for _, n := range tt.adds {
				gs.AddScore(n)
			}
			if gs.Score() != tt.expected {
				t.Errorf("Expected score %d, got %d", tt.expected, gs.Score())
			}
		})
	}
}

// TestAddScoreIgnoredWhileGameOver GameOver 期间分数不变
func TestAddScoreIgnoredWhileGameOver(t *testing.T) {
	gs := NewGameState()
	gs.AddScore(3)
	gs.EnterGameOver()
	gs.AddScore(10)

	if gs.Score() != 3 {
		t.Errorf("Expected score to stay 3, got %d", gs.Score())
	}
}

// TestPhaseTransitions 测试阶段切换的返回值
func TestPhaseTransitions(t *testing.T) {
	gs := NewGameState()

	if gs.EnterPlaying() {
		t.Error("EnterPlaying while Playing should report no transition")
	}
	if !gs.EnterGameOver() {
		t.Error("First EnterGameOver should transition")
	}
	if gs.EnterGameOver() {
		t.Error("EnterGameOver while GameOver should not re-enter")
	}
	if !gs.IsGameOver() {
		t.Error("Expected GameOver phase")
	}
	if !gs.EnterPlaying() {
		t.Error("EnterPlaying from GameOver should transition")
	}
}

// TestResetScore 测试分数清零
func TestResetScore(t *testing.T) {
	gs := NewGameState()
	gs.AddScore(7)
	gs.ResetScore()

	if gs.Score() != 0 {
		t.Errorf("Expected score 0 after reset, got %d", gs.Score())
	}
}

// TestSubscribe 测试监听器收到每次切换
func TestSubscribe(t *testing.T) {
	gs := NewGameState()

	type change struct{ from, to Phase }
	var changes []change
	gs.Subscribe(StateListenerFunc(func(from, to Phase) {
		changes = append(changes, change{from, to})
	}))
	gs.Subscribe(nil)

	gs.EnterGameOver()
	gs.EnterGameOver()
	gs.EnterPlaying()

	expected := []change{
		{PhasePlaying, PhaseGameOver},
		{PhaseGameOver, PhasePlaying},
	}
	if len(changes) != len(expected) {
		t.Fatalf("Expected %d notifications, got %d", len(expected), len(changes))
	}
	for i := range expected {
		if changes[i] != expected[i] {
			t.Errorf("Notification %d: expected %v, got %v", i, expected[i], changes[i])
		}
	}
}

// TestPhaseString 测试阶段名称
func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "Playing" || PhaseGameOver.String() != "GameOver" {
		t.Error("Unexpected phase names")
	}
	if Phase(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Phase(99).String())
	}
}
