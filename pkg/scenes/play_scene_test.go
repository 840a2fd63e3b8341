package scenes

import (
	"math"
	"testing"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

type constRandom float64

func (r constRandom) Float64() float64 { return float64(r) }

func newTestScene(t *testing.T, source InputSource) (*PlayScene, *world.World) {
	t.Helper()
	w, err := world.NewWorld(config.DefaultTuningConfig(), constRandom(0.5))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return NewPlayScene(w, source, nil, false), w
}

// TestEntityColor 测试实体颜色选择
func TestEntityColor(t *testing.T) {
	tests := []struct {
		name     string
		class    components.EntityClass
		gameOver bool
		expected interface{}
	}{
		{"player playing", components.ClassPlayer, false, config.PlayerColor},
		{"player dead", components.ClassPlayer, true, config.PlayerDeadColor},
		{"enemy", components.ClassEnemy, false, config.EnemyColor},
		{"enemy during game over", components.ClassEnemy, true, config.EnemyColor},
		{"projectile", components.ClassProjectile, false, config.ProjectileColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entityColor(tt.class, tt.gameOver); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestAimAngle 朝向指示线方向应与瞄准方向一致
func TestAimAngle(t *testing.T) {
	tests := []struct {
		name   string
		target utils.Vec2
	}{
		{"right", utils.Vec2{X: 1, Y: 0}},
		{"up right", utils.Vec2{X: 1, Y: 1}},
		{"left", utils.Vec2{X: -1, Y: 0}},
		{"down left", utils.Vec2{X: -1, Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle := math.Atan2(tt.target.Y, tt.target.X)
			v := world.EntityView{Class: components.ClassPlayer}
			if tt.target.X > 0 {
				v.FacingRight = true
				v.Rotation = angle
			} else {
				v.Rotation = angle - math.Pi
			}

			got := aimAngle(v)
			if math.Abs(math.Cos(got)-math.Cos(angle)) > 1e-9 || math.Abs(math.Sin(got)-math.Sin(angle)) > 1e-9 {
				t.Errorf("Expected angle %.3f, got %.3f", angle, got)
			}
		})
	}
}

// TestPlaySceneUpdateUsesInput 每帧读取一次输入并推进模拟
func TestPlaySceneUpdateUsesInput(t *testing.T) {
	polls := 0
	source := InputSourceFunc(func() input.Snapshot {
		polls++
		return input.Snapshot{Right: true}
	})
	scene, w := newTestScene(t, source)

	before, _ := w.Player()
	scene.Update(0.1)
	after, _ := w.Player()

	if polls != 1 {
		t.Errorf("Expected 1 poll, got %d", polls)
	}
	if after.X <= before.X {
		t.Errorf("Expected player to move right, x %.1f -> %.1f", before.X, after.X)
	}
	if w.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", w.Frame())
	}
}

// TestPlaySceneClampsDelta 过长的帧时间被截断
func TestPlaySceneClampsDelta(t *testing.T) {
	source := InputSourceFunc(func() input.Snapshot { return input.Snapshot{Right: true} })
	scene, w := newTestScene(t, source)
	cfg := w.Config()

	before, _ := w.Player()
	scene.Update(10)
	after, _ := w.Player()

	maxStep := cfg.Player.Speed * cfg.Frame.MaxDeltaTime
	if moved := after.X - before.X; moved > maxStep+1e-9 {
		t.Errorf("Expected at most %.2f movement, got %.2f", maxStep, moved)
	}
}

// TestPlaySceneViewport 世界边界映射到屏幕边缘
func TestPlaySceneViewport(t *testing.T) {
	scene, w := newTestScene(t, InputSourceFunc(input.Idle))
	cfg := w.Config()

	x, y := scene.Viewport().WorldToScreen(utils.Vec2{X: -cfg.World.HalfWidth, Y: cfg.World.HalfHeight})
	if x != 0 || y != 0 {
		t.Errorf("Expected top-left corner at (0,0), got (%.1f,%.1f)", x, y)
	}

	x, y = scene.Viewport().WorldToScreen(utils.Vec2{X: cfg.World.HalfWidth, Y: -cfg.World.HalfHeight})
	if x != config.ScreenWidth || y != config.ScreenHeight {
		t.Errorf("Expected bottom-right corner at (%d,%d), got (%.1f,%.1f)", config.ScreenWidth, config.ScreenHeight, x, y)
	}

	if w.Phase() != game.PhasePlaying {
		t.Errorf("Expected Playing, got %s", w.Phase())
	}
}
