package systems

import (
	"testing"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/entities"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// fixedRandom 按顺序循环返回预设值的随机数来源
type fixedRandom struct {
	values []float64
	next   int
}

func (r *fixedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// testEnv 系统测试共用的环境
type testEnv struct {
	em  *ecs.EntityManager
	cfg *config.TuningConfig
	gs  *game.GameState
}

func newTestEnv() *testEnv {
	return &testEnv{
		em:  ecs.NewEntityManager(),
		cfg: config.DefaultTuningConfig(),
		gs:  game.NewGameState(),
	}
}

// spawnPlayerAt 在指定位置创建玩家
func (e *testEnv) spawnPlayerAt(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(e.em, e.cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](e.em, id)
	pos.X, pos.Y = x, y
	return id
}

// spawnEnemyAt 在指定位置创建敌人
func (e *testEnv) spawnEnemyAt(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(e.em, e.cfg, x)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](e.em, id)
	pos.Y = y
	return id
}

// spawnProjectileAt 在指定位置创建向上飞的子弹
func (e *testEnv) spawnProjectileAt(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewProjectile(e.em, e.cfg, utils.Vec2{X: x, Y: y}, utils.Vec2{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("NewProjectile failed: %v", err)
	}
	return id
}

// positionOf 返回实体位置
func (e *testEnv) positionOf(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](e.em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

// countOf 统计拥有组件 T 的存活实体数量
func countOf[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

// expireCooldown 让玩家冷却立即完成
func (e *testEnv) expireCooldown(t *testing.T, playerID ecs.EntityID) {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](e.em, playerID)
	if !ok {
		t.Fatalf("entity %d has no PlayerComponent", playerID)
	}
	player.Cooldown.Tick(player.Cooldown.Duration())
}
