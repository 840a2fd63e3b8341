// Package world 组装模拟层：实体存储、游戏状态、各个系统和每帧固定顺序的管线
//
// World 是模拟层唯一的状态所有者。前端每帧调用一次 Update(dt, snapshot)，
// 然后通过只读视图（Score、Phase、CooldownFraction、Entities）渲染。
package world

import (
	"fmt"
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/entities"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/systems"
)

// World 一局游戏的完整模拟状态
type World struct {
	config        *config.TuningConfig
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	playerMovementSystem *systems.PlayerMovementSystem
	movementSystem       *systems.MovementSystem
	fireControlSystem    *systems.FireControlSystem
	enemySpawnSystem     *systems.EnemySpawnSystem
	lifetimeSystem       *systems.LifetimeSystem
	boundsSystem         *systems.BoundsSystem
	collisionSystem      *systems.CollisionSystem

	frame    uint64
	restarts int
}

// NewWorld 创建世界，进入 Playing 并生成初始玩家
//
// 参数:
//   - cfg: 数值配置（必须已通过 Validate）
//   - rng: 敌人生成使用的随机数来源，通常是 *utils.PRNGService
//
// 返回:
//   - *World: 世界实例
//   - error: 参数无效或玩家创建失败时返回错误
func NewWorld(cfg *config.TuningConfig, rng systems.RandomSource) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tuning config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState()

	w := &World{
		config:               cfg,
		entityManager:        em,
		gameState:            gs,
		playerMovementSystem: systems.NewPlayerMovementSystem(em, cfg),
		movementSystem:       systems.NewMovementSystem(em),
		fireControlSystem:    systems.NewFireControlSystem(em, cfg),
		enemySpawnSystem:     systems.NewEnemySpawnSystem(em, cfg, rng),
		lifetimeSystem:       systems.NewLifetimeSystem(em),
		boundsSystem:         systems.NewBoundsSystem(em, cfg),
		collisionSystem:      systems.NewCollisionSystem(em, gs, cfg),
	}

	if _, err := entities.NewPlayer(em, cfg); err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}

	log.Printf("[World] Created (world=%.0fx%.0f)", 2*cfg.World.HalfWidth, 2*cfg.World.HalfHeight)
	return w, nil
}

// Update 推进一帧
//
// 非正数和 NaN 的 deltaTime 按 0 处理。执行顺序：
//  1. 玩家移动、实体移动
//  2. 射击控制
//  3. 敌人生成
//  4. 碰撞：子弹/敌人 → 敌人/玩家
//  5. 清理：生命周期到期 → 出界，每步之后移除已标记实体
//
// 碰撞先于清理，寿命在本帧到期或刚飞出边界的子弹仍能命中本帧重叠的敌人。
//
// 帧开始时处于 GameOver 的话，1-5 全部跳过，只检查重开键。
func (w *World) Update(deltaTime float64, snapshot input.Snapshot) {
	if !(deltaTime > 0) {
		deltaTime = 0
	}
	w.frame++

	if w.gameState.IsGameOver() {
		if snapshot.RestartJustPressed {
			w.restart()
		}
		return
	}

	w.playerMovementSystem.Update(deltaTime, snapshot)
	w.movementSystem.Update(deltaTime)

	w.fireControlSystem.Update(deltaTime, snapshot)

	w.enemySpawnSystem.Update(deltaTime)

	w.collisionSystem.Update()
	w.entityManager.RemoveMarkedEntities()

	w.lifetimeSystem.Update(deltaTime)
	w.entityManager.RemoveMarkedEntities()

	w.boundsSystem.Update()
	w.entityManager.RemoveMarkedEntities()
}

// restart 清空所有实体，分数归零，重置生成计时器，回到 Playing 并生成一个新玩家
func (w *World) restart() {
	w.entityManager.DestroyAll()
	w.entityManager.RemoveMarkedEntities()

	w.gameState.ResetScore()
	w.enemySpawnSystem.Reset()
	w.gameState.EnterPlaying()

	if _, err := entities.NewPlayer(w.entityManager, w.config); err != nil {
		log.Printf("[World] Failed to respawn player: %v", err)
	}

	w.restarts++
	log.Printf("[World] Restarted (restart #%d)", w.restarts)
}

// Score 当前分数
func (w *World) Score() int {
	return w.gameState.Score()
}

// Phase 当前阶段
func (w *World) Phase() game.Phase {
	return w.gameState.Phase()
}

// State 返回游戏状态，前端可以用它订阅阶段变化
func (w *World) State() *game.GameState {
	return w.gameState
}

// Config 返回数值配置
func (w *World) Config() *config.TuningConfig {
	return w.config
}

// Frame 已执行的 Update 次数
func (w *World) Frame() uint64 {
	return w.frame
}

// Restarts 重新开始的次数
func (w *World) Restarts() int {
	return w.restarts
}

// CooldownFraction 玩家射击冷却进度 [0, 1]，1 表示可以开火
// 没有玩家时返回 0
func (w *World) CooldownFraction() float64 {
	id, ok := w.playerID()
	if !ok {
		return 0
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](w.entityManager, id)
	if !ok {
		return 0
	}
	return player.Cooldown.Fraction()
}

func (w *World) playerID() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](w.entityManager)
	if len(ids) == 0 {
		return ecs.InvalidEntity, false
	}
	return ids[0], true
}
