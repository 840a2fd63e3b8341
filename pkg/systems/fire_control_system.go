package systems

import (
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/entities"
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// FireControlSystem 射击控制
//
// 每帧先推进玩家的冷却计时器；如果本帧按下射击键且冷却已完成，
// 在玩家位置发射一枚子弹并重置冷却。冷却未完成时的射击请求直接丢弃，不会缓存到下一帧。
// 快照没有瞄准点时方向为零向量，子弹原地不动直到寿命结束。
type FireControlSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
}

// NewFireControlSystem 创建射击控制系统
func NewFireControlSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *FireControlSystem {
	return &FireControlSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 推进冷却并处理射击请求
//
// 返回:
//   - ecs.EntityID: 本帧发射的子弹ID，没有发射时为 ecs.InvalidEntity
func (s *FireControlSystem) Update(deltaTime float64, snapshot input.Snapshot) ecs.EntityID {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return ecs.InvalidEntity
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return ecs.InvalidEntity
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return ecs.InvalidEntity
	}

	player.Cooldown.Tick(deltaTime)

	if !snapshot.FireJustPressed || !player.Cooldown.Finished() {
		return ecs.InvalidEntity
	}

	origin := utils.Vec2{X: pos.X, Y: pos.Y}
	direction := snapshot.AimDirection(origin)

	projectileID, err := entities.NewProjectile(s.entityManager, s.config, origin, direction)
	if err != nil {
		log.Printf("[FireControlSystem] Failed to create projectile: %v", err)
		return ecs.InvalidEntity
	}

	player.Cooldown.Reset()
	return projectileID
}
