package systems

import (
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// CollisionSystem 处理碰撞判定
//
// 两个阶段，按顺序执行：
//  1. 子弹 vs 敌人：每枚子弹（ID升序）找到第一个重叠的存活敌人，两者都被移除，分数 +1。
//     被移除的敌人不再存活，后面的子弹不会再命中它。
//  2. 敌人 vs 玩家：任一存活敌人与玩家重叠即进入 GameOver。
//
// 碰撞盒尺寸按类别取自配置，判定使用严格不等式（只接触边缘不算碰撞）。
type CollisionSystem struct {
	entityManager  *ecs.EntityManager
	gameState      *game.GameState
	playerSize     utils.Vec2
	enemySize      utils.Vec2
	projectileSize utils.Vec2
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器，用于查询和移除实体
//   - gs: 游戏状态，用于加分和进入 GameOver
//   - cfg: 数值配置（碰撞盒尺寸）
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.TuningConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager:  em,
		gameState:      gs,
		playerSize:     cfg.Sizes.Player.Vec(),
		enemySize:      cfg.Sizes.Enemy.Vec(),
		projectileSize: cfg.Sizes.Projectile.Vec(),
	}
}

// Update 依次执行子弹命中和玩家被撞判定
// 两个阶段之间清理已标记的实体；碰撞只看当前位置，与帧时间无关
func (s *CollisionSystem) Update() {
	s.ResolveProjectileHits()
	s.entityManager.RemoveMarkedEntities()
	s.ResolvePlayerHit()
}

// ResolveProjectileHits 子弹 vs 敌人，返回命中次数
func (s *CollisionSystem) ResolveProjectileHits() int {
	projectiles := ecs.GetEntitiesWith2[
		*components.ProjectileComponent,
		*components.PositionComponent,
	](s.entityManager)

	hits := 0
	for _, projectileID := range projectiles {
		projectilePos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, projectileID)
		if !ok {
			continue
		}
		projectileCenter := utils.Vec2{X: projectilePos.X, Y: projectilePos.Y}

		// 每次重新查询，之前命中的敌人已被标记，不会再次出现
		enemies := ecs.GetEntitiesWith2[
			*components.EnemyComponent,
			*components.PositionComponent,
		](s.entityManager)

		for _, enemyID := range enemies {
			enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			if !ok {
				continue
			}

			if !utils.Overlaps(projectileCenter, s.projectileSize, utils.Vec2{X: enemyPos.X, Y: enemyPos.Y}, s.enemySize) {
				continue
			}

			s.entityManager.DestroyEntity(projectileID)
			s.entityManager.DestroyEntity(enemyID)
			s.gameState.AddScore(1)
			hits++
			break
		}
	}
	return hits
}

// ResolvePlayerHit 敌人 vs 玩家
// 返回本次调用是否触发了 Playing → GameOver
func (s *CollisionSystem) ResolvePlayerHit() bool {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	playerCenter := utils.Vec2{X: playerPos.X, Y: playerPos.Y}

	enemies := ecs.GetEntitiesWith2[
		*components.EnemyComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, enemyID := range enemies {
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}
		if utils.Overlaps(playerCenter, s.playerSize, utils.Vec2{X: enemyPos.X, Y: enemyPos.Y}, s.enemySize) {
			log.Printf("[CollisionSystem] Enemy %d hit player %d at (%.1f, %.1f)", enemyID, playerID, playerPos.X, playerPos.Y)
			return s.gameState.EnterGameOver()
		}
	}
	return false
}
