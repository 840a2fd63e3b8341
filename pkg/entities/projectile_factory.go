package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// NewProjectile 创建子弹实体
// 子弹从 origin 出发，速度为 direction × cfg.Projectile.Speed，
// 带一个 cfg.Projectile.Lifetime 秒的一次性生命周期计时器。
//
// direction 应为单位向量；零向量会得到一个原地不动的子弹，
// 它仍会在生命周期结束时被移除。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - origin: 发射位置（世界坐标）
//   - direction: 飞行方向
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，失败时返回 0
//   - error: 参数无效时返回错误
func NewProjectile(em *ecs.EntityManager, cfg *config.TuningConfig, origin, direction utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	entityID := em.CreateEntity()

	velocity := direction.Scale(cfg.Projectile.Speed)

	// 子弹精灵是竖直的，旋转角以 +Y 为 0
	rotation := 0.0
	if direction.IsZero() {
		log.Printf("[ProjectileFactory] Projectile %d has zero aim direction, it will not move", entityID)
	} else {
		rotation = direction.Angle() - utils.HalfPi
	}

	em.AddComponent(entityID, &components.PositionComponent{
		X:        origin.X,
		Y:        origin.Y,
		Rotation: rotation,
	})
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: velocity.X,
		VY: velocity.Y,
	})
	em.AddComponent(entityID, &components.ProjectileComponent{})
	em.AddComponent(entityID, components.NewLifetimeComponent(cfg.Projectile.Lifetime))

	return entityID, nil
}
