package entities

import (
	"fmt"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
)

// NewEnemy 创建敌人实体
// 敌人出现在顶部生成行 (x, cfg.Enemy.SpawnY)，以 cfg.Enemy.Speed 直线向下移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - x: 出生点世界坐标X
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败时返回 0
//   - error: 参数无效时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.TuningConfig, x float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: x,
		Y: cfg.Enemy.SpawnY,
	})
	// 向下（-Y）移动
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: -cfg.Enemy.Speed,
	})
	em.AddComponent(entityID, &components.EnemyComponent{})

	return entityID, nil
}
