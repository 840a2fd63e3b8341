package systems

import (
	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// BoundsSystem 移除离开场地的子弹和敌人
// 判定只看实体中心：|x| > HalfWidth 或 |y| > HalfHeight
type BoundsSystem struct {
	entityManager *ecs.EntityManager
	halfWidth     float64
	halfHeight    float64
}

// NewBoundsSystem 创建边界清理系统
func NewBoundsSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *BoundsSystem {
	return &BoundsSystem{
		entityManager: em,
		halfWidth:     cfg.World.HalfWidth,
		halfHeight:    cfg.World.HalfHeight,
	}
}

// Update 标记所有出界的子弹和敌人待删除，返回数量
func (s *BoundsSystem) Update() int {
	removed := s.sweep(ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager))
	removed += s.sweep(ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager))
	return removed
}

func (s *BoundsSystem) sweep(ids []ecs.EntityID) int {
	removed := 0
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if utils.OutOfBounds(utils.Vec2{X: pos.X, Y: pos.Y}, s.halfWidth, s.halfHeight) {
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}
	return removed
}
