package systems

import (
	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/ecs"
)

// MovementSystem 按恒定速度移动实体（敌人、子弹）
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
	}
}

// Update 对所有拥有 PositionComponent 和 VelocityComponent 的实体执行 pos += vel*dt
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
