package systems

import (
	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有生命周期计时器，标记已过期的实体待删除
// 返回本帧过期的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	expired := 0
	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Timer.Tick(deltaTime)

		// 如果已过期,标记实体待删除
		if lifetime.Timer.Finished() {
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
