package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家出生在 cfg.Player.Spawn，带一个全新的射击冷却计时器（elapsed=0），
// 所以出生后要等满一个冷却时长才能第一次开火。
//
// 玩家没有 VelocityComponent：位移由 PlayerMovementSystem 每帧根据输入直接计算。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，失败时返回 0
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: cfg.Player.Spawn.X,
		Y: cfg.Player.Spawn.Y,
	})
	em.AddComponent(entityID, &components.PlayerComponent{
		Cooldown: components.NewTimer(cfg.Fire.Cooldown, components.TimerOnce),
	})

	log.Printf("[PlayerFactory] Created player %d at (%.1f, %.1f)", entityID, cfg.Player.Spawn.X, cfg.Player.Spawn.Y)

	return entityID, nil
}
