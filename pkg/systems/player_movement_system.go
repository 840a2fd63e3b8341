package systems

import (
	"math"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/input"
)

// PlayerMovementSystem 根据输入快照移动玩家并让玩家朝向瞄准点
//
// 玩家没有持久速度：每帧位移 = 8方向单位向量 × Player.Speed × dt，
// 没有按方向键时原地不动。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	speed         float64
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		speed:         cfg.Player.Speed,
	}
}

// Update 更新玩家位置和朝向，没有玩家时什么都不做
func (s *PlayerMovementSystem) Update(deltaTime float64, snapshot input.Snapshot) {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	if deltaTime > 0 {
		step := snapshot.Direction().Scale(s.speed * deltaTime)
		pos.X += step.X
		pos.Y += step.Y
	}

	if snapshot.HasAim {
		faceTarget(pos, player, snapshot.AimTarget.X-pos.X, snapshot.AimTarget.Y-pos.Y)
	}
}

// faceTarget 让玩家朝向 (dx, dy) 方向
// 精灵默认朝左：目标在右侧时水平翻转并直接使用方向角，
// 在左侧（或正上/正下）时不翻转，旋转角减去 π。
func faceTarget(pos *components.PositionComponent, player *components.PlayerComponent, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	angle := math.Atan2(dy, dx)
	if dx > 0 {
		player.FacingRight = true
		pos.Rotation = angle
	} else {
		player.FacingRight = false
		pos.Rotation = angle - math.Pi
	}
}

// findPlayer 返回当前玩家实体（ID最小的那个）
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.PositionComponent,
	](em)
	if len(players) == 0 {
		return ecs.InvalidEntity, false
	}
	return players[0], true
}
