package world

import (
	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// EntityView 实体的只读渲染视图（世界坐标）
type EntityView struct {
	ID    ecs.EntityID
	Class components.EntityClass

	// X/Y 碰撞盒中心
	X, Y     float64
	Rotation float64

	// FacingRight 仅对玩家有意义
	FacingRight bool

	// 碰撞盒完整宽高
	Width, Height float64
}

// Center 返回中心坐标
func (v EntityView) Center() utils.Vec2 {
	return utils.Vec2{X: v.X, Y: v.Y}
}

// Size 返回碰撞盒尺寸
func (v EntityView) Size() utils.Vec2 {
	return utils.Vec2{X: v.Width, Y: v.Height}
}

// Counts 各类实体数量
type Counts struct {
	Players     int
	Enemies     int
	Projectiles int
}

// Entities 返回所有存活实体的视图，按ID升序
func (w *World) Entities() []EntityView {
	ids := ecs.GetEntitiesWith1[*components.PositionComponent](w.entityManager)

	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		if v, ok := w.view(id); ok {
			views = append(views, v)
		}
	}
	return views
}

// Player 返回玩家视图，没有玩家时第二个返回值为 false
func (w *World) Player() (EntityView, bool) {
	id, ok := w.playerID()
	if !ok {
		return EntityView{}, false
	}
	return w.view(id)
}

// Counts 统计各类存活实体
func (w *World) Counts() Counts {
	return Counts{
		Players:     len(ecs.GetEntitiesWith1[*components.PlayerComponent](w.entityManager)),
		Enemies:     len(ecs.GetEntitiesWith1[*components.EnemyComponent](w.entityManager)),
		Projectiles: len(ecs.GetEntitiesWith1[*components.ProjectileComponent](w.entityManager)),
	}
}

func (w *World) view(id ecs.EntityID) (EntityView, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
	if !ok {
		return EntityView{}, false
	}

	v := EntityView{
		ID:       id,
		X:        pos.X,
		Y:        pos.Y,
		Rotation: pos.Rotation,
	}

	var size utils.Vec2
	switch {
	case ecs.HasComponent[*components.PlayerComponent](w.entityManager, id):
		player, _ := ecs.GetComponent[*components.PlayerComponent](w.entityManager, id)
		v.Class = components.ClassPlayer
		v.FacingRight = player.FacingRight
		size = w.config.Sizes.Player.Vec()
	case ecs.HasComponent[*components.EnemyComponent](w.entityManager, id):
		v.Class = components.ClassEnemy
		size = w.config.Sizes.Enemy.Vec()
	case ecs.HasComponent[*components.ProjectileComponent](w.entityManager, id):
		v.Class = components.ClassProjectile
		size = w.config.Sizes.Projectile.Vec()
	default:
		return EntityView{}, false
	}

	v.Width, v.Height = size.X, size.Y
	return v, true
}

// ClampDelta 把帧时间限制在 [0, max]
// 前端在把真实帧时间传给 Update 之前调用，窗口卡顿时避免一帧跨越过长时间
func ClampDelta(deltaTime, max float64) float64 {
	if !(deltaTime > 0) {
		return 0
	}
	if max > 0 && deltaTime > max {
		return max
	}
	return deltaTime
}
