package components

// PlayerComponent 玩家组件，持有射击冷却计时器
type PlayerComponent struct {
	// Cooldown 射击冷却，必须处于完成状态才允许开火
	Cooldown Timer
	// FacingRight 瞄准点在玩家右侧时为 true，前端据此翻转精灵
	FacingRight bool
}
