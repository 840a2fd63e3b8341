package components

// LifetimeComponent 生命周期组件
// 用于子弹等临时实体，计时器完成的那一帧即被移除
type LifetimeComponent struct {
	Timer Timer
}

// NewLifetimeComponent 创建一次性生命周期计时器（秒）
func NewLifetimeComponent(seconds float64) *LifetimeComponent {
	return &LifetimeComponent{Timer: NewTimer(seconds, TimerOnce)}
}
