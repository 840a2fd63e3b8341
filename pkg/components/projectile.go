package components

// ProjectileComponent 玩家发射的子弹标记组件
type ProjectileComponent struct{}
