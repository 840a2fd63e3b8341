package components

// EnemyComponent 敌人标记组件
// 敌人按 VelocityComponent 直线下落
type EnemyComponent struct{}
