package components

// PositionComponent 实体在世界坐标中的变换
// X/Y 为实体碰撞盒中心，+Y 向上
type PositionComponent struct {
	X, Y float64
	// Rotation 旋转角（弧度），从 +X 轴逆时针
	Rotation float64
}

// VelocityComponent 恒定速度（世界单位/秒）
// 生成时设定，之后不再改变
type VelocityComponent struct {
	VX, VY float64
}
