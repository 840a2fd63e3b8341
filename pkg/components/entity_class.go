package components

// EntityClass 实体类别
// 碰撞尺寸按类别配置，而不是按实体
type EntityClass int

const (
	ClassPlayer EntityClass = iota
	ClassEnemy
	ClassProjectile
)

// String 返回小写类别名
func (c EntityClass) String() string {
	switch c {
	case ClassPlayer:
		return "player"
	case ClassEnemy:
		return "enemy"
	case ClassProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}
