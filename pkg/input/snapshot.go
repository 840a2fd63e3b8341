// Package input 定义模拟层使用的输入快照
//
// 前端（ebiten 窗口、终端、脚本）每帧把各自的设备状态归约成一个 Snapshot，
// 模拟层只读取快照，不直接接触任何输入设备。
package input

import "github.com/gonewx/skyshooter/pkg/utils"

// Snapshot 一帧的输入状态
type Snapshot struct {
	// 方向键是否按住
	Up, Down, Left, Right bool

	// FireJustPressed 射击键在本帧刚按下（边沿触发，按住不会连发）
	FireJustPressed bool

	// RestartJustPressed 重开键在本帧刚按下
	RestartJustPressed bool

	// AimTarget 瞄准点（世界坐标），仅在 HasAim 为 true 时有效
	AimTarget utils.Vec2
	HasAim    bool
}

// Direction 返回按住的方向键对应的 8 方向单位向量
// 相反方向互相抵消，没有方向时返回零向量
func (s Snapshot) Direction() utils.Vec2 {
	var d utils.Vec2
	if s.Up {
		d.Y++
	}
	if s.Down {
		d.Y--
	}
	if s.Right {
		d.X++
	}
	if s.Left {
		d.X--
	}
	return d.Normalize()
}

// AimDirection 计算从 from 指向瞄准点的单位向量
//
// 规则：
//   - 有瞄准点时返回 normalize(AimTarget - from)，瞄准点与 from 重合时为零向量
//   - 没有瞄准点时返回零向量
func (s Snapshot) AimDirection(from utils.Vec2) utils.Vec2 {
	if !s.HasAim {
		return utils.Vec2{}
	}
	return s.AimTarget.Sub(from).Normalize()
}

// Idle 返回没有任何输入的快照
func Idle() Snapshot {
	return Snapshot{}
}
