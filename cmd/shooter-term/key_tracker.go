package main

import (
	"time"

	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/utils"
)

// holdWindow 终端没有按键抬起事件，方向键在最后一次按下（或自动重复）后
// 这段时间内视为仍被按住
const holdWindow = 200 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// opposite 返回相反方向
func (d direction) opposite() direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	default:
		return dirLeft
	}
}

// keyTracker 把终端的离散按键事件整理成每帧一份的输入快照
//
// 射击和重开是边沿触发：事件到达后只在下一份快照中出现一次。
type keyTracker struct {
	hold     time.Duration
	lastSeen [dirCount]time.Time

	fire    bool
	restart bool

	buttonDown bool
	aim        utils.Vec2
	hasAim     bool
}

func newKeyTracker(hold time.Duration) *keyTracker {
	return &keyTracker{hold: hold}
}

// press 记录一次方向键事件
// 按下某方向时立即松开相反方向，转向不必等待保持窗口结束
func (k *keyTracker) press(d direction, now time.Time) {
	if d < 0 || d >= dirCount {
		return
	}
	k.lastSeen[d] = now
	k.lastSeen[d.opposite()] = time.Time{}
}

func (k *keyTracker) pressFire() {
	k.fire = true
}

func (k *keyTracker) pressRestart() {
	k.restart = true
}

// pointer 记录鼠标位置和左键状态
// 左键从松开变为按下时触发一次射击
func (k *keyTracker) pointer(aim utils.Vec2, leftDown bool) {
	k.aim = aim
	k.hasAim = true
	if leftDown && !k.buttonDown {
		k.fire = true
	}
	k.buttonDown = leftDown
}

// held 方向键是否仍在保持窗口内
func (k *keyTracker) held(d direction, now time.Time) bool {
	seen := k.lastSeen[d]
	return !seen.IsZero() && now.Sub(seen) < k.hold
}

// snapshot 生成本帧快照并清除边沿事件
func (k *keyTracker) snapshot(now time.Time) input.Snapshot {
	snap := input.Snapshot{
		Up:                 k.held(dirUp, now),
		Down:               k.held(dirDown, now),
		Left:               k.held(dirLeft, now),
		Right:              k.held(dirRight, now),
		FireJustPressed:    k.fire,
		RestartJustPressed: k.restart,
		AimTarget:          k.aim,
		HasAim:             k.hasAim,
	}
	k.fire = false
	k.restart = false
	return snap
}
