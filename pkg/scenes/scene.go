// Package scenes 包含 ebiten 前端的场景
//
// 模拟逻辑全部在 world 包中，场景只负责把输入快照交给 World、
// 再把 World 的只读视图画到屏幕上。
package scenes

import (
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// InputSource 每帧提供一次输入快照
// 由 app 包基于 ebiten 的键盘、鼠标和触摸输入实现，测试中可以用固定快照代替
type InputSource interface {
	Poll() input.Snapshot
}

// InputSourceFunc 函数适配器，让普通函数实现 InputSource
type InputSourceFunc func() input.Snapshot

// Poll 调用 f()
func (f InputSourceFunc) Poll() input.Snapshot {
	return f()
}
