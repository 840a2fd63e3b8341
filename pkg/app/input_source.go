package app

import (
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 方向键绑定，WASD 与方向键等价
var (
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// EbitenInput 从 ebiten 的键盘、鼠标和触摸状态生成输入快照
//
// 鼠标左键或空格射击（仅在按下的那一帧），R 重新开始。
// 触摸模式下点击屏幕同时视为射击和重新开始。
type EbitenInput struct {
	viewport utils.Viewport
	touch    bool
}

// NewEbitenInput 创建 ebiten 输入源
//
// 参数:
//   - viewport: 用于把光标的屏幕坐标换算为世界坐标
//   - touch: 是否启用触摸操作
func NewEbitenInput(viewport utils.Viewport, touch bool) *EbitenInput {
	return &EbitenInput{viewport: viewport, touch: touch}
}

// Poll 读取本帧输入
// 必须在 ebiten 的 Update 中调用，inpututil 的边沿检测以 tick 为单位
func (in *EbitenInput) Poll() input.Snapshot {
	snap := input.Snapshot{
		Up:    anyPressed(upKeys),
		Down:  anyPressed(downKeys),
		Left:  anyPressed(leftKeys),
		Right: anyPressed(rightKeys),

		FireJustPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RestartJustPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	// 优先使用触摸位置
	if in.touch {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			x, y := ebiten.TouchPosition(ids[0])
			snap.AimTarget, snap.HasAim = in.aimFromPointer(x, y)
			snap.FireJustPressed = true
			snap.RestartJustPressed = true
			return snap
		}
		if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
			x, y := ebiten.TouchPosition(ids[0])
			snap.AimTarget, snap.HasAim = in.aimFromPointer(x, y)
			return snap
		}
	}

	x, y := ebiten.CursorPosition()
	snap.AimTarget, snap.HasAim = in.aimFromPointer(x, y)
	return snap
}

// aimFromPointer 把指针的屏幕坐标换算为瞄准目标
// 指针在渲染区域之外时没有瞄准目标
func (in *EbitenInput) aimFromPointer(x, y int) (utils.Vec2, bool) {
	fx, fy := float64(x), float64(y)
	if fx < 0 || fy < 0 || fx >= in.viewport.Width || fy >= in.viewport.Height {
		return utils.Vec2{}, false
	}
	return in.viewport.ScreenToWorld(fx, fy), true
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
