// Package utils 提供模拟层与前端共用的工具函数
//
// 坐标系统说明:
//   - 世界坐标（World Coordinates）：原点在场地中心，+Y 向上，单位为世界单位。
//     所有模拟状态（位置、尺寸、边界）都使用世界坐标。
//   - 屏幕坐标（Screen Coordinates）：原点在渲染目标左上角，+Y 向下，
//     单位为像素（ebiten）或字符格（终端）。
//
// 转换公式:
//
//	screenX = centerX + worldX*scaleX
//	screenY = centerY - worldY*scaleY
//
// 其中 (centerX, centerY) 为渲染目标中心。
package utils

// Viewport 将世界坐标映射到渲染目标
type Viewport struct {
	// 渲染目标宽高（屏幕单位）
	Width, Height float64
	// 每个世界单位对应的屏幕单位数
	ScaleX, ScaleY float64
}

// NewViewport 将给定半宽/半高的世界拉伸到 width x height 的渲染目标
// 两个轴独立缩放
func NewViewport(width, height, halfWidth, halfHeight float64) Viewport {
	v := Viewport{Width: width, Height: height, ScaleX: 1, ScaleY: 1}
	if halfWidth > 0 {
		v.ScaleX = width / (2 * halfWidth)
	}
	if halfHeight > 0 {
		v.ScaleY = height / (2 * halfHeight)
	}
	return v
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (v Viewport) WorldToScreen(p Vec2) (float64, float64) {
	return v.Width/2 + p.X*v.ScaleX, v.Height/2 - p.Y*v.ScaleY
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (v Viewport) ScreenToWorld(x, y float64) Vec2 {
	p := Vec2{}
	if v.ScaleX != 0 {
		p.X = (x - v.Width/2) / v.ScaleX
	}
	if v.ScaleY != 0 {
		p.Y = (v.Height/2 - y) / v.ScaleY
	}
	return p
}

// WorldSizeToScreen 世界尺寸 → 屏幕尺寸
func (v Viewport) WorldSizeToScreen(size Vec2) (float64, float64) {
	return size.X * v.ScaleX, size.Y * v.ScaleY
}

// WorldRectToScreen 返回以 center 为中心、尺寸为 size 的矩形在屏幕上的
// 左上角坐标和宽高
func (v Viewport) WorldRectToScreen(center, size Vec2) (x, y, w, h float64) {
	cx, cy := v.WorldToScreen(center)
	w, h = v.WorldSizeToScreen(size)
	return cx - w/2, cy - h/2, w, h
}
