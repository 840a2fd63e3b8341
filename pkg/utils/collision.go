package utils

import "math"

// Overlaps 检测两个轴对齐矩形（AABB）是否重叠
//
// 参数:
//   - centerA, centerB: 矩形中心（世界坐标）
//   - sizeA, sizeB: 矩形完整宽高
//
// 两个轴上都使用严格不等式：仅边或角接触不算重叠。
func Overlaps(centerA, sizeA, centerB, sizeB Vec2) bool {
	aMinX := centerA.X - sizeA.X/2
	aMaxX := centerA.X + sizeA.X/2
	aMinY := centerA.Y - sizeA.Y/2
	aMaxY := centerA.Y + sizeA.Y/2

	bMinX := centerB.X - sizeB.X/2
	bMaxX := centerB.X + sizeB.X/2
	bMinY := centerB.Y - sizeB.Y/2
	bMaxY := centerB.Y + sizeB.Y/2

	return aMinX < bMaxX &&
		aMaxX > bMinX &&
		aMinY < bMaxY &&
		aMaxY > bMinY
}

// OutOfBounds 检查点是否在以原点为中心的矩形之外
// 恰好落在边界上的点视为在内部
func OutOfBounds(p Vec2, halfWidth, halfHeight float64) bool {
	return math.Abs(p.X) > halfWidth || math.Abs(p.Y) > halfHeight
}

