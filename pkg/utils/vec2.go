package utils

import "math"

// HalfPi π/2
const HalfPi = math.Pi / 2

// Vec2 二维向量（世界单位）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 返回向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 检查是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回同方向的单位向量
// 零向量（以及 NaN/Inf）返回零向量
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle 返回向量方向角（弧度），从 +X 轴逆时针转向 +Y
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
