// Package hud 生成 HUD 显示的文字
// 不依赖任何渲染后端，ebiten 场景和终端前端共用
package hud

import "fmt"

// GameOverText 游戏结束提示
const GameOverText = "GAME OVER, YOU DEAD\nPress R to Restart"

// ScoreText 返回分数文字，如 "Score: 3"
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// CooldownPercent 冷却进度百分比 [0, 100]
func CooldownPercent(fraction float64) int {
	if !(fraction > 0) {
		return 0
	}
	if fraction >= 1 {
		return 100
	}
	return int(fraction * 100)
}

// CooldownText 返回冷却状态文字（终端前端使用）
func CooldownText(fraction float64) string {
	if fraction >= 1 {
		return "Ready"
	}
	return fmt.Sprintf("Cooldown %3d%%", CooldownPercent(fraction))
}
