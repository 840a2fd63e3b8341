package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口尺寸和 HUD 元素位置等前端布局参数
// 模拟层只使用世界坐标，这里的值只被 ebiten 场景和终端前端读取

// Window Configuration (窗口配置)
const (
	// WindowTitle 窗口标题
	WindowTitle = "Sky Shooter"

	// ScreenWidth 逻辑屏幕宽度（像素）
	// 默认世界宽 1800（半宽900），按 2/3 缩放
	ScreenWidth = 1200

	// ScreenHeight 逻辑屏幕高度（像素）
	// 默认世界高 1200（半高600），按 2/3 缩放
	ScreenHeight = 800
)

// HUD Configuration (HUD配置)
// 所有坐标使用屏幕坐标（左上角为原点）
const (
	// HUDMargin HUD 与屏幕边缘的距离
	HUDMargin = 16.0

	// ScoreTextX 分数文字左上角X坐标
	ScoreTextX = HUDMargin

	// ScoreTextY 分数文字左上角Y坐标
	ScoreTextY = HUDMargin

	// ScoreFontSize 分数文字字号
	ScoreFontSize = 28.0

	// CooldownBarWidth 冷却条满格宽度
	// 冷却条宽度 = 冷却进度 × CooldownBarWidth
	CooldownBarWidth = 100.0

	// CooldownBarHeight 冷却条高度
	CooldownBarHeight = 20.0

	// CooldownBarX 冷却条左上角X坐标（屏幕右上角）
	CooldownBarX = ScreenWidth - HUDMargin - CooldownBarWidth

	// CooldownBarY 冷却条左上角Y坐标
	CooldownBarY = HUDMargin

	// CooldownBarBorder 冷却条边框宽度
	CooldownBarBorder = 2.0

	// GameOverFontSize 游戏结束提示字号
	GameOverFontSize = 48.0

	// GameOverLineSpacing 游戏结束提示行距
	GameOverLineSpacing = 60.0
)

// HUD 颜色
var (
	// BackgroundColor 背景色
	BackgroundColor = color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xff}

	// PlayerColor 玩家颜色
	PlayerColor = color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xff}

	// PlayerDeadColor 游戏结束时玩家的颜色
	PlayerDeadColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

	// EnemyColor 敌人颜色
	EnemyColor = color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}

	// ProjectileColor 子弹颜色
	ProjectileColor = color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}

	// TextColor HUD 文字颜色
	TextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// CooldownBarColor 冷却条填充颜色
	CooldownBarColor = color.RGBA{R: 0x60, G: 0xe0, B: 0x60, A: 0xff}

	// CooldownBarFrameColor 冷却条边框颜色
	CooldownBarFrameColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}

	// GameOverOverlayColor 游戏结束遮罩颜色（半透明）
	GameOverOverlayColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x90}
)

// CooldownBarFillWidth 根据冷却进度计算冷却条填充宽度
//
// 参数：
//   - fraction: 冷却进度 [0, 1]，超出范围会被截断
//
// 返回：
//   - 填充宽度（像素），范围 [0, CooldownBarWidth]
func CooldownBarFillWidth(fraction float64) float64 {
	if !(fraction > 0) {
		return 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction * CooldownBarWidth
}

// GetCooldownBarBounds 返回冷却条的屏幕坐标边界
// 返回值：x, y, width, height
func GetCooldownBarBounds() (float64, float64, float64, float64) {
	return CooldownBarX, CooldownBarY, CooldownBarWidth, CooldownBarHeight
}
