package scenes

import (
	"bytes"
	"fmt"

	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDRenderer 绘制分数、冷却条和游戏结束提示
type HUDRenderer struct {
	scoreFace    *text.GoTextFace
	gameOverFace *text.GoTextFace
}

// NewHUDRenderer 加载内置字体并创建 HUD 渲染器
func NewHUDRenderer() (*HUDRenderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}

	return &HUDRenderer{
		scoreFace:    &text.GoTextFace{Source: source, Size: config.ScoreFontSize},
		gameOverFace: &text.GoTextFace{Source: source, Size: config.GameOverFontSize},
	}, nil
}

// Draw 绘制完整 HUD
//
// 参数:
//   - score: 当前分数
//   - cooldownFraction: 射击冷却进度 [0, 1]
//   - gameOver: 是否绘制游戏结束遮罩和提示
func (h *HUDRenderer) Draw(screen *ebiten.Image, score int, cooldownFraction float64, gameOver bool) {
	h.drawScore(screen, score)
	h.drawCooldownBar(screen, cooldownFraction)
	if gameOver {
		h.drawGameOver(screen)
	}
}

func (h *HUDRenderer) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreTextX, config.ScoreTextY)
	op.ColorScale.ScaleWithColor(config.TextColor)
	text.Draw(screen, hud.ScoreText(score), h.scoreFace, op)
}

// drawCooldownBar 右上角冷却条，宽度与冷却进度成正比
func (h *HUDRenderer) drawCooldownBar(screen *ebiten.Image, fraction float64) {
	x, y, w, barH := config.GetCooldownBarBounds()

	fill := config.CooldownBarFillWidth(fraction)
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), float32(barH), config.CooldownBarColor, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(barH), config.CooldownBarBorder, config.CooldownBarFrameColor, false)
}

func (h *HUDRenderer) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.GameOverOverlayColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, config.ScreenHeight/2-config.GameOverLineSpacing)
	op.ColorScale.ScaleWithColor(config.TextColor)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = config.GameOverLineSpacing
	text.Draw(screen, hud.GameOverText, h.gameOverFace, op)
}
