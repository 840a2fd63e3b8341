package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 玩家朝向指示线相对玩家宽度的长度比例
const aimLineScale = 0.75

// PlayScene 游戏主场景
// 每帧从 InputSource 读取一次快照推进 World，然后绘制实体和 HUD
type PlayScene struct {
	world    *world.World
	input    InputSource
	hud      *HUDRenderer
	viewport utils.Viewport
	verbose  bool
}

// NewPlayScene 创建游戏场景
//
// 参数:
//   - w: 模拟世界
//   - source: 输入来源
//   - hudRenderer: HUD 渲染器，为 nil 时不绘制 HUD
//   - verbose: 是否绘制调试信息
func NewPlayScene(w *world.World, source InputSource, hudRenderer *HUDRenderer, verbose bool) *PlayScene {
	cfg := w.Config()
	scene := &PlayScene{
		world:    w,
		input:    source,
		hud:      hudRenderer,
		viewport: utils.NewViewport(config.ScreenWidth, config.ScreenHeight, cfg.World.HalfWidth, cfg.World.HalfHeight),
		verbose:  verbose,
	}

	w.State().Subscribe(game.StateListenerFunc(func(from, to game.Phase) {
		log.Printf("[PlayScene] %s -> %s, score %d", from, to, w.Score())
	}))
	return scene
}

// Viewport 返回场景使用的世界→屏幕映射（输入层用它换算鼠标坐标）
func (s *PlayScene) Viewport() utils.Viewport {
	return s.viewport
}

// Update 推进一帧模拟
func (s *PlayScene) Update(deltaTime float64) {
	dt := world.ClampDelta(deltaTime, s.world.Config().Frame.MaxDeltaTime)
	s.world.Update(dt, s.input.Poll())
}

// Draw 绘制场景
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	gameOver := s.world.Phase() == game.PhaseGameOver
	for _, v := range s.world.Entities() {
		s.drawEntity(screen, v, gameOver)
	}

	if s.hud != nil {
		s.hud.Draw(screen, s.world.Score(), s.world.CooldownFraction(), gameOver)
	}

	if s.verbose {
		s.drawDebug(screen)
	}
}

func (s *PlayScene) drawEntity(screen *ebiten.Image, v world.EntityView, gameOver bool) {
	x, y, w, h := s.viewport.WorldRectToScreen(v.Center(), v.Size())
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), entityColor(v.Class, gameOver), false)

	if v.Class != components.ClassPlayer || gameOver {
		return
	}

	// 朝向指示线
	cx, cy := s.viewport.WorldToScreen(v.Center())
	angle := aimAngle(v)
	length := w * aimLineScale
	// 屏幕 Y 轴向下
	ex := cx + math.Cos(angle)*length
	ey := cy - math.Sin(angle)*length
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 3, config.TextColor, true)
}

func (s *PlayScene) drawDebug(screen *ebiten.Image) {
	counts := s.world.Counts()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nframe %d  enemies %d  projectiles %d  restarts %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.world.Frame(), counts.Enemies, counts.Projectiles, s.world.Restarts())
	ebitenutil.DebugPrintAt(screen, msg, int(config.HUDMargin), config.ScreenHeight-40)
}

// entityColor 按实体类别和游戏阶段选择颜色
// GameOver 时玩家变为黑色
func entityColor(class components.EntityClass, gameOver bool) color.Color {
	switch class {
	case components.ClassPlayer:
		if gameOver {
			return config.PlayerDeadColor
		}
		return config.PlayerColor
	case components.ClassEnemy:
		return config.EnemyColor
	case components.ClassProjectile:
		return config.ProjectileColor
	default:
		return config.TextColor
	}
}

// aimAngle 从玩家的旋转和翻转状态还原瞄准方向（世界坐标角度）
// 朝左时旋转角比瞄准角小 π
func aimAngle(v world.EntityView) float64 {
	if v.FacingRight {
		return v.Rotation
	}
	return v.Rotation + math.Pi
}
