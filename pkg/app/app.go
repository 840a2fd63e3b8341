// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/scenes"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// Tuning 玩法参数，为 nil 时使用默认值
	Tuning *config.TuningConfig
	// Seed 随机种子，非 0 时覆盖 Tuning.Seed；两者都为 0 时使用当前时间
	Seed int64
	// Touch 启用触摸操作（移动端）
	Touch bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning := cfg.Tuning
	if tuning == nil {
		tuning = config.DefaultTuningConfig()
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("tuning config invalid: %w", err)
	}

	hudRenderer, err := scenes.NewHUDRenderer()
	if err != nil {
		return nil, fmt.Errorf("HUD 初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = tuning.Seed
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() (scenes.Scene, error) {
		return newPlayScene(tuning, seed, hudRenderer, cfg)
	})
	if !sceneManager.Reload() {
		return nil, errors.New("failed to create play scene")
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// newPlayScene 创建一个全新的世界及其场景
func newPlayScene(tuning *config.TuningConfig, seed int64, hudRenderer *scenes.HUDRenderer, cfg Config) (scenes.Scene, error) {
	rng := utils.NewPRNGService(seed)
	log.Printf("[App] Random seed: %d", rng.Seed())

	w, err := world.NewWorld(tuning, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	viewport := utils.NewViewport(config.ScreenWidth, config.ScreenHeight, tuning.World.HalfWidth, tuning.World.HalfHeight)
	source := NewEbitenInput(viewport, cfg.Touch || utils.IsMobile())
	return scenes.NewPlayScene(w, source, hudRenderer, cfg.Verbose), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F5 以新的世界重新开始（调试用）
	if a.verbose && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.Reload()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
