package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gonewx/skyshooter/pkg/app"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging and the debug overlay")
	configPath := flag.String("config", "", "Path to a tuning YAML file (default: embedded data/shooter.yaml)")
	seed := flag.Int64("seed", 0, "Random seed for enemy spawns (0 = use config, then current time)")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	tuning, err := loadTuning(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Tuning:  tuning,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadTuning 从磁盘或嵌入资源加载玩法参数
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultTuningConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning config: %w", err)
	}
	return config.ParseTuningConfig(data)
}
