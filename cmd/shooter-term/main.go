// shooter-term 在终端中运行游戏
//
// 操作：WASD/方向键移动，空格或鼠标左键射击，鼠标瞄准，R 重新开始，q/Esc 退出。
// 终端没有按键抬起事件，方向键在最后一次按下后短暂保持。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

var (
	configPath = flag.String("config", "", "Path to a tuning YAML file (default: built-in defaults)")
	seed       = flag.Int64("seed", 0, "Random seed for enemy spawns (0 = use config, then current time)")
	logPath    = flag.String("log", "", "Write logs to this file (terminal output is reserved for the game)")
)

func main() {
	flag.Parse()

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := config.DefaultTuningConfig()
	if *configPath != "" {
		cfg, err = config.LoadTuningConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	s := *seed
	if s == 0 {
		s = cfg.Seed
	}
	rng := utils.NewPRNGService(s)
	log.Printf("[Main] Random seed: %d", rng.Seed())

	w, err := world.NewWorld(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create world: %v\n", err)
		os.Exit(1)
	}

	term, err := NewTerminal(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	term.Run()
	term.Close()

	fmt.Printf("Final score: %d\n", w.Score())
}

// setupLogging 日志写入文件，未指定文件时丢弃
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
