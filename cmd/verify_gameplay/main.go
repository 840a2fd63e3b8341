// verify_gameplay 无界面运行一局脚本化的游戏，打印分数、阶段和实体数量
//
// 用法:
//
//	go run ./cmd/verify_gameplay -script turret -frames 1800 -seed 42
//
// 任何一帧违反运行时检查（分数减少、GameOver 期间世界变化等）时以非 0 状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	configPath  = flag.String("config", "", "玩法参数 YAML 文件（默认使用内置参数）")
	seed        = flag.Int64("seed", 1, "随机种子（0 表示使用当前时间）")
	frames      = flag.Int("frames", 1800, "运行的帧数")
	scriptName  = flag.String("script", "turret", "输入脚本: "+strings.Join(scriptNames(), ", "))
	reportEvery = flag.Int("report", 300, "每隔多少帧打印一次状态（0 表示只打印结果）")
)

// frameDelta 固定帧时间
const frameDelta = 1.0 / 60.0

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	script, ok := scripts[*scriptName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown script %q, available: %s\n", *scriptName, strings.Join(scriptNames(), ", "))
		os.Exit(2)
	}

	cfg := config.DefaultTuningConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadTuningConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	rng := utils.NewPRNGService(*seed)
	w, err := world.NewWorld(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create world: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== verify_gameplay: script=%s frames=%d seed=%d ===\n", *scriptName, *frames, rng.Seed())

	result := run(w, script, *frames, *reportEvery, os.Stdout)

	fmt.Println("=== Result ===")
	fmt.Printf("Frames:     %d\n", w.Frame())
	fmt.Printf("Phase:      %s\n", w.Phase())
	fmt.Printf("Score:      %d (best %d)\n", w.Score(), result.BestScore)
	fmt.Printf("Restarts:   %d\n", w.Restarts())
	fmt.Printf("Shots:      %d\n", result.Shots)
	counts := w.Counts()
	fmt.Printf("Entities:   players=%d enemies=%d projectiles=%d\n", counts.Players, counts.Enemies, counts.Projectiles)

	if len(result.Violations) > 0 {
		fmt.Printf("FAILED: %d violation(s)\n", len(result.Violations))
		for _, v := range result.Violations {
			fmt.Printf("  - %s\n", v)
		}
		os.Exit(1)
	}
	fmt.Println("OK")
}

func scriptNames() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
