// validate_config 检查玩法参数 YAML 文件
//
// 用法:
//
//	go run ./cmd/validate_config data/shooter.yaml my_tuning.yaml
//
// 除了 TuningConfig.Validate() 的数值检查外，还会报告拼写错误的键名
// （LoadTuningConfig 会静默忽略未知键，导致参数没有生效）。
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/skyshooter/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	log.SetOutput(io.Discard)

	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultTuningConfigPath}
	}

	failed := 0
	for _, path := range paths {
		if err := validateFile(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
	}

	if failed > 0 {
		fmt.Printf("\n%d/%d 个文件未通过检查\n", failed, len(paths))
		os.Exit(1)
	}
}

// validateFile 严格解析（拒绝未知键）并执行数值检查
func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return validate(data)
}

func validate(data []byte) error {
	strict := config.DefaultTuningConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(strict); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("strict parse failed: %w", err)
	}

	cfg, err := config.ParseTuningConfig(data)
	if err != nil {
		return err
	}

	// ParseTuningConfig 与严格解析应得到相同结果
	if *cfg != *strict {
		return errors.New("strict and lenient parse disagree")
	}
	return nil
}
