package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gonewx/skyshooter/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 所有校验失败都会包装此错误
var ErrInvalidConfig = errors.New("invalid tuning config")

// DefaultTuningConfigPath 内嵌的默认数值配置文件
const DefaultTuningConfigPath = "data/shooter.yaml"

// TuningConfig 游戏数值配置
//
// 包含模拟层用到的所有玩法常量，启动时读取一次，运行期间不再修改。
// 距离使用世界单位（原点在场地中心，+Y 向上），速度单位为 世界单位/秒，时长单位为秒。
//
// 配置文件位置: data/shooter.yaml
type TuningConfig struct {
	World      WorldConfig      `yaml:"world"`
	Sizes      SizesConfig      `yaml:"sizes"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Fire       FireConfig       `yaml:"fire"`
	Frame      FrameConfig      `yaml:"frame"`

	// Seed 敌人生成随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// WorldConfig 场地边界配置
// |x| > HalfWidth 或 |y| > HalfHeight 的子弹和敌人会被移除
type WorldConfig struct {
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`
}

// Size 宽高（世界单位）
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Vec 转换为向量
func (s Size) Vec() utils.Vec2 {
	return utils.Vec2{X: s.Width, Y: s.Height}
}

// Point 世界坐标点或方向
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为向量
func (p Point) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// SizesConfig 各类实体的碰撞盒尺寸
type SizesConfig struct {
	Player     Size `yaml:"player"`
	Enemy      Size `yaml:"enemy"`
	Projectile Size `yaml:"projectile"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
	Spawn Point   `yaml:"spawn"`
}

// EnemyConfig 敌人下落与生成配置
type EnemyConfig struct {
	// Speed 直线下落速度
	Speed float64 `yaml:"speed"`
	// SpawnY 敌人出现的顶部 Y 坐标
	SpawnY float64 `yaml:"spawnY"`
	// SpawnSpread 以 x=0 为中心的生成带宽度
	SpawnSpread float64 `yaml:"spawnSpread"`
	// SpawnInterval 循环生成计时器的周期
	SpawnInterval float64 `yaml:"spawnInterval"`
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

// FireConfig 射击控制配置
type FireConfig struct {
	Cooldown float64 `yaml:"cooldown"`
}

// FrameConfig 前端向模拟层传入帧时间的配置
type FrameConfig struct {
	// MaxDeltaTime 单帧时间步长上限
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`
}

// DefaultTuningConfig 返回内置默认数值
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		World: WorldConfig{HalfWidth: 900, HalfHeight: 600},
		Sizes: SizesConfig{
			Player:     Size{Width: 160, Height: 120.5},
			Enemy:      Size{Width: 66.9, Height: 48.9},
			Projectile: Size{Width: 10, Height: 30},
		},
		Player: PlayerConfig{
			Speed: 300,
			Spawn: Point{X: 0, Y: -200},
		},
		Enemy: EnemyConfig{
			Speed:         100,
			SpawnY:        300,
			SpawnSpread:   800,
			SpawnInterval: 1.5,
		},
		Projectile: ProjectileConfig{
			Speed:    500,
			Lifetime: 2.0,
		},
		Fire:  FireConfig{Cooldown: 0.5},
		Frame: FrameConfig{MaxDeltaTime: 0.06},
	}
}

// LoadTuningConfig 加载数值配置
//
// 从指定路径加载 YAML 格式的配置文件，文件中缺失的键保留 DefaultTuningConfig 的值。
//
// 参数:
//   - path: 配置文件路径，如 "data/shooter.yaml"
//
// 返回:
//   - *TuningConfig: 校验通过的配置对象
//   - error: 读取、解析或校验失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 解析并校验 YAML 数值配置
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查规则:
//   - 场地半宽/半高、尺寸和时长必须为正数
//   - 速度不能为负数
//   - 生成带不能比场地宽，生成行必须在场地内
//   - 默认瞄准方向不能是 NaN
func (c *TuningConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"world.halfWidth", c.World.HalfWidth},
		{"world.halfHeight", c.World.HalfHeight},
		{"sizes.player.width", c.Sizes.Player.Width},
		{"sizes.player.height", c.Sizes.Player.Height},
		{"sizes.enemy.width", c.Sizes.Enemy.Width},
		{"sizes.enemy.height", c.Sizes.Enemy.Height},
		{"sizes.projectile.width", c.Sizes.Projectile.Width},
		{"sizes.projectile.height", c.Sizes.Projectile.Height},
		{"enemy.spawnInterval", c.Enemy.SpawnInterval},
		{"projectile.lifetime", c.Projectile.Lifetime},
		{"frame.maxDeltaTime", c.Frame.MaxDeltaTime},
	}
	for _, p := range positives {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"player.speed", c.Player.Speed},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.spawnSpread", c.Enemy.SpawnSpread},
		{"projectile.speed", c.Projectile.Speed},
		{"fire.cooldown", c.Fire.Cooldown},
	}
	for _, n := range nonNegatives {
		if !(n.value >= 0) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, n.name, n.value)
		}
	}

	if c.Enemy.SpawnSpread > 2*c.World.HalfWidth {
		return fmt.Errorf("%w: enemy.spawnSpread (%.1f) wider than the world (%.1f)",
			ErrInvalidConfig, c.Enemy.SpawnSpread, 2*c.World.HalfWidth)
	}
	if math.Abs(c.Enemy.SpawnY) > c.World.HalfHeight {
		return fmt.Errorf("%w: enemy.spawnY (%.1f) outside the world (±%.1f)",
			ErrInvalidConfig, c.Enemy.SpawnY, c.World.HalfHeight)
	}
	return nil
}

// SizeOf 按类别名（"player"、"enemy"、"projectile"）返回碰撞尺寸
func (c *TuningConfig) SizeOf(class string) (utils.Vec2, bool) {
	switch class {
	case "player":
		return c.Sizes.Player.Vec(), true
	case "enemy":
		return c.Sizes.Enemy.Vec(), true
	case "projectile":
		return c.Sizes.Projectile.Vec(), true
	}
	return utils.Vec2{}, false
}
