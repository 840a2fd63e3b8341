package systems

import (
	"log"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/entities"
)

// RandomSource 敌人生成使用的随机数来源
// *utils.PRNGService 实现了此接口，测试中可以替换为固定序列
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 区间的随机数
	Float64() float64
}

// EnemySpawnSystem 管理敌人的定时生成
//
// 持有一个循环计时器（周期 Enemy.SpawnInterval），每完成一个周期
// 在顶部生成行 y=Enemy.SpawnY 生成一个敌人，x 在 [-spread/2, spread/2) 内均匀分布。
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
	rng           RandomSource
	spawnTimer    components.Timer
}

// NewEnemySpawnSystem 创建敌人生成系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: 数值配置
//   - rng: 随机数来源
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng RandomSource) *EnemySpawnSystem {
	log.Printf("[EnemySpawnSystem] Initialized with interval=%.2fs, spread=%.0f, y=%.0f",
		cfg.Enemy.SpawnInterval, cfg.Enemy.SpawnSpread, cfg.Enemy.SpawnY)
	return &EnemySpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		spawnTimer:    components.NewTimer(cfg.Enemy.SpawnInterval, components.TimerRepeating),
	}
}

// Update 推进生成计时器，返回本帧生成的敌人数量
// 一帧跨越多个周期时每个周期生成一个敌人
func (s *EnemySpawnSystem) Update(deltaTime float64) int {
	if !s.spawnTimer.Tick(deltaTime) {
		return 0
	}

	spawned := 0
	for i := 0; i < s.spawnTimer.TimesFinished(); i++ {
		x := s.nextSpawnX()
		if _, err := entities.NewEnemy(s.entityManager, s.config, x); err != nil {
			log.Printf("[EnemySpawnSystem] Failed to create enemy: %v", err)
			continue
		}
		spawned++
	}
	return spawned
}

// Reset 重置生成计时器（重新开始时调用）
func (s *EnemySpawnSystem) Reset() {
	s.spawnTimer.Reset()
}

// Timer 返回生成计时器（只读副本）
func (s *EnemySpawnSystem) Timer() components.Timer {
	return s.spawnTimer
}

// nextSpawnX 在 [-spread/2, spread/2) 内取一个随机X坐标
func (s *EnemySpawnSystem) nextSpawnX() float64 {
	spread := s.config.Enemy.SpawnSpread
	return s.rng.Float64()*spread - spread/2
}
