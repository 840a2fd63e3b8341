package entities

import (
	"github.com/gonewx/skyshooter/pkg/config"
	"github.com/gonewx/skyshooter/pkg/ecs"
)

// newTestWorld 创建测试用的实体管理器和默认配置
func newTestWorld() (*ecs.EntityManager, *config.TuningConfig) {
	return ecs.NewEntityManager(), config.DefaultTuningConfig()
}
