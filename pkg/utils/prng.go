package utils

import (
	"math/rand"
	"time"
)

// PRNGService 伪随机数服务
// 封装带种子的 *rand.Rand，整个游戏共享同一个可复现的随机序列
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService 使用指定种子创建服务
// 种子为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回创建时使用的种子
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 返回 [0.0, 1.0) 区间的随机数
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Intn 返回 [0, n) 区间的随机整数
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Range 返回 [min, max) 区间的随机数
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
