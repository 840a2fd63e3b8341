package game

import "log"

// Phase 游戏阶段
type Phase int

const (
	// PhasePlaying 游戏进行中，所有系统正常运行
	PhasePlaying Phase = iota
	// PhaseGameOver 玩家被敌人撞到，除重开检测外所有系统暂停
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StateListener 阶段变化监听器
// 每次成功的阶段切换都会按订阅顺序同步通知
type StateListener interface {
	OnPhaseChanged(from, to Phase)
}

// StateListenerFunc 函数适配器，让普通函数实现 StateListener
type StateListenerFunc func(from, to Phase)

// OnPhaseChanged 调用 f(from, to)
func (f StateListenerFunc) OnPhaseChanged(from, to Phase) {
	f(from, to)
}

// GameState 存储一局游戏的分数和阶段
//
// 与全局单例不同，每个 World 拥有自己的 GameState，
// 所以测试和无界面工具可以并存多个互不干扰的实例。
//
// 零值处于 PhasePlaying、分数为 0。
type GameState struct {
	phase     Phase
	score     int
	listeners []StateListener
}

// NewGameState 创建新的游戏状态
func NewGameState() *GameState {
	return &GameState{phase: PhasePlaying}
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// IsPlaying 是否处于 PhasePlaying
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// IsGameOver 是否处于 PhaseGameOver
func (gs *GameState) IsGameOver() bool {
	return gs.phase == PhaseGameOver
}

// Score 返回当前分数
func (gs *GameState) Score() int {
	return gs.score
}

// AddScore 增加分数
// 分数只增不减：非正数以及 GameOver 阶段的加分请求被忽略
func (gs *GameState) AddScore(n int) {
	if n <= 0 || gs.phase != PhasePlaying {
		return
	}
	gs.score += n
}

// ResetScore 分数清零（仅在重新开始时调用）
func (gs *GameState) ResetScore() {
	gs.score = 0
}

// EnterGameOver 切换到 GameOver
// 只有 Playing → GameOver 的切换返回 true；已经是 GameOver 时不会重复进入
func (gs *GameState) EnterGameOver() bool {
	return gs.transition(PhaseGameOver)
}

// EnterPlaying 切换到 Playing
// 只有 GameOver → Playing 的切换返回 true
func (gs *GameState) EnterPlaying() bool {
	return gs.transition(PhasePlaying)
}

// Subscribe 注册阶段变化监听器，nil 被忽略
func (gs *GameState) Subscribe(listener StateListener) {
	if listener == nil {
		return
	}
	gs.listeners = append(gs.listeners, listener)
}

func (gs *GameState) transition(to Phase) bool {
	from := gs.phase
	if from == to {
		return false
	}
	gs.phase = to
	log.Printf("[GameState] Phase changed: %s -> %s (score=%d)", from, to, gs.score)

	for _, l := range gs.listeners {
		l.OnPhaseChanged(from, to)
	}
	return true
}
