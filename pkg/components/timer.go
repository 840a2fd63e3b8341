package components

import "math"

// timerEpsilon 判断完成时容忍的浮点误差（秒）
// 例如 3 次 Tick(0.1) 的累加值略小于 0.3，仍应视为完成
const timerEpsilon = 1e-9

// TimerMode 计时器完成后的行为
type TimerMode int

const (
	// TimerOnce 完成后保持完成状态，直到 Reset
	TimerOnce TimerMode = iota
	// TimerRepeating 完成后按溢出量回绕，继续计时
	TimerRepeating
)

// String 返回模式名称（用于日志）
func (m TimerMode) String() string {
	switch m {
	case TimerOnce:
		return "once"
	case TimerRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Timer 计时器（秒）
// 用于射击冷却、子弹生命周期和敌人生成节奏。
//
// elapsed >= duration 时视为完成。duration 在创建时确定。
// 零值是一个时长为 0、已完成的一次性计时器。
type Timer struct {
	duration      float64
	elapsed       float64
	mode          TimerMode
	finished      bool
	justFinished  bool
	timesFinished int
}

// NewTimer 创建一个运行中的计时器，负时长按 0 处理
func NewTimer(duration float64, mode TimerMode) Timer {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick 推进计时器 deltaTime 秒，返回本次调用是否从运行变为完成
//
// 规则:
//   - 非正数和 NaN 的 deltaTime 不推进计时
//   - 一次性计时器完成后保持完成，Reset 前不会再次报告完成
//   - 循环计时器越过时长后 elapsed 按溢出量回绕，TimesFinished 返回本次跨越的完整周期数
func (t *Timer) Tick(deltaTime float64) bool {
	t.justFinished = false
	t.timesFinished = 0

	if !(deltaTime > 0) {
		return false
	}

	switch t.mode {
	case TimerRepeating:
		if t.duration == 0 {
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
			return true
		}
		t.elapsed += deltaTime
		if t.elapsed+timerEpsilon >= t.duration {
			n := math.Floor((t.elapsed + timerEpsilon) / t.duration)
			t.timesFinished = int(n)
			t.elapsed = math.Max(t.elapsed-n*t.duration, 0)
			t.finished = true
			t.justFinished = true
		} else {
			t.finished = false
		}
	default:
		if t.finished {
			return false
		}
		t.elapsed += deltaTime
		if t.elapsed+timerEpsilon >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
		}
	}

	return t.justFinished
}

// Reset 重置计时器
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}

// Finished 是否已完成
// 循环计时器只在回绕的那一帧为 true
func (t *Timer) Finished() bool {
	if t.mode == TimerOnce {
		return t.finished || t.elapsed >= t.duration
	}
	return t.finished
}

// JustFinished 上一次 Tick 是否刚刚完成
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished 上一次 Tick 完成的周期数
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Fraction 返回 elapsed/duration，限制在 [0, 1]
// 时长为 0 时返回 1
func (t *Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}
	f := t.elapsed / t.duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Elapsed 已累计时间（秒）
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining 距离完成的剩余时间
func (t *Timer) Remaining() float64 {
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Duration 计时器时长（秒）
func (t *Timer) Duration() float64 {
	return t.duration
}

// Mode 计时器模式
func (t *Timer) Mode() TimerMode {
	return t.mode
}
