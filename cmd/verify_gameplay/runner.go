package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/ecs"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

// maxViolations 最多记录的违规条数
const maxViolations = 20

// Result 一次脚本运行的统计
type Result struct {
	Shots      int
	BestScore  int
	Violations []string
}

func (r *Result) violate(format string, args ...interface{}) {
	if len(r.Violations) < maxViolations {
		r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
	}
}

// run 按脚本推进 frames 帧，并在每帧之后做运行时检查
func run(w *world.World, script Script, frames, reportEvery int, out io.Writer) Result {
	var result Result
	seenProjectiles := make(map[ecs.EntityID]bool)
	cfg := w.Config()

	for frame := 0; frame < frames; frame++ {
		beforeScore := w.Score()
		beforeRestarts := w.Restarts()
		beforePhase := w.Phase()
		beforeViews := w.Entities()

		w.Update(frameDelta, script(frame, w))

		views := w.Entities()
		counts := w.Counts()
		restarted := w.Restarts() != beforeRestarts

		switch {
		case beforePhase == game.PhaseGameOver && !restarted:
			if !slices.Equal(beforeViews, views) || w.Score() != beforeScore {
				result.violate("frame %d: world changed during GameOver", frame)
			}
		case !restarted && w.Score() < beforeScore:
			result.violate("frame %d: score decreased %d -> %d", frame, beforeScore, w.Score())
		}

		if restarted && (w.Score() != 0 || counts.Players != 1 || counts.Enemies != 0 || counts.Projectiles != 0) {
			result.violate("frame %d: restart did not produce a fresh world", frame)
		}
		if counts.Players > 1 {
			result.violate("frame %d: %d players", frame, counts.Players)
		}
		if w.Phase() == game.PhasePlaying && counts.Players != 1 {
			result.violate("frame %d: playing without a player", frame)
		}

		for _, v := range views {
			if v.Class == components.ClassPlayer {
				continue
			}
			if utils.OutOfBounds(v.Center(), cfg.World.HalfWidth, cfg.World.HalfHeight) {
				result.violate("frame %d: %s %d left the field at (%.1f, %.1f)", frame, v.Class, v.ID, v.X, v.Y)
			}
			if v.Class == components.ClassProjectile && !seenProjectiles[v.ID] {
				seenProjectiles[v.ID] = true
				result.Shots++
			}
		}

		if w.Score() > result.BestScore {
			result.BestScore = w.Score()
		}

		if reportEvery > 0 && (frame+1)%reportEvery == 0 {
			fmt.Fprintf(out, "[frame %5d] phase=%-8s score=%3d enemies=%2d projectiles=%2d restarts=%d\n",
				frame+1, w.Phase(), w.Score(), counts.Enemies, counts.Projectiles, w.Restarts())
		}
	}

	return result
}
