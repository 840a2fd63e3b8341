package main

import (
	"math"

	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/input"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

// Script 根据帧号和世界当前状态生成本帧输入
type Script func(frame int, w *world.World) input.Snapshot

var scripts = map[string]Script{
	"idle":   idleScript,
	"turret": turretScript,
	"strafe": strafeScript,
}

// idleScript 什么都不做，等待被敌人撞到
func idleScript(int, *world.World) input.Snapshot {
	return input.Idle()
}

// turretScript 原地不动，瞄准最近的敌人并持续射击，游戏结束后立即重开
func turretScript(frame int, w *world.World) input.Snapshot {
	if w.Phase() == game.PhaseGameOver {
		return input.Snapshot{RestartJustPressed: true}
	}

	snap := input.Snapshot{FireJustPressed: true}
	player, ok := w.Player()
	if !ok {
		return snap
	}

	best := math.Inf(1)
	for _, v := range w.Entities() {
		if v.Class != components.ClassEnemy {
			continue
		}
		if d := v.Center().Sub(player.Center()).Len(); d < best {
			best = d
			snap.AimTarget = v.Center()
			snap.HasAim = true
		}
	}
	return snap
}

// strafeScript 左右来回移动，每 10 帧向正上方射击一次
func strafeScript(frame int, w *world.World) input.Snapshot {
	if w.Phase() == game.PhaseGameOver {
		return input.Snapshot{RestartJustPressed: frame%30 == 0}
	}

	leg := (frame / 90) % 4
	snap := input.Snapshot{
		Left:            leg == 0 || leg == 3,
		Right:           leg == 1 || leg == 2,
		FireJustPressed: frame%10 == 0,
	}
	if player, ok := w.Player(); ok {
		snap.AimTarget = player.Center().Add(utils.Vec2{Y: 100})
		snap.HasAim = true
	}
	return snap
}
