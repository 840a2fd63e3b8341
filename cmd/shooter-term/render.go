package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skyshooter/pkg/components"
	"github.com/gonewx/skyshooter/pkg/game"
	"github.com/gonewx/skyshooter/pkg/hud"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

// hudRows 顶部 HUD 占用的行数，场地从下一行开始
const hudRows = 1

var (
	hudStyle        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	playerDeadStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	enemyStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gameOverStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// fieldViewport 把整个世界映射到终端的场地区域（除 HUD 外的所有行）
func fieldViewport(cols, rows int, halfWidth, halfHeight float64) utils.Viewport {
	fieldRows := rows - hudRows
	if fieldRows < 1 {
		fieldRows = 1
	}
	return utils.NewViewport(float64(cols), float64(fieldRows), halfWidth, halfHeight)
}

// cellToWorld 返回字符格中心对应的世界坐标
func cellToWorld(vp utils.Viewport, col, row int) utils.Vec2 {
	return vp.ScreenToWorld(float64(col)+0.5, float64(row-hudRows)+0.5)
}

// cellRect 返回实体覆盖的字符格范围 [x0, x1) × [y0, y1)，至少一格
// 行号已包含 HUD 偏移
func cellRect(vp utils.Viewport, center, size utils.Vec2) (x0, y0, x1, y1 int) {
	x, y, w, h := vp.WorldRectToScreen(center, size)

	x0 = int(math.Floor(x))
	y0 = int(math.Floor(y))
	x1 = int(math.Ceil(x + w))
	y1 = int(math.Ceil(y + h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0 + hudRows, x1, y1 + hudRows
}

// entityGlyph 实体的字符和样式
func entityGlyph(v world.EntityView, gameOver bool) (rune, tcell.Style) {
	switch v.Class {
	case components.ClassPlayer:
		if gameOver {
			return '▒', playerDeadStyle
		}
		return '█', playerStyle
	case components.ClassEnemy:
		return '▓', enemyStyle
	default:
		return '|', projectileStyle
	}
}

// drawFrame 绘制一帧：实体、HUD 和游戏结束提示
func drawFrame(screen tcell.Screen, w *world.World, vp utils.Viewport) {
	screen.Clear()
	cols, rows := screen.Size()

	gameOver := w.Phase() == game.PhaseGameOver
	for _, v := range w.Entities() {
		r, style := entityGlyph(v, gameOver)
		x0, y0, x1, y1 := cellRect(vp, v.Center(), v.Size())
		for y := max(y0, hudRows); y < min(y1, rows); y++ {
			for x := max(x0, 0); x < min(x1, cols); x++ {
				screen.SetContent(x, y, r, nil, style)
			}
		}

		// 玩家中心显示朝向
		if v.Class == components.ClassPlayer && !gameOver {
			cx, cy := (x0+x1)/2, (y0+y1)/2
			facing := '<'
			if v.FacingRight {
				facing = '>'
			}
			screen.SetContent(cx, cy, facing, nil, playerStyle.Reverse(true))
		}
	}

	drawText(screen, 0, 0, hud.ScoreText(w.Score()), hudStyle)
	cooldown := hud.CooldownText(w.CooldownFraction())
	drawText(screen, cols-len(cooldown)-1, 0, cooldown, hudStyle)

	if gameOver {
		lines := strings.Split(hud.GameOverText, "\n")
		top := rows/2 - len(lines)/2
		for i, line := range lines {
			drawText(screen, (cols-len(line))/2, top+i, line, gameOverStyle)
		}
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
