package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skyshooter/pkg/utils"
	"github.com/gonewx/skyshooter/pkg/world"
)

// frameInterval 终端前端的帧间隔（约 60 FPS）
const frameInterval = 16 * time.Millisecond

// Terminal 基于 tcell 的终端前端
type Terminal struct {
	screen   tcell.Screen
	world    *world.World
	keys     *keyTracker
	viewport utils.Viewport
}

// NewTerminal 初始化终端屏幕
func NewTerminal(w *world.World) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		world:  w,
		keys:   newKeyTracker(holdWindow),
	}
	t.resize()
	return t, nil
}

// Close 恢复终端
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	cfg := t.world.Config()
	t.viewport = fieldViewport(cols, rows, cfg.World.HalfWidth, cfg.World.HalfHeight)
	log.Printf("[Terminal] Resized to %dx%d", cols, rows)
}

// Run 运行主循环直到用户退出
func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	maxDelta := t.world.Config().Frame.MaxDeltaTime

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := world.ClampDelta(now.Sub(last).Seconds(), maxDelta)
			last = now

			t.world.Update(dt, t.keys.snapshot(now))
			drawFrame(t.screen, t.world, t.viewport)
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	now := time.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.keys.press(dirUp, now)
		case tcell.KeyDown:
			t.keys.press(dirDown, now)
		case tcell.KeyLeft:
			t.keys.press(dirLeft, now)
		case tcell.KeyRight:
			t.keys.press(dirRight, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W':
				t.keys.press(dirUp, now)
			case 's', 'S':
				t.keys.press(dirDown, now)
			case 'a', 'A':
				t.keys.press(dirLeft, now)
			case 'd', 'D':
				t.keys.press(dirRight, now)
			case ' ':
				t.keys.pressFire()
			case 'r', 'R':
				t.keys.pressRestart()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		t.keys.pointer(cellToWorld(t.viewport, col, row), ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}

	return true
}
