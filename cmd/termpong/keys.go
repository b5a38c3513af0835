package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/match"
)

// Terminals report key presses and auto-repeats but never releases, so a
// press holds its direction for holdTicks and repeats keep extending it.
const holdTicks = 8

type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdRestart
	cmdQuit
)

func commandFor(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEnter:
		return cmdRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return cmdUp
		case 's', 'S':
			return cmdDown
		case 'r', 'R':
			return cmdRestart
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

type heldKeys struct {
	tick      uint64
	upUntil   uint64
	downUntil uint64
}

func (h *heldKeys) press(c command) {
	switch c {
	case cmdUp:
		h.upUntil = h.tick + holdTicks
		h.downUntil = 0
	case cmdDown:
		h.downUntil = h.tick + holdTicks
		h.upUntil = 0
	}
}

// advance moves to the next tick and returns the intent for it.
func (h *heldKeys) advance() match.Intent {
	in := match.Intent{Up: h.tick < h.upUntil, Down: h.tick < h.downUntil}
	h.tick++
	return in
}
