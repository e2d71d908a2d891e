package tui

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/system"
)

// holdWindow is how long one key event counts as a held key. Terminals
// report presses and auto-repeat but never releases.
const holdWindow = 300 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// CommandKind is a discrete action decoded from a key.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdPause
	CmdChoose
	CmdContinue
	CmdRestart
	CmdDebugSpawn
)

// Command is one decoded action. Index is the upgrade slot for CmdChoose
// and the enemy kind slot for CmdDebugSpawn.
type Command struct {
	Kind  CommandKind
	Index int
}

// Controller turns terminal key and mouse events into simulation input.
type Controller struct {
	held      map[direction]time.Time
	aimCol    int
	aimRow    int
	hasAim    bool
	mouseFire bool
	autoFire  bool
}

func NewController() *Controller {
	return &Controller{held: make(map[direction]time.Time)}
}

// HandleKey records movement keys and decodes everything else.
func (c *Controller) HandleKey(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Command{Kind: CmdQuit}
	case tcell.KeyEnter:
		return Command{Kind: CmdContinue}
	case tcell.KeyUp:
		c.held[dirUp] = now
	case tcell.KeyDown:
		c.held[dirDown] = now
	case tcell.KeyLeft:
		c.held[dirLeft] = now
	case tcell.KeyRight:
		c.held[dirRight] = now
	case tcell.KeyRune:
		return c.handleRune(ev.Rune(), ev.Modifiers(), now)
	}
	return Command{}
}

func (c *Controller) handleRune(r rune, mod tcell.ModMask, now time.Time) Command {
	switch r {
	case 'w', 'W':
		c.held[dirUp] = now
	case 's', 'S':
		c.held[dirDown] = now
	case 'a', 'A':
		c.held[dirLeft] = now
	case 'd', 'D':
		c.held[dirRight] = now
	case ' ':
		c.autoFire = !c.autoFire
	case 'q':
		return Command{Kind: CmdQuit}
	case 'p':
		return Command{Kind: CmdPause}
	case 'r':
		return Command{Kind: CmdRestart}
	}
	if r >= '1' && r <= '9' {
		if mod&tcell.ModAlt != 0 {
			if i := int(r - '1'); i < len(defs.AllKinds) {
				return Command{Kind: CmdDebugSpawn, Index: i}
			}
			return Command{}
		}
		return Command{Kind: CmdChoose, Index: int(r - '1')}
	}
	return Command{}
}

// HandleMouse tracks the pointer cell and the primary button.
func (c *Controller) HandleMouse(ev *tcell.EventMouse) {
	c.aimCol, c.aimRow = ev.Position()
	c.hasAim = true
	c.mouseFire = ev.Buttons()&tcell.Button1 != 0
}

func (c *Controller) isHeld(d direction, now time.Time) bool {
	at, ok := c.held[d]
	return ok && now.Sub(at) < holdWindow
}

// Release forgets every held key.
func (c *Controller) Release() {
	for d := range c.held {
		delete(c.held, d)
	}
	c.mouseFire = false
}

// Input samples the controls at now. Without a pointer the aim falls back
// to fallbackX, fallbackY.
func (c *Controller) Input(now time.Time, view Viewport, fallbackX, fallbackY float64) system.PlayerInput {
	in := system.PlayerInput{
		Up:    c.isHeld(dirUp, now),
		Down:  c.isHeld(dirDown, now),
		Left:  c.isHeld(dirLeft, now),
		Right: c.isHeld(dirRight, now),
		Fire:  c.mouseFire || c.autoFire,
		AimX:  fallbackX,
		AimY:  fallbackY,
	}
	if c.hasAim {
		in.AimX, in.AimY = view.World(c.aimCol, c.aimRow)
	}
	return in
}

// AutoFire reports whether space-toggled fire is on.
func (c *Controller) AutoFire() bool {
	return c.autoFire
}

// aimFallback points at the nearest enemy, or straight right of the
// player when the arena is empty.
func aimFallback(px, py, ex, ey float64, found bool) (float64, float64) {
	if !found || (ex == px && ey == py) {
		return px + 1, py
	}
	d := math.Hypot(ex-px, ey-py)
	return px + (ex-px)/d, py + (ey-py)/d
}
