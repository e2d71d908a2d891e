package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
)

var shapeGlyphs = map[defs.Shape]rune{
	defs.ShapeSquare:   '■',
	defs.ShapeTriangle: '▲',
	defs.ShapeHexagon:  '⬢',
	defs.ShapeOctagon:  '●',
	defs.ShapeRing:     '○',
}

var arrowGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c)).Background(rgb(config.BackgroundColor))
}

// Renderer draws a session as glyphs.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, view: NewViewport(w, h)}
}

// Resize refits the viewport to the terminal.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.view = NewViewport(w, h)
}

func (r *Renderer) Viewport() Viewport {
	return r.view
}

func (r *Renderer) put(x, y float64, ch rune, style tcell.Style) {
	if col, row, ok := r.view.Cell(x, y); ok {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// text writes s starting at col, row.
func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *Renderer) centred(row int, s string, style tcell.Style) {
	r.text((r.view.Cols-len([]rune(s)))/2, row, s, style)
}

// arrow picks the glyph closest to heading.
func arrow(heading float64) rune {
	i := int(math.Round(heading/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrowGlyphs[i]
}

// Draw paints the arena, the status line and any open menu.
func (r *Renderer) Draw(ecs *entity.ECS, snap app.Snapshot) {
	r.screen.SetStyle(styleOf(config.BackgroundColor))
	r.screen.Clear()

	for _, id := range ecs.WallIDs() {
		r.drawWall(ecs.Walls[id])
	}
	for _, id := range ecs.ShockwaveIDs() {
		r.drawShockwave(ecs.Shockwaves[id])
	}
	for _, p := range ecs.Particles {
		if p.Alpha() > 0.4 && !p.Ring {
			r.put(p.X, p.Y, '·', styleOf(p.Color))
		}
	}
	for _, id := range ecs.EnemyIDs() {
		e := ecs.Enemies[id]
		pos := ecs.Positions[id]
		if e.MarkedForDeletion || pos == nil {
			continue
		}
		style := styleOf(defs.EnemyLibrary[e.Kind].Visuals.RGBA())
		if f := ecs.Flashes[id]; f != nil {
			style = styleOf(f.Color)
		}
		if orbs, ok := e.Ability.(*ability.Orbiters); ok {
			for i := range orbs.Orbiters {
				ox, oy := orbs.WorldPosition(i, pos.X, pos.Y)
				r.put(ox, oy, '*', style)
			}
		}
		glyph, ok := shapeGlyphs[defs.EnemyLibrary[e.Kind].Visuals.Shape]
		if !ok {
			glyph = 'E'
		}
		r.put(pos.X, pos.Y, glyph, style)
	}
	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		pos := ecs.Positions[id]
		rd := ecs.Renderables[id]
		if p.MarkedForDeletion || pos == nil || rd == nil {
			continue
		}
		r.put(pos.X, pos.Y, projectileGlyph(p), styleOf(rd.Color))
	}
	if pos := ecs.PlayerPosition(); pos != nil && ecs.Player != nil {
		r.put(pos.X, pos.Y, arrow(ecs.Player.Aim), styleOf(config.PlayerColor).Bold(true))
	}

	r.drawStatus(snap)
	switch snap.Phase {
	case component.PhaseUpgrade:
		r.drawMenu(snap)
	case component.PhaseIntro:
		r.drawIntro(snap)
	case component.PhaseGameOver:
		mid := r.view.Rows / 2
		r.centred(mid, "GAME OVER", styleOf(config.ReflectedColor).Bold(true))
		r.centred(mid+1, fmt.Sprintf("Waves survived: %d   Score: %d", snap.FinalWave, snap.Score), styleOf(config.TextLightColor))
		r.centred(mid+3, "[r] restart   [q] quit", styleOf(config.WarningColor))
	}
	r.screen.Show()
}

func projectileGlyph(p *component.Projectile) rune {
	switch {
	case p.IsSuper:
		return '◉'
	case p.IsExplosivePellet:
		return '+'
	case p.IsEnemyPellet && p.IsTracking:
		return '◆'
	case p.IsEnemyPellet:
		return '•'
	default:
		return '∙'
	}
}

func (r *Renderer) drawWall(w *component.Wall) {
	style := styleOf(config.WallColor)
	if w.Opacity() < 0.5 {
		style = style.Dim(true)
	}
	steps := int(math.Hypot(w.X2-w.X1, w.Y2-w.Y1)/r.view.CellWidth()) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.put(w.X1+(w.X2-w.X1)*t, w.Y1+(w.Y2-w.Y1)*t, '#', style)
	}
}

func (r *Renderer) drawShockwave(s *component.Shockwave) {
	col := config.ShockwaveColor
	if s.Mini {
		col = config.MiniShockColor
	}
	style := styleOf(col)
	steps := int(2*math.Pi*s.Radius/r.view.CellWidth()) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		r.put(s.X+math.Cos(a)*s.Radius, s.Y+math.Sin(a)*s.Radius, '.', style)
	}
}

func (r *Renderer) drawStatus(snap app.Snapshot) {
	bar := func(percent float64, width int) string {
		n := int(percent / 100 * float64(width))
		if n < 0 {
			n = 0
		}
		if n > width {
			n = width
		}
		out := make([]rune, width)
		for i := range out {
			out[i] = '░'
			if i < n {
				out[i] = '█'
			}
		}
		return string(out)
	}
	hp := fmt.Sprintf("HP %s ", bar(snap.HPPercent, 20))
	charge := fmt.Sprintf("CHARGE %s ", bar(snap.ChargePercent, 10))
	r.text(0, 0, hp, styleOf(config.HPBarColor))
	chargeStyle := styleOf(config.ChargeBarColor)
	if snap.Charged {
		chargeStyle = chargeStyle.Blink(true)
	}
	r.text(len([]rune(hp)), 0, charge, chargeStyle)
	info := fmt.Sprintf("WAVE %d  SCORE %d  ENEMIES %d", snap.Wave, snap.Score, snap.Enemies)
	r.text(len([]rune(hp))+len([]rune(charge)), 0, info, styleOf(config.TextLightColor))
}

func (r *Renderer) drawMenu(snap app.Snapshot) {
	top := r.view.Rows/2 - len(snap.Offered)
	r.centred(top, "CHOOSE AN UPGRADE", styleOf(config.PlayerColor).Bold(true))
	for i, name := range snap.Offered {
		r.centred(top+2+i, fmt.Sprintf("[%d] %s", i+1, name), styleOf(config.TextLightColor))
	}
}

func (r *Renderer) drawIntro(snap app.Snapshot) {
	mid := r.view.Rows/2 - 3
	nameStyle := styleOf(config.TextLightColor)
	if def, ok := defs.EnemyLibrary[snap.IntroKind]; ok {
		nameStyle = styleOf(def.Visuals.RGBA())
	}
	r.centred(mid, "NEW ENEMY: "+snap.Intro.Name, nameStyle.Bold(true))
	r.centred(mid+2, snap.Intro.Desc, styleOf(config.TextLightColor))
	r.centred(mid+3, snap.Intro.Ability, styleOf(config.WallColor))
	r.centred(mid+4, snap.Intro.Warning, styleOf(config.WarningColor))
	r.centred(mid+6, "[enter] continue", styleOf(config.PlayerColor))
}
