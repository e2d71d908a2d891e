// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridStep = 64

var orbiterColor = color.RGBA{255, 68, 68, 255}

// ArenaRenderer draws one session's entities. It only reads the ECS.
type ArenaRenderer struct {
	shapes *ShapeRenderer
}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{shapes: NewShapeRenderer()}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen, ecs)

	toScreen := func(x, y float64) (float64, float64) {
		return utils.WorldToScreen(x, y, ecs.CameraX, ecs.CameraY)
	}

	for _, id := range ecs.WallIDs() {
		w := ecs.Walls[id]
		x1, y1 := toScreen(w.X1, w.Y1)
		x2, y2 := toScreen(w.X2, w.Y2)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), float32(w.Thickness), WithAlpha(config.WallColor, w.Opacity()), true)
	}

	for _, id := range ecs.ShockwaveIDs() {
		s := ecs.Shockwaves[id]
		col := config.ShockwaveColor
		if s.Mini {
			col = config.MiniShockColor
		}
		x, y := toScreen(s.X, s.Y)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(s.Radius), float32(math.Max(2, s.Radius*0.2)), WithAlpha(col, s.Opacity(config.ShockwaveOpacity)), true)
	}

	for _, p := range ecs.Particles {
		x, y := toScreen(p.X, p.Y)
		col := WithAlpha(p.Color, p.Alpha())
		switch {
		case p.Ring:
			progress := float64(p.Age) / float64(p.MaxAge)
			fade := 1 - progress
			vector.StrokeCircle(screen, float32(x), float32(y), float32(p.RingMax*progress), 2, WithAlpha(p.Color, 0.7*fade*fade), true)
		case p.Square:
			vector.DrawFilledRect(screen, float32(x-p.Size/2), float32(y-p.Size/2), float32(p.Size), float32(p.Size), col, true)
		default:
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Size), col, true)
		}
	}

	for _, id := range ecs.EnemyIDs() {
		r.drawEnemy(screen, ecs, id, toScreen)
	}

	for _, id := range ecs.ProjectileIDs() {
		proj := ecs.Projectiles[id]
		pos := ecs.Positions[id]
		rd := ecs.Renderables[id]
		if proj.MarkedForDeletion || pos == nil || rd == nil {
			continue
		}
		x, y := toScreen(pos.X, pos.Y)
		sides := 0
		if proj.IsSuper {
			sides = 6
		}
		r.shapes.FillPolygon(screen, x, y, proj.Radius, sides, -rd.Rotation, rd.Color)
	}

	if pos := ecs.PlayerPosition(); pos != nil && ecs.Player != nil {
		x, y := toScreen(pos.X, pos.Y)
		r.shapes.FillPolygon(screen, x, y, ecs.Player.Radius, 3, -ecs.Player.Aim, config.PlayerColor)
	}
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image, ecs *entity.ECS) {
	ox := math.Mod(-ecs.CameraX, gridStep)
	oy := math.Mod(ecs.CameraY, gridStep)
	for x := ox; x < config.ScreenWidth; x += gridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := oy; y < config.ScreenHeight; y += gridStep {
		vector.StrokeLine(screen, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, toScreen func(x, y float64) (float64, float64)) {
	e := ecs.LiveEnemy(id)
	pos := ecs.Positions[id]
	rd := ecs.Renderables[id]
	if e == nil || pos == nil || rd == nil {
		return
	}
	x, y := toScreen(pos.X, pos.Y)
	col := rd.Color
	if f := ecs.Flashes[id]; f != nil {
		col = f.Color
	}
	radius := e.Radius
	t := float64(ecs.Frame)

	switch a := e.Ability.(type) {
	case *ability.PelletEater:
		if a.Full() {
			radius *= 1 + math.Sin(t*0.17)*0.1
		}
	case *ability.Healer:
		radius *= 1 + math.Sin(t*0.05)*0.15
		col = WithAlpha(col, 0.5+math.Sin(t*0.08)*0.3)
	case *ability.Orbiters:
		for i := range a.Orbiters {
			ox, oy := a.WorldPosition(i, pos.X, pos.Y)
			sx, sy := toScreen(ox, oy)
			r.shapes.FillPolygon(screen, sx, sy, config.OrbiterRadius*0.7, 4, -t*0.1, orbiterColor)
		}
	}

	if rd.Shape == defs.ShapeRing {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 4, col, true)
	} else {
		r.shapes.FillPolygon(screen, x, y, radius, rd.Sides, -rd.Rotation, col)
	}
	if rd.Outline.A > 0 {
		r.shapes.StrokePolygon(screen, x, y, radius*1.4, rd.Sides, rd.Rotation*2, 2, rd.Outline)
	}

	drawHPBar(screen, x, y-radius-8, e.HPFraction())
}

func drawHPBar(screen *ebiten.Image, cx, top, fraction float64) {
	const width, height = 30, 4
	fraction = utils.Clamp(fraction, 0, 1)
	left := cx - width/2
	vector.DrawFilledRect(screen, float32(left), float32(top), width, height, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(width*fraction), height, config.HPBarColor, false)
}
