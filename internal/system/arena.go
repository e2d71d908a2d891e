// internal/system/arena.go
package system

import (
	"image/color"
	"math"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// Arena is the spawning and damage surface every system shares. It is the
// ability.Host enemies act through.
type Arena struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tuning          config.Tuning
}

var _ ability.Host = (*Arena)(nil)

func NewArena(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tuning config.Tuning) *Arena {
	return &Arena{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		tuning:          tuning,
	}
}

func (a *Arena) ECS() *entity.ECS { return a.ecs }
func (a *Arena) Rand() *utils.PRNGService { return a.rng }
func (a *Arena) Tuning() config.Tuning { return a.tuning }
func (a *Arena) Events() *event.Dispatcher { return a.eventDispatcher }
func (a *Arena) Emit(e event.Event) { a.eventDispatcher.Dispatch(e) }
func (a *Arena) sound(cue event.Cue) { a.Emit(event.Event{Type: event.SoundRequested, Data: cue}) }
func (a *Arena) burst(b event.Burst) { a.Emit(event.Event{Type: event.ParticleBurst, Data: b}) }
func (a *Arena) shake(magnitude float64) { a.Emit(event.Event{Type: event.CameraShake, Data: magnitude}) }

// PlayerPosition returns the player's position, or the origin before the
// player exists.
func (a *Arena) PlayerPosition() (float64, float64) {
	if pos := a.ecs.PlayerPosition(); pos != nil {
		return pos.X, pos.Y
	}
	return 0, 0
}

// Self resolves an enemy handle into what abilities operate on.
func (a *Arena) Self(id types.EntityID) (ability.Self, bool) {
	e := a.ecs.LiveEnemy(id)
	pos := a.ecs.Positions[id]
	if e == nil || pos == nil {
		return ability.Self{}, false
	}
	return ability.Self{ID: id, Pos: pos, Enemy: e}, true
}

// SpawnPlayer creates the player at the origin with base stats.
func (a *Arena) SpawnPlayer() types.EntityID {
	id := a.ecs.NewEntity()
	a.ecs.PlayerID = id
	a.ecs.Positions[id] = &component.Position{}
	a.ecs.Player = &component.Player{
		Radius:          config.PlayerRadius,
		Speed:           config.PlayerSpeed,
		HP:              config.PlayerMaxHP,
		MaxHP:           config.PlayerMaxHP,
		Damage:          config.PlayerDamage,
		FireRate:        config.PlayerFireRate,
		BulletSpeed:     config.PlayerBulletSpeed,
		Multishot:       1,
		ChargeThreshold: config.SuperChargeThreshold,
		Upgrades:        make(map[string]int),
	}
	a.ecs.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Radius: float32(config.PlayerRadius),
		Shape:  defs.ShapeTriangle,
		Sides:  3,
		Scale:  1,
	}
	return id
}

// SpawnEnemy creates an enemy of the given kind from its definition.
func (a *Arena) SpawnEnemy(kind defs.EnemyKind, x, y float64) types.EntityID {
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		def = defs.EnemyLibrary[defs.KindRed]
		kind = defs.KindRed
	}
	id := a.ecs.NewEntity()
	a.ecs.Positions[id] = &component.Position{X: x, Y: y}
	a.ecs.Enemies[id] = &component.Enemy{
		Kind:          kind,
		HP:            def.Health,
		MaxHP:         def.Health,
		Speed:         def.Speed,
		Radius:        def.Radius,
		ScoreValue:    def.ScoreValue,
		RotationSpeed: def.RotationSpeed,
		Ability:       ability.New(kind),
	}
	r := &component.Renderable{
		Color:  def.Visuals.RGBA(),
		Radius: float32(def.Radius),
		Shape:  def.Visuals.Shape,
		Sides:  sidesFor(def.Visuals.Shape),
		Scale:  1,
	}
	if def.Visuals.Outline != "" {
		r.Outline = defs.Visuals{Color: def.Visuals.Outline}.RGBA()
	}
	a.ecs.Renderables[id] = r
	return id
}

func sidesFor(s defs.Shape) int {
	switch s {
	case defs.ShapeTriangle:
		return 3
	case defs.ShapeSquare:
		return 4
	case defs.ShapeHexagon:
		return 6
	case defs.ShapeOctagon:
		return 8
	}
	return 0
}

// BulletOptions describes a player-owned projectile.
type BulletOptions struct {
	Damage    float64
	Speed     float64
	Homing    bool
	Super     bool
	Explosive bool
	Radius    float64
	Color     color.RGBA
}

// SpawnBullet creates a player-owned projectile heading at angle. A homing
// bullet acquires its first target immediately.
func (a *Arena) SpawnBullet(x, y, angle float64, o BulletOptions) types.EntityID {
	id := a.ecs.NewEntity()
	p := &component.Projectile{
		Radius:            config.BulletRadius,
		Damage:            o.Damage,
		Speed:             o.Speed,
		Homing:            o.Homing,
		HomingStrength:    config.HomingStrength,
		BoundsMargin:      config.BulletBoundsMargin,
		IsSuper:           o.Super,
		IsExplosivePellet: o.Explosive,
	}
	col := config.BulletColor
	switch {
	case o.Super:
		p.Radius = config.SuperBulletRadius
		p.Damage *= config.SuperDamageFactor
		p.HomingStrength = config.SuperHomingStrength
		col = config.SuperBulletColor
	case o.Explosive:
		p.Radius = config.ExplosivePelletRadius
		p.HomingStrength = 0
		col = config.ExplosiveColor
	}
	if o.Radius > 0 {
		p.Radius = o.Radius
	}
	if o.Color != (color.RGBA{}) {
		col = o.Color
	}
	a.ecs.Positions[id] = &component.Position{X: x, Y: y}
	v := component.FromPolar(angle, o.Speed)
	a.ecs.Velocities[id] = &v
	a.ecs.Projectiles[id] = p
	a.ecs.Renderables[id] = &component.Renderable{Color: col, Radius: float32(p.Radius), Scale: 1, Rotation: angle}
	if p.Homing {
		p.TargetID = a.NearestEnemy(x, y, config.HomingAcquireRange)
	}
	return id
}

// SpawnEnemyPellet creates a hostile pellet. Tracking pellets are larger,
// slower and steer toward the player.
func (a *Arena) SpawnEnemyPellet(x, y, angle float64, tracking bool) {
	radius, speed := config.SprayPelletRadius, config.SprayPelletSpeed
	if tracking {
		radius, speed = config.TrackingPelletRadius, config.TrackingPelletSpeed
	}
	id := a.ecs.NewEntity()
	a.ecs.Positions[id] = &component.Position{X: x, Y: y}
	v := component.FromPolar(angle, speed)
	a.ecs.Velocities[id] = &v
	a.ecs.Projectiles[id] = &component.Projectile{
		Radius:         radius,
		Damage:         config.PelletDamage,
		Speed:          speed,
		HomingStrength: config.TrackingPelletTurn,
		BoundsMargin:   config.PelletBoundsMargin,
		IsEnemyPellet:  true,
		IsTracking:     tracking,
	}
	a.ecs.Renderables[id] = &component.Renderable{Color: config.PelletColor, Radius: float32(radius), Scale: 1}
}

// SpawnExplosiveBurst rings the hit point with explosive pellets after a
// super bullet lands.
func (a *Arena) SpawnExplosiveBurst(x, y float64) {
	for i := 0; i < config.ExplosivePelletCount; i++ {
		angle := float64(i) / config.ExplosivePelletCount * 2 * math.Pi
		a.SpawnBullet(x, y, angle, BulletOptions{
			Damage:    a.ecs.Player.Damage,
			Speed:     config.ExplosivePelletSpeed,
			Explosive: true,
		})
	}
}

// SpawnDeathBurst releases count half-damage bullets evenly spaced.
func (a *Arena) SpawnDeathBurst(x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		a.SpawnBullet(x, y, angle, BulletOptions{
			Damage: a.ecs.Player.Damage * config.DeathBurstDamageFactor,
			Speed:  config.DeathBurstSpeed,
			Color:  color.RGBA{255, 255, 0, 255},
		})
	}
}

// SpawnShockwave creates a full or mini shockwave.
func (a *Arena) SpawnShockwave(x, y float64, mini bool) {
	s := &component.Shockwave{
		X:              x,
		Y:              y,
		Radius:         config.ShockwaveStartRadius,
		MaxRadius:      config.ShockwaveMaxRadius,
		ExpansionSpeed: config.ShockwaveSpeed,
		Mini:           mini,
	}
	col := config.ShockwaveColor
	if mini {
		s.MaxRadius = config.MiniShockwaveMaxRadius
		s.ExpansionSpeed = config.MiniShockwaveSpeed
		col = config.MiniShockColor
	}
	id := a.ecs.NewEntity()
	a.ecs.Shockwaves[id] = s
	a.ecs.Renderables[id] = &component.Renderable{Color: col, Shape: defs.ShapeRing, Scale: 1}
}

// SpawnWall centres a reflecting wall on (x, y).
func (a *Arena) SpawnWall(x, y, angle float64) {
	hx := math.Cos(angle) * config.WallLength / 2
	hy := math.Sin(angle) * config.WallLength / 2
	id := a.ecs.NewEntity()
	a.ecs.Walls[id] = &component.Wall{
		X1: x + hx, Y1: y + hy,
		X2: x - hx, Y2: y - hy,
		Thickness:  config.WallThickness,
		Life:       config.WallLifetime,
		MaxLife:    config.WallLifetime,
		FadeFrames: config.WallFadeFrames,
	}
	a.ecs.Renderables[id] = &component.Renderable{Color: config.WallColor, Scale: 1, Rotation: angle}
}

// HealEnemies heals every other live enemy strictly inside radius.
func (a *Arena) HealEnemies(except types.EntityID, x, y, radius, amount float64) int {
	healed := 0
	for _, id := range a.ecs.EnemyIDs() {
		if id == except {
			continue
		}
		e := a.ecs.LiveEnemy(id)
		pos := a.ecs.Positions[id]
		if e == nil || pos == nil {
			continue
		}
		if utils.Distance(x, y, pos.X, pos.Y) < radius {
			e.Heal(amount)
			healed++
			a.burst(event.Burst{X: pos.X, Y: pos.Y, Color: config.HealColor, Count: 1, Spread: 10, Style: event.BurstHeal})
		}
	}
	return healed
}

// NearestEnemy returns the closest live enemy strictly within maxRange.
func (a *Arena) NearestEnemy(x, y, maxRange float64) types.EntityID {
	best := types.NoEntity
	bestDist := math.Inf(1)
	for _, id := range a.ecs.EnemyIDs() {
		if a.ecs.LiveEnemy(id) == nil {
			continue
		}
		pos := a.ecs.Positions[id]
		if pos == nil {
			continue
		}
		d := utils.Distance(x, y, pos.X, pos.Y)
		if d < bestDist && d < maxRange {
			best, bestDist = id, d
		}
	}
	return best
}
