// internal/system/player.go
package system

import (
	"math"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// PlayerInput is one frame of held controls. AimX/AimY is the pointer in
// world coordinates.
type PlayerInput struct {
	Up, Down, Left, Right bool
	AimX, AimY            float64
	Fire                  bool
}

// PlayerSystem moves, aims and fires for the player.
type PlayerSystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewPlayerSystem(ecs *entity.ECS, arena *Arena) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, arena: arena}
}

func (s *PlayerSystem) Update(input PlayerInput) {
	player := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	if player == nil || pos == nil {
		return
	}

	if input.Up {
		pos.Y += player.Speed
	}
	if input.Down {
		pos.Y -= player.Speed
	}
	if input.Left {
		pos.X -= player.Speed
	}
	if input.Right {
		pos.X += player.Speed
	}
	w := config.HalfWidth - config.PlayerEdgePadding
	h := config.HalfHeight - config.PlayerEdgePadding
	pos.X = utils.Clamp(pos.X, -w, w)
	pos.Y = utils.Clamp(pos.Y, -h, h)

	player.Aim = math.Atan2(input.AimY-pos.Y, input.AimX-pos.X)
	if r := s.ecs.Renderables[s.ecs.PlayerID]; r != nil {
		r.Rotation = player.Aim
	}

	if player.ShootCooldown > 0 {
		player.ShootCooldown--
	}
	if input.Fire && player.ShootCooldown <= 0 {
		s.Shoot()
	}
}

// Shoot fires Multishot bullets fanned MultishotSpread apart around the
// aim. A full charge meter is spent to make every bullet of the volley
// super.
func (s *PlayerSystem) Shoot() []types.EntityID {
	player := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	player.ShootCooldown = player.FireRate
	s.arena.sound(event.CueShoot)

	super := player.Charged()
	if super {
		player.Charge = 0
	}

	base := player.Aim
	mx := pos.X + math.Cos(base)*config.PlayerMuzzleOffset
	my := pos.Y + math.Sin(base)*config.PlayerMuzzleOffset
	start := base - float64(player.Multishot-1)*config.MultishotSpread/2

	ids := make([]types.EntityID, 0, player.Multishot)
	for i := 0; i < player.Multishot; i++ {
		angle := start + float64(i)*config.MultishotSpread
		ids = append(ids, s.arena.SpawnBullet(mx, my, angle, BulletOptions{
			Damage: player.Damage,
			Speed:  player.BulletSpeed,
			Homing: player.Homing,
			Super:  super,
		}))
	}
	return ids
}
