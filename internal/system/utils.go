// internal/system/utils.go
package system

import (
	"image/color"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
)

var hitFlashColor = color.RGBA{255, 255, 255, 255}

// ApplyDamage takes hp from a live enemy, lets its ability react and runs
// the death protocol once hp is gone. It reports whether damage was dealt.
func (a *Arena) ApplyDamage(id types.EntityID, damage float64) bool {
	self, ok := a.Self(id)
	if !ok {
		return false
	}
	self.Enemy.TakeDamage(damage)
	a.Emit(event.Event{Type: event.EnemyFlashed, Data: event.Flash{ID: id, Color: hitFlashColor, Frames: config.HitFlashFrames}})

	if l, ok := self.Enemy.Ability.(ability.DamageListener); ok {
		l.OnDamaged(a, self)
	}
	if self.Enemy.HP <= 0 {
		a.Kill(id)
	}
	return true
}

// Kill runs the common death protocol: award score, run the kind's death
// effect, mark the enemy and grant one charge. Enemies that still have hp
// or are already marked are left alone.
func (a *Arena) Kill(id types.EntityID) {
	self, ok := a.Self(id)
	if !ok || self.Enemy.HP > 0 {
		return
	}
	e := self.Enemy
	a.ecs.Wave.Score += e.ScoreValue

	if d, ok := e.Ability.(ability.DeathHandler); ok {
		d.OnDeath(a, self)
	}
	e.MarkedForDeletion = true
	if a.ecs.Player != nil {
		a.ecs.Player.AddCharge(1)
	}

	col := config.TextLightColor
	if r := a.ecs.Renderables[id]; r != nil {
		col = r.Color
	}
	a.sound(event.CueExplosion)
	a.burst(event.Burst{X: self.Pos.X, Y: self.Pos.Y, Color: col, Count: 15, Spread: 4})
	a.Emit(event.Event{Type: event.EnemyDestroyed, Data: event.Destroyed{
		ID:    id,
		Kind:  e.Kind,
		Score: e.ScoreValue,
		X:     self.Pos.X,
		Y:     self.Pos.Y,
	}})
}
