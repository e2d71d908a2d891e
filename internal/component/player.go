// internal/component/player.go
package component

// Player holds the player's stats. Its position is in the ECS position table.
type Player struct {
	Radius      float64
	Speed       float64
	HP          float64
	MaxHP       float64
	Damage      float64
	FireRate    float64 // frames between shots
	BulletSpeed float64
	Multishot   int
	Homing      bool

	Aim           float64
	ShootCooldown float64

	Charge          int
	ChargeThreshold int

	// Upgrades counts how many times each upgrade id was applied.
	Upgrades map[string]int
}

// AddCharge adds n to the charge meter, clamped to [0, ChargeThreshold].
func (p *Player) AddCharge(n int) {
	p.Charge += n
	if p.Charge > p.ChargeThreshold {
		p.Charge = p.ChargeThreshold
	}
	if p.Charge < 0 {
		p.Charge = 0
	}
}

// Charged reports whether the next shot is a super shot.
func (p *Player) Charged() bool {
	return p.Charge >= p.ChargeThreshold
}

// HPPercent returns the hp bar width in percent.
func (p *Player) HPPercent() float64 {
	if p.MaxHP <= 0 || p.HP <= 0 {
		return 0
	}
	return p.HP / p.MaxHP * 100
}

// ChargePercent returns the charge bar width in percent.
func (p *Player) ChargePercent() float64 {
	if p.ChargeThreshold <= 0 {
		return 0
	}
	return float64(p.Charge) / float64(p.ChargeThreshold) * 100
}
