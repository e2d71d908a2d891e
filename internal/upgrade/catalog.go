// Package upgrade holds the between-wave upgrade catalog.
package upgrade

import (
	"fmt"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/utils"
)

// Upgrade is one catalog entry.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	// OneTime entries are offered until granted once.
	OneTime bool
	// Tiered entries derive their display name from the player's stats.
	Tiered func(p *component.Player) string
	Apply  func(p *component.Player)
}

// DisplayName returns the name shown on the upgrade card.
func (u Upgrade) DisplayName(p *component.Player) string {
	if u.Tiered != nil && p != nil {
		return u.Tiered(p)
	}
	return u.Name
}

// Catalog is the fixed list of upgrades.
var Catalog = []Upgrade{
	{
		ID:          "damage",
		Name:        "Damage Up",
		Description: "Increase bullet damage by 5",
		Apply:       func(p *component.Player) { p.Damage += 5 },
	},
	{
		ID:          "firerate",
		Name:        "Rapid Fire",
		Description: "Increase fire rate by 15%",
		Apply: func(p *component.Player) {
			p.FireRate *= 0.85
			if p.FireRate < config.MinFireRate {
				p.FireRate = config.MinFireRate
			}
		},
	},
	{
		ID:          "speed",
		Name:        "Speed Up",
		Description: "Increase movement speed",
		Apply:       func(p *component.Player) { p.Speed++ },
	},
	{
		ID:          "multishot",
		Name:        "Multishot",
		Description: "Fire an additional bullet",
		Tiered:      multishotName,
		Apply:       func(p *component.Player) { p.Multishot++ },
	},
	{
		ID:          "health",
		Name:        "Max Health",
		Description: "Increase max HP by 20 and heal",
		Apply: func(p *component.Player) {
			p.MaxHP += 20
			p.HP = p.MaxHP
		},
	},
	{
		ID:          "bulletspeed",
		Name:        "Bullet Speed",
		Description: "Bullets travel faster",
		Apply:       func(p *component.Player) { p.BulletSpeed += 2 },
	},
	{
		ID:          "homing",
		Name:        "Homing Shots",
		Description: "Bullets home in on enemies",
		OneTime:     true,
		Apply:       func(p *component.Player) { p.Homing = true },
	},
}

// multishotName names the shot the upgrade leads to.
func multishotName(p *component.Player) string {
	switch next := p.Multishot + 1; next {
	case 2:
		return "Double Shot"
	case 3:
		return "Triple Shot"
	default:
		return fmt.Sprintf("Multishot x%d", next)
	}
}

// ByID looks an upgrade up in the catalog.
func ByID(id string) (Upgrade, bool) {
	for _, u := range Catalog {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// Granted reports whether a one-time upgrade already took effect.
func Granted(u Upgrade, p *component.Player) bool {
	if !u.OneTime || p == nil {
		return false
	}
	if p.Upgrades[u.ID] > 0 {
		return true
	}
	return u.ID == "homing" && p.Homing
}

// Apply mutates the player and records the pick.
func Apply(u Upgrade, p *component.Player) error {
	if Granted(u, p) {
		return fmt.Errorf("upgrade %q already granted", u.ID)
	}
	u.Apply(p)
	if p.Upgrades == nil {
		p.Upgrades = make(map[string]int)
	}
	p.Upgrades[u.ID]++
	return nil
}

// GetRandomUpgrades returns up to n distinct upgrades in random order,
// leaving out one-time upgrades the player already has.
func GetRandomUpgrades(n int, p *component.Player, rng *utils.PRNGService) []Upgrade {
	pool := make([]Upgrade, 0, len(Catalog))
	for _, u := range Catalog {
		if !Granted(u, p) {
			pool = append(pool, u)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
