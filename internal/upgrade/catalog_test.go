package upgrade

import (
	"math"
	"testing"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/utils"
)

func newPlayer() *component.Player {
	return &component.Player{
		HP:          config.PlayerMaxHP,
		MaxHP:       config.PlayerMaxHP,
		Damage:      config.PlayerDamage,
		FireRate:    config.PlayerFireRate,
		Speed:       config.PlayerSpeed,
		BulletSpeed: config.PlayerBulletSpeed,
		Multishot:   1,
		Upgrades:    make(map[string]int),
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, u := range Catalog {
		if seen[u.ID] {
			t.Errorf("duplicate id %q", u.ID)
		}
		seen[u.ID] = true
		if u.Apply == nil {
			t.Errorf("%q has no mutator", u.ID)
		}
	}
}

func TestGetRandomUpgradesSkipsGrantedHoming(t *testing.T) {
	rng := utils.NewPRNGService(1)
	p := newPlayer()
	p.Homing = true
	for i := 0; i < 200; i++ {
		got := GetRandomUpgrades(3, p, rng)
		if len(got) != 3 {
			t.Fatalf("got %d upgrades, want 3", len(got))
		}
		ids := make(map[string]bool)
		for _, u := range got {
			if u.ID == "homing" {
				t.Fatalf("homing offered to a homing player")
			}
			if ids[u.ID] {
				t.Fatalf("duplicate %q in %v", u.ID, got)
			}
			ids[u.ID] = true
		}
	}
}

func TestGetRandomUpgradesClampsToPool(t *testing.T) {
	rng := utils.NewPRNGService(1)
	p := newPlayer()
	if got := GetRandomUpgrades(100, p, rng); len(got) != len(Catalog) {
		t.Errorf("got %d, want %d", len(got), len(Catalog))
	}
	if got := GetRandomUpgrades(0, p, rng); len(got) != 0 {
		t.Errorf("got %d, want 0", len(got))
	}
}

func TestGetRandomUpgradesDoesNotReorderCatalog(t *testing.T) {
	first := Catalog[0].ID
	GetRandomUpgrades(3, newPlayer(), utils.NewPRNGService(3))
	if Catalog[0].ID != first {
		t.Errorf("catalog was shuffled in place")
	}
}

func TestApplyMutators(t *testing.T) {
	tests := []struct {
		id    string
		check func(p *component.Player) bool
	}{
		{"damage", func(p *component.Player) bool { return p.Damage == config.PlayerDamage+5 }},
		{"firerate", func(p *component.Player) bool { return math.Abs(p.FireRate-10.2) < 1e-9 }},
		{"speed", func(p *component.Player) bool { return p.Speed == config.PlayerSpeed+1 }},
		{"multishot", func(p *component.Player) bool { return p.Multishot == 2 }},
		{"bulletspeed", func(p *component.Player) bool { return p.BulletSpeed == config.PlayerBulletSpeed+2 }},
		{"homing", func(p *component.Player) bool { return p.Homing }},
	}
	for _, tt := range tests {
		u, ok := ByID(tt.id)
		if !ok {
			t.Fatalf("missing %q", tt.id)
		}
		p := newPlayer()
		if err := Apply(u, p); err != nil {
			t.Fatalf("%s: %v", tt.id, err)
		}
		if !tt.check(p) {
			t.Errorf("%s: unexpected player %+v", tt.id, *p)
		}
		if p.Upgrades[tt.id] != 1 {
			t.Errorf("%s: not recorded", tt.id)
		}
	}
}

func TestHealthUpgradeHealsFully(t *testing.T) {
	u, _ := ByID("health")
	p := newPlayer()
	p.HP = 12
	Apply(u, p)
	if p.MaxHP != config.PlayerMaxHP+20 || p.HP != p.MaxHP {
		t.Errorf("hp %v/%v", p.HP, p.MaxHP)
	}
}

func TestFireRateFloor(t *testing.T) {
	u, _ := ByID("firerate")
	p := newPlayer()
	for i := 0; i < 50; i++ {
		Apply(u, p)
	}
	if p.FireRate != config.MinFireRate {
		t.Errorf("fire rate = %v, want %v", p.FireRate, config.MinFireRate)
	}
}

func TestOneTimeUpgradeRejectedTwice(t *testing.T) {
	u, _ := ByID("homing")
	p := newPlayer()
	if err := Apply(u, p); err != nil {
		t.Fatal(err)
	}
	if err := Apply(u, p); err == nil {
		t.Errorf("second homing grant accepted")
	}
}

func TestMultishotTieredName(t *testing.T) {
	u, _ := ByID("multishot")
	p := newPlayer()
	want := []string{"Double Shot", "Triple Shot", "Multishot x4"}
	for _, w := range want {
		if got := u.DisplayName(p); got != w {
			t.Errorf("multishot %d: name %q, want %q", p.Multishot, got, w)
		}
		Apply(u, p)
	}
	if d, _ := ByID("damage"); d.DisplayName(p) != "Damage Up" {
		t.Errorf("untiered name changed")
	}
}
