// internal/defs/waves.go
package defs

// SpawnRule unlocks Kind from MinWave on; it is chosen when the spawn roll
// is below Threshold. Rules are checked in order.
type SpawnRule struct {
	Kind      EnemyKind
	MinWave   int
	Threshold float64
}

// SpawnRules is the wave-gated spawn table. Later kinds come first so that
// they take precedence once unlocked.
var SpawnRules = []SpawnRule{
	{Kind: KindWhite, MinWave: 8, Threshold: 0.65},
	{Kind: KindGreen, MinWave: 7, Threshold: 0.55},
	{Kind: KindPurple, MinWave: 6, Threshold: 0.45},
	{Kind: KindYellow, MinWave: 5, Threshold: 0.35},
	{Kind: KindBlue, MinWave: 3, Threshold: 0.25},
	{Kind: KindRedOrbiter, MinWave: 2, Threshold: 0.2},
}

// PickEnemyKind maps a roll in [0,1) to an enemy kind for the given wave.
func PickEnemyKind(wave int, roll float64) EnemyKind {
	for _, rule := range SpawnRules {
		if wave >= rule.MinWave && roll < rule.Threshold {
			return rule.Kind
		}
	}
	return KindRed
}

// Intro is the card shown the first time a kind appears.
type Intro struct {
	Wave    int
	Name    string
	Desc    string
	Ability string
	Warning string
}

var introOrder = []EnemyKind{KindRedOrbiter, KindBlue, KindYellow, KindPurple, KindGreen, KindWhite}

// EnemyIntros describes each kind that is introduced after wave 1.
var EnemyIntros = map[EnemyKind]Intro{
	KindRedOrbiter: {
		Wave:    2,
		Name:    "ORBITER",
		Desc:    "Red core protected by two rotating satellites.",
		Ability: "Satellites block all incoming fire. The core is vulnerable only when exposed.",
		Warning: "Destroy the small squares first to open up a clear shot at the main body!",
	},
	KindBlue: {
		Wave:    3,
		Name:    "TANK UNIT",
		Desc:    "Heavily armored hexagonal enemy with high HP.",
		Ability: "At 50% health, releases a massive SHOCKWAVE that pushes you and reflects all bullets back at you.",
		Warning: "Keep your distance when it's damaged!",
	},
	KindYellow: {
		Wave:    5,
		Name:    "SPEED DEMON",
		Desc:    "Fast-moving triangular enemy with low HP.",
		Ability: "Rushes at you at extreme speed.",
		Warning: "High threat - prioritize elimination!",
	},
	KindPurple: {
		Wave:    6,
		Name:    "PELLET THIEF",
		Desc:    "Octagonal entity that absorbs your attacks.",
		Ability: "Eats your bullets instead of taking damage. After 5 it spits a tracking pellet or a spray.",
		Warning: "Aim carefully! Killing it releases absorbed pellets as bonus firepower.",
	},
	KindGreen: {
		Wave:    7,
		Name:    "HEALER NODE",
		Desc:    "Hollow green support unit that never attacks directly.",
		Ability: "Periodically heals nearby enemies. Usually spawns in groups.",
		Warning: "Priority target! Death triggers a small shockwave.",
	},
	KindWhite: {
		Wave:    8,
		Name:    "REFLECTOR DRONE",
		Desc:    "White square with a rotating cyan outline.",
		Ability: "Creates temporary reflecting walls. Your bullets bounce off them.",
		Warning: "Walls can redirect your fire. Use reflections strategically!",
	},
}

// IntroForWave returns the first kind introduced at wave that is not in seen.
func IntroForWave(wave int, seen map[EnemyKind]bool) (EnemyKind, Intro, bool) {
	for _, kind := range introOrder {
		intro := EnemyIntros[kind]
		if intro.Wave == wave && !seen[kind] {
			return kind, intro, true
		}
	}
	return "", Intro{}, false
}
