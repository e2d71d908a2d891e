// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// World coordinates are centred on the origin, y up.
	HalfWidth  = ScreenWidth / 2
	HalfHeight = ScreenHeight / 2

	PlayerRadius          = 15.0
	PlayerSpeed           = 5.0
	PlayerMaxHP           = 100.0
	PlayerDamage          = 10.0
	PlayerFireRate        = 12.0 // frames between shots
	PlayerBulletSpeed     = 8.0
	PlayerEdgePadding     = 20.0
	PlayerMuzzleOffset    = 20.0
	SuperChargeThreshold  = 20
	MultishotSpread       = 0.2 // radians between fanned shots
	MinFireRate           = 2.0
	ContactDamage         = 0.5
	ReflectedBulletDamage = 10.0

	BulletRadius           = 4.0
	SuperBulletRadius      = 20.0
	SuperDamageFactor      = 3.0
	HomingStrength         = 0.15
	SuperHomingStrength    = 0.02
	HomingAcquireRange     = 500.0
	BulletBoundsMargin     = 200.0
	ReflectedBulletSpeed   = 12.0
	ExplosivePelletCount   = 16
	ExplosivePelletSpeed   = 6.0
	ExplosivePelletRadius  = 6.0
	DeathBurstSpeed        = 6.0
	DeathBurstDamageFactor = 0.5

	PelletDamage         = 15.0
	TrackingPelletRadius = 10.0
	TrackingPelletSpeed  = 3.0
	TrackingPelletTurn   = 0.05
	SprayPelletRadius    = 5.0
	SprayPelletSpeed     = 5.0
	PelletBoundsMargin   = 500.0

	OrbiterCount    = 2
	OrbiterDistance = 40.0
	OrbiterRadius   = 12.0
	OrbiterHP       = 15.0
	OrbiterSpin     = 0.03

	ShockwaveThreshold = 0.5

	PurpleMaxPellets = 5
	PurpleSpitDamage = 15.0

	GreenHealInterval = 180
	GreenHealRadius   = 150.0
	GreenHealAmount   = 5.0

	WhiteWallInterval = 240
	WallLength        = 150.0
	WallThickness     = 8.0
	WallLifetime      = 300
	WallFadeFrames    = 60
	WallNudge         = 5.0

	ShockwaveStartRadius   = 1.0
	ShockwaveMaxRadius     = 350.0
	ShockwaveSpeed         = 5.0
	MiniShockwaveMaxRadius = 150.0
	MiniShockwaveSpeed     = 8.0
	ShockwavePush          = 12.0
	ShockwaveOpacity       = 0.8

	BaseEnemiesPerWave      = 5
	EnemiesIncrementPerWave = 3
	InitialSpawnInterval    = 50
	MinSpawnInterval        = 15
	SpawnEdgeMargin         = 50.0
	GreenGroupMinOffset     = 80.0
	GreenGroupOffsetRange   = 40.0
	DebugSpawnDistance      = 200.0

	CameraShakeDecay   = 0.9
	ContactShake       = 5.0
	PelletShake        = 8.0
	EatFlashFrames     = 3
	HitFlashFrames     = 6
	ParticleLifeFrames = 40
)

// Tuning holds balance constants that have no derivation and are kept
// adjustable at run time.
type Tuning struct {
	SpitTrackingChance   float64
	GreenGroupChance     float64
	GreenGroupPairChance float64
	UpgradeChoices       int
	Seed                 int64
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		SpitTrackingChance:   0.5,
		GreenGroupChance:     0.7,
		GreenGroupPairChance: 0.5,
		UpgradeChoices:       3,
	}
}

var (
	BackgroundColor  = color.RGBA{8, 8, 14, 255}
	GridColor        = color.RGBA{28, 28, 36, 255}
	PlayerColor      = color.RGBA{0, 255, 136, 255}
	BulletColor      = colornames.Yellow
	SuperBulletColor = colornames.White
	ReflectedColor   = colornames.Red
	PelletColor      = color.RGBA{170, 68, 255, 255}
	ExplosiveColor   = colornames.White
	WallColor        = colornames.Cyan
	ShockwaveColor   = colornames.Cyan
	MiniShockColor   = color.RGBA{0, 255, 68, 255}
	HealColor        = color.RGBA{0, 255, 68, 255}
	HPBarBackColor   = color.RGBA{85, 0, 0, 255}
	HPBarColor       = colornames.Lime
	ChargeBarColor   = colornames.Fuchsia
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{20, 20, 30, 230}
	CardColor        = color.RGBA{40, 40, 60, 255}
	CardHoverColor   = color.RGBA{70, 70, 110, 255}
	WarningColor     = color.RGBA{255, 170, 0, 255}
)
