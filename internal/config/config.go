// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 600
	PanelWidth   = ScreenWidth - ArenaWidth

	ArenaWidth   = 800.0
	ArenaHeight  = 600.0
	ArenaMargin  = 5.0
	ColonyX      = 400.0
	ColonyY      = 300.0
	SpawnSpread  = 100.0 // new ants land within ±SpawnSpread/2 of the colony centre
	TicksPerSec  = 60
	TickDuration = 1.0 / TicksPerSec

	GridWidth  = 50
	GridHeight = 50
	CellSize   = 16.0

	MaxTunnels    = 50
	DigDirtCost   = 10
	SpawnFoodCost = 10
	BaseMaxAnts   = 5
	MaxAntsLevel  = 2
	MaxAntsColony = 3

	MessageLogSize = 50
)

// Ants
const (
	AntBaseDamage       = 10.0
	TunnelStopTicks     = 120  // 2 s
	TunnelBuffTicks     = 3600 // 60 s
	TunnelBuffMult      = 2.0
	DetectionRadius     = 150.0
	ArrivalThreshold    = 5.0
	WanderChance        = 0.01
	WanderRange         = 200.0 // full width of the wander box
	SpecialtyFoodChance = 0.02
	NudgeStep           = 5.0
)

// Combat
const (
	CollisionRange       = 20.0
	WarriorDamageMult    = 1.5
	ReductionPerLevel    = 0.1
	MaxDamageReduction   = 0.8
	KillFoodReward       = 2
	KillDirtReward       = 3
	SpeedCoinBonus       = 0.2
	KillsPerLevel        = 10
	DehydrationDamage    = 1.0
	WaterPerAntPerSecond = 0.1
)

// Spawning
const (
	EnemySpawnFactor     = 0.005
	SmallBossSpawnFactor = 0.0008
	LargeBossSpawnFactor = 0.00015
)

// Economy
const (
	StartCoins = 1000
	StartFood  = 500
	StartWater = 100.0
	StartAnts  = 1
	StartDirt  = 0

	MinLoadedFood = 500
	// MaxLoadedAnts caps how many ants a load rebuilds.
	MaxLoadedAnts = 500

	UpgradeBaseCost   = 100.0
	UpgradeCostGrowth = 1.5
	StatCeiling       = 100.0
	SpeedGrowth       = 1.25
	DamageGrowth      = 1.35
	RegenPerLevel     = 0.5

	GatherBaseChance    = 0.3
	GatherChancePerLvl  = 0.1
	GatherMaxChance     = 0.95
	GatherFoodPerLvl    = 0.5
	WaterBaseAmount     = 10
	WaterPerLvl         = 2.5
	AutoFoodChancePerLv = 0.01
	AutoFoodPerLvl      = 0.2
	AutoSpawnChancePerL = 0.005
	AutoSpawnFoodCost   = 5

	AutoSaveEverySec = 60
)

// Particles
const (
	ParticleLife     = 60
	ParticleSpeed    = 4.0 // full width of the initial velocity range
	ParticleGravity  = 0.1
	ParticleShrink   = 0.98
	CoinParticleSize = 3.0
)

var (
	BackgroundColor = color.RGBA{44, 24, 16, 255}
	DirtColor       = color.RGBA{139, 69, 19, 255}
	TunnelColor     = color.RGBA{60, 35, 20, 255}
	PanelColor      = color.RGBA{30, 18, 12, 255}
	TextLightColor  = color.RGBA{244, 228, 188, 255}
	AccentColor     = color.RGBA{212, 175, 55, 255}
	HealthBarBg     = color.RGBA{255, 0, 0, 255}
	HealthBarFg     = color.RGBA{0, 255, 0, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	CoinColor       = color.RGBA{255, 215, 0, 255}
	PinkAntColor    = color.RGBA{255, 20, 147, 255}
	ButtonColor     = color.RGBA{139, 69, 19, 255}
	ButtonHover     = color.RGBA{160, 82, 45, 255}
)
