// internal/interfaces/game.go
package interfaces

import (
	"go-ant-colony/internal/app"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

// Game is the input contract a front-end drives. *app.Game implements it.
type Game interface {
	Update()
	Snapshot() app.Snapshot
	IsPaused() bool
	Settings() config.Settings

	DigTunnel() app.ActionResult
	GatherFood() app.ActionResult
	GatherWater() app.ActionResult
	SpawnAnt() app.ActionResult
	PurchaseUpgrade(kind defs.UpgradeKind) app.ActionResult
	PurchaseAffordableUpgrades() app.ActionResult
	TogglePause() app.ActionResult
	Reset() app.ActionResult
	RedeemCode(code string) app.ActionResult
	Save() app.ActionResult
	Load() app.ActionResult

	Click(x, y float64)
	NudgeLeadAnt(dx, dy int) bool
	SetParticlesEnabled(on bool)
	SetAutoSave(on bool)
}

var _ Game = (*app.Game)(nil)
