// Package shooter is Space Attackers: the level scene with its player,
// enemies, projectiles and explosions, the menu and score scenes around it,
// and the registry adapters that run it on a terminal.
package shooter

import "github.com/vovakirdan/space-attackers/internal/engine/scene"

// Scene ids.
const (
	SceneGame       = 10
	SceneGameOver   = 20
	SceneHighscores = 30
	SceneHelp       = 40
	SceneIntro      = 100
)

// Top-level game states.
const (
	StateSplashScreen scene.State = iota
	StateGame
	StateGameOver
	StateHighscores
	StateHelp
	StateEnd = scene.StateEnd
)

// Custom event codes sent by the splash menu.
const (
	EventNewGame = iota + 1
	EventHighscores
	EventHelp
	EventEndGame
)

// MutexMainApp serialises the ambient explosion worker's bursts.
const MutexMainApp = 1

// Sprite ids.
const (
	SpritePlayer = iota + 1
	SpritePlayerHit
	SpriteEnemyGreen
	SpriteEnemyGreenHit
	SpriteEnemyRed
	SpriteEnemyRedHit
	SpritePlayerBullet
	SpriteGuidedBullet
	SpriteEnemyBulletSlow
	SpriteEnemyBulletFast
	SpriteExplosion
)

// Property sections and keys shared between scenes.
const (
	propGame   = "Game"
	propPlayer = "Player"
	propVideo  = "Video"
)
