package main

import (
	"sync"

	"github.com/google/uuid"
)

// GameController is the session boundary the presentation layer talks to.
// It serializes access to the game and carries the optional placement
// listener; the core underneath never touches a rendering or audio
// context.
type GameController struct {
	mu     sync.Mutex
	game   Game
	gameID string
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{
		game:   NewGame(settings),
		gameID: uuid.NewString(),
	}
}

// SetPlacementListener installs a callback fired on every accepted
// placement with the side that moved. A nil listener disables feedback.
// The listener runs with the controller lock held and must not call back
// into the controller.
func (gc *GameController) SetPlacementListener(listener func(PlayerColor)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.onPlacement = listener
}

func (gc *GameController) Start(mode GameMode) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	ok, reason := gc.game.Start(mode)
	if ok {
		gc.gameID = uuid.NewString()
	}
	return ok, reason
}

func (gc *GameController) ChooseSide(color PlayerColor) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.ChooseSide(color)
}

func (gc *GameController) SubmitHumanMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SubmitMove(move)
}

func (gc *GameController) Tick(delta float64) bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick(delta)
}

// Restart reinitializes the whole session in the current mode; a
// human-vs-AI game goes back to side selection.
func (gc *GameController) Restart() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	mode := gc.game.Mode()
	settings := gc.game.settings
	gc.game.Reset(settings)
	if mode != ModeUnset {
		gc.game.Start(mode)
	}
	gc.gameID = uuid.NewString()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) Mode() GameMode {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Mode()
}

func (gc *GameController) HumanColor() (PlayerColor, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.HumanColor()
}

func (gc *GameController) AiPending() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.AiPending()
}

func (gc *GameController) GameID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.gameID
}
