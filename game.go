package main

// The computer "thinks" for a fixed delay before its chosen move lands.
// Elapsed time is fed in by the host loop via Tick, not by a timer.
const aiThinkDelaySeconds = 0.5

type pendingAIMove struct {
	target  Move
	elapsed float64
}

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	mode        GameMode
	humanColor  PlayerColor
	sideChosen  bool
	ai          AIPlayer
	pending     *pendingAIMove
	onPlacement func(PlayerColor)
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.mode = ModeUnset
	g.humanColor = PlayerBlack
	g.sideChosen = false
	g.ai = NewAIPlayer()
	g.pending = nil
}

// Start begins a fresh game in the given mode. Human-vs-AI games stay in
// StatusNotStarted until ChooseSide fixes the human's color.
func (g *Game) Start(mode GameMode) (bool, string) {
	if mode != ModeHumanVsHuman && mode != ModeHumanVsAI {
		return false, "unknown mode"
	}
	g.state.Reset(g.settings)
	g.mode = mode
	g.sideChosen = false
	g.pending = nil
	if mode == ModeHumanVsHuman {
		g.state.Status = StatusRunning
	}
	return true, ""
}

// ChooseSide fixes the human's color for a human-vs-AI game. It is valid
// exactly once, before any move. When the human takes White, the computer
// opens immediately at the center as Black; there is no think delay for
// the opening stone.
func (g *Game) ChooseSide(color PlayerColor) (bool, string) {
	if g.mode != ModeHumanVsAI {
		return false, "side selection only applies to human vs ai"
	}
	if g.sideChosen {
		return false, "side already chosen"
	}
	g.humanColor = color
	g.sideChosen = true
	g.state.Status = StatusRunning
	if color == PlayerWhite {
		center := g.state.Board.Center()
		g.applyMove(Move{X: center, Y: center})
	}
	return true, ""
}

// SubmitMove plays a stone for the side to move. Rejections are silent
// no-ops: the state is unchanged and only the reason is reported back.
func (g *Game) SubmitMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if g.mode == ModeHumanVsAI && g.state.ToMove == g.aiColor() {
		return false, "not your turn"
	}
	return g.applyMove(move)
}

// Tick advances the pending computer move by delta seconds and applies it
// once the think delay has elapsed. Returns whether a move was applied.
func (g *Game) Tick(delta float64) bool {
	if g.state.Status != StatusRunning || g.pending == nil {
		return false
	}
	if delta > 0 {
		g.pending.elapsed += delta
	}
	if g.pending.elapsed < aiThinkDelaySeconds {
		return false
	}
	target := g.pending.target
	g.pending = nil
	applied, _ := g.applyMove(target)
	return applied
}

func (g *Game) applyMove(move Move) (bool, string) {
	cell := CellFromPlayer(g.state.ToMove)
	if err := g.state.Board.Place(move.X, move.Y, cell); err != nil {
		return false, "Illegal move: " + err.Error()
	}
	mover := g.state.ToMove
	g.state.LastMove = move
	g.state.HasLastMove = true
	if g.onPlacement != nil {
		g.onPlacement(mover)
	}
	if g.rules.IsWin(g.state.Board, move) {
		if line, ok := g.rules.FindWinningLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if mover == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		g.pending = nil
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		g.pending = nil
		return true, ""
	}
	g.state.ToMove = otherPlayer(mover)
	g.scheduleAIMove()
	return true, ""
}

// scheduleAIMove picks the computer's target as soon as its turn starts,
// then lets Tick apply it after the think delay.
func (g *Game) scheduleAIMove() {
	if g.mode != ModeHumanVsAI || g.state.Status != StatusRunning {
		return
	}
	if g.state.ToMove != g.aiColor() {
		g.pending = nil
		return
	}
	aiCell := CellFromPlayer(g.aiColor())
	target, ok := g.ai.SelectMove(g.state.Board, aiCell, otherCell(aiCell), GetConfig().Heuristics)
	if !ok {
		g.state.Status = StatusDraw
		g.pending = nil
		return
	}
	g.pending = &pendingAIMove{target: target}
}

func (g *Game) aiColor() PlayerColor {
	return otherPlayer(g.humanColor)
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Mode() GameMode {
	return g.mode
}

func (g *Game) HumanColor() (PlayerColor, bool) {
	return g.humanColor, g.mode == ModeHumanVsAI && g.sideChosen
}

func (g *Game) AiPending() bool {
	return g.pending != nil
}

func (g *Game) AiPendingElapsed() float64 {
	if g.pending == nil {
		return 0
	}
	return g.pending.elapsed
}
