package main

type AIPlayer struct{}

func NewAIPlayer() AIPlayer {
	return AIPlayer{}
}

// SelectMove scores every empty cell and returns the best one. Cells are
// scanned row by row, columns ascending within a row, and only a strictly
// higher score displaces the current best, so ties resolve to the first
// cell encountered. Callers depend on that order being stable.
//
// Returns ok=false when the board has no empty cell left.
func (a AIPlayer) SelectMove(board Board, me, opponent Cell, cfg HeuristicConfig) (Move, bool) {
	size := board.Size()
	bestScore := 0
	bestMove := Move{X: -1, Y: -1}
	found := false
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != CellEmpty {
				continue
			}
			score := ScorePosition(board, x, y, me, opponent, cfg)
			if !found || score > bestScore {
				bestScore = score
				bestMove = Move{X: x, Y: y}
				found = true
			}
		}
	}
	return bestMove, found
}
