package main

// Single-ply positional scoring. Every empty cell is scored as if a stone
// were placed there: each of the four axes contributes a directional
// potential for the evaluated side, attack and defense contributions are
// weighted separately, and cells closer to the center get a small bonus.

func ScorePosition(board Board, x, y int, me, opponent Cell, cfg HeuristicConfig) int {
	score := 0
	for _, dir := range lineDirections {
		dx := dir[0]
		dy := dir[1]
		score += scoreDirection(board, x, y, dx, dy, me, cfg) * cfg.AttackWeight
		score += scoreDirection(board, x, y, dx, dy, opponent, cfg) * cfg.DefenseWeight
	}
	score += centerBonus(board, x, y, cfg)
	return score
}

// scoreDirection counts contiguous stones of the given color on both sides
// of (x,y) along one axis, up to four steps each way. An empty cell ends a
// scan without penalty; the board edge or an opposing stone ends it and
// marks that end as blocked.
func scoreDirection(board Board, x, y, dx, dy int, piece Cell, cfg HeuristicConfig) int {
	count := 0
	blocked := 0

	for i := 1; i < 5; i++ {
		nx := x + dx*i
		ny := y + dy*i
		if !board.InBounds(nx, ny) {
			blocked++
			break
		}
		cell := board.At(nx, ny)
		if cell == piece {
			count++
		} else if cell == CellEmpty {
			break
		} else {
			blocked++
			break
		}
	}

	for i := 1; i < 5; i++ {
		nx := x - dx*i
		ny := y - dy*i
		if !board.InBounds(nx, ny) {
			blocked++
			break
		}
		cell := board.At(nx, ny)
		if cell == piece {
			count++
		} else if cell == CellEmpty {
			break
		} else {
			blocked++
			break
		}
	}

	switch count {
	case 4:
		// Placing here completes a five. Longer bridged runs fall
		// through to the default and score nothing.
		return cfg.Four
	case 3:
		if blocked == 0 {
			return cfg.OpenThree
		}
		return cfg.ClosedThree
	case 2:
		if blocked == 0 {
			return cfg.OpenTwo
		}
		return cfg.ClosedTwo
	case 1:
		if blocked == 0 {
			return cfg.OpenOne
		}
		return cfg.ClosedOne
	default:
		return 0
	}
}

func centerBonus(board Board, x, y int, cfg HeuristicConfig) int {
	center := board.Center()
	dist := absInt(x-center) + absInt(y-center)
	return (2*center - dist) * cfg.CenterWeight
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
