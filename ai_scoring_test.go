package main

import "testing"

func TestScoreDirectionOpenThree(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	mustPlace(t, &board, 1, 4, CellBlack)
	mustPlace(t, &board, 2, 4, CellBlack)
	mustPlace(t, &board, 3, 4, CellBlack)

	// Candidate (4,4): three black to the left, empty on both scan ends.
	got := scoreDirection(board, 4, 4, 1, 0, CellBlack, cfg)
	if got != cfg.OpenThree {
		t.Fatalf("expected open three score %d, got %d", cfg.OpenThree, got)
	}
}

func TestScoreDirectionEdgeBlocksThree(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	mustPlace(t, &board, 1, 0, CellBlack)
	mustPlace(t, &board, 2, 0, CellBlack)
	mustPlace(t, &board, 3, 0, CellBlack)

	// Candidate (0,0): three black to the right, board edge on the left.
	got := scoreDirection(board, 0, 0, 1, 0, CellBlack, cfg)
	if got != cfg.ClosedThree {
		t.Fatalf("expected closed three score %d, got %d", cfg.ClosedThree, got)
	}
}

func TestScoreDirectionOpponentBlocksThree(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	mustPlace(t, &board, 2, 4, CellBlack)
	mustPlace(t, &board, 3, 4, CellBlack)
	mustPlace(t, &board, 4, 4, CellBlack)
	mustPlace(t, &board, 5, 4, CellWhite)

	got := scoreDirection(board, 1, 4, 1, 0, CellBlack, cfg)
	if got != cfg.ClosedThree {
		t.Fatalf("expected closed three score %d, got %d", cfg.ClosedThree, got)
	}
}

func TestScoreDirectionEmptyCellStopsScanSilently(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	// X.XX with the candidate at the dot: the gap at (3,4) hides the
	// pair beyond it, leaving a single open stone.
	mustPlace(t, &board, 1, 4, CellBlack)
	mustPlace(t, &board, 4, 4, CellBlack)
	mustPlace(t, &board, 5, 4, CellBlack)

	got := scoreDirection(board, 2, 4, 1, 0, CellBlack, cfg)
	if got != cfg.OpenOne {
		t.Fatalf("expected only the adjacent stone to count (score %d), got %d", cfg.OpenOne, got)
	}
}

func TestScoreDirectionCompletingFive(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	mustPlace(t, &board, 0, 0, CellBlack)
	mustPlace(t, &board, 1, 0, CellBlack)
	mustPlace(t, &board, 2, 0, CellBlack)
	mustPlace(t, &board, 3, 0, CellBlack)

	got := scoreDirection(board, 4, 0, 1, 0, CellBlack, cfg)
	if got != cfg.Four {
		t.Fatalf("expected completing-five score %d, got %d", cfg.Four, got)
	}
}

func TestScoreDirectionCountsBothSides(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	// XX_XX: candidate in the gap sees four stones on one axis.
	mustPlace(t, &board, 2, 4, CellWhite)
	mustPlace(t, &board, 3, 4, CellWhite)
	mustPlace(t, &board, 5, 4, CellWhite)
	mustPlace(t, &board, 6, 4, CellWhite)

	got := scoreDirection(board, 4, 4, 1, 0, CellWhite, cfg)
	if got != cfg.Four {
		t.Fatalf("expected gap fill to score as completing five (%d), got %d", cfg.Four, got)
	}
}

func TestScoreDirectionOverlongBridgeScoresZero(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(9)
	// XX.XXX with the candidate at the dot: both scans together see five
	// stones. Only a count of exactly four rewards the completing move;
	// anything longer falls off the point table.
	mustPlace(t, &board, 0, 0, CellBlack)
	mustPlace(t, &board, 1, 0, CellBlack)
	mustPlace(t, &board, 3, 0, CellBlack)
	mustPlace(t, &board, 4, 0, CellBlack)
	mustPlace(t, &board, 5, 0, CellBlack)

	got := scoreDirection(board, 2, 0, 1, 0, CellBlack, cfg)
	if got != 0 {
		t.Fatalf("expected overlong bridged run to score 0, got %d", got)
	}
}

func TestCenterBonus(t *testing.T) {
	cfg := DefaultConfig().Heuristics
	board := NewBoard(15)
	if got := centerBonus(board, 7, 7, cfg); got != 28 {
		t.Fatalf("expected center cell bonus 28, got %d", got)
	}
	if got := centerBonus(board, 0, 0, cfg); got != 0 {
		t.Fatalf("expected corner bonus 0, got %d", got)
	}
	if got := centerBonus(board, 7, 8, cfg); got != 26 {
		t.Fatalf("expected adjacent-to-center bonus 26, got %d", got)
	}
}
