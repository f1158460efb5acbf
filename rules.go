package main

import "fmt"

var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// IsWin reports whether the last placed stone completes a run of at least
// WinLength on one of the four axes through it. The scan walks outward in
// both directions from the placed cell, so the check is bounded and never
// touches the rest of the board.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(board.Size()) {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	for _, dir := range lineDirections {
		dx := dir[0]
		dy := dir[1]
		count := 1
		count += r.countDirection(board, lastMove, dx, dy)
		count += r.countDirection(board, lastMove, -dx, -dy)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// FindWinningLine returns the cells of the completed run for the
// presentation layer to highlight.
func (r Rules) FindWinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(board.Size()) {
		return nil, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for _, dir := range lineDirections {
		line := r.collectLine(board, lastMove, dir[0], dir[1])
		if len(line) >= r.settings.WinLength {
			return line, true
		}
	}
	return nil, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	line := []Move{}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
