package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction sets as {row delta, col delta}.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = allDirs
)

// slideMoves casts a ray along each direction until the board edge, stopping
// before an own piece or on an enemy piece, which is included.
func slideMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// stepMoves returns the on-board offsets from from that are not occupied by
// an own piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// isPathClear reports whether every square strictly between from and to on
// the same row is empty.
func isPathClear(board *chess.Board, row, fromCol, toCol int) bool {
	step := 1
	if toCol < fromCol {
		step = -1
	}
	for col := fromCol + step; col != toCol; col += step {
		if !board.IsEmpty(chess.Square{Row: row, Col: col}) {
			return false
		}
	}
	return true
}
