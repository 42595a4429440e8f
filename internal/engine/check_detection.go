package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side with
// no king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
//
// Every piece of byColour is scanned. Pawns attack only their two forward
// diagonals and kings only their adjacent squares; castling never counts as
// an attack. Knights and sliders reuse pseudo-legal generation.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Square{Row: row, Col: col}
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if attacks(board, from, piece, sq) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether piece standing on from attacks target.
func attacks(board *chess.Board, from chess.Square, piece chess.Piece, target chess.Square) bool {
	switch piece.Type {
	case chess.Pawn:
		return containsSquare(pawnAttacks(from, piece.Colour), target)
	case chess.King:
		return from != target && abs(from.Row-target.Row) <= 1 && abs(from.Col-target.Col) <= 1
	default:
		// Squares held by byColour are never reported as attacked.
		return containsSquare(pieceTargets(board, from, chess.NoSquare), target)
	}
}

// containsSquare reports whether sq is in squares.
func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
