package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves returns the pseudo-legal destinations of a pawn. ep is the en
// passant target available to this pawn, or chess.NoSquare.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, ep chess.Square) []chess.Square {
	var targets []chess.Square
	dir := chess.ForwardOffset(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		targets = append(targets, one)
		// Double push from starting rank
		if from.Row == chess.PawnStartRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				targets = append(targets, two)
			}
		}
	}

	// Captures
	for _, to := range pawnAttacks(from, colour) {
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			targets = append(targets, to)
		} else if target.IsEmpty() && to == ep && hasPassedPawn(board, from, to, colour) {
			targets = append(targets, to)
		}
	}
	return targets
}

// pawnAttacks returns the on-board forward-diagonal squares of a pawn.
func pawnAttacks(from chess.Square, colour chess.Colour) []chess.Square {
	dir := chess.ForwardOffset(colour)
	var squares []chess.Square
	for _, dc := range []int{-1, 1} {
		if to := from.Offset(dir, dc); to.InBounds() {
			squares = append(squares, to)
		}
	}
	return squares
}

// isEnPassantCapture reports whether a pawn moving from -> to on this state
// takes en passant.
func isEnPassantCapture(st *chess.GameState, from, to chess.Square) bool {
	piece := st.Board.Get(from)
	return piece.Type == chess.Pawn &&
		st.EnPassant && to == st.EPSquare &&
		from.Col != to.Col &&
		st.Board.IsEmpty(to) &&
		hasPassedPawn(&st.Board, from, to, piece.Colour)
}

// hasPassedPawn reports whether an enemy pawn stands beside from on the
// file of to, where an en passant capture would remove it.
func hasPassedPawn(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	victim := chess.Square{Row: from.Row, Col: to.Col}
	return board.Get(victim) == chess.MakePiece(colour.Opposite(), chess.Pawn)
}
