package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// UpdateStatus recomputes the check, checkmate and stalemate flags for the
// side to move.
func UpdateStatus(st *chess.GameState) {
	inCheck := IsInCheck(&st.Board, st.ToMove)
	hasMoves := HasLegalMoves(st, st.ToMove)

	st.IsCheck = inCheck
	st.IsCheckmate = inCheck && !hasMoves
	st.IsStalemate = !inCheck && !hasMoves
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(st *chess.GameState) bool {
	colour := st.ToMove
	return IsInCheck(&st.Board, colour) && !HasLegalMoves(st, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(st *chess.GameState) bool {
	colour := st.ToMove
	return !IsInCheck(&st.Board, colour) && !HasLegalMoves(st, colour)
}
