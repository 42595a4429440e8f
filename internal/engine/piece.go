package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pieceTargets returns the pseudo-legal destinations of the piece on from,
// dispatched on its type. Castling is not included. ep is the en passant
// target available to a pawn on from, or chess.NoSquare.
func pieceTargets(board *chess.Board, from chess.Square, ep chess.Square) []chess.Square {
	piece := board.Get(from)
	colour := piece.Colour

	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, from, colour, ep)
	case chess.Knight:
		return stepMoves(board, from, colour, knightOffsets)
	case chess.Bishop:
		return slideMoves(board, from, colour, diagonalDirs)
	case chess.Rook:
		return slideMoves(board, from, colour, straightDirs)
	case chess.Queen:
		return slideMoves(board, from, colour, allDirs)
	case chess.King:
		return stepMoves(board, from, colour, kingOffsets)
	default:
		return nil
	}
}

// PseudoLegalMoves returns the destinations the piece on from could move to
// by its movement pattern alone, ignoring whether its own king would be left
// attacked. Castling is not included. An empty or off-board square yields no
// moves.
func PseudoLegalMoves(st *chess.GameState, from chess.Square) []chess.Square {
	if !from.InBounds() {
		return nil
	}
	piece := st.Board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return pieceTargets(&st.Board, from, enPassantFor(st, piece.Colour))
}

// enPassantFor returns the en passant target usable by colour. Only the side
// to move may capture en passant.
func enPassantFor(st *chess.GameState, colour chess.Colour) chess.Square {
	if st.EnPassant && colour == st.ToMove {
		return st.EPSquare
	}
	return chess.NoSquare
}
