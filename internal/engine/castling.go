package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastlingMoves returns the king destinations (g- or c-file) for which
// castling is currently legal for the king on from.
//
// Castling in a direction requires: the right for that side and direction,
// the king and the matching rook on their home squares, every square between
// them empty, and the king's current square, the square it crosses and its
// destination all free of attack.
func CastlingMoves(st *chess.GameState, from chess.Square) []chess.Square {
	king := st.Board.Get(from)
	if king.Type != chess.King {
		return nil
	}
	colour := king.Colour
	if from != chess.KingStart(colour) {
		return nil
	}
	if !st.Castling.Kingside(colour) && !st.Castling.Queenside(colour) {
		return nil
	}

	board := &st.Board
	opponent := colour.Opposite()

	// The king must not currently be in check.
	if IsSquareAttacked(board, from, opponent) {
		return nil
	}

	var targets []chess.Square
	if st.Castling.Kingside(colour) && canCastle(board, colour, true) {
		targets = append(targets, chess.Square{Row: from.Row, Col: chess.KingsideKingCol})
	}
	if st.Castling.Queenside(colour) && canCastle(board, colour, false) {
		targets = append(targets, chess.Square{Row: from.Row, Col: chess.QueensideKingCol})
	}
	return targets
}

// canCastle checks occupancy and attacks for one castling direction. The king
// is assumed to be on its home square and not in check.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	rookSq := chess.RookStart(colour, kingside)
	if board.Get(rookSq) != chess.MakePiece(colour, chess.Rook) {
		return false
	}

	row := chess.HomeRow(colour)
	if !isPathClear(board, row, chess.KingStartCol, rookSq.Col) {
		return false
	}

	kingTo := chess.QueensideKingCol
	step := -1
	if kingside {
		kingTo = chess.KingsideKingCol
		step = 1
	}
	opponent := colour.Opposite()
	for col := chess.KingStartCol + step; ; col += step {
		if IsSquareAttacked(board, chess.Square{Row: row, Col: col}, opponent) {
			return false
		}
		if col == kingTo {
			break
		}
	}
	return true
}

// isCastlingMove reports whether a king move from -> to is a castle.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Type == chess.King &&
		from == chess.KingStart(piece.Colour) &&
		to.Row == from.Row &&
		abs(to.Col-from.Col) == 2
}

// updateCastlingRights revokes rights after a move. The mover loses both
// rights when its king moves and one right when a rook leaves its home
// square; the opponent loses one right when a rook is captured on its home
// square.
func updateCastlingRights(st *chess.GameState, move *chess.Move) {
	colour := move.Piece.Colour

	switch move.Piece.Type {
	case chess.King:
		st.Castling.Revoke(colour)
	case chess.Rook:
		revokeForRookSquare(&st.Castling, colour, move.From)
	}

	if move.Captured.Type == chess.Rook && !move.EnPassant {
		revokeForRookSquare(&st.Castling, move.Captured.Colour, move.To)
	}
}

// revokeForRookSquare removes the right tied to a rook home square.
func revokeForRookSquare(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	switch sq {
	case chess.RookStart(colour, true):
		rights.RevokeKingside(colour)
	case chess.RookStart(colour, false):
		rights.RevokeQueenside(colour)
	}
}
