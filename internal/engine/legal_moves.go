package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the destinations the piece on from can legally move to:
// its pseudo-legal moves that do not leave its own king attacked, plus any
// legal castling destinations for a king. Pieces of either colour may be
// queried. An empty or off-board square yields no moves.
func LegalMoves(st *chess.GameState, from chess.Square) []chess.Square {
	if !from.InBounds() {
		return nil
	}
	piece := st.Board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(st, from) {
		if IsLegalMove(&st.Board, from, to, isEnPassantCapture(st, from, to)) {
			legal = append(legal, to)
		}
	}
	if piece.Type == chess.King {
		legal = append(legal, CastlingMoves(st, from)...)
	}
	return legal
}

// IsLegalMove applies from -> to to a private copy of board and reports
// whether the mover's king is safe afterwards. The given board is never
// modified, so the check can be repeated or run concurrently on shared
// positions.
func IsLegalMove(board *chess.Board, from, to chess.Square, enPassant bool) bool {
	// Make a copy of the board
	testBoard := *board

	piece := testBoard.Get(from)
	testBoard.Set(from, chess.Empty)
	testBoard.Set(to, piece)
	if enPassant {
		testBoard.Set(chess.Square{Row: from.Row, Col: to.Col}, chess.Empty)
	}

	// Check if our king is in check after the move
	return !IsInCheck(&testBoard, piece.Colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(st *chess.GameState, colour chess.Colour) bool {
	for _, from := range st.Board.PiecesOf(colour, chess.NoPieceType) {
		if len(LegalMoves(st, from)) > 0 {
			return true
		}
	}
	return false
}

// promotionPieces are the choices offered when a pawn reaches the last rank.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// GenerateMoves returns every legal move of the side to move. Promotions are
// expanded into one move per promotion piece. Notation is left empty.
func GenerateMoves(st *chess.GameState) []chess.Move {
	var moves []chess.Move
	for _, from := range st.Board.PiecesOf(st.ToMove, chess.NoPieceType) {
		piece := st.Board.Get(from)
		for _, to := range LegalMoves(st, from) {
			move := chess.Move{
				From:     from,
				To:       to,
				Piece:    piece,
				Captured: st.Board.Get(to),
			}
			switch {
			case isEnPassantCapture(st, from, to):
				move.EnPassant = true
				move.Captured = st.Board.Get(chess.Square{Row: from.Row, Col: to.Col})
			case isCastlingMove(piece, from, to):
				move.Castling = true
			}
			if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
				for _, promo := range promotionPieces {
					move.Promotion = promo
					moves = append(moves, move)
				}
				continue
			}
			moves = append(moves, move)
		}
	}
	return moves
}
