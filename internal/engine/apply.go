package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ApplyMove applies from -> to to the state and returns the move record.
// The caller must already have checked that to is in LegalMoves(st, from)
// for a piece of the side to move; ApplyMove does not validate.
//
// promotion selects the piece a pawn reaching the last rank becomes
// (NoPieceType means queen). It is ignored for every other move.
//
// The move's Notation is left empty and the move is not appended to the
// history; both are the caller's job, since SAN depends on the positions
// before and after the move.
func ApplyMove(st *chess.GameState, from, to chess.Square, promotion chess.PieceType) chess.Move {
	board := &st.Board
	piece := board.Get(from)
	colour := piece.Colour

	move := chess.Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
	}

	switch {
	case isEnPassantCapture(st, from, to):
		// The passed pawn stands beside the capturing pawn, not on to.
		victim := chess.Square{Row: from.Row, Col: to.Col}
		move.EnPassant = true
		move.Captured = board.Get(victim)
		board.Set(victim, chess.Empty)

	case isCastlingMove(piece, from, to):
		move.Castling = true
		applyCastleRook(board, colour, to.Col > from.Col)
	}

	// Move the piece
	board.Set(from, chess.Empty)
	if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(colour) {
		if !promotion.IsPromotionTarget() {
			promotion = chess.Queen // Default to queen
		}
		move.Promotion = promotion
		board.Set(to, chess.MakePiece(colour, promotion))
	} else {
		board.Set(to, piece)
	}

	updateCastlingRights(st, &move)

	// Set en passant square if double pawn push
	st.ClearEnPassant()
	if piece.Type == chess.Pawn && abs(to.Row-from.Row) == 2 {
		st.SetEnPassant(chess.Square{Row: (from.Row + to.Row) / 2, Col: from.Col})
	}

	if piece.Type == chess.Pawn || move.IsCapture() {
		st.HalfmoveClock = 0
	} else {
		st.HalfmoveClock++
	}
	if colour == chess.Black {
		st.MoveNumber++
	}
	st.ToMove = colour.Opposite()

	UpdateStatus(st)
	return move
}

// applyCastleRook relocates the castling rook next to the king's destination.
func applyCastleRook(board *chess.Board, colour chess.Colour, kingside bool) {
	rookFrom := chess.RookStart(colour, kingside)
	rookTo := chess.Square{Row: rookFrom.Row, Col: chess.QueensideRookTo}
	if kingside {
		rookTo.Col = chess.KingsideRookTo
	}

	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(rookTo, rook)
}
