// Package notation decodes and encodes moves and games: Standard Algebraic
// Notation, coordinate notation and PGN game records.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveSpec is a decoded move, ready to be checked and applied.
type MoveSpec struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// sanMove holds the parts of SAN text before they are resolved against a
// position.
type sanMove struct {
	pieceType chess.PieceType
	fromCol   int // -1 if not given
	fromRow   int // -1 if not given
	to        chess.Square
	promotion chess.PieceType
	castle    int // 0 none, 1 kingside, 2 queenside
}

const (
	noCastle = iota
	kingsideCastle
	queensideCastle
)

// DecodeSAN resolves SAN text against st for the side to move. The text may
// carry check and annotation marks, "e.p." and a promotion with or without
// '='; zero-based castling and long algebraic ("Ng1-f3") are accepted too.
//
// Errors wrap ErrInvalidSAN when the text is not a move at all,
// ErrIllegalMove when no piece can make it and ErrAmbiguousMove when more
// than one can.
func DecodeSAN(st *chess.GameState, text string) (MoveSpec, error) {
	parsed, err := parseSAN(text)
	if err != nil {
		return MoveSpec{}, err
	}

	if parsed.castle != noCastle {
		return resolveCastle(st, parsed.castle == kingsideCastle, text)
	}

	var candidates []chess.Square
	for _, from := range st.Board.PiecesOf(st.ToMove, parsed.pieceType) {
		if parsed.fromCol >= 0 && from.Col != parsed.fromCol {
			continue
		}
		if parsed.fromRow >= 0 && from.Row != parsed.fromRow {
			continue
		}
		if containsSquare(engine.LegalMoves(st, from), parsed.to) {
			candidates = append(candidates, from)
		}
	}

	switch len(candidates) {
	case 0:
		return MoveSpec{}, errors.Wrapf(errors.ErrIllegalMove, "%s: no %s can reach %s",
			text, strings.ToLower(parsed.pieceType.String()), parsed.to)
	case 1:
	default:
		return MoveSpec{}, errors.Wrapf(errors.ErrAmbiguousMove, "%s: %d pieces can reach %s",
			text, len(candidates), parsed.to)
	}

	from := candidates[0]
	reachesLastRank := parsed.pieceType == chess.Pawn && parsed.to.Row == chess.PromotionRow(st.ToMove)
	if parsed.promotion != chess.NoPieceType && !reachesLastRank {
		return MoveSpec{}, &errors.ParseError{
			Err:      errors.ErrInvalidSAN,
			Field:    "promotion",
			Expected: "a pawn move to the last rank",
			Got:      text,
		}
	}

	return MoveSpec{From: from, To: parsed.to, Promotion: parsed.promotion}, nil
}

// resolveCastle finds the king move for a castling token.
func resolveCastle(st *chess.GameState, kingside bool, text string) (MoveSpec, error) {
	from := chess.KingStart(st.ToMove)
	to := chess.Square{Row: from.Row, Col: chess.QueensideKingCol}
	if kingside {
		to.Col = chess.KingsideKingCol
	}
	if st.Board.Get(from) != chess.MakePiece(st.ToMove, chess.King) ||
		!containsSquare(engine.CastlingMoves(st, from), to) {
		return MoveSpec{}, errors.Wrapf(errors.ErrIllegalMove, "%s: castling not allowed", text)
	}
	return MoveSpec{From: from, To: to}, nil
}

// parseSAN splits SAN text into its parts without looking at a position.
func parseSAN(text string) (sanMove, error) {
	san := cleanSAN(text)
	invalid := func(expected string) (sanMove, error) {
		return sanMove{}, &errors.ParseError{Err: errors.ErrInvalidSAN, Field: "SAN", Expected: expected, Got: text}
	}

	switch san {
	case "O-O", "0-0", "o-o":
		return sanMove{castle: kingsideCastle}, nil
	case "O-O-O", "0-0-0", "o-o-o":
		return sanMove{castle: queensideCastle}, nil
	}

	move := sanMove{pieceType: chess.Pawn, fromCol: -1, fromRow: -1}
	if san == "" {
		return invalid("a move")
	}

	// Piece letters are upper case; a lower case 'b' is a file.
	if strings.IndexByte("KQRBNP", san[0]) >= 0 {
		move.pieceType = chess.PieceTypeFromLetter(san[0])
		san = san[1:]
	}

	san, move.promotion = splitPromotion(san)
	if move.promotion != chess.NoPieceType && !move.promotion.IsPromotionTarget() {
		return invalid("promotion to Q, R, B or N")
	}

	if len(san) < 2 {
		return invalid("a destination square")
	}
	to, ok := chess.ParseSquare(san[len(san)-2:])
	if !ok {
		return invalid("a destination square")
	}
	move.to = to

	var origin []byte
	for i := 0; i < len(san)-2; i++ {
		switch c := san[i]; c {
		case 'x', 'X', ':', '-':
			// Capture marks and separators carry nothing the position lacks.
		default:
			origin = append(origin, c)
		}
	}

	switch len(origin) {
	case 0:
	case 1:
		switch c := origin[0]; {
		case chess.IsFile(c):
			move.fromCol = chess.ColFromFile(c)
		case chess.IsRank(c):
			move.fromRow = chess.RowFromRank(c)
		default:
			return invalid("a file or rank to disambiguate")
		}
	case 2:
		sq, ok := chess.ParseSquare(string(origin))
		if !ok {
			return invalid("an origin square")
		}
		move.fromCol, move.fromRow = sq.Col, sq.Row
	default:
		return invalid("a move")
	}

	return move, nil
}

// cleanSAN strips whitespace, check and annotation marks and en passant
// suffixes.
func cleanSAN(text string) string {
	san := strings.TrimSpace(text)
	for {
		trimmed := strings.TrimRight(san, "+#!? ")
		trimmed = strings.TrimSuffix(trimmed, "e.p.")
		trimmed = strings.TrimSuffix(trimmed, "ep")
		if trimmed == san {
			return san
		}
		san = trimmed
	}
}

// splitPromotion removes a trailing "=Q", "Q" or "q" style promotion.
func splitPromotion(san string) (string, chess.PieceType) {
	n := len(san)
	if n == 0 {
		return san, chess.NoPieceType
	}

	last := san[n-1]
	if n >= 2 && san[n-2] == '=' {
		return san[:n-2], chess.PieceTypeFromLetter(last)
	}

	// "e8Q" and "e8q", but never the 'b' file of "Rb"
	if n >= 3 && (san[n-2] == '8' || san[n-2] == '1') && strings.IndexByte("QRBNqrbn", last) >= 0 {
		return san[:n-1], chess.PieceTypeFromLetter(last)
	}
	return san, chess.NoPieceType
}

// EncodeSAN returns the SAN of m, which was made in before and led to after.
// Disambiguation is the minimum needed to make the text unique. after may be
// nil, in which case no check mark is added.
func EncodeSAN(before *chess.GameState, m chess.Move, after *chess.GameState) string {
	var sb strings.Builder

	switch {
	case m.IsKingsideCastle():
		sb.WriteString("O-O")
	case m.IsQueensideCastle():
		sb.WriteString("O-O-O")
	case m.Piece.Type == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(m.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Type.Letter())
		sb.WriteString(disambiguation(before, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	if after != nil {
		switch {
		case after.IsCheckmate:
			sb.WriteByte('#')
		case after.IsCheck:
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other pieces of the same kind that could reach the same square.
func disambiguation(st *chess.GameState, m chess.Move) string {
	sameFile, sameRank, rivals := false, false, false
	for _, from := range st.Board.PiecesOf(m.Piece.Colour, m.Piece.Type) {
		if from == m.From || !containsSquare(engine.LegalMoves(st, from), m.To) {
			continue
		}
		rivals = true
		if from.Col == m.From.Col {
			sameFile = true
		}
		if from.Row == m.From.Row {
			sameRank = true
		}
	}

	switch {
	case !rivals:
		return ""
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}

// MoveSAN returns the SAN of m played in st, without changing st.
func MoveSAN(st *chess.GameState, m chess.Move) string {
	after := *st
	after.History = nil
	engine.ApplyMove(&after, m.From, m.To, m.Promotion)
	return EncodeSAN(st, m, &after)
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
