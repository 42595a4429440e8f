package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseCoordinate decodes a move in coordinate notation as spoken by UCI
// engines: origin square, destination square and an optional promotion
// letter, e.g. "e2e4" or "e7e8q". The move is not checked against any
// position.
func ParseCoordinate(text string) (MoveSpec, error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 && len(s) != 5 {
		return MoveSpec{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Field:    "coordinate move",
			Expected: "4 or 5 characters",
			Got:      text,
		}
	}

	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return MoveSpec{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Field: "origin", Got: s[0:2]}
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return MoveSpec{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Field: "destination", Got: s[2:4]}
	}

	spec := MoveSpec{From: from, To: to}
	if len(s) == 5 {
		spec.Promotion = chess.PieceTypeFromLetter(s[4])
		if !spec.Promotion.IsPromotionTarget() {
			return MoveSpec{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Field:    "promotion",
				Expected: "q, r, b or n",
				Got:      s[4:],
			}
		}
	}
	return spec, nil
}

// FormatCoordinate returns m in coordinate notation, e.g. "e7e8q".
func FormatCoordinate(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// FormatLongAlgebraic returns m in long algebraic notation, e.g. "Ng1-f3",
// "e5xd6" or "e7-e8=Q+". Castling keeps its SAN form.
func FormatLongAlgebraic(m chess.Move) string {
	suffix := checkSuffix(m.Notation)
	if m.Castling {
		if m.IsKingsideCastle() {
			return "O-O" + suffix
		}
		return "O-O-O" + suffix
	}

	var sb strings.Builder
	if m.Piece.Type != chess.Pawn {
		sb.WriteByte(m.Piece.Type.Letter())
	}
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	sb.WriteString(suffix)
	return sb.String()
}

// checkSuffix returns the trailing '+' or '#' of SAN text.
func checkSuffix(san string) string {
	if strings.HasSuffix(san, "#") {
		return "#"
	}
	if strings.HasSuffix(san, "+") {
		return "+"
	}
	return ""
}
