// Package engine provides chess move generation, validation and board
// manipulation.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStateFromFEN decodes a FEN string into a fresh game state with an empty
// history and computed check flags. At least the first four fields are
// required; missing clocks default to "0 1". All errors wrap
// errors.ErrInvalidFEN.
func NewStateFromFEN(fen string) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError("field count", "4 to 6 fields", fen)
	}

	st := &chess.GameState{EPSquare: chess.NoSquare, MoveNumber: 1}

	if err := parsePiecePositions(&st.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(st, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(st, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(st, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(st, parts[4:]); err != nil {
		return nil, err
	}

	UpdateStatus(st)
	return st, nil
}

// NewInitialState creates a state with the standard starting position.
func NewInitialState() *chess.GameState {
	st := chess.NewGameState()
	UpdateStatus(st)
	return st
}

func fenError(field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("piece placement", "8 ranks", positions)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := chess.PieceFromFENLetter(c)
				if !ok {
					return fenError("piece placement", "piece letter or digit", string(c))
				}
				if col >= chess.BoardSize {
					return fenError("piece placement", "8 files per rank", rank)
				}
				board.Set(chess.Square{Row: row, Col: col}, piece)
				col++
			}
		}
		if col != chess.BoardSize {
			return fenError("piece placement", "8 files per rank", rank)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(st *chess.GameState, field string) error {
	switch field {
	case "w":
		st.ToMove = chess.White
	case "b":
		st.ToMove = chess.Black
	default:
		return fenError("active colour", "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(st *chess.GameState, field string) error {
	if field == "-" {
		return nil
	}

	seen := make(map[rune]bool)
	for _, c := range field {
		if seen[c] {
			return fenError("castling", "each of KQkq at most once", field)
		}
		seen[c] = true

		switch c {
		case 'K':
			st.Castling.WhiteKingside = true
		case 'Q':
			st.Castling.WhiteQueenside = true
		case 'k':
			st.Castling.BlackKingside = true
		case 'q':
			st.Castling.BlackQueenside = true
		default:
			return fenError("castling", "- or letters from KQkq", field)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// lies behind a pawn the opponent just double-stepped, so it is on rank 6
// with White to move and rank 3 with Black to move. The side to move must
// already be parsed.
func parseEnPassant(st *chess.GameState, field string) error {
	if field == "-" {
		return nil
	}
	rank, expected := byte('6'), "- or a square on rank 6 with white to move"
	if st.ToMove == chess.Black {
		rank, expected = '3', "- or a square on rank 3 with black to move"
	}
	sq, ok := chess.ParseSquare(field)
	if !ok || sq.Rank() != rank {
		return fenError("en passant", expected, field)
	}
	st.SetEnPassant(sq)
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(st *chess.GameState, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError("halfmove clock", "non-negative integer", fields[0])
		}
		st.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fenError("fullmove number", "non-negative integer", fields[1])
		}
		st.MoveNumber = uint(n)
		if st.MoveNumber == 0 {
			st.MoveNumber = 1
		}
	}
	return nil
}

// StateToFEN converts a game state to a FEN string.
func StateToFEN(st *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &st.Board)
	sb.WriteByte(' ')
	sb.WriteByte(st.ToMove.FENLetter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, st.Castling)
	sb.WriteByte(' ')
	writeEnPassant(&sb, st)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(st.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(st.MoveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, st *chess.GameState) {
	if st.EnPassant {
		sb.WriteString(st.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
