package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONState is a snapshot of a position for a board renderer.
type JSONState struct {
	FEN           string   `json:"fen"`
	Turn          string   `json:"turn"`
	Status        string   `json:"status"`
	Board         []string `json:"board"` // rank 8 first, '.' for empty
	Castling      string   `json:"castling"`
	EnPassant     string   `json:"enPassant,omitempty"`
	HalfmoveClock uint     `json:"halfmoveClock"`
	MoveNumber    uint     `json:"moveNumber"`
	History       []string `json:"history"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*chess.GameRecord, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jsonGames[i] = GameToJSON(game)
	}
	return encodeJSON(w, &JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game record to JSON format. Moves are replayed from
// the starting position; if one fails, the moves after it carry only their
// recorded text and Error says why.
func GameToJSON(game *chess.GameRecord) *JSONGame {
	jg := &JSONGame{
		Tags:     copyTags(game.Tags),
		Result:   gameResult(game),
		PlyCount: game.PlyCount(),
		Moves:    make([]JSONMove, 0, len(game.Moves)),
	}
	if fen := game.FEN(); fen != "" {
		jg.InitialFEN = fen
	}

	final := StartState(game)
	err := Replay(game, func(_ int, before *chess.GameState, m chess.Move, after *chess.GameState) {
		jg.Moves = append(jg.Moves, convertMove(before, m, after))
		final = after
	})
	if err != nil {
		jg.Error = err.Error()
		for _, text := range game.Moves[len(jg.Moves):] {
			jg.Moves = append(jg.Moves, JSONMove{SAN: text})
		}
	}
	jg.FinalFEN = engine.StateToFEN(final)

	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// convertMove converts a single applied move to JSON format.
func convertMove(before *chess.GameState, m chess.Move, after *chess.GameState) JSONMove {
	jm := JSONMove{
		SAN:   m.Notation,
		Color: colorName(m.Piece.Colour),
		UCI:   notation.FormatCoordinate(m),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.Piece.Type),
		FEN:   engine.StateToFEN(after),
	}
	if m.Piece.Colour == chess.White {
		jm.MoveNumber = int(before.MoveNumber)
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Type)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

// StateToJSON snapshots a game state.
func StateToJSON(st *chess.GameState) *JSONState {
	js := &JSONState{
		FEN:           engine.StateToFEN(st),
		Turn:          colorName(st.ToMove),
		Status:        st.Status().String(),
		Board:         strings.Split(strings.TrimSuffix(st.Board.String(), "\n"), "\n"),
		Castling:      castlingText(st.Castling),
		HalfmoveClock: st.HalfmoveClock,
		MoveNumber:    st.MoveNumber,
		History:       make([]string, 0, len(st.History)),
	}
	if st.EnPassant {
		js.EnPassant = st.EPSquare.String()
	}
	for _, m := range st.History {
		js.History = append(js.History, m.String())
	}
	return js
}

// WriteStateJSON writes a game state snapshot as indented JSON.
func WriteStateJSON(w io.Writer, st *chess.GameState) error {
	return encodeJSON(w, StateToJSON(st))
}

// castlingText returns the rights in FEN form.
func castlingText(c chess.CastlingRights) string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.PieceType) string {
	switch p {
	case chess.NoPieceType:
		return ""
	default:
		return strings.ToLower(p.String())
	}
}
