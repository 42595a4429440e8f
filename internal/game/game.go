// Package game provides the chess engine instance: one game state, the
// operations that change it and the queries a front end needs.
//
// A Game is not safe for concurrent use. Separate Games share nothing and
// may be driven from separate goroutines.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Game owns exactly one game state. Every failed operation leaves the
// state as it was, except LoadPGN which falls back to the standard start.
type Game struct {
	state *chess.GameState

	// The position the history starts from.
	start *chess.GameState

	// FEN of the start position, empty for the standard start.
	startFEN string

	// Tags carried over from the last loaded PGN.
	tags map[string]string
}

// New creates a game at the standard starting position.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewFromFEN creates a game starting from a FEN position.
func NewFromFEN(fen string) (*Game, error) {
	g := New()
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns the game to the standard starting position.
func (g *Game) Reset() {
	g.state = engine.NewInitialState()
	g.start = g.state.Clone()
	g.startFEN = ""
	g.tags = nil
}

// LoadFEN replaces the game with the position in fen. The whole string is
// checked before anything changes; on error the game is untouched.
func (g *Game) LoadFEN(fen string) error {
	st, err := engine.NewStateFromFEN(fen)
	if err != nil {
		return err
	}
	g.setStart(st)
	g.tags = nil
	return nil
}

// setStart makes st the start of a new game with an empty history.
func (g *Game) setStart(st *chess.GameState) {
	st.History = nil
	g.state = st
	g.start = st.Clone()
	g.startFEN = ""
	if fen := engine.StateToFEN(st); fen != engine.InitialFEN {
		g.startFEN = fen
	}
}

// LoadPGN replaces the game with the first game in text, replaying its
// moves from its FEN tag or the standard start. If the text does not parse
// or any move fails, the game is left at the standard start.
func (g *Game) LoadPGN(text string) error {
	record, err := notation.ParsePGN(text)
	if err != nil {
		g.Reset()
		return err
	}

	loaded, err := FromRecord(record)
	if err != nil {
		g.Reset()
		return err
	}
	*g = *loaded
	return nil
}

// FromRecord builds a game by replaying a decoded record.
func FromRecord(record *chess.GameRecord) (*Game, error) {
	g, err := Replay(record)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Replay plays record on a fresh game, stopping at the first move that does
// not apply. The game reached so far is returned with that error; it is nil
// only when the record's FEN tag cannot be loaded.
func Replay(record *chess.GameRecord) (*Game, error) {
	g := New()
	if fen := record.FEN(); fen != "" {
		if err := g.LoadFEN(fen); err != nil {
			return nil, err
		}
	}

	g.tags = make(map[string]string, len(record.Tags))
	for name, value := range record.Tags {
		g.tags[name] = value
	}

	for _, text := range record.Moves {
		if err := g.MakeSANMove(text); err != nil {
			return g, err
		}
	}
	return g, nil
}

// MakeMove moves the piece on from to to. promotion picks the piece a pawn
// becomes on the last rank; NoPieceType means queen. Errors wrap
// ErrInvalidSquare, ErrNoPiece, ErrWrongTurn or ErrIllegalMove and leave
// the game unchanged.
func (g *Game) MakeMove(from, to chess.Square, promotion chess.PieceType) error {
	if !from.InBounds() || !to.InBounds() {
		return errors.Wrapf(errors.ErrInvalidSquare, "move %v to %v", from, to)
	}

	piece := g.state.Board.Get(from)
	if piece.IsEmpty() {
		return errors.Wrapf(errors.ErrNoPiece, "%s", from)
	}
	if piece.Colour != g.state.ToMove {
		return errors.Wrapf(errors.ErrWrongTurn, "%s on %s, %s to move", piece, from, g.state.ToMove)
	}
	if promotion != chess.NoPieceType && !promotion.IsPromotionTarget() {
		return errors.Wrapf(errors.ErrIllegalMove, "promotion to %s", promotion)
	}
	if !containsSquare(engine.LegalMoves(g.state, from), to) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s%s", from, to)
	}

	g.apply(from, to, promotion)
	return nil
}

// apply plays a move already known to be legal and records it.
func (g *Game) apply(from, to chess.Square, promotion chess.PieceType) {
	before := *g.state
	m := engine.ApplyMove(g.state, from, to, promotion)
	m.Notation = notation.EncodeSAN(&before, m, g.state)
	g.state.History = append(g.state.History, m)
}

// MakeSANMove plays a move given in Standard Algebraic Notation. Errors are
// MoveErrors carrying the ply and text, wrapping ErrInvalidSAN,
// ErrIllegalMove or ErrAmbiguousMove.
func (g *Game) MakeSANMove(text string) error {
	spec, err := notation.DecodeSAN(g.state, text)
	if err == nil {
		err = g.MakeMove(spec.From, spec.To, spec.Promotion)
	}
	if err != nil {
		return &errors.MoveError{Err: err, Ply: len(g.state.History) + 1, MoveText: text}
	}
	return nil
}

// MakeCoordinateMove plays a move in coordinate notation ("e2e4", "e7e8q"),
// the form analysis engines reply with.
func (g *Game) MakeCoordinateMove(text string) error {
	spec, err := notation.ParseCoordinate(text)
	if err == nil {
		err = g.MakeMove(spec.From, spec.To, spec.Promotion)
	}
	if err != nil {
		return &errors.MoveError{Err: err, Ply: len(g.state.History) + 1, MoveText: text}
	}
	return nil
}

// LegalMoves returns the squares the piece on from may move to. Pieces of
// either colour may be asked about. An empty or off-board square has none.
func (g *Game) LegalMoves(from chess.Square) []chess.Square {
	return engine.LegalMoves(g.state, from)
}

// AllLegalMoves returns every legal move of the side to move with SAN
// filled in. Each promotion choice is a separate move.
func (g *Game) AllLegalMoves() []chess.Move {
	moves := engine.GenerateMoves(g.state)
	for i := range moves {
		moves[i].Notation = notation.MoveSAN(g.state, moves[i])
	}
	return moves
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.state.Board
}

// PieceAt returns the piece on sq, or false if sq is empty or off the board.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	piece := g.state.Board.Get(sq)
	return piece, !piece.IsEmpty()
}

// State returns a deep copy of the game state.
func (g *Game) State() chess.GameState {
	return *g.state.Clone()
}

// MoveHistory returns a copy of the moves played so far.
func (g *Game) MoveHistory() []chess.Move {
	history := make([]chess.Move, len(g.state.History))
	copy(history, g.state.History)
	return history
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.state.ToMove
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.StateToFEN(g.state)
}

// IsGameOver reports checkmate or stalemate.
func (g *Game) IsGameOver() bool {
	return g.state.IsCheckmate || g.state.IsStalemate
}

// Result returns the PGN result token: a win for the mating side, a draw
// on stalemate, otherwise "*".
func (g *Game) Result() string {
	switch {
	case g.state.IsCheckmate && g.state.ToMove == chess.White:
		return chess.BlackWins
	case g.state.IsCheckmate:
		return chess.WhiteWins
	case g.state.IsStalemate:
		return chess.Draw
	default:
		return chess.Unfinished
	}
}

// Status returns a one-line description of the position for display.
func (g *Game) Status() string {
	side := g.state.ToMove.String()
	switch {
	case g.state.IsCheckmate:
		return "Checkmate, " + g.state.ToMove.Opposite().String() + " wins"
	case g.state.IsStalemate:
		return "Stalemate, draw"
	case g.state.IsCheck:
		return side + " to move, in check"
	default:
		return side + " to move"
	}
}

// Record returns the game as a PGN record. headers override the stored
// tags, except Result which always matches the position; SetUp and FEN
// tags are set whenever the game did not begin at the standard start.
func (g *Game) Record(headers map[string]string) *chess.GameRecord {
	record := chess.NewGameRecord()
	for name, value := range g.tags {
		record.SetTag(name, value)
	}
	for name, value := range headers {
		record.SetTag(name, value)
	}

	delete(record.Tags, chess.SetupTag)
	delete(record.Tags, chess.FENTag)
	if g.startFEN != "" {
		record.SetTag(chess.SetupTag, "1")
		record.SetTag(chess.FENTag, g.startFEN)
	}

	record.Result = g.Result()
	record.SetTag(chess.ResultTag, record.Result)
	for _, m := range g.state.History {
		record.AppendMove(m.Notation)
	}
	return record
}

// PGN returns the game as PGN text using the default output settings.
func (g *Game) PGN(headers map[string]string) string {
	return output.FormatPGN(g.Record(headers), config.NewConfig())
}

// PositionKey returns the Zobrist key of the current position.
func (g *Game) PositionKey() uint64 {
	return hashing.Zobrist(g.state)
}

// HasInsufficientMaterial reports whether neither side can mate. It is
// informational; the game goes on.
func (g *Game) HasInsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(&g.state.Board)
}

// DrawRules reports the draw conditions reached during the game. Like
// HasInsufficientMaterial it never ends the game.
func (g *Game) DrawRules() engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(g.start, g.state.History)
}

// Perft counts the leaf nodes of the legal move tree to depth.
func (g *Game) Perft(depth int) uint64 {
	return engine.Perft(g.state, depth)
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
