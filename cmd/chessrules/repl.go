package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const replHelp = `Commands:
  new [fen]         start a game and make it current
  use <id>          switch to a game (a unique id prefix is enough)
  list              list games, * marks the current one
  delete <id>       forget a game
  move <move>       play a move in SAN (Nf3) or coordinates (g1f3)
  legal [square]    legal moves of the piece on square, or of the side to move
  fen               current position as FEN
  pgn               the game as PGN
  json              current position as JSON
  status            check, mate or stalemate
  board             print the board
  quit              leave
`

// gameCommands act on the current game, which is created on first use.
var gameCommands = map[string]bool{
	"move": true, "m": true, "legal": true, "fen": true, "pgn": true,
	"json": true, "status": true, "board": true,
}

// REPL is an interactive front end over a session registry. Each new game
// is its own session; commands act on the current one.
type REPL struct {
	cfg      *config.Config
	sessions *session.Manager
	current  string
	out      io.Writer
}

// NewREPL creates a REPL that writes to cfg.OutputFile.
func NewREPL(cfg *config.Config) *REPL {
	return &REPL{
		cfg:      cfg,
		sessions: session.NewManager(),
		out:      cfg.OutputFile,
	}
}

// Run reads commands from r until quit or end of input. Command errors are
// printed and the loop goes on.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	r.prompt()
	for scanner.Scan() {
		quit, err := r.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		r.prompt()
	}
	return scanner.Err()
}

func (r *REPL) prompt() {
	if r.cfg.Verbosity > 0 {
		fmt.Fprint(r.out, "> ")
	}
}

// Execute runs one command line. It reports whether the REPL should stop.
func (r *REPL) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(r.out, replHelp)
		return false, nil
	case "new":
		return false, r.newGame(strings.Join(args, " "))
	case "use":
		return false, r.use(args)
	case "list":
		r.list()
		return false, nil
	case "delete":
		return false, r.delete(args)
	}

	if !gameCommands[command] {
		return false, fmt.Errorf("unknown command %q, try help", command)
	}
	if r.current == "" {
		if err := r.newGame(""); err != nil {
			return false, err
		}
	}
	return false, r.sessions.Do(r.current, func(g *game.Game) error {
		return r.gameCommand(g, command, args)
	})
}

// gameCommand runs a command that acts on the current game.
func (r *REPL) gameCommand(g *game.Game, command string, args []string) error {
	switch command {
	case "move", "m":
		if len(args) != 1 {
			return fmt.Errorf("usage: move <move>")
		}
		if err := playMove(g, args[0]); err != nil {
			return err
		}
		history := g.MoveHistory()
		fmt.Fprintf(r.out, "%s  %s\n", history[len(history)-1].Notation, g.Status())

	case "legal":
		if len(args) == 0 {
			var moves []string
			for _, m := range g.AllLegalMoves() {
				moves = append(moves, m.Notation)
			}
			fmt.Fprintln(r.out, strings.Join(moves, " "))
			return nil
		}
		sq, ok := chess.ParseSquare(args[0])
		if !ok {
			return fmt.Errorf("bad square %q", args[0])
		}
		fmt.Fprintln(r.out, strings.Join(squareNames(g.LegalMoves(sq)), " "))

	case "fen":
		fmt.Fprintln(r.out, g.FEN())

	case "pgn":
		output.WritePGN(r.out, g.Record(r.cfg.HeaderOverrides), r.cfg)

	case "json":
		st := g.State()
		return output.WriteStateJSON(r.out, &st)

	case "status":
		fmt.Fprintln(r.out, g.Status())

	case "board":
		r.printBoard(g)

	default:
		return fmt.Errorf("unknown command %q, try help", command)
	}
	return nil
}

func (r *REPL) newGame(fen string) error {
	var s *session.Session
	if fen == "" {
		s = r.sessions.New()
	} else {
		var err error
		if s, err = r.sessions.NewFromFEN(fen); err != nil {
			return err
		}
	}
	r.current = s.ID
	fmt.Fprintf(r.out, "game %s\n", s.ID)
	return nil
}

func (r *REPL) use(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: use <id>")
	}
	id, err := r.resolve(args[0])
	if err != nil {
		return err
	}
	r.current = id
	return nil
}

func (r *REPL) delete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	id, err := r.resolve(args[0])
	if err != nil {
		return err
	}
	if err := r.sessions.Delete(id); err != nil {
		return err
	}
	if id == r.current {
		r.current = ""
	}
	return nil
}

// resolve expands a unique id prefix to a full session id.
func (r *REPL) resolve(prefix string) (string, error) {
	var found []string
	for _, id := range r.sessions.IDs() {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%s: %w", prefix, session.ErrSessionNotFound)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d games", prefix, len(found))
	}
}

func (r *REPL) list() {
	for _, id := range r.sessions.IDs() {
		mark := " "
		if id == r.current {
			mark = "*"
		}
		var status string
		r.sessions.Do(id, func(g *game.Game) error { //nolint:errcheck // id comes from IDs
			status = fmt.Sprintf("%d plies, %s", len(g.MoveHistory()), g.Status())
			return nil
		})
		fmt.Fprintf(r.out, "%s %s  %s\n", mark, id, status)
	}
}

// printBoard prints the board with White at the bottom and rank and file
// labels.
func (r *REPL) printBoard(g *game.Game) {
	board := g.Board()
	rows := strings.Split(strings.TrimSuffix(board.String(), "\n"), "\n")
	for i, row := range rows {
		fmt.Fprintf(r.out, "%d %s\n", chess.BoardSize-i, strings.Join(strings.Split(row, ""), " "))
	}
	fmt.Fprintln(r.out, "  a b c d e f g h")
}

// squareNames returns the squares in algebraic form, sorted.
func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	slices.Sort(names)
	return names
}
