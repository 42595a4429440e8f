package notation

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parser parses PGN input into game records. Comments, NAGs and variations
// are read and dropped; only the main line's move text is kept.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	cfg          *config.Config
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// Warnings returns the recoverable problems seen so far.
func (p *Parser) Warnings() []string {
	return p.lexer.Warnings()
}

// ParseGame parses a single game from the input.
// Returns nil, nil if no more games are available. On a malformed game the
// rest of it is skipped so the next call starts with the following game.
func (p *Parser) ParseGame() (*chess.GameRecord, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	p.skipToNextGame()
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	p.lexer.RestartForNewGame()
	game := chess.NewGameRecord()

	p.parseOptTagList(game)

	if err := p.parseMoveList(game); err != nil {
		p.skipToNextTag()
		return nil, err
	}

	result := p.parseResult()
	if result != "" {
		game.Result = result
		if tag := game.GetTag(chess.ResultTag); tag == "" || tag == "?" {
			game.SetTag(chess.ResultTag, result)
		}
	}

	return game, nil
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, TerminatingResult, ErrorToken:
			return
		default:
			p.nextToken()
		}
	}
}

// skipToNextTag abandons the current game.
func (p *Parser) skipToNextTag() {
	for p.currentToken.Type != EOFToken && p.currentToken.Type != TagToken {
		p.nextToken()
	}
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(game *chess.GameRecord) {
	for p.parseTag(game) {
	}
}

// parseTag parses a single tag.
func (p *Parser) parseTag(game *chess.GameRecord) bool {
	switch p.currentToken.Type {
	case TagToken:
		tagName := p.currentToken.TokenString
		p.nextToken()

		if p.currentToken.Type == StringToken {
			game.SetTag(tagName, p.currentToken.TokenString)
			p.nextToken()
		} else {
			p.lexer.warnf("missing tag string for %s", tagName)
		}
		return true

	case StringToken:
		p.lexer.warnf("missing tag name for %q", p.currentToken.TokenString)
		p.nextToken()
		return true

	case CommentToken:
		p.nextToken()
		return true
	}

	return false
}

// parseMoveList collects main-line move text up to the result, the next
// game's tags or the end of input.
func (p *Parser) parseMoveList(game *chess.GameRecord) error {
	for {
		switch p.currentToken.Type {
		case MoveToken:
			game.AppendMove(p.currentToken.TokenString)
			p.nextToken()

		case MoveNumber, CheckSymbol, NAGToken, CommentToken:
			p.nextToken()

		case RAVStart:
			p.skipVariation()

		case StringToken:
			p.lexer.warnf("stray string %q in move text", p.currentToken.TokenString)
			p.nextToken()

		case ErrorToken:
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Field:    fmt.Sprintf("move text line %d", p.currentToken.Line),
				Expected: "move",
				Got:      p.currentToken.TokenString,
			}

		default:
			// TerminatingResult, TagToken, EOFToken
			return nil
		}
	}
}

// skipVariation drops a bracketed variation, including nested ones.
func (p *Parser) skipVariation() {
	depth := 1
	for depth > 0 {
		p.nextToken()
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken:
			p.lexer.warnf("missing ')' to close variation")
			return
		}
	}
	p.nextToken()
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type != TerminatingResult {
		return ""
	}
	result := p.currentToken.TokenString
	p.nextToken()
	return result
}

// ParseAllGames parses all games from the input. Games that fail to parse
// are left out and their errors joined into the returned error.
func (p *Parser) ParseAllGames() ([]*chess.GameRecord, error) {
	var games []*chess.GameRecord
	var errs []error

	for index := 1; ; index++ {
		game, err := p.ParseGame()
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "game %d", index))
			continue
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}

	return games, errors.Join(errs...)
}

// SplitGames reads every game in a multi-game PGN stream.
func SplitGames(r io.Reader) ([]*chess.GameRecord, error) {
	return NewParser(r, nil).ParseAllGames()
}

// ParsePGN decodes the first game in text. Text holding no game at all
// decodes to an empty record.
func ParsePGN(text string) (*chess.GameRecord, error) {
	game, err := NewParser(strings.NewReader(text), nil).ParseGame()
	if err != nil {
		return nil, err
	}
	if game == nil {
		return chess.NewGameRecord(), nil
	}
	return game, nil
}
