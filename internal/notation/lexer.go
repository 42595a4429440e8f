package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	cfg      *config.Config

	// Comment nesting depth
	commentDepth uint

	// Problems that did not stop tokenizing, in input order.
	warnings []string
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = Whitespace
	}

	// Brackets and quotes
	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd

	// Special symbols
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = LineComment
	chTab[';'] = LineComment
	chTab['\\'] = Escape
	chTab[0] = EOS
	chTab['*'] = Star
	chTab['-'] = Dash

	for _, c := range []byte{'<', '>', '='} {
		chTab[c] = Operator
	}

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Piece letters; lowercase only appear as promotion suffixes
	for _, c := range []byte{'K', 'Q', 'R', 'N', 'B', 'P', 'k', 'q', 'r', 'n'} {
		moveChars[c] = true
	}

	// Capture/separators, promotion, castling, en passant
	for _, c := range []byte{'x', 'X', ':', '-', '=', 'O', 'o', '0', 'p'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		l.line = ""
		l.pos = 0
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// warnf records a recoverable problem with the current line number.
func (l *Lexer) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.warnings = append(l.warnings, fmt.Sprintf("line %d: %s", l.lineNum, msg))
}

// Warnings returns the recoverable problems seen so far.
func (l *Lexer) Warnings() []string {
	return l.warnings
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case TagEnd:
		return &Token{Type: NoToken}

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		l.warnf("unmatched comment end")
		return &Token{Type: NoToken}

	case NAGToken:
		start := l.pos
		for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
			l.advance()
		}
		return &Token{Type: NAGToken, TokenString: "$" + l.line[start:l.pos]}

	case Annotate:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Annotate {
			l.advance()
		}
		return &Token{Type: NAGToken, TokenString: annotationToNAG(l.line[symbolStart:l.pos])}

	case CheckSymbol:
		for l.pos < len(l.line) && chTab[l.currentChar()] == CheckSymbol {
			l.advance()
		}
		return &Token{Type: CheckSymbol, TokenString: l.line[symbolStart:l.pos]}

	case Dot:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Dot {
			l.advance()
		}
		return &Token{Type: NoToken}

	case RAVStart:
		l.ravLevel++
		return &Token{Type: RAVStart}

	case RAVEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: RAVEnd}
		}
		l.warnf("too many ')'")
		return &Token{Type: NoToken}

	case LineComment:
		// Only a '%' in the first column is an escape line
		if ch == '%' && symbolStart != 0 {
			l.warnf("unknown character %c", ch)
			return &Token{Type: NoToken}
		}
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case Escape:
		if l.pos < len(l.line) {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Alpha:
		return l.gatherAlpha(ch, symbolStart)

	case Digit:
		return l.gatherNumeric(ch)

	case Star:
		return &Token{Type: TerminatingResult, TokenString: chess.Unfinished}

	case Dash:
		return l.errorToken(l.gatherError(symbolStart))

	case EOS:
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case Operator:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Operator {
			l.advance()
		}
		l.warnf("operator %s in illegal context", l.line[symbolStart:l.pos])
		return &Token{Type: NoToken}

	default:
		return l.errorToken(l.gatherError(symbolStart))
	}
}

// gatherError consumes the rest of an unrecognisable symbol.
func (l *Lexer) gatherError(symbolStart int) string {
	for l.pos < len(l.line) {
		t := chTab[l.currentChar()]
		if t == Whitespace || t == EOS {
			break
		}
		l.advance()
	}
	return l.line[symbolStart:l.pos]
}

// errorToken reports text the parser must not skip silently.
func (l *Lexer) errorToken(text string) *Token {
	return &Token{Type: ErrorToken, TokenString: text}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
		l.advance()
	}

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_' {
			l.advance()
		} else {
			break
		}
	}

	if l.pos > start {
		return &Token{Type: TagToken, TokenString: l.line[start:l.pos]}
	}
	l.warnf("missing tag name")
	return &Token{Type: NoToken}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			escaped = true
		case '"':
			return &Token{Type: StringToken, TokenString: sb.String()}
		case '\r', '\n':
		default:
			sb.WriteByte(ch)
		}
	}

	l.warnf("missing closing quote")
	return &Token{Type: StringToken, TokenString: sb.String()}
}

// gatherComment gathers a comment block.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	l.commentDepth++

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()

			switch {
			case ch == '{' && l.cfg.AllowNestedComments:
				l.commentDepth++
				sb.WriteByte(ch)
			case ch == '}':
				l.commentDepth--
				if l.commentDepth == 0 {
					return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
				}
				sb.WriteByte(ch)
			default:
				sb.WriteByte(ch)
			}
		}

		if !l.readLine() {
			break
		}
	}

	l.commentDepth = 0
	l.warnf("missing end of comment")
	return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
}

// gatherAlpha handles alpha characters (potential moves).
func (l *Lexer) gatherAlpha(ch byte, symbolStart int) *Token {
	if !moveChars[ch] {
		return l.errorToken(l.gatherError(symbolStart))
	}

	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}

	// "exd6 e.p." arrives as "exd6", then "e" followed by ".p."
	if strings.HasPrefix(l.line[l.pos:], ".p.") && l.line[l.pos-1] == 'e' && l.pos-1 == symbolStart {
		l.pos += 3
		return &Token{Type: NoToken}
	}

	moveText := l.line[symbolStart:l.pos]
	if moveSeemsValid(moveText) {
		return &Token{Type: MoveToken, TokenString: moveText}
	}

	return l.errorToken(moveText)
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, TokenString: chess.BlackWins}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, TokenString: "O-O-O"}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, TokenString: "O-O"}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, TokenString: chess.WhiteWins}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return &Token{Type: TerminatingResult, TokenString: chess.Draw}
		}
	}

	return l.gatherMoveNumber()
}

// gatherMoveNumber parses a move number token.
func (l *Lexer) gatherMoveNumber() *Token {
	var moveNum uint
	l.pos--
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
		moveNum = moveNum*10 + uint(l.currentChar()-'0')
		l.advance()
	}

	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
	}

	return &Token{Type: MoveNumber, MoveNum: moveNum}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// moveSeemsValid does a basic check if the move text looks valid.
func moveSeemsValid(text string) bool {
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o", "0-0", "0-0-0":
		return true
	}
	if len(text) < 2 {
		return false
	}

	// Must contain at least one file (a-h) and one rank (1-8)
	hasFile := false
	hasRank := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if chess.IsFile(c) {
			hasFile = true
		}
		if chess.IsRank(c) {
			hasRank = true
		}
	}
	return hasFile && hasRank
}

// RestartForNewGame resets lexer state for a new game.
func (l *Lexer) RestartForNewGame() {
	l.ravLevel = 0
}
