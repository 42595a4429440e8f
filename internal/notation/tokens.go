package notation

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult
	ErrorToken

	// Internal tokens used for identification
	Whitespace
	TagStart
	TagEnd
	DoubleQuote
	CommentStart
	CommentEnd
	Annotate
	Dot
	LineComment
	Escape
	Alpha
	Digit
	Star
	Dash
	EOS
	Operator
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	CheckSymbol:       "CHECK_SYMBOL",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
	Whitespace:        "WHITESPACE",
	TagStart:          "TAG_START",
	TagEnd:            "TAG_END",
	DoubleQuote:       "DOUBLE_QUOTE",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	Annotate:          "ANNOTATE",
	Dot:               "DOT",
	LineComment:       "LINE_COMMENT",
	Escape:            "ESCAPE",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	Dash:              "DASH",
	EOS:               "EOS",
	Operator:          "OPERATOR",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString holds tag names, strings, move text, results and NAGs
	TokenString string

	// MoveNum holds move numbers
	MoveNum uint

	// Line for error reporting
	Line uint
}
