package chess

// Tag names used by the codec.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	SetupTag  = "SetUp"
	FENTag    = "FEN"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// RosterDefaults are the values written for roster tags the caller did not
// supply.
var RosterDefaults = map[string]string{
	EventTag: "?",
	SiteTag:  "?",
	DateTag:  "????.??.??",
	RoundTag: "?",
	WhiteTag: "?",
	BlackTag: "?",
}

// Result tokens.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// IsResult reports whether token is a PGN result token.
func IsResult(token string) bool {
	switch token {
	case WhiteWins, BlackWins, Draw, Unfinished:
		return true
	default:
		return false
	}
}
