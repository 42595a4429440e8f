package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each branch works on its own copy, so st is never modified.
func Perft(st *chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := GenerateMoves(st)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *st
		child.History = nil
		ApplyMove(&child, m.From, m.To, m.Promotion)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by coordinate
// notation (e.g. "e2e4", "e7e8q").
func Divide(st *chess.GameState, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range GenerateMoves(st) {
		child := *st
		child.History = nil
		ApplyMove(&child, m.From, m.To, m.Promotion)
		counts[coordinateText(m)] = Perft(&child, depth-1)
	}
	return counts
}

// coordinateText renders a move as from, to and an optional lowercase
// promotion letter.
func coordinateText(m chess.Move) string {
	text := m.From.String() + m.To.String()
	if m.IsPromotion() {
		text += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return text
}
