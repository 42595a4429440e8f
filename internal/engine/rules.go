package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// DrawRuleResult contains the results of draw rule detection. The results
// are informational: the game never ends on them.
type DrawRuleResult struct {
	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the game started with unequal material.
	HasMaterialOdds bool
}

// AnalyzeDrawRules replays moves from start and reports the draw conditions
// met along the way. start is not modified. Replay stops at the first move
// whose origin does not hold the recorded piece.
func AnalyzeDrawRules(start *chess.GameState, moves []chess.Move) DrawRuleResult {
	result := DrawRuleResult{
		HasMaterialOdds: !isStandardMaterial(&start.Board),
	}

	st := *start
	st.History = nil

	// Track position counts for 5-fold repetition
	positionCounts := make(map[uint64]int)
	positionCounts[hashing.Zobrist(&st)]++

	for _, m := range moves {
		if st.Board.Get(m.From) != m.Piece {
			break
		}
		ApplyMove(&st, m.From, m.To, m.Promotion)

		// Check 75-move rule (150 half-moves without pawn move or capture)
		if st.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}

		key := hashing.Zobrist(&st)
		positionCounts[key]++
		if positionCounts[key] >= 5 {
			result.Has5FoldRepetition = true
		}
	}

	result.HasInsufficientMaterial = HasInsufficientMaterial(&st.Board)
	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			// Kings don't count for material
			if piece.IsEmpty() || piece.Type == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			switch piece.Type {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = isLightSquare(row, col)
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = isLightSquare(row, col)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (row 0, col 0) is light.
func isLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	expected := map[chess.PieceType]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2]map[chess.PieceType]int
	actual[chess.White] = make(map[chess.PieceType]int)
	actual[chess.Black] = make(map[chess.PieceType]int)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !piece.IsEmpty() {
				actual[piece.Colour][piece.Type]++
			}
		}
	}

	for pieceType, count := range expected {
		if actual[chess.White][pieceType] != count || actual[chess.Black][pieceType] != count {
			return false
		}
	}
	return true
}
