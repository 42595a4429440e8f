// Package hashing provides position keys and duplicate detection for games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DuplicateDetector tracks final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the ply counts to agree
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits unique entries (0 = unlimited)
	maxCapacity int
	uniqueCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// SignatureOf builds the signature of a game that ended in st.
func SignatureOf(st *chess.GameState) GameSignature {
	return GameSignature{
		Hash:     Zobrist(st),
		PlyCount: st.PlyCount(),
		WeakHash: WeakHash(&st.Board),
	}
}

// CheckAndAdd checks if a game ending in st is a duplicate and records it.
// Returns true if the game is a duplicate. Once the detector is full new
// positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(st *chess.GameState) bool {
	if st == nil {
		return false
	}
	return d.CheckAndAddSignature(SignatureOf(st))
}

// CheckAndAddSignature is CheckAndAdd for a signature computed elsewhere,
// such as in a replay worker.
func (d *DuplicateDetector) CheckAndAddSignature(sig GameSignature) bool {
	// Check for duplicates
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
