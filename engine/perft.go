package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Perft counts the leaf nodes of the legal move tree to the given depth,
// making and undoing every move on pos.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range pos.LegalMoves() {
		if depth == 1 {
			nodes++
			continue
		}
		undo := pos.Apply(m)
		nodes += Perft(pos, depth-1)
		undo()
	}
	return nodes
}

// PerftDivide reports the perft count below each root move.
func PerftDivide(pos *Position, depth int) map[dragontoothmg.Move]uint64 {
	result := make(map[dragontoothmg.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range pos.LegalMoves() {
		undo := pos.Apply(m)
		result[m] = Perft(pos, depth-1)
		undo()
	}
	return result
}
