package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// ThreatDetector measures how much enemy material a side currently attacks.
type ThreatDetector struct {
	values PieceValues
	order  ThreatOrder
}

func NewThreatDetector(cfg Config) ThreatDetector {
	return ThreatDetector{values: cfg.Values, order: cfg.ThreatOrder}
}

// AttackedSquares is the union of every square attacked by side's pieces.
// Sliders are blocked by the current occupancy.
func (t ThreatDetector) AttackedSquares(pos *Position, side Side) uint64 {
	occupancy := pos.Occupancy()
	var attacked uint64

	for x := pos.PieceBitboard(dragontoothmg.Pawn, side); x != 0; x &= x - 1 {
		attacked |= PawnAttacks(uint8(bits.TrailingZeros64(x)), side)
	}
	for _, slider := range [...]dragontoothmg.Piece{dragontoothmg.Rook, dragontoothmg.Bishop, dragontoothmg.Queen} {
		for x := pos.PieceBitboard(slider, side); x != 0; x &= x - 1 {
			attacked |= SliderAttacks(slider, uint8(bits.TrailingZeros64(x)), occupancy)
		}
	}
	for x := pos.PieceBitboard(dragontoothmg.Knight, side); x != 0; x &= x - 1 {
		attacked |= KnightAttacks(uint8(bits.TrailingZeros64(x)))
	}
	attacked |= KingAttacks(pos.KingSquare(side))

	return attacked
}

// AmountCapturable returns the summed value of the opponent pieces that side
// attacks right now, weighted over the configured threat order.
func (t ThreatDetector) AmountCapturable(pos *Position, side Side) int {
	attacked := t.AttackedSquares(pos, side)

	total := 0
	for _, pieceType := range t.order {
		hit := pos.PieceBitboard(pieceType, side.Other()) & attacked
		total += bits.OnesCount64(hit) * t.values.Of(pieceType)
	}
	return total
}
