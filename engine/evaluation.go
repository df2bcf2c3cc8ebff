package engine

import (
	"math/bits"
)

// Evaluator scores positions as a material ratio discounted by the material
// the opponent can currently capture.
type Evaluator struct {
	values  PieceValues
	threats ThreatDetector
}

func NewEvaluator(cfg Config) Evaluator {
	return Evaluator{values: cfg.Values, threats: NewThreatDetector(cfg)}
}

// Threats exposes the detector the evaluator uses.
func (e Evaluator) Threats() ThreatDetector { return e.threats }

// Material sums count * value over every piece type side has on the board.
func (e Evaluator) Material(pos *Position, side Side) int {
	total := 0
	for _, pieceType := range materialOrder {
		total += bits.OnesCount64(pos.PieceBitboard(pieceType, side)) * e.values.Of(pieceType)
	}
	return total
}

// EvalPosition scores pos for side.
//
// A checkmate scores CheckmateScore whichever side is mated; the search has
// always relied on that, so it is kept as is. Draws score DrawScore. Otherwise
// the score is (own material - material the opponent attacks) / opponent material.
func (e Evaluator) EvalPosition(pos *Position, side Side) Score {
	legalMoves := pos.LegalMoves()
	if len(legalMoves) == 0 && pos.InCheck() {
		return CheckmateScore
	}
	if len(legalMoves) == 0 || pos.IsFiftyMoveDraw() || pos.IsRepeated() || pos.IsInsufficientMaterial() {
		return DrawScore
	}

	captured := e.threats.AmountCapturable(pos, side.Other())
	own := e.Material(pos, side)
	opponent := e.Material(pos, side.Other())
	if opponent == 0 {
		return NoMaterialScore
	}
	return Score(own-captured) / Score(opponent)
}
