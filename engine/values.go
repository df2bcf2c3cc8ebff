package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Side identifies a color. It uses the same convention as Board.Wtomove.
type Side bool

const (
	White Side = true
	Black Side = false
)

// Other returns the opposing side.
func (s Side) Other() Side { return !s }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Score is a position evaluation from one side's point of view.
type Score float32

const (
	CheckmateScore Score = 100
	DrawScore      Score = 0.5

	// NoMaterialScore replaces the material ratio when the opponent has
	// nothing left to divide by.
	NoMaterialScore Score = 1000
)

// NoMove is returned when no move was selected.
const NoMove dragontoothmg.Move = 0

const (
	DefaultDepth = 3
	MaxDepth     = 8
)

// PieceValues is indexed by dragontoothmg.Piece; dragontoothmg.Nothing is slot 0.
type PieceValues [7]int

// Of returns the value of piece type p.
func (v PieceValues) Of(p dragontoothmg.Piece) int {
	if int(p) >= len(v) {
		return 0
	}
	return v[p]
}

// ThreatOrder is the list of opponent piece types weighed by ThreatDetector.
// A type listed twice is counted twice.
type ThreatOrder [7]dragontoothmg.Piece

// Material is summed over these types, in this order.
var materialOrder = [...]dragontoothmg.Piece{
	dragontoothmg.King,
	dragontoothmg.Queen,
	dragontoothmg.Rook,
	dragontoothmg.Bishop,
	dragontoothmg.Knight,
	dragontoothmg.Pawn,
	dragontoothmg.Nothing,
}

// Config carries everything the evaluator and search read. It is passed by
// value so a running search cannot observe later changes.
type Config struct {
	Depth       int
	Values      PieceValues
	ThreatOrder ThreatOrder
}

// DefaultConfig returns the stock settings: depth 3 and the 10/9/5/3/3/1 value
// table. The threat order lists Bishop twice, which doubles the weight of an
// attacked bishop. That matches how the bot has always played, but it is most
// likely a slip; set ThreatOrder explicitly to count bishops once.
func DefaultConfig() Config {
	return Config{
		Depth: DefaultDepth,
		Values: PieceValues{
			dragontoothmg.Nothing: 0,
			dragontoothmg.Pawn:    1,
			dragontoothmg.Knight:  3,
			dragontoothmg.Bishop:  3,
			dragontoothmg.Rook:    5,
			dragontoothmg.Queen:   9,
			dragontoothmg.King:    10,
		},
		ThreatOrder: ThreatOrder{
			dragontoothmg.Pawn,
			dragontoothmg.Knight,
			dragontoothmg.Bishop,
			dragontoothmg.Bishop,
			dragontoothmg.Rook,
			dragontoothmg.Queen,
			dragontoothmg.King,
		},
	}
}

// SingleBishopOrder is DefaultConfig's threat order with the duplicate bishop
// replaced by Nothing, which is worth zero.
func SingleBishopOrder() ThreatOrder {
	return ThreatOrder{
		dragontoothmg.Pawn,
		dragontoothmg.Knight,
		dragontoothmg.Bishop,
		dragontoothmg.Nothing,
		dragontoothmg.Rook,
		dragontoothmg.Queen,
		dragontoothmg.King,
	}
}
