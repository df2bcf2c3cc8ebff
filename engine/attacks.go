package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// PawnCaptureBitboards returns the squares attacked by pawns toward the east
// (h-file) and west (a-file) for the given color.
func PawnCaptureBitboards(pawns uint64, white bool) (east uint64, west uint64) {
	if white {
		east = (pawns << 9) &^ bitboardFileA
		west = (pawns << 7) &^ bitboardFileH
	} else {
		east = (pawns >> 7) &^ bitboardFileA
		west = (pawns >> 9) &^ bitboardFileH
	}
	return east, west
}

// PawnAttacks returns the squares a pawn of side on sq attacks.
func PawnAttacks(sq uint8, side Side) uint64 {
	east, west := PawnCaptureBitboards(PositionBB[sq], bool(side))
	return east | west
}

func KnightAttacks(sq uint8) uint64 { return KnightMasks[sq] }

func KingAttacks(sq uint8) uint64 { return KingMoves[sq] }

// SliderAttacks returns the squares a bishop, rook or queen on sq attacks
// given the occupancy. The first blocker in each direction is included
// whatever its color.
func SliderAttacks(piece dragontoothmg.Piece, sq uint8, occupancy uint64) uint64 {
	switch piece {
	case dragontoothmg.Bishop:
		return dragontoothmg.CalculateBishopMoveBitboard(sq, occupancy)
	case dragontoothmg.Rook:
		return dragontoothmg.CalculateRookMoveBitboard(sq, occupancy)
	case dragontoothmg.Queen:
		return dragontoothmg.CalculateBishopMoveBitboard(sq, occupancy) |
			dragontoothmg.CalculateRookMoveBitboard(sq, occupancy)
	}
	return 0
}
