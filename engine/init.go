package engine

const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080

	lightSquares uint64 = 0x55AA55AA55AA55AA
)

// PositionBB[sq] is the single-bit board for sq. Index 64 is the empty board,
// which is what a missing king resolves to.
var PositionBB [65]uint64

// KingMoves and KnightMasks hold the attack sets of a king or knight standing on
// each square.
var KingMoves [65]uint64
var KnightMasks [65]uint64

func init() {
	initPositionBB()
	initKnightMasks()
}

func initPositionBB() {
	for i := 0; i < 64; i++ {
		PositionBB[i] = uint64(1) << uint(i)
		sqBB := PositionBB[i]

		// Generate king moves lookup table.

		top := sqBB << 8
		topRight := (sqBB << 8 << 1) & ^bitboardFileA
		topLeft := (sqBB << 8 >> 1) & ^bitboardFileH

		right := (sqBB << 1) & ^bitboardFileA
		left := (sqBB >> 1) & ^bitboardFileH

		bottom := sqBB >> 8
		bottomRight := (sqBB >> 8 << 1) & ^bitboardFileA
		bottomLeft := (sqBB >> 8 >> 1) & ^bitboardFileH

		KingMoves[i] = top | topRight | topLeft | right | left | bottom | bottomRight | bottomLeft
	}
}

var knightJumps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func initKnightMasks() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		var mask uint64
		for _, j := range knightJumps {
			f, r := file+j[0], rank+j[1]
			if InBetween(f, 0, 7) && InBetween(r, 0, 7) {
				mask |= PositionBB[r*8+f]
			}
		}
		KnightMasks[sq] = mask
	}
}
