package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestAmountCapturableStartPosition(t *testing.T) {
	threats := NewThreatDetector(DefaultConfig())
	pos := StartPosition()
	for _, side := range []Side{White, Black} {
		if got := threats.AmountCapturable(pos, side); got != 0 {
			t.Errorf("AmountCapturable(start, %v) = %d, want 0", side, got)
		}
	}
}

func TestAmountCapturable(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side Side
		want int
	}{
		{"pawn hits lone knight", "7k/8/8/3n4/4P3/8/8/K7 w - - 0 1", White, 3},
		{"knight hits nothing", "7k/8/8/3n4/4P3/8/8/K7 w - - 0 1", Black, 0},
		{"bishop counts twice", "7k/8/8/3b4/4P3/8/8/K7 w - - 0 1", White, 6},
		{"bishop hits pawn", "7k/8/8/3b4/4P3/8/8/K7 w - - 0 1", Black, 1},
		{"rook sees queen", "4q2k/8/8/8/8/8/8/K3R3 w - - 0 1", White, 9},
		{"rook blocked by own pawn", "4q2k/8/8/8/4P3/8/8/K3R3 w - - 0 1", White, 0},
		{"rook sees king", "4k3/8/8/8/8/8/8/K3R3 b - - 0 1", White, 10},
		{"queen on diagonal and file", "k7/8/8/8/1r3n2/8/3Q4/7K w - - 0 1", White, 8},
		{"king hits adjacent pawn", "7k/8/8/8/8/8/1p6/K7 w - - 0 1", White, 1},
		{"black pawn captures downward", "7k/8/8/3p4/2N1R3/8/8/K7 w - - 0 1", Black, 8},
	}
	threats := NewThreatDetector(DefaultConfig())
	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		if got := threats.AmountCapturable(pos, tt.side); got != tt.want {
			t.Errorf("%s: AmountCapturable(%v) = %d, want %d", tt.name, tt.side, got, tt.want)
		}
	}
}

func TestAmountCapturableSingleBishopOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThreatOrder = SingleBishopOrder()
	threats := NewThreatDetector(cfg)
	pos := mustPosition(t, "7k/8/8/3b4/4P3/8/8/K7 w - - 0 1")
	if got := threats.AmountCapturable(pos, White); got != 3 {
		t.Fatalf("AmountCapturable = %d, want 3", got)
	}
}

func TestAttackedSquaresEdgeFiles(t *testing.T) {
	threats := NewThreatDetector(DefaultConfig())
	pos := mustPosition(t, "7k/8/8/8/P6P/8/8/K7 w - - 0 1")
	a4, h4 := uint8(24), uint8(31)
	attacked := threats.AttackedSquares(pos, White)
	pawnAttacks := attacked &^ KingAttacks(pos.KingSquare(White))
	want := PositionBB[33] | PositionBB[38] // b5, g5
	if pawnAttacks != want {
		t.Fatalf("pawn attacks = %#x, want %#x", pawnAttacks, want)
	}
	if PawnAttacks(a4, White) != PositionBB[33] || PawnAttacks(h4, White) != PositionBB[38] {
		t.Fatalf("edge pawns wrapped around the board")
	}
	if PawnAttacks(a4, Black) != PositionBB[17] || PawnAttacks(h4, Black) != PositionBB[22] {
		t.Fatalf("black edge pawns wrapped around the board")
	}
}

func TestKnightAndKingTables(t *testing.T) {
	counts := map[uint8]int{0: 2, 7: 2, 27: 8, 63: 2, 8: 3}
	for sq, want := range counts {
		if got := popCount(KnightAttacks(sq)); got != want {
			t.Errorf("knight on %d attacks %d squares, want %d", sq, got, want)
		}
	}
	if got := popCount(KingAttacks(0)); got != 3 {
		t.Errorf("king on a1 attacks %d squares, want 3", got)
	}
	if got := popCount(KingAttacks(27)); got != 8 {
		t.Errorf("king on d4 attacks %d squares, want 8", got)
	}
	if KingAttacks(64) != 0 {
		t.Errorf("missing king should attack nothing")
	}
	if got := SliderAttacks(dragontoothmg.Queen, 27, 0); popCount(got) != 27 {
		t.Errorf("queen on empty d4 attacks %d squares, want 27", popCount(got))
	}
}

func popCount(bb uint64) int {
	n := 0
	for ; bb != 0; bb &= bb - 1 {
		n++
	}
	return n
}
