package engine

import (
	"reflect"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"startpos d1", dragontoothmg.Startpos, 1, 20},
		{"startpos d2", dragontoothmg.Startpos, 2, 400},
		{"startpos d3", dragontoothmg.Startpos, 3, 8902},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"position 3 d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		before := pos.Snapshot()
		if got := Perft(pos, tt.depth); got != tt.want {
			t.Errorf("%s: perft = %d, want %d", tt.name, got, tt.want)
		}
		if after := pos.Snapshot(); !reflect.DeepEqual(before, after) {
			t.Errorf("%s: perft left the board changed", tt.name)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := StartPosition()
	var sum uint64
	for _, n := range PerftDivide(pos, 3) {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide total = %d, want 8902", sum)
	}
}
