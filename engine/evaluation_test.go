package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestEvalPositionStartIsEven(t *testing.T) {
	eval := NewEvaluator(DefaultConfig())
	pos := StartPosition()
	if got := eval.Material(pos, White); got != 49 {
		t.Fatalf("start material = %d, want 49", got)
	}
	for _, side := range []Side{White, Black} {
		if got := eval.EvalPosition(pos, side); got != 1 {
			t.Errorf("EvalPosition(start, %v) = %v, want 1", side, got)
		}
	}
}

func TestEvalPositionCheckmateIgnoresSide(t *testing.T) {
	eval := NewEvaluator(DefaultConfig())
	for _, fen := range []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
	} {
		pos := mustPosition(t, fen)
		for _, side := range []Side{White, Black} {
			if got := eval.EvalPosition(pos, side); got != CheckmateScore {
				t.Errorf("%s: EvalPosition(%v) = %v, want %v", fen, side, got, CheckmateScore)
			}
		}
	}
}

func TestEvalPositionDraws(t *testing.T) {
	eval := NewEvaluator(DefaultConfig())
	for _, fen := range []string{
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"8/8/4k3/8/8/3K4/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 100 80",
	} {
		pos := mustPosition(t, fen)
		for _, side := range []Side{White, Black} {
			if got := eval.EvalPosition(pos, side); got != DrawScore {
				t.Errorf("%s: EvalPosition(%v) = %v, want %v", fen, side, got, DrawScore)
			}
		}
	}

	pos := StartPosition()
	playMoves(t, pos, "b1c3", "b8c6", "c3b1", "c6b8")
	if got := eval.EvalPosition(pos, White); got != DrawScore {
		t.Errorf("repeated start position = %v, want %v", got, DrawScore)
	}
}

func TestEvalPositionSubtractsThreats(t *testing.T) {
	eval := NewEvaluator(DefaultConfig())
	pos := mustPosition(t, "7k/8/8/3n4/4P3/8/8/K7 b - - 0 1")

	// Black: king + knight = 13, the knight is attacked for 3, white has 11.
	if got, want := eval.EvalPosition(pos, Black), Score(10)/Score(11); got != want {
		t.Fatalf("EvalPosition(black) = %v, want %v", got, want)
	}
	// White: king + pawn = 11, nothing attacked, black has 13.
	if got, want := eval.EvalPosition(pos, White), Score(11)/Score(13); got != want {
		t.Fatalf("EvalPosition(white) = %v, want %v", got, want)
	}
}

func TestEvalPositionWithoutOpponentMaterial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Values[dragontoothmg.King] = 0
	eval := NewEvaluator(cfg)
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	if got := eval.EvalPosition(pos, White); got != NoMaterialScore {
		t.Fatalf("EvalPosition(white) = %v, want %v", got, NoMaterialScore)
	}
	if got, want := eval.EvalPosition(pos, Black), Score(0)/Score(5); got != want {
		t.Fatalf("EvalPosition(black) = %v, want %v", got, want)
	}
}

func TestEvaluatorDoesNotShareConfig(t *testing.T) {
	cfg := DefaultConfig()
	eval := NewEvaluator(cfg)
	cfg.Values[dragontoothmg.Pawn] = 100
	if got := eval.Material(StartPosition(), White); got != 49 {
		t.Fatalf("evaluator saw a later config change: material %d", got)
	}
}
