package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// SearchStats counts the work done by a search. The counters never influence
// which move is chosen.
type SearchStats struct {
	Nodes       uint64 // moves applied
	Evaluations uint64 // leaf evaluations
}

// Searcher runs the fixed-depth lookahead. It is not safe for concurrent use.
//
// The search is deliberately not minimax: at every level the opponent is
// assumed to play its own BestMove, scored from its own point of view, and the
// searching side then looks for its best follow-up. Scores are never negated
// and nothing is pruned.
type Searcher struct {
	eval  Evaluator
	Stats SearchStats
}

func NewSearcher(cfg Config) *Searcher {
	return &Searcher{eval: NewEvaluator(cfg)}
}

func (s *Searcher) Evaluator() Evaluator { return s.eval }

func (s *Searcher) ResetStats() { s.Stats = SearchStats{} }

// BestMove returns the legal move with the highest EvalMove score for side.
// Scores must beat 0 to be picked and ties keep the earlier move, so NoMove
// comes back when nothing scores above 0 or there is no legal move.
func (s *Searcher) BestMove(pos *Position, side Side, depth int) dragontoothmg.Move {
	bestMove := NoMove
	var highestEval Score = 0
	for _, move := range pos.LegalMoves() {
		moveEval := s.EvalMove(pos, move, side, depth)
		if moveEval > highestEval {
			bestMove = move
			highestEval = moveEval
		}
	}
	return bestMove
}

// EvalMove plays move, scores the result for side and takes the move back.
//
// With depth > 1 the opponent answers with its BestMove at depth-1 and side's
// best follow-up at depth-1 is the score. If the opponent has no answer the
// position after move is evaluated directly.
func (s *Searcher) EvalMove(pos *Position, move dragontoothmg.Move, side Side, depth int) Score {
	s.Stats.Nodes++
	defer pos.Apply(move)()

	if depth <= 1 {
		return s.evaluate(pos, side)
	}
	depth--

	bestOpponentMove := s.BestMove(pos, side.Other(), depth)
	if bestOpponentMove == NoMove {
		return s.evaluate(pos, side)
	}
	return s.bestFollowUp(pos, bestOpponentMove, side, depth)
}

// bestFollowUp plays reply and returns the best EvalMove score for side after
// it, floored at 0. reply is taken back before the caller's move is.
func (s *Searcher) bestFollowUp(pos *Position, reply dragontoothmg.Move, side Side, depth int) Score {
	s.Stats.Nodes++
	defer pos.Apply(reply)()

	var finalEval Score = 0
	for _, move := range pos.LegalMoves() {
		finalEval = Max(finalEval, s.EvalMove(pos, move, side, depth))
	}
	return finalEval
}

func (s *Searcher) evaluate(pos *Position, side Side) Score {
	s.Stats.Evaluations++
	return s.eval.EvalPosition(pos, side)
}

// Result is the outcome of Think.
type Result struct {
	Move       dragontoothmg.Move
	Side       Side
	Depth      int
	Capturable int // value the side to move can capture after the search
	Stats      SearchStats
	Elapsed    time.Duration
}

// Think picks a move for the side to move in pos at cfg.Depth.
func Think(pos *Position, cfg Config) Result {
	depth := Clamp(cfg.Depth, 1, MaxDepth)
	side := pos.SideToMove()
	searcher := NewSearcher(cfg)

	start := time.Now()
	move := searcher.BestMove(pos, side, depth)
	return Result{
		Move:       move,
		Side:       side,
		Depth:      depth,
		Capturable: searcher.eval.threats.AmountCapturable(pos, side),
		Stats:      searcher.Stats,
		Elapsed:    time.Since(start),
	}
}
