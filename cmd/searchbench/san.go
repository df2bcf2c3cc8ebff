package main

import (
	"fmt"

	"github.com/notnil/chess"
)

// sanToUCI replays SAN moves from fen and returns them in UCI long algebraic
// form, which is what engine.Position parses.
func sanToUCI(fen string, sanMoves []string) ([]string, error) {
	fenOpt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	game := chess.NewGame(fenOpt)
	uciMoves := make([]string, 0, len(sanMoves))
	for _, san := range sanMoves {
		pos := game.Position()
		move, err := chess.AlgebraicNotation{}.Decode(pos, san)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", san, err)
		}
		if err := game.Move(move); err != nil {
			return nil, fmt.Errorf("play %q: %w", san, err)
		}
		uciMoves = append(uciMoves, chess.UCINotation{}.Encode(pos, move))
	}
	return uciMoves, nil
}
