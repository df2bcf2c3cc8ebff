package engine

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

type appliedMove struct {
	move    dragontoothmg.Move
	unapply func()
}

// Position is the board the engine searches. It wraps a dragontoothmg board
// with the history needed for draw detection and a stack of applied moves so
// every MakeMove can be reversed exactly.
type Position struct {
	board   dragontoothmg.Board
	states  []State
	applied []appliedMove
}

// NewPosition parses a FEN string.
func NewPosition(fen string) (pos *Position, err error) {
	fen = strings.TrimSpace(fen)
	if err := validateFen(fen); err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("parse fen %q: %v", fen, r)
		}
	}()
	pos = &Position{board: dragontoothmg.ParseFen(fen)}
	if pos.board.White.Kings == 0 || pos.board.Black.Kings == 0 {
		return nil, fmt.Errorf("parse fen %q: board has no kings", fen)
	}
	pos.ResetStateTracking()
	return pos, nil
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	pos, err := NewPosition(dragontoothmg.Startpos)
	if err != nil {
		panic(err)
	}
	return pos
}

func validateFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("want at least 4 fields, got %d", len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}
	kings := map[rune]int{}
	for i, rank := range ranks {
		files := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				files += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				files++
				if c == 'k' || c == 'K' {
					kings[c]++
				}
			default:
				return fmt.Errorf("rank %d: unexpected %q", 8-i, c)
			}
		}
		if files != 8 {
			return fmt.Errorf("rank %d: want 8 files, got %d", 8-i, files)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("want one king per side")
	}
	if fields[1] != "w" && fields[1] != "b" {
		return fmt.Errorf("side to move %q", fields[1])
	}
	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return fmt.Errorf("en passant square %q", ep)
		}
	}
	if len(fields) > 4 {
		// The board keeps the halfmove clock in a uint8.
		if _, err := strconv.ParseUint(fields[4], 10, 8); err != nil {
			return fmt.Errorf("halfmove clock %q", fields[4])
		}
	}
	return nil
}

// ResetStateTracking rebuilds the state stack so that it only contains the
// current board. Applied moves are forgotten and can no longer be undone.
func (p *Position) ResetStateTracking() {
	p.states = p.states[:0]
	p.applied = p.applied[:0]
	p.pushState()
}

func (p *Position) pushState() {
	p.states = append(p.states, State{
		Hash:   p.board.Hash(),
		Rule50: int(p.board.Halfmoveclock),
	})
}

func (p *Position) popState() {
	if len(p.states) <= 1 {
		return
	}
	p.states = p.states[:len(p.states)-1]
}

// MakeMove plays m, which must be legal in the current position.
func (p *Position) MakeMove(m dragontoothmg.Move) {
	unapply := p.board.Apply(m)
	p.applied = append(p.applied, appliedMove{move: m, unapply: unapply})
	p.pushState()
}

// UndoMove takes back m. It panics unless m is the most recently made move.
func (p *Position) UndoMove(m dragontoothmg.Move) {
	if len(p.applied) == 0 {
		panic(fmt.Sprintf("engine: undo %v with no move applied", &m))
	}
	last := p.applied[len(p.applied)-1]
	if last.move != m {
		panic(fmt.Sprintf("engine: undo %v but last move was %v", &m, &last.move))
	}
	p.applied = p.applied[:len(p.applied)-1]
	last.unapply()
	p.popState()
}

// Apply plays m and returns the function that takes it back.
func (p *Position) Apply(m dragontoothmg.Move) func() {
	p.MakeMove(m)
	return func() {
		p.UndoMove(m)
	}
}

// ParseMove finds the legal move written in UCI long algebraic form.
func (p *Position) ParseMove(moveStr string) (dragontoothmg.Move, error) {
	moveStr = strings.ToLower(moveStr)
	legalMoves := p.LegalMoves()
	if i := slices.IndexFunc(legalMoves, func(m dragontoothmg.Move) bool { return m.String() == moveStr }); i >= 0 {
		return legalMoves[i], nil
	}
	parsed, err := dragontoothmg.ParseMove(moveStr)
	if err != nil {
		return NoMove, fmt.Errorf("parse move %q: %w", moveStr, err)
	}
	i := slices.IndexFunc(legalMoves, func(m dragontoothmg.Move) bool {
		return m.From() == parsed.From() && m.To() == parsed.To() && m.Promote() == parsed.Promote()
	})
	if i < 0 {
		return NoMove, fmt.Errorf("move %q not legal in %s", moveStr, p.FEN())
	}
	return legalMoves[i], nil
}

// LegalMoves lists the legal moves of the side to move. The order is fixed for
// a given position.
func (p *Position) LegalMoves() []dragontoothmg.Move {
	return p.board.GenerateLegalMoves()
}

func (p *Position) SideToMove() Side { return Side(p.board.Wtomove) }

func (p *Position) Hash() uint64 { return p.board.Hash() }

func (p *Position) FEN() string { return p.board.ToFen() }

// Snapshot returns a copy of the underlying board.
func (p *Position) Snapshot() dragontoothmg.Board { return p.board }

// HistoryLen is the number of recorded states, including the current one.
func (p *Position) HistoryLen() int { return len(p.states) }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.board.OurKingInCheck() }

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.board.OurKingInCheck() && len(p.board.GenerateLegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal move but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.board.OurKingInCheck() && len(p.board.GenerateLegalMoves()) == 0
}

// IsDraw covers stalemate, the fifty-move rule, a repeated position and
// insufficient material.
func (p *Position) IsDraw() bool {
	return p.IsFiftyMoveDraw() || p.IsRepeated() || p.IsInsufficientMaterial() || p.IsStalemate()
}

func (p *Position) IsFiftyMoveDraw() bool {
	return int(p.board.Halfmoveclock) >= fiftyMoveLimit
}

// IsRepeated reports whether the current position already occurred since the
// last irreversible move.
func (p *Position) IsRepeated() bool {
	count, _ := p.repetitionInfo()
	return count >= 1
}

func (p *Position) repetitionInfo() (count int, firstIdx int) {
	firstIdx = -1
	if len(p.states) <= 1 {
		return 0, firstIdx
	}
	curr := p.states[len(p.states)-1]
	start := Max(len(p.states)-1-curr.Rule50, 0)
	end := len(p.states) - 2
	for i := start; i <= end; i++ {
		if p.states[i].Hash == curr.Hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}

// IsInsufficientMaterial reports positions where neither side can mate: bare
// kings, a single minor piece, or one bishop each on the same square color.
func (p *Position) IsInsufficientMaterial() bool {
	w, b := &p.board.White, &p.board.Black
	if w.Pawns|b.Pawns|w.Rooks|b.Rooks|w.Queens|b.Queens != 0 {
		return false
	}
	wBishops, bBishops := bits.OnesCount64(w.Bishops), bits.OnesCount64(b.Bishops)
	minors := wBishops + bBishops + bits.OnesCount64(w.Knights|b.Knights)
	if minors <= 1 {
		return true
	}
	if minors == 2 && wBishops == 1 && bBishops == 1 {
		return (w.Bishops&lightSquares != 0) == (b.Bishops&lightSquares != 0)
	}
	return false
}

func (p *Position) bitboards(side Side) *dragontoothmg.Bitboards {
	if side == White {
		return &p.board.White
	}
	return &p.board.Black
}

// PieceBitboard returns the squares holding pieces of type piece for side.
func (p *Position) PieceBitboard(piece dragontoothmg.Piece, side Side) uint64 {
	bb := p.bitboards(side)
	switch piece {
	case dragontoothmg.Pawn:
		return bb.Pawns
	case dragontoothmg.Knight:
		return bb.Knights
	case dragontoothmg.Bishop:
		return bb.Bishops
	case dragontoothmg.Rook:
		return bb.Rooks
	case dragontoothmg.Queen:
		return bb.Queens
	case dragontoothmg.King:
		return bb.Kings
	}
	return 0
}

// Occupancy returns every occupied square.
func (p *Position) Occupancy() uint64 { return p.board.White.All | p.board.Black.All }

// KingSquare returns the square of side's king, or 64 if it has none.
func (p *Position) KingSquare(side Side) uint8 {
	return uint8(bits.TrailingZeros64(p.bitboards(side).Kings))
}
