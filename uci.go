package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"threat-bot/engine"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

type uciSession struct {
	out io.Writer
	pos *engine.Position
	cfg engine.Config
}

func newUCISession(out io.Writer) *uciSession {
	return &uciSession{
		out: out,
		pos: engine.StartPosition(),
		cfg: engine.DefaultConfig(),
	}
}

func (s *uciSession) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	session := newUCISession(out)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			session.println("id name ThreatBot 1.0")
			session.println("id author ThreatBot authors")
			session.println("option name Depth type spin default", engine.DefaultDepth, "min 1 max", engine.MaxDepth)
			session.println("option name CountBishopOnce type check default false")
			session.println("uciok")
		case "isready":
			session.println("readyok")
		case "ucinewgame":
			session.pos = engine.StartPosition()
		case "quit":
			return
		case "stop":
			// Searches are synchronous; there is nothing to stop.
		case "eval":
			session.eval()
		case "go":
			session.goCommand(tokens[1:])
		case "position":
			if err := session.position(tokens[1:]); err != nil {
				session.println("info string", err)
			}
		case "setoption":
			if err := session.setOption(tokens[1:]); err != nil {
				session.println("info string", err)
			}
		default:
			session.println("info string Unknown command", tokens[0])
		}
	}
}

// goCommand searches at the configured depth. "depth N" overrides it for this
// search; clock fields are accepted and ignored.
func (s *uciSession) goCommand(args []string) {
	cfg := s.cfg
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "infinite", "ponder":
			continue
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		case "depth":
			if i+1 >= len(args) {
				s.println("info string Malformed go command option depth")
				continue
			}
			i++
			depth, err := strconv.Atoi(args[i])
			if err != nil {
				s.println("info string Malformed go command option; could not convert depth")
				continue
			}
			cfg.Depth = depth
		default:
			s.println("info string Unknown go subcommand", args[i])
		}
	}

	res := engine.Think(s.pos, cfg)
	s.println("info depth", res.Depth,
		"nodes", res.Stats.Nodes,
		"evals", res.Stats.Evaluations,
		"time", res.Elapsed.Milliseconds())
	s.println("info string capturable", res.Capturable)
	s.println("bestmove", formatMove(res))
}

func formatMove(res engine.Result) string {
	if res.Move == engine.NoMove {
		return "0000"
	}
	return res.Move.String()
}

func (s *uciSession) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("malformed position command")
	}
	var pos *engine.Position
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		pos = engine.StartPosition()
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		if i == 0 {
			return fmt.Errorf("invalid fen position")
		}
		var err error
		if pos, err = engine.NewPosition(strings.Join(rest[:i], " ")); err != nil {
			return err
		}
		rest = rest[i:]
	default:
		return fmt.Errorf("invalid position subcommand %s", args[0])
	}

	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, moveStr := range rest[1:] {
			m, err := pos.ParseMove(moveStr)
			if err != nil {
				return err
			}
			pos.MakeMove(m)
		}
	}
	s.pos = pos
	return nil
}

// setOption handles "setoption name <name> value <value>".
func (s *uciSession) setOption(args []string) error {
	var name, value string
	for i := 0; i+1 < len(args); i += 2 {
		switch strings.ToLower(args[i]) {
		case "name":
			name = strings.ToLower(args[i+1])
		case "value":
			value = strings.ToLower(args[i+1])
		}
	}
	switch name {
	case "depth":
		depth, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("malformed setoption value for depth: %w", err)
		}
		s.cfg.Depth = engine.Clamp(depth, 1, engine.MaxDepth)
	case "countbishoponce":
		once, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("malformed setoption value for CountBishopOnce: %w", err)
		}
		if once {
			s.cfg.ThreatOrder = engine.SingleBishopOrder()
		} else {
			s.cfg.ThreatOrder = engine.DefaultConfig().ThreatOrder
		}
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

func (s *uciSession) eval() {
	eval := engine.NewEvaluator(s.cfg)
	side := s.pos.SideToMove()
	s.println("info string fen", s.pos.FEN())
	s.println("info string eval", side, eval.EvalPosition(s.pos, side))
	s.println("info string material", eval.Material(s.pos, engine.White), eval.Material(s.pos, engine.Black))
	s.println("info string capturable",
		eval.Threats().AmountCapturable(s.pos, engine.White),
		eval.Threats().AmountCapturable(s.pos, engine.Black))
}
