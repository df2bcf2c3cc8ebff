package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"threat-bot/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	sanFlag := flag.String("san", "", "space separated SAN moves played from -fen before searching")
	bishopOnce := flag.Bool("bishop-once", false, "weigh attacked bishops once instead of twice")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := *fenFlag
	if fen == "" {
		fen = engine.StartPosition().FEN()
	}
	var uciMoves []string
	if *sanFlag != "" {
		var err error
		if uciMoves, err = sanToUCI(fen, strings.Fields(*sanFlag)); err != nil {
			log.Fatalf("could not replay SAN moves: %v", err)
		}
	}

	cfg := engine.DefaultConfig()
	cfg.Depth = *depthFlag
	if *bishopOnce {
		cfg.ThreatOrder = engine.SingleBishopOrder()
	}

	fmt.Printf("searchbench: fen=%q moves=%v depth=%d repeat=%d\n", fen, uciMoves, cfg.Depth, *repeatFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		pos, err := setup(fen, uciMoves)
		if err != nil {
			log.Fatalf("could not set up position: %v", err)
		}

		res := engine.Think(pos, cfg)
		bestMove := "0000"
		if res.Move != engine.NoMove {
			bestMove = res.Move.String()
		}
		fmt.Printf("iteration %d: bestmove %s nodes=%d evals=%d capturable=%d time=%v\n",
			i+1, bestMove, res.Stats.Nodes, res.Stats.Evaluations, res.Capturable, res.Elapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))
}

func setup(fen string, uciMoves []string) (*engine.Position, error) {
	pos, err := engine.NewPosition(fen)
	if err != nil {
		return nil, err
	}
	for _, moveStr := range uciMoves {
		m, err := pos.ParseMove(moveStr)
		if err != nil {
			return nil, err
		}
		pos.MakeMove(m)
	}
	return pos, nil
}
