// perft is a move-generator self-check: it counts leaf nodes reachable
// from a position at a fixed depth using only legal-move enumeration, a
// standard cross-check for a chess move generator's correctness. It is
// outside the specified core (spec.md section 1 scopes move generation
// itself out as an external collaborator) but is kept as the standard
// diagnostic for the rules façade this repo does own.
//
// See: https://www.chessprogramming.org/Perft_Results
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "search depth")
	position = flag.String("fen", "", "start position (defaults to standard)")
	divide   = flag.Bool("divide", false, "print per-move subtree counts at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	start := *position
	if start == "" {
		start = fen.Initial
	}

	pos, err := fen.Decode(start)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", start, err)
	}

	for d := 1; d <= *depth; d++ {
		begin := time.Now()
		nodes := perft(pos, d, *divide && d == *depth)
		elapsed := time.Since(begin)

		fmt.Printf("perft,%v,%v,%v,%v\n", start, d, nodes, elapsed.Microseconds())
	}
}

func perft(pos *rules.Position, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.LegalMoves() {
		next, ok := pos.Push(m)
		if !ok {
			continue
		}
		count := perft(next, depth-1, false)
		if divide {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
