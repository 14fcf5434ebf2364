// Package driver implements the line-oriented text protocol described in
// spec.md section 6 that an external front-end speaks to drive the
// engine: uci/isready/ucinewgame/position/go/quit. It is the thin,
// explicitly out-of-scope-but-necessary command loop — the engine core
// has no way to be exercised end to end without one — so it stays
// deliberately small: no time controls, no pondering, no multi-PV, all
// of which are spec non-goals.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// DefaultDepth is the fixed search depth budget used when a driver is not
// otherwise configured — the reference value from spec.md section 6.
const DefaultDepth = 6

// Driver reads protocol lines from in and writes protocol responses to
// the channel it returns. It is fully synchronous: a "go" command blocks
// the read loop until the search returns, matching the core's
// single-threaded, non-pondering concurrency model (spec.md section 5).
type Driver struct {
	iox.AsyncCloser

	e     *engine.Engine
	depth int

	out chan<- string
}

// NewDriver starts the protocol loop in a goroutine and returns the
// driver handle plus the channel of outgoing lines (closed when the
// driver exits, e.g. on "quit" or a broken input stream).
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, depth int) (*Driver, <-chan string) {
	if depth <= 0 {
		depth = DefaultDepth
	}

	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		depth:       depth,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Protocol initialized")

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			cmd, args := strings.ToLower(fields[0]), fields[1:]

			switch cmd {
			case "uci":
				d.out <- fmt.Sprintf("id name %v", d.e.Name())
				d.out <- fmt.Sprintf("id author %v", d.e.Author())
				d.out <- "uciok"

			case "isready":
				d.out <- "readyok"

			case "ucinewgame":
				if err := d.e.Reset(ctx, fen.Initial); err != nil {
					logw.Errorf(ctx, "ucinewgame reset failed: %v", err)
				}

			case "position":
				d.handlePosition(ctx, args)

			case "go":
				d.handleGo(ctx)

			case "quit":
				return

			default:
				logw.Debugf(ctx, "Ignoring unknown command %q", line)
			}

		case <-d.Closed():
			return
		}
	}
}

func (d *Driver) handlePosition(ctx context.Context, args []string) {
	if len(args) == 0 {
		logw.Errorf(ctx, "position: missing argument")
		return
	}

	position := fen.Initial
	rest := args[1:]
	if args[0] == "fen" {
		if len(args) < 7 {
			logw.Errorf(ctx, "position fen: not enough fields in %v", args)
			return
		}
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	} else if args[0] != "startpos" {
		logw.Errorf(ctx, "position: unrecognized argument %q", args[0])
		return
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "position: invalid fen %q: %v", position, err)
		return
	}

	move := false
	for _, arg := range rest {
		if arg == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if err := d.e.Move(ctx, arg); err != nil {
			logw.Errorf(ctx, "position: invalid move %q: %v", arg, err)
			return
		}
	}
}

func (d *Driver) handleGo(ctx context.Context) {
	d.e.SetDepthLimit(d.depth)

	result, err := d.e.FindBestMove(ctx)
	if err != nil {
		// No legal move: position is already checkmate or stalemate.
		// Still must answer "bestmove", per the protocol, with the null move.
		d.out <- "bestmove 0000"
		return
	}
	d.out <- fmt.Sprintf("bestmove %v", result.Move)
}

// ReadStdinLines reads stdin lines into a channel, one protocol command
// per line, until stdin closes.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes lines from out to stdout until the channel
// closes.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
