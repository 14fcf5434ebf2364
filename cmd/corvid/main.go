// corvid is a UCI-ish chess engine driven entirely by caller-specified
// search depth rather than clock time: see spec.md for the protocol and
// search design this implements.
package main

import (
	"context"
	"flag"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/driver"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/seekerror/logw"
)

var depth = flag.Int("depth", driver.DefaultDepth, "fixed search depth budget for every 'go' command")

func main() {
	flag.Parse()
	ctx := context.Background()

	b, err := book.NewFromLines(book.StandardOpenings)
	if err != nil {
		logw.Exitf(ctx, "Failed to build opening book: %v", err)
	}

	e := engine.New(ctx, "corvid", "corvidchess", engine.WithBook(b))

	in := driver.ReadStdinLines(ctx)
	d, out := driver.NewDriver(ctx, e, in, *depth)
	go driver.WriteStdoutLines(ctx, out)

	<-d.Closed()
}
