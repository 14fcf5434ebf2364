// Package engine ties the rules façade, evaluator, search and opening
// book together into the single stateful object a driver talks to: one
// current position, one persistent set of search tables, and the
// options a protocol frontend is expected to expose as configurable.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are the engine's runtime-tunable knobs.
type Options struct {
	// DepthLimit bounds iterative deepening. Zero means search until the
	// caller's context is cancelled.
	DepthLimit lang.Optional[int]
	// HashMB sizes the transposition table, in an approximate MB budget
	// translated to an entry-count allocation hint.
	HashMB lang.Optional[int]
}

func (o Options) String() string {
	depth := "unset"
	if v, ok := o.DepthLimit.Get(); ok {
		depth = fmt.Sprintf("%v", v)
	}
	hash := "unset"
	if v, ok := o.HashMB.Get(); ok {
		hash = fmt.Sprintf("%vMB", v)
	}
	return fmt.Sprintf("{depth=%v, hash=%v}", depth, hash)
}

const bytesPerTTEntry = 40

// Engine encapsulates game-playing logic: the current position, search
// tables and opening book. Safe for concurrent use by a single driver
// goroutine calling sequentially plus a protocol layer reading Position
// for status reporting.
type Engine struct {
	name, author string

	book Book
	opts Options
	seed int64

	pos *rules.Position
	s   *search.Searcher

	mu sync.Mutex
}

// Book is re-exported so callers only need to import pkg/engine.
type Book = book.Book

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBook sets the opening book consulted before every search.
func WithBook(b Book) Option {
	return func(e *Engine) { e.book = b }
}

// WithOptions sets the initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithZobristSeed fixes the Zobrist hash table's random seed, primarily
// for reproducible tests.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// New creates an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, book: book.Empty}
	for _, fn := range opts {
		fn(e)
	}
	e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

func (e *Engine) SetDepthLimit(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.DepthLimit = lang.Some(depth)
}

func (e *Engine) SetHashMB(mb int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.HashMB = lang.Some(mb)
}

// Position returns the current position as a FEN string.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.pos)
}

// Reset replaces the current game with the position encoded by fenStr and
// starts a fresh search-table lifetime (transposition/killer/history
// tables), matching ucinewgame semantics: tables from a previous game are
// never valid for a different one.
func (e *Engine) Reset(ctx context.Context, fenStr string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}

	capacity := 0
	if mb, ok := e.opts.HashMB.Get(); ok {
		capacity = mb * 1024 * 1024 / bytesPerTTEntry
	}
	e.pos = pos
	e.s = search.NewSearcher(e.seed, capacity)

	logw.Infof(ctx, "Reset to %v", fenStr)
	return nil
}

// Move applies a UCI move string as an opponent (or setup) move, without
// invoking search.
func (e *Engine) Move(ctx context.Context, uci string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := rules.ParseUCIMove(uci)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", uci, err)
	}
	m, ok := e.pos.FindLegalMove(candidate)
	if !ok {
		return fmt.Errorf("illegal move: %v", uci)
	}
	next, ok := e.pos.Push(m)
	if !ok {
		return fmt.Errorf("illegal move: %v", uci)
	}
	e.pos = next

	logw.Infof(ctx, "Applied move %v: %v", uci, fen.Encode(e.pos))
	return nil
}

// FindBestMove consults the opening book first and, on a miss, runs the
// search to the configured depth limit (or until ctx is cancelled).
func (e *Engine) FindBestMove(ctx context.Context) (search.Result, error) {
	e.mu.Lock()
	pos := e.pos
	s := e.s
	opts := e.opts
	b := e.book
	seed := e.seed
	e.mu.Unlock()

	if moves, ok := b.Find(pos); ok {
		move := book.NewSelector(seed).Pick(moves)
		logw.Infof(ctx, "Book move: %v", move)
		return search.Result{Move: move, HasMove: true}, nil
	}

	limits := search.Limits{}
	if depth, ok := opts.DepthLimit.Get(); ok {
		limits.DepthLimit = depth
	}

	result := s.FindBestMove(ctx, pos, limits)
	if !result.HasMove {
		return result, fmt.Errorf("no legal move available")
	}
	logw.Infof(ctx, "Best move: %v (score=%v depth=%v nodes=%v)", result.Move, result.Score, result.Depth, result.Nodes)
	return result, nil
}
