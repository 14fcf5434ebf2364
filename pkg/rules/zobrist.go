package rules

import "math/rand"

// ZobristHash is a 64-bit position identity: a full recomputation hashes the
// full game-legal state, including en passant rights, so two Zobrist-equal
// positions are interchangeable for transposition-table purposes.
type ZobristHash uint64

// ZobristTable is a seeded table of random keys for computing ZobristHash.
// Unlike the teacher implementation this does not maintain an incremental
// hash across Push/SwapTurn — Position carries no history, so there is no
// cheap "previous hash" to update from; Hash always recomputes from
// scratch. This trades search-hot-path speed for a much simpler and more
// obviously correct Position type. See DESIGN.md.
type ZobristTable struct {
	pieces    [NumColors][NumPieces][NumSquares]uint64
	castling  [16]uint64
	enpassant [NumSquares]uint64
	turn      uint64
}

func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))
	t := &ZobristTable{}

	for c := Color(0); c < NumColors; c++ {
		for piece := Pawn; piece <= King; piece++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				t.pieces[c][piece][sq] = r.Uint64()
			}
		}
	}
	for i := range t.castling {
		t.castling[i] = r.Uint64()
	}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		t.enpassant[sq] = r.Uint64()
	}
	t.turn = r.Uint64()
	return t
}

// Hash computes the Zobrist hash of p. En passant rights always participate
// in the hash when set, regardless of whether a capture is actually
// available, so callers must not rely on hash equality implying identical
// tactical en passant availability beyond what Position.EnPassant reports.
func (t *ZobristTable) Hash(p *Position) ZobristHash {
	var h uint64
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if c, piece, ok := p.Square(sq); ok {
			h ^= t.pieces[c][piece][sq]
		}
	}
	h ^= t.castling[p.castling]
	if ep, ok := p.EnPassant(); ok {
		h ^= t.enpassant[ep]
	}
	if p.turn == Black {
		h ^= t.turn
	}
	return ZobristHash(h)
}
