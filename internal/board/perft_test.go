package board

import "testing"

// perft counts the number of leaf nodes at the given depth, the standard
// way to verify move generation correctness. A promotion move branches into
// its four resolutions, each counted as a distinct line, matching the
// conventional perft numbers below.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		outcome, _ := m.Apply(p)
		if next, ok := outcome.Position(); ok {
			nodes += perft(next, depth-1)
			continue
		}

		resolver, _ := outcome.Resolver()
		nodes += perft(resolver.ResolveKnight(), depth-1)
		nodes += perft(resolver.ResolveBishop(), depth-1)
		nodes += perft(resolver.ResolveRook(), depth-1)
		nodes += perft(resolver.ResolveQueen(), depth-1)
	}
	return nodes
}

func runPerft(t *testing.T, pos *Position, tests []struct {
	depth    int
	expected int64
}) {
	t.Helper()
	for _, tc := range tests {
		tc := tc
		t.Run("", func(t *testing.T) {
			got := perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftStartingPosition tests move generation from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// Depth 5 takes longer, enable for thorough testing:
		// {5, 4865609},
	})
}

// TestPerftKiwipete tests the famous Kiwipete position with many edge cases.
// FEN: r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -
func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		// {4, 4085603}, // Takes ~1s, enable for thorough testing
	})
}

// TestPerftPosition3 tests en passant edge cases.
// FEN: 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -
func TestPerftPosition3(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		// {5, 674624}, // Enable for thorough testing
	})
}

// TestPerftPosition4 exercises castling rights lost to rook capture and
// under-promotion alongside normal promotion.
// FEN: r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1
func TestPerftPosition4(t *testing.T) {
	pos, err := ParseFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
		// {4, 422333}, // Enable for thorough testing
	})
}

// TestPerftPosition5 exercises a pinned knight and a discovered check.
// FEN: rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8
func TestPerftPosition5(t *testing.T) {
	pos, err := ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 44},
		{2, 1486},
		{3, 62379},
	})
}

// TestPerftPosition6 is a quiet middlegame position with no special-move
// content, used as a control against the edge-case-heavy positions above.
// FEN: r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10
func TestPerftPosition6(t *testing.T) {
	pos, err := ParseFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 46},
		{2, 2079},
		{3, 89890},
	})
}

// TestPerftEnPassantPin tests the specific en passant horizontal pin edge case.
// FEN: 8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1
// Black pawn on e4 can capture en passant d3, but this would expose the black king
// on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	// The en passant capture should be illegal
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.IsEnPassant() {
			t.Errorf("En passant move %v should be illegal (horizontal pin)", m)
		}
	}

	// Depth 1: Ka3, Ka5, Kb3, Kb4, Kb5, e3 = 6 moves
	// Depth 2: After e4e3 (14), after king moves (16 each x5) = 14 + 80 = 94
	runPerft(t, pos, []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	})
}
