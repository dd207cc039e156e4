package board

import "testing"

// TestPromotionIsTwoStage verifies that a pawn reaching the last rank
// produces a pending resolver rather than an immediately finalized
// position, and that resolving it completes the move (§4.6/§4.7).
func TestPromotionIsTwoStage(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	var promo Move
	found := false
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsPromotion() {
			promo = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a promotion move from a7 to a8")
	}

	outcome, mt := promo.Apply(pos)
	if mt.Kind != MovePromotion {
		t.Errorf("expected MovePromotion classification, got %v", mt.Kind)
	}
	if _, ok := outcome.Position(); ok {
		t.Fatal("expected outcome to be a pending resolver, not a finalized position")
	}
	resolver, ok := outcome.Resolver()
	if !ok {
		t.Fatal("expected a resolver")
	}
	if resolver.Pending() != A8 {
		t.Errorf("Pending() = %v, want a8", resolver.Pending())
	}
	if resolver.position.SideToMove != White {
		t.Error("side to move must not toggle while promotion is pending")
	}

	final := resolver.ResolveKnight()
	if final.SideToMove != Black {
		t.Error("side to move should toggle once the promotion is resolved")
	}
	if final.PromotionPending != NoSquare {
		t.Error("promotion_pending must clear after resolution")
	}
	if final.PieceAt(A8) != WhiteKnight {
		t.Errorf("expected a white knight on a8, got %v", final.PieceAt(A8))
	}
	if final.PieceAt(A7) != NoPiece {
		t.Error("a7 should be vacated")
	}
}

// TestPromotionResolutionChoices checks each of the four resolve methods
// places the right piece type.
func TestPromotionResolutionChoices(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	var promo Move
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsPromotion() && m.To() == A8 {
			promo = m
			break
		}
	}

	cases := []struct {
		name    string
		resolve func(*PromotionResolver) *Position
		want    Piece
	}{
		{"knight", (*PromotionResolver).ResolveKnight, WhiteKnight},
		{"bishop", (*PromotionResolver).ResolveBishop, WhiteBishop},
		{"rook", (*PromotionResolver).ResolveRook, WhiteRook},
		{"queen", (*PromotionResolver).ResolveQueen, WhiteQueen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, _ := promo.Apply(pos)
			resolver, ok := outcome.Resolver()
			if !ok {
				t.Fatal("expected a resolver")
			}
			got := tc.resolve(resolver)
			if got.PieceAt(A8) != tc.want {
				t.Errorf("got %v on a8, want %v", got.PieceAt(A8), tc.want)
			}
		})
	}
}
