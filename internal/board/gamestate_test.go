package board

import "testing"

func TestInfoReportsCheckmate(t *testing.T) {
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	info := pos.Info()
	if info.SideToMove != Black {
		t.Error("expected black to move")
	}
	if !info.InCheck {
		t.Error("expected in check")
	}
	if info.State.Kind != Win || info.State.Winner != White {
		t.Errorf("expected White win, got %+v", info.State)
	}
}

func TestInfoReportsStalemate(t *testing.T) {
	// Classic stalemate: black king a8 has no moves and is not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	info := pos.Info()
	if info.InCheck {
		t.Fatal("position should not be check in this stalemate setup")
	}
	if info.State.Kind != Draw {
		t.Errorf("expected Draw, got %+v", info.State)
	}
	if !pos.IsStalemate() {
		t.Error("IsStalemate should agree with Info")
	}
}

func TestInfoReportsPlaying(t *testing.T) {
	pos := NewPosition()
	info := pos.Info()
	if info.State.Kind != Playing {
		t.Errorf("expected Playing at the starting position, got %+v", info.State)
	}
}

func TestSquareViewEmptyAndOpponentSquares(t *testing.T) {
	pos := NewPosition()

	view := NewSquareView(pos, E4)
	if _, ok := view.GetMoves(); ok {
		t.Error("empty square should report (nil, false) from GetMoves")
	}
	if _, ok := view.PieceType(); ok {
		t.Error("empty square should report no piece type")
	}

	blackView := NewSquareView(pos, E7)
	if _, ok := blackView.GetMoves(); ok {
		t.Error("opponent-owned square should report (nil, false) from GetMoves when white is to move")
	}

	whiteView := NewSquareView(pos, E2)
	moves, ok := whiteView.GetMoves()
	if !ok || moves.Len() == 0 {
		t.Error("white pawn on e2 should have legal moves at the starting position")
	}
}

func TestSquareViewDarkColor(t *testing.T) {
	pos := NewPosition()
	if !NewSquareView(pos, A1).DarkColor() {
		t.Error("a1 is a dark square")
	}
	if NewSquareView(pos, H1).DarkColor() {
		t.Error("h1 is a light square")
	}
}
