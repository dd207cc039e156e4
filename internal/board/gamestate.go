package board

// SquareView is a read-only lens onto one square of a Position (§4.7). It
// borrows the position and must not outlive it.
type SquareView struct {
	pos *Position
	sq  Square
}

// NewSquareView returns a view onto sq within pos.
func NewSquareView(pos *Position, sq Square) SquareView {
	return SquareView{pos: pos, sq: sq}
}

// DarkColor reports whether the square is dark, by the parity of its file
// plus rank (a1 is dark).
func (v SquareView) DarkColor() bool {
	return (v.sq.File()+v.sq.Rank())%2 == 0
}

// PieceType returns the occupying piece's type, or (NoPieceType, false) if
// the square is empty.
func (v SquareView) PieceType() (PieceType, bool) {
	p := v.pos.PieceAt(v.sq)
	if p == NoPiece {
		return NoPieceType, false
	}
	return p.Type(), true
}

// PieceColor returns the occupying piece's color, or (NoColor, false) if the
// square is empty.
func (v SquareView) PieceColor() (Color, bool) {
	p := v.pos.PieceAt(v.sq)
	if p == NoPiece {
		return NoColor, false
	}
	return p.Color(), true
}

// GetMoves returns the legal moves available from this square, or
// (nil, false) if the square is empty or holds a piece of the side not to
// move — "not your piece / empty" per §4.7, distinguishable from a present
// but empty move list.
func (v SquareView) GetMoves() (*MoveList, bool) {
	dest, ok := v.pos.LegalDestinations(v.sq)
	if !ok {
		return nil, false
	}
	ml := NewMoveList()
	v.pos.expandMoves(ml, v.sq, dest)
	return ml, true
}

// GameStateKind distinguishes the three terminal/non-terminal states a
// position can report (§9 GameState = Playing | Win(color) | Draw).
type GameStateKind int

const (
	Playing GameStateKind = iota
	Win
	Draw
)

// GameState reports which of Playing/Win/Draw the position is in. Winner is
// meaningful only when Kind is Win; Draw here means stalemate only, per the
// Non-goals (no repetition, fifty-move, or material draws are detected).
type GameState struct {
	Kind   GameStateKind
	Winner Color
}

// PositionInfo is the aggregate §4.7 info() report.
type PositionInfo struct {
	SideToMove Color
	InCheck    bool
	State      GameState
}

// Info reports side to move, check status, and game state. "No legal moves"
// is decided by summing the legal-destination count over every square, the
// same quantity §4.7 describes as summing |get_moves()| — counting
// destination bits rather than materializing every Move is behaviorally
// identical and avoids the allocation.
func (p *Position) Info() PositionInfo {
	inCheck := p.InCheck()

	total := 0
	for sq := A1; sq <= H8; sq++ {
		if dest, ok := p.LegalDestinations(sq); ok {
			total += dest.PopCount()
		}
	}

	var state GameState
	switch {
	case total == 0 && inCheck:
		state = GameState{Kind: Win, Winner: p.SideToMove.Other()}
	case total == 0:
		state = GameState{Kind: Draw}
	default:
		state = GameState{Kind: Playing}
	}

	return PositionInfo{SideToMove: p.SideToMove, InCheck: inCheck, State: state}
}
