package board

// PromotionResolver is the two-stage handle returned by Move.Apply when a
// pawn move reaches the last rank: the successor position exists but the
// promoted piece type has not yet been chosen (§3 promotion_pending, §4.7).
// Side to move has not been toggled yet either.
type PromotionResolver struct {
	position *Position
}

// Pending returns the square of the pawn awaiting promotion.
func (r *PromotionResolver) Pending() Square {
	return r.position.PromotionPending
}

func (r *PromotionResolver) resolve(kind PieceType) *Position {
	pos := r.position.Copy()
	sq := pos.PromotionPending
	mover := pos.SideToMove

	pos.Pieces[Pawn] &^= SquareBB(sq)
	pos.Pieces[kind] |= SquareBB(sq)
	pos.PromotionPending = NoSquare
	pos.SideToMove = mover.Other()
	if mover == Black {
		pos.FullMoveNumber++
	}
	finalize(pos)

	return pos
}

// ResolveKnight, ResolveBishop, ResolveRook, and ResolveQueen each finalize
// the pending promotion to the named piece type and return the completed
// successor position.
func (r *PromotionResolver) ResolveKnight() *Position { return r.resolve(Knight) }
func (r *PromotionResolver) ResolveBishop() *Position { return r.resolve(Bishop) }
func (r *PromotionResolver) ResolveRook() *Position   { return r.resolve(Rook) }
func (r *PromotionResolver) ResolveQueen() *Position  { return r.resolve(Queen) }
