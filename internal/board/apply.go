package board

// MoveKind classifies a move the way §4.7 requires it classified: before any
// mutation happens, using the is_castle / is_en_passant / is_capture
// predicates.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastling
	MoveEnPassant
	MovePromotion
)

func (k MoveKind) String() string {
	switch k {
	case MoveCastling:
		return "Castling"
	case MoveEnPassant:
		return "EnPassant"
	case MovePromotion:
		return "Promotion"
	default:
		return "Normal"
	}
}

// MoveType is the descriptive, never-interpreted-by-the-engine classification
// of an applied move (§9 "Tagged variants"). Captured is the type of the
// captured piece for any capturing move (Pawn for en passant, including
// capturing promotions), and NoPieceType otherwise.
type MoveType struct {
	Kind     MoveKind
	Captured PieceType
}

// MoveOutcome is the result of Move.Apply: exactly one of Position or
// Resolver is present, matching the source's MoveOutcome = Position(p) |
// PromotionPending(resolver) (§9).
type MoveOutcome struct {
	position *Position
	resolver *PromotionResolver
}

// Position returns the successor position and true, or (nil, false) if a
// promotion choice is still pending.
func (o MoveOutcome) Position() (*Position, bool) {
	return o.position, o.position != nil
}

// Resolver returns the pending promotion resolver and true, or (nil, false)
// if the move was already fully resolved.
func (o MoveOutcome) Resolver() (*PromotionResolver, bool) {
	return o.resolver, o.resolver != nil
}

func classifyMove(pos *Position, m Move) MoveType {
	switch {
	case m.IsCastling():
		return MoveType{Kind: MoveCastling, Captured: NoPieceType}
	case m.IsEnPassant():
		return MoveType{Kind: MoveEnPassant, Captured: Pawn}
	case m.IsPromotion():
		captured := NoPieceType
		if victim := pos.PieceAt(m.To()); victim != NoPiece {
			captured = victim.Type()
		}
		return MoveType{Kind: MovePromotion, Captured: captured}
	default:
		captured := NoPieceType
		if victim := pos.PieceAt(m.To()); victim != NoPiece {
			captured = victim.Type()
		}
		return MoveType{Kind: MoveNormal, Captured: captured}
	}
}

func isDoublePush(from, to Square) bool {
	return abs(int(to)-int(from)) == 16
}

func passedOverSquare(from, to Square) Square {
	return Square((int(from) + int(to)) / 2)
}

// applyMove mutates pos according to the six steps of §4.6. Side to move is
// NOT toggled here; the caller (Move.Apply / PromotionResolver.resolve)
// handles that once promotion_pending is known.
func applyMove(pos *Position, m Move) {
	us := pos.SideToMove
	them := us.Other()
	src, dstSq := m.From(), m.To()
	p := pos.PieceAt(src).Type()

	// 2. Clear destination.
	captured := pos.PieceAt(dstSq) != NoPiece
	if captured {
		pos.removePiece(dstSq)
	}

	// 3. Move piece.
	pos.movePiece(src, dstSq)

	// 4. Castling-right updates.
	pos.CastlingRights[them] &^= cornerRight(them, dstSq)
	pos.CastlingRights[us] &^= cornerRight(us, src)
	if p == King {
		if m.IsCastling() {
			kingSide := dstSq == castleKingTo[us][sideIndex(true)]
			i := sideIndex(kingSide)
			rookFrom, rookTo := castleRookFrom[us][i], castleRookTo[us][i]
			pos.movePiece(rookFrom, rookTo)
		}
		pos.CastlingRights[us] = NoCastling
	}

	// 5. En passant and promotion (pawn only).
	pos.PromotionPending = NoSquare
	if p == Pawn {
		if m.IsEnPassant() {
			pos.removePiece(epCapturedSquare(us, pos.EnPassant))
			captured = true
		}
		pos.EnPassant = NoSquare
		if isDoublePush(src, dstSq) {
			pos.EnPassant = passedOverSquare(src, dstSq)
		}
		if dstSq.Rank() == 0 || dstSq.Rank() == 7 {
			pos.PromotionPending = dstSq
		}
	} else {
		pos.EnPassant = NoSquare
	}

	// Ambient bookkeeping (§3 counters are stored, never consulted by the
	// core rules per the Non-goals).
	if p == Pawn || captured {
		pos.HalfMoveClock = 0
	} else {
		pos.HalfMoveClock++
	}
}

func finalize(pos *Position) {
	pos.findKings()
	pos.Hash = pos.ComputeHash()
	pos.UpdateCheckers()
}

// Apply clones the receiver's position, applies m to the clone, and returns
// the outcome plus the move's classification (§4.7). The receiver is never
// mutated. Apply panics if pos has a promotion pending or if m's source
// square does not hold a piece of the side to move.
func (m Move) Apply(pos *Position) (MoveOutcome, MoveType) {
	if pos.PromotionPending != NoSquare {
		panic("board: Move.Apply called while a promotion is pending")
	}
	if piece := pos.PieceAt(m.From()); piece == NoPiece || piece.Color() != pos.SideToMove {
		panic("board: Move.Apply called with a move whose source is not a piece of the side to move")
	}
	mt := classifyMove(pos, m)

	mover := pos.SideToMove
	clone := pos.Copy()
	applyMove(clone, m)

	if clone.PromotionPending != NoSquare {
		// Side to move is not toggled while a promotion choice is pending.
		return MoveOutcome{resolver: &PromotionResolver{position: clone}}, mt
	}

	clone.SideToMove = mover.Other()
	if mover == Black {
		clone.FullMoveNumber++
	}
	finalize(clone)

	return MoveOutcome{position: clone}, mt
}
