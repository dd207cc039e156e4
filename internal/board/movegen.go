package board

// checkResolution implements the check-resolution mask of §4.4: the set of
// destination squares a non-king piece on sq may move to without leaving its
// own king in check. Because occupancy has sq itself removed before
// computing attackers of the king, a pinned piece's mask collapses to its
// pin line automatically — no separate pin detection is needed.
func (p *Position) checkResolution(sq Square) Bitboard {
	us := p.SideToMove
	them := us.Other()
	k := p.KingSquare[us]

	occPrime := p.AllOccupied &^ SquareBB(sq)
	attackers := attackersOf(p, k, them, occPrime)

	switch cnt := attackers.PopCount(); {
	case cnt == 0:
		return Universe
	case cnt > 1:
		return Empty
	default:
		attackerSq := attackers.LSB()
		pt := p.PieceAt(attackerSq).Type()
		if pt != Bishop && pt != Rook && pt != Queen {
			return attackers
		}
		d := dirBetween[k][attackerSq]
		if d == NoDirection {
			return attackers
		}
		segment := rayBB[k][d] & rayBB[attackerSq][d.Opposite()]
		return attackers | segment
	}
}

// epCapturedSquare returns the square of the pawn removed by an en-passant
// capture made by a pawn of color us against target epTarget.
func epCapturedSquare(us Color, epTarget Square) Square {
	if us == White {
		return epTarget - 8
	}
	return epTarget + 8
}

// enPassantRevealsCheck is the horizontal discovered-check test of §4.5: with
// both the capturing and captured pawns removed, does an enemy rook or queen
// now attack the king along the shared rank?
func (p *Position) enPassantRevealsCheck(fromSq Square) bool {
	us := p.SideToMove
	them := us.Other()
	k := p.KingSquare[us]
	if k.Rank() != fromSq.Rank() {
		return false
	}
	capturedSq := epCapturedSquare(us, p.EnPassant)
	occ := p.AllOccupied &^ SquareBB(fromSq) &^ SquareBB(capturedSq)
	attackers := RookAttacks(k, occ) & (p.byColor(them, Rook) | p.byColor(them, Queen))
	return attackers&RankMask[k.Rank()] != 0
}

// pawnDestinations implements the pawn generator of §4.5.
func (p *Position) pawnDestinations(sq Square) Bitboard {
	us := p.SideToMove
	res := p.checkResolution(sq)

	captures := pawnAttacks[us][sq] & p.Occupied[us.Other()]
	dest := captures & res

	if p.EnPassant != NoSquare && pawnAttacks[us][sq]&SquareBB(p.EnPassant) != 0 {
		if !p.enPassantRevealsCheck(sq) {
			epBit := SquareBB(p.EnPassant)
			capturedSq := epCapturedSquare(us, p.EnPassant)
			if res&epBit != 0 || res&SquareBB(capturedSq) != 0 {
				dest |= epBit
			}
		}
	}

	empty := ^p.AllOccupied
	bb := SquareBB(sq)
	var push1, push2 Bitboard
	if us == White {
		push1 = bb.North() & empty
		push2 = (push1 & Rank3).North() & empty
	} else {
		push1 = bb.South() & empty
		push2 = (push1 & Rank6).South() & empty
	}
	dest |= (push1 | push2) & res

	return dest
}

// kingDestinations implements the king generator of §4.5, including castling.
func (p *Position) kingDestinations(sq Square) Bitboard {
	us := p.SideToMove
	them := us.Other()

	candidates := KingAttacks(sq) &^ p.Occupied[us]
	occWithoutKing := p.AllOccupied &^ SquareBB(sq)

	var dest Bitboard
	c := candidates
	for c != 0 {
		d := c.PopLSB()
		if attackersOf(p, d, them, occWithoutKing) == 0 {
			dest |= SquareBB(d)
		}
	}

	if !p.InCheck() {
		for _, kingSide := range [2]bool{true, false} {
			i := sideIndex(kingSide)
			if !p.CastlingRights[us].Can(kingSide) {
				continue
			}
			if p.AllOccupied&castleBetween[us][i] != 0 {
				continue
			}
			path := castlePath[us][i]
			blocked := false
			for pc := path; pc != 0; {
				psq := pc.PopLSB()
				if attackersOf(p, psq, them, p.AllOccupied) != 0 {
					blocked = true
					break
				}
			}
			if !blocked {
				dest |= SquareBB(castleKingTo[us][i])
			}
		}
	}

	return dest
}

// LegalDestinations returns the legal destination bitboard for the piece on
// sq, and false if sq is empty or holds a piece not belonging to the side to
// move (§4.5's "the generator only queries pieces whose color is that
// side").
func (p *Position) LegalDestinations(sq Square) (Bitboard, bool) {
	piece := p.PieceAt(sq)
	if piece == NoPiece || piece.Color() != p.SideToMove {
		return 0, false
	}

	us := p.SideToMove
	switch piece.Type() {
	case Knight:
		return KnightAttacks(sq) &^ p.Occupied[us] & p.checkResolution(sq), true
	case Bishop:
		return BishopAttacks(sq, p.AllOccupied) &^ p.Occupied[us] & p.checkResolution(sq), true
	case Rook:
		return RookAttacks(sq, p.AllOccupied) &^ p.Occupied[us] & p.checkResolution(sq), true
	case Queen:
		return QueenAttacks(sq, p.AllOccupied) &^ p.Occupied[us] & p.checkResolution(sq), true
	case Pawn:
		return p.pawnDestinations(sq), true
	case King:
		return p.kingDestinations(sq), true
	default:
		return 0, false
	}
}

// expandMoves turns a destination bitboard for the piece on from into Move
// values, classifying promotion/en-passant/castling as it goes.
func (p *Position) expandMoves(ml *MoveList, from Square, dest Bitboard) {
	pt := p.PieceAt(from).Type()
	for dest != 0 {
		to := dest.PopLSB()
		switch {
		case pt == Pawn && p.EnPassant != NoSquare && to == p.EnPassant:
			ml.Add(NewEnPassant(from, to))
		case pt == Pawn && (to.Rank() == 0 || to.Rank() == 7):
			ml.Add(NewPromotion(from, to))
		case pt == King && abs(int(to)-int(from)) == 2:
			ml.Add(NewCastling(from, to))
		default:
			ml.Add(NewMove(from, to))
		}
	}
}

// GenerateLegalMoves enumerates every legal move for the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	us := p.SideToMove
	for own := p.Occupied[us]; own != 0; {
		from := own.PopLSB()
		dest, ok := p.LegalDestinations(from)
		if !ok || dest == 0 {
			continue
		}
		p.expandMoves(ml, from, dest)
	}
	return ml
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found (unlike Info, which per §4.7 is
// specified to sum every square's move count).
func (p *Position) HasLegalMoves() bool {
	us := p.SideToMove
	for own := p.Occupied[us]; own != 0; {
		from := own.PopLSB()
		dest, ok := p.LegalDestinations(from)
		if ok && dest != 0 {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is in check with no legal
// moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
