package board

// CastlingRights is the two-bit right set {KingSide, QueenSide} held for one
// color. A Position carries one CastlingRights value per color (§3).
type CastlingRights uint8

const (
	KingSideCastle CastlingRights = 1 << iota
	QueenSideCastle

	NoCastling        CastlingRights = 0
	AllCastlingRights CastlingRights = KingSideCastle | QueenSideCastle
)

// Can reports whether the given side of castling is still available.
func (cr CastlingRights) Can(kingSide bool) bool {
	if kingSide {
		return cr&KingSideCastle != 0
	}
	return cr&QueenSideCastle != 0
}

func (cr CastlingRights) String() string {
	s := ""
	if cr&KingSideCastle != 0 {
		s += "K"
	}
	if cr&QueenSideCastle != 0 {
		s += "Q"
	}
	return s
}

// castleKingFrom is the king's home square, and castleKingTo/castleRookFrom/
// castleRookTo give its destination and the rook's corner/post-castle squares
// for each (color, side). Standard chess fixes these squares, so the general
// per-square castle_move/castle_rook_move masks of §4.1 specialize to small
// per-(color,side) lookups rather than full [64]-indexed tables.
var (
	castleKingFrom = [2]Square{E1, E8}
	castleKingTo   = [2][2]Square{{G1, C1}, {G8, C8}}   // [color][kingSide?0:1]
	castleRookFrom = [2][2]Square{{H1, A1}, {H8, A8}}   // [color][kingSide?0:1]
	castleRookTo   = [2][2]Square{{F1, D1}, {F8, D8}}   // [color][kingSide?0:1]

	// castleBetween: squares strictly between king and rook that must be empty.
	castleBetween [2][2]Bitboard

	// castlePath: squares the king occupies, crosses, or lands on; each must
	// be unattacked by the opponent for the castle to be legal.
	castlePath [2][2]Bitboard
)

func sideIndex(kingSide bool) int {
	if kingSide {
		return 0
	}
	return 1
}

func init() {
	for c := White; c <= Black; c++ {
		for _, ks := range []bool{true, false} {
			i := sideIndex(ks)
			kf, kt := castleKingFrom[c], castleKingTo[c][i]
			rf := castleRookFrom[c][i]

			lo, hi := kf, rf
			if lo > hi {
				lo, hi = hi, lo
			}
			var between Bitboard
			for sq := lo + 1; sq < hi; sq++ {
				between |= SquareBB(sq)
			}
			castleBetween[c][i] = between

			loK, hiK := kf, kt
			if loK > hiK {
				loK, hiK = hiK, loK
			}
			var path Bitboard
			for sq := loK; sq <= hiK; sq++ {
				path |= SquareBB(sq)
			}
			castlePath[c][i] = path
		}
	}
}

// cornerRight returns the castling right that is revoked when sq is vacated
// or captured: a rook leaving its home corner, or an enemy capturing on it
// (castle_corner of §4.1).
func cornerRight(c Color, sq Square) CastlingRights {
	if sq == castleRookFrom[c][0] {
		return KingSideCastle
	}
	if sq == castleRookFrom[c][1] {
		return QueenSideCastle
	}
	return NoCastling
}
