package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a whitespace-separated FEN string of four to six fields
// into a Position (§6); omitted half-move and full-move fields default to 0
// and 1. Structural invalidity is reported as an error rather than ever
// producing a Position that breaks the invariants of §3.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{
		EnPassant:        NoSquare,
		PromotionPending: NoSquare,
		FullMoveNumber:   1,
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square: %s", parts[3])
		}
		// The pawn that just double-pushed stands one rank beyond the target.
		epRank, pawnSq := 5, sq-8
		if pos.SideToMove == Black {
			epRank, pawnSq = 2, sq+8
		}
		if sq.Rank() != epRank || pos.PieceAt(pawnSq) != NewPiece(Pawn, pos.SideToMove.Other()) {
			return nil, fmt.Errorf("board: en passant square %s has no double-pushed pawn beside it", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	pos.findKings()
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	pos.Hash = pos.ComputeHash()
	pos.UpdateCheckers()

	return pos, nil
}

// parsePiecePlacement parses the piece-placement field, rank 8 down to rank
// 1, file a through h within each rank. File 0 is the a-file here — the
// conventional orientation the rest of this package uses throughout, which
// §6's Open Question on FEN file ordering leaves free so long as it is
// applied consistently (see DESIGN.md).
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("board: invalid piece character: %c", c)
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("board: invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the KQkq castling-availability field.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights[White] |= KingSideCastle
		case 'Q':
			pos.CastlingRights[White] |= QueenSideCastle
		case 'k':
			pos.CastlingRights[Black] |= KingSideCastle
		case 'q':
			pos.CastlingRights[Black] |= QueenSideCastle
		default:
			return fmt.Errorf("board: invalid castling character: %c", c)
		}
	}

	return nil
}

// ToFEN serializes the position back to FEN.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := p.CastlingRights[White].String() + strings.ToLower(p.CastlingRights[Black].String())
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

func castlingIndex(p *Position) int {
	return int(p.CastlingRights[White]) | int(p.CastlingRights[Black])<<2
}

// ComputeHash computes the Zobrist hash for the position from scratch.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			bb := p.byColor(c, pt)
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= zobristPiece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[castlingIndex(p)]

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}
