// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package antichess implements the board representation and the rules of
// antichess: captures are compulsory, the king is an ordinary piece, and
// a player with no pieces or no legal moves wins the game.
package antichess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/mess/pkg/formats/fen"
)

// StartFEN is the initial position of an antichess game.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var ErrInvalidFEN = errors.New("antichess: invalid fen")

// Position represents an antichess position. A Position is not safe for
// concurrent use; every query should work on its own copy.
type Position struct {
	board  [SquareN]Piece
	colors [ColorN]Bitboard
	types  [PieceTypeN]Bitboard

	sideToMove Color
	enPassant  Square
	drawClock  int
	fullMoves  int

	history []state
}

// state holds the information needed to take back a move.
type state struct {
	move      Move
	captured  Piece
	enPassant Square
	drawClock int
}

// Parse parses the given FEN string into a new Position. The half-move
// clock and full-move number may be omitted, in which case they default
// to 0 and 1.
func Parse(str string) (*Position, error) {
	str = strings.TrimSpace(str)
	switch fields := len(strings.Fields(str)); fields {
	case 4:
		str += " 0 1"
	case 5:
		str += " 1"
	case 6:
	default:
		return nil, fmt.Errorf("%w: expected 4 to 6 fields, got %d", ErrInvalidFEN, fields)
	}

	record := [6]string(fen.FromString(str))

	pos := &Position{enPassant: NoSquare}
	if err := pos.setPlacement(record[0]); err != nil {
		return nil, err
	}

	switch record[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, record[1])
	}

	// Antichess has no castling, but castling rights are tolerated so that
	// FENs exported by other tools can be loaded.
	if !validCastling(record[2]) {
		return nil, fmt.Errorf("%w: bad castling rights %q", ErrInvalidFEN, record[2])
	}

	if record[3] != "-" {
		target, err := ParseSquare(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, record[3])
		}

		pos.setEnPassant(target)
	}

	var err error
	if pos.drawClock, err = strconv.Atoi(record[4]); err != nil || pos.drawClock < 0 {
		return nil, fmt.Errorf("%w: bad half-move clock %q", ErrInvalidFEN, record[4])
	}

	if pos.fullMoves, err = strconv.Atoi(record[5]); err != nil || pos.fullMoves < 0 {
		return nil, fmt.Errorf("%w: bad full-move number %q", ErrInvalidFEN, record[5])
	}

	if pos.fullMoves == 0 {
		pos.fullMoves = 1
	}

	return pos, nil
}

// validCastling checks that rights is "-" or a non-empty subsequence of
// "KQkq".
func validCastling(rights string) bool {
	if rights == "-" {
		return true
	}

	order := "KQkq"
	for _, right := range rights {
		i := strings.IndexRune(order, right)
		if i < 0 {
			return false
		}

		order = order[i+1:]
	}

	return rights != ""
}

func (pos *Position) setPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			char := row[j]

			if char >= '1' && char <= '8' {
				file += int(char - '0')
				continue
			}

			piece := Piece{Type: typeFromLetter(char), Color: White}
			if piece.Type == NoType {
				return fmt.Errorf("%w: bad piece %q", ErrInvalidFEN, char)
			}

			if char >= 'a' && char <= 'z' {
				piece.Color = Black
			}

			if file >= 8 {
				return fmt.Errorf("%w: rank %d is too long", ErrInvalidFEN, rank+1)
			}

			if piece.Type == Pawn && (rank == 0 || rank == 7) {
				return fmt.Errorf("%w: pawn on rank %d", ErrInvalidFEN, rank+1)
			}

			pos.put(NewSquare(file, rank), piece)
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	return nil
}

// setEnPassant sets the en passant target square only if the side to move
// can actually capture onto it, which keeps FENs canonical.
func (pos *Position) setEnPassant(target Square) {
	us, them := pos.sideToMove, other(pos.sideToMove)

	var pushed Square
	switch {
	case us == White && target.Rank() == 5:
		pushed = target - 8
	case us == Black && target.Rank() == 2:
		pushed = target + 8
	default:
		return
	}

	if pos.board[target] != NoPiece || pos.board[pushed] != (Piece{Type: Pawn, Color: them}) {
		return
	}

	// The squares a pawn of theirs on the target would attack are the ones
	// our pawns capture onto it from.
	if pawnAttacks[them][target]&pos.Pieces(us, Pawn) != 0 {
		pos.enPassant = target
	}
}

// FEN returns the FEN string of the position.
func (pos *Position) FEN() string {
	return fmt.Sprintf("%s %s - %s %d %d",
		pos.placement(), pos.sideToMove, pos.enPassant, pos.drawClock, pos.fullMoves)
}

// Key returns the part of the FEN which identifies the position for
// tablebase lookups: the placement, side to move and en passant square.
func (pos *Position) Key() string {
	return pos.placement() + " " + colorLetter(pos.sideToMove) + " " + pos.enPassant.String()
}

func (pos *Position) placement() string {
	var str strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.board[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				str.WriteByte('0' + byte(empty))
				empty = 0
			}

			str.WriteByte(piece.Char())
		}

		if empty > 0 {
			str.WriteByte('0' + byte(empty))
		}

		if rank > 0 {
			str.WriteByte('/')
		}
	}

	return str.String()
}

func (pos *Position) String() string {
	return pos.FEN()
}

// SideToMove returns the color of the player to move.
func (pos *Position) SideToMove() Color {
	return pos.sideToMove
}

// EnPassant returns the en passant target square, or NoSquare.
func (pos *Position) EnPassant() Square {
	return pos.enPassant
}

// HalfMoveClock returns the number of half-moves since the last capture
// or pawn move, which drives the 50-move rule.
func (pos *Position) HalfMoveClock() int {
	return pos.drawClock
}

// FullMoveNumber returns the full-move number of the position.
func (pos *Position) FullMoveNumber() int {
	return pos.fullMoves
}

// PieceOn returns the piece on the given square.
func (pos *Position) PieceOn(sq Square) Piece {
	return pos.board[sq]
}

// Pieces returns the squares of the given color's pieces of a type.
func (pos *Position) Pieces(c Color, t PieceType) Bitboard {
	return pos.colors[c] & pos.types[t]
}

// Occupied returns the squares of all the pieces of the given color.
func (pos *Position) Occupied(c Color) Bitboard {
	return pos.colors[c]
}

// PieceCount returns the number of pieces on the board.
func (pos *Position) PieceCount() int {
	return (pos.colors[White] | pos.colors[Black]).Count()
}

// Copy returns an independent copy of the position without its move
// history.
func (pos *Position) Copy() *Position {
	clone := *pos
	clone.history = nil
	return &clone
}

func (pos *Position) put(sq Square, piece Piece) {
	pos.board[sq] = piece
	pos.colors[piece.Color] |= sq.Bitboard()
	pos.types[piece.Type] |= sq.Bitboard()
}

func (pos *Position) remove(sq Square) Piece {
	piece := pos.board[sq]
	if piece == NoPiece {
		return piece
	}

	pos.board[sq] = NoPiece
	pos.colors[piece.Color] &^= sq.Bitboard()
	pos.types[piece.Type] &^= sq.Bitboard()
	return piece
}

// MakeMove plays the given move on the board. The move must be legal or
// the null move. Every MakeMove must be paired with an UnmakeMove before
// the position is reused for something else.
func (pos *Position) MakeMove(move Move) {
	pos.history = append(pos.history, state{
		move:      move,
		enPassant: pos.enPassant,
		drawClock: pos.drawClock,
	})
	undo := &pos.history[len(pos.history)-1]

	us := pos.sideToMove
	pos.enPassant = NoSquare
	pos.drawClock++

	if move != NullMove {
		piece := pos.remove(move.From)
		if piece.Type == Pawn {
			pos.drawClock = 0
		}

		switch {
		case move.Flags&EnPassant != 0:
			undo.captured = pos.remove(enPassantVictim(move, us))
		case move.IsCapture():
			undo.captured = pos.remove(move.To)
		}

		if move.IsCapture() {
			pos.drawClock = 0
		}

		if move.IsPromotion() {
			piece.Type = move.Promotion
		}

		pos.put(move.To, piece)
	}

	if us == Black {
		pos.fullMoves++
	}

	pos.sideToMove = other(us)

	if move.Flags&DoublePush != 0 {
		pos.setEnPassant(Square((int(move.From) + int(move.To)) / 2))
	}
}

// UnmakeMove takes back the last move made with MakeMove.
func (pos *Position) UnmakeMove() {
	last := len(pos.history) - 1
	undo := pos.history[last]
	pos.history = pos.history[:last]

	pos.sideToMove = other(pos.sideToMove)
	us := pos.sideToMove

	if us == Black {
		pos.fullMoves--
	}

	pos.enPassant = undo.enPassant
	pos.drawClock = undo.drawClock

	move := undo.move
	if move == NullMove {
		return
	}

	piece := pos.remove(move.To)
	if move.IsPromotion() {
		piece.Type = Pawn
	}
	pos.put(move.From, piece)

	if undo.captured != NoPiece {
		target := move.To
		if move.Flags&EnPassant != 0 {
			target = enPassantVictim(move, us)
		}

		pos.put(target, undo.captured)
	}
}

// enPassantVictim returns the square of the pawn captured en passant.
func enPassantVictim(move Move, us Color) Square {
	if us == White {
		return move.To - 8
	}

	return move.To + 8
}
