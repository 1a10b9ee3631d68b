package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN creates a game state from a FEN string. The placement field is
// required; missing trailing fields default to "w - - 0 1".
func FromFEN(fen string, opts ...Option) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 || len(parts) > 6 {
		return nil, fmt.Errorf("FEN %q: %w", fen, errors.ErrInvalidFEN)
	}

	s := NewGameState(opts...)
	s.castling = NoCastlingRights()

	if err := parsePiecePositions(s.board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(s, parts); err != nil {
		return nil, err
	}
	if len(parts) >= 3 {
		rights, err := ParseCastlingRights(parts[2])
		if err != nil {
			return nil, err
		}
		s.castling = rights
	}
	if len(parts) >= 4 {
		target, err := ParseEnPassantTarget(parts[3])
		if err != nil {
			return nil, err
		}
		s.enPassant = target
	}
	if err := parseClocks(s, parts); err != nil {
		return nil, err
	}
	return s, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	fenErr := func() error {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
	}

	rank := chess.LastRank
	col := chess.FirstCol
	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.LastCol+1 || rank == chess.FirstRank {
				return fenErr()
			}
			rank--
			col = chess.FirstCol
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
			if col > chess.LastCol+1 {
				return fenErr()
			}
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind || col > chess.LastCol {
				return fenErr()
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if err := board.Add(chess.NewPiece(kind, colour, chess.Pos(col, rank))); err != nil {
				return fenErr()
			}
			col++
		}
	}
	if rank != chess.FirstRank || col != chess.LastCol+1 {
		return fenErr()
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.active = chess.White
	case "b":
		s.active = chess.Black
	default:
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Value: parts[1]}
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(s *GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Value: parts[4]}
		}
		s.clock = HalfMoveClock(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Value: parts[5]}
		}
		s.fullMove = n
	}
	return nil
}

// ToFEN encodes s as a FEN string.
func ToFEN(s *GameState) string {
	var sb strings.Builder
	sb.WriteString(s.board.Placement())
	sb.WriteByte(' ')
	sb.WriteByte(sideLetter(s.active))
	sb.WriteByte(' ')
	sb.WriteString(s.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", s.clock, s.fullMove)
	return sb.String()
}

// FEN is a method form of ToFEN.
func (s *GameState) FEN() string {
	return ToFEN(s)
}
