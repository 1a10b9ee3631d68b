package chess

import (
	"fmt"
	"unicode"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Piece is a chessman on (or about to be placed on) the board. Position is
// owned by the Board: it is only updated through Board.Add/Remove/Move.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Position
}

// NewPiece creates a piece of the given kind and colour at pos.
func NewPiece(kind Kind, colour Colour, pos Position) *Piece {
	return &Piece{Kind: kind, Colour: colour, Position: pos}
}

// pieceTraits is the per-kind configuration: movement offsets and the
// special capabilities of the kind.
type pieceTraits struct {
	moves    []Offset
	captures []Offset // nil means "same as moves"
	castles  bool     // initiates castling
	partner  bool     // may be the castling partner
	promotes bool
}

// pieceRegistry maps every kind to its traits. Pawn offsets depend on
// colour and rank and are computed in MoveOffsets/CaptureOffsets.
var pieceRegistry = map[Kind]pieceTraits{
	Pawn:   {promotes: true},
	Knight: {moves: steps(knightJumps)},
	Bishop: {moves: slides(diagonalDirs)},
	Rook:   {moves: slides(orthogonalDirs), partner: true},
	Queen:  {moves: slides(orthogonalDirs, diagonalDirs)},
	King:   {moves: steps(orthogonalDirs, diagonalDirs), castles: true},
}

func (p *Piece) traits() pieceTraits {
	t, ok := pieceRegistry[p.Kind]
	if !ok {
		panic(fmt.Errorf("piece kind %v: %w", p.Kind, errors.ErrNotImplemented))
	}
	return t
}

// MoveOffsets returns the offsets used for non-capturing moves. A pawn on its
// start rank may advance two squares.
func (p *Piece) MoveOffsets() []Offset {
	if p.Kind == Pawn {
		dir := ColourOffset(p.Colour)
		if p.Position.Rank == PawnRank(p.Colour) {
			return []Offset{SlideN(0, dir, 2)}
		}
		return []Offset{Step(0, dir)}
	}
	return p.traits().moves
}

// CaptureOffsets returns the offsets used for captures. They differ from the
// move offsets only for pawns.
func (p *Piece) CaptureOffsets() []Offset {
	if p.Kind == Pawn {
		dir := ColourOffset(p.Colour)
		return []Offset{Step(-1, dir), Step(1, dir)}
	}
	t := p.traits()
	if t.captures != nil {
		return t.captures
	}
	return t.moves
}

// InitiatesCastling reports whether the piece can start a castling move.
func (p *Piece) InitiatesCastling() bool {
	return p.traits().castles
}

// CastlingPartner reports whether the piece can be castled with.
func (p *Piece) CastlingPartner() bool {
	return p.traits().partner
}

// CanPromote reports whether the piece promotes on the far rank.
func (p *Piece) CanPromote() bool {
	return p.traits().promotes
}

// PromotionRank is the rank on which a promoting piece of this colour promotes.
func (p *Piece) PromotionRank() Rank {
	return HomeRank(p.Colour.Opposite())
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Glyph returns the Unicode chess symbol for display.
func (p *Piece) Glyph() string {
	glyphs := map[Kind][2]string{
		King:   {"♚", "♔"},
		Queen:  {"♛", "♕"},
		Rook:   {"♜", "♖"},
		Bishop: {"♝", "♗"},
		Knight: {"♞", "♘"},
		Pawn:   {"♟", "♙"},
	}
	g, ok := glyphs[p.Kind]
	if !ok {
		return "?"
	}
	return g[p.Colour]
}

// String returns e.g. "White Knight on f3".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Position)
}
