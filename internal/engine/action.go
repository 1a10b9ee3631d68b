package engine

import (
	"fmt"
	"unicode"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// ActionKind tags the closed set of action variants.
type ActionKind int

const (
	MoveAction ActionKind = iota
	CaptureAction
	EnPassantAction
	CastlingAction
	PromoteAction
	PromoteCaptureAction
)

// actionKindNames is the static registry of variant tags.
var actionKindNames = map[ActionKind]string{
	MoveAction:           "move",
	CaptureAction:        "capture",
	EnPassantAction:      "en-passant",
	CastlingAction:       "castling",
	PromoteAction:        "promote",
	PromoteCaptureAction: "promote-capture",
}

// String returns the registry name of the kind.
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("action kind %q: %w", s, errors.ErrNotImplemented)
}

// Action is a reversible board transition. Actions are immutable once built
// and are the only code that moves pieces during play.
type Action interface {
	Kind() ActionKind
	// Piece is the moving piece (the king for castling, the pawn for promotions).
	Piece() *chess.Piece
	From() chess.Position
	To() chess.Position
	// Captured is the captured piece, or nil.
	Captured() *chess.Piece
	Apply(b *chess.Board)
	Undo(b *chess.Board)
	// Notation is the short algebraic form, e.g. "Qxd4" or "0-0".
	Notation() string
	// UCI is the long algebraic form, e.g. "e7e8q".
	UCI() string
}

// Promotion is implemented by Promote and PromoteCapture.
type Promotion interface {
	Action
	// PromotesTo is the chosen kind, or chess.NoKind while unresolved.
	PromotesTo() chess.Kind
	// WithPromotion returns a copy of the action promoting to kind.
	WithPromotion(kind chess.Kind) (Action, error)
}

// IsCapture reports whether a removes an enemy piece.
func IsCapture(a Action) bool {
	return a.Captured() != nil
}

// IsUnresolvedPromotion reports whether a is a promotion with no piece chosen.
func IsUnresolvedPromotion(a Action) bool {
	p, ok := a.(Promotion)
	return ok && p.PromotesTo() == chess.NoKind
}

// mustMove moves a piece as part of applying an action. A failure means the
// action does not belong to the current position.
func mustMove(b *chess.Board, from, to chess.Position) {
	if err := b.Move(from, to); err != nil {
		panic(fmt.Errorf("%w: %w", errors.ErrIllegalAction, err))
	}
}

func mustAdd(b *chess.Board, p *chess.Piece) {
	if err := b.Add(p); err != nil {
		panic(fmt.Errorf("%w: %w", errors.ErrIllegalAction, err))
	}
}

func mustRemove(b *chess.Board, pos chess.Position) *chess.Piece {
	p := b.Remove(pos)
	if p == nil {
		panic(fmt.Errorf("%w: removing from %s: %w", errors.ErrIllegalAction, pos, errors.ErrEmptySquare))
	}
	return p
}

func pieceLetter(p *chess.Piece) string {
	if p.Kind == chess.Pawn {
		return ""
	}
	return string(p.Kind.Letter())
}

func uci(from, to chess.Position) string {
	return from.String() + to.String()
}

// Move is a quiet move to an empty square.
type Move struct {
	piece    *chess.Piece
	from, to chess.Position
}

// NewMove creates a quiet move of piece from its current square to to.
func NewMove(piece *chess.Piece, to chess.Position) *Move {
	return &Move{piece: piece, from: piece.Position, to: to}
}

func (m *Move) Kind() ActionKind { return MoveAction }
func (m *Move) Piece() *chess.Piece { return m.piece }
func (m *Move) From() chess.Position { return m.from }
func (m *Move) To() chess.Position { return m.to }
func (m *Move) Captured() *chess.Piece { return nil }
func (m *Move) Apply(b *chess.Board) { mustMove(b, m.from, m.to) }
func (m *Move) Undo(b *chess.Board) { mustMove(b, m.to, m.from) }
func (m *Move) Notation() string { return pieceLetter(m.piece) + m.to.String() }
func (m *Move) UCI() string { return uci(m.from, m.to) }
func (m *Move) String() string { return m.Notation() }

// Capture takes the enemy piece standing on the destination square.
type Capture struct {
	piece, captured *chess.Piece
	from, to        chess.Position
}

// NewCapture creates a capture of captured by piece.
func NewCapture(piece, captured *chess.Piece) *Capture {
	return &Capture{piece: piece, captured: captured, from: piece.Position, to: captured.Position}
}

func (c *Capture) Kind() ActionKind { return CaptureAction }
func (c *Capture) Piece() *chess.Piece { return c.piece }
func (c *Capture) From() chess.Position { return c.from }
func (c *Capture) To() chess.Position { return c.to }
func (c *Capture) Captured() *chess.Piece { return c.captured }
func (c *Capture) UCI() string { return uci(c.from, c.to) }
func (c *Capture) String() string { return c.Notation() }

func (c *Capture) Apply(b *chess.Board) {
	mustRemove(b, c.to)
	mustMove(b, c.from, c.to)
}

func (c *Capture) Undo(b *chess.Board) {
	mustMove(b, c.to, c.from)
	mustAdd(b, c.captured)
}

func (c *Capture) Notation() string {
	return captureNotation(c.piece, c.from, c.to)
}

func captureNotation(p *chess.Piece, from, to chess.Position) string {
	if p.Kind == chess.Pawn {
		return string(byte(from.Col)) + "x" + to.String()
	}
	return pieceLetter(p) + "x" + to.String()
}

// EnPassant is a pawn capture onto the en passant target square. The
// captured pawn stands beside the capturing pawn, not on the target.
type EnPassant struct {
	piece, captured *chess.Piece
	from, to        chess.Position
}

// NewEnPassant creates an en passant capture of captured landing on target.
func NewEnPassant(piece *chess.Piece, target chess.Position, captured *chess.Piece) *EnPassant {
	return &EnPassant{piece: piece, captured: captured, from: piece.Position, to: target}
}

func (e *EnPassant) Kind() ActionKind { return EnPassantAction }
func (e *EnPassant) Piece() *chess.Piece { return e.piece }
func (e *EnPassant) From() chess.Position { return e.from }
func (e *EnPassant) To() chess.Position { return e.to }
func (e *EnPassant) Captured() *chess.Piece { return e.captured }
func (e *EnPassant) UCI() string { return uci(e.from, e.to) }
func (e *EnPassant) String() string { return e.Notation() }

func (e *EnPassant) Apply(b *chess.Board) {
	mustRemove(b, e.captured.Position)
	mustMove(b, e.from, e.to)
}

func (e *EnPassant) Undo(b *chess.Board) {
	mustMove(b, e.to, e.from)
	mustAdd(b, e.captured)
}

func (e *EnPassant) Notation() string {
	return captureNotation(e.piece, e.from, e.to) + " e.p."
}

// Castling moves the king two squares toward a rook and the rook onto the
// square the king crossed.
type Castling struct {
	king, rook       *chess.Piece
	kingFrom, kingTo chess.Position
	rookFrom, rookTo chess.Position
}

// NewCastling creates a castling action for king and rook.
func NewCastling(king, rook *chess.Piece, kingTo, rookTo chess.Position) *Castling {
	return &Castling{
		king: king, rook: rook,
		kingFrom: king.Position, kingTo: kingTo,
		rookFrom: rook.Position, rookTo: rookTo,
	}
}

func (c *Castling) Kind() ActionKind { return CastlingAction }
func (c *Castling) Piece() *chess.Piece { return c.king }
func (c *Castling) From() chess.Position { return c.kingFrom }
func (c *Castling) To() chess.Position { return c.kingTo }
func (c *Castling) Captured() *chess.Piece { return nil }
func (c *Castling) UCI() string { return uci(c.kingFrom, c.kingTo) }
func (c *Castling) String() string { return c.Notation() }

// Rook returns the castling partner.
func (c *Castling) Rook() *chess.Piece { return c.rook }

// RookFrom returns the rook's origin square.
func (c *Castling) RookFrom() chess.Position { return c.rookFrom }

// RookTo returns the rook's destination square.
func (c *Castling) RookTo() chess.Position { return c.rookTo }

// Side reports which wing the castling happens on.
func (c *Castling) Side() CastlingSide {
	if c.rookFrom.Col > c.kingFrom.Col {
		return KingSide
	}
	return QueenSide
}

func (c *Castling) Apply(b *chess.Board) {
	mustMove(b, c.kingFrom, c.kingTo)
	mustMove(b, c.rookFrom, c.rookTo)
}

func (c *Castling) Undo(b *chess.Board) {
	mustMove(b, c.rookTo, c.rookFrom)
	mustMove(b, c.kingTo, c.kingFrom)
}

func (c *Castling) Notation() string {
	if c.Side() == KingSide {
		return "0-0"
	}
	return "0-0-0"
}

// promotion holds what Promote and PromoteCapture share. While kind is
// chess.NoKind the pawn itself stands in on the destination square, which
// is enough for legality probing but is rejected by GameState.ApplyAction.
type promotion struct {
	pawn     *chess.Piece
	from, to chess.Position
	kind     chess.Kind
	promoted *chess.Piece
}

func newPromotion(pawn *chess.Piece, to chess.Position, kind chess.Kind) (promotion, error) {
	pr := promotion{pawn: pawn, from: pawn.Position, to: to, kind: kind}
	if kind == chess.NoKind {
		return pr, nil
	}
	if !kind.IsPromotionChoice() {
		return pr, fmt.Errorf("promoting to %v: %w", kind, errors.ErrInvalidPromotion)
	}
	pr.promoted = chess.NewPiece(kind, pawn.Colour, to)
	return pr, nil
}

func (p *promotion) place(b *chess.Board) {
	mustRemove(b, p.from)
	if p.promoted == nil {
		p.pawn.Position = p.to
		mustAdd(b, p.pawn)
		return
	}
	mustAdd(b, p.promoted)
}

func (p *promotion) lift(b *chess.Board) {
	mustRemove(b, p.to)
	p.pawn.Position = p.from
	mustAdd(b, p.pawn)
}

func (p *promotion) suffix() string {
	if p.kind == chess.NoKind {
		return "=?"
	}
	return "=" + string(p.kind.Letter())
}

func (p *promotion) uci() string {
	s := uci(p.from, p.to)
	if p.kind != chess.NoKind {
		s += string(unicode.ToLower(rune(p.kind.Letter())))
	}
	return s
}

// Promote is a pawn advance onto the last rank.
type Promote struct {
	promotion
}

// NewPromote creates a promotion of pawn on to; kind may be chess.NoKind to
// leave the choice to the player.
func NewPromote(pawn *chess.Piece, to chess.Position, kind chess.Kind) (*Promote, error) {
	pr, err := newPromotion(pawn, to, kind)
	if err != nil {
		return nil, err
	}
	return &Promote{promotion: pr}, nil
}

func (p *Promote) Kind() ActionKind { return PromoteAction }
func (p *Promote) Piece() *chess.Piece { return p.pawn }
func (p *Promote) From() chess.Position { return p.from }
func (p *Promote) To() chess.Position { return p.to }
func (p *Promote) Captured() *chess.Piece { return nil }
func (p *Promote) PromotesTo() chess.Kind { return p.kind }
func (p *Promote) Apply(b *chess.Board) { p.place(b) }
func (p *Promote) Undo(b *chess.Board) { p.lift(b) }
func (p *Promote) Notation() string { return p.to.String() + p.suffix() }
func (p *Promote) UCI() string { return p.uci() }
func (p *Promote) String() string { return p.Notation() }

// WithPromotion returns the same promotion resolved to kind.
func (p *Promote) WithPromotion(kind chess.Kind) (Action, error) {
	if kind == chess.NoKind {
		return nil, fmt.Errorf("resolving %s: %w", p.Notation(), errors.ErrInvalidPromotion)
	}
	pr, err := newPromotion(p.pawn, p.to, kind)
	if err != nil {
		return nil, err
	}
	pr.from = p.from
	return &Promote{promotion: pr}, nil
}

// PromoteCapture is a pawn capture onto the last rank.
type PromoteCapture struct {
	promotion
	captured *chess.Piece
}

// NewPromoteCapture creates a capturing promotion; kind may be chess.NoKind.
func NewPromoteCapture(pawn, captured *chess.Piece, kind chess.Kind) (*PromoteCapture, error) {
	pr, err := newPromotion(pawn, captured.Position, kind)
	if err != nil {
		return nil, err
	}
	return &PromoteCapture{promotion: pr, captured: captured}, nil
}

func (p *PromoteCapture) Kind() ActionKind { return PromoteCaptureAction }
func (p *PromoteCapture) Piece() *chess.Piece { return p.pawn }
func (p *PromoteCapture) From() chess.Position { return p.from }
func (p *PromoteCapture) To() chess.Position { return p.to }
func (p *PromoteCapture) Captured() *chess.Piece { return p.captured }
func (p *PromoteCapture) PromotesTo() chess.Kind { return p.kind }
func (p *PromoteCapture) UCI() string { return p.uci() }
func (p *PromoteCapture) String() string { return p.Notation() }

func (p *PromoteCapture) Apply(b *chess.Board) {
	mustRemove(b, p.to)
	p.place(b)
}

func (p *PromoteCapture) Undo(b *chess.Board) {
	p.lift(b)
	mustAdd(b, p.captured)
}

func (p *PromoteCapture) Notation() string {
	return captureNotation(p.pawn, p.from, p.to) + p.suffix()
}

// WithPromotion returns the same capture resolved to kind.
func (p *PromoteCapture) WithPromotion(kind chess.Kind) (Action, error) {
	if kind == chess.NoKind {
		return nil, fmt.Errorf("resolving %s: %w", p.Notation(), errors.ErrInvalidPromotion)
	}
	pr, err := newPromotion(p.pawn, p.to, kind)
	if err != nil {
		return nil, err
	}
	pr.from = p.from
	return &PromoteCapture{promotion: pr, captured: p.captured}, nil
}
