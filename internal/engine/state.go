package engine

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/errors"
	"github.com/abarnes1/chess-sub000/internal/hashing"
)

// Rules holds the draw thresholds a game is played under.
type Rules struct {
	// DrawHalfMoves ends the game once the half-move clock reaches it.
	DrawHalfMoves int
	// RepetitionLimit ends the game once a position occurs this many times.
	RepetitionLimit int
}

// DefaultRules returns the FIDE automatic draw thresholds: the 75-move rule
// and fivefold repetition.
func DefaultRules() Rules {
	return Rules{DrawHalfMoves: 150, RepetitionLimit: 5}
}

// Option configures a GameState.
type Option func(*GameState)

// WithRules sets the draw thresholds.
func WithRules(r Rules) Option {
	return func(s *GameState) {
		s.rules = r
	}
}

// undoRecord captures what an applied action changed outside the board.
type undoRecord struct {
	action    Action
	castling  CastlingRights
	enPassant EnPassantTarget
	clock     HalfMoveClock
	fullMove  int
	signature string
	ending    *Ending
}

// GameState is the authoritative state of one game: the board plus the
// rules' bookkeeping. It is not safe for concurrent use; use Clone to hand
// a copy to another goroutine.
type GameState struct {
	board       *chess.Board
	active      chess.Colour
	castling    CastlingRights
	enPassant   EnPassantTarget
	clock       HalfMoveClock
	fullMove    int
	repetitions *RepetitionLog
	rules       Rules
	ending      *Ending
	startFEN    string
	history     []undoRecord

	// legal caches LegalActions per colour until the next mutation.
	legal map[chess.Colour][]Action
}

// NewGameState creates a state with an empty board, White to move and all
// castling permissions held. Pieces are placed with AddPiece.
func NewGameState(opts ...Option) *GameState {
	s := &GameState{
		board:       chess.NewBoard(),
		active:      chess.White,
		castling:    NewCastlingRights(),
		fullMove:    1,
		repetitions: NewRepetitionLog(),
		rules:       DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStandardGame creates a state holding the standard starting position.
func NewStandardGame(opts ...Option) *GameState {
	s, err := FromFEN(InitialFEN, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *GameState) invalidate() {
	s.legal = nil
}

// AddPiece places a new piece during setup.
func (s *GameState) AddPiece(kind chess.Kind, colour chess.Colour, pos chess.Position) (*chess.Piece, error) {
	p := chess.NewPiece(kind, colour, pos)
	if err := s.board.Add(p); err != nil {
		return nil, err
	}
	s.invalidate()
	return p, nil
}

// RemovePiece takes a piece off the board during setup.
func (s *GameState) RemovePiece(pos chess.Position) (*chess.Piece, error) {
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	p := s.board.Remove(pos)
	if p == nil {
		return nil, fmt.Errorf("removing from %s: %w", pos, errors.ErrEmptySquare)
	}
	s.invalidate()
	return p, nil
}

// PieceAt returns the piece on pos, or nil.
func (s *GameState) PieceAt(pos chess.Position) *chess.Piece {
	return s.board.At(pos)
}

// Pieces returns value copies of the pieces on the board.
func (s *GameState) Pieces() []chess.Piece {
	return s.board.Snapshot()
}

// BoardString renders the board as a text diagram.
func (s *GameState) BoardString() string {
	return s.board.String()
}

func (s *GameState) ActiveColour() chess.Colour { return s.active }
func (s *GameState) CastlingRights() CastlingRights { return s.castling }
func (s *GameState) EnPassantTarget() EnPassantTarget { return s.enPassant }
func (s *GameState) HalfMoveClock() int { return int(s.clock) }
func (s *GameState) FullMoveNumber() int { return s.fullMove }
func (s *GameState) Rules() Rules { return s.rules }

// Ply returns the number of actions applied since the state was created.
func (s *GameState) Ply() int {
	return len(s.history)
}

// History returns the applied actions, oldest first.
func (s *GameState) History() []Action {
	out := make([]Action, len(s.history))
	for i, rec := range s.history {
		out[i] = rec.action
	}
	return out
}

// StartFEN returns the FEN of the position before the first applied action.
func (s *GameState) StartFEN() string {
	if len(s.history) == 0 {
		return ToFEN(s)
	}
	return s.startFEN
}

// Signature identifies the position for repetition purposes: placement,
// side to move, castling rights and en passant target.
func (s *GameState) Signature() string {
	return fmt.Sprintf("%s %c %s %s", s.board.Placement(), sideLetter(s.active), s.castling, s.enPassant)
}

// RepetitionCount returns how often the current position has been reached.
func (s *GameState) RepetitionCount() int {
	return s.repetitions.Count(s.Signature())
}

// ZobristKey hashes the position for transposition tables.
func (s *GameState) ZobristKey() uint64 {
	var epCol chess.Col
	if sq, ok := s.enPassant.Square(); ok {
		epCol = sq.Col
	}
	return hashing.PositionKey(s.board, s.active, s.castling.Mask(), epCol)
}

// PseudoLegalActions returns every action colour's pieces can make, ignoring
// king safety.
func (s *GameState) PseudoLegalActions(colour chess.Colour) []Action {
	var out []Action
	for _, p := range s.board.Pieces(colour) {
		out = append(out, GenerateActions(s, p)...)
	}
	return out
}

// LegalActions returns the actions of colour that do not leave its own king
// attacked. The result is cached until the state changes and must not be
// modified.
func (s *GameState) LegalActions(colour chess.Colour) []Action {
	if cached, ok := s.legal[colour]; ok {
		return cached
	}
	legal := []Action{}
	for _, a := range s.PseudoLegalActions(colour) {
		if s.keepsKingSafe(a, colour) {
			legal = append(legal, a)
		}
	}
	if s.legal == nil {
		s.legal = make(map[chess.Colour][]Action, 2)
	}
	s.legal[colour] = legal
	return legal
}

// LegalActionsFrom returns the legal actions of the piece on pos.
func (s *GameState) LegalActionsFrom(pos chess.Position) []Action {
	p := s.board.At(pos)
	if p == nil {
		return nil
	}
	var out []Action
	for _, a := range s.LegalActions(p.Colour) {
		if a.From() == pos {
			out = append(out, a)
		}
	}
	return out
}

// keepsKingSafe probes a on the board and reports whether colour's king is
// unattacked afterwards. The board is restored before returning.
func (s *GameState) keepsKingSafe(a Action, colour chess.Colour) bool {
	a.Apply(s.board)
	defer a.Undo(s.board)
	return !s.kingAttacked(colour)
}

func (s *GameState) kingAttacked(colour chess.Colour) bool {
	king := s.board.King(colour)
	if king == nil {
		return false
	}
	return ThreatsAgainst(s.board, colour).Covers(king.Position)
}

// InCheck reports whether colour's king is attacked. A side with no king is
// never in check.
func (s *GameState) InCheck(colour chess.Colour) bool {
	return s.kingAttacked(colour)
}

// IsLegal reports whether a is among the active colour's legal actions,
// comparing by origin, destination and kind.
func (s *GameState) IsLegal(a Action) bool {
	for _, legal := range s.LegalActions(s.active) {
		if legal.From() == a.From() && legal.To() == a.To() && legal.Kind() == a.Kind() {
			return true
		}
	}
	return false
}

// ApplyAction plays a, which must come from LegalActions (with any promotion
// resolved), and then evaluates whether the game has ended.
func (s *GameState) ApplyAction(a Action) error {
	if s.ending != nil {
		return &errors.ActionError{Err: errors.ErrGameOver, Ply: s.Ply() + 1, Action: a.Notation()}
	}
	if IsUnresolvedPromotion(a) {
		return &errors.ActionError{Err: errors.ErrUnresolvedPromotion, Ply: s.Ply() + 1, Action: a.Notation()}
	}
	if a.Piece().Colour != s.active {
		return &errors.ActionError{
			Err:    fmt.Errorf("%s to move: %w", s.active, errors.ErrIllegalAction),
			Ply:    s.Ply() + 1,
			Action: a.Notation(),
		}
	}
	s.apply(a)
	s.CheckEnding()
	return nil
}

// apply performs the state transition without ending checks.
func (s *GameState) apply(a Action) {
	if len(s.history) == 0 {
		s.startFEN = ToFEN(s)
	}
	s.history = append(s.history, undoRecord{
		action:    a,
		castling:  s.castling,
		enPassant: s.enPassant,
		clock:     s.clock,
		fullMove:  s.fullMove,
		ending:    s.ending,
	})

	a.Apply(s.board)
	s.castling.Update(a)
	s.enPassant = enPassantTargetAfter(a)
	s.clock = s.clock.After(a)
	if s.active == chess.Black {
		s.fullMove++
	}
	s.active = s.active.Opposite()

	sig := s.Signature()
	s.repetitions.Record(sig)
	s.history[len(s.history)-1].signature = sig
	s.invalidate()
}

// UndoAction reverts the most recent action and returns it; ok is false if
// there is nothing to undo.
func (s *GameState) UndoAction() (Action, bool) {
	if len(s.history) == 0 {
		return nil, false
	}
	rec := s.history[len(s.history)-1]
	s.undo()
	return rec.action, true
}

func (s *GameState) undo() {
	rec := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.repetitions.Forget(rec.signature)
	rec.action.Undo(s.board)
	s.castling = rec.castling
	s.enPassant = rec.enPassant
	s.clock = rec.clock
	s.fullMove = rec.fullMove
	s.active = s.active.Opposite()
	s.ending = rec.ending
	s.invalidate()
}

// Clone returns an independent deep copy of the position and bookkeeping.
// The copy has no history, so it cannot undo past the point of cloning.
func (s *GameState) Clone() *GameState {
	return &GameState{
		board:       s.board.Copy(),
		active:      s.active,
		castling:    s.castling,
		enPassant:   s.enPassant,
		clock:       s.clock,
		fullMove:    s.fullMove,
		repetitions: s.repetitions.Clone(),
		rules:       s.rules,
		ending:      s.ending,
	}
}

// FindAction looks up a legal action of the side to move by its UCI text
// ("e2e4", "e7e8q"). A promotion without a piece letter is an error.
func (s *GameState) FindAction(uciText string) (Action, error) {
	if len(uciText) != 4 && len(uciText) != 5 {
		return nil, fmt.Errorf("action %q: %w", uciText, errors.ErrIllegalAction)
	}
	for _, a := range s.LegalActions(s.active) {
		if uci(a.From(), a.To()) != uciText[:4] {
			continue
		}
		promo, isPromo := a.(Promotion)
		switch {
		case !isPromo && len(uciText) == 4:
			return a, nil
		case !isPromo:
			return nil, fmt.Errorf("action %q: %w", uciText, errors.ErrIllegalAction)
		case len(uciText) == 4:
			return nil, fmt.Errorf("action %q: %w", uciText, errors.ErrUnresolvedPromotion)
		}
		kind := chess.KindFromLetter(uciText[4])
		if !kind.IsPromotionChoice() {
			return nil, fmt.Errorf("action %q: %w", uciText, errors.ErrInvalidPromotion)
		}
		return promo.WithPromotion(kind)
	}
	return nil, fmt.Errorf("action %q: %w", uciText, errors.ErrIllegalAction)
}

// Castle returns the legal castling action of the side to move on side.
func (s *GameState) Castle(side CastlingSide) (Action, error) {
	for _, a := range s.LegalActions(s.active) {
		if c, ok := a.(*Castling); ok && c.Side() == side {
			return c, nil
		}
	}
	return nil, castlingError(s.active, side)
}

func sideLetter(c chess.Colour) byte {
	if c == chess.White {
		return 'w'
	}
	return 'b'
}
