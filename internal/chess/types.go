// Package chess provides the core chess data model: colours, piece kinds,
// board coordinates, movement offsets, pieces and the board itself.
package chess

// Colour represents the colour of a piece or player. It is also the player
// handle shared by pieces, the game state and castling rights.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Absent piece or unresolved promotion choice
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
// Unknown kinds and NoKind map to '?'.
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a FEN/SAN letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PromotionChoices lists the kinds a pawn may promote to, strongest first.
var PromotionChoices = []Kind{Queen, Rook, Bishop, Knight}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = Rank(RankBase)
	LastRank  = Rank(RankBase + BoardSize - 1)
	FirstCol  = Col(ColBase)
	LastCol   = Col(ColBase + BoardSize - 1)
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank pawns of the given colour start on.
func PawnRank(colour Colour) Rank {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}
