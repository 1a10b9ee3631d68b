// Package errors provides sentinel errors and error types for the chess engine.
// It defines the caller-contract violations the engine can detect and structured
// error types that keep context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a coordinate outside a..h / 1..8 where a
	// valid square was required.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalAction indicates an action that is not in the legal-move list.
	ErrIllegalAction = errors.New("illegal action")

	// ErrUnresolvedPromotion indicates a promotion whose target piece was never chosen.
	ErrUnresolvedPromotion = errors.New("promotion piece not chosen")

	// ErrInvalidPromotion indicates a promotion to a king, a pawn or nothing.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrSquareOccupied indicates a piece was added to an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrEmptySquare indicates a piece was expected on an empty square.
	ErrEmptySquare = errors.New("square empty")

	// ErrGameOver indicates an action was applied after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotImplemented indicates a variant tag with no implementation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrGameNotFound indicates a saved game id that is not in the store.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSelection indicates a player declined to choose an action.
	ErrNoSelection = errors.New("no selection")
)

// ActionError wraps errors with the context of the action that caused them:
// the ply at which it was attempted and its notation. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type ActionError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply number (0 if not applicable)
	Action string // Notation of the offending action (if known)
}

// Error returns a formatted error message including all available context.
func (e *ActionError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Action != "" {
		parts = append(parts, fmt.Sprintf("action %q", e.Action))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "action error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ActionError wrapper.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// FENError describes which field of a FEN record failed to decode.
type FENError struct {
	Err   error  // The underlying error
	Field string // Field name ("placement", "side", "castling", ...)
	Value string // The offending text
}

// Error returns a formatted error message with the field and value.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field+" field")
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
