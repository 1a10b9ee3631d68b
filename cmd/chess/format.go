package main

import (
	"strconv"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/config"
	"github.com/abarnes1/chess-sub000/internal/engine"
)

// actionText renders a legal action of the side to move in the configured
// notation.
func actionText(s *engine.GameState, a engine.Action, n config.Notation) string {
	switch n {
	case config.UCI:
		return a.UCI()
	case config.Long:
		return a.Notation()
	default:
		return s.SAN(a)
	}
}

// formatMoveList renders the history of s in the configured notation,
// numbered and wrapped as the output settings ask.
func formatMoveList(s *engine.GameState, out config.OutputConfig) (string, error) {
	replay, err := engine.FromFEN(s.StartFEN(), engine.WithRules(s.Rules()))
	if err != nil {
		return "", err
	}

	var tokens []string
	for i, played := range s.History() {
		a, err := replay.FindAction(played.UCI())
		if err != nil {
			return "", err
		}
		if out.KeepMoveNumbers {
			switch {
			case replay.ActiveColour() == chess.White:
				tokens = append(tokens, strconv.Itoa(replay.FullMoveNumber())+".")
			case i == 0:
				tokens = append(tokens, strconv.Itoa(replay.FullMoveNumber())+"...")
			}
		}
		tokens = append(tokens, actionText(replay, a, out.Notation))
		if err := replay.ApplyAction(a); err != nil {
			return "", err
		}
	}
	return wrap(tokens, out.MaxLineLength), nil
}

// wrap joins tokens with spaces, breaking lines before maxLen is exceeded.
// A maxLen of 0 keeps everything on one line.
func wrap(tokens []string, maxLen uint) string {
	var sb strings.Builder
	lineLen := 0
	for _, tok := range tokens {
		switch {
		case lineLen == 0:
		case maxLen > 0 && uint(lineLen+1+len(tok)) > maxLen:
			sb.WriteByte('\n')
			lineLen = 0
		default:
			sb.WriteByte(' ')
			lineLen++
		}
		sb.WriteString(tok)
		lineLen += len(tok)
	}
	return sb.String()
}
