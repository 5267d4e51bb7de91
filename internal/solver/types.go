// Package solver implements the recursive crossword-placement engine: PlayFurther
// and the three entry strategies (PlayFromScratch, PlayOneLetter, PlayFromExisting),
// per spec.md sections 4.5-4.7.
package solver

import (
	"errors"

	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// ErrDump is returned when no full placement exists for the given hand, or when the
// search budget was exhausted - the two are indistinguishable externally, per
// spec.md section 7.
var ErrDump = errors.New("no valid words can be formed from the current letters - dump and try again")

// ErrInvalidInput names the malformed-request category: bad hand counts, a hand
// with fewer than 2 tiles, or a malformed prior board. No function in this package
// returns it; hand-count errors come from primitives.NewHandFromCounts as plain
// errors.
var ErrInvalidInput = errors.New("invalid input")

// ErrReplayMismatch is returned by PlayFromExisting when the prior play sequence can
// no longer be reconstructed - the host should fall back to PlayFromScratch.
var ErrReplayMismatch = errors.New("prior play sequence could not be replayed")

// Placement is a single recorded word placement.
type Placement struct {
	Word primitives.Word
	Row  int
	Col  int
	Dir  board.Direction
}

// PlaySequence is an ordered record of placements: the first is the seed word, every
// subsequent one borders at least one prior letter.
type PlaySequence []Placement

// Result is returned on a successful solve.
type Result struct {
	Board       []byte
	BoardString [][]string
	Box         board.BoundingBox
	Hand        primitives.Hand
	PlaySeq     PlaySequence
}

// Request bundles the parameters of a solve call, common to both entry strategies.
type Request struct {
	Hand                 primitives.Hand
	Dictionary           *primitives.Dictionary
	FilterLettersOnBoard int
	MaxWordsToCheck      int
}

// PriorState carries the previous solution a caller wants to incrementally extend,
// per spec.md section 3's "Solve request" entity.
type PriorState struct {
	Board   *board.Board
	Box     board.BoundingBox
	Hand    primitives.Hand
	PlaySeq PlaySequence
}
