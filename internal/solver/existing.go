package solver

import (
	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// PlayOneLetter handles the common case where the hand grew by exactly one tile,
// per spec.md section 4.6: rather than re-searching, it looks for a single empty
// cell in the halo around the prior bounding box that borders an occupied cell, and
// checks whether dropping the new letter there keeps every horizontal run a
// dictionary word. It returns ok=false if no such cell exists, so the caller should
// fall back to PlayFromExisting.
func PlayOneLetter(prior PriorState, letter byte, dict *primitives.Dictionary) (Result, bool) {
	b := *prior.Board
	box := prior.Box

	rowLo, rowHi := max(box.MinRow-1, 0), min(box.MaxRow+1, board.Size-1)
	colLo, colHi := max(box.MinCol-1, 0), min(box.MaxCol+1, board.Size-1)

	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			if b.GetVal(row, col) != board.EmptyValue {
				continue
			}
			if !adjacentToOccupied(&b, row, col) {
				continue
			}
			b.SetVal(row, col, letter)
			newBox := box.Expand(row, row, col, col)
			// A single-cell placement only ever changes one row's horizontal run and
			// one column's vertical run; IsValidHorizontal already checks both when
			// its column range collapses to the single placed column.
			if board.IsValidHorizontal(&b, newBox, row, col, col, dict) {
				seq := append(append(PlaySequence(nil), prior.PlaySeq...), Placement{
					Word: primitives.Word{letter},
					Row:  row,
					Col:  col,
					Dir:  board.Horizontal,
				})
				newHand := prior.Hand
				newHand[letter]++
				return finish(&b, newBox, seq, newHand), true
			}
			b.SetVal(row, col, board.EmptyValue)
		}
	}
	return Result{}, false
}

func adjacentToOccupied(b *board.Board, row, col int) bool {
	if row > 0 && b.GetVal(row-1, col) != board.EmptyValue {
		return true
	}
	if row < board.Size-1 && b.GetVal(row+1, col) != board.EmptyValue {
		return true
	}
	if col > 0 && b.GetVal(row, col-1) != board.EmptyValue {
		return true
	}
	if col < board.Size-1 && b.GetVal(row, col+1) != board.EmptyValue {
		return true
	}
	return false
}

// PlayFromExisting reconstructs prior.PlaySeq on a fresh board, consuming req.Hand
// placement by placement, then continues the search from wherever the replay left
// off - per spec.md section 4.7. It returns ErrReplayMismatch if the prior sequence
// can no longer be replayed exactly (a placement in the sequence is no longer valid
// against the current hand), instructing the caller to fall back to PlayFromScratch.
func PlayFromExisting(req Request, prior PriorState) (Result, error) {
	if len(prior.PlaySeq) == 0 {
		return Result{}, ErrReplayMismatch
	}

	b := board.New()
	seed := prior.PlaySeq[0]
	remaining := req.Hand
	for _, l := range seed.Word {
		if remaining[l] == 0 {
			return Result{}, ErrReplayMismatch
		}
		remaining[l]--
	}
	for i, l := range seed.Word {
		r, c := seed.Row, seed.Col
		if seed.Dir == board.Horizontal {
			c += i
		} else {
			r += i
		}
		b.SetVal(r, c, l)
	}

	s := &searchState{
		board:                b,
		dict:                 req.Dictionary,
		filterLettersOnBoard: req.FilterLettersOnBoard,
		budget:               NewBudget(req.MaxWordsToCheck),
		seq:                  PlaySequence{seed},
	}
	for _, l := range seed.Word {
		s.lettersOnBoard[l]++
	}

	var box board.BoundingBox
	if seed.Dir == board.Horizontal {
		box = box.Expand(seed.Row, seed.Row, seed.Col, seed.Col+len(seed.Word)-1)
	} else {
		box = box.Expand(seed.Row, seed.Row+len(seed.Word)-1, seed.Col, seed.Col)
	}

	if remaining.IsEmpty() {
		return finish(b, box, s.seq, req.Hand), nil
	}

	for depth := 1; depth < len(prior.PlaySeq); depth++ {
		placement := prior.PlaySeq[depth]
		outcome := b.PlayWord(placement.Word, placement.Row, placement.Col, placement.Dir, remaining)
		if outcome.OutOfBounds || !outcome.Accepted {
			return Result{}, ErrReplayMismatch
		}
		var newBox board.BoundingBox
		var valid bool
		if placement.Dir == board.Horizontal {
			newBox = box.Expand(placement.Row, placement.Row, placement.Col, placement.Col+len(placement.Word)-1)
			valid = board.IsValidHorizontal(b, newBox, placement.Row, placement.Col, placement.Col+len(placement.Word)-1, req.Dictionary)
		} else {
			newBox = box.Expand(placement.Row, placement.Row+len(placement.Word)-1, placement.Col, placement.Col)
			valid = board.IsValidVertical(b, newBox, placement.Row, placement.Row+len(placement.Word)-1, placement.Col, req.Dictionary)
		}
		if !valid {
			return Result{}, ErrReplayMismatch
		}
		s.recordPlay(placement, outcome.Written)
		box = newBox
		remaining = outcome.Remaining
		if outcome.Usage == board.Finished {
			return finish(b, box, s.seq, req.Hand), nil
		}
	}

	// Per spec.md section 7, every failure mode of this strategy - a replay mismatch
	// or simply finding no further placement - collapses to the same "give up, fall
	// back to play-from-scratch" signal.
	validWords := req.Dictionary.MakeableWords(remaining)
	found, finalBox, err := playFurther(s, box, remaining, validWords, len(prior.PlaySeq)-1)
	if err != nil || !found {
		return Result{}, ErrReplayMismatch
	}
	return finish(b, finalBox, s.seq, req.Hand), nil
}

// Solve dispatches between the one-letter extension, replay-and-continue, and
// from-scratch entry strategies based on how req.Hand compares to prior.Hand, per
// the decision table in spec.md section 4.7. A nil prior always goes straight to
// PlayFromScratch.
func Solve(req Request, prior *PriorState) (Result, error) {
	if prior == nil {
		return PlayFromScratch(req)
	}

	switch primitives.CompareHands(prior.Hand, req.Hand) {
	case primitives.HandSame:
		return finish(prior.Board, prior.Box, prior.PlaySeq, prior.Hand), nil

	case primitives.HandGreaterByOne:
		letter, ok := primitives.AddedLetter(prior.Hand, req.Hand)
		if ok {
			if result, ok := PlayOneLetter(*prior, letter, req.Dictionary); ok {
				return result, nil
			}
		}
		if result, err := PlayFromExisting(req, *prior); err == nil {
			return result, nil
		}
		return PlayFromScratch(req)

	case primitives.HandGreaterByMoreThanOne:
		if result, err := PlayFromExisting(req, *prior); err == nil {
			return result, nil
		}
		return PlayFromScratch(req)

	default: // HandSomeLess
		return PlayFromScratch(req)
	}
}
