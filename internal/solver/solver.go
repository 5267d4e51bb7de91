package solver

import (
	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// searchState carries the bookkeeping threaded by reference through every call of a
// single recursive search: the board being built in place, the multiset of letters
// currently on it (needed by CheckFilterAfterPlayLater), the shared word budget, and
// the play sequence assembled so far for later replay.
type searchState struct {
	board                *board.Board
	dict                 *primitives.Dictionary
	lettersOnBoard       primitives.Hand
	filterLettersOnBoard int
	budget               *Budget
	seq                  PlaySequence
}

// recordPlay appends placement to the play sequence and folds written's letters into
// lettersOnBoard. Call this immediately after a play is accepted and validated.
func (s *searchState) recordPlay(placement Placement, written []board.Cell) {
	for _, c := range written {
		s.lettersOnBoard[s.board.GetVal(c.Row, c.Col)]++
	}
	s.seq = append(s.seq, placement)
}

// undoPlay is the inverse of recordPlay followed by clearing the board cells. Call
// this when a recorded play's recursive continuation failed to reach a solution.
func (s *searchState) undoPlay(written []board.Cell) {
	for _, c := range written {
		s.lettersOnBoard[s.board.GetVal(c.Row, c.Col)]--
	}
	s.board.UndoPlay(written)
	s.seq = s.seq[:len(s.seq)-1]
}

// clampLow and clampHigh keep a candidate board index inside [0, board.Size-1], the
// Go equivalent of the reference's saturating_sub/`BOARD_SIZE.min` bound arithmetic.
func clampLow(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampHigh(v int) int {
	if v > board.Size-1 {
		return board.Size - 1
	}
	return v
}

// colSearchLimits returns the tightest [leftmost, rightmost] column range, within
// [minCol, maxCol], that borders an occupied cell on row - checking the row itself
// plus whichever of row-1/row+1 exist, per the reference's get_col_limits. A
// horizontal word can only possibly touch the existing region if some part of its
// span falls within this range.
func colSearchLimits(b *board.Board, row, minCol, maxCol int) (int, int) {
	above := row > 0
	below := row < board.Size-1
	occupied := func(col int) bool {
		if b.GetVal(row, col) != board.EmptyValue {
			return true
		}
		if above && b.GetVal(row-1, col) != board.EmptyValue {
			return true
		}
		if below && b.GetVal(row+1, col) != board.EmptyValue {
			return true
		}
		return false
	}
	leftmost := maxCol
	for col := minCol; col <= maxCol; col++ {
		if occupied(col) {
			leftmost = col
			break
		}
	}
	rightmost := minCol
	for col := maxCol; col >= minCol; col-- {
		if occupied(col) {
			rightmost = col
			break
		}
	}
	return leftmost, rightmost
}

// rowSearchLimits is the vertical-play symmetric counterpart to colSearchLimits.
func rowSearchLimits(b *board.Board, col, minRow, maxRow int) (int, int) {
	left := col > 0
	right := col < board.Size-1
	occupied := func(row int) bool {
		if b.GetVal(row, col) != board.EmptyValue {
			return true
		}
		if left && b.GetVal(row, col-1) != board.EmptyValue {
			return true
		}
		if right && b.GetVal(row, col+1) != board.EmptyValue {
			return true
		}
		return false
	}
	uppermost := maxRow
	for row := minRow; row <= maxRow; row++ {
		if occupied(row) {
			uppermost = row
			break
		}
	}
	lowermost := minRow
	for row := maxRow; row >= minRow; row-- {
		if occupied(row) {
			lowermost = row
			break
		}
	}
	return uppermost, lowermost
}

// tryPlayWordHorizontal attempts word at every row/column where it could plausibly
// border the occupied region, recursing via playFurther after each validated
// placement. It reports success with the resulting bounding box, or (false, box,
// nil) if every attempt failed, or a non-nil error if the search budget ran out.
func tryPlayWordHorizontal(s *searchState, word primitives.Word, box board.BoundingBox, hand primitives.Hand, validWords []primitives.Word, depth int) (bool, board.BoundingBox, error) {
	rowLo := clampLow(box.MinRow - 1)
	rowHi := clampHigh(box.MaxRow + 1)
	for row := rowLo; row <= rowHi; row++ {
		leftmost, rightmost := colSearchLimits(s.board, row, box.MinCol, box.MaxCol)
		colLo := clampLow(leftmost - len(word))
		colHi := clampHigh(rightmost + 1)
		for col := colLo; col <= colHi; col++ {
			outcome := s.board.PlayWord(word, row, col, board.Horizontal, hand)
			if outcome.OutOfBounds {
				continue
			}
			if !outcome.Accepted {
				s.board.UndoPlay(outcome.Written)
				continue
			}
			newBox := box.Expand(row, row, col, col+len(word)-1)
			if !board.IsValidHorizontal(s.board, newBox, row, col, col+len(word)-1, s.dict) {
				s.board.UndoPlay(outcome.Written)
				continue
			}
			s.recordPlay(Placement{Word: word, Row: row, Col: col, Dir: board.Horizontal}, outcome.Written)
			if outcome.Usage == board.Finished {
				return true, newBox, nil
			}
			narrowed := narrowWords(validWords, outcome.Remaining, s.lettersOnBoard, s.filterLettersOnBoard)
			found, finalBox, err := playFurther(s, newBox, outcome.Remaining, narrowed, depth+1)
			if err != nil {
				return false, box, err
			}
			if found {
				return true, finalBox, nil
			}
			s.undoPlay(outcome.Written)
		}
	}
	return false, box, nil
}

// tryPlayWordVertical is the vertical-play symmetric counterpart to
// tryPlayWordHorizontal.
func tryPlayWordVertical(s *searchState, word primitives.Word, box board.BoundingBox, hand primitives.Hand, validWords []primitives.Word, depth int) (bool, board.BoundingBox, error) {
	colLo := clampLow(box.MinCol - 1)
	colHi := clampHigh(box.MaxCol + 1)
	for col := colLo; col <= colHi; col++ {
		uppermost, lowermost := rowSearchLimits(s.board, col, box.MinRow, box.MaxRow)
		rowLo := clampLow(uppermost - len(word))
		rowHi := clampHigh(lowermost + 1)
		for row := rowLo; row <= rowHi; row++ {
			outcome := s.board.PlayWord(word, row, col, board.Vertical, hand)
			if outcome.OutOfBounds {
				continue
			}
			if !outcome.Accepted {
				s.board.UndoPlay(outcome.Written)
				continue
			}
			newBox := box.Expand(row, row+len(word)-1, col, col)
			if !board.IsValidVertical(s.board, newBox, row, row+len(word)-1, col, s.dict) {
				s.board.UndoPlay(outcome.Written)
				continue
			}
			s.recordPlay(Placement{Word: word, Row: row, Col: col, Dir: board.Vertical}, outcome.Written)
			if outcome.Usage == board.Finished {
				return true, newBox, nil
			}
			narrowed := narrowWords(validWords, outcome.Remaining, s.lettersOnBoard, s.filterLettersOnBoard)
			found, finalBox, err := playFurther(s, newBox, outcome.Remaining, narrowed, depth+1)
			if err != nil {
				return false, box, err
			}
			if found {
				return true, finalBox, nil
			}
			s.undoPlay(outcome.Written)
		}
	}
	return false, box, nil
}

func narrowWords(validWords []primitives.Word, hand, lettersOnBoard primitives.Hand, filterLettersOnBoard int) []primitives.Word {
	narrowed := make([]primitives.Word, 0, len(validWords)/2)
	for _, w := range validWords {
		if primitives.CheckFilterAfterPlayLater(hand, lettersOnBoard, w, filterLettersOnBoard) {
			narrowed = append(narrowed, w)
		}
	}
	return narrowed
}

// playFurther is the core recursive search, per spec.md section 4.5. Depth
// alternates which orientation is tried first - horizontal on odd depths, vertical
// on even depths - as a heuristic to reach a solution faster; depth 0 skips its
// horizontal pass entirely, since any word laid horizontally through the seed would
// only cross it vertically, a check the seed placement itself already satisfied.
func playFurther(s *searchState, box board.BoundingBox, hand primitives.Hand, validWords []primitives.Word, depth int) (bool, board.BoundingBox, error) {
	if s.budget.exhausted() {
		return false, box, errBudgetExhausted
	}

	horizontalFirst := depth%2 == 1

	tryFirst, trySecond := tryPlayWordVertical, tryPlayWordHorizontal
	if horizontalFirst {
		tryFirst, trySecond = tryPlayWordHorizontal, tryPlayWordVertical
	}

	for _, word := range validWords {
		s.budget.Checked++
		found, newBox, err := tryFirst(s, word, box, hand, validWords, depth)
		if err != nil {
			return false, box, err
		}
		if found {
			return true, newBox, nil
		}
	}

	if !horizontalFirst && depth == 0 {
		return false, box, nil
	}

	for _, word := range validWords {
		s.budget.Checked++
		found, newBox, err := trySecond(s, word, box, hand, validWords, depth)
		if err != nil {
			return false, box, err
		}
		if found {
			return true, newBox, nil
		}
	}
	return false, box, nil
}
