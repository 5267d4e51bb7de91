package solver

import (
	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// PlayFromScratch builds a brand-new board for req.Hand, per spec.md section 4.6. It
// tries every dictionary word makeable from the hand, longest first, as a horizontal
// seed centered on the board, then recurses outward with playFurther. It returns
// ErrDump if no seed word leads to a full placement of the hand - whether because
// none exists, or because the search budget was exhausted first; the two are
// indistinguishable to the caller, matching the reference's single error path.
func PlayFromScratch(req Request) (Result, error) {
	validWords := req.Dictionary.MakeableWords(req.Hand)
	if len(validWords) == 0 {
		return Result{}, ErrDump
	}

	b := board.New()
	budget := NewBudget(req.MaxWordsToCheck)
	const center = board.Size / 2

	// Per spec.md section 9, the budget is applied separately to each of the first
	// six seed words (a fresh allowance per attempt, so one unlucky seed can't starve
	// the rest), then shared globally across every seed word after that.
	const perSeedBudgetSeeds = 6

	for wordNum, word := range validWords {
		if wordNum < perSeedBudgetSeeds {
			budget.Checked = 0
		}
		colStart := center - len(word)/2
		row := center

		useLetters := req.Hand
		for _, l := range word {
			useLetters[l]--
		}

		s := &searchState{
			board:                b,
			dict:                 req.Dictionary,
			filterLettersOnBoard: req.FilterLettersOnBoard,
			budget:               budget,
		}
		for i, l := range word {
			b.SetVal(row, colStart+i, l)
			s.lettersOnBoard[l]++
		}
		s.seq = PlaySequence{{Word: word, Row: row, Col: colStart, Dir: board.Horizontal}}

		box := board.BoundingBox{MinRow: row, MaxRow: row, MinCol: colStart, MaxCol: colStart + len(word) - 1, Defined: true}

		if useLetters.IsEmpty() {
			return finish(b, box, s.seq, req.Hand), nil
		}

		wordLetters := primitives.LetterSetFromWord(word)
		var narrowed []primitives.Word
		for _, candidate := range validWords[wordNum:] {
			if primitives.CheckFilterAfterPlay(useLetters, candidate, wordLetters) {
				narrowed = append(narrowed, candidate)
			}
		}

		found, finalBox, err := playFurther(s, box, useLetters, narrowed, 0)
		if err != nil {
			// An exhausted search leaves its partial plays on the board; while the
			// next seed still gets a fresh allowance, start it on a clean board.
			if wordNum+1 < perSeedBudgetSeeds {
				b = board.New()
				continue
			}
			return Result{}, ErrDump
		}
		if found {
			return finish(b, finalBox, s.seq, req.Hand), nil
		}

		for col := box.MinCol; col <= box.MaxCol; col++ {
			b.SetVal(row, col, board.EmptyValue)
		}
	}
	return Result{}, ErrDump
}

// finish packages a successful search's board state into a Result. hand is echoed
// back as the hand actually used, per spec.md section 6's Result.letters field.
func finish(b *board.Board, box board.BoundingBox, seq PlaySequence, hand primitives.Hand) Result {
	return Result{
		Board:       b.Bytes(),
		BoardString: b.StringView(box, nil),
		Box:         box,
		Hand:        hand,
		PlaySeq:     append(PlaySequence(nil), seq...),
	}
}
