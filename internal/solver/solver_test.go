package solver

import (
	"strings"
	"testing"

	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

func dictFrom(t testing.TB, words ...string) *primitives.Dictionary {
	t.Helper()
	d, err := primitives.LoadDictionary(strings.NewReader(strings.Join(words, "\n")))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

func handFromLetters(t testing.TB, letters string) primitives.Hand {
	t.Helper()
	counts := make([]int, primitives.NumLetters)
	for _, r := range letters {
		counts[r-'A']++
	}
	h, err := primitives.NewHandFromCounts(counts)
	if err != nil {
		t.Fatalf("NewHandFromCounts: %v", err)
	}
	return h
}

func countsOnBoard(res Result) map[byte]int {
	counts := make(map[byte]int)
	for _, v := range res.Board {
		if v != board.EmptyValue {
			counts[v]++
		}
	}
	return counts
}

func TestPlayFromScratch_SingleWordFillsHand(t *testing.T) {
	req := Request{
		Hand:                 handFromLetters(t, "BAN"),
		Dictionary:           dictFrom(t, "ban"),
		FilterLettersOnBoard: 1,
		MaxWordsToCheck:      1000,
	}
	res, err := PlayFromScratch(req)
	if err != nil {
		t.Fatalf("PlayFromScratch: %v", err)
	}
	if res.Box.MinRow != board.Size/2 || res.Box.MaxRow != board.Size/2 {
		t.Fatalf("expected the seed word to sit on the center row, got box %v", res.Box)
	}
	if len(res.PlaySeq) != 1 || primitives.ConvertArrayToWord(res.PlaySeq[0].Word) != "BAN" {
		t.Fatalf("expected a single-placement play sequence of BAN, got %+v", res.PlaySeq)
	}
	if res.Hand != req.Hand {
		t.Fatalf("expected the echoed hand to equal the input hand, got %v want %v", res.Hand, req.Hand)
	}
}

func TestPlayFromScratch_CrossingWords(t *testing.T) {
	req := Request{
		Hand:                 handFromLetters(t, "CATRA"), // C,A,T,R,A
		Dictionary:           dictFrom(t, "cat", "rat", "car", "at", "tar"),
		FilterLettersOnBoard: 1,
		MaxWordsToCheck:      100000,
	}
	res, err := PlayFromScratch(req)
	if err != nil {
		t.Fatalf("PlayFromScratch: %v", err)
	}
	got := countsOnBoard(res)
	want := map[byte]int{'C' - 'A': 1, 'A' - 'A': 2, 'T' - 'A': 1, 'R' - 'A': 1}
	if len(got) != len(want) {
		t.Fatalf("board letter counts %v do not match hand %v", got, want)
	}
	for l, c := range want {
		if got[l] != c {
			t.Fatalf("board has %d of letter %c, want %d", got[l], 'A'+l, c)
		}
	}
	if len(res.PlaySeq) < 2 {
		t.Fatalf("expected at least two crossing placements, got %+v", res.PlaySeq)
	}
	if res.Hand != req.Hand {
		t.Fatalf("expected the echoed hand to equal the input hand, got %v want %v", res.Hand, req.Hand)
	}
}

func TestPlayFromScratch_DumpsWhenNoWordIsMakeable(t *testing.T) {
	req := Request{
		Hand:                 handFromLetters(t, "ZZZZZ"),
		Dictionary:           dictFrom(t, "cat", "rat", "ban"),
		FilterLettersOnBoard: 1,
		MaxWordsToCheck:      1000,
	}
	_, err := PlayFromScratch(req)
	if err != ErrDump {
		t.Fatalf("expected ErrDump, got %v", err)
	}
}

func TestPlayFromScratch_RejectsHandTooSmallUpstream(t *testing.T) {
	counts := make([]int, primitives.NumLetters)
	counts['Z'-'A'] = 1
	if _, err := primitives.NewHandFromCounts(counts); err == nil {
		t.Fatalf("expected a single-tile hand to be rejected before the engine is ever invoked")
	}
}

func TestSolve_SameHandReturnsPriorBoardUnchanged(t *testing.T) {
	dict := dictFrom(t, "cat", "rat", "car", "at")
	hand := handFromLetters(t, "CATRA")
	first, err := PlayFromScratch(Request{Hand: hand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000})
	if err != nil {
		t.Fatalf("setup PlayFromScratch: %v", err)
	}

	b := board.New()
	for i, v := range first.Board {
		b.SetVal(i/board.Size, i%board.Size, v)
	}
	prior := &PriorState{Board: b, Box: first.Box, Hand: hand, PlaySeq: first.PlaySeq}

	res, err := Solve(Request{Hand: hand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000}, prior)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if string(res.Board) != string(first.Board) {
		t.Fatalf("expected Solve with an unchanged hand to return the prior board verbatim")
	}
	if len(res.PlaySeq) != len(first.PlaySeq) {
		t.Fatalf("expected the play sequence to be echoed unchanged")
	}
	if res.Hand != hand {
		t.Fatalf("expected the echoed hand to equal the unchanged hand, got %v want %v", res.Hand, hand)
	}
}

func TestSolve_GreaterByOneExtendsWithSingleLetter(t *testing.T) {
	dict := dictFrom(t, "cat", "cats", "rat", "rats", "car", "at")
	priorHand := handFromLetters(t, "CATRA")
	first, err := PlayFromScratch(Request{Hand: priorHand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000})
	if err != nil {
		t.Fatalf("setup PlayFromScratch: %v", err)
	}

	b := board.New()
	for i, v := range first.Board {
		b.SetVal(i/board.Size, i%board.Size, v)
	}
	prior := &PriorState{Board: b, Box: first.Box, Hand: priorHand, PlaySeq: first.PlaySeq}

	newHand := handFromLetters(t, "CATRAS")
	res, err := Solve(Request{Hand: newHand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000}, prior)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	got := countsOnBoard(res)
	if got['S'-'A'] != 1 {
		t.Fatalf("expected exactly one S to have been added to the board, got counts %v", got)
	}
	colGrowth := (res.Box.MaxCol - res.Box.MinCol) - (first.Box.MaxCol - first.Box.MinCol)
	rowGrowth := (res.Box.MaxRow - res.Box.MinRow) - (first.Box.MaxRow - first.Box.MinRow)
	if colGrowth < 0 || rowGrowth < 0 || colGrowth+rowGrowth > 1 {
		t.Fatalf("expected the bounding box to widen by at most one cell, got prior=%v new=%v", first.Box, res.Box)
	}
	if res.Hand != newHand {
		t.Fatalf("expected the echoed hand to equal the new hand, got %v want %v", res.Hand, newHand)
	}
}

func TestSolve_SomeLessFallsBackToScratch(t *testing.T) {
	dict := dictFrom(t, "cat", "rat", "car", "at")
	priorHand := handFromLetters(t, "CATRA")
	first, err := PlayFromScratch(Request{Hand: priorHand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000})
	if err != nil {
		t.Fatalf("setup PlayFromScratch: %v", err)
	}

	b := board.New()
	for i, v := range first.Board {
		b.SetVal(i/board.Size, i%board.Size, v)
	}
	prior := &PriorState{Board: b, Box: first.Box, Hand: priorHand, PlaySeq: first.PlaySeq}

	newHand := handFromLetters(t, "CAT") // dropped the R
	res, err := Solve(Request{Hand: newHand, Dictionary: dict, FilterLettersOnBoard: 1, MaxWordsToCheck: 100000}, prior)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	got := countsOnBoard(res)
	if got['R'-'A'] != 0 {
		t.Fatalf("expected a from-scratch rebuild to use exactly the new hand, found an R on the board")
	}
	if got['C'-'A'] != 1 || got['A'-'A'] != 1 || got['T'-'A'] != 1 {
		t.Fatalf("expected the rebuilt board to use exactly C,A,T, got %v", got)
	}
	if res.Hand != newHand {
		t.Fatalf("expected the echoed hand to equal the new hand, got %v want %v", res.Hand, newHand)
	}
}
