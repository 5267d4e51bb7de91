package primitives

import "testing"

func TestCheckFilterAfterPlay_AllowsOneBorrowedLetter(t *testing.T) {
	hand := mustHand(t, map[byte]int{'T' - 'A': 1, 'S' - 'A': 1})
	overlap := LetterSetFromWord(ConvertWordToArray("CAR"))

	// "CATS" needs C and A from the board (overlap), T and S from the hand - but
	// only one board letter may be borrowed, so this must fail.
	if CheckFilterAfterPlay(hand, ConvertWordToArray("CATS"), overlap) {
		t.Fatalf("expected CATS to be rejected: it needs two letters from the board")
	}

	// "SAT" needs only A from the board, S and T from the hand.
	if !CheckFilterAfterPlay(hand, ConvertWordToArray("SAT"), overlap) {
		t.Fatalf("expected SAT to be accepted: it borrows exactly one board letter")
	}
}

func TestCheckFilterAfterPlay_RejectsUnavailableLetter(t *testing.T) {
	hand := mustHand(t, map[byte]int{'T' - 'A': 1, 'S' - 'A': 1})
	overlap := NewLetterSet()
	if CheckFilterAfterPlay(hand, ConvertWordToArray("CATS"), overlap) {
		t.Fatalf("expected CATS to be rejected: C is neither in hand nor on the board")
	}
}

func TestCheckFilterAfterPlayLater_RespectsConfiguredCeiling(t *testing.T) {
	hand := mustHand(t, map[byte]int{'T' - 'A': 1, 'S' - 'A': 1})
	onBoard := mustHand(t, map[byte]int{'C' - 'A': 1, 'A' - 'A': 1, 'R' - 'A': 1})

	if !CheckFilterAfterPlayLater(hand, onBoard, ConvertWordToArray("CATS"), 2) {
		t.Fatalf("expected CATS to be accepted when up to 2 board letters may be borrowed")
	}
	if CheckFilterAfterPlayLater(hand, onBoard, ConvertWordToArray("CATS"), 1) {
		t.Fatalf("expected CATS to be rejected when only 1 board letter may be borrowed")
	}
}
