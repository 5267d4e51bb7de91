package primitives

// CheckFilterAfterPlay determines whether word may be played after a seed word has
// been placed and hand has been reduced to what remains. At most one letter of word
// may come from overlapSet - the distinct letters the seed word put on the board -
// matching spec.md section 4.1 exactly: scanning the word with a signed copy of hand,
// a count of zero is tolerated once if the letter is in overlapSet, and never twice.
func CheckFilterAfterPlay(hand Hand, word Word, overlapSet *LetterSet) bool {
	remaining := hand
	seenNegative := false
	for _, l := range word {
		switch {
		case remaining[l] == 0 && !overlapSet.Contains(l):
			return false
		case remaining[l] == 0 && seenNegative:
			return false
		case remaining[l] == 0:
			seenNegative = true
		default:
			remaining[l]--
		}
	}
	return true
}

// CheckFilterAfterPlayLater is the generalized form of CheckFilterAfterPlay used
// during the recursive search (spec.md section 4.5, filter_letters_on_board): instead
// of a single already-placed letter, a candidate word may borrow up to
// filterLettersOnBoard letters from lettersOnBoard, the multiset of letters currently
// on the board (not just the most recent play).
func CheckFilterAfterPlayLater(hand, lettersOnBoard Hand, word Word, filterLettersOnBoard int) bool {
	remainingHand := hand
	remainingOnBoard := lettersOnBoard
	numFromBoard := 0
	for _, l := range word {
		if remainingHand[l] != 0 {
			remainingHand[l]--
			continue
		}
		if numFromBoard == filterLettersOnBoard {
			return false
		}
		if remainingOnBoard[l] == 0 {
			return false
		}
		remainingOnBoard[l]--
		numFromBoard++
	}
	return true
}
