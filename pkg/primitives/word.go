package primitives

import (
	"fmt"
	"strings"
)

// MaxWordLength is the longest word the board's packed representation can hold.
const MaxWordLength = 17

// EmptyValue is the sentinel stored in an unoccupied board cell. It is chosen to fit
// in a byte while lying outside the 0..25 range used for letters.
const EmptyValue = 30

// Word is the numeric representation of a word: each element is a letter index in
// 0..25, corresponding to 'A'..'Z'.
type Word []byte

// ConvertWordToArray converts an uppercase A-Z string into its numeric Word form.
// Any character outside A-Z is dropped, mirroring the reference implementation's
// filter-then-map behavior.
func ConvertWordToArray(word string) Word {
	w := make(Word, 0, len(word))
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			w = append(w, byte(r-'A'))
		}
	}
	return w
}

// ConvertArrayToWord converts a numeric Word back into its uppercase string form.
// It is the left inverse of ConvertWordToArray on valid A-Z input.
func ConvertArrayToWord(word Word) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, l := range word {
		b.WriteByte('A' + l)
	}
	return b.String()
}

// fingerprint computes a 32-bit splitmix-style hash of a sequence of small integers,
// seeded with the sequence's length. The same mixer is used for words and for ad-hoc
// cell-coordinate paths, per spec.md section 3.
//
// Collisions between two same-length sequences are possible in principle; callers
// that need certainty (e.g. dictionary membership) must verify fingerprint hits by
// equality rather than trusting the hash alone.
func fingerprint(values []int) uint32 {
	seed := uint32(len(values))
	for _, n := range values {
		x := (uint32(n) ^ (uint32(n) >> 16)) * 0x45d9f3b
		y := (x ^ (x >> 16)) * 0x45d9f3b
		z := y ^ (y >> 16)
		seed ^= z + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}
	return seed
}

// WordFingerprint computes the fingerprint of a Word.
func WordFingerprint(word Word) uint32 {
	values := make([]int, len(word))
	for i, l := range word {
		values[i] = int(l)
	}
	return fingerprint(values)
}

// PathFingerprint computes the fingerprint of a sequence of (row, col) cell
// coordinates, used identically to WordFingerprint per spec.md section 3.
func PathFingerprint(path [][2]int) uint32 {
	values := make([]int, 0, len(path)*2)
	for _, p := range path {
		values = append(values, p[0], p[1])
	}
	return fingerprint(values)
}

// ValidateDictionaryWord checks that a raw dictionary line is a legal word per
// spec.md section 6: upper-cased, trimmed, every character A-Z, length >= 2.
func ValidateDictionaryWord(raw string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if len(word) < 2 {
		return "", fmt.Errorf("word %q is shorter than the minimum length of 2", raw)
	}
	if len(word) > MaxWordLength {
		return "", fmt.Errorf("word %q exceeds the maximum length of %d", raw, MaxWordLength)
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("word %q contains non-alphabetic character %q", raw, r)
		}
	}
	return word, nil
}
