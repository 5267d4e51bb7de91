package primitives

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dictionary is the word store described in spec.md section 3: an ordered list of
// words sorted by descending length, plus a fingerprint-indexed set for O(1)
// membership checks. Fingerprint hits are verified by equality against the bucket's
// words, so that two distinct words sharing a 32-bit fingerprint never cause a false
// positive (see the design note in spec.md section 9 about fingerprint collisions).
type Dictionary struct {
	words   []Word
	byPrint map[uint32][]Word
}

// LoadDictionary reads one word per line from r, following the external dictionary
// format in spec.md section 6: blank lines are ignored, words shorter than 2 letters
// are ignored, and every remaining line must upper-case to all A-Z characters.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var words []Word
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) == 0 {
			continue
		}
		word, err := ValidateDictionaryWord(raw)
		if err != nil {
			if len(trimmed) < 2 {
				continue
			}
			return nil, fmt.Errorf("dictionary line %d: %w", lineNo, err)
		}
		words = append(words, ConvertWordToArray(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return NewDictionary(words), nil
}

// NewDictionary builds a Dictionary from an already-decoded word list, sorting by
// descending length and indexing fingerprints.
func NewDictionary(words []Word) *Dictionary {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	byPrint := make(map[uint32][]Word, len(sorted))
	for _, w := range sorted {
		fp := WordFingerprint(w)
		byPrint[fp] = append(byPrint[fp], w)
	}
	return &Dictionary{words: sorted, byPrint: byPrint}
}

// Words returns the full word list, sorted by descending length.
func (d *Dictionary) Words() []Word {
	return d.words
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is a member of the dictionary.
func (d *Dictionary) Contains(word Word) bool {
	bucket, ok := d.byPrint[WordFingerprint(word)]
	if !ok {
		return false
	}
	for _, candidate := range bucket {
		if wordsEqual(candidate, word) {
			return true
		}
	}
	return false
}

func wordsEqual(a, b Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MakeableWords returns, in the dictionary's existing descending-length order, every
// word that IsMakeable from hand alone.
func (d *Dictionary) MakeableWords(hand Hand) []Word {
	var out []Word
	for _, w := range d.words {
		if IsMakeable(w, hand) {
			out = append(out, w)
		}
	}
	return out
}
