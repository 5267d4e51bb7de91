// Package bag implements the standard and double Bananagrams tile bags, the
// random-hand external collaborator named in spec.md section 6.
package bag

import (
	"fmt"
	"math/rand/v2"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// StandardCounts is the per-letter tile count in a standard 144-tile Bananagrams set.
var StandardCounts = [primitives.NumLetters]int{
	13, 3, 3, 6, 18, 3, 4, 3, 12, 2, 2, 5, 3, 8, 11, 3, 2, 9, 6, 9, 6, 3, 3, 2, 3, 2,
}

// DoubleCounts is StandardCounts with every letter doubled, for the 288-tile variant.
var DoubleCounts = doubled(StandardCounts)

func doubled(counts [primitives.NumLetters]int) [primitives.NumLetters]int {
	var out [primitives.NumLetters]int
	for i, c := range counts {
		out[i] = c * 2
	}
	return out
}

// Bag is a shuffled, drawable multiset of tiles.
type Bag struct {
	tiles []byte
}

// New builds a Bag containing exactly counts[i] tiles of letter i, in a random order
// determined by rnd.
func New(counts [primitives.NumLetters]int, rnd *rand.Rand) (*Bag, error) {
	total := 0
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("letter count for %c is negative: %d", 'A'+rune(i), c)
		}
		total += c
	}
	tiles := make([]byte, 0, total)
	for l, c := range counts {
		for i := 0; i < c; i++ {
			tiles = append(tiles, byte(l))
		}
	}
	rnd.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &Bag{tiles: tiles}, nil
}

// NewStandard builds a standard 144-tile bag.
func NewStandard(rnd *rand.Rand) *Bag {
	b, _ := New(StandardCounts, rnd)
	return b
}

// NewDouble builds a double 288-tile bag.
func NewDouble(rnd *rand.Rand) *Bag {
	b, _ := New(DoubleCounts, rnd)
	return b
}

// Remaining returns the number of tiles left in the bag.
func (b *Bag) Remaining() int {
	return len(b.tiles)
}

// DrawHand removes n tiles from the bag and returns them as a Hand. It errors if
// fewer than n tiles remain, or if n would leave a hand too small to ever be solved.
func (b *Bag) DrawHand(n int) (primitives.Hand, error) {
	if n > len(b.tiles) {
		return primitives.Hand{}, fmt.Errorf("cannot draw %d tiles, only %d remain in the bag", n, len(b.tiles))
	}
	counts := make([]int, primitives.NumLetters)
	for _, l := range b.tiles[:n] {
		counts[l]++
	}
	b.tiles = b.tiles[n:]
	return primitives.NewHandFromCounts(counts)
}
