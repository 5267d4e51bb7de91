package bag

import (
	"math/rand/v2"
	"testing"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

func TestNewStandard_HasOneHundredFortyFourTiles(t *testing.T) {
	b := NewStandard(rand.New(rand.NewPCG(1, 2)))
	if b.Remaining() != 144 {
		t.Fatalf("expected a standard bag to hold 144 tiles, got %d", b.Remaining())
	}
}

func TestNewDouble_HasTwoHundredEightyEightTiles(t *testing.T) {
	b := NewDouble(rand.New(rand.NewPCG(1, 2)))
	if b.Remaining() != 288 {
		t.Fatalf("expected a double bag to hold 288 tiles, got %d", b.Remaining())
	}
}

func TestDrawHand_ReducesRemainingAndSumsToN(t *testing.T) {
	b := NewStandard(rand.New(rand.NewPCG(1, 2)))
	h, err := b.DrawHand(21)
	if err != nil {
		t.Fatalf("DrawHand: %v", err)
	}
	if h.Sum() != 21 {
		t.Fatalf("expected a 21-tile hand, got sum %d", h.Sum())
	}
	if b.Remaining() != 144-21 {
		t.Fatalf("expected 123 tiles left in the bag, got %d", b.Remaining())
	}
}

func TestDrawHand_RejectsDrawingMoreThanRemains(t *testing.T) {
	b := NewStandard(rand.New(rand.NewPCG(1, 2)))
	if _, err := b.DrawHand(200); err == nil {
		t.Fatalf("expected drawing more tiles than the bag holds to fail")
	}
}

func TestNew_RejectsNegativeCounts(t *testing.T) {
	var counts [primitives.NumLetters]int
	counts[0] = -1
	if _, err := New(counts, rand.New(rand.NewPCG(1, 2))); err == nil {
		t.Fatalf("expected a negative letter count to be rejected")
	}
}
