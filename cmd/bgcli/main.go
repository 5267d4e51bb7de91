// Command bgcli is a local CLI driver for the Bananagrams solver: it draws a hand
// from a tile bag (or accepts one on the command line), loads a dictionary, and
// prints the resulting board.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/williamdwatson/bananagrams-solver-web/internal/solver"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/bag"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

func main() {
	dictFile := flag.String("dict", "", "Path to the dictionary file to load")
	handFlag := flag.String("hand", "", "Explicit hand to solve, e.g. BANANA (random if empty)")
	drawCount := flag.Int("draw", 21, "Number of tiles to draw when -hand is not given")
	doubleBag := flag.Bool("double", false, "Draw from a 288-tile double bag instead of the standard 144")
	filterLettersOnBoard := flag.Int("filter-letters-on-board", 1, "Max already-placed letters a candidate word may borrow")
	maxWordsToCheck := flag.Int("max-words-to-check", 200000, "Search budget: max candidate words to try before giving up")

	profile := flag.Bool("profile", false, "Profile the solve")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	if *dictFile == "" {
		fmt.Println("Error: -dict is required")
		os.Exit(1)
	}

	f, err := os.Open(*dictFile)
	if err != nil {
		fmt.Println("Error opening dictionary:", err)
		os.Exit(1)
	}
	defer f.Close()

	dict, err := primitives.LoadDictionary(f)
	if err != nil {
		fmt.Println("Error loading dictionary:", err)
		os.Exit(1)
	}
	fmt.Println("Loaded", dict.Len(), "words")

	var hand primitives.Hand
	if *handFlag != "" {
		hand, err = handFromString(*handFlag)
	} else {
		randSource := rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond()))
		rnd := rand.New(randSource)
		counts := bag.StandardCounts
		if *doubleBag {
			counts = bag.DoubleCounts
		}
		var b *bag.Bag
		b, err = bag.New(counts, rnd)
		if err == nil {
			hand, err = b.DrawHand(*drawCount)
		}
	}
	if err != nil {
		fmt.Println("Error building hand:", err)
		os.Exit(1)
	}
	fmt.Println("Hand:", handString(hand))

	if *profile {
		pf, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer pf.Close()
		if err := pprof.StartCPUProfile(pf); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	result, err := solver.PlayFromScratch(solver.Request{
		Hand:                 hand,
		Dictionary:           dict,
		FilterLettersOnBoard: *filterLettersOnBoard,
		MaxWordsToCheck:      *maxWordsToCheck,
	})
	elapsed := time.Since(start)

	if err != nil {
		fmt.Println("No solution:", err)
		os.Exit(1)
	}

	fmt.Println("--------------------------------")
	for _, row := range result.BoardString {
		fmt.Println(strings.Join(row, ""))
	}
	fmt.Println("--------------------------------")
	fmt.Println("Bounding box:", result.Box.String())
	fmt.Println("Solved in", elapsed)
}

func handFromString(s string) (primitives.Hand, error) {
	counts := make([]int, primitives.NumLetters)
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		counts[r-'A']++
	}
	return primitives.NewHandFromCounts(counts)
}

func handString(h primitives.Hand) string {
	var b strings.Builder
	for l, c := range h {
		for i := 0; i < int(c); i++ {
			b.WriteByte(byte('A' + l))
		}
	}
	return b.String()
}
