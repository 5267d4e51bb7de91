// Package board implements the packed 144x144 Bananagrams board: the primitive
// PlayWord/UndoPlay operations and their bounding-box bookkeeping, per spec.md
// section 4.2-4.3.
package board

import (
	"fmt"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

// Size is the number of rows/columns in the board.
const Size = 144

// EmptyValue is the sentinel written into unoccupied cells.
const EmptyValue = primitives.EmptyValue

// Direction is the axis a word is played along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// BoundingBox is the tight axis-aligned rectangle enclosing all non-empty cells.
// Defined is false until the first placement.
type BoundingBox struct {
	MinRow, MaxRow, MinCol, MaxCol int
	Defined                        bool
}

// Expand widens the box to include the rectangle [minRow,maxRow] x [minCol,maxCol],
// per spec.md section 4.2: the box is only ever widened during search, never
// shrunk on backtrack.
func (b BoundingBox) Expand(minRow, maxRow, minCol, maxCol int) BoundingBox {
	if !b.Defined {
		return BoundingBox{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol, Defined: true}
	}
	return BoundingBox{
		MinRow:  min(b.MinRow, minRow),
		MaxRow:  max(b.MaxRow, maxRow),
		MinCol:  min(b.MinCol, minCol),
		MaxCol:  max(b.MaxCol, maxCol),
		Defined: true,
	}
}

// Board is the flat row-major Size x Size cell array. Each cell holds either a
// letter index 0-25 or EmptyValue.
type Board struct {
	cells [Size * Size]byte
}

// New creates a board with every cell initialized to EmptyValue.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = EmptyValue
	}
	return b
}

func (b *Board) index(row, col int) int {
	return row*Size + col
}

// GetVal returns the value at (row, col). It panics if row or col are out of range,
// matching the reference's "index not in range" expectation - this is an invariant
// violation, not a recoverable condition.
func (b *Board) GetVal(row, col int) byte {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("board index out of range: (%d, %d)", row, col))
	}
	return b.cells[b.index(row, col)]
}

// SetVal sets the value at (row, col).
func (b *Board) SetVal(row, col int, val byte) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("board index out of range: (%d, %d)", row, col))
	}
	b.cells[b.index(row, col)] = val
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// LetterUsage classifies how a play consumed the hand, per spec.md section 4.3.
type LetterUsage int

const (
	// Remaining means the hand still has unused tiles after the play.
	Remaining LetterUsage = iota
	// Finished means the play consumed the hand's last tile.
	Finished
	// Overused means the play required more of some letter than the hand had.
	Overused
)

func (u LetterUsage) String() string {
	switch u {
	case Remaining:
		return "Remaining"
	case Finished:
		return "Finished"
	case Overused:
		return "Overused"
	default:
		return "Unknown"
	}
}

// PlayOutcome is the tagged result of a PlayWord attempt. Exactly one of the
// following holds: OutOfBounds, or Accepted == false (rejected - not touching, a
// letter conflict, an overused letter, or a pure overlap with no new cells; caller
// must still call UndoPlay on Written), or a
// successful write with Usage set.
type PlayOutcome struct {
	OutOfBounds bool
	Accepted    bool
	Written     []Cell
	Remaining   primitives.Hand
	Usage       LetterUsage
}

// PlayWord attempts to play word at (row, col) along direction, against hand (the
// tiles available before this play). It mutates board in place.
//
// Per spec.md section 4.3:
//  1. bounds check: start + length must be less than Size, so the word's last
//     letter lands on row/col 142 at most; a word reaching row/col 143 is
//     reported as OutOfBounds.
//  2. anchor check: bypassed entirely by the caller for the seed placement; for
//     every other placement the word must touch the existing occupied region, either
//     by abutting a letter immediately before/after the span, or by running beside an
//     occupied cell on the perpendicular axis.
//  3. write-and-consume: empty cells are written and their letter is deducted from
//     hand; cells that already hold the same letter are left as an overlap; any other
//     occupied cell is a conflict.
//  4. classification: Finished if the hand empties and at least one new cell was
//     written; Remaining if tiles are left and at least one new cell was written;
//     otherwise the placement is rejected (not touching, or a pure overlap).
func (b *Board) PlayWord(word primitives.Word, row, col int, dir Direction, hand primitives.Hand) PlayOutcome {
	remaining := hand

	length := len(word)
	if dir == Horizontal {
		if col+length >= Size {
			return PlayOutcome{OutOfBounds: true, Remaining: remaining}
		}
	} else {
		if row+length >= Size {
			return PlayOutcome{OutOfBounds: true, Remaining: remaining}
		}
	}

	if !b.touches(row, col, length, dir) {
		return PlayOutcome{Accepted: false, Remaining: remaining}
	}

	written := make([]Cell, 0, length)
	entirelyOverlaps := true
	for i := 0; i < length; i++ {
		r, c := stepCell(row, col, i, dir)
		existing := b.GetVal(r, c)
		letter := word[i]
		switch {
		case existing == EmptyValue:
			if remaining[letter] == 0 {
				return PlayOutcome{Accepted: false, Written: written, Remaining: remaining, Usage: Overused}
			}
			b.SetVal(r, c, letter)
			remaining[letter]--
			written = append(written, Cell{r, c})
			entirelyOverlaps = false
		case existing != letter:
			return PlayOutcome{Accepted: false, Written: written, Remaining: remaining}
		}
	}

	if entirelyOverlaps {
		return PlayOutcome{Accepted: false, Written: written, Remaining: remaining}
	}
	if remaining.IsEmpty() {
		return PlayOutcome{Accepted: true, Written: written, Remaining: remaining, Usage: Finished}
	}
	return PlayOutcome{Accepted: true, Written: written, Remaining: remaining, Usage: Remaining}
}

// touches reports whether a word of the given length, placed at (row, col) along
// dir, borders the existing occupied region per spec.md section 4.3 part 2.
func (b *Board) touches(row, col, length int, dir Direction) bool {
	if dir == Horizontal {
		if col > 0 && b.GetVal(row, col-1) != EmptyValue {
			return true
		}
		if col+length < Size && b.GetVal(row, col+length) != EmptyValue {
			return true
		}
		for c := col; c < col+length; c++ {
			if row+1 < Size && b.GetVal(row+1, c) != EmptyValue {
				return true
			}
			if row > 0 && b.GetVal(row-1, c) != EmptyValue {
				return true
			}
		}
		return false
	}
	if row > 0 && b.GetVal(row-1, col) != EmptyValue {
		return true
	}
	if row+length < Size && b.GetVal(row+length, col) != EmptyValue {
		return true
	}
	for r := row; r < row+length; r++ {
		if col+1 < Size && b.GetVal(r, col+1) != EmptyValue {
			return true
		}
		if col > 0 && b.GetVal(r, col-1) != EmptyValue {
			return true
		}
	}
	return false
}

func stepCell(row, col, i int, dir Direction) (int, int) {
	if dir == Horizontal {
		return row, col + i
	}
	return row + i, col
}

// UndoPlay resets every cell in written back to EmptyValue. Calling it on the
// indices from any PlayWord call - accepted or rejected - restores the board
// byte-for-byte to its pre-placement state.
func (b *Board) UndoPlay(written []Cell) {
	for _, cell := range written {
		b.SetVal(cell.Row, cell.Col, EmptyValue)
	}
}
