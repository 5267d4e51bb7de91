package board

import "github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"

// IsValidHorizontal checks that board contains only dictionary words after a word
// was played horizontally along row from startCol to endCol (inclusive), per
// spec.md section 4.4. It scans only the bounding box [minRow,maxRow] x
// [minCol,maxCol] - the region that could possibly have changed - and does not
// check connectedness, which is enforced by the anchor check in PlayWord together
// with the seed-at-center discipline of PlayFromScratch.
func IsValidHorizontal(b *Board, box BoundingBox, row, startCol, endCol int, dict *primitives.Dictionary) bool {
	// Check across the row the word was played on.
	if !scanLineValid(b, row, box.MinCol, box.MaxCol, true, dict) {
		return false
	}
	// Check down each column the word touched.
	for col := startCol; col <= endCol; col++ {
		if !scanLineValid(b, col, box.MinRow, box.MaxRow, false, dict) {
			return false
		}
	}
	return true
}

// IsValidVertical is the vertical-play symmetric counterpart to IsValidHorizontal.
func IsValidVertical(b *Board, box BoundingBox, startRow, endRow, col int, dict *primitives.Dictionary) bool {
	if !scanLineValid(b, col, box.MinRow, box.MaxRow, false, dict) {
		return false
	}
	for row := startRow; row <= endRow; row++ {
		if !scanLineValid(b, row, box.MinCol, box.MaxCol, true, dict) {
			return false
		}
	}
	return true
}

// scanLineValid walks a single row (horizontal=true, fixed=row index) or column
// (horizontal=false, fixed=col index) over [lo,hi], checking every maximal run of
// two or more contiguous non-empty cells against dict.
func scanLineValid(b *Board, fixed, lo, hi int, horizontal bool, dict *primitives.Dictionary) bool {
	var current primitives.Word
	flush := func() bool {
		if len(current) > 1 && !dict.Contains(current) {
			return false
		}
		current = current[:0]
		return true
	}
	for i := lo; i <= hi; i++ {
		var val byte
		if horizontal {
			val = b.GetVal(fixed, i)
		} else {
			val = b.GetVal(i, fixed)
		}
		if val != EmptyValue {
			current = append(current, val)
			continue
		}
		if !flush() {
			return false
		}
	}
	return flush()
}
