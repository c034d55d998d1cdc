// Package textpos resolves byte offsets in a document to 1-based line numbers.
// Validators build one Index per document and reuse it for every diagnostic
package textpos

import "sort"

// Index holds precomputed line boundaries for a single document
type Index struct {
	// ends[i] is the cumulative byte length of lines 0..i, each counted
	// with a trailing newline whether or not the source had one
	ends []int
}

// New builds an Index over text
func New(text string) *Index {
	ends := make([]int, 0, 64)
	total := 0
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			total += i - start + 1
			ends = append(ends, total)
			start = i + 1
		}
	}
	// final line, with the synthetic newline so an offset at EOF still resolves
	total += len(text) - start + 1
	ends = append(ends, total)
	return &Index{ends: ends}
}

// Lines returns the number of lines in the indexed document
func (ix *Index) Lines() int { return len(ix.ends) }

// Line resolves a byte offset to a 1-based line number.
// ok is false when the offset is negative or beyond the indexed text;
// callers should omit the line from a diagnostic rather than guess
func (ix *Index) Line(offset int) (int, bool) {
	if offset < 0 || offset >= ix.ends[len(ix.ends)-1] {
		return 0, false
	}
	n := sort.SearchInts(ix.ends, offset+1)
	return n + 1, true
}
