package seq

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned when an input to Align has no residues.
var ErrEmptySequence = errors.New("seq: empty sequence")

// Scoring holds the parameters of a linear-gap alignment: a bonus for
// matching residues, a penalty for mismatched residues and a penalty
// per gap position. Mismatch and Gap are typically negative.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// An Alignment is a pair of equal-length gapped sequences. Removing the
// gaps from A and B recovers the two sequences given to Align, in order.
type Alignment struct {
	A, B Sequence
}

// Len returns the number of columns in the alignment.
func (al Alignment) Len() int {
	return len(al.A.Residues)
}

// Align computes the optimal global alignment of a and b under s using
// the Needleman-Wunsch algorithm with linear gap penalties.
//
// Traceback ties are broken deterministically: a diagonal move is taken
// whenever it reproduces the cell value, and otherwise consuming a
// residue of a is preferred over consuming a residue of b. Repeated
// calls with the same inputs return the same alignment.
//
// Time and space are O(len(a) * len(b)), which is fine for protein
// chains but not for genome-scale input.
func Align(a, b Sequence, s Scoring) (Alignment, error) {
	return align(a, b, func(x, y Residue) int {
		if x == y {
			return s.Match
		}
		return s.Mismatch
	}, s.Gap)
}

func align(a, b Sequence, score func(x, y Residue) int, gap int) (Alignment, error) {
	m, n := a.Len(), b.Len()
	if m == 0 || n == 0 {
		return Alignment{}, fmt.Errorf(
			"%w: cannot align %q (%d residues) with %q (%d residues)",
			ErrEmptySequence, a.Name, m, b.Name, n)
	}

	// rows correspond to residues of a, columns to residues of b
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
		table[i][0] = i * gap
	}
	for j := 0; j <= n; j++ {
		table[0][j] = j * gap
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			table[i][j] = max3(
				table[i-1][j-1]+score(a.Residues[i-1], b.Residues[j-1]),
				table[i-1][j]+gap,
				table[i][j-1]+gap)
		}
	}

	// Trace an optimal path from (m, n) back to (0, 0). Moves are
	// re-derived from the table values rather than stored, so the
	// tie-break order below is the whole story: diagonal first, then
	// consume a, then consume b.
	ra := make([]Residue, 0, m+n)
	rb := make([]Residue, 0, m+n)
	for i, j := m, n; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 &&
			table[i][j] == table[i-1][j-1]+score(a.Residues[i-1], b.Residues[j-1]):
			ra = append(ra, a.Residues[i-1])
			rb = append(rb, b.Residues[j-1])
			i--
			j--
		case i > 0 && table[i][j] == table[i-1][j]+gap:
			ra = append(ra, a.Residues[i-1])
			rb = append(rb, Gap)
			i--
		default:
			ra = append(ra, Gap)
			rb = append(rb, b.Residues[j-1])
			j--
		}
	}

	// The path was accumulated backwards.
	for i, j := 0, len(ra)-1; i < j; i, j = i+1, j-1 {
		ra[i], ra[j] = ra[j], ra[i]
		rb[i], rb[j] = rb[j], rb[i]
	}

	return Alignment{
		A: Sequence{Name: a.Name, Residues: ra},
		B: Sequence{Name: b.Name, Residues: rb},
	}, nil
}

// Identity returns the fraction of matching non-gap columns over the
// length of the longer ungapped input, so unaligned residues count
// against identity. An empty alignment has identity 0.
func (al Alignment) Identity() float64 {
	matched := 0
	la, lb := 0, 0
	for c := 0; c < al.Len(); c++ {
		x, y := al.A.Residues[c], al.B.Residues[c]
		if x != Gap {
			la++
		}
		if y != Gap {
			lb++
		}
		if x != Gap && x == y {
			matched++
		}
	}
	longer := la
	if lb > la {
		longer = lb
	}
	if longer == 0 {
		return 0
	}
	return float64(matched) / float64(longer)
}

// Correspondence maps each 1-based position of the ungapped A sequence
// to the aligned 1-based position of the ungapped B sequence. Positions
// aligned against a gap on either side are absent from the map. The map
// is rebuilt on every call.
func (al Alignment) Correspondence() map[int]int {
	corr := make(map[int]int)
	pa, pb := 0, 0
	for c := 0; c < al.Len(); c++ {
		x, y := al.A.Residues[c], al.B.Residues[c]
		if x != Gap {
			pa++
		}
		if y != Gap {
			pb++
		}
		if x != Gap && y != Gap {
			corr[pa] = pb
		}
	}
	return corr
}

// Score re-scores the alignment column by column under s. For an
// alignment returned by Align with the same parameters, this equals the
// dynamic-programming optimum.
func (al Alignment) Score(s Scoring) int {
	total := 0
	for c := 0; c < al.Len(); c++ {
		x, y := al.A.Residues[c], al.B.Residues[c]
		switch {
		case x == Gap || y == Gap:
			total += s.Gap
		case x == y:
			total += s.Match
		default:
			total += s.Mismatch
		}
	}
	return total
}

// Region returns the columns spanning the 1-based positions start
// through end of the ungapped A sequence, inclusive. Columns where A is
// a gap are included when they fall between the region's end points.
// Used to inspect a sub-region of an alignment, e.g. the QRDR of a
// gyrase chain.
func (al Alignment) Region(start, end int) Alignment {
	first, last := -1, -1
	pa := 0
	for c := 0; c < al.Len(); c++ {
		if al.A.Residues[c] == Gap {
			continue
		}
		pa++
		if pa == start {
			first = c
		}
		if pa == end {
			last = c
		}
	}
	if first == -1 || last == -1 || last < first {
		return Alignment{
			A: Sequence{Name: al.A.Name},
			B: Sequence{Name: al.B.Name},
		}
	}
	return Alignment{
		A: Sequence{Name: al.A.Name, Residues: al.A.Residues[first : last+1]},
		B: Sequence{Name: al.B.Name, Residues: al.B.Residues[first : last+1]},
	}
}

func max3(a, b, c int) int {
	switch {
	case a >= b && a >= c:
		return a
	case b >= c:
		return b
	}
	return c
}
