package seq

import (
	"github.com/BurntSushi/cablastp/blosum"
)

// A SubstMatrix scores residue pairs by table lookup instead of a flat
// match/mismatch split. The gap penalty is taken from the matrix's own
// gap column.
type SubstMatrix struct {
	index  map[Residue]int
	scores [][]int
	gap    int
}

// Blosum62 returns the BLOSUM62 substitution matrix. Residues outside
// the BLOSUM62 alphabet score as the wildcard 'X'.
func Blosum62() *SubstMatrix {
	index := make(map[Residue]int, len(blosum.Alphabet62))
	for i, r := range blosum.Alphabet62 {
		index[Residue(r)] = i
	}
	m := &SubstMatrix{
		index:  index,
		scores: blosum.Matrix62,
	}
	m.gap = m.Score('A', Gap)
	return m
}

// Score returns the substitution score for the residue pair (x, y).
func (m *SubstMatrix) Score(x, y Residue) int {
	return m.scores[m.lookup(x)][m.lookup(y)]
}

func (m *SubstMatrix) lookup(r Residue) int {
	if i, ok := m.index[r]; ok {
		return i
	}
	return m.index['X']
}

// AlignSubst is Align with substitution-matrix scoring. The traceback
// tie-break rule is the same as Align's.
func AlignSubst(a, b Sequence, m *SubstMatrix) (Alignment, error) {
	return align(a, b, m.Score, m.gap)
}
