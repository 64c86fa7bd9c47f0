package rmsd

import (
	"fmt"
	"math"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
)

// RMSD returns the root-mean-square deviation between two atom sets of
// equal length, pairing atoms by index. No superposition is performed;
// coordinates are compared where they are.
func RMSD(a, b pdb.Atoms) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		ca, cb := a[i].Coords, b[i].Coords
		dx := ca[0] - cb[0]
		dy := ca[1] - cb[1]
		dz := ca[2] - cb[2]
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / float64(len(a))), nil
}

// Superposed returns the RMSD between mobile and reference after
// optimally superposing mobile onto reference. This is the deviation
// that remains once the rigid-body difference between the two sets is
// removed.
func Superposed(mobile, reference pdb.Atoms) (float64, error) {
	t, err := Fit(mobile, reference)
	if err != nil {
		return 0, err
	}
	return RMSD(t.Apply(mobile), reference)
}
