package rmsd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
)

var (
	// ErrLengthMismatch is returned when two atom sets that must
	// correspond index-by-index have different lengths.
	ErrLengthMismatch = errors.New("rmsd: atom sets have different lengths")

	// ErrInsufficientPoints is returned when fewer than three atom
	// pairs are given to Fit; three are needed to pin down a rotation
	// in general position.
	ErrInsufficientPoints = errors.New("rmsd: fewer than 3 atom pairs")
)

// A Transformation is a proper rotation followed by a translation.
// Applying it to coordinates c yields Rotation*c + Translation.
type Transformation struct {
	Rotation    Matrix3
	Translation pdb.Coords
}

// Fit computes the rigid transformation that superposes mobile onto
// reference with the least sum of squared distances, assuming the i-th
// atom of mobile corresponds to the i-th atom of reference.
//
// This is the Kabsch algorithm: center both sets, take the SVD of the
// 3x3 cross-covariance matrix, and correct a reflection if the
// resulting rotation is improper. The returned rotation always has
// determinant +1. When the centered sets are collinear or coincident
// the rotation is not unique, though the returned one still minimizes
// the residual.
func Fit(mobile, reference pdb.Atoms) (Transformation, error) {
	if len(mobile) != len(reference) {
		return Transformation{}, fmt.Errorf("%w: %d and %d",
			ErrLengthMismatch, len(mobile), len(reference))
	}
	if len(mobile) < 3 {
		return Transformation{}, fmt.Errorf("%w: got %d",
			ErrInsufficientPoints, len(mobile))
	}

	cm := centroid(mobile)
	cr := centroid(reference)
	h := crossCovariance(mobile, reference, cm, cr)

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(3, 3, h[:]), mat.SVDFull) {
		return Transformation{}, errors.New("rmsd: SVD of covariance matrix failed to converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// R = V*U^T. A negative determinant means the best orthogonal map
	// is a reflection; flipping the smallest singular direction gives
	// the best proper rotation instead.
	rot := rotation(&v, &u)
	if rot.Det() < 0 {
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		rot = rotation(&v, &u)
	}

	rc := rot.MulVec(cm)
	return Transformation{
		Rotation: rot,
		Translation: pdb.Coords{
			cr[0] - rc[0],
			cr[1] - rc[1],
			cr[2] - rc[2],
		},
	}, nil
}

func rotation(v, u *mat.Dense) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// (V U^T)[i][j]
			r[i*3+j] = v.At(i, 0)*u.At(j, 0) +
				v.At(i, 1)*u.At(j, 1) +
				v.At(i, 2)*u.At(j, 2)
		}
	}
	return r
}

// Transform applies the transformation to a single coordinate.
func (t Transformation) Transform(c pdb.Coords) pdb.Coords {
	rc := t.Rotation.MulVec(c)
	return pdb.Coords{
		rc[0] + t.Translation[0],
		rc[1] + t.Translation[1],
		rc[2] + t.Translation[2],
	}
}

// Apply returns a copy of atoms with the transformation applied to
// every coordinate. Labels and order are preserved; the input is not
// modified.
func (t Transformation) Apply(atoms pdb.Atoms) pdb.Atoms {
	out := make(pdb.Atoms, len(atoms))
	for i, a := range atoms {
		a.Coords = t.Transform(a.Coords)
		out[i] = a
	}
	return out
}

// Compose returns the transformation equivalent to applying t first
// and then next.
func (t Transformation) Compose(next Transformation) Transformation {
	return Transformation{
		Rotation:    next.Rotation.Mult(t.Rotation),
		Translation: next.Transform(t.Translation),
	}
}

// crossCovariance computes the 3x3 cross-covariance H of the centered
// sets: H[a][b] is the sum over atoms of mobile-axis a times
// reference-axis b.
func crossCovariance(mobile, reference pdb.Atoms, cm, cr pdb.Coords) Matrix3 {
	var h Matrix3
	for i := range mobile {
		m, r := mobile[i].Coords, reference[i].Coords
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				h[a*3+b] += (m[a] - cm[a]) * (r[b] - cr[b])
			}
		}
	}
	return h
}

// centroid calculates the average position of a set of atoms.
func centroid(atoms pdb.Atoms) pdb.Coords {
	var c pdb.Coords
	for _, atom := range atoms {
		c[0] += atom.Coords[0]
		c[1] += atom.Coords[1]
		c[2] += atom.Coords[2]
	}
	n := float64(len(atoms))
	return pdb.Coords{c[0] / n, c[1] / n, c[2] / n}
}
