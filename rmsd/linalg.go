package rmsd

import (
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
)

// A Matrix3 is a 3x3 matrix in row-major order:
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
type Matrix3 [9]float64

// Identity3 is the 3x3 identity matrix.
var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Mult returns the matrix product a*b.
func (a Matrix3) Mult(b Matrix3) Matrix3 {
	var m Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3]*b[c] + a[r*3+1]*b[3+c] + a[r*3+2]*b[6+c]
		}
	}
	return m
}

// Transpose returns the transpose of a.
func (a Matrix3) Transpose() Matrix3 {
	return Matrix3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

// Det returns the determinant of a.
func (a Matrix3) Det() float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// MulVec returns the matrix-vector product a*v.
func (a Matrix3) MulVec(v pdb.Coords) pdb.Coords {
	return pdb.Coords{
		a[0]*v[0] + a[1]*v[1] + a[2]*v[2],
		a[3]*v[0] + a[4]*v[1] + a[5]*v[2],
		a[6]*v[0] + a[7]*v[1] + a[8]*v[2],
	}
}
