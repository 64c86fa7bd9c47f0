// Package contact enumerates atom pairs within a distance cutoff
// between two atom sets, typically the two sides of a subunit
// interface, and classifies them by separation for restraint
// generation.
package contact

import (
	"errors"
	"fmt"
	"math"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
)

// ErrInvalidCutoff is returned when a distance cutoff is not positive.
var ErrInvalidCutoff = errors.New("contact: cutoff must be positive")

// A Contact is a pair of atoms closer than some cutoff, with their
// Euclidean distance in Angstroms.
type Contact struct {
	A, B     pdb.Atom
	Distance float64
}

// A Set is the result of one contact search. Contacts appear in the
// scan order of the input sets: by atom of the first set, then by atom
// of the second.
type Set []Contact

// Find returns every pair (a, b) with a from setA and b from setB whose
// distance is strictly less than cutoff. An empty input set yields an
// empty result, not an error.
//
// The scan is a plain all-pairs pass. Interfaces are small enough
// (hundreds of filtered atoms a side) that a spatial index has not been
// worth it.
func Find(setA, setB pdb.Atoms, cutoff float64) (Set, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidCutoff, cutoff)
	}
	var contacts Set
	for _, a := range setA {
		for _, b := range setB {
			if d := distance(a.Coords, b.Coords); d < cutoff {
				contacts = append(contacts, Contact{A: a, B: b, Distance: d})
			}
		}
	}
	return contacts, nil
}

// A Filter reports whether an atom takes part in a contact search.
// Filters are applied to the input sets before scanning, not inside it.
type Filter func(pdb.Atom) bool

// CA keeps only carbon-alpha atoms.
func CA(a pdb.Atom) bool {
	return a.Name == "CA"
}

// Backbone keeps backbone atoms plus the beta carbon, the atoms the
// refinement step accepts in restraints.
func Backbone(a pdb.Atom) bool {
	switch a.Name {
	case "N", "CA", "C", "O", "CB":
		return true
	}
	return false
}

// Keep returns the atoms accepted by the filter, preserving order.
func Keep(atoms pdb.Atoms, keep Filter) pdb.Atoms {
	kept := make(pdb.Atoms, 0, len(atoms))
	for _, a := range atoms {
		if keep(a) {
			kept = append(kept, a)
		}
	}
	return kept
}

// Bands maps a contact to a restraint tolerance by its separation:
// contacts closer than Near get the tight NearStdev, the rest get
// FarStdev. The thresholds are deliberately caller-supplied; the
// working values for gyrase interface restraints were Near 5.0 with
// stdevs 1.0 and 2.0.
type Bands struct {
	Near      float64
	NearStdev float64
	FarStdev  float64
}

// Stdev returns the tolerance band for the contact.
func (b Bands) Stdev(c Contact) float64 {
	if c.Distance < b.Near {
		return b.NearStdev
	}
	return b.FarStdev
}

func distance(a, b pdb.Coords) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
