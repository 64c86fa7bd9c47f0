// Package constraint serializes contact sets as Rosetta AtomPair
// distance restraints, the format consumed by comparative-modeling
// refinement.
package constraint

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/contact"
)

const header = `# Distance constraints derived from template interface contacts.
#
`

// WriteHarmonic writes one HARMONIC restraint per contact, with the
// tolerance chosen per contact by bands:
//
//	AtomPair CA 45 CA 112 HARMONIC 6.42 1.00
func WriteHarmonic(w io.Writer, set contact.Set, bands contact.Bands) error {
	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString(header); err != nil {
		return err
	}
	for _, c := range set {
		_, err := fmt.Fprintf(buf, "AtomPair %s %d %s %d HARMONIC %.2f %.2f\n",
			c.A.Name, c.A.ResidueInd, c.B.Name, c.B.ResidueInd,
			c.Distance, bands.Stdev(c))
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteBounded writes one BOUNDED restraint per contact, spanning the
// observed distance plus or minus tol (never below zero):
//
//	AtomPair CA 45 CA 112 BOUNDED 4.42 8.42 0.5 NOE
func WriteBounded(w io.Writer, set contact.Set, tol float64) error {
	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString(header); err != nil {
		return err
	}
	for _, c := range set {
		lo := c.Distance - tol
		if lo < 0 {
			lo = 0
		}
		_, err := fmt.Fprintf(buf, "AtomPair %s %d %s %d BOUNDED %.2f %.2f 0.5 NOE\n",
			c.A.Name, c.A.ResidueInd, c.B.Name, c.B.ResidueInd,
			lo, c.Distance+tol)
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}
