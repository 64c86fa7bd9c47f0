package pdb

import (
	"bufio"
	"fmt"
	"io"
)

// WriteAtoms writes the given atoms as ATOM records. Atoms that were
// read from a file keep every non-coordinate column of their original
// record; only the coordinate columns are rewritten, so occupancy,
// B-factors and element fields survive a transformation round trip.
// Atom serial numbers are renumbered sequentially from 1.
//
// A TER record terminates the output whenever the chain identifier
// changes and after the final atom.
func WriteAtoms(w io.Writer, atoms Atoms) error {
	buf := bufio.NewWriter(w)
	var chain byte
	for i, atom := range atoms {
		if i > 0 && atom.Chain != chain {
			if _, err := fmt.Fprintln(buf, "TER"); err != nil {
				return err
			}
		}
		chain = atom.Chain
		if _, err := fmt.Fprintln(buf, atom.record(i+1)); err != nil {
			return err
		}
	}
	if len(atoms) > 0 {
		if _, err := fmt.Fprintln(buf, "TER"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// record formats the atom as an ATOM line with the given serial number.
func (a Atom) record(serial int) string {
	coords := fmt.Sprintf("%8.3f%8.3f%8.3f",
		a.Coords[0], a.Coords[1], a.Coords[2])
	if len(a.line) >= 54 {
		return fmt.Sprintf("ATOM  %5d", serial) + a.line[11:30] + coords + a.line[54:]
	}

	// Atoms built in memory have no original record to preserve.
	name := a.Name
	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("ATOM  %5d %-4s %3s %c%4d    %s",
		serial, name, a.Residue, a.Chain, a.ResidueInd, coords)
}
