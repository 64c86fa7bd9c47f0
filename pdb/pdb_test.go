package pdb

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// atomLine formats a column-correct ATOM record.
func atomLine(serial int, name, residue string, chain byte, resInd int,
	x, y, z float64) string {

	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("ATOM  %5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f  1.00 12.34           C",
		serial, name, residue, chain, resInd, x, y, z)
}

func testEntry(t *testing.T) *Entry {
	t.Helper()
	lines := []string{
		"HEADER    ISOMERASE                01-JAN-20   XXXX",
		"SEQRES   1 A    3  MET LYS VAL",
		"SEQRES   1 B    2  GLY ALA",
		atomLine(1, "N", "MET", 'A', 1, 11.104, 6.134, -6.504),
		atomLine(2, "CA", "MET", 'A', 1, 12.560, 6.351, -6.508),
		atomLine(3, "CA", "LYS", 'A', 2, 14.887, 4.837, -4.220),
		atomLine(4, "CA", "VAL", 'A', 3, 17.741, 5.256, -1.752),
		"TER",
		atomLine(5, "CA", "GLY", 'B', 1, 2.000, 3.000, 4.000),
		atomLine(6, "CA", "ALA", 'B', 2, 5.000, 6.000, 7.000),
		"HETATM    7  O   HOH B 101      1.000   1.000   1.000  1.00  0.00           O",
		"END",
	}
	entry, err := Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return entry
}

func TestReadChains(t *testing.T) {
	entry := testEntry(t)

	if len(entry.Chains) != 2 {
		t.Fatalf("Read %d chains, but should read 2", len(entry.Chains))
	}
	if got := string(entry.ChainIdents()); got != "AB" {
		t.Fatalf("Chain identifiers are %q, but should be \"AB\"", got)
	}

	a := entry.Chains['A']
	if got := fmt.Sprintf("%s", a.Sequence); got != "MKV" {
		t.Fatalf("Chain A sequence is %q, but should be \"MKV\"", got)
	}
	if len(a.Atoms) != 4 || len(a.CaAtoms) != 3 {
		t.Fatalf("Chain A has %d atoms and %d CA atoms, but should have 4 and 3",
			len(a.Atoms), len(a.CaAtoms))
	}

	ca := a.CaAtoms[0]
	if ca.Name != "CA" || ca.Residue != "MET" || ca.ResidueInd != 1 {
		t.Fatalf("First CA atom is %s %s %d", ca.Name, ca.Residue, ca.ResidueInd)
	}
	if math.Abs(ca.Coords[0]-12.560) > 1e-12 ||
		math.Abs(ca.Coords[1]-6.351) > 1e-12 ||
		math.Abs(ca.Coords[2]+6.508) > 1e-12 {
		t.Fatalf("First CA coordinates are %v", ca.Coords)
	}
	if got := ca.Label(); got != "A/1/CA" {
		t.Fatalf("First CA label is %q, but should be \"A/1/CA\"", got)
	}

	// HETATM records (water here) are not atoms of a protein chain.
	if len(entry.AllAtoms()) != 6 {
		t.Fatalf("Entry has %d atoms, but should have 6", len(entry.AllAtoms()))
	}
}

func TestCaAtomsInRange(t *testing.T) {
	entry := testEntry(t)
	atoms := entry.Chains['A'].CaAtomsInRange(2, 3)
	if len(atoms) != 2 {
		t.Fatalf("Range 2-3 has %d CA atoms, but should have 2", len(atoms))
	}
	if atoms[0].ResidueInd != 2 || atoms[1].ResidueInd != 3 {
		t.Fatalf("Range 2-3 returned residues %d and %d",
			atoms[0].ResidueInd, atoms[1].ResidueInd)
	}
}

func TestCommonCa(t *testing.T) {
	entry1 := testEntry(t)

	// A second structure covering only residues 2-4 of chain A.
	lines := []string{
		atomLine(1, "CA", "LYS", 'A', 2, 0, 0, 0),
		atomLine(2, "CA", "VAL", 'A', 3, 1, 1, 1),
		atomLine(3, "CA", "ALA", 'A', 4, 2, 2, 2),
	}
	entry2, err := Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	a1, a2, err := entry1.CommonCa(entry2, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if len(a1) != 2 || len(a2) != 2 {
		t.Fatalf("Found %d/%d common CA atoms, but should find 2/2",
			len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i].ResidueInd != a2[i].ResidueInd {
			t.Fatalf("Common CA pair %d has residues %d and %d",
				i, a1[i].ResidueInd, a2[i].ResidueInd)
		}
	}

	if _, _, err := entry1.CommonCa(entry2, 'Z'); err == nil {
		t.Fatal("A missing chain should be an error.")
	}
}

func TestWritePreservesColumns(t *testing.T) {
	entry := testEntry(t)

	// Nudge every coordinate, then write the atoms back out.
	moved := make(Atoms, 0, len(entry.AllAtoms()))
	for _, a := range entry.AllAtoms() {
		a.Coords[0] += 1.5
		moved = append(moved, a)
	}

	var buf strings.Builder
	if err := WriteAtoms(&buf, moved); err != nil {
		t.Fatal(err)
	}
	out := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// 6 atoms, one TER between the chains and one at the end.
	if len(out) != 8 {
		t.Fatalf("Wrote %d lines, but should write 8:\n%s",
			len(out), buf.String())
	}
	first := out[0]
	if !strings.HasPrefix(first, "ATOM      1") {
		t.Fatalf("First record is %q; serials should restart at 1", first)
	}
	if got := strings.TrimSpace(first[30:38]); got != "12.604" {
		t.Fatalf("Rewritten x is %q, but should be \"12.604\"", got)
	}
	// Everything after the coordinates is preserved verbatim.
	if got := first[54:]; got != "  1.00 12.34           C" {
		t.Fatalf("Trailing columns are %q; they should be untouched", got)
	}
	if out[4] != "TER" {
		t.Fatalf("Line 5 is %q, but should be \"TER\"", out[4])
	}

	reread, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(reread.AllAtoms()) != 6 {
		t.Fatalf("Reread %d atoms, but should reread 6",
			len(reread.AllAtoms()))
	}
	if x := reread.AllAtoms()[0].Coords[0]; math.Abs(x-12.604) > 1e-9 {
		t.Fatalf("Reread x is %f, but should be 12.604", x)
	}
}

func TestReadSkipsAltLocs(t *testing.T) {
	lines := []string{
		"ATOM      1  CA AMET A   1      11.104   6.134  -6.504  0.50  0.00           C",
		"ATOM      2  CA BMET A   1      11.204   6.234  -6.604  0.50  0.00           C",
	}
	entry, err := Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(entry.AllAtoms()) != 1 {
		t.Fatalf("Read %d atoms, but only the 'A' alternate location "+
			"should be kept", len(entry.AllAtoms()))
	}
}
