package constraint

import (
	"strings"
	"testing"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/contact"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
)

func testContacts() contact.Set {
	return contact.Set{
		{
			A:        pdb.Atom{Name: "CA", Chain: 'A', ResidueInd: 45},
			B:        pdb.Atom{Name: "CA", Chain: 'B', ResidueInd: 112},
			Distance: 3.456,
		},
		{
			A:        pdb.Atom{Name: "CB", Chain: 'A', ResidueInd: 46},
			B:        pdb.Atom{Name: "O", Chain: 'B', ResidueInd: 113},
			Distance: 6.789,
		},
		{
			A:        pdb.Atom{Name: "N", Chain: 'A', ResidueInd: 47},
			B:        pdb.Atom{Name: "CA", Chain: 'B', ResidueInd: 114},
			Distance: 1.2,
		},
	}
}

func TestWriteHarmonic(t *testing.T) {
	bands := contact.Bands{Near: 5.0, NearStdev: 1.0, FarStdev: 2.0}
	var buf strings.Builder
	if err := WriteHarmonic(&buf, testContacts(), bands); err != nil {
		t.Fatal(err)
	}
	want := `# Distance constraints derived from template interface contacts.
#
AtomPair CA 45 CA 112 HARMONIC 3.46 1.00
AtomPair CB 46 O 113 HARMONIC 6.79 2.00
AtomPair N 47 CA 114 HARMONIC 1.20 1.00
`
	if buf.String() != want {
		t.Fatalf("\nComputed restraints are\n\n%s\nbut answer is\n\n%s",
			buf.String(), want)
	}
}

func TestWriteBounded(t *testing.T) {
	var buf strings.Builder
	if err := WriteBounded(&buf, testContacts(), 2.0); err != nil {
		t.Fatal(err)
	}
	want := `# Distance constraints derived from template interface contacts.
#
AtomPair CA 45 CA 112 BOUNDED 1.46 5.46 0.5 NOE
AtomPair CB 46 O 113 BOUNDED 4.79 8.79 0.5 NOE
AtomPair N 47 CA 114 BOUNDED 0.00 3.20 0.5 NOE
`
	if buf.String() != want {
		t.Fatalf("\nComputed restraints are\n\n%s\nbut answer is\n\n%s",
			buf.String(), want)
	}
}

func TestWriteEmptySet(t *testing.T) {
	var buf strings.Builder
	if err := WriteHarmonic(&buf, nil, contact.Bands{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "#") || strings.Contains(buf.String(), "AtomPair") {
		t.Fatalf("An empty set should write only the header, got:\n%s",
			buf.String())
	}
}
