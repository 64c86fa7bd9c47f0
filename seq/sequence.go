package seq

// A Sequence is an ordered list of residues with an opaque name used in
// diagnostics. DNA, RNA and amino acid sequences are all representable;
// nothing in this package interprets residues beyond equality.
type Sequence struct {
	Name     string
	Residues []Residue
}

// A Residue corresponds to a single entry in a sequence.
type Residue byte

// Gap is the residue emitted by alignment for an unmatched position.
const Gap Residue = '-'

// Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	residues := make([]Residue, len(s.Residues))
	copy(residues, s.Residues)
	return Sequence{
		Name:     s.Name,
		Residues: residues,
	}
}

// Len returns the number of residues in the sequence.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// String returns the residues of the sequence as a plain string.
func (s Sequence) String() string {
	bs := make([]byte, len(s.Residues))
	for i, r := range s.Residues {
		bs[i] = byte(r)
	}
	return string(bs)
}

// Ungapped returns a copy of the sequence with all gap residues removed.
func (s Sequence) Ungapped() Sequence {
	residues := make([]Residue, 0, len(s.Residues))
	for _, r := range s.Residues {
		if r != Gap {
			residues = append(residues, r)
		}
	}
	return Sequence{Name: s.Name, Residues: residues}
}
