package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]seq.Residue{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[seq.Residue]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// Coords is a triple of x, y and z coordinates in Angstroms.
type Coords [3]float64

// An Atom is a single ATOM record: a labeled coordinate. The label is
// the (chain, residue number, atom name) triple.
type Atom struct {
	Name       string
	Residue    string
	ResidueInd int
	Chain      byte
	Coords     Coords

	// The original record text, kept so that writing the atom back out
	// preserves every non-coordinate column. Empty for atoms built in
	// memory.
	line string
}

// Label returns a short unique identifier for the atom, e.g. "A/91/CA".
func (a Atom) Label() string {
	return fmt.Sprintf("%c/%d/%s", a.Chain, a.ResidueInd, a.Name)
}

// Atoms is an ordered list of atoms.
type Atoms []Atom

// Entry represents the information read from a single PDB file: its
// protein chains and the ATOM records in file order.
type Entry struct {
	Path   string
	Chains map[byte]*Chain

	atoms Atoms
}

// Chain represents a protein chain or subunit in a PDB file: its
// identifier, the amino acid sequence from the SEQRES records, and the
// atoms from the ATOM records.
type Chain struct {
	Ident    byte
	Sequence []seq.Residue
	Atoms    Atoms
	CaAtoms  Atoms
}

// New reads a PDB entry from a file. If the file name ends with ".gz",
// gzip decompression is used.
//
// Only SEQRES and ATOM records are interpreted. ATOM records that do
// not correspond to an amino acid residue are skipped, as are alternate
// locations other than 'A'.
func New(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		greader, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer greader.Close()
		reader = greader
	}

	entry, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading '%s': %w", fileName, err)
	}
	entry.Path = fileName
	return entry, nil
}

// Read parses a PDB entry from r. See New.
func Read(r io.Reader) (*Entry, error) {
	entry := &Entry{
		Chains: make(map[byte]*Chain),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "SEQRES":
			entry.parseSeqres(line)
		case "ATOM":
			entry.parseAtom(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Name returns the base name of the entry's path with PDB file
// extensions stripped.
func (e *Entry) Name() string {
	name := path.Base(e.Path)
	for _, ext := range []string{".gz", ".pdb", ".ent"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// AllAtoms returns every atom of the entry in file order.
func (e *Entry) AllAtoms() Atoms {
	return e.atoms
}

// ChainIdents returns the chain identifiers of the entry in sorted
// order. (The Chains map iterates in random order.)
func (e *Entry) ChainIdents() []byte {
	idents := make([]byte, 0, len(e.Chains))
	for ident := range e.Chains {
		idents = append(idents, ident)
	}
	sort.Slice(idents, func(i, j int) bool { return idents[i] < idents[j] })
	return idents
}

// getOrMakeChain looks for a chain corresponding to the identifier and
// creates it on first use.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	chain := &Chain{
		Ident:    ident,
		Sequence: make([]seq.Residue, 0, 16),
	}
	e.Chains[ident] = chain
	return chain
}

// parseSeqres reads the amino acid residues of a SEQRES record into the
// chain's sequence. Non-amino-acid residues are skipped.
//
// N.B. This assumes the SEQRES records appear in order in the file.
func (e *Entry) parseSeqres(line string) {
	if len(line) < 12 {
		return
	}
	chain := e.getOrMakeChain(line[11])

	// Residues are in columns 19-21, 23-25, ..., 67-69.
	for i := 19; i+3 <= len(line) && i <= 67; i += 4 {
		residue := strings.TrimSpace(line[i : i+3])
		if single, ok := AminoThreeToOne[residue]; ok {
			chain.Sequence = append(chain.Sequence, single)
		}
	}
}

// parseAtom reads one ATOM record, keeping the original text so the
// atom can be written back out unchanged except for its coordinates.
func (e *Entry) parseAtom(line string) {
	if len(line) < 54 {
		return
	}

	residue := strings.TrimSpace(line[17:20])
	if _, ok := AminoThreeToOne[residue]; !ok {
		return
	}
	if alt := line[16]; alt != ' ' && alt != 'A' {
		return
	}

	resInd, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return
	}
	x, xerr := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	y, yerr := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	z, zerr := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if xerr != nil || yerr != nil || zerr != nil {
		return
	}

	atom := Atom{
		Name:       strings.TrimSpace(line[12:16]),
		Residue:    residue,
		ResidueInd: resInd,
		Chain:      line[21],
		Coords:     Coords{x, y, z},
		line:       line,
	}

	chain := e.getOrMakeChain(atom.Chain)
	chain.Atoms = append(chain.Atoms, atom)
	if atom.Name == "CA" {
		chain.CaAtoms = append(chain.CaAtoms, atom)
	}
	e.atoms = append(e.atoms, atom)
}

// CaAtomsInRange returns the chain's carbon-alpha atoms whose residue
// numbers fall in the inclusive range start through end.
func (c *Chain) CaAtomsInRange(start, end int) Atoms {
	atoms := make(Atoms, 0, end-start+1)
	for _, atom := range c.CaAtoms {
		if atom.ResidueInd >= start && atom.ResidueInd <= end {
			atoms = append(atoms, atom)
		}
	}
	return atoms
}

// CommonCa returns the carbon-alpha atoms of the named chain for
// residue numbers present in both entries, as two equal-length atom
// sets in residue order. This is the usual way to pick fitting points
// for a superposition when the two structures cover slightly different
// residue ranges.
func (e *Entry) CommonCa(other *Entry, ident byte) (Atoms, Atoms, error) {
	c1, ok := e.Chains[ident]
	if !ok {
		return nil, nil, fmt.Errorf("chain '%c' not found in '%s'", ident, e.Path)
	}
	c2, ok := other.Chains[ident]
	if !ok {
		return nil, nil, fmt.Errorf("chain '%c' not found in '%s'", ident, other.Path)
	}

	byInd := make(map[int]Atom, len(c2.CaAtoms))
	for _, atom := range c2.CaAtoms {
		if _, ok := byInd[atom.ResidueInd]; !ok {
			byInd[atom.ResidueInd] = atom
		}
	}

	var a1, a2 Atoms
	seen := make(map[int]bool, len(c1.CaAtoms))
	for _, atom := range c1.CaAtoms {
		match, ok := byInd[atom.ResidueInd]
		if !ok || seen[atom.ResidueInd] {
			continue
		}
		seen[atom.ResidueInd] = true
		a1 = append(a1, atom)
		a2 = append(a2, match)
	}
	return a1, a2, nil
}
