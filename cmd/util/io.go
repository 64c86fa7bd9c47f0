package util

import (
	"os"
	"strconv"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/fasta"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

// CreateFile creates the named file or dies trying.
func CreateFile(name string) *os.File {
	f, err := os.Create(name)
	Assert(err, "Could not create '%s'", name)
	return f
}

// OpenPDB reads the named PDB file or dies trying.
func OpenPDB(name string) *pdb.Entry {
	entry, err := pdb.New(name)
	Assert(err, "Could not read PDB file '%s'", name)
	return entry
}

// OpenFasta reads every sequence from the named FASTA file or dies
// trying.
func OpenFasta(name string) []seq.Sequence {
	seqs, err := fasta.ReadFile(name)
	Assert(err, "Could not read FASTA file '%s'", name)
	return seqs
}

// ParseInt parses the string as an integer or dies trying.
func ParseInt(s string) int {
	n, err := strconv.Atoi(s)
	Assert(err, "Could not parse '%s' as an integer", s)
	return n
}

// Chain resolves a single-character chain identifier against the
// entry, or dies trying.
func Chain(entry *pdb.Entry, ident string) *pdb.Chain {
	if len(ident) != 1 {
		Fatalf("'%s' is not a valid chain identifier.", ident)
	}
	chain, ok := entry.Chains[ident[0]]
	if !ok {
		Fatalf("The chain '%s' could not be found in '%s'.", ident, entry.Path)
	}
	return chain
}
