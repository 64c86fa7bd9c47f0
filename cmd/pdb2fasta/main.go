// pdb2fasta extracts the amino acid sequence of each chain of a PDB
// file and writes it in FASTA format.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/cmd/util"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/fasta"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

var flagChain = ""

func init() {
	flag.StringVar(&flagChain, "chain", flagChain,
		"When set, only this chain is extracted.")
	util.FlagParse("pdb-file [fasta-file]",
		"Writes one FASTA record per chain (default stdout).")
	util.AssertLeastNArg(1)
}

func main() {
	entry := util.OpenPDB(util.Arg(0))

	var seqs []seq.Sequence
	for _, ident := range entry.ChainIdents() {
		if len(flagChain) > 0 && flagChain[0] != ident {
			continue
		}
		chain := entry.Chains[ident]
		if len(chain.Sequence) == 0 {
			continue
		}
		seqs = append(seqs, seq.Sequence{
			Name:     entry.Name() + string(ident),
			Residues: chain.Sequence,
		})
	}
	if len(seqs) == 0 {
		util.Fatalf("Could not find any amino acids in '%s'.", entry.Path)
	}

	var out io.Writer = os.Stdout
	if util.NArg() > 1 {
		f := util.CreateFile(util.Arg(1))
		defer f.Close()
		out = f
	}
	util.Assert(fasta.Write(out, seqs), "Could not write FASTA")
}
