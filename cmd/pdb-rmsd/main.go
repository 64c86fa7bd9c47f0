// pdb-rmsd computes the superposed carbon-alpha RMSD between residue
// ranges of two PDB chains. The ranges must cover the same number of
// carbon-alpha atoms.
package main

import (
	"fmt"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/cmd/util"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/rmsd"
)

func main() {
	util.FlagParse(
		"pdb-file chain-id start stop pdb-file chain-id start stop",
		"ex. 'pdb-rmsd model.pdb A 1 100 template.pdb A 1 100'")
	util.AssertNArg(8)

	entry1 := util.OpenPDB(util.Arg(0))
	chain1 := util.Chain(entry1, util.Arg(1))
	s1, e1 := util.ParseInt(util.Arg(2)), util.ParseInt(util.Arg(3))

	entry2 := util.OpenPDB(util.Arg(4))
	chain2 := util.Chain(entry2, util.Arg(5))
	s2, e2 := util.ParseInt(util.Arg(6)), util.ParseInt(util.Arg(7))

	atoms1 := chain1.CaAtomsInRange(s1, e1)
	atoms2 := chain2.CaAtomsInRange(s2, e2)
	if len(atoms1) == 0 {
		util.Fatalf("The range %d-%d does not correspond to any "+
			"carbon-alpha atoms in '%s'.", s1, e1, entry1.Path)
	}
	if len(atoms2) == 0 {
		util.Fatalf("The range %d-%d does not correspond to any "+
			"carbon-alpha atoms in '%s'.", s2, e2, entry2.Path)
	}

	r, err := rmsd.Superposed(atoms1, atoms2)
	util.Assert(err)
	fmt.Printf("%f\n", r)
}
