// superpose fits a mobile structure onto a reference structure using
// the carbon-alpha atoms of residues present in both, then writes the
// transformed mobile structure. RMSD is reported before and after so
// the improvement is visible.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/cmd/util"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/pdb"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/rmsd"
)

var flagChain = "A"

func init() {
	flag.StringVar(&flagChain, "chain", flagChain,
		"The chain whose carbon-alpha atoms are used for fitting.")
	util.FlagParse("mobile.pdb reference.pdb [out.pdb]",
		"Writes the transformed mobile structure to out.pdb\n"+
			"(default stdout).")
	util.AssertLeastNArg(2)
}

func main() {
	mobile := util.OpenPDB(util.Arg(0))
	reference := util.OpenPDB(util.Arg(1))

	if len(flagChain) != 1 {
		util.Fatalf("'%s' is not a valid chain identifier.", flagChain)
	}
	mobileCa, refCa, err := mobile.CommonCa(reference, flagChain[0])
	util.Assert(err)
	if len(mobileCa) < 3 {
		util.Fatalf("Only %d residues of chain %s are shared between "+
			"'%s' and '%s'; at least 3 are needed.",
			len(mobileCa), flagChain, mobile.Path, reference.Path)
	}
	fmt.Fprintf(os.Stderr, "Fitting on %d shared chain-%s residues.\n",
		len(mobileCa), flagChain)

	before, err := rmsd.RMSD(mobileCa, refCa)
	util.Assert(err)

	t, err := rmsd.Fit(mobileCa, refCa)
	util.Assert(err)

	after, err := rmsd.RMSD(t.Apply(mobileCa), refCa)
	util.Assert(err)
	fmt.Fprintf(os.Stderr, "RMSD before: %.2f\nRMSD after:  %.2f\n",
		before, after)

	var out io.Writer = os.Stdout
	if util.NArg() > 2 {
		f := util.CreateFile(util.Arg(2))
		defer f.Close()
		out = f
	}
	util.Assert(pdb.WriteAtoms(out, t.Apply(mobile.AllAtoms())),
		"Could not write transformed structure")
}
