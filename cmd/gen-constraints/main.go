// gen-constraints finds the contacts between the first two chains of a
// template structure and writes them as Rosetta AtomPair restraints.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/cmd/util"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/constraint"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/contact"
)

var (
	flagCutoff    = 8.0
	flagAtoms     = "backbone"
	flagType      = "harmonic"
	flagTolerance = 2.0
	flagNear      = 5.0
	flagNearStdev = 1.0
	flagFarStdev  = 2.0
)

func init() {
	flag.Float64Var(&flagCutoff, "cutoff", flagCutoff,
		"Distance cutoff in Angstroms for interface contacts.")
	flag.StringVar(&flagAtoms, "atoms", flagAtoms,
		"Atoms considered for contacts: 'ca' or 'backbone'.")
	flag.StringVar(&flagType, "type", flagType,
		"Restraint function: 'harmonic' or 'bounded'.")
	flag.Float64Var(&flagTolerance, "tolerance", flagTolerance,
		"Half-width of bounded restraints.")
	flag.Float64Var(&flagNear, "near", flagNear,
		"Separation below which harmonic restraints get the tight stdev.")
	flag.Float64Var(&flagNearStdev, "near-stdev", flagNearStdev,
		"Stdev for contacts closer than -near.")
	flag.Float64Var(&flagFarStdev, "far-stdev", flagFarStdev,
		"Stdev for contacts between -near and -cutoff.")

	util.FlagParse("template.pdb [out.cst]",
		"Writes restraints to out.cst (default stdout).")
	util.AssertLeastNArg(1)
}

func main() {
	entry := util.OpenPDB(util.Arg(0))
	idents := entry.ChainIdents()
	if len(idents) < 2 {
		util.Fatalf("'%s' has %d chain(s); interface constraints need "+
			"at least 2.", entry.Path, len(idents))
	}

	var filter contact.Filter
	switch flagAtoms {
	case "ca":
		filter = contact.CA
	case "backbone":
		filter = contact.Backbone
	default:
		util.Fatalf("Unknown atom filter '%s'.", flagAtoms)
	}

	setA := contact.Keep(entry.Chains[idents[0]].Atoms, filter)
	setB := contact.Keep(entry.Chains[idents[1]].Atoms, filter)
	contacts, err := contact.Find(setA, setB, flagCutoff)
	util.Assert(err)
	fmt.Fprintf(os.Stderr, "Found %d contacts between chains %c and %c.\n",
		len(contacts), idents[0], idents[1])

	var out io.Writer = os.Stdout
	if util.NArg() > 1 {
		f := util.CreateFile(util.Arg(1))
		defer f.Close()
		out = f
	}
	switch flagType {
	case "harmonic":
		bands := contact.Bands{
			Near:      flagNear,
			NearStdev: flagNearStdev,
			FarStdev:  flagFarStdev,
		}
		util.Assert(constraint.WriteHarmonic(out, contacts, bands))
	case "bounded":
		util.Assert(constraint.WriteBounded(out, contacts, flagTolerance))
	default:
		util.Fatalf("Unknown restraint type '%s'.", flagType)
	}
}
