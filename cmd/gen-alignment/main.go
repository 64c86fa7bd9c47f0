// gen-alignment aligns target sequences with template sequences and
// writes GRISHIN alignment blocks for threading. Sequences are paired
// up in file order (chain A with chain A, chain B with chain B, and so
// on); a template file with fewer sequences reuses its last one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/cmd/util"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/grishin"
	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

var (
	flagMatch    = 2
	flagMismatch = -1
	flagGap      = -2
	flagBlosum   = false
	flagRegion   = ""
)

func init() {
	flag.IntVar(&flagMatch, "match", flagMatch,
		"Score for matching residues.")
	flag.IntVar(&flagMismatch, "mismatch", flagMismatch,
		"Score for mismatched residues.")
	flag.IntVar(&flagGap, "gap", flagGap,
		"Linear gap penalty.")
	flag.BoolVar(&flagBlosum, "blosum", flagBlosum,
		"When set, score with BLOSUM62 instead of match/mismatch/gap.")
	flag.StringVar(&flagRegion, "region", flagRegion,
		"Also report identity over a target residue range, e.g. '70-110'\n"+
			"for the GyrA quinolone-resistance-determining region.")

	util.FlagParse("target.fasta template.fasta [out.grishin]",
		"Writes GRISHIN alignments to out.grishin (default stdout) and\n"+
			"an identity report to stderr.")
	util.AssertLeastNArg(2)
}

func main() {
	targets := util.OpenFasta(util.Arg(0))
	templates := util.OpenFasta(util.Arg(1))

	var out io.Writer = os.Stdout
	if util.NArg() > 2 {
		f := util.CreateFile(util.Arg(2))
		defer f.Close()
		out = f
	}

	for i, target := range targets {
		template := templates[min(i, len(templates)-1)]

		al := align(target, template)
		util.Assert(grishin.Write(out, target.Name, template.Name, al))
		fmt.Fprintf(os.Stderr, "%s vs %s: %d columns, identity %.1f%%\n",
			target.Name, template.Name, al.Len(), 100*al.Identity())

		if len(flagRegion) > 0 {
			start, end := parseRange(flagRegion)
			reg := al.Region(start, end)
			fmt.Fprintf(os.Stderr, "  region %d-%d: identity %.1f%%\n%s  %s\n%s  %s\n",
				start, end, 100*reg.Identity(),
				pad(target.Name), reg.A, pad(template.Name), reg.B)
		}
	}
}

func align(target, template seq.Sequence) seq.Alignment {
	var al seq.Alignment
	var err error
	if flagBlosum {
		al, err = seq.AlignSubst(target, template, seq.Blosum62())
	} else {
		al, err = seq.Align(target, template, seq.Scoring{
			Match:    flagMatch,
			Mismatch: flagMismatch,
			Gap:      flagGap,
		})
	}
	util.Assert(err, "Could not align '%s' with '%s'",
		target.Name, template.Name)
	return al
}

func parseRange(s string) (int, int) {
	var start, end int
	if n, err := fmt.Sscanf(s, "%d-%d", &start, &end); err != nil || n != 2 {
		util.Fatalf("Could not parse '%s' as a residue range.", s)
	}
	return start, end
}

func pad(name string) string {
	return fmt.Sprintf("%-12.12s", name)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
