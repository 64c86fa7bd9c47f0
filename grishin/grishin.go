// Package grishin writes pairwise alignments in the GRISHIN format
// consumed by comparative-modeling threading tools.
package grishin

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

// Write writes one GRISHIN alignment block:
//
//	## target template
//	#
//	scores_from_program: 0
//	0 GAKT--LG
//	0 GA-TTTLG
//	--
//
// The target row is the alignment's A sequence, the template row its B
// sequence.
func Write(w io.Writer, target, template string, al seq.Alignment) error {
	buf := bufio.NewWriter(w)
	_, err := fmt.Fprintf(buf, "## %s %s\n#\nscores_from_program: 0\n0 %s\n0 %s\n--\n",
		target, template, al.A, al.B)
	if err != nil {
		return err
	}
	return buf.Flush()
}
