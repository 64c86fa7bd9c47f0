// Package fasta reads and writes sequences in FASTA format. Only the
// pieces this pipeline needs are implemented: names are taken from the
// header up to the first space, and residues are concatenated verbatim.
package fasta

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/bhatnira/Roy-Ahmed-M.Abcessus-modeling/seq"
)

// ErrNoSequences is returned when the input contains no FASTA records.
var ErrNoSequences = errors.New("fasta: no sequences found")

// Read parses every sequence from r.
func Read(r io.Reader) ([]seq.Sequence, error) {
	var seqs []seq.Sequence
	var cur *seq.Sequence

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			name := line[1:]
			if fields := strings.Fields(name); len(fields) > 0 {
				name = fields[0]
			}
			seqs = append(seqs, seq.Sequence{Name: name})
			cur = &seqs[len(seqs)-1]
			continue
		}
		if cur == nil {
			continue
		}
		cur.Residues = append(cur.Residues, []seq.Residue(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	return seqs, nil
}

// ReadFile parses every sequence from the named file.
func ReadFile(name string) ([]seq.Sequence, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write writes the sequences to w in FASTA format, wrapping residue
// lines at 60 columns.
func Write(w io.Writer, seqs []seq.Sequence) error {
	buf := bufio.NewWriter(w)
	for _, s := range seqs {
		if _, err := buf.WriteString(">" + s.Name + "\n"); err != nil {
			return err
		}
		residues := s.String()
		for len(residues) > 0 {
			n := 60
			if n > len(residues) {
				n = len(residues)
			}
			if _, err := buf.WriteString(residues[:n] + "\n"); err != nil {
				return err
			}
			residues = residues[n:]
		}
	}
	return buf.Flush()
}
