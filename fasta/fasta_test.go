package fasta

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	in := `>target_A M. abscessus GyrA
MTDTTLPPDD
SRSRIEPVDI
>target_B
MAAQKKKAQD
`
	seqs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 {
		t.Fatalf("Read %d sequences, but should read 2", len(seqs))
	}
	if seqs[0].Name != "target_A" {
		t.Fatalf("First name is %q, but should be \"target_A\"", seqs[0].Name)
	}
	if got := seqs[0].String(); got != "MTDTTLPPDDSRSRIEPVDI" {
		t.Fatalf("First sequence is %q; residue lines should concatenate", got)
	}
	if seqs[1].Name != "target_B" || seqs[1].Len() != 10 {
		t.Fatalf("Second sequence is %q with %d residues",
			seqs[1].Name, seqs[1].Len())
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("\n\n")); err == nil {
		t.Fatal("Input without records should be an error.")
	}
}

func TestWriteWraps(t *testing.T) {
	seqs, err := Read(strings.NewReader(">long\n" + strings.Repeat("A", 130)))
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := Write(&buf, seqs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Wrote %d lines, but should write 4:\n%s",
			len(lines), buf.String())
	}
	if lines[0] != ">long" || len(lines[1]) != 60 || len(lines[3]) != 10 {
		t.Fatalf("Unexpected wrapping:\n%s", buf.String())
	}

	// Round trip.
	again, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if again[0].String() != seqs[0].String() {
		t.Fatal("Write then Read did not round-trip the residues.")
	}
}
