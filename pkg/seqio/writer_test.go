package seqio

import (
	"bytes"
	"testing"
)

func TestWriteAllFasta(t *testing.T) {
	c := NewCollection()
	c.Add(Record{ID: "Seq1", Seq: "ATGATC"})
	c.Add(Record{ID: "Seq2", Seq: "ATGATG"})

	out := new(bytes.Buffer)
	err := WriteAll(out, c, Fasta)
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != ">Seq1\nATGATC\n>Seq2\nATGATG\n" {
		t.Errorf("problem in TestWriteAllFasta()")
		t.Log(out.String())
	}
}

func TestWriteAllFastq(t *testing.T) {
	c := NewCollection()
	c.Add(Record{ID: "read1", Seq: "ATGC", Qual: "IIII"})

	out := new(bytes.Buffer)
	err := WriteAll(out, c, Fastq)
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != "@read1\nATGC\n+\nIIII\n" {
		t.Errorf("problem in TestWriteAllFastq()")
		t.Log(out.String())
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	data := "@r1\nACGT\n+\nABCD\n@r2\nTT\n+\n##\n"

	c, err := ReadAll(bytes.NewReader([]byte(data)), Fastq)
	if err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	err = WriteAll(out, c, Fastq)
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != data {
		t.Errorf("problem in TestReadWriteRoundTrip()")
		t.Log(out.String())
	}
}
