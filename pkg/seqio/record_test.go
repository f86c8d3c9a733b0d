package seqio

import (
	"errors"
	"reflect"
	"testing"

	"github.com/srh-bzd/ViRotator/pkg/alphabet"
)

func TestRecordReverseComplement(t *testing.T) {
	CA := alphabet.MakeCompArray()

	inn := Record{ID: "s1", Seq: "ATGC"}
	out := Record{ID: "s1", Seq: "GCAT"}
	if !reflect.DeepEqual(inn.ReverseComplement(CA), out) {
		t.Errorf("problem in TestRecordReverseComplement()")
	}

	inn = Record{ID: "s1", Seq: "AATNGc", Qual: "ABCDEF"}
	out = Record{ID: "s1", Seq: "cCNATT", Qual: "FEDCBA"}
	if !reflect.DeepEqual(inn.ReverseComplement(CA), out) {
		t.Errorf("problem in TestRecordReverseComplement() - fastq")
	}
}

func TestRecordReverseComplementInvolution(t *testing.T) {
	CA := alphabet.MakeCompArray()
	inn := Record{ID: "s1", Seq: "ATTGCGCAAATGCCGT", Qual: "0123456789abcdef"}

	if !reflect.DeepEqual(inn.ReverseComplement(CA).ReverseComplement(CA), inn) {
		t.Errorf("problem in TestRecordReverseComplementInvolution()")
	}
}

func TestRecordSlice(t *testing.T) {
	inn := Record{ID: "s1", Seq: "ABCDEFGHIJ", Qual: "abcdefghij"}

	out, err := inn.Slice(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, Record{ID: "s1", Seq: "CDE", Qual: "cde"}) {
		t.Errorf("problem in TestRecordSlice()")
	}

	_, err = inn.Slice(4, 11)
	if !errors.Is(err, errBadSlice) {
		t.Errorf("expected errBadSlice, got %v", err)
	}

	_, err = inn.Slice(5, 4)
	if !errors.Is(err, errBadSlice) {
		t.Errorf("expected errBadSlice, got %v", err)
	}
}

func TestRecordRepeat(t *testing.T) {
	inn := Record{ID: "s1", Seq: "ACG"}
	if inn.Repeat(3).Seq != "ACGACGACG" {
		t.Errorf("problem in TestRecordRepeat()")
	}

	inn = Record{ID: "s1", Seq: "AC", Qual: "I#"}
	out := inn.Repeat(3)
	if out.Qual != "I#I#I#" || len(out.Qual) != len(out.Seq) {
		t.Errorf("problem in TestRecordRepeat() - fastq")
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("FASTQ")
	if err != nil || f != Fastq {
		t.Errorf("problem in TestParseFormat()")
	}

	var g Format
	if err = g.Set("fasta"); err != nil || g != Fasta {
		t.Errorf("problem in TestParseFormat() - Set")
	}

	if err = g.Set("genbank"); err == nil {
		t.Errorf("expected an error for an unknown file type")
	}
	if g.String() != "fasta" {
		t.Errorf("failed Set should not change the value")
	}
}
