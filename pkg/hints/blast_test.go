package hints

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestReadStrands(t *testing.T) {
	data := []byte(`# BLASTN 2.12.0+
# Fields: query acc.ver, subject strand
s1	minus
s2	plus

s3	minus	extra
s1	plus
`)

	table, err := ReadStrands(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	desired := StrandTable{"s1": Plus, "s2": Plus, "s3": Minus}
	if !reflect.DeepEqual(table, desired) {
		t.Errorf("problem in TestReadStrands()")
		fmt.Println(table)
	}
}

func TestReadStrandsBadLabel(t *testing.T) {
	data := []byte("s1\tminus\ns2\tN/A\n")

	_, err := ReadStrands(bytes.NewReader(data))
	if err == nil || err.Error() != `unknown strand "N/A": must be plus or minus (line 2)` {
		t.Error(err)
	}
}

func TestReadStrandsTooFewColumns(t *testing.T) {
	data := []byte("s1 minus\n")

	_, err := ReadStrands(bytes.NewReader(data))
	if !errors.Is(err, errTooFewColumns) {
		t.Errorf("expected errTooFewColumns, got %v", err)
	}
}

func TestReadPositions(t *testing.T) {
	data := []byte("s1\t12\ns2\t3\ns1\t5\ns1\t9\n")

	table, err := ReadPositions(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	desired := PositionTable{"s1": {12, 5, 9}, "s2": {3}}
	if !reflect.DeepEqual(table, desired) {
		t.Errorf("problem in TestReadPositions()")
		fmt.Println(table)
	}
}

func TestReadPositionsBadPosition(t *testing.T) {
	for _, data := range []string{"s1\tabc\n", "s1\t0\n", "s1\t-4\n"} {
		_, err := ReadPositions(bytes.NewReader([]byte(data)))
		if !errors.Is(err, errBadPosition) {
			t.Errorf("expected errBadPosition for %q, got %v", data, err)
		}
	}
}

func TestParseStrand(t *testing.T) {
	s, err := ParseStrand("Minus")
	if err != nil || s != Minus {
		t.Errorf("problem in TestParseStrand()")
	}
	if s.String() != "minus" {
		t.Errorf("problem in TestParseStrand() - String")
	}
}

func TestFormatSet(t *testing.T) {
	var f Format
	if err := f.Set("SAM"); err != nil || f != SAM {
		t.Errorf("problem in TestFormatSet()")
	}
	if err := f.Set("bam"); err == nil {
		t.Errorf("expected an error for an unknown hint format")
	}
}
