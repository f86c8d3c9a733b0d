package hints

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"
)

var samData = []byte(`@HD	VN:1.0	SO:unsorted
@SQ	SN:geneA	LN:4
read1	0	geneA	1	60	3S4M	*	0	0	TTTACGT	*
read2	16	geneA	1	60	4M2S	*	0	0	ACGTAA	*
read3	4	*	0	0	*	*	0	0	ACGT	*
read1	256	geneA	1	60	10H4M	*	0	0	*	*
read1	2048	geneA	1	60	17S4M	*	0	0	TTTTTTTTTTTTTTTTTACGT	*
`)

func TestReadStrandsSAM(t *testing.T) {
	table, err := ReadStrandsSAM(bytes.NewReader(samData))
	if err != nil {
		t.Fatal(err)
	}

	desired := StrandTable{"read1": Plus, "read2": Minus}
	if !reflect.DeepEqual(table, desired) {
		t.Errorf("problem in TestReadStrandsSAM()")
		fmt.Println(table)
	}
}

func TestReadPositionsSAM(t *testing.T) {
	table, err := ReadPositionsSAM(bytes.NewReader(samData))
	if err != nil {
		t.Fatal(err)
	}

	desired := PositionTable{"read1": {4, 11, 18}, "read2": {3}}
	if !reflect.DeepEqual(table, desired) {
		t.Errorf("problem in TestReadPositionsSAM()")
		fmt.Println(table)
	}
}

func TestLoadDispatch(t *testing.T) {
	table, err := LoadStrands(bytes.NewReader([]byte("s1\tminus\n")), Blast)
	if err != nil {
		t.Fatal(err)
	}
	if table["s1"] != Minus {
		t.Errorf("problem in TestLoadDispatch() - blast")
	}

	positions, err := LoadPositions(bytes.NewReader(samData), SAM)
	if err != nil {
		t.Fatal(err)
	}
	if len(positions["read1"]) != 3 {
		t.Errorf("problem in TestLoadDispatch() - sam")
	}
}
