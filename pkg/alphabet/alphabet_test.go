package alphabet

import (
	"testing"
)

func complement(s string, CA [256]byte) string {
	ba := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ba[i] = CA[s[i]]
	}
	return string(ba)
}

func TestMakeCompArray(t *testing.T) {
	CA := MakeCompArray()

	if complement("ATGC", CA) != "TACG" {
		t.Errorf("problem in TestMakeCompArray()")
	}

	// only uppercase ATGC are substituted
	if complement("NRYatgc-?", CA) != "NRYatgc-?" {
		t.Errorf("problem in TestMakeCompArray() - ambiguous/lowercase")
	}
}

func TestMakeIUPACCompArray(t *testing.T) {
	CA := MakeIUPACCompArray()

	inn := "ACGTRYSWKMBDHVN-?acgtryswkmbdhvn-?"
	out := "TGCAYRSWMKVHDBN-?tgcayrswmkvhdbn-?"

	if complement(inn, CA) != out {
		t.Errorf("problem in TestMakeIUPACCompArray()")
	}

	if complement("U", CA) != "A" {
		t.Errorf("problem in TestMakeIUPACCompArray() - U")
	}
}
