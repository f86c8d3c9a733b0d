// Package alphabet provides byte lookup arrays for complementing
// nucleotide sequences
package alphabet

// MakeCompArray returns an array indexed by byte value that maps the
// uppercase nucleotides A, T, G and C to their complements. Every other byte
// (lowercase letters, N, IUPAC ambiguity codes, gaps) maps to itself.
func MakeCompArray() [256]byte {
	var CA [256]byte
	for i := range CA {
		CA[i] = byte(i)
	}

	CA['A'] = 'T'
	CA['T'] = 'A'
	CA['G'] = 'C'
	CA['C'] = 'G'

	return CA
}

// MakeIUPACCompArray is as MakeCompArray but also complements the IUPAC
// ambiguity codes, in both upper and lower case. N, S, W, gaps and anything
// that isn't a nucleotide code map to themselves.
func MakeIUPACCompArray() [256]byte {
	CA := MakeCompArray()

	pairs := [][2]byte{
		{'A', 'T'},
		{'G', 'C'},
		{'R', 'Y'},
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
	}

	for _, p := range pairs {
		CA[p[0]] = p[1]
		CA[p[1]] = p[0]
		lo0, lo1 := p[0]+32, p[1]+32
		CA[lo0] = lo1
		CA[lo1] = lo0
	}

	// U is read as T
	CA['U'] = 'A'
	CA['u'] = 'a'

	return CA
}
