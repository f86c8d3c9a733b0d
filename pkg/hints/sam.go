package hints

import (
	"io"

	biogosam "github.com/biogo/hts/sam"
)

// readMapped calls fn for every mapped record in a SAM file
func readMapped(in io.Reader, fn func(rec *biogosam.Record)) error {
	s, err := biogosam.NewReader(in)
	if err != nil {
		return err
	}

	for {
		rec, err := s.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if rec.Flags&biogosam.Unmapped != 0 {
			continue
		}

		fn(rec)
	}

	return nil
}

// ReadStrandsSAM builds a StrandTable from the primary mappings in a SAM file:
// reads mapped to the reverse strand are Minus, the rest Plus
func ReadStrandsSAM(in io.Reader) (StrandTable, error) {
	table := make(StrandTable)
	err := readMapped(in, func(rec *biogosam.Record) {
		if rec.Flags&(biogosam.Secondary|biogosam.Supplementary) != 0 {
			return
		}
		if rec.Flags&biogosam.Reverse != 0 {
			table[rec.Name] = Minus
		} else {
			table[rec.Name] = Plus
		}
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ReadPositionsSAM builds a PositionTable from every mapping in a SAM file,
// including secondary and supplementary ones: each copy of a gene in a tripled
// genome is a separate mapping of the same read
func ReadPositionsSAM(in io.Reader) (PositionTable, error) {
	table := make(PositionTable)
	err := readMapped(in, func(rec *biogosam.Record) {
		table[rec.Name] = append(table[rec.Name], queryStart(rec))
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func isClip(op biogosam.CigarOp) bool {
	t := op.Type()
	return t == biogosam.CigarSoftClipped || t == biogosam.CigarHardClipped
}

// queryStart is the 1-based position of the first aligned base of the read, in
// the read's original orientation (the equivalent of BLAST's qstart). SAM
// stores reverse-strand reads reverse complemented, so for them the clipping
// at the end of the CIGAR is what precedes the alignment in the original read.
func queryStart(rec *biogosam.Record) int {
	cigar := rec.Cigar
	clipped := 0

	if rec.Flags&biogosam.Reverse != 0 {
		for i := len(cigar) - 1; i >= 0 && isClip(cigar[i]); i-- {
			clipped += cigar[i].Len()
		}
	} else {
		for i := 0; i < len(cigar) && isClip(cigar[i]); i++ {
			clipped += cigar[i].Len()
		}
	}

	return clipped + 1
}
