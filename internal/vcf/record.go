package vcf

import (
	"fmt"
	"strconv"
	"strings"
)

// Record represents a single variant line from the body of a VCF file.
// Records are built once, when the grammar recognizes the end of the
// line, and never mutated afterwards.
type Record struct {
	Chrom   string            // Chromosome name (e.g., "12", "chr12")
	Pos     int64             // 1-based genomic position
	IDs     []string          // Variant identifiers (e.g., rs IDs)
	Ref     string            // Reference allele
	Alts    []string          // Alternate alleles
	Qual    float64           // Quality score; 0 when the field is missing or non-numeric
	Filters []string          // Filter status entries (PASS or filter names)
	Info    map[string]string // INFO field key-value pairs; flag keys map to ""
	Format  []string          // FORMAT keys
	Samples []string          // One raw genotype string per sample column
	source  *Source
}

// newRecord builds a Record from the captured token groups of one body
// line, keyed by fixed column name. The position token must parse as a
// non-negative integer. A quality token that does not parse as a float
// (".", most commonly) yields quality 0 rather than an error.
func newRecord(lineTokens map[string][]string, src *Source) (Record, error) {
	posToken := firstToken(lineTokens["POS"])
	pos, err := strconv.ParseInt(posToken, 10, 64)
	if err != nil || pos < 0 {
		return Record{}, fmt.Errorf("invalid position %q", posToken)
	}

	qual, err := strconv.ParseFloat(firstToken(lineTokens["QUAL"]), 64)
	if err != nil {
		qual = 0
	}

	info := make(map[string]string, len(lineTokens["INFO"]))
	for _, field := range lineTokens["INFO"] {
		parts := strings.SplitN(field, "=", 2)
		if len(parts) == 2 {
			info[parts[0]] = parts[1]
		} else {
			// Flag-type INFO field
			info[parts[0]] = ""
		}
	}

	return Record{
		Chrom:   firstToken(lineTokens["CHROM"]),
		Pos:     pos,
		IDs:     lineTokens["ID"],
		Ref:     firstToken(lineTokens["REF"]),
		Alts:    lineTokens["ALT"],
		Qual:    qual,
		Filters: lineTokens["FILTER"],
		Info:    info,
		Format:  lineTokens["FORMAT"],
		Samples: lineTokens["SAMPLES"],
		source:  src,
	}, nil
}

// firstToken returns the first token of a group, or "" for an empty group.
func firstToken(group []string) string {
	if len(group) == 0 {
		return ""
	}
	return group[0]
}

// Source returns the owning Source of this record. The reference is
// non-owning and only valid for the Source's lifetime.
func (r *Record) Source() *Source {
	return r.source
}

// IsSNV returns true if the alternate allele at index i describes a
// single nucleotide variant.
func (r *Record) IsSNV(i int) bool {
	if i < 0 || i >= len(r.Alts) {
		return false
	}
	return len(r.Ref) == 1 && len(r.Alts[i]) == 1
}

// IsIndel returns true if the alternate allele at index i describes an
// insertion or deletion.
func (r *Record) IsIndel(i int) bool {
	if i < 0 || i >= len(r.Alts) {
		return false
	}
	return len(r.Ref) != len(r.Alts[i])
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (r *Record) NormalizeChrom() string {
	if len(r.Chrom) > 3 && r.Chrom[:3] == "chr" {
		return r.Chrom[3:]
	}
	return r.Chrom
}
