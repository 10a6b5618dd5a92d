package vcf

import "testing"

func bodyTokens() map[string][]string {
	return map[string][]string{
		"CHROM":   {"12"},
		"POS":     {"25245351"},
		"ID":      {"rs121913530"},
		"REF":     {"C"},
		"ALT":     {"A", "T"},
		"QUAL":    {"50"},
		"FILTER":  {"PASS"},
		"INFO":    {"DP=10", "AF=0.5", "DB"},
		"FORMAT":  {"GT", "DP"},
		"SAMPLES": {"0|1:10", "1|1:7"},
	}
}

func TestNewRecord(t *testing.T) {
	rec, err := newRecord(bodyTokens(), nil)
	if err != nil {
		t.Fatalf("newRecord failed: %v", err)
	}

	if rec.Chrom != "12" {
		t.Errorf("Expected chrom 12, got %s", rec.Chrom)
	}
	if rec.Pos != 25245351 {
		t.Errorf("Expected pos 25245351, got %d", rec.Pos)
	}
	if len(rec.IDs) != 1 || rec.IDs[0] != "rs121913530" {
		t.Errorf("Unexpected IDs: %v", rec.IDs)
	}
	if rec.Ref != "C" {
		t.Errorf("Expected ref C, got %s", rec.Ref)
	}
	if len(rec.Alts) != 2 || rec.Alts[0] != "A" || rec.Alts[1] != "T" {
		t.Errorf("Unexpected alts: %v", rec.Alts)
	}
	if rec.Qual != 50 {
		t.Errorf("Expected qual 50, got %f", rec.Qual)
	}
	if len(rec.Samples) != 2 || rec.Samples[0] != "0|1:10" {
		t.Errorf("Unexpected samples: %v", rec.Samples)
	}
}

func TestNewRecord_InfoSplitting(t *testing.T) {
	rec, err := newRecord(bodyTokens(), nil)
	if err != nil {
		t.Fatalf("newRecord failed: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"DP", "10"},
		{"AF", "0.5"},
		{"DB", ""}, // flag key, no '='
	}
	for _, tt := range tests {
		got, ok := rec.Info[tt.key]
		if !ok {
			t.Errorf("Missing INFO key %q", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("INFO[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNewRecord_InfoSplitsOnFirstEquals(t *testing.T) {
	tokens := bodyTokens()
	tokens["INFO"] = []string{"EXPR=a=b"}
	rec, err := newRecord(tokens, nil)
	if err != nil {
		t.Fatalf("newRecord failed: %v", err)
	}
	if rec.Info["EXPR"] != "a=b" {
		t.Errorf("Expected value preserved past first '=', got %q", rec.Info["EXPR"])
	}
}

func TestNewRecord_InvalidPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  string
	}{
		{"non-numeric", "abc"},
		{"float", "12.5"},
		{"negative", "-1"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := bodyTokens()
			tokens["POS"] = []string{tt.pos}
			if _, err := newRecord(tokens, nil); err == nil {
				t.Errorf("Expected error for position %q", tt.pos)
			}
		})
	}
}

func TestNewRecord_QualFallsBackToZero(t *testing.T) {
	tests := []struct {
		name string
		qual string
		want float64
	}{
		{"missing", ".", 0},
		{"non-numeric", "high", 0},
		{"numeric", "29.5", 29.5},
		{"integer", "50", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := bodyTokens()
			tokens["QUAL"] = []string{tt.qual}
			rec, err := newRecord(tokens, nil)
			if err != nil {
				t.Fatalf("newRecord failed: %v", err)
			}
			if rec.Qual != tt.want {
				t.Errorf("Qual = %f, want %f", rec.Qual, tt.want)
			}
		})
	}
}

func TestRecord_IsSNV(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		alts []string
		i    int
		want bool
	}{
		{"A to G", "A", []string{"G"}, 0, true},
		{"second allele SNV", "A", []string{"AT", "G"}, 1, true},
		{"deletion", "AT", []string{"A"}, 0, false},
		{"insertion", "A", []string{"AT"}, 0, false},
		{"out of range", "A", []string{"G"}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Ref: tt.ref, Alts: tt.alts}
			if got := r.IsSNV(tt.i); got != tt.want {
				t.Errorf("IsSNV(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestRecord_IsIndel(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		alts []string
		i    int
		want bool
	}{
		{"SNV", "A", []string{"G"}, 0, false},
		{"deletion", "AT", []string{"A"}, 0, true},
		{"insertion", "A", []string{"AT"}, 0, true},
		{"MNV same length", "AT", []string{"GC"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Ref: tt.ref, Alts: tt.alts}
			if got := r.IsIndel(tt.i); got != tt.want {
				t.Errorf("IsIndel(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestRecord_NormalizeChrom(t *testing.T) {
	tests := []struct {
		name  string
		chrom string
		want  string
	}{
		{"with chr prefix", "chr12", "12"},
		{"without chr prefix", "12", "12"},
		{"chrX", "chrX", "X"},
		{"MT", "MT", "MT"},
		{"empty", "", ""},
		{"short chr", "ch", "ch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Chrom: tt.chrom}
			if got := r.NormalizeChrom(); got != tt.want {
				t.Errorf("NormalizeChrom() = %v, want %v", got, tt.want)
			}
		})
	}
}
