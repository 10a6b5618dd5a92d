package vcf

import "testing"

func TestNewMetaEntry_Plain(t *testing.T) {
	entry, err := newMetaEntry("", []string{"just a comment"}, nil)
	if err != nil {
		t.Fatalf("newMetaEntry failed: %v", err)
	}
	if entry.Kind != MetaPlain {
		t.Errorf("Expected plain kind, got %v", entry.Kind)
	}
	if entry.Value != "just a comment" {
		t.Errorf("Expected value %q, got %q", "just a comment", entry.Value)
	}
	if entry.ID != "" {
		t.Errorf("Plain entry should have no type tag, got %q", entry.ID)
	}
}

func TestNewMetaEntry_Scalar(t *testing.T) {
	entry, err := newMetaEntry("reference", []string{"GRCh38.fa"}, nil)
	if err != nil {
		t.Fatalf("newMetaEntry failed: %v", err)
	}
	if entry.Kind != MetaScalar {
		t.Errorf("Expected scalar kind, got %v", entry.Kind)
	}
	if entry.ID != "reference" || entry.Value != "GRCh38.fa" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
}

func TestNewMetaEntry_Structured(t *testing.T) {
	tokens := []string{"ID", "DP", "Number", "1", "Type", "Integer"}
	entry, err := newMetaEntry("INFO", tokens, nil)
	if err != nil {
		t.Fatalf("newMetaEntry failed: %v", err)
	}
	if entry.Kind != MetaStructured {
		t.Errorf("Expected structured kind, got %v", entry.Kind)
	}
	if len(entry.Fields) != 3 {
		t.Errorf("Expected 3 fields, got %d", len(entry.Fields))
	}
	if entry.Fields["ID"] != "DP" || entry.Fields["Number"] != "1" || entry.Fields["Type"] != "Integer" {
		t.Errorf("Unexpected fields: %v", entry.Fields)
	}
}

func TestNewMetaEntry_DuplicateKeyLastWins(t *testing.T) {
	tokens := []string{"ID", "DP", "ID", "AF"}
	entry, err := newMetaEntry("INFO", tokens, nil)
	if err != nil {
		t.Fatalf("newMetaEntry failed: %v", err)
	}
	if len(entry.Fields) != 1 {
		t.Errorf("Expected 1 field, got %d", len(entry.Fields))
	}
	if entry.Fields["ID"] != "AF" {
		t.Errorf("Expected last write to win, got %q", entry.Fields["ID"])
	}
}

func TestNewMetaEntry_OddTokenCountFails(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"three tokens", []string{"ID", "DP", "Number"}},
		{"five tokens", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newMetaEntry("INFO", tt.tokens, nil); err == nil {
				t.Errorf("Expected error for %d tokens", len(tt.tokens))
			}
		})
	}
}

func TestNewMetaEntry_NoTokensFails(t *testing.T) {
	if _, err := newMetaEntry("INFO", nil, nil); err == nil {
		t.Error("Expected error for empty token sequence")
	}
}

func TestMetaEntry_SourceBackReference(t *testing.T) {
	src := &Source{FileFormat: "VCFv4.1"}
	entry, err := newMetaEntry("reference", []string{"GRCh38.fa"}, src)
	if err != nil {
		t.Fatalf("newMetaEntry failed: %v", err)
	}
	if entry.Source() != src {
		t.Error("Expected back-reference to the owning Source")
	}
}
