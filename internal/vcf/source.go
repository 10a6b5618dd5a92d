// Package vcf implements a streaming, chunk-resumable parser and
// validator for the Variant Call Format.
package vcf

import "fmt"

// MetaKind identifies the shape of a metadata declaration.
type MetaKind int

const (
	// MetaPlain is a bare value with no type tag: ##comment text
	MetaPlain MetaKind = iota
	// MetaScalar is a tagged single value: ##reference=file.fa
	MetaScalar
	// MetaStructured is a tagged key/value mapping: ##INFO=<ID=DP,Number=1>
	MetaStructured
)

// Source holds the per-file metadata of a VCF document: the declared
// format version, the ordered metadata declarations, and the sample
// roster from the column header line. It is populated during the header
// scan and read-only afterwards.
type Source struct {
	FileFormat string
	Meta       []MetaEntry
	Samples    []string
}

// MetaEntry is a single ##-prefixed metadata declaration. Exactly one
// of Value or Fields is meaningful, selected by Kind.
type MetaEntry struct {
	Kind   MetaKind
	ID     string            // type tag; empty for plain entries
	Value  string            // plain and scalar entries
	Fields map[string]string // structured entries; unordered, unique keys
	source *Source
}

// newMetaEntry assembles a metadata entry from the type tag and the
// tokens captured on the line. The shape is chosen by token count: no
// tag means plain, one token means scalar, an even count means a
// structured key/value sequence. An odd count greater than one has no
// defined shape and is rejected.
func newMetaEntry(typeID string, tokens []string, src *Source) (MetaEntry, error) {
	if len(tokens) == 0 {
		return MetaEntry{}, fmt.Errorf("meta entry %q has no value tokens", typeID)
	}

	if typeID == "" {
		return MetaEntry{Kind: MetaPlain, Value: tokens[0], source: src}, nil
	}

	if len(tokens) == 1 {
		return MetaEntry{Kind: MetaScalar, ID: typeID, Value: tokens[0], source: src}, nil
	}

	if len(tokens)%2 != 0 {
		return MetaEntry{}, fmt.Errorf("meta entry %q has an odd number of key/value tokens (%d)", typeID, len(tokens))
	}

	fields := make(map[string]string, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		// Duplicate keys resolve last-write-wins.
		fields[tokens[i]] = tokens[i+1]
	}
	return MetaEntry{Kind: MetaStructured, ID: typeID, Fields: fields, source: src}, nil
}

// Source returns the owning Source of this entry. The reference is
// non-owning and only valid for the Source's lifetime.
func (m *MetaEntry) Source() *Source {
	return m.source
}
