package vcf

// ChunkParser is the interface shared by the three parser
// configurations, for collaborators that feed input without caring
// which strategy combination is behind it.
type ChunkParser interface {
	// Parse feeds one chunk of input.
	Parse(chunk []byte) error

	// End signals end of input and finalizes validity.
	End() error

	// IsValid reports whether no unrecovered section violation was seen.
	IsValid() bool

	// Diagnostics returns the reported violations, one message each.
	Diagnostics() []string

	// LineNumber returns the current line number being processed.
	LineNumber() int
}

var (
	_ ChunkParser = (*QuickValidator)(nil)
	_ ChunkParser = (*FullValidator)(nil)
	_ ChunkParser = (*Reader)(nil)
)
