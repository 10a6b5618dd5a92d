package vcf

import "errors"

var errParseAfterEnd = errors.New("vcf: parse called after end of input")

// Parser combines the grammar engine with one token policy and one
// error policy. The policies are type parameters, so the three named
// configurations are distinct concrete types and policy dispatch is
// resolved at compile time.
//
// A parser owns exclusive write access to its parsing state and to the
// Source and record slice handed to its constructor for the lifetime of
// the parse. Input may be fed in chunks of any size; the grammar
// resumes exactly where the previous chunk stopped.
type Parser[P TokenPolicy, E ErrorPolicy] struct {
	state  ParsingState
	tokens P
	errors E
}

// QuickValidator checks syntax only: tokens are discarded and
// violations are collected as diagnostics.
type QuickValidator = Parser[DiscardPolicy, *ReportPolicy]

// FullValidator checks syntax and semantics: tokens are materialized
// into a Source and records, violations are collected as diagnostics.
type FullValidator = Parser[*StorePolicy, *ReportPolicy]

// Reader materializes entities from input that is assumed valid and
// fails fast on the first violation.
type Reader = Parser[*StorePolicy, AbortPolicy]

// NewQuickValidator returns a syntax-only validator. The source and
// records arguments may be nil; no entities are produced.
func NewQuickValidator(source *Source, records *[]Record) *QuickValidator {
	return &QuickValidator{
		state:  newParsingState(source, records),
		errors: &ReportPolicy{},
	}
}

// NewFullValidator returns a validator that also builds the in-memory
// document. The caller owns source and records; the parser only writes
// to them.
func NewFullValidator(source *Source, records *[]Record) *FullValidator {
	return &FullValidator{
		state:  newParsingState(source, records),
		tokens: &StorePolicy{},
		errors: &ReportPolicy{},
	}
}

// NewReader returns a trusting reader for already-valid input.
func NewReader(source *Source, records *[]Record) *Reader {
	return &Reader{
		state:  newParsingState(source, records),
		tokens: &StorePolicy{},
	}
}

// Parse feeds one chunk of input to the grammar. Chunk boundaries can
// fall anywhere, including inside a token.
func (p *Parser[P, E]) Parse(chunk []byte) error {
	if p.state.machine == stateDone {
		return errParseAfterEnd
	}
	p.state.Batches++
	for i := 0; i < len(chunk); i++ {
		if err := p.step(chunk[i]); err != nil {
			return err
		}
	}
	return nil
}

// ParseString feeds one chunk of input given as a string.
func (p *Parser[P, E]) ParseString(text string) error {
	if p.state.machine == stateDone {
		return errParseAfterEnd
	}
	p.state.Batches++
	for i := 0; i < len(text); i++ {
		if err := p.step(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// End signals end of input, flushing any partially scanned line and
// finalizing the validity flag. A final line without a trailing newline
// is completed here.
func (p *Parser[P, E]) End() error {
	st := &p.state
	if st.machine == stateDone {
		return nil
	}
	if st.machine == stateExpectLF || st.machine == stateSkipLine {
		p.finishLine(st.resume)
	}
	defer func() { st.machine = stateDone }()

	switch st.machine {
	case stateBodyStart:
		return nil
	case stateBodyToken, stateBodyColumnStart:
		// Final line without a trailing newline.
		if err := p.endBodyLine(); err != nil {
			return err
		}
		p.finishLine(stateBodyStart)
		return nil
	case stateFileFormatTag, stateVersion:
		return p.violation("incomplete ##fileformat declaration")
	default:
		st.section = SectionHeader
		return p.violation("no column header line found")
	}
}

// IsValid reports whether the scanned input held no unrecovered section
// violation. Meaningful after End.
func (p *Parser[P, E]) IsValid() bool {
	return p.state.IsValid()
}

// Diagnostics returns one human-readable message per reported section
// violation, in input order. Always nil for abort configurations.
func (p *Parser[P, E]) Diagnostics() []string {
	return p.errors.diagnostics()
}

// LineNumber returns the 1-based number of the line currently being
// scanned.
func (p *Parser[P, E]) LineNumber() int {
	return p.state.lineNumber()
}
