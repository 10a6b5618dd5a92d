package vcf

// TokenPolicy decides what happens with the tokens the grammar
// recognizes. The grammar invokes these hooks at well-defined
// recognition points; the parsing state is passed in for the duration
// of each callback only and must not be retained.
//
// metaLine and bodyLine may fail when the captured tokens cannot be
// assembled into their entity; such failures surface as *ParsingError
// regardless of the error policy in use.
type TokenPolicy interface {
	tokenBegin(s *ParsingState)
	tokenChar(s *ParsingState, c byte)
	tokenEnd(s *ParsingState)
	newline(s *ParsingState)

	fileFormat(s *ParsingState)
	metaTypeID(s *ParsingState)
	metaTypeIDNamed(s *ParsingState, typeID string)
	metaKey(s *ParsingState)
	metaValue(s *ParsingState)
	metaLine(s *ParsingState) error
	sampleName(s *ParsingState)
	headerLine(s *ParsingState)
	columnEnd(s *ParsingState, column int)
	bodyLine(s *ParsingState) error

	currentToken() string
}

// DiscardPolicy ignores every token event. The grammar still runs in
// full, but no token content is retained and no entities are built,
// which is what makes syntax-only validation cheap.
type DiscardPolicy struct{}

func (DiscardPolicy) tokenBegin(*ParsingState)              {}
func (DiscardPolicy) tokenChar(*ParsingState, byte)         {}
func (DiscardPolicy) tokenEnd(*ParsingState)                {}
func (DiscardPolicy) newline(*ParsingState)                 {}
func (DiscardPolicy) fileFormat(*ParsingState)              {}
func (DiscardPolicy) metaTypeID(*ParsingState)              {}
func (DiscardPolicy) metaTypeIDNamed(*ParsingState, string) {}
func (DiscardPolicy) metaKey(*ParsingState)                 {}
func (DiscardPolicy) metaValue(*ParsingState)               {}
func (DiscardPolicy) metaLine(*ParsingState) error          { return nil }
func (DiscardPolicy) sampleName(*ParsingState)              {}
func (DiscardPolicy) headerLine(*ParsingState)              {}
func (DiscardPolicy) columnEnd(*ParsingState, int)          {}
func (DiscardPolicy) bodyLine(*ParsingState) error          { return nil }
func (DiscardPolicy) currentToken() string                  { return "" }

// fixedColumns maps the 1-based body column index to its name.
var fixedColumns = [...]string{
	1: "CHROM", 2: "POS", 3: "ID", 4: "REF", 5: "ALT",
	6: "QUAL", 7: "FILTER", 8: "INFO", 9: "FORMAT",
}

// StorePolicy materializes tokens into entities. All of its state is
// scoped to the current line and cleared on every newline, so nothing
// leaks across lines.
type StorePolicy struct {
	// token being currently captured
	token []byte
	// type tag for the whole line, like INFO/FILTER in meta entries
	lineTypeID string
	// tokens grouped for the column currently being assembled
	grouped []string
	// token groups of the current body line, keyed by column name
	lineTokens map[string][]string
}

func (p *StorePolicy) tokenBegin(*ParsingState) {
	p.token = p.token[:0]
}

func (p *StorePolicy) tokenChar(_ *ParsingState, c byte) {
	p.token = append(p.token, c)
}

func (p *StorePolicy) tokenEnd(*ParsingState) {
	p.grouped = append(p.grouped, string(p.token))
}

func (p *StorePolicy) newline(*ParsingState) {
	p.token = p.token[:0]
	p.lineTypeID = ""
	p.grouped = nil
	p.lineTokens = nil
}

func (p *StorePolicy) fileFormat(s *ParsingState) {
	s.setVersion(string(p.token))
}

func (p *StorePolicy) metaTypeID(s *ParsingState) {
	p.lineTypeID = string(p.token)
}

// metaTypeIDNamed stashes a type tag supplied directly by the grammar,
// for lines whose tag is implied by context rather than scanned.
func (p *StorePolicy) metaTypeIDNamed(_ *ParsingState, typeID string) {
	p.lineTypeID = typeID
}

func (p *StorePolicy) metaKey(*ParsingState) {
	p.grouped = append(p.grouped, string(p.token))
}

func (p *StorePolicy) metaValue(*ParsingState) {
	p.grouped = append(p.grouped, string(p.token))
}

func (p *StorePolicy) metaLine(s *ParsingState) error {
	entry, err := newMetaEntry(p.lineTypeID, p.grouped, s.source)
	if err != nil {
		return &ParsingError{Line: s.lineNumber(), Err: err}
	}
	s.addMeta(entry)
	return nil
}

func (p *StorePolicy) sampleName(*ParsingState) {
	p.grouped = append(p.grouped, string(p.token))
}

func (p *StorePolicy) headerLine(s *ParsingState) {
	s.setSamples(p.grouped)
	p.grouped = nil
}

func (p *StorePolicy) columnEnd(_ *ParsingState, column int) {
	if p.lineTokens == nil {
		p.lineTokens = make(map[string][]string, 10)
	}
	if column < len(fixedColumns) {
		p.lineTokens[fixedColumns[column]] = p.grouped
	} else if len(p.grouped) > 0 {
		// Sample columns contribute one raw string each; internal
		// sub-delimiters are left to the FORMAT-aware consumer.
		p.lineTokens["SAMPLES"] = append(p.lineTokens["SAMPLES"], p.grouped[0])
	}
	p.grouped = nil
}

func (p *StorePolicy) bodyLine(s *ParsingState) error {
	record, err := newRecord(p.lineTokens, s.source)
	if err != nil {
		return &ParsingError{Line: s.lineNumber(), Err: err}
	}
	s.addRecord(record)
	return nil
}

func (p *StorePolicy) currentToken() string {
	return string(p.token)
}
