package vcf

// ParsingState is the mutable cursor shared across one scan: position
// counters, the grammar machine's explicit state value (which must
// survive chunk boundaries), the latched validity flag, and exclusive
// write access to the Source and record sequence being populated.
// One parser owns exactly one ParsingState for the lifetime of a parse.
type ParsingState struct {
	Lines   int // completed lines
	Columns int // 1-based index of the column being scanned on the current body line
	Batches int // chunks fed so far

	machine machineState // current grammar state; opaque to callers
	lit     int          // offset into the literal currently being matched
	tok     int          // characters captured in the current token
	resume  machineState // state to restore after \r\n or error resynchronization
	section Section      // section the machine is currently scanning
	valid   bool         // latched false on the first unrecovered violation

	source  *Source
	records *[]Record
}

func newParsingState(source *Source, records *[]Record) ParsingState {
	return ParsingState{
		machine: stateFileFormatTag,
		section: SectionFileFormat,
		valid:   true,
		source:  source,
		records: records,
	}
}

// lineNumber is the 1-based number of the line currently being scanned.
func (s *ParsingState) lineNumber() int {
	return s.Lines + 1
}

func (s *ParsingState) invalidate() {
	s.valid = false
}

// IsValid reports whether any unrecovered section violation has been
// observed. Once false it never resets to true.
func (s *ParsingState) IsValid() bool {
	return s.valid
}

func (s *ParsingState) setVersion(version string) {
	if s.source != nil {
		s.source.FileFormat = version
	}
}

func (s *ParsingState) addMeta(meta MetaEntry) {
	if s.source != nil {
		s.source.Meta = append(s.source.Meta, meta)
	}
}

func (s *ParsingState) addRecord(record Record) {
	if s.records != nil {
		*s.records = append(*s.records, record)
	}
}

func (s *ParsingState) setSamples(names []string) {
	if s.source != nil {
		s.source.Samples = names
	}
}

// Samples exposes the sample roster known so far, for consumers that
// key per-sample data while records are still being produced.
func (s *ParsingState) Samples() []string {
	if s.source == nil {
		return nil
	}
	return s.source.Samples
}
