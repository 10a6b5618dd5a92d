package vcf

import "fmt"

// machineState enumerates the positions of the document grammar
//
//	File := FileFormatLine MetaLine* ColumnHeaderLine BodyLine*
//
// The current state lives in ParsingState as a plain value, not an
// implicit call stack, so a scan can suspend between chunks and resume
// without re-reading anything.
type machineState int

const (
	stateFileFormatTag machineState = iota // matching the ##fileformat= literal
	stateVersion                           // version token until end of line
	stateLineStart                         // first byte of a meta or header line
	stateMetaPrefix                        // saw one '#', deciding meta vs header
	stateMetaTypeID                        // meta token before '=' or end of line
	stateMetaAfterEquals                   // byte after 'tag='
	stateMetaScalar                        // unstructured meta value
	stateMetaKey                           // key inside <...>
	stateMetaValueFirst                    // first byte of a structured value
	stateMetaValue                         // unquoted structured value
	stateMetaValueQuoted                   // double-quoted structured value
	stateMetaAfterQuoted                   // byte after the closing quote
	stateMetaClose                         // after '>', expecting end of line
	stateHeaderColumns                     // matching the fixed column literal
	stateHeaderAfterFixed                  // byte after ...INFO
	stateHeaderFormatTag                   // matching FORMAT
	stateHeaderAfterFormat                 // byte after FORMAT
	stateHeaderSample                      // sample name token
	stateBodyStart                         // first byte of a body line
	stateBodyColumnStart                   // first byte of a body column
	stateBodyToken                         // token inside a body column
	stateSkipLine                          // discarding input up to the next newline
	stateExpectLF                          // saw '\r', the '\n' is still owed
	stateDone                              // end of input was signalled
)

const (
	litFileFormat   = "##fileformat="
	litHeaderFixed  = "CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO"
	litHeaderFormat = "FORMAT"
)

// subDelim returns the sub-token delimiter of a 1-based body column, or
// 0 for single-token columns. Sample columns (>= 10) are captured whole.
func subDelim(column int) byte {
	switch column {
	case 3, 7, 8: // ID, FILTER, INFO
		return ';'
	case 5: // ALT
		return ','
	case 9: // FORMAT
		return ':'
	default:
		return 0
	}
}

// step advances the grammar by one input byte, dispatching recognition
// events into the token policy and violations into the error policy.
func (p *Parser[P, E]) step(c byte) error {
	st := &p.state

again:
	switch st.machine {

	case stateFileFormatTag:
		if c != litFileFormat[st.lit] {
			if err := p.violation("file does not begin with a ##fileformat declaration"); err != nil {
				return err
			}
			goto again
		}
		st.lit++
		if st.lit == len(litFileFormat) {
			p.beginToken()
			st.machine = stateVersion
		}

	case stateVersion:
		switch c {
		case '\n', '\r':
			if st.tok == 0 {
				if err := p.violation("missing file format version"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.fileFormat(st)
			p.endLine(c, stateLineStart)
		default:
			p.charToken(c)
		}

	case stateLineStart:
		if c == '#' {
			st.machine = stateMetaPrefix
			break
		}
		st.section = SectionHeader
		if err := p.violation("expected a ##meta-data or #column header line"); err != nil {
			return err
		}
		goto again

	case stateMetaPrefix:
		if c == '#' {
			p.beginToken()
			st.machine = stateMetaTypeID
			break
		}
		st.section = SectionHeader
		st.lit = 0
		st.machine = stateHeaderColumns
		goto again

	case stateMetaTypeID:
		switch c {
		case '=':
			if st.tok == 0 {
				if err := p.violation("meta-data line with empty type tag"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.metaTypeID(st)
			st.machine = stateMetaAfterEquals
		case '\n', '\r':
			if st.tok == 0 {
				if err := p.violation("empty meta-data line"); err != nil {
					return err
				}
				goto again
			}
			// No '=' on the line: a plain entry.
			p.tokens.tokenEnd(st)
			if err := p.tokens.metaLine(st); err != nil {
				return err
			}
			p.endLine(c, stateLineStart)
		default:
			p.charToken(c)
		}

	case stateMetaAfterEquals:
		switch c {
		case '<':
			p.beginToken()
			st.machine = stateMetaKey
		case '\n', '\r':
			if err := p.violation("meta-data entry with empty value"); err != nil {
				return err
			}
			goto again
		default:
			p.beginToken()
			st.machine = stateMetaScalar
			goto again
		}

	case stateMetaScalar:
		switch c {
		case '\n', '\r':
			p.tokens.metaValue(st)
			if err := p.tokens.metaLine(st); err != nil {
				return err
			}
			p.endLine(c, stateLineStart)
		default:
			p.charToken(c)
		}

	case stateMetaKey:
		switch c {
		case '=', ',', '>':
			if st.tok == 0 {
				if err := p.violation("structured meta-data entry with empty key"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.metaKey(st)
			switch c {
			case '=':
				st.machine = stateMetaValueFirst
			case ',':
				// Key without a value; the shape rule judges the
				// resulting token count at end of line.
				p.beginToken()
			case '>':
				st.machine = stateMetaClose
			}
		case '\n', '\r':
			if err := p.violation("unterminated structured meta-data entry"); err != nil {
				return err
			}
			goto again
		default:
			p.charToken(c)
		}

	case stateMetaValueFirst:
		if c == '"' {
			p.beginToken()
			st.machine = stateMetaValueQuoted
			break
		}
		p.beginToken()
		st.machine = stateMetaValue
		goto again

	case stateMetaValue:
		switch c {
		case ',':
			p.tokens.metaValue(st)
			p.beginToken()
			st.machine = stateMetaKey
		case '>':
			p.tokens.metaValue(st)
			st.machine = stateMetaClose
		case '\n', '\r':
			if err := p.violation("unterminated structured meta-data entry"); err != nil {
				return err
			}
			goto again
		default:
			p.charToken(c)
		}

	case stateMetaValueQuoted:
		switch c {
		case '"':
			p.tokens.metaValue(st)
			st.machine = stateMetaAfterQuoted
		case '\n', '\r':
			if err := p.violation("newline inside quoted meta-data value"); err != nil {
				return err
			}
			goto again
		default:
			// Commas, equals signs and angle brackets are literal here.
			p.charToken(c)
		}

	case stateMetaAfterQuoted:
		switch c {
		case ',':
			p.beginToken()
			st.machine = stateMetaKey
		case '>':
			st.machine = stateMetaClose
		default:
			if err := p.violation("unexpected character after quoted meta-data value"); err != nil {
				return err
			}
			goto again
		}

	case stateMetaClose:
		switch c {
		case '\n', '\r':
			if err := p.tokens.metaLine(st); err != nil {
				return err
			}
			p.endLine(c, stateLineStart)
		default:
			if err := p.violation("trailing characters after '>'"); err != nil {
				return err
			}
			goto again
		}

	case stateHeaderColumns:
		if c != litHeaderFixed[st.lit] {
			if err := p.violation("malformed column header line"); err != nil {
				return err
			}
			goto again
		}
		st.lit++
		if st.lit == len(litHeaderFixed) {
			st.machine = stateHeaderAfterFixed
		}

	case stateHeaderAfterFixed:
		switch c {
		case '\t':
			st.lit = 0
			st.machine = stateHeaderFormatTag
		case '\n', '\r':
			p.tokens.headerLine(st)
			p.endLine(c, stateBodyStart)
		default:
			if err := p.violation("malformed column header line"); err != nil {
				return err
			}
			goto again
		}

	case stateHeaderFormatTag:
		if c != litHeaderFormat[st.lit] {
			if err := p.violation("malformed column header line"); err != nil {
				return err
			}
			goto again
		}
		st.lit++
		if st.lit == len(litHeaderFormat) {
			st.machine = stateHeaderAfterFormat
		}

	case stateHeaderAfterFormat:
		switch c {
		case '\t':
			p.beginToken()
			st.machine = stateHeaderSample
		case '\n', '\r':
			if err := p.violation("FORMAT column declared without sample columns"); err != nil {
				return err
			}
			goto again
		default:
			if err := p.violation("malformed column header line"); err != nil {
				return err
			}
			goto again
		}

	case stateHeaderSample:
		switch c {
		case '\t':
			if st.tok == 0 {
				if err := p.violation("empty sample name"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.sampleName(st)
			p.beginToken()
		case '\n', '\r':
			if st.tok == 0 {
				if err := p.violation("empty sample name"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.sampleName(st)
			p.tokens.headerLine(st)
			p.endLine(c, stateBodyStart)
		default:
			p.charToken(c)
		}

	case stateBodyStart:
		if c == '\n' || c == '\r' {
			if err := p.violation("empty line in body section"); err != nil {
				return err
			}
			goto again
		}
		st.Columns = 1
		p.beginToken()
		st.machine = stateBodyToken
		goto again

	case stateBodyColumnStart:
		switch c {
		case '\t', '\n', '\r':
			if err := p.violation("empty body column"); err != nil {
				return err
			}
			goto again
		default:
			p.beginToken()
			st.machine = stateBodyToken
			goto again
		}

	case stateBodyToken:
		switch c {
		case '\t':
			if st.tok == 0 {
				if err := p.violation("empty token in body column"); err != nil {
					return err
				}
				goto again
			}
			p.tokens.tokenEnd(st)
			p.tokens.columnEnd(st, st.Columns)
			st.Columns++
			st.machine = stateBodyColumnStart
		case '\n', '\r':
			if err := p.endBodyLine(); err != nil {
				return err
			}
			if st.machine == stateSkipLine {
				goto again
			}
			p.endLine(c, stateBodyStart)
		default:
			if d := subDelim(st.Columns); d != 0 && c == d {
				if st.tok == 0 {
					if err := p.violation("empty token in body column"); err != nil {
						return err
					}
					goto again
				}
				p.tokens.tokenEnd(st)
				p.beginToken()
			} else {
				p.charToken(c)
			}
		}

	case stateSkipLine:
		if c == '\n' {
			p.finishLine(st.resume)
		}
		// Everything else, '\r' included, is discarded.

	case stateExpectLF:
		if c == '\n' {
			p.finishLine(st.resume)
			break
		}
		if err := p.violation("expected line feed after carriage return"); err != nil {
			return err
		}
		goto again
	}

	return nil
}

// endBodyLine completes the body line currently being scanned, as
// triggered by a newline or by end of input. On a reported violation
// the machine is left in the skip-line state.
func (p *Parser[P, E]) endBodyLine() error {
	st := &p.state
	if st.machine == stateBodyColumnStart || st.tok == 0 {
		return p.violation("empty token in body column")
	}
	p.tokens.tokenEnd(st)
	p.tokens.columnEnd(st, st.Columns)
	if st.Columns < 8 {
		return p.violation(fmt.Sprintf("expected at least 8 columns, found %d", st.Columns))
	}
	return p.tokens.bodyLine(st)
}

// violation routes a grammar mismatch to the error policy for the
// section currently being scanned. If the policy allows the scan to
// continue, the machine resynchronizes at the next line boundary and
// resumes in the section the failed one leads into.
func (p *Parser[P, E]) violation(msg string) error {
	st := &p.state
	var err error
	switch st.section {
	case SectionFileFormat:
		err = p.errors.fileFormatError(st, msg)
	case SectionMeta:
		err = p.errors.metaError(st, msg)
	case SectionHeader:
		err = p.errors.headerError(st, msg)
	default:
		err = p.errors.bodyError(st, msg)
	}
	if err != nil {
		return err
	}
	switch st.section {
	case SectionFileFormat, SectionMeta:
		st.resume = stateLineStart
	default:
		st.resume = stateBodyStart
	}
	st.machine = stateSkipLine
	return nil
}

func (p *Parser[P, E]) beginToken() {
	p.tokens.tokenBegin(&p.state)
	p.state.tok = 0
}

func (p *Parser[P, E]) charToken(c byte) {
	p.tokens.tokenChar(&p.state, c)
	p.state.tok++
}

// endLine finishes the current line, or defers that until the line feed
// when the terminator was a carriage return.
func (p *Parser[P, E]) endLine(c byte, next machineState) {
	if c == '\r' {
		p.state.resume = next
		p.state.machine = stateExpectLF
		return
	}
	p.finishLine(next)
}

// finishLine fires the newline event, advances the line counter and
// moves the machine into the next section.
func (p *Parser[P, E]) finishLine(next machineState) {
	st := &p.state
	p.tokens.newline(st)
	st.Lines++
	st.Columns = 0
	st.lit = 0
	st.tok = 0
	st.machine = next
	switch next {
	case stateLineStart:
		st.section = SectionMeta
	case stateBodyStart:
		st.section = SectionBody
	}
}
