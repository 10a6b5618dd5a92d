package vcf

import "fmt"

// Section identifies the part of the document grammar being scanned.
type Section int

const (
	SectionFileFormat Section = iota
	SectionMeta
	SectionHeader
	SectionBody
)

// String returns the section name as used in diagnostics.
func (s Section) String() string {
	switch s {
	case SectionFileFormat:
		return "file format"
	case SectionMeta:
		return "meta-data"
	case SectionHeader:
		return "header"
	case SectionBody:
		return "body"
	default:
		return "unknown"
	}
}

// SectionError reports input that does not match the grammar expected
// for the section currently being scanned.
type SectionError struct {
	Section Section
	Line    int
	Message string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("error in %s section at line %d: %s", e.Section, e.Line, e.Message)
}

// ParsingError reports a failure converting captured tokens into their
// semantic values on a line the grammar already judged well-formed.
// All data-assembly failures surface as this one kind.
type ParsingError struct {
	Line int
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %v", e.Line, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// ErrorPolicy decides what happens when a section violation is found.
// A non-nil return aborts the scan; a nil return lets the grammar
// resynchronize at the next line boundary. Both implementations latch
// the parsing state invalid.
type ErrorPolicy interface {
	fileFormatError(s *ParsingState, msg string) error
	metaError(s *ParsingState, msg string) error
	headerError(s *ParsingState, msg string) error
	bodyError(s *ParsingState, msg string) error

	// diagnostics returns the messages collected so far; nil for
	// policies that abort on the first violation.
	diagnostics() []string
}

// AbortPolicy treats every section violation as fatal. Intended for the
// trusting Reader configuration, where malformed input is exceptional.
type AbortPolicy struct{}

func (AbortPolicy) fileFormatError(s *ParsingState, msg string) error {
	return abort(s, SectionFileFormat, msg)
}

func (AbortPolicy) metaError(s *ParsingState, msg string) error {
	return abort(s, SectionMeta, msg)
}

func (AbortPolicy) headerError(s *ParsingState, msg string) error {
	return abort(s, SectionHeader, msg)
}

func (AbortPolicy) bodyError(s *ParsingState, msg string) error {
	return abort(s, SectionBody, msg)
}

func (AbortPolicy) diagnostics() []string { return nil }

func abort(s *ParsingState, section Section, msg string) error {
	s.invalidate()
	return &SectionError{Section: section, Line: s.lineNumber(), Message: msg}
}

// ReportPolicy records every section violation and lets the scan
// continue, so a single run can collect more than one diagnostic.
type ReportPolicy struct {
	msgs []string
}

func (p *ReportPolicy) fileFormatError(s *ParsingState, msg string) error {
	p.report(s, SectionFileFormat, msg)
	return nil
}

func (p *ReportPolicy) metaError(s *ParsingState, msg string) error {
	p.report(s, SectionMeta, msg)
	return nil
}

func (p *ReportPolicy) headerError(s *ParsingState, msg string) error {
	p.report(s, SectionHeader, msg)
	return nil
}

func (p *ReportPolicy) bodyError(s *ParsingState, msg string) error {
	p.report(s, SectionBody, msg)
	return nil
}

func (p *ReportPolicy) diagnostics() []string { return p.msgs }

func (p *ReportPolicy) report(s *ParsingState, section Section, msg string) {
	s.invalidate()
	e := SectionError{Section: section, Line: s.lineNumber(), Message: msg}
	p.msgs = append(p.msgs, e.Error())
}
