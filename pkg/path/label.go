package path

import (
	"fmt"
	"regexp"
	"unicode"
)

// labelPattern matches a whole segment: one or more label characters or
// escaped-hex \xHH forms. Anything else fails validation.
var labelPattern = regexp.MustCompile(`^(\\x[0-9a-f][0-9a-f]|[0-9A-Za-z:.#$%_-])+$`)

// LabelErrorKind discriminates the two validation failure modes.
type LabelErrorKind int

const (
	// NonAscii reports a character outside the ASCII range.
	NonAscii LabelErrorKind = iota
	// InvalidCharacter reports an ASCII character outside the label set.
	InvalidCharacter
)

// LabelError describes why a path segment failed validation. It always
// points at the first offending character, scanning left to right. Pos is
// a character (rune) index relative to the segment.
type LabelError struct {
	Kind LabelErrorKind
	Char rune
	Pos  int
	Elem string // the offending segment; set for InvalidCharacter only
}

func (e *LabelError) Error() string {
	switch e.Kind {
	case NonAscii:
		return fmt.Sprintf("Non-ASCII character %q at position %d.", e.Char, e.Pos)
	default:
		return fmt.Sprintf("Invalid character %q at position %d in %q.", e.Char, e.Pos, e.Elem)
	}
}

// Label is a validated path segment. The zero value is the empty label;
// valid labels only come out of ParseLabel.
type Label struct {
	text string
}

// ParseLabel validates a single path segment. The segment is kept verbatim:
// no normalization of case or escapes. The wildcard "*" is not a label; it
// is handled by ParseElem before label validation runs.
func ParseLabel(s string) (Label, error) {
	if labelPattern.MatchString(s) {
		return Label{text: s}, nil
	}
	return Label{}, labelError(s)
}

// labelError classifies a segment that failed the label grammar. The
// non-ASCII scan runs before the character-class scan, so a multi-byte
// rune always reports NonAscii rather than InvalidCharacter.
func labelError(s string) *LabelError {
	pos := 0
	for _, r := range s {
		if r > unicode.MaxASCII {
			return &LabelError{Kind: NonAscii, Char: r, Pos: pos}
		}
		pos++
	}
	pos = 0
	for _, r := range s {
		if !IsLabelRune(r) {
			return &LabelError{Kind: InvalidCharacter, Char: r, Pos: pos, Elem: s}
		}
		pos++
	}
	// Every rune is individually allowed but the whole segment still failed
	// the grammar: the segment is empty. ParsePrefix drops empty segments,
	// so this only fires on a direct ParseLabel("") call.
	return &LabelError{Kind: InvalidCharacter, Pos: 0, Elem: s}
}

// IsLabelRune reports whether r belongs to the allowed label character set
// [0-9A-Za-z:.#$%_-]. Escaped-hex forms are a property of whole segments,
// not single runes, so backslash is not in the set.
func IsLabelRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	switch r {
	case ':', '.', '#', '$', '%', '_', '-':
		return true
	}
	return false
}

// String returns the segment text exactly as it was parsed.
func (l Label) String() string {
	return l.text
}
