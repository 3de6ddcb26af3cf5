package doctype

import "regexp"

// Type identifies the legal-instrument class of a document. It is detected
// once per document and drives which segmentation cascade runs first.
type Type string

const (
	Law         Type = "law"
	Decree      Type = "decree"
	Circular    Type = "circular"
	Decision    Type = "decision"
	Directive   Type = "directive"
	Instruction Type = "instruction"
	Generic     Type = "generic"
)

// Hint carries declared document metadata checked before the text itself.
type Hint struct {
	Title  string
	Number string
}

// prefixLen bounds how much of the document is scanned; the instrument name
// always appears in the header block.
const prefixLen = 1000

// Ordered: first match wins, so the more specific instruments come before
// the catch-all Instruction pattern.
var patterns = []struct {
	t  Type
	re *regexp.Regexp
}{
	{Law, regexp.MustCompile(`(?i)LUẬT|LAW`)},
	{Decree, regexp.MustCompile(`(?i)NGHỊ\s*ĐỊNH|DECREE`)},
	{Circular, regexp.MustCompile(`(?i)THÔNG\s*TƯ|CIRCULAR`)},
	{Decision, regexp.MustCompile(`(?i)QUYẾT\s*ĐỊNH|DECISION`)},
	{Directive, regexp.MustCompile(`(?i)CHỈ\s*THỊ|DIRECTIVE`)},
	{Instruction, regexp.MustCompile(`(?i)HƯỚNG\s*DẪN|INSTRUCTION`)},
}

// Detect classifies a document by its declared metadata first, then by the
// leading text. It cannot fail; unknown documents classify as Generic.
func Detect(text string, hint *Hint) Type {
	if hint != nil {
		for _, p := range patterns {
			if (hint.Title != "" && p.re.MatchString(hint.Title)) ||
				(hint.Number != "" && p.re.MatchString(hint.Number)) {
				return p.t
			}
		}
	}
	head := text
	if runes := []rune(head); len(runes) > prefixLen {
		head = string(runes[:prefixLen])
	}
	for _, p := range patterns {
		if p.re.MatchString(head) {
			return p.t
		}
	}
	return Generic
}
