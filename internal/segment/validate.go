package segment

import (
	"fmt"
	"unicode/utf8"
)

// validate computes the self-assessment for a completed segmentation:
// content-preservation accounting plus the warning/error signals callers use
// to accept, flag, or reject a parse.
func (s Segmenter) validate(text string, articles []Article) Validation {
	v := Validation{Status: StatusSuccess, Issues: []string{}}

	originalLen := utf8.RuneCountInString(text)
	segmentedLen := 0
	totalClauses := 0
	totalPoints := 0
	longClauses := 0
	for _, a := range articles {
		totalClauses += len(a.Clauses)
		for _, c := range a.Clauses {
			n := utf8.RuneCountInString(c.Text)
			segmentedLen += n
			totalPoints += len(c.Points)
			if n > s.MaxClauseRunes {
				longClauses++
				v.Issues = append(v.Issues, fmt.Sprintf("very long clause detected (%d chars)", n))
			}
		}
	}

	ratio := 0.0
	if originalLen > 0 {
		ratio = float64(segmentedLen) / float64(originalLen)
	}
	v.Stats = Stats{
		OriginalLength:    originalLen,
		SegmentedLength:   segmentedLen,
		PreservationRatio: ratio,
		TotalArticles:     len(articles),
		TotalClauses:      totalClauses,
		TotalPoints:       totalPoints,
	}

	if ratio < s.MinPreservation {
		v.Issues = append(v.Issues, fmt.Sprintf("low content preservation: %.0f%%", ratio*100))
	}
	if ratio > s.MaxPreservation {
		v.Issues = append(v.Issues, fmt.Sprintf("content duplication detected: %.0f%%", ratio*100))
	}
	if len(v.Issues) > 0 {
		v.Status = StatusWarning
	}

	// Structurally impossible given the ultimate fallback, but checked all
	// the same: an empty article list is an error, not a warning.
	if len(articles) == 0 {
		v.Issues = append(v.Issues, "no articles found")
		v.Status = StatusError
	}
	return v
}
