package segment

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vanbantools/legistruct/internal/doctype"
)

// Segmenter turns normalized legal text into a Structure. The zero value
// behaves like Defaults(); set a field to override one threshold.
type Segmenter struct {
	// MinLawArticles is the minimum "Điều N" heading count for the Điều
	// strategy to claim a law or generic document.
	MinLawArticles int
	// MinDecreeArticles is the same bound for decrees, which legitimately
	// contain a single Điều.
	MinDecreeArticles int
	// MinRomanSections is the minimum Roman-numeral header count for the
	// roman strategy.
	MinRomanSections int
	// MinPreservation and MaxPreservation bound the content-preservation
	// ratio outside of which validation raises a warning.
	MinPreservation float64
	MaxPreservation float64
	// MaxClauseRunes flags clauses whose text exceeds this many runes,
	// a sign that a boundary scan failed to fire.
	MaxClauseRunes int
}

// Defaults returns the segmenter with its standard thresholds.
func Defaults() Segmenter {
	return Segmenter{
		MinLawArticles:    2,
		MinDecreeArticles: 1,
		MinRomanSections:  2,
		MinPreservation:   0.7,
		MaxPreservation:   1.3,
		MaxClauseRunes:    2000,
	}
}

func (s Segmenter) withDefaults() Segmenter {
	d := Defaults()
	if s.MinLawArticles <= 0 {
		s.MinLawArticles = d.MinLawArticles
	}
	if s.MinDecreeArticles <= 0 {
		s.MinDecreeArticles = d.MinDecreeArticles
	}
	if s.MinRomanSections <= 0 {
		s.MinRomanSections = d.MinRomanSections
	}
	if s.MinPreservation <= 0 {
		s.MinPreservation = d.MinPreservation
	}
	if s.MaxPreservation <= 0 {
		s.MaxPreservation = d.MaxPreservation
	}
	if s.MaxClauseRunes <= 0 {
		s.MaxClauseRunes = d.MaxClauseRunes
	}
	return s
}

// Segment runs the type-specific strategy cascade over the text and returns
// the resulting Structure. It never fails: text in which no stage finds
// structure comes back as a single wrapped article, and every anomaly is a
// validation issue rather than an error.
func Segment(text string, typ doctype.Type) Structure {
	return Defaults().Segment(text, typ)
}

// Segment is the instance form of the package-level Segment.
func (s Segmenter) Segment(text string, typ doctype.Type) Structure {
	s = s.withDefaults()
	if typ == "" {
		typ = doctype.Generic
	}

	st := Structure{DocumentType: typ, Articles: []Article{}}
	text = strings.TrimSpace(text)
	if text == "" {
		st.Validation = Validation{
			Status: StatusError,
			Issues: []string{"empty document"},
		}
		return st
	}

	for _, step := range s.cascade(typ) {
		if articles := step.run(text); len(articles) > 0 {
			st.Articles = articles
			st.StrategyUsed = step.tag
			break
		}
		log.Debug().Str("strategy", string(step.tag)).Str("doc_type", string(typ)).
			Msg("strategy yielded no articles")
	}
	if len(st.Articles) == 0 {
		st.Articles = ultimateFallback(text)
		st.StrategyUsed = StrategyUltimateFallback
	}

	st.Validation = s.validate(text, st.Articles)
	return st
}

type strategyStep struct {
	tag Strategy
	run func(string) []Article
}

// cascade is the ordered strategy list per document type; the first stage to
// produce articles wins.
func (s Segmenter) cascade(typ doctype.Type) []strategyStep {
	dieu := func(min int) func(string) []Article {
		return func(t string) []Article { return s.segmentByDieu(t, min) }
	}
	roman := func(t string) []Article { return s.segmentByRoman(t, s.MinRomanSections) }

	switch typ {
	case doctype.Law:
		return []strategyStep{
			{StrategyDieu, dieu(s.MinLawArticles)},
			{StrategyChapters, s.segmentByChapters},
			{StrategyDieu, dieu(1)},
			{StrategyFallback, s.segmentFallback},
		}
	case doctype.Decree:
		return []strategyStep{
			{StrategyDieu, dieu(s.MinDecreeArticles)},
			{StrategyChapters, s.segmentByChapters},
			{StrategyFallback, s.segmentFallback},
		}
	case doctype.Circular:
		return []strategyStep{
			{StrategyChapters, s.segmentByChapters},
			{StrategyDieu, dieu(1)},
			{StrategyRoman, roman},
			{StrategyFallback, s.segmentFallback},
		}
	default:
		return []strategyStep{
			{StrategyDieu, dieu(s.MinLawArticles)},
			{StrategyChapters, s.segmentByChapters},
			{StrategySections, s.segmentBySections},
			{StrategyRoman, roman},
			{StrategyFallback, s.segmentFallback},
		}
	}
}
