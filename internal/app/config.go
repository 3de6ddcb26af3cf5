package app

import "github.com/vanbantools/legistruct/internal/segment"

// Config holds runtime configuration for the pipeline.
type Config struct {
	// InputPath is the crawled corpus JSON file.
	InputPath string

	// Output locations
	ProcessedDir  string
	DiffDir       string
	ReportPath    string
	ReportPDFPath string

	// Behavior
	SelfDiff  bool
	HTMLInput bool
	Verbose   bool

	// Segment overrides segmenter thresholds; zero fields keep the defaults.
	Segment segment.Segmenter

	// Pairs are processed-document files to diff against each other.
	Pairs []DiffPair
}

// DiffPair names two processed documents to compare, base first.
type DiffPair struct {
	Base    string `yaml:"base" json:"base"`
	Revised string `yaml:"revised" json:"revised"`
}
