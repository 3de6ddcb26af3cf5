package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags.
type FileConfig struct {
	Input string `yaml:"input" json:"input"`

	Output struct {
		Processed string `yaml:"processed" json:"processed"`
		Diffs     string `yaml:"diffs" json:"diffs"`
	} `yaml:"output" json:"output"`

	Report    string `yaml:"report" json:"report"`
	ReportPDF string `yaml:"reportPDF" json:"reportPDF"`

	SelfDiff bool `yaml:"selfDiff" json:"selfDiff"`
	HTML     bool `yaml:"html" json:"html"`
	Verbose  bool `yaml:"verbose" json:"verbose"`

	Segment struct {
		MinLawArticles    int     `yaml:"minLawArticles" json:"minLawArticles"`
		MinDecreeArticles int     `yaml:"minDecreeArticles" json:"minDecreeArticles"`
		MinRomanSections  int     `yaml:"minRomanSections" json:"minRomanSections"`
		MinPreservation   float64 `yaml:"minPreservation" json:"minPreservation"`
		MaxPreservation   float64 `yaml:"maxPreservation" json:"maxPreservation"`
		MaxClauseRunes    int     `yaml:"maxClauseRunes" json:"maxClauseRunes"`
	} `yaml:"segment" json:"segment"`

	Pairs []DiffPair `yaml:"pairs" json:"pairs"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Default paths baked into flag parsing; ApplyFileConfig must recognise them
// so a file value can override an unset flag.
const (
	inputDefault     = "data/raw/corpus.json"
	processedDefault = "data/processed"
	diffsDefault     = "data/diffs"
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == inputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.ProcessedDir == "" || cfg.ProcessedDir == processedDefault) && fc.Output.Processed != "" {
		cfg.ProcessedDir = fc.Output.Processed
	}
	if (cfg.DiffDir == "" || cfg.DiffDir == diffsDefault) && fc.Output.Diffs != "" {
		cfg.DiffDir = fc.Output.Diffs
	}
	if cfg.ReportPath == "" && fc.Report != "" {
		cfg.ReportPath = fc.Report
	}
	if cfg.ReportPDFPath == "" && fc.ReportPDF != "" {
		cfg.ReportPDFPath = fc.ReportPDF
	}
	if !cfg.SelfDiff && fc.SelfDiff {
		cfg.SelfDiff = true
	}
	if !cfg.HTMLInput && fc.HTML {
		cfg.HTMLInput = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}

	if cfg.Segment.MinLawArticles == 0 && fc.Segment.MinLawArticles > 0 {
		cfg.Segment.MinLawArticles = fc.Segment.MinLawArticles
	}
	if cfg.Segment.MinDecreeArticles == 0 && fc.Segment.MinDecreeArticles > 0 {
		cfg.Segment.MinDecreeArticles = fc.Segment.MinDecreeArticles
	}
	if cfg.Segment.MinRomanSections == 0 && fc.Segment.MinRomanSections > 0 {
		cfg.Segment.MinRomanSections = fc.Segment.MinRomanSections
	}
	if cfg.Segment.MinPreservation == 0 && fc.Segment.MinPreservation > 0 {
		cfg.Segment.MinPreservation = fc.Segment.MinPreservation
	}
	if cfg.Segment.MaxPreservation == 0 && fc.Segment.MaxPreservation > 0 {
		cfg.Segment.MaxPreservation = fc.Segment.MaxPreservation
	}
	if cfg.Segment.MaxClauseRunes == 0 && fc.Segment.MaxClauseRunes > 0 {
		cfg.Segment.MaxClauseRunes = fc.Segment.MaxClauseRunes
	}

	if len(cfg.Pairs) == 0 && len(fc.Pairs) > 0 {
		cfg.Pairs = append([]DiffPair{}, fc.Pairs...)
	}
}

// ValidateConfig checks cfg for contradictions before the pipeline starts.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.ProcessedDir) == "" {
		return errors.New("config: processed output directory is required")
	}
	if strings.TrimSpace(cfg.DiffDir) == "" {
		return errors.New("config: diff output directory is required")
	}
	s := cfg.Segment
	if s.MinLawArticles < 0 || s.MinDecreeArticles < 0 || s.MinRomanSections < 0 || s.MaxClauseRunes < 0 {
		return errors.New("config: negative segment thresholds are not allowed")
	}
	if s.MinPreservation < 0 || s.MaxPreservation < 0 {
		return errors.New("config: negative preservation bounds are not allowed")
	}
	if s.MinPreservation > 0 && s.MaxPreservation > 0 && s.MinPreservation >= s.MaxPreservation {
		return errors.New("config: preservation lower bound must be below the upper bound")
	}
	for _, p := range cfg.Pairs {
		if strings.TrimSpace(p.Base) == "" || strings.TrimSpace(p.Revised) == "" {
			return errors.New("config: every diff pair needs both base and revised")
		}
	}
	if cfg.ReportPDFPath != "" && cfg.ReportPath == "" {
		return errors.New("config: report PDF requires a markdown report path")
	}
	return nil
}
