package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vanbantools/legistruct/internal/corpus"
	"github.com/vanbantools/legistruct/internal/doctype"
	"github.com/vanbantools/legistruct/internal/htmltext"
	"github.com/vanbantools/legistruct/internal/normalize"
	"github.com/vanbantools/legistruct/internal/segment"
	"github.com/vanbantools/legistruct/internal/structdiff"
)

// App runs the preprocessing pipeline: load corpus, normalize, segment,
// persist, diff.
type App struct {
	cfg Config
	seg segment.Segmenter
}

func New(cfg Config) *App {
	return &App{cfg: cfg, seg: cfg.Segment}
}

// ProcessedDocument is the persisted envelope for one segmented document.
type ProcessedDocument struct {
	DocID     string            `json:"doc_id"`
	Meta      json.RawMessage   `json:"meta"`
	Structure segment.Structure `json:"structure"`
}

// DiffReport is the persisted envelope for one comparison.
type DiffReport struct {
	Base    string              `json:"base"`
	Revised string              `json:"revised"`
	Diff    []structdiff.Change `json:"diff"`
}

// Summary aggregates one pipeline run for the summary.json artifact.
type Summary struct {
	TotalDocuments int            `json:"total_documents"`
	ByStatus       map[string]int `json:"by_status"`
	ByStrategy     map[string]int `json:"by_strategy"`
}

// Run executes the pipeline end to end. Individual document anomalies are
// validation warnings inside the outputs; Run only fails on I/O and decoding
// errors.
func (a *App) Run(ctx context.Context) error {
	docs, err := corpus.Load(a.cfg.InputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.ProcessedDir, 0o755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	if err := os.MkdirAll(a.cfg.DiffDir, 0o755); err != nil {
		return fmt.Errorf("create diff dir: %w", err)
	}

	ids := corpus.AssignIDs(docs)
	summary := Summary{ByStatus: map[string]int{}, ByStrategy: map[string]int{}}
	processed := make([]ProcessedDocument, 0, len(docs))
	for i, d := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := a.processDocument(ids[i], d)
		path := filepath.Join(a.cfg.ProcessedDir, out.DocID+".json")
		if err := writeJSON(path, out); err != nil {
			return err
		}
		summary.TotalDocuments++
		summary.ByStatus[string(out.Structure.Validation.Status)]++
		summary.ByStrategy[string(out.Structure.StrategyUsed)]++
		processed = append(processed, out)

		ev := log.Info()
		if out.Structure.Validation.Status != segment.StatusSuccess {
			ev = log.Warn().Strs("issues", out.Structure.Validation.Issues)
		}
		ev.Str("doc_id", out.DocID).
			Str("strategy", string(out.Structure.StrategyUsed)).
			Str("status", string(out.Structure.Validation.Status)).
			Int("articles", len(out.Structure.Articles)).
			Msg("document segmented")
	}
	if err := writeJSON(filepath.Join(a.cfg.ProcessedDir, "summary.json"), summary); err != nil {
		return err
	}

	var reports []DiffReport
	if a.cfg.SelfDiff {
		for i, out := range processed {
			if len(out.Structure.Articles) == 0 {
				continue
			}
			report := DiffReport{
				Base:    out.DocID + "_original",
				Revised: out.DocID + "_processed",
				Diff:    structdiff.Diff(rawWrapper(docs[i].Content), out.Structure),
			}
			name := out.DocID + "_original_vs_processed.json"
			if err := writeJSON(filepath.Join(a.cfg.DiffDir, name), report); err != nil {
				return err
			}
			reports = append(reports, report)
		}
		log.Info().Int("count", len(reports)).Msg("self-diffs written")
	}

	for _, p := range a.cfg.Pairs {
		report, err := a.DiffFiles(p.Base, p.Revised)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s_vs_%s.json", report.Base, report.Revised)
		if err := writeJSON(filepath.Join(a.cfg.DiffDir, name), report); err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if a.cfg.ReportPath != "" {
		md := RenderDiffMarkdown(reports)
		if err := os.WriteFile(a.cfg.ReportPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if a.cfg.ReportPDFPath != "" {
			if err := WriteReportPDF(md, a.cfg.ReportPDFPath); err != nil {
				return fmt.Errorf("write report pdf: %w", err)
			}
		}
	}

	log.Info().Int("documents", summary.TotalDocuments).
		Int("diffs", len(reports)).
		Msg("pipeline complete")
	return nil
}

// processDocument runs one record through extraction, normalization, type
// detection, and segmentation.
func (a *App) processDocument(id string, d corpus.Document) ProcessedDocument {
	content := d.Content
	title := d.Title
	if a.cfg.HTMLInput {
		page := htmltext.FromHTML([]byte(content))
		content = page.Text
		if title == "" {
			title = page.Title
		}
	}
	text := normalize.Text(content)
	typ := doctype.Detect(text, &doctype.Hint{Title: title, Number: d.Number})
	return ProcessedDocument{
		DocID:     id,
		Meta:      d.Meta(),
		Structure: a.seg.Segment(text, typ),
	}
}

// DiffFiles loads two processed documents and compares them.
func (a *App) DiffFiles(basePath, revisedPath string) (DiffReport, error) {
	base, baseID, err := LoadStructure(basePath)
	if err != nil {
		return DiffReport{}, err
	}
	revised, revisedID, err := LoadStructure(revisedPath)
	if err != nil {
		return DiffReport{}, err
	}
	return DiffReport{
		Base:    baseID,
		Revised: revisedID,
		Diff:    structdiff.Diff(base, revised),
	}, nil
}

// LoadStructure reads a processed-document file. Both the persisted envelope
// and a bare structure are accepted; the returned id falls back to the file
// name when the envelope carries none.
func LoadStructure(path string) (segment.Structure, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return segment.Structure{}, "", fmt.Errorf("read structure: %w", err)
	}
	var env ProcessedDocument
	if err := json.Unmarshal(data, &env); err == nil && len(env.Structure.Articles) > 0 {
		id := env.DocID
		if id == "" {
			id = stemOf(path)
		}
		return env.Structure, id, nil
	}
	var st segment.Structure
	if err := json.Unmarshal(data, &st); err != nil {
		return segment.Structure{}, "", fmt.Errorf("decode structure %s: %w", path, err)
	}
	return st, stemOf(path), nil
}

// rawWrapper packages unsegmented content as a one-clause structure so a
// processed document can be compared against its own source text. Long
// content is truncated; the comparison is a sanity check, not an archive.
func rawWrapper(content string) segment.Structure {
	runes := []rune(content)
	if len(runes) > 1000 {
		content = string(runes[:1000]) + "..."
	}
	return segment.Structure{Articles: []segment.Article{{
		Kind:    segment.KindSection,
		Label:   "Original",
		Title:   "Raw Document Content",
		Clauses: []segment.Clause{{No: "1", Text: content, Points: []segment.Point{}}},
	}}}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func stemOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
