package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vanbantools/legistruct/internal/app"
)

// legidiff compares two already-processed documents without rerunning the
// pipeline.
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		basePath    string
		revisedPath string
		outPath     string
		reportPath  string
		reportPDF   string
		verbose     bool
	)
	flag.StringVar(&basePath, "base", "", "Processed JSON for the base document")
	flag.StringVar(&revisedPath, "revised", "", "Processed JSON for the revised document")
	flag.StringVar(&outPath, "out", "", "Write the diff JSON here instead of stdout")
	flag.StringVar(&reportPath, "report", "", "Optional Markdown report path")
	flag.StringVar(&reportPDF, "report.pdf", "", "Optional PDF copy of the report (requires -report)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if basePath == "" || revisedPath == "" {
		log.Error().Msg("both -base and -revised are required")
		os.Exit(2)
	}
	if reportPDF != "" && reportPath == "" {
		log.Error().Msg("-report.pdf requires -report")
		os.Exit(2)
	}

	a := app.New(app.Config{})
	report, err := a.DiffFiles(basePath, revisedPath)
	if err != nil {
		log.Error().Err(err).Msg("diff failed")
		os.Exit(1)
	}
	log.Info().Str("base", report.Base).Str("revised", report.Revised).
		Int("changes", len(report.Diff)).Msg("diff complete")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode diff")
		os.Exit(1)
	}
	data = append(data, '\n')
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			log.Error().Err(err).Msg("write diff")
			os.Exit(1)
		}
	} else {
		os.Stdout.Write(data)
	}

	if reportPath != "" {
		md := app.RenderDiffMarkdown([]app.DiffReport{report})
		if err := os.WriteFile(reportPath, []byte(md), 0o644); err != nil {
			log.Error().Err(err).Msg("write report")
			os.Exit(1)
		}
		if reportPDF != "" {
			if err := app.WriteReportPDF(md, reportPDF); err != nil {
				log.Error().Err(err).Msg("write report pdf")
				os.Exit(1)
			}
		}
	}
}
