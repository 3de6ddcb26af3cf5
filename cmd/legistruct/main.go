package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vanbantools/legistruct/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		processedDir string
		diffDir      string
		configPath   string
		reportPath   string
		reportPDF    string
		pairsFlag    string
		selfDiff     bool
		htmlInput    bool
		verbose      bool

		minLawArticles    int
		minDecreeArticles int
		minRomanSections  int
		minPreservation   float64
		maxPreservation   float64
		maxClauseRunes    int
	)

	flag.StringVar(&inputPath, "input", "data/raw/corpus.json", "Path to crawled corpus JSON")
	flag.StringVar(&processedDir, "out.processed", "data/processed", "Directory for segmented document JSON")
	flag.StringVar(&diffDir, "out.diffs", "data/diffs", "Directory for comparison JSON")
	flag.StringVar(&configPath, "config", os.Getenv("LEGISTRUCT_CONFIG"), "Optional YAML/JSON config file")
	flag.StringVar(&reportPath, "report", "", "Optional Markdown report of all comparisons")
	flag.StringVar(&reportPDF, "report.pdf", "", "Optional PDF copy of the report (requires -report)")
	flag.StringVar(&pairsFlag, "pairs", "", "Comma-separated base:revised processed-file pairs to diff")
	flag.BoolVar(&selfDiff, "selfdiff", false, "Diff each document against its own raw content")
	flag.BoolVar(&htmlInput, "html", false, "Treat corpus content as HTML pages")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")

	flag.IntVar(&minLawArticles, "segment.minLawArticles", 0, "Minimum articles for the Điều strategy on laws (0 keeps default)")
	flag.IntVar(&minDecreeArticles, "segment.minDecreeArticles", 0, "Minimum articles for the Điều strategy on decrees (0 keeps default)")
	flag.IntVar(&minRomanSections, "segment.minRomanSections", 0, "Minimum Roman-numeral sections (0 keeps default)")
	flag.Float64Var(&minPreservation, "segment.minPreservation", 0, "Lower content-preservation bound (0 keeps default)")
	flag.Float64Var(&maxPreservation, "segment.maxPreservation", 0, "Upper content-preservation bound (0 keeps default)")
	flag.IntVar(&maxClauseRunes, "segment.maxClauseRunes", 0, "Clause length warning threshold in runes (0 keeps default)")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:     inputPath,
		ProcessedDir:  processedDir,
		DiffDir:       diffDir,
		ReportPath:    reportPath,
		ReportPDFPath: reportPDF,
		SelfDiff:      selfDiff,
		HTMLInput:     htmlInput,
		Verbose:       verbose,
	}
	cfg.Segment.MinLawArticles = minLawArticles
	cfg.Segment.MinDecreeArticles = minDecreeArticles
	cfg.Segment.MinRomanSections = minRomanSections
	cfg.Segment.MinPreservation = minPreservation
	cfg.Segment.MaxPreservation = maxPreservation
	cfg.Segment.MaxClauseRunes = maxClauseRunes

	// Parse base:revised pairs from the flag
	if s := strings.TrimSpace(pairsFlag); s != "" {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			base, revised, ok := strings.Cut(part, ":")
			if !ok || strings.TrimSpace(base) == "" || strings.TrimSpace(revised) == "" {
				log.Error().Str("pair", part).Msg("pair must be base:revised")
				os.Exit(2)
			}
			cfg.Pairs = append(cfg.Pairs, app.DiffPair{
				Base:    strings.TrimSpace(base),
				Revised: strings.TrimSpace(revised),
			})
		}
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
