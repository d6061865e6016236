package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/datakit-labs/tidescale/internal/config"
	"github.com/datakit-labs/tidescale/internal/dataset"
	"github.com/datakit-labs/tidescale/internal/logger"
	"github.com/datakit-labs/tidescale/internal/rescale"
	"github.com/datakit-labs/tidescale/internal/service"
	"github.com/datakit-labs/tidescale/internal/table"
	"github.com/datakit-labs/tidescale/pkg/pipe"
)

type columnSummary struct {
	Column string `json:"column"`
	service.SummaryResponse
}

func main() {
	logger.Init()

	input := flag.String("input", "", "CSV input: file path (.csv, .csv.gz, .csv.zst) or http(s) URL")
	output := flag.String("output", "-", "CSV output path; - writes to stdout")
	columns := flag.String("columns", "", "comma-separated column names; empty selects all")
	op := flag.String("op", "rescale", "operation: rescale or summary")
	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("missing -input")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	selected := splitColumns(*columns)

	run := pipe.Switch(
		pipe.From(*input),
		func(src string) (*table.Table, error) { return loadTable(cfg, src) },
	).Tap(func(tab *table.Table) {
		log.Info().Int("rows", tab.NumRows()).Int("cols", tab.NumCols()).Str("input", *input).Msg("table loaded")
	})

	switch *op {
	case "rescale":
		run = run.Then(func(tab *table.Table) (*table.Table, error) {
			return tab, tab.Apply(rescale.Rescale01, selected...)
		})

		tab, err := run.Value()
		if err != nil {
			log.Fatal().Err(err).Str("run_id", run.ID().String()).Msg("rescale failed")
		}
		if err := writeTable(*output, tab); err != nil {
			log.Fatal().Err(err).Msg("failed to write output")
		}

	case "summary":
		tab, err := run.Value()
		if err != nil {
			log.Fatal().Err(err).Str("run_id", run.ID().String()).Msg("summary failed")
		}
		if err := writeSummaries(*output, tab, selected); err != nil {
			log.Fatal().Err(err).Msg("failed to write summaries")
		}

	default:
		log.Fatal().Str("op", *op).Msg("unknown operation")
	}

	log.Debug().Str("run_id", run.ID().String()).Dur("elapsed", run.Elapsed()).Msg("done")
}

func splitColumns(arg string) []string {
	if arg == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(arg, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func loadTable(cfg *config.AppConfig, src string) (*table.Table, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		fetcher := dataset.NewFetcher(&cfg.FetchEnvConfig)
		return fetcher.FetchTable(context.Background(), src)
	}
	return table.ReadFile(src)
}

func writeTable(path string, tab *table.Table) error {
	if path == "-" {
		return table.WriteCSV(os.Stdout, tab)
	}
	return table.WriteFile(path, tab)
}

func writeSummaries(path string, tab *table.Table, selected []string) error {
	summaries := tab.Summaries()

	out := make([]columnSummary, 0, len(summaries))
	for _, s := range summaries {
		if len(selected) > 0 && !slices.Contains(selected, s.Name) {
			continue
		}
		out = append(out, columnSummary{
			Column:          s.Name,
			SummaryResponse: service.NewSummaryResponse(s.Summary),
		})
	}

	data, err := sonic.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
