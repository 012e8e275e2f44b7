// Command analyze runs the morphological pipeline over one document and
// writes the run artifacts: a JSON dump, a markdown report and, when
// enabled, a spreadsheet, a binary tree snapshot and a database row.
//
// Usage:
//
//	analyze [-input file.txt]
//
// Everything else comes from config.yaml or the environment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ruslingua/morphotrie"
	"github.com/ruslingua/morphotrie/internal/app"
	"github.com/ruslingua/morphotrie/internal/config"
	"github.com/ruslingua/morphotrie/store"
)

func main() {
	inputFlag := flag.String("input", "", "document to analyze (overrides the configured input.path)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log)

	if err := run(cfg, log, *inputFlag); err != nil {
		log.Error("analysis failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, inputFlag string) error {
	input := cfg.Input.Path
	if inputFlag != "" {
		input = inputFlag
	}
	if input == "" {
		return errors.New("no input document: set input.path or pass -input")
	}

	analyzer, err := morphotrie.New(cfg.Data.Dictionary, cfg.Data.Lexicon,
		morphotrie.WithLogger(log),
		morphotrie.WithWorkers(cfg.Analyze.Workers),
		morphotrie.WithContextWindow(cfg.Analyze.ContextWindow),
		morphotrie.WithMaxWords(cfg.Analyze.MaxWords),
	)
	if err != nil {
		return err
	}

	log.Info("analyzing document", "input", input, "workers", cfg.Analyze.Workers)
	res, err := analyzer.AnalyzeFile(input)
	if err != nil {
		return err
	}
	stats := res.Tree.Statistics()
	log.Info("document analyzed",
		"words", len(res.Words),
		"tree_nodes", stats.NodeCount,
		"max_depth", stats.MaxDepth,
	)

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeArtifacts(cfg, log, res); err != nil {
		return err
	}

	if cfg.Database.DSN != "" {
		if err := persistRun(context.Background(), cfg, log, input, res); err != nil {
			return err
		}
	}

	log.Info("done", "output", cfg.Output.Dir)
	return nil
}

func writeArtifacts(cfg *config.Config, log *slog.Logger, res *morphotrie.TextAnalysis) error {
	jsonPath := filepath.Join(cfg.Output.Dir, "analysis_results.json")
	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", jsonPath, err)
	}
	if err := res.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", jsonPath, err)
	}
	log.Info("json dump written", "path", jsonPath)

	reportPath := filepath.Join(cfg.Output.Dir, "summary_report.md")
	if err := os.WriteFile(reportPath, []byte(res.Report()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", reportPath, err)
	}
	log.Info("report written", "path", reportPath)

	if cfg.Output.Excel {
		excelPath := filepath.Join(cfg.Output.Dir, "morphological_analysis.xlsx")
		if err := res.ExportExcel(excelPath); err != nil {
			return err
		}
		log.Info("spreadsheet written", "path", excelPath)
	}
	if cfg.Output.Snapshot {
		snapPath := filepath.Join(cfg.Output.Dir, "tree.snap")
		if err := morphotrie.WriteSnapshot(snapPath, res.Tree); err != nil {
			return err
		}
		log.Info("snapshot written", "path", snapPath)
	}
	return nil
}

func persistRun(ctx context.Context, cfg *config.Config, log *slog.Logger, input string, res *morphotrie.TextAnalysis) error {
	pool, err := store.NewPool(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	st := store.New(pool)
	if err := st.InitSchema(ctx); err != nil {
		return err
	}
	id, err := st.SaveRun(ctx, filepath.Base(input), res)
	if err != nil {
		return err
	}
	log.Info("run persisted", "id", id)
	return nil
}
