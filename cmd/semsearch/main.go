// Package main provides the CLI entry point for semsearch.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/output"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/snapshot"
)

var (
	outputPath   string
	pretty       bool
	jobs         int
	configPath   string
	snapshotPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "semsearch [workbook.xlsx...]",
		Short: "Expand spreadsheet formulas into semantic descriptions",
		Long: `semsearch resolves every cell reference in a workbook's formulas to a
human-readable label and emits one JSON item per formula cell, ready
for downstream embedding and retrieval.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&jobs, "jobs", 0, "Concurrent expansion workers (default: GOMAXPROCS)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML config file path")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Index snapshot path (load if present, save after ingest)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()

	for _, path := range args {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	opts := semsearch.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = semsearch.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if jobs > 0 {
		opts.Jobs = jobs
	}

	entries, err := loadOrBuildEntries(args)
	if err != nil {
		return err
	}

	ix := semsearch.IndexFromEntries(entries, opts)
	items, err := semsearch.ExpandAll(cmd.Context(), ix, opts)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	jsonData, err := output.ItemsToJSON(items, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s expanded %d formulas from %d cells in %s\n",
		green("ok"), len(items), ix.Len(), time.Since(start).Round(time.Millisecond))
	return nil
}

// loadOrBuildEntries prefers an existing snapshot; otherwise it ingests the
// workbooks and saves a snapshot when a path was given.
func loadOrBuildEntries(paths []string) (map[models.CellAddress]models.Entry, error) {
	if snapshotPath != "" {
		entries, ok, err := snapshot.Load(snapshotPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		if ok {
			return entries, nil
		}
	}

	entries, err := semsearch.BuildEntries(paths)
	if err != nil {
		return nil, fmt.Errorf("ingestion failed: %w", err)
	}

	if snapshotPath != "" {
		if err := snapshot.Save(snapshotPath, entries); err != nil {
			return nil, fmt.Errorf("failed to save snapshot: %w", err)
		}
	}
	return entries, nil
}
