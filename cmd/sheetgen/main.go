// Command sheetgen converts the configured folder of .xlsx workbooks into
// table JSON plus the TypeScript table registry and extension stubs.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mafei198/sheetgen/config"
	"github.com/mafei198/sheetgen/excel"
	"github.com/mafei198/sheetgen/logger"
	"github.com/mafei198/sheetgen/misc"
	"github.com/mafei198/sheetgen/publish"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetgen",
		Short: "Export Excel tables to JSON and TypeScript",
		Long: `sheetgen reads every .xlsx workbook in excel_folder_path and writes one
JSON file per table, a TableSetting.ts enumeration of all tables and an
extension stub per table. Settings come from config.json or $` + config.EnvPath + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sheetgen:", err)
		logger.Stop()
		os.Exit(1)
	}
	logger.Stop()
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.LogFile != "" {
		runID, err := logger.StartZap(logger.ZapOptions{File: cfg.LogFile})
		if err != nil {
			return fmt.Errorf("start log file: %w", err)
		}
		logger.INFO("run id: ", runID)
	}

	summary, err := excel.Export(cfg)
	if err != nil {
		return err
	}
	logger.INFOf("converted %d/%d tables, %d json written, %d stubs created, %d failed",
		summary.Converted, summary.Discovered, summary.JSONWritten, summary.StubsCreated, summary.Failed)

	if publish.Enabled(cfg) {
		result, err := publish.Run(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("publish tables: %w", err)
		}
		logger.INFOf("published %d tables", result.Tables)
	}

	logger.INFO("Success! Elapsed: ", misc.Elapsed(start))
	return nil
}
