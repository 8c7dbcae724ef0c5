package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"profit-ledger/internal/config"
	"profit-ledger/internal/domain"
	"profit-ledger/internal/gateway"
	"profit-ledger/internal/usecase"
)

func main() {
	now := time.Now()

	// Define command-line flags
	primaryFile := flag.String("primary", "", "Path to the primary workbook, one region sheet each (required)")
	wageFile := flag.String("wage", "", "Path to the accrued-wage workbook (required)")
	volumeFile := flag.String("volume", "", "Path to the delivery-volume workbook (required)")
	expenseFile := flag.String("expense", "", "Path to the expense workbook holding 摊提费用明细 and 当日费用支出 (required)")
	outFile := flag.String("out", "", "Path of the output workbook (default: <primary>_<year>年<month>月_processed.xlsx)")
	year := flag.Int("year", now.Year(), "Reporting year")
	month := flag.Int("month", int(now.Month()), "Reporting month (1-12)")
	flag.Parse()

	logger := config.GetLogger()

	// Validate required flags
	if *primaryFile == "" || *wageFile == "" || *volumeFile == "" || *expenseFile == "" {
		fmt.Println("Error: All flags (-primary, -wage, -volume, -expense) are required.")
		flag.Usage()
		os.Exit(1)
	}
	if *month < 1 || *month > 12 {
		logger.Fatalf("invalid month %d", *month)
	}

	period := domain.RunContext{Year: *year, Month: *month}

	output := *outFile
	if output == "" {
		stem := strings.TrimSuffix(*primaryFile, filepath.Ext(*primaryFile))
		output = fmt.Sprintf("%s_%d年%d月_processed.xlsx", stem, period.Year, period.Month)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository and writer (the outermost layer)
	excelRepo := gateway.NewExcelSourceRepository()
	ledgerWriter := gateway.NewExcelLedgerWriter()

	// 2. Create the pipeline and inject the repository (the core logic layer)
	pipeline := usecase.NewReconciliationPipeline(excelRepo, logger)

	// --- Execute the Pipeline ---
	ctx := context.Background()
	result, err := pipeline.Run(ctx, period, usecase.SourcePaths{
		Primary: *primaryFile,
		Wage:    *wageFile,
		Volume:  *volumeFile,
		Expense: *expenseFile,
	})
	if err != nil {
		logger.Fatalf("Reconciliation failed: %v", err)
	}
	if len(result.Ledgers) == 0 {
		logger.Fatalf("Reconciliation produced no ledgers (%d diagnostics)", len(result.Diagnostics))
	}

	// --- Write the Output ---
	if err := ledgerWriter.WriteLedgers(ctx, period, result.Ledgers, output); err != nil {
		logger.Fatalf("Failed to write output workbook: %v", err)
	}

	logger.Infof("处理完成，结果已保存至: %s", output)
	if len(result.Diagnostics) > 0 {
		logger.Infof("%d diagnostics collected", len(result.Diagnostics))
	}
}
