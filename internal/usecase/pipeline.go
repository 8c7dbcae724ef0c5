package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"profit-ledger/internal/domain"
)

// dailyAmortizationLabel is the first-column label of the amortization row
// holding each region's fixed daily amortized expense.
const dailyAmortizationLabel = "日均摊销金额"

var (
	// ErrNoRegions is returned when the primary source holds no region tables.
	ErrNoRegions = errors.New("no region tables found in the primary source")
	// ErrNoAmortizationRow is returned when the amortization table has no
	// 日均摊销金额 row. There is no reasonable per-region default, so the whole
	// run aborts.
	ErrNoAmortizationRow = errors.New("amortization table has no 日均摊销金额 row")
)

// SourcePaths names the four workbooks feeding one run. The amortization and
// daily-expense tables are two sheets of the same expense workbook.
type SourcePaths struct {
	Primary string
	Wage    string
	Volume  string
	Expense string
}

// ReconciliationPipeline orchestrates the per-region ledger build across all
// regions discovered in the primary source.
type ReconciliationPipeline struct {
	repo   SourceRepository
	logger *logrus.Logger
}

// NewReconciliationPipeline creates a new instance of the pipeline.
func NewReconciliationPipeline(repo SourceRepository, logger *logrus.Logger) *ReconciliationPipeline {
	return &ReconciliationPipeline{repo: repo, logger: logger}
}

// Run reconciles one reporting period end to end: it discovers the region
// set from the primary source, builds the amortization table once, invokes
// the ledger builder per region, and collects the ledgers plus diagnostics.
// A region that fails to build is logged and skipped; only structural
// absence of a required table or row aborts the run.
func (p *ReconciliationPipeline) Run(ctx context.Context, period domain.RunContext, paths SourcePaths) (*domain.RunResult, error) {
	regionTables, err := p.repo.GetRegionTables(ctx, paths.Primary)
	if err != nil {
		return nil, fmt.Errorf("could not read primary source: %w", err)
	}
	if len(regionTables) == 0 {
		return nil, ErrNoRegions
	}

	wageTable, err := p.repo.GetWageTable(ctx, paths.Wage)
	if err != nil {
		return nil, fmt.Errorf("could not read wage source: %w", err)
	}
	volumeTable, err := p.repo.GetVolumeTable(ctx, paths.Volume)
	if err != nil {
		return nil, fmt.Errorf("could not read volume source: %w", err)
	}
	amortTable, err := p.repo.GetAmortizationTable(ctx, paths.Expense)
	if err != nil {
		return nil, fmt.Errorf("could not read amortization source: %w", err)
	}
	expenseTable, err := p.repo.GetExpenseTable(ctx, paths.Expense)
	if err != nil {
		return nil, fmt.Errorf("could not read expense source: %w", err)
	}

	amortization, err := buildAmortizationTable(amortTable)
	if err != nil {
		return nil, err
	}

	result := &domain.RunResult{}
	for _, table := range regionTables {
		region := table.Name
		p.logger.WithField("region", region).Info("处理地区数据")

		src := RegionSources{
			Primary: table,
			Wage:    columnByDate(wageTable, region, period.Year),
			Volume:  columnByDate(volumeTable, region, period.Year),
			Expense: columnByDate(expenseTable, region, period.Year),
		}
		if v, ok := amortization[strings.TrimSpace(region)]; ok {
			src.Amortization = valid(v)
		}

		ledger, diags, err := BuildRegionLedger(region, src, period)
		result.Diagnostics = append(result.Diagnostics, diags...)
		for _, d := range diags {
			p.logger.Warn(d)
		}
		if err != nil {
			msg := fmt.Sprintf("跳过 %s - %v", region, err)
			result.Diagnostics = append(result.Diagnostics, msg)
			p.logger.Warn(msg)
			continue
		}
		result.Ledgers = append(result.Ledgers, ledger)
	}
	return result, nil
}

// buildAmortizationTable extracts the per-region daily amortized expense from
// the row labeled 日均摊销金额, sign-flipping each value to an outflow.
func buildAmortizationTable(t domain.Table) (domain.AmortizationTable, error) {
	for _, row := range t.Rows {
		if len(row) == 0 || !strings.Contains(row[0], dailyAmortizationLabel) {
			continue
		}
		out := domain.AmortizationTable{}
		for i := 1; i < len(t.Header); i++ {
			region := strings.TrimSpace(t.Header[i])
			if region == "" {
				continue
			}
			if v, ok := parseAmount(t.Cell(row, i)); ok {
				out[region] = v.Neg()
			}
		}
		return out, nil
	}
	return nil, ErrNoAmortizationRow
}

// columnByDate extracts one region's column keyed by canonical date. It
// returns nil when the table lacks the region column or a date column; cells
// that fail to parse are simply absent from the map, which the builder
// resolves to that field's default.
func columnByDate(t domain.Table, region string, year int) map[time.Time]decimal.Decimal {
	colIdx := t.ColumnIndex(strings.TrimSpace(region))
	dateIdx := findColumn(t, dateAliases)
	if colIdx < 0 || dateIdx < 0 {
		return nil
	}
	out := make(map[time.Time]decimal.Decimal)
	for _, row := range t.Rows {
		date, ok := domain.NormalizeDate(t.Cell(row, dateIdx), year)
		if !ok {
			continue
		}
		v, ok := parseAmount(t.Cell(row, colIdx))
		if !ok {
			continue
		}
		out[date] = v
	}
	return out
}
