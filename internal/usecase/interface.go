package usecase

import (
	"context"

	"profit-ledger/internal/domain"
)

// SourceRepository defines the interface for loading the tabular sources of
// one run. The usecase layer depends on this interface, not on a concrete
// workbook format. Wage values are pre-negated by the implementation before
// they reach the core.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go SourceRepository,LedgerWriter
type SourceRepository interface {
	// GetRegionTables returns one table per region sheet of the primary
	// workbook, in sheet order.
	GetRegionTables(ctx context.Context, path string) ([]domain.Table, error)
	// GetWageTable returns the accrued-wage table (columns = region names),
	// with every wage cell negated.
	GetWageTable(ctx context.Context, path string) (domain.Table, error)
	// GetVolumeTable returns the 配送单量 delivery-volume table.
	GetVolumeTable(ctx context.Context, path string) (domain.Table, error)
	// GetAmortizationTable returns the 摊提费用明细 amortization table.
	GetAmortizationTable(ctx context.Context, path string) (domain.Table, error)
	// GetExpenseTable returns the 当日费用支出 daily-expense table.
	GetExpenseTable(ctx context.Context, path string) (domain.Table, error)
}

// LedgerWriter renders the finished ledgers, one sheet per region.
type LedgerWriter interface {
	WriteLedgers(ctx context.Context, period domain.RunContext, ledgers []*domain.RegionLedger, path string) error
}
