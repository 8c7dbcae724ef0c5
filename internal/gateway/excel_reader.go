package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"profit-ledger/internal/domain"
)

// Named sheets the secondary workbooks must carry. Their header sits on the
// second row; the first row is a decorative banner.
const (
	volumeSheetName       = "配送单量"
	amortizationSheetName = "摊提费用明细"
	expenseSheetName      = "当日费用支出"
)

const dateColumnName = "日期"

// ExcelSourceRepository implements the SourceRepository interface on top of
// xlsx workbooks.
type ExcelSourceRepository struct{}

// NewExcelSourceRepository creates a new repository instance.
func NewExcelSourceRepository() *ExcelSourceRepository {
	return &ExcelSourceRepository{}
}

// GetRegionTables reads every sheet of the primary workbook as one region
// table, in workbook sheet order.
func (r *ExcelSourceRepository) GetRegionTables(ctx context.Context, path string) ([]domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open primary workbook %s: %w", path, err)
	}
	defer f.Close()

	var tables []domain.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("error reading sheet %s from %s: %w", sheet, path, err)
		}
		tables = append(tables, tableFromRows(sheet, rows, 0))
	}
	return tables, nil
}

// GetWageTable reads the first sheet of the wage workbook and negates every
// numeric cell outside the date column: the books record accrued wages as
// positive amounts, the ledger carries them as outflows.
func (r *ExcelSourceRepository) GetWageTable(ctx context.Context, path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open wage workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("wage workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("error reading sheet %s from %s: %w", sheets[0], path, err)
	}

	table := tableFromRows(sheets[0], rows, 0)
	negateAmountCells(&table)
	return table, nil
}

// GetVolumeTable reads the 配送单量 sheet of the volume workbook.
func (r *ExcelSourceRepository) GetVolumeTable(ctx context.Context, path string) (domain.Table, error) {
	return readNamedSheet(path, volumeSheetName, 1)
}

// GetAmortizationTable reads the 摊提费用明细 sheet of the expense workbook.
func (r *ExcelSourceRepository) GetAmortizationTable(ctx context.Context, path string) (domain.Table, error) {
	return readNamedSheet(path, amortizationSheetName, 1)
}

// GetExpenseTable reads the 当日费用支出 sheet of the expense workbook.
func (r *ExcelSourceRepository) GetExpenseTable(ctx context.Context, path string) (domain.Table, error) {
	return readNamedSheet(path, expenseSheetName, 1)
}

func readNamedSheet(path, sheet string, headerOffset int) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return domain.Table{}, fmt.Errorf("workbook %s has no %q sheet", path, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("error reading sheet %s from %s: %w", sheet, path, err)
	}
	return tableFromRows(sheet, rows, headerOffset), nil
}

func hasSheet(f *excelize.File, name string) bool {
	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// tableFromRows shapes raw sheet rows into a Table, skipping headerOffset
// banner rows. A sheet shorter than the offset yields an empty table.
func tableFromRows(name string, rows [][]string, headerOffset int) domain.Table {
	if len(rows) <= headerOffset {
		return domain.Table{Name: name}
	}
	return domain.Table{
		Name:   name,
		Header: rows[headerOffset],
		Rows:   rows[headerOffset+1:],
	}
}

func negateAmountCells(t *domain.Table) {
	dateIdx := t.ColumnIndex(dateColumnName)
	for _, row := range t.Rows {
		for j := range row {
			if j == dateIdx {
				continue
			}
			d, err := decimal.NewFromString(strings.TrimSpace(row[j]))
			if err != nil {
				continue
			}
			row[j] = d.Neg().String()
		}
	}
}
