package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"profit-ledger/internal/domain"
)

// ledgerColumns is the fixed output schema, one sheet column per entry.
var ledgerColumns = []string{
	"日期", "服务费回款", "单量", "税金", "计提工资", "摊提费用",
	"补充险", "本日费用", "当日利润", "备注", "当日代补", "单均回款",
}

// ExcelLedgerWriter implements the LedgerWriter interface: one styled sheet
// per region, titled <region><year>年<month>月利润明细.
type ExcelLedgerWriter struct{}

// NewExcelLedgerWriter creates a new writer instance.
func NewExcelLedgerWriter() *ExcelLedgerWriter {
	return &ExcelLedgerWriter{}
}

// WriteLedgers renders the ledgers into one workbook at path.
func (w *ExcelLedgerWriter) WriteLedgers(ctx context.Context, period domain.RunContext, ledgers []*domain.RegionLedger, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newLedgerStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	for i, ledger := range ledgers {
		sheet := ledger.Region
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet for %s: %w", ledger.Region, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet for %s: %w", ledger.Region, err)
		}
		if err := w.writeLedger(f, sheet, period, ledger, styles); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func (w *ExcelLedgerWriter) writeLedger(f *excelize.File, sheet string, period domain.RunContext, ledger *domain.RegionLedger, styles ledgerStyles) error {
	lastCol, _ := excelize.ColumnNumberToName(len(ledgerColumns))

	title := fmt.Sprintf("%s%d年%d月利润明细", ledger.Region, period.Year, period.Month)
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}

	for col, name := range ledgerColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	rowNo := 3
	for _, rec := range ledger.Days {
		if err := writeRecord(f, sheet, rowNo, rec); err != nil {
			return err
		}
		rowNo++
	}
	if err := writeRecord(f, sheet, rowNo, ledger.Total); err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A2", lastCol+"2", styles.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", fmt.Sprintf("%s%d", lastCol, rowNo), styles.body); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 12)
}

func writeRecord(f *excelize.File, sheet string, rowNo int, rec domain.DailyRecord) error {
	dateText := rec.Label
	if dateText == "" {
		dateText = domain.FormatMonthDay(rec.Date)
	}

	cells := []interface{}{
		dateText,
		rec.ServiceFeeReceived.InexactFloat64(),
		nullableFloat(rec.DeliveryVolume),
		rec.Tax.InexactFloat64(),
		rec.AccruedWage.InexactFloat64(),
		rec.AmortizedExpense.InexactFloat64(),
		rec.SupplementalInsurance.InexactFloat64(),
		rec.DailyExpense.InexactFloat64(),
		rec.DailyProfit.InexactFloat64(),
		rec.Remark,
		rec.SameDayAdvance,
		nullableFloat(rec.AvgRevenuePerOrder),
	}
	for col, value := range cells {
		if value == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, rowNo)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// nullableFloat keeps null decimals as truly empty cells.
func nullableFloat(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}

type ledgerStyles struct {
	title  int
	header int
	body   int
}

func newLedgerStyles(f *excelize.File) (ledgerStyles, error) {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	thinBorder := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "微软雅黑", Size: 14, Bold: true},
		Alignment: center,
	})
	if err != nil {
		return ledgerStyles{}, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "微软雅黑", Size: 10, Bold: true},
		Alignment: center,
		Border:    thinBorder,
	})
	if err != nil {
		return ledgerStyles{}, err
	}
	body, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "微软雅黑", Size: 10},
		Alignment: center,
		Border:    thinBorder,
	})
	if err != nil {
		return ledgerStyles{}, err
	}
	return ledgerStyles{title: title, header: header, body: body}, nil
}
