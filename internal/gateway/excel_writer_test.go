package gateway

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"profit-ledger/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLedger(region string) *domain.RegionLedger {
	first := domain.DailyRecord{
		Date:                  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ServiceFeeReceived:    dec("1000"),
		SupplementalInsurance: dec("-37.93"),
		AccruedWage:           dec("-200"),
		DeliveryVolume:        decimal.NullDecimal{Decimal: dec("50"), Valid: true},
		Tax:                   dec("-38.96"),
		AmortizedExpense:      dec("-30"),
		DailyProfit:           dec("743.11"),
		AvgRevenuePerOrder:    decimal.NullDecimal{Decimal: dec("20"), Valid: true},
	}
	gap := domain.DailyRecord{
		Date:               time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		AvgRevenuePerOrder: decimal.NullDecimal{Decimal: decimal.Zero, Valid: true},
	}
	total := domain.DailyRecord{
		Label:                 domain.TotalLabel,
		ServiceFeeReceived:    dec("1000"),
		DeliveryVolume:        decimal.NullDecimal{Decimal: dec("50"), Valid: true},
		Tax:                   dec("-38.96"),
		AccruedWage:           dec("-200"),
		AmortizedExpense:      dec("-30"),
		SupplementalInsurance: dec("-37.93"),
		DailyProfit:           dec("743.11"),
	}
	return &domain.RegionLedger{
		Region: region,
		Days:   []domain.DailyRecord{first, gap},
		Total:  total,
	}
}

func TestExcelLedgerWriter_WriteLedgers(t *testing.T) {
	period := domain.RunContext{Year: 2025, Month: 3}
	ledgers := []*domain.RegionLedger{testLedger("高碑店"), testLedger("雄县")}
	path := filepath.Join(t.TempDir(), "out.xlsx")

	writer := NewExcelLedgerWriter()
	err := writer.WriteLedgers(context.Background(), period, ledgers, path)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"高碑店", "雄县"}, f.GetSheetList())

	title, err := f.GetCellValue("高碑店", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "高碑店2025年3月利润明细", title)

	header, err := f.GetCellValue("高碑店", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "日期", header)
	lastHeader, err := f.GetCellValue("高碑店", "L2")
	assert.NoError(t, err)
	assert.Equal(t, "单均回款", lastHeader)

	date, err := f.GetCellValue("高碑店", "A3")
	assert.NoError(t, err)
	assert.Equal(t, "3月1日", date)
	fee, err := f.GetCellValue("高碑店", "B3")
	assert.NoError(t, err)
	assert.Equal(t, "1000", fee)
	profit, err := f.GetCellValue("高碑店", "I3")
	assert.NoError(t, err)
	assert.Equal(t, "743.11", profit)

	// The gap day keeps a truly empty volume cell.
	volume, err := f.GetCellValue("高碑店", "C4")
	assert.NoError(t, err)
	assert.Equal(t, "", volume)

	// Totals row: 合计 label, average left blank.
	label, err := f.GetCellValue("高碑店", "A5")
	assert.NoError(t, err)
	assert.Equal(t, domain.TotalLabel, label)
	avg, err := f.GetCellValue("高碑店", "L5")
	assert.NoError(t, err)
	assert.Equal(t, "", avg)
}
