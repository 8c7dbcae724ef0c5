package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TotalLabel marks the terminal roll-up row of a ledger, and is also the
// text the upstream books use for their own summary rows.
const TotalLabel = "合计"

// DailyRecord is one reconciled row for one region: either a calendar day of
// the target month, or the totals row (Label set, Date zero). All monetary
// fields are signed; outflows are negative.
type DailyRecord struct {
	Date  time.Time
	Label string

	ServiceFeeReceived    decimal.Decimal
	SupplementalInsurance decimal.Decimal
	AccruedWage           decimal.Decimal
	DeliveryVolume        decimal.NullDecimal
	Tax                   decimal.Decimal
	AmortizedExpense      decimal.Decimal
	DailyExpense          decimal.Decimal
	DailyProfit           decimal.Decimal

	// AvgRevenuePerOrder sits in the trailing annotation block of the output
	// row (单均回款); it is computed per day and left blank on the totals row.
	AvgRevenuePerOrder decimal.NullDecimal

	// Free-text annotation columns (备注 / 当日代补), blank on generation and
	// preserved for manual downstream edits.
	Remark         string
	SameDayAdvance string
}

// RegionLedger is the reconciled month for one region: calendar days in
// ascending order followed by exactly one totals row.
type RegionLedger struct {
	Region string
	Days   []DailyRecord
	Total  DailyRecord
}

// AmortizationTable maps a trimmed region name to its fixed daily amortized
// expense, sign-flipped on ingestion to represent an outflow.
type AmortizationTable map[string]decimal.Decimal

// Table is one sheet of a workbook as read by a gateway: a header row and
// string-valued data rows. Header offsets are already applied by the reader.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the index of the first header cell whose trimmed text
// equals name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Cell returns the idx-th cell of row, tolerating the ragged rows short
// workbook reads produce.
func (t Table) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// RunContext identifies one reporting period. It is passed explicitly to
// every component; nothing keeps state across regions.
type RunContext struct {
	Year  int
	Month int
}

// RunResult is the output of one pipeline invocation: the ledgers in primary
// workbook sheet order plus the accumulated diagnostics.
type RunResult struct {
	Ledgers     []*RegionLedger
	Diagnostics []string
}
