package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"profit-ledger/internal/domain"
)

// Column aliases accepted for each logical field of a region's primary
// table. Lookup is by exact trimmed header match; earlier aliases win, so a
// pre-aggregated 合计 column takes precedence over the raw fee column.
var (
	dateAliases              = []string{"日期"}
	serviceFeeAliases        = []string{"合计", "服务费回款"}
	employerInsuranceAliases = []string{"雇主险(元)"}
)

// summaryRowMarkers flag source-side roll-up rows in the primary tables;
// they must be discarded to avoid double counting.
var summaryRowMarkers = []string{"合计", "本月累计"}

// RegionSources bundles one region's slice of every external table: its
// primary service-fee rows plus the per-date columns extracted from the
// secondary sources. A nil map means the region column is absent from that
// source; an invalid Amortization means the region has no daily constant.
type RegionSources struct {
	Primary      domain.Table
	Wage         map[time.Time]decimal.Decimal
	Volume       map[time.Time]decimal.Decimal
	Expense      map[time.Time]decimal.Decimal
	Amortization decimal.NullDecimal
}

// BuildRegionLedger reconciles one region's sources into a full-month
// ledger: rows joined on canonical date, derived columns computed, the date
// range completed to every calendar day of the month, and a totals row
// appended. Missing optional columns degrade to documented defaults with a
// diagnostic; the only error case is a primary table without a date column.
func BuildRegionLedger(region string, src RegionSources, period domain.RunContext) (*domain.RegionLedger, []string, error) {
	var diags []string

	dateIdx := findColumn(src.Primary, dateAliases)
	if dateIdx < 0 {
		return nil, diags, fmt.Errorf("region %s: primary table has no 日期 column", region)
	}
	feeIdx := findColumn(src.Primary, serviceFeeAliases)
	insIdx := findColumn(src.Primary, employerInsuranceAliases)

	if insIdx < 0 {
		diags = append(diags, fmt.Sprintf("警告: %s 无雇主险数据", region))
	}
	if src.Wage == nil {
		diags = append(diags, fmt.Sprintf("警告: %s 无工资数据", region))
	}
	if src.Volume == nil {
		diags = append(diags, fmt.Sprintf("警告: %s 无配送单量数据", region))
	}
	if !src.Amortization.Valid {
		diags = append(diags, fmt.Sprintf("警告: %s 无摊提费用数据", region))
	}
	if src.Expense == nil {
		diags = append(diags, fmt.Sprintf("警告: %s 无当日费用数据", region))
	}

	amortized := decimal.Zero
	if src.Amortization.Valid {
		amortized = src.Amortization.Decimal
	}

	var days []domain.DailyRecord
	for _, row := range src.Primary.Rows {
		rawDate := src.Primary.Cell(row, dateIdx)
		if isSummaryRow(rawDate) {
			continue
		}
		date, ok := domain.NormalizeDate(rawDate, period.Year)
		if !ok && strings.TrimSpace(rawDate) != "" {
			diags = append(diags, fmt.Sprintf("警告: %s 日期无法识别: %q", region, rawDate))
		}

		rec := domain.DailyRecord{Date: date}

		if feeIdx >= 0 {
			rawFee := src.Primary.Cell(row, feeIdx)
			fee, ok := parseAmount(rawFee)
			if !ok && strings.TrimSpace(rawFee) != "" {
				diags = append(diags, fmt.Sprintf("警告: %s 服务费回款无法解析: %q", region, rawFee))
			}
			rec.ServiceFeeReceived = fee
		}

		if insIdx >= 0 {
			ins, ok := parseAmount(src.Primary.Cell(row, insIdx))
			rec.SupplementalInsurance = domain.ComputeSupplementalInsurance(decimal.NullDecimal{Decimal: ins, Valid: ok})
		}

		if src.Wage != nil {
			if wage, ok := src.Wage[date]; ok {
				rec.AccruedWage = wage
			} else if !date.IsZero() {
				diags = append(diags, fmt.Sprintf("警告: %s %s 无工资数据", region, domain.FormatMonthDay(date)))
			}
		}

		if volume, ok := src.Volume[date]; ok {
			rec.DeliveryVolume = decimal.NullDecimal{Decimal: volume, Valid: true}
		}

		rec.Tax = domain.ComputeTax(valid(rec.ServiceFeeReceived), valid(rec.AccruedWage.Abs()))
		rec.AmortizedExpense = amortized

		if expense, ok := src.Expense[date]; ok {
			rec.DailyExpense = expense
		}

		rec.DailyProfit = dailyProfit(rec)
		rec.AvgRevenuePerOrder = averageRevenue(rec.ServiceFeeReceived, rec.DeliveryVolume)

		days = append(days, rec)
	}

	days = completeMonth(days)

	return &domain.RegionLedger{
		Region: region,
		Days:   days,
		Total:  totalsRow(days),
	}, diags, nil
}

// completeMonth reindexes the joined rows onto every calendar day of the
// month of the minimum normalized date, in ascending order. Days the sources
// never mentioned get a zero-valued record with a null volume; rows whose
// date never parsed (or fell outside that month) are dropped. When no date
// parsed at all the rows are returned untouched.
func completeMonth(days []domain.DailyRecord) []domain.DailyRecord {
	var min time.Time
	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		if min.IsZero() || d.Date.Before(min) {
			min = d.Date
		}
	}
	if min.IsZero() {
		return days
	}

	byDate := make(map[time.Time]domain.DailyRecord, len(days))
	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		if _, dup := byDate[d.Date]; !dup {
			byDate[d.Date] = d
		}
	}

	n := domain.DaysInMonth(min.Year(), min.Month())
	out := make([]domain.DailyRecord, 0, n)
	for day := 1; day <= n; day++ {
		date := time.Date(min.Year(), min.Month(), day, 0, 0, 0, 0, time.UTC)
		if rec, ok := byDate[date]; ok {
			out = append(out, rec)
			continue
		}
		out = append(out, domain.DailyRecord{
			Date:               date,
			AvgRevenuePerOrder: valid(decimal.Zero),
		})
	}
	return out
}

// totalsRow sums the monetary columns over the month. Null volumes are
// skipped, not counted as zero; the average and annotation columns stay
// blank.
func totalsRow(days []domain.DailyRecord) domain.DailyRecord {
	total := domain.DailyRecord{Label: domain.TotalLabel}
	volume := decimal.Zero
	for _, d := range days {
		total.ServiceFeeReceived = total.ServiceFeeReceived.Add(d.ServiceFeeReceived)
		total.SupplementalInsurance = total.SupplementalInsurance.Add(d.SupplementalInsurance)
		total.AccruedWage = total.AccruedWage.Add(d.AccruedWage)
		total.Tax = total.Tax.Add(d.Tax)
		total.AmortizedExpense = total.AmortizedExpense.Add(d.AmortizedExpense)
		total.DailyExpense = total.DailyExpense.Add(d.DailyExpense)
		total.DailyProfit = total.DailyProfit.Add(d.DailyProfit)
		if d.DeliveryVolume.Valid {
			volume = volume.Add(d.DeliveryVolume.Decimal)
		}
	}
	total.DeliveryVolume = valid(volume)
	return total
}

// dailyProfit sums the signed fields of one record. Delivery volume, a unit
// count, is summed into the currency total as well; the upstream books do
// the same and downstream consumers reconcile against them, so the behavior
// is preserved rather than corrected.
func dailyProfit(rec domain.DailyRecord) decimal.Decimal {
	p := rec.ServiceFeeReceived.
		Add(rec.SupplementalInsurance).
		Add(rec.AccruedWage).
		Add(rec.Tax).
		Add(rec.AmortizedExpense).
		Add(rec.DailyExpense)
	if rec.DeliveryVolume.Valid {
		p = p.Add(rec.DeliveryVolume.Decimal)
	}
	return p
}

func averageRevenue(fee decimal.Decimal, volume decimal.NullDecimal) decimal.NullDecimal {
	if !volume.Valid || volume.Decimal.IsZero() {
		return valid(decimal.Zero)
	}
	return valid(fee.Div(volume.Decimal))
}

func findColumn(t domain.Table, aliases []string) int {
	for _, alias := range aliases {
		if idx := t.ColumnIndex(alias); idx >= 0 {
			return idx
		}
	}
	return -1
}

func isSummaryRow(rawDate string) bool {
	for _, marker := range summaryRowMarkers {
		if strings.Contains(rawDate, marker) {
			return true
		}
	}
	return false
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
