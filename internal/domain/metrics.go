package domain

import "github.com/shopspring/decimal"

// Fixed factors of the business formulas. The tax formula backs out the VAT
// base from the collected service fee net of the wage cost (grossed up by the
// levy factor), applies the 6% rate and the 67.25% surcharge share, then adds
// the wage levy itself.
var (
	wageGrossUpFactor = decimal.NewFromFloat(1.0442)
	vatDivisor        = decimal.NewFromFloat(1.06)
	vatRate           = decimal.NewFromFloat(0.06)
	surchargeShare    = decimal.NewFromFloat(0.6725)
	wageLevyRate      = decimal.NewFromFloat(0.0442)

	insuranceDivisor = decimal.NewFromFloat(2.9)
	insuranceFactor  = decimal.NewFromFloat(1.1)
)

// ComputeTax derives the tax withholding from the collected service fee and
// the wage magnitude (the absolute value of the signed accrued wage). The
// result is negated to represent an outflow. A null input is a recoverable
// condition and yields zero; the function never fails.
func ComputeTax(serviceFee, wageMagnitude decimal.NullDecimal) decimal.Decimal {
	if !serviceFee.Valid || !wageMagnitude.Valid {
		return decimal.Zero
	}
	fee := serviceFee.Decimal
	wage := wageMagnitude.Decimal
	part1 := fee.Sub(wage.Mul(wageGrossUpFactor)).Div(vatDivisor).Mul(vatRate).Mul(surchargeShare)
	part2 := wage.Mul(wageLevyRate)
	return part1.Add(part2).Round(2).Neg()
}

// ComputeSupplementalInsurance derives the supplemental-insurance amount from
// the employer-insurance premium, negated to represent an outflow. A null
// input yields zero; the function never fails.
func ComputeSupplementalInsurance(employerInsurance decimal.NullDecimal) decimal.Decimal {
	if !employerInsurance.Valid {
		return decimal.Zero
	}
	return employerInsurance.Decimal.Div(insuranceDivisor).Mul(insuranceFactor).Round(2).Neg()
}
