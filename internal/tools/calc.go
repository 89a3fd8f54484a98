// Package tools implements the financial planning calculators embedded in
// rendered pages: SIP future value, loan EMI, and retirement corpus.
package tools

import "math"

// Defaults are the pre-filled inputs shown before the visitor types
// anything.
const (
	DefaultSIPInvestment  = 5000
	DefaultSIPRate        = 12
	DefaultSIPYears       = 10
	DefaultLoanAmount     = 1000000
	DefaultLoanRate       = 9
	DefaultLoanTenure     = 5
	DefaultCurrentAge     = 30
	DefaultRetireAge      = 60
	DefaultMonthlyExpense = 30000
)

// inflationRate is the assumed yearly expense growth used by the
// retirement projection.
const inflationRate = 0.06

// SIPFutureValue projects a monthly investment compounded at an annual
// rate over the given number of years, with each installment invested at
// the start of its month.
func SIPFutureValue(monthlyInvestment, annualRatePct float64, years int) float64 {
	monthlyRate := annualRatePct / 12 / 100
	months := float64(years * 12)
	if monthlyRate == 0 {
		return monthlyInvestment * months
	}
	return monthlyInvestment * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate * (1 + monthlyRate)
}

// SIPGain is the projected value minus the total amount invested.
func SIPGain(monthlyInvestment, annualRatePct float64, years int) float64 {
	return SIPFutureValue(monthlyInvestment, annualRatePct, years) - monthlyInvestment*float64(years*12)
}

// EMI computes the fixed monthly installment for a loan at an annual rate
// over a tenure in years.
func EMI(principal, annualRatePct float64, tenureYears int) float64 {
	monthlyRate := annualRatePct / 12 / 100
	months := float64(tenureYears * 12)
	if monthlyRate == 0 {
		return principal / months
	}
	factor := math.Pow(1+monthlyRate, months)
	return principal * monthlyRate * factor / (factor - 1)
}

// TotalInterest is the amount paid over the loan beyond the principal.
func TotalInterest(principal, annualRatePct float64, tenureYears int) float64 {
	return EMI(principal, annualRatePct, tenureYears)*float64(tenureYears*12) - principal
}

// RetirementProjection holds the output of the retirement planner.
type RetirementProjection struct {
	// Corpus is the target amount at retirement, sized to fund twenty
	// years of inflation-adjusted expenses.
	Corpus float64
	// MonthlyExpense is today's monthly expense grown to the retirement
	// year.
	MonthlyExpense float64
}

// RetirementPlan inflates today's monthly expense to the retirement age
// and sizes a corpus covering twenty years of it.
func RetirementPlan(currentAge, retireAge int, monthlyExpense float64) RetirementProjection {
	years := retireAge - currentAge
	fvExpense := monthlyExpense * math.Pow(1+inflationRate, float64(years))
	return RetirementProjection{
		Corpus:         fvExpense * 12 * 20,
		MonthlyExpense: fvExpense,
	}
}
