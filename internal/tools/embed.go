package tools

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Embedder renders the calculator widgets dropped into pages. The widget
// shows the projection for the default inputs; the inputs themselves are
// live form fields on the page.
type Embedder struct {
	tmpl    *template.Template
	printer *message.Printer
}

const calculatorTemplate = `
{{- if .SIP}}
<div class="calculator calculator-sip" data-calculator="sip">
  <h3>SIP Calculator</h3>
  <form class="calculator-inputs">
    <label>Monthly Investment (₹)<input type="number" name="investment" value="{{.SIP.Investment}}"></label>
    <label>Expected Return (% p.a.)<input type="number" name="rate" value="{{.SIP.Rate}}"></label>
    <label>Duration (years)<input type="number" name="years" value="{{.SIP.Years}}"></label>
  </form>
  <div class="calculator-result">
    <p class="label">Future Value</p>
    <p class="value">₹ {{.SIP.FutureValue}}</p>
    <p class="gain">Gain: ₹ {{.SIP.Gain}}</p>
  </div>
</div>
{{- end}}
{{- if .EMI}}
<div class="calculator calculator-emi" data-calculator="emi">
  <h3>EMI Calculator</h3>
  <form class="calculator-inputs">
    <label>Loan Amount (₹)<input type="number" name="amount" value="{{.EMI.Amount}}"></label>
    <label>Interest Rate (% p.a.)<input type="number" name="rate" value="{{.EMI.Rate}}"></label>
    <label>Tenure (years)<input type="number" name="tenure" value="{{.EMI.Tenure}}"></label>
  </form>
  <div class="calculator-result">
    <p class="label">Monthly EMI</p>
    <p class="value">₹ {{.EMI.Monthly}}</p>
    <p class="gain">Total Interest: ₹ {{.EMI.TotalInterest}}</p>
  </div>
</div>
{{- end}}
{{- if .Retirement}}
<div class="calculator calculator-retirement" data-calculator="retirement">
  <h3>Retirement Planner</h3>
  <form class="calculator-inputs">
    <label>Current Age<input type="number" name="currentAge" value="{{.Retirement.CurrentAge}}"></label>
    <label>Retirement Age<input type="number" name="retireAge" value="{{.Retirement.RetireAge}}"></label>
    <label>Monthly Expense (₹)<input type="number" name="monthlyExpense" value="{{.Retirement.MonthlyExpense}}"></label>
  </form>
  <div class="calculator-result">
    <p class="label">Required Corpus</p>
    <p class="value">₹ {{.Retirement.CorpusCr}} Cr</p>
    <p class="gain">Est. expense at retirement: ₹ {{.Retirement.ExpenseAtRetirement}}</p>
  </div>
</div>
{{- end}}`

func NewEmbedder() *Embedder {
	return &Embedder{
		tmpl:    template.Must(template.New("calculators").Parse(calculatorTemplate)),
		printer: message.NewPrinter(language.English),
	}
}

type sipView struct {
	Investment  int
	Rate        int
	Years       int
	FutureValue string
	Gain        string
}

type emiView struct {
	Amount        int
	Rate          int
	Tenure        int
	Monthly       string
	TotalInterest string
}

type retirementView struct {
	CurrentAge          int
	RetireAge           int
	MonthlyExpense      int
	CorpusCr            string
	ExpenseAtRetirement string
}

type calculatorView struct {
	SIP        *sipView
	EMI        *emiView
	Retirement *retirementView
}

// Render produces the widget block for a calculator type: "sip", "emi",
// "retirement", or "all" for every widget. Unknown types render nothing.
func (e *Embedder) Render(calculatorType string) (template.HTML, error) {
	var view calculatorView

	want := func(name string) bool {
		return calculatorType == "all" || calculatorType == name
	}
	if want("sip") {
		view.SIP = &sipView{
			Investment:  DefaultSIPInvestment,
			Rate:        DefaultSIPRate,
			Years:       DefaultSIPYears,
			FutureValue: e.rupees(SIPFutureValue(DefaultSIPInvestment, DefaultSIPRate, DefaultSIPYears)),
			Gain:        e.rupees(SIPGain(DefaultSIPInvestment, DefaultSIPRate, DefaultSIPYears)),
		}
	}
	if want("emi") {
		view.EMI = &emiView{
			Amount:        DefaultLoanAmount,
			Rate:          DefaultLoanRate,
			Tenure:        DefaultLoanTenure,
			Monthly:       e.rupees(EMI(DefaultLoanAmount, DefaultLoanRate, DefaultLoanTenure)),
			TotalInterest: e.rupees(TotalInterest(DefaultLoanAmount, DefaultLoanRate, DefaultLoanTenure)),
		}
	}
	if want("retirement") {
		plan := RetirementPlan(DefaultCurrentAge, DefaultRetireAge, DefaultMonthlyExpense)
		view.Retirement = &retirementView{
			CurrentAge:          DefaultCurrentAge,
			RetireAge:           DefaultRetireAge,
			MonthlyExpense:      DefaultMonthlyExpense,
			CorpusCr:            fmt.Sprintf("%.2f", plan.Corpus/10000000),
			ExpenseAtRetirement: e.rupees(plan.MonthlyExpense),
		}
	}

	var buf strings.Builder
	if err := e.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering calculators: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// rupees rounds and formats with thousands separators.
func (e *Embedder) rupees(v float64) string {
	return e.printer.Sprintf("%d", int64(math.Round(v)))
}
