package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
)

var hundred = decimal.NewFromInt(100)

// ResolveComponentAmount turns a component binding into money: percentage
// components resolve against basic, fixed components pass through. All
// amounts round half-even to two decimal places.
func ResolveComponentAmount(value payroll.SalaryComponentValue, basic decimal.Decimal) decimal.Decimal {
	if value.IsPercentage {
		return basic.Mul(value.PercentageOfBasic).Div(hundred).RoundBank(2)
	}
	return value.Amount.RoundBank(2)
}

// BuildPayslip settles one salary profile into a payslip. Total earnings
// are basic plus every resolved earning; net pay is earnings minus
// deductions. One detail row per component value.
func BuildPayslip(salary payroll.EmployeeSalary, values []payroll.SalaryComponentValue) payroll.Payslip {
	basic := salary.BasicSalary.RoundBank(2)

	slip := payroll.Payslip{
		EmployeeID:      salary.EmployeeID,
		BasicSalary:     basic,
		TotalEarnings:   basic,
		TotalDeductions: decimal.Zero,
		Details:         make([]payroll.PayslipDetail, 0, len(values)),
	}

	for _, v := range values {
		amount := ResolveComponentAmount(v, basic)

		detail := payroll.PayslipDetail{
			ComponentID: v.ComponentID,
			Type:        v.ComponentType,
			Amount:      amount,
		}
		if v.ComponentName != nil {
			detail.ComponentName = *v.ComponentName
		}
		slip.Details = append(slip.Details, detail)

		switch v.ComponentType {
		case payroll.ComponentEarning:
			slip.TotalEarnings = slip.TotalEarnings.Add(amount)
		case payroll.ComponentDeduction:
			slip.TotalDeductions = slip.TotalDeductions.Add(amount)
		}
	}

	slip.NetPay = slip.TotalEarnings.Sub(slip.TotalDeductions)

	return slip
}
