package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
)

func strp(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixedValue(componentID, name string, ctype payroll.ComponentType, amount string) payroll.SalaryComponentValue {
	return payroll.SalaryComponentValue{
		ComponentID:   componentID,
		Amount:        dec(amount),
		ComponentName: strp(name),
		ComponentType: ctype,
	}
}

func percentValue(componentID, name string, ctype payroll.ComponentType, pct string) payroll.SalaryComponentValue {
	return payroll.SalaryComponentValue{
		ComponentID:       componentID,
		IsPercentage:      true,
		PercentageOfBasic: dec(pct),
		ComponentName:     strp(name),
		ComponentType:     ctype,
	}
}

func TestResolveComponentAmountFixed(t *testing.T) {
	v := fixedValue("c1", "Transport", payroll.ComponentEarning, "1500")
	got := ResolveComponentAmount(v, dec("30000"))
	assert.True(t, got.Equal(dec("1500")), "got %s", got)
}

func TestResolveComponentAmountPercentage(t *testing.T) {
	v := percentValue("c1", "HRA", payroll.ComponentEarning, "40")
	got := ResolveComponentAmount(v, dec("30000"))
	assert.True(t, got.Equal(dec("12000")), "got %s", got)
}

func TestResolveComponentAmountRoundsHalfEven(t *testing.T) {
	// 10001 * 0.125% = 12.50125 -> 12.50
	v := percentValue("c1", "Levy", payroll.ComponentDeduction, "0.125")
	got := ResolveComponentAmount(v, dec("10001"))
	assert.Equal(t, "12.50", got.StringFixed(2))

	// Half-even: 12.505 rounds to 12.50, 12.515 rounds to 12.52.
	assert.Equal(t, "12.50", dec("12.505").RoundBank(2).StringFixed(2))
	assert.Equal(t, "12.52", dec("12.515").RoundBank(2).StringFixed(2))
}

func TestResolveComponentAmountIdempotent(t *testing.T) {
	v := percentValue("c1", "HRA", payroll.ComponentEarning, "33.3333")
	basic := dec("25000")

	first := ResolveComponentAmount(v, basic)
	second := ResolveComponentAmount(v, basic)
	assert.True(t, first.Equal(second))
}

func TestBuildPayslipTotals(t *testing.T) {
	salary := payroll.EmployeeSalary{
		ID:          "sal-1",
		EmployeeID:  "emp-1",
		BasicSalary: dec("30000"),
		IsActive:    true,
	}
	values := []payroll.SalaryComponentValue{
		percentValue("c-hra", "HRA", payroll.ComponentEarning, "40"),
		fixedValue("c-transport", "Transport", payroll.ComponentEarning, "1600"),
		percentValue("c-pf", "PF", payroll.ComponentDeduction, "12"),
		fixedValue("c-tax", "Professional Tax", payroll.ComponentDeduction, "200"),
	}

	slip := BuildPayslip(salary, values)

	// earnings = 30000 + 12000 + 1600; deductions = 3600 + 200
	assert.Equal(t, "43600.00", slip.TotalEarnings.StringFixed(2))
	assert.Equal(t, "3800.00", slip.TotalDeductions.StringFixed(2))
	assert.Equal(t, "39800.00", slip.NetPay.StringFixed(2))
	require.Len(t, slip.Details, 4)
}

func TestBuildPayslipNetInvariant(t *testing.T) {
	salary := payroll.EmployeeSalary{
		EmployeeID:  "emp-1",
		BasicSalary: dec("27333.77"),
	}
	values := []payroll.SalaryComponentValue{
		percentValue("c1", "HRA", payroll.ComponentEarning, "37.5"),
		percentValue("c2", "PF", payroll.ComponentDeduction, "12.333"),
		fixedValue("c3", "Meal", payroll.ComponentEarning, "999.99"),
		fixedValue("c4", "Loan", payroll.ComponentDeduction, "1250.50"),
	}

	slip := BuildPayslip(salary, values)

	assert.True(t, slip.NetPay.Equal(slip.TotalEarnings.Sub(slip.TotalDeductions)))
	assert.True(t, slip.TotalEarnings.GreaterThanOrEqual(slip.BasicSalary))
}

func TestBuildPayslipBasicOnly(t *testing.T) {
	salary := payroll.EmployeeSalary{
		EmployeeID:  "emp-1",
		BasicSalary: dec("18000"),
	}

	slip := BuildPayslip(salary, nil)

	assert.Equal(t, "18000.00", slip.TotalEarnings.StringFixed(2))
	assert.True(t, slip.TotalDeductions.IsZero())
	assert.Equal(t, "18000.00", slip.NetPay.StringFixed(2))
	assert.Empty(t, slip.Details)
}
