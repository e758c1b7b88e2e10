package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary is the financial overview of a user for one month.
type Summary struct {
	Month             types.Month     `json:"month"`
	Income            decimal.Decimal `json:"income"` // The current monthly salary
	HasIncome         bool            `json:"hasIncome"`
	ExpensesTotal     decimal.Decimal `json:"expensesTotal"`
	InstallmentsTotal decimal.Decimal `json:"installmentsTotal"` // Installments due in the month
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	Available         decimal.Decimal `json:"available"` // Income minus total spent, zero without income
	PercentSpent      decimal.Decimal `json:"percentSpent"`
}

// MonthlySummary calculates the summary of the user for the month.
func MonthlySummary(userID uuid.UUID, month types.Month) (Summary, error) {
	s := Summary{Month: month}

	income, err := CurrentIncome(userID)
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Summary{}, err
	}

	if err == nil {
		s.Income = income.MonthlySalary
		s.HasIncome = true
	}

	var expenses []Expense
	if err := DB.Scopes(OwnedBy(userID)).Find(&expenses).Error; err != nil {
		return Summary{}, err
	}

	for _, e := range expenses {
		s.ExpensesTotal = s.ExpensesTotal.Add(e.Amount)
	}

	var installments []Installment
	if err := DB.Scopes(OwnedBy(userID)).Where("due_month = ?", month).Find(&installments).Error; err != nil {
		return Summary{}, err
	}

	for _, i := range installments {
		s.InstallmentsTotal = s.InstallmentsTotal.Add(i.Amount)
	}

	s.TotalSpent = s.ExpensesTotal.Add(s.InstallmentsTotal)

	if s.HasIncome {
		s.Available = s.Income.Sub(s.TotalSpent)
		s.PercentSpent = s.TotalSpent.Div(s.Income).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return s, nil
}
