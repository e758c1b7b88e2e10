package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/types"
	"github.com/poupix/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSuggestionRule(t *testing.T, headers map[string]string, rule v1.SuggestionRuleEditable, expectedStatus ...int) v1.SuggestionRuleResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/suggestion-rules", []v1.SuggestionRuleEditable{rule}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var created v1.SuggestionRuleCreateResponse
	test.DecodeResponse(t, &r, &created)
	require.Len(t, created.Data, 1)
	return created.Data[0]
}

func createTestIncome(t *testing.T, headers map[string]string, income v1.IncomeEditable, expectedStatus ...int) v1.IncomeResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", []v1.IncomeEditable{income}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var created v1.IncomeCreateResponse
	test.DecodeResponse(t, &r, &created)
	require.Len(t, created.Data, 1)
	return created.Data[0]
}

func createTestDebt(t *testing.T, headers map[string]string, debt v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	if debt.Name == "" {
		debt.Name = "Laptop"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", []v1.DebtEditable{debt}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var created v1.DebtCreateResponse
	test.DecodeResponse(t, &r, &created)
	require.Len(t, created.Data, 1)
	return created.Data[0]
}

func getTestInstallments(t *testing.T, headers map[string]string, url string) []v1.Installment {
	r := test.Request(t, http.MethodGet, url, "", headers)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var installments v1.InstallmentListResponse
	test.DecodeResponse(t, &r, &installments)
	return installments.Data
}

func (suite *TestSuiteStandard) TestSuggestionRulesMatchExpenses() {
	headers := createTestUser(suite.T())

	createTestSuggestionRule(suite.T(), headers, v1.SuggestionRuleEditable{Priority: 2, Match: "*ifood*", Kind: models.SuggestionDelivery, Percent: decimal.NewFromInt(30)})
	createTestSuggestionRule(suite.T(), headers, v1.SuggestionRuleEditable{Priority: 1, Match: "*FOOD*", Percent: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/suggestion-rules", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rules v1.SuggestionRuleListResponse
	test.DecodeResponse(suite.T(), &r, &rules)
	suite.Require().Len(rules.Data, 2)
	suite.Assert().Equal(uint(1), rules.Data[0].Priority)
	suite.Assert().Equal(models.SuggestionOther, rules.Data[0].Kind)

	// The rule with the lowest priority value wins
	expense := createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "iFood order", Amount: decimal.NewFromInt(99)})
	suite.Require().NotNil(expense.Suggestion)
	suite.Assert().Equal(models.SuggestionOther, expense.Suggestion.Kind)
	suite.Assert().True(expense.Suggestion.SuggestedAmount.Equal(decimal.RequireFromString("9.9")), "Suggested amount is %s", expense.Suggestion.SuggestedAmount)
	suite.Assert().Equal("You could save 9.90 on iFood order", expense.Suggestion.Message)
	suite.Assert().Equal(expense.Data.ID, *expense.Suggestion.ExpenseID)

	expense = createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Rent", Amount: decimal.NewFromInt(1200)})
	suite.Assert().Nil(expense.Suggestion)

	r = test.Request(suite.T(), http.MethodPatch, rules.Data[0].Links.Self, map[string]any{"priority": 5}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	expense = createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "iFood dinner", Amount: decimal.NewFromInt(50)})
	suite.Require().NotNil(expense.Suggestion)
	suite.Assert().Equal(models.SuggestionDelivery, expense.Suggestion.Kind)
	suite.Assert().True(expense.Suggestion.SuggestedAmount.Equal(decimal.NewFromInt(15)))

	r = test.Request(suite.T(), http.MethodDelete, rules.Data[1].Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestSuggestionRulesCreateFails() {
	headers := createTestUser(suite.T())

	tests := []struct {
		name string
		rule v1.SuggestionRuleEditable
	}{
		{"No match", v1.SuggestionRuleEditable{Match: "  ", Percent: decimal.NewFromInt(10)}},
		{"Zero percent", v1.SuggestionRuleEditable{Match: "*"}},
		{"More than 100 percent", v1.SuggestionRuleEditable{Match: "*", Percent: decimal.NewFromInt(101)}},
		{"Unknown kind", v1.SuggestionRuleEditable{Match: "*", Kind: "Gambling", Percent: decimal.NewFromInt(10)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestSuggestionRule(t, headers, tt.rule, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenses() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "  ", Amount: decimal.NewFromInt(10)}, http.StatusBadRequest)
	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Gym"}, http.StatusBadRequest)

	expense := createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Gym", Amount: decimal.NewFromInt(100)})
	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Internet", Amount: decimal.NewFromInt(120)})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?name=gym", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Assert().Len(expenses.Data, 1)

	r = test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{"amount": "89.90"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Gym", updated.Data.Name)
	suite.Assert().True(updated.Data.Amount.Equal(decimal.RequireFromString("89.9")))

	r = test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesCurrent() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes/current", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	createTestIncome(suite.T(), headers, v1.IncomeEditable{MonthlySalary: decimal.Zero}, http.StatusBadRequest)

	createTestIncome(suite.T(), headers, v1.IncomeEditable{MonthlySalary: decimal.NewFromInt(3500), RegisteredAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)})
	older := createTestIncome(suite.T(), headers, v1.IncomeEditable{MonthlySalary: decimal.NewFromInt(3000), RegisteredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes/current", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var current v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &current)
	suite.Assert().True(current.Data.MonthlySalary.Equal(decimal.NewFromInt(3500)))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var incomes v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &incomes)
	suite.Require().Len(incomes.Data, 2)
	suite.Assert().Equal(current.Data.ID, incomes.Data[0].ID)

	r = test.Request(suite.T(), http.MethodPatch, older.Data.Links.Self, map[string]any{"registeredAt": "2026-09-01T00:00:00Z"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes/current", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &current)
	suite.Assert().Equal(older.Data.ID, current.Data.ID)
}

func (suite *TestSuiteStandard) TestDebtsInstallments() {
	headers := createTestUser(suite.T())

	debt := createTestDebt(suite.T(), headers, v1.DebtEditable{
		TotalAmount:      decimal.NewFromInt(1000),
		InstallmentCount: 3,
		FirstDueMonth:    types.NewMonth(2026, time.November),
	})
	suite.Assert().True(debt.Data.InstallmentAmount.Equal(decimal.RequireFromString("333.33")), "Installment amount is %s", debt.Data.InstallmentAmount)
	suite.Assert().True(debt.Data.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	suite.Assert().Equal(0, debt.Data.PaidInstallments)

	installments := getTestInstallments(suite.T(), headers, debt.Data.Links.Installments)
	suite.Require().Len(installments, 3)
	for i, month := range []string{"2026-11", "2026-12", "2027-01"} {
		suite.Assert().Equal(i+1, installments[i].Number)
		suite.Assert().Equal(month, installments[i].DueMonth.String())
		suite.Assert().Equal("Laptop", installments[i].Name)
	}

	suite.Assert().Len(getTestInstallments(suite.T(), headers, "http://example.com/v1/installments?month=2026-12"), 1)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/installments?month=December", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Only the paid state can be changed
	r = test.Request(suite.T(), http.MethodPatch, installments[0].Links.Self, map[string]any{"amount": 5}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, installments[0].Links.Self, map[string]any{}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, installments[0].Links.Self, map[string]any{"paid": true}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var paid v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &paid)
	suite.Assert().True(paid.Data.Paid)
	suite.Assert().NotNil(paid.Data.PaidAt)

	r = test.Request(suite.T(), http.MethodGet, debt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(1, updated.Data.PaidInstallments)
	suite.Assert().True(updated.Data.RemainingAmount.Equal(decimal.RequireFromString("666.67")), "Remaining amount is %s", updated.Data.RemainingAmount)

	// Paid installments are kept when the debt changes
	r = test.Request(suite.T(), http.MethodPatch, debt.Data.Links.Self, map[string]any{"installmentCount": 4}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.InstallmentAmount.Equal(decimal.NewFromInt(250)))

	installments = getTestInstallments(suite.T(), headers, debt.Data.Links.Installments)
	suite.Require().Len(installments, 4)
	suite.Assert().True(installments[0].Paid)
	suite.Assert().True(installments[0].Amount.Equal(decimal.RequireFromString("333.33")))
	suite.Assert().True(installments[3].Amount.Equal(decimal.NewFromInt(250)))
	suite.Assert().Equal("2027-02", installments[3].DueMonth.String())

	unpaid := getTestInstallments(suite.T(), headers, fmt.Sprintf("%s&paid=false", debt.Data.Links.Installments))
	suite.Assert().Len(unpaid, 3)

	r = test.Request(suite.T(), http.MethodPatch, installments[0].Links.Self, map[string]any{"paid": false}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, debt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(0, updated.Data.PaidInstallments)

	r = test.Request(suite.T(), http.MethodDelete, debt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Len(getTestInstallments(suite.T(), headers, "http://example.com/v1/installments"), 0)
}

func (suite *TestSuiteStandard) TestDebtsCountBelowPaidInstallment() {
	headers := createTestUser(suite.T())
	debt := createTestDebt(suite.T(), headers, v1.DebtEditable{TotalAmount: decimal.NewFromInt(500), InstallmentCount: 5})

	installments := getTestInstallments(suite.T(), headers, debt.Data.Links.Installments)
	suite.Require().Len(installments, 5)

	r := test.Request(suite.T(), http.MethodPatch, installments[4].Links.Self, map[string]any{"paid": true}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, debt.Data.Links.Self, map[string]any{"installmentCount": 3}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var failed v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &failed)
	suite.Require().NotNil(failed.Error)
	suite.Assert().Contains(*failed.Error, "last paid installment")

	suite.Assert().Len(getTestInstallments(suite.T(), headers, debt.Data.Links.Installments), 5)
}

func (suite *TestSuiteStandard) TestDebtsCreateFails() {
	headers := createTestUser(suite.T())

	tests := []struct {
		name string
		debt v1.DebtEditable
	}{
		{"No amount", v1.DebtEditable{InstallmentCount: 2}},
		{"No installments", v1.DebtEditable{TotalAmount: decimal.NewFromInt(100)}},
		{"Negative installments", v1.DebtEditable{TotalAmount: decimal.NewFromInt(100), InstallmentCount: -2}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestDebt(t, headers, tt.debt, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", `[{ "name": "Car", "totalAmount": "100", "installmentCount": 2, "firstDueMonth": "soon" }]`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummary() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2026-11", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().False(summary.Data.HasIncome)
	suite.Assert().True(summary.Data.Available.IsZero())

	createTestIncome(suite.T(), headers, v1.IncomeEditable{MonthlySalary: decimal.NewFromInt(4000)})
	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Rent", Amount: decimal.NewFromInt(1000)})
	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Groceries", Amount: decimal.NewFromInt(500)})
	createTestDebt(suite.T(), headers, v1.DebtEditable{
		TotalAmount:      decimal.NewFromInt(1000),
		InstallmentCount: 3,
		FirstDueMonth:    types.NewMonth(2026, time.November),
	})

	tests := []struct {
		month        string
		installments string
		total        string
		available    string
		percent      string
	}{
		{"2026-11", "333.33", "1833.33", "2166.67", "45.83"},
		{"2027-01", "333.33", "1833.33", "2166.67", "45.83"},
		{"2027-02", "0", "1500", "2500", "37.5"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/summary?month=%s", tt.month), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var summary v1.SummaryResponse
			test.DecodeResponse(t, &r, &summary)
			assert.Equal(t, tt.month, summary.Data.Month.String())
			assert.True(t, summary.Data.HasIncome)
			assert.True(t, summary.Data.ExpensesTotal.Equal(decimal.NewFromInt(1500)))
			assert.True(t, summary.Data.InstallmentsTotal.Equal(decimal.RequireFromString(tt.installments)), "Installments total is %s", summary.Data.InstallmentsTotal)
			assert.True(t, summary.Data.TotalSpent.Equal(decimal.RequireFromString(tt.total)), "Total spent is %s", summary.Data.TotalSpent)
			assert.True(t, summary.Data.Available.Equal(decimal.RequireFromString(tt.available)), "Available is %s", summary.Data.Available)
			assert.True(t, summary.Data.PercentSpent.Equal(decimal.RequireFromString(tt.percent)), "Percent spent is %s", summary.Data.PercentSpent)
		})
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=11/2026", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
