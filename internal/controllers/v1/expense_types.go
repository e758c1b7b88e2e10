package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Name                string          `json:"name" example:"Streaming service" default:""`                                                         // Name of the expense
	Amount              decimal.Decimal `json:"amount" example:"39.90" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Monthly amount
	ExpectedPaymentDate *time.Time      `json:"expectedPaymentDate" example:"2026-10-10T00:00:00Z"`                                                  // When the expense is expected to be paid
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Name:                editable.Name,
		Amount:              editable.Amount,
		ExpectedPaymentDate: editable.ExpectedPaymentDate,
	}
}

type ExpenseLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/expenses/7e4a5f61-3b0c-4d92-8a8e-2c1b2d3e4f50"`                          // The expense itself
	Suggestions string `json:"suggestions" example:"https://example.com/api/v1/saving-suggestions?expense=7e4a5f61-3b0c-4d92-8a8e-2c1b2d3e4f50"` // Saving suggestions for the expense
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self:        fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Suggestions: fmt.Sprintf("%s/v1/saving-suggestions?expense=%s", url, model.ID),
		},
	}
}

type ExpenseResponse struct {
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       *Expense          `json:"data"`                                                          // The expense
	Suggestion *SavingSuggestion `json:"suggestion,omitempty"`                                          // The saving suggestion created by a matching rule
}

type ExpenseListResponse struct {
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created expenses
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{}
}
