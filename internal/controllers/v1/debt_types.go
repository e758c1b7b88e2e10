package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/types"
	"github.com/shopspring/decimal"
)

type DebtEditable struct {
	Name             string          `json:"name" example:"New laptop" default:""`                                                                    // Name of the debt
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"2400" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Total amount of the debt
	InstallmentCount int             `json:"installmentCount" example:"12" minimum:"1"`                                                               // Number of monthly installments
	FirstDueMonth    types.Month     `json:"firstDueMonth" example:"2026-11"`                                                                         // Month the first installment is due in. Defaults to the current month
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:             editable.Name,
		TotalAmount:      editable.TotalAmount,
		InstallmentCount: editable.InstallmentCount,
		FirstDueMonth:    editable.FirstDueMonth,
	}
}

type DebtLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/debts/5c53e4c3-5f0e-4a59-9e5e-3f4a8e9b1d6a"`                     // The debt itself
	Installments string `json:"installments" example:"https://example.com/api/v1/installments?debt=5c53e4c3-5f0e-4a59-9e5e-3f4a8e9b1d6a"` // Installments of the debt
}

type Debt struct {
	models.Debt
	Links DebtLinks `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	url := c.GetString(string(models.DBContextURL))

	return Debt{
		Debt: model,
		Links: DebtLinks{
			Self:         fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
			Installments: fmt.Sprintf("%s/v1/installments?debt=%s", url, model.ID),
		},
	}
}

type DebtResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Debt   `json:"data"`                                                          // The debt
}

type DebtListResponse struct {
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       []Debt      `json:"data"`                                                          // List of debts
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DebtResponse `json:"data"`                                                          // List of created debts
}

func (r *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtQueryFilter struct {
	Name             string `form:"name" filterField:"false"`   // By name
	InstallmentCount int    `form:"installmentCount"`           // By number of installments
	Offset           uint   `form:"offset" filterField:"false"` // The offset of the first debt returned. Defaults to 0.
	Limit            int    `form:"limit" filterField:"false"`  // Maximum number of debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		InstallmentCount: f.InstallmentCount,
	}
}
