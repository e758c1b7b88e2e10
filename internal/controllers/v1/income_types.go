package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	MonthlySalary decimal.Decimal `json:"monthlySalary" example:"4200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The monthly salary
	RegisteredAt  time.Time       `json:"registeredAt" example:"2026-10-01T00:00:00Z"`                                                               // When the salary was registered. Defaults to now
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		MonthlySalary: editable.MonthlySalary,
		RegisteredAt:  editable.RegisteredAt,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/1a3d1e4d-7a6b-4b1e-9a54-0e0d6b7d4b1c"` // The income itself
}

type Income struct {
	models.Income
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		Income: model,
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeResponse struct {
	Error *string `json:"error" example:"there is no income matching your query"` // The error, if any occurred
	Data  *Income `json:"data"`                                                   // The income
}

type IncomeListResponse struct {
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       []Income    `json:"data"`                                                          // List of incomes
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created incomes
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeQueryFilter struct {
	Offset uint `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit  int  `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{}
}
