package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poupix/backend/internal/models"
	ez_uuid "github.com/poupix/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type DepositEditable struct {
	GoalID     uuid.UUID            `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                                            // The goal to deposit into
	Amount     decimal.Decimal      `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the deposit
	Date       time.Time            `json:"date" example:"2026-10-19T12:00:00Z"`                                                              // Date of the deposit. Defaults to now
	Note       string               `json:"note" example:"Birthday money" default:"Manual deposit"`                                           // A note about the deposit
	FromIncome bool                 `json:"fromIncome" example:"false" default:"false"`                                                       // The money is taken from the monthly income and recorded as an expense
	Method     models.DepositMethod `json:"method" example:"Pix" default:"Manual"`                                                            // One of Manual, Pix, Transfer, FromSavedExpense
}

func (editable DepositEditable) model() models.Deposit {
	return models.Deposit{
		GoalID:     editable.GoalID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,
		FromIncome: editable.FromIncome,
		Method:     editable.Method,
	}
}

type DepositLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/deposits/b8dd8b35-c2ae-4a2f-a7b6-5ab3a6fae214"` // The deposit itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`    // The goal of the deposit
}

type Deposit struct {
	models.Deposit
	Links DepositLinks `json:"links"`
}

// newDeposit returns the API v1 representation of the resource
func newDeposit(c *gin.Context, model models.Deposit) Deposit {
	url := c.GetString(string(models.DBContextURL))

	return Deposit{
		Deposit: model,
		Links: DepositLinks{
			Self: fmt.Sprintf("%s/v1/deposits/%s", url, model.ID),
			Goal: fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
		},
	}
}

type DepositResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Deposit `json:"data"`                                                          // The resource
}

type DepositListResponse struct {
	Data       []Deposit   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DepositCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DepositResponse `json:"data"`                                                          // List of created resources
}

func (t *DepositCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, DepositResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DepositQueryFilter struct {
	GoalID     ez_uuid.UUID         `form:"goal"`                       // By goal ID
	Method     models.DepositMethod `form:"method"`                     // By deposit method
	FromIncome bool                 `form:"fromIncome"`                 // Was the money taken from the income?
	Note       string               `form:"note" filterField:"false"`   // By the note
	Offset     uint                 `form:"offset" filterField:"false"` // The offset of the first deposit returned. Defaults to 0.
	Limit      int                  `form:"limit" filterField:"false"`  // Maximum number of deposits to return. Defaults to 50.
}

func (f DepositQueryFilter) model() models.Deposit {
	return models.Deposit{
		GoalID:     f.GoalID.UUID,
		Method:     f.Method,
		FromIncome: f.FromIncome,
	}
}
