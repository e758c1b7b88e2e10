package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	ez_uuid "github.com/poupix/backend/internal/uuid"
)

// InstallmentEditable holds the only field of an installment that can be changed.
type InstallmentEditable struct {
	Paid *bool `json:"paid" binding:"required" example:"true"` // Has the installment been paid?
}

type InstallmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/installments/0c4f9f4e-2a2b-4a43-8a4e-d7c0d2f3a1b9"` // The installment itself
	Debt string `json:"debt" example:"https://example.com/api/v1/debts/5c53e4c3-5f0e-4a59-9e5e-3f4a8e9b1d6a"`        // The debt of the installment
}

type Installment struct {
	models.Installment
	Links InstallmentLinks `json:"links"`
}

func newInstallment(c *gin.Context, model models.Installment) Installment {
	url := c.GetString(string(models.DBContextURL))

	return Installment{
		Installment: model,
		Links: InstallmentLinks{
			Self: fmt.Sprintf("%s/v1/installments/%s", url, model.ID),
			Debt: fmt.Sprintf("%s/v1/debts/%s", url, model.DebtID),
		},
	}
}

type InstallmentResponse struct {
	Error *string      `json:"error" example:"only the paid state of an installment can be changed"` // The error, if any occurred
	Data  *Installment `json:"data"`                                                                 // The installment
}

type InstallmentListResponse struct {
	Error      *string       `json:"error" example:"the month query parameter must be in YYYY-MM format"` // The error, if any occurred
	Data       []Installment `json:"data"`                                                                // List of installments
	Pagination *Pagination   `json:"pagination"`                                                          // Pagination information
}

type InstallmentQueryFilter struct {
	DebtID ez_uuid.UUID `form:"debt"`                       // By debt ID
	Paid   bool         `form:"paid"`                       // Has the installment been paid?
	Month  string       `form:"month" filterField:"false"`  // By the month the installment is due in, YYYY-MM
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first installment returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of installments to return. Defaults to 50.
}

func (f InstallmentQueryFilter) model() models.Installment {
	return models.Installment{
		DebtID: f.DebtID.UUID,
		Paid:   f.Paid,
	}
}
