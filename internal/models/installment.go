package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Installment is the part of a Debt due in one month.
type Installment struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	DebtID   uuid.UUID       `json:"debtId" gorm:"index"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Number   int             `json:"number"` // 1-based position within the debt
	DueMonth types.Month     `json:"dueMonth" gorm:"index"`
	Paid     bool            `json:"paid"`
	PaidAt   *time.Time      `json:"paidAt"`
}

func (Installment) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Installment](userID)
}
