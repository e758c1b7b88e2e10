package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a recurring monthly expense.
type Expense struct {
	DefaultModel
	UserID              uuid.UUID       `json:"userId" gorm:"index"`
	Name                string          `json:"name"`
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	ExpectedPaymentDate *time.Time      `json:"expectedPaymentDate"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Name == "" {
		return ErrExpenseNameEmpty
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

func (Expense) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Expense](userID)
}
