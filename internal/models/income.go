package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is the monthly salary of a user. The most recently
// registered income is the current one.
type Income struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"index"`
	MonthlySalary decimal.Decimal `json:"monthlySalary" gorm:"type:DECIMAL(20,8)"`
	RegisteredAt  time.Time       `json:"registeredAt"`
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	if i.RegisteredAt.IsZero() {
		i.RegisteredAt = time.Now().In(time.UTC)
	}

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if !i.MonthlySalary.IsPositive() {
		return ErrIncomeNotPositive
	}

	return nil
}

func (Income) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Income](userID)
}
