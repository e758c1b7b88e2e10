package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DepositMethod string

const (
	MethodManual           DepositMethod = "Manual"
	MethodPix              DepositMethod = "Pix"
	MethodTransfer         DepositMethod = "Transfer"
	MethodFromSavedExpense DepositMethod = "FromSavedExpense"
	MethodFromChallenge    DepositMethod = "FromChallenge"
)

func (m DepositMethod) Valid() bool {
	switch m {
	case MethodManual, MethodPix, MethodTransfer, MethodFromSavedExpense, MethodFromChallenge:
		return true
	}
	return false
}

const DefaultDepositNote = "Manual deposit"

// Deposit is money put into a goal.
type Deposit struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"index"`
	GoalID     uuid.UUID       `json:"goalId" gorm:"index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note"`
	FromIncome bool            `json:"fromIncome"` // The money was taken from the monthly income
	Method     DepositMethod   `json:"method"`
}

// normalize sets the defaults and validates the deposit.
func (d *Deposit) normalize() error {
	d.Note = strings.TrimSpace(d.Note)
	if d.Note == "" {
		d.Note = DefaultDepositNote
	}

	if d.Method == "" {
		d.Method = MethodManual
	}

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	if !d.Amount.IsPositive() {
		return ErrDepositAmountNotPositive
	}

	if !d.Method.Valid() {
		return ErrDepositMethodUnknown
	}

	return nil
}

func (d *Deposit) BeforeSave(_ *gorm.DB) error {
	return d.normalize()
}

func (d *Deposit) AfterFind(tx *gorm.DB) error {
	err := d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.Date = d.Date.In(time.UTC)
	return nil
}

func (Deposit) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Deposit](userID)
}
