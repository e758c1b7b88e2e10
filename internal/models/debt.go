package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is a fixed debt paid off in monthly installments.
type Debt struct {
	DefaultModel
	UserID            uuid.UUID       `json:"userId" gorm:"index"`
	Name              string          `json:"name"`
	TotalAmount       decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)"`
	InstallmentCount  int             `json:"installmentCount"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" gorm:"type:DECIMAL(20,8)"`
	PaidInstallments  int             `json:"paidInstallments"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount" gorm:"type:DECIMAL(20,8)"`
	FirstDueMonth     types.Month     `json:"firstDueMonth"` // The month the first installment is due in
}

// recalculate sets the installment and remaining amounts.
func (d *Debt) recalculate() {
	if d.InstallmentCount <= 0 {
		return
	}

	d.InstallmentAmount = d.TotalAmount.DivRound(decimal.NewFromInt(int64(d.InstallmentCount)), 2)

	paid := d.InstallmentAmount.Mul(decimal.NewFromInt(int64(d.PaidInstallments)))
	d.RemainingAmount = decimal.Max(decimal.Zero, d.TotalAmount.Sub(paid))
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)

	if d.FirstDueMonth.IsZero() {
		d.FirstDueMonth = types.MonthOf(time.Now().In(time.UTC))
	}

	d.recalculate()
	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if !d.TotalAmount.IsPositive() {
		return ErrDebtAmountNotPositive
	}

	if d.InstallmentCount <= 0 {
		return ErrDebtInstallmentCount
	}

	if d.PaidInstallments < 0 || d.PaidInstallments > d.InstallmentCount {
		return ErrDebtPaidInstallments
	}

	return nil
}

// BeforeDelete deletes the installments of the debt.
func (d *Debt) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("debt_id = ?", d.ID).Delete(&Installment{}).Error
}

func (Debt) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Debt](userID)
}
