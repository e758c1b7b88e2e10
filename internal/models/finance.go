package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurrentIncome returns the most recently registered income of the user.
func CurrentIncome(userID uuid.UUID) (Income, error) {
	var income Income
	err := DB.Scopes(OwnedBy(userID)).Order("registered_at DESC, created_at DESC").First(&income).Error
	return income, err
}

// CreateExpense creates the expense and a saving suggestion from the first
// suggestion rule of the user that matches it. The suggestion is nil if no
// rule matches.
func CreateExpense(expense *Expense) (*SavingSuggestion, error) {
	var suggestion *SavingSuggestion

	err := transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return err
		}

		var rules []SuggestionRule
		err := tx.Scopes(OwnedBy(expense.UserID)).Order("priority ASC, created_at ASC").Find(&rules).Error
		if err != nil {
			return err
		}

		for _, rule := range rules {
			if !rule.Matches(expense.Name) {
				continue
			}

			amount := rule.Suggest(expense.Amount)
			if !amount.IsPositive() {
				continue
			}

			s := SavingSuggestion{
				UserID:          expense.UserID,
				Message:         fmt.Sprintf("You could save %s on %s", amount.StringFixed(2), expense.Name),
				SuggestedAmount: amount,
				Kind:            rule.Kind,
				ExpenseID:       &expense.ID,
			}

			if err := tx.Create(&s).Error; err != nil {
				return err
			}

			suggestion = &s
			return nil
		}

		return nil
	})

	return suggestion, err
}

// CreateSuggestions creates all of the suggestions or none of them.
func CreateSuggestions(suggestions []SavingSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	return transaction(func(tx *gorm.DB) error {
		return tx.Create(&suggestions).Error
	})
}

// CreateDebt creates the debt together with one installment per month.
func CreateDebt(debt *Debt) error {
	return transaction(func(tx *gorm.DB) error {
		if err := tx.Create(debt).Error; err != nil {
			return err
		}

		return regenerateInstallments(tx, debt)
	})
}

// UpdateDebt updates the fields of the debt named in fields with the values from
// changes, recomputes its amounts and regenerates the unpaid installments.
func UpdateDebt(debt *Debt, changes Debt, fields []any) error {
	return transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(debt).Select("", fields...).Updates(changes).Error; err != nil {
				return err
			}
		}

		// Saving recomputes the derived amounts
		if err := tx.Save(debt).Error; err != nil {
			return err
		}

		return regenerateInstallments(tx, debt)
	})
}

// regenerateInstallments replaces the unpaid installments of a debt.
// Numbers that already have a paid installment are skipped. A paid
// installment beyond the installment count is an error.
func regenerateInstallments(tx *gorm.DB, debt *Debt) error {
	err := tx.Where("debt_id = ? AND paid = ?", debt.ID, false).Delete(&Installment{}).Error
	if err != nil {
		return err
	}

	var paid []Installment
	err = tx.Where("debt_id = ?", debt.ID).Find(&paid).Error
	if err != nil {
		return err
	}

	isPaid := make(map[int]bool, len(paid))
	for _, p := range paid {
		if p.Number > debt.InstallmentCount {
			return fmt.Errorf("%w: installment %d is paid", ErrDebtCountBelowPaid, p.Number)
		}
		isPaid[p.Number] = true
	}

	installments := make([]Installment, 0, debt.InstallmentCount)
	for number := 1; number <= debt.InstallmentCount; number++ {
		if isPaid[number] {
			continue
		}

		installments = append(installments, Installment{
			UserID:   debt.UserID,
			DebtID:   debt.ID,
			Name:     debt.Name,
			Amount:   debt.InstallmentAmount,
			Number:   number,
			DueMonth: debt.FirstDueMonth.AddDate(0, number-1),
		})
	}

	if len(installments) == 0 {
		return nil
	}

	return tx.Create(&installments).Error
}

// SetInstallmentPaid marks an installment of the user as paid or unpaid and
// updates the paid installment count of its debt.
func SetInstallmentPaid(userID, installmentID uuid.UUID, paid bool) (Installment, error) {
	var installment Installment

	err := transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(OwnedBy(userID)).First(&installment, "id = ?", installmentID).Error; err != nil {
			return err
		}

		if installment.Paid == paid {
			return nil
		}

		var debt Debt
		if err := tx.First(&debt, "id = ?", installment.DebtID).Error; err != nil {
			return err
		}

		installment.Paid = paid
		if paid {
			now := time.Now().In(time.UTC)
			installment.PaidAt = &now
			debt.PaidInstallments++
		} else {
			installment.PaidAt = nil
			debt.PaidInstallments--
		}

		if err := tx.Save(&installment).Error; err != nil {
			return err
		}

		return tx.Save(&debt).Error
	})

	return installment, err
}
