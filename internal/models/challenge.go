package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/progression"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Challenge is a savings challenge run for a goal. Finished challenges
// are kept as history.
type Challenge struct {
	DefaultModel
	UserID         uuid.UUID                 `json:"userId" gorm:"index"`
	GoalID         uuid.UUID                 `json:"goalId" gorm:"index"`
	Type           progression.ChallengeType `json:"type"`
	InitialValue   decimal.Decimal           `json:"initialValue" gorm:"type:DECIMAL(20,8)"`
	IncrementValue decimal.Decimal           `json:"incrementValue" gorm:"type:DECIMAL(20,8)"`
	DurationDays   int                       `json:"durationDays"`
	ElapsedDays    int                       `json:"elapsedDays"`
	PeriodValue    decimal.Decimal           `json:"periodValue" gorm:"type:DECIMAL(20,8)"` // Value of the current period
	ExpectedTotal  decimal.Decimal           `json:"expectedTotal" gorm:"type:DECIMAL(20,8)"`
	Active         bool                      `json:"active"`
	StartDate      time.Time                 `json:"startDate"`
	EndDate        *time.Time                `json:"endDate"`
}

func (c Challenge) definition() progression.Definition {
	return progression.Definition{
		Type:           c.Type,
		InitialValue:   c.InitialValue,
		IncrementValue: c.IncrementValue,
		DurationDays:   c.DurationDays,
	}
}

func (c Challenge) state() progression.State {
	return progression.State{
		Definition:  c.definition(),
		ElapsedDays: c.ElapsedDays,
		Active:      c.Active,
	}
}

// Saved is the amount deposited by the challenge so far.
func (c Challenge) Saved() decimal.Decimal {
	return c.definition().SavedAfter(c.ElapsedDays)
}

func (c *Challenge) AfterSave(_ *gorm.DB) error {
	if c.ElapsedDays < 0 || c.ElapsedDays > c.DurationDays {
		return ErrChallengeElapsed
	}

	return nil
}

func (Challenge) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Challenge](userID)
}
