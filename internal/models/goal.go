package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/progression"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalCategory string

const (
	CategoryTravel           GoalCategory = "Travel"
	CategoryPurchase         GoalCategory = "Purchase"
	CategoryEmergencyFund    GoalCategory = "EmergencyFund"
	CategoryInvestment       GoalCategory = "Investment"
	CategoryEducation        GoalCategory = "Education"
	CategorySavingsChallenge GoalCategory = "SavingsChallenge"
	CategoryOther            GoalCategory = "Other"
)

func (c GoalCategory) Valid() bool {
	switch c {
	case CategoryTravel, CategoryPurchase, CategoryEmergencyFund, CategoryInvestment, CategoryEducation, CategorySavingsChallenge, CategoryOther:
		return true
	}
	return false
}

const (
	DefaultGoalIcon  = "🐷"
	DefaultGoalColor = "#FF9500"
)

// Goal is a virtual piggy bank.
type Goal struct {
	DefaultModel
	UserID            uuid.UUID       `json:"userId" gorm:"index"`
	Name              string          `json:"name"`
	Note              string          `json:"note"`
	Category          GoalCategory    `json:"category"`
	Icon              string          `json:"icon"`
	Color             string          `json:"color"`
	TargetAmount      decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)"`
	CurrentAmount     decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)"`
	StartDate         time.Time       `json:"startDate"`
	EstimatedEndDate  *time.Time      `json:"estimatedEndDate"`
	ActiveChallengeID *uuid.UUID      `json:"activeChallengeId"` // The challenge currently running for this goal
}

// Progress is the current amount as a percentage of the target.
func (g Goal) Progress() decimal.Decimal {
	return progression.Progress(g.CurrentAmount, g.TargetAmount)
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)
	g.Icon = strings.TrimSpace(g.Icon)
	g.Color = strings.TrimSpace(g.Color)

	if g.Icon == "" {
		g.Icon = DefaultGoalIcon
	}

	if g.Color == "" {
		g.Color = DefaultGoalColor
	}

	if g.Category == "" {
		g.Category = CategoryOther
	}

	if g.StartDate.IsZero() {
		g.StartDate = time.Now().In(time.UTC)
	}

	if g.ActiveChallengeID != nil && *g.ActiveChallengeID == uuid.Nil {
		g.ActiveChallengeID = nil
	}

	return nil
}

// AfterSave also runs for updates, where the new values are only
// available after they have been assigned.
func (g *Goal) AfterSave(_ *gorm.DB) error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.Category.Valid() {
		return ErrGoalCategoryUnknown
	}

	if g.TargetAmount.IsNegative() {
		return ErrGoalTargetNegative
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalAmountNegative
	}

	return nil
}

// BeforeDelete deletes the history of the goal with it.
func (g *Goal) BeforeDelete(tx *gorm.DB) error {
	for _, m := range []any{&Deposit{}, &Achievement{}, &Challenge{}} {
		if err := tx.Where("goal_id = ?", g.ID).Delete(m).Error; err != nil {
			return err
		}
	}

	return nil
}

func (Goal) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Goal](userID)
}
