package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SuggestionKind string

const (
	SuggestionDelivery        SuggestionKind = "Delivery"
	SuggestionSubscription    SuggestionKind = "Subscription"
	SuggestionImpulsePurchase SuggestionKind = "ImpulsePurchase"
	SuggestionLeisure         SuggestionKind = "Leisure"
	SuggestionOther           SuggestionKind = "Other"
)

func (k SuggestionKind) Valid() bool {
	switch k {
	case SuggestionDelivery, SuggestionSubscription, SuggestionImpulsePurchase, SuggestionLeisure, SuggestionOther:
		return true
	}
	return false
}

// SavingSuggestion proposes to move money that could be saved on
// an expense into a goal.
type SavingSuggestion struct {
	DefaultModel
	UserID          uuid.UUID       `json:"userId" gorm:"index"`
	Message         string          `json:"message"`
	SuggestedAmount decimal.Decimal `json:"suggestedAmount" gorm:"type:DECIMAL(20,8)"`
	Kind            SuggestionKind  `json:"kind"`
	Read            bool            `json:"read"`
	Applied         bool            `json:"applied"`
	Date            time.Time       `json:"date"`
	ExpenseID       *uuid.UUID      `json:"expenseId"` // The expense the suggestion was created for
}

func (s *SavingSuggestion) BeforeSave(_ *gorm.DB) error {
	s.Message = strings.TrimSpace(s.Message)

	if s.Kind == "" {
		s.Kind = SuggestionOther
	}

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	}

	if s.ExpenseID != nil && *s.ExpenseID == uuid.Nil {
		s.ExpenseID = nil
	}

	return nil
}

func (s *SavingSuggestion) AfterSave(_ *gorm.DB) error {
	if !s.SuggestedAmount.IsPositive() {
		return ErrSuggestionAmount
	}

	if !s.Kind.Valid() {
		return ErrSuggestionKindUnknown
	}

	return nil
}

func (SavingSuggestion) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[SavingSuggestion](userID)
}
