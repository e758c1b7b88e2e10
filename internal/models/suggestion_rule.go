package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SuggestionRule creates a SavingSuggestion for new expenses whose
// name matches the glob pattern in Match.
type SuggestionRule struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	Priority uint            `json:"priority"`
	Match    string          `json:"match"`
	Kind     SuggestionKind  `json:"kind"`
	Percent  decimal.Decimal `json:"percent" gorm:"type:DECIMAL(20,8)"` // Share of the expense amount to suggest saving
}

// Matches reports if the expense name matches the rule, ignoring case.
func (r SuggestionRule) Matches(name string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(strings.TrimSpace(name)))
}

// Suggest returns the amount to save on an expense of the given amount.
func (r SuggestionRule) Suggest(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Percent).Div(decimal.NewFromInt(100)).Round(2)
}

func (r *SuggestionRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Kind == "" {
		r.Kind = SuggestionOther
	}

	return nil
}

func (r *SuggestionRule) AfterSave(_ *gorm.DB) error {
	if r.Match == "" {
		return ErrRuleMatchEmpty
	}

	if !r.Kind.Valid() {
		return ErrSuggestionKindUnknown
	}

	if !r.Percent.IsPositive() || r.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrRulePercent
	}

	return nil
}

func (SuggestionRule) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[SuggestionRule](userID)
}
