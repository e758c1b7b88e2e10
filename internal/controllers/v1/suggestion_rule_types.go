package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/shopspring/decimal"
)

type SuggestionRuleEditable struct {
	Priority uint                  `json:"priority" example:"3"`                                                // Rules with a lower priority are checked first
	Match    string                `json:"match" example:"*streaming*"`                                         // Glob pattern matched against the expense name, ignoring case
	Kind     models.SuggestionKind `json:"kind" example:"Subscription" default:"Other"`                         // Kind of the suggestions the rule creates
	Percent  decimal.Decimal       `json:"percent" example:"25" minimum:"0.00000001" maximum:"100" default:"0"` // Share of the expense amount to suggest saving
}

func (editable SuggestionRuleEditable) model() models.SuggestionRule {
	return models.SuggestionRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Kind:     editable.Kind,
		Percent:  editable.Percent,
	}
}

type SuggestionRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/suggestion-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The rule itself
}

type SuggestionRule struct {
	models.SuggestionRule
	Links SuggestionRuleLinks `json:"links"`
}

func newSuggestionRule(c *gin.Context, model models.SuggestionRule) SuggestionRule {
	url := c.GetString(string(models.DBContextURL))

	return SuggestionRule{
		SuggestionRule: model,
		Links: SuggestionRuleLinks{
			Self: fmt.Sprintf("%s/v1/suggestion-rules/%s", url, model.ID),
		},
	}
}

type SuggestionRuleResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SuggestionRule `json:"data"`                                                          // The rule
}

type SuggestionRuleListResponse struct {
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       []SuggestionRule `json:"data"`                                                          // List of rules
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type SuggestionRuleCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SuggestionRuleResponse `json:"data"`                                                          // List of created rules
}

func (r *SuggestionRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SuggestionRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SuggestionRuleQueryFilter struct {
	Priority uint                  `form:"priority"`                   // By priority
	Match    string                `form:"match"`                      // By exact match pattern
	Kind     models.SuggestionKind `form:"kind"`                       // By suggestion kind
	Offset   uint                  `form:"offset" filterField:"false"` // The offset of the first rule returned. Defaults to 0.
	Limit    int                   `form:"limit" filterField:"false"`  // Maximum number of rules to return. Defaults to 50.
}

func (f SuggestionRuleQueryFilter) model() models.SuggestionRule {
	return models.SuggestionRule{
		Priority: f.Priority,
		Match:    f.Match,
		Kind:     f.Kind,
	}
}
