package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poupix/backend/internal/models"
	ez_uuid "github.com/poupix/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type SavingSuggestionEditable struct {
	Message         string                `json:"message" example:"You could save 40.00 on iFood"`                                                           // The suggestion shown to the user
	SuggestedAmount decimal.Decimal       `json:"suggestedAmount" example:"40" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount that could be saved
	Kind            models.SuggestionKind `json:"kind" example:"Delivery" default:"Other"`                                                                   // One of Delivery, Subscription, ImpulsePurchase, Leisure, Other
	Read            bool                  `json:"read" example:"false" default:"false"`                                                                      // Has the user read the suggestion?
	Date            time.Time             `json:"date" example:"2026-10-19T12:00:00Z"`                                                                       // Date of the suggestion. Defaults to now
	ExpenseID       *uuid.UUID            `json:"expenseId" example:"ad3d1e25-4a3f-45a1-9b6e-69f8a1b1b4a3"`                                                  // The expense the suggestion is for
}

func (editable SavingSuggestionEditable) model() models.SavingSuggestion {
	return models.SavingSuggestion{
		Message:         editable.Message,
		SuggestedAmount: editable.SuggestedAmount,
		Kind:            editable.Kind,
		Read:            editable.Read,
		Date:            editable.Date,
		ExpenseID:       editable.ExpenseID,
	}
}

type SavingSuggestionLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/saving-suggestions/0a4b4aef-0a3d-4f1e-a0d7-4a8f3d1f3a46"`        // The suggestion itself
	Apply string `json:"apply" example:"https://example.com/api/v1/saving-suggestions/0a4b4aef-0a3d-4f1e-a0d7-4a8f3d1f3a46/apply"` // Deposit the suggested amount into a goal
}

type SavingSuggestion struct {
	models.SavingSuggestion
	Links SavingSuggestionLinks `json:"links"`
}

// newSavingSuggestion returns the API v1 representation of the resource
func newSavingSuggestion(c *gin.Context, model models.SavingSuggestion) SavingSuggestion {
	url := c.GetString(string(models.DBContextURL))

	return SavingSuggestion{
		SavingSuggestion: model,
		Links: SavingSuggestionLinks{
			Self:  fmt.Sprintf("%s/v1/saving-suggestions/%s", url, model.ID),
			Apply: fmt.Sprintf("%s/v1/saving-suggestions/%s/apply", url, model.ID),
		},
	}
}

type SavingSuggestionResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SavingSuggestion `json:"data"`                                                          // The resource
}

type SavingSuggestionListResponse struct {
	Data       []SavingSuggestion `json:"data"`                                                          // List of resources
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type SavingSuggestionCreateResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SavingSuggestionResponse `json:"data"`                                                          // List of created resources
}

func (t *SavingSuggestionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SavingSuggestionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingSuggestionQueryFilter struct {
	Kind      models.SuggestionKind `form:"kind"`                       // By suggestion kind
	Read      bool                  `form:"read"`                       // Has the suggestion been read?
	Applied   bool                  `form:"applied"`                    // Has the suggestion been applied?
	ExpenseID ez_uuid.UUID          `form:"expense"`                    // By expense ID
	Offset    uint                  `form:"offset" filterField:"false"` // The offset of the first suggestion returned. Defaults to 0.
	Limit     int                   `form:"limit" filterField:"false"`  // Maximum number of suggestions to return. Defaults to 50.
}

func (f SavingSuggestionQueryFilter) model() models.SavingSuggestion {
	return models.SavingSuggestion{
		Kind:      f.Kind,
		Read:      f.Read,
		Applied:   f.Applied,
		ExpenseID: f.ExpenseID.Ptr(),
	}
}

type SavingSuggestionApply struct {
	GoalID uuid.UUID `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal to deposit the suggested amount into
}

// ApplyResult is the outcome of applying a suggestion.
type ApplyResult struct {
	Suggestion   SavingSuggestion `json:"suggestion"`   // The applied suggestion
	Goal         Goal             `json:"goal"`         // The goal after the deposit
	Deposit      Deposit          `json:"deposit"`      // The deposit of the suggested amount
	Achievements []Achievement    `json:"achievements"` // Achievements unlocked by the deposit
}

type ApplyResponse struct {
	Error *string      `json:"error" example:"the suggestion has already been applied"` // The error, if any occurred
	Data  *ApplyResult `json:"data"`                                                    // The result
}
