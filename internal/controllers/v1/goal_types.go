package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name             string              `json:"name" example:"Trip to Lisbon" default:""`                                                                    // Name of the goal
	Note             string              `json:"note" example:"Two weeks in May" default:""`                                                                  // Note about the goal
	Category         models.GoalCategory `json:"category" example:"Travel" default:"Other"`                                                                   // Category of the goal
	Icon             string              `json:"icon" example:"✈️" default:"🐷"`                                                                               // Icon shown for the goal
	Color            string              `json:"color" example:"#34C759" default:"#FF9500"`                                                                   // Color shown for the goal
	TargetAmount     decimal.Decimal     `json:"targetAmount" example:"5000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved
	StartDate        time.Time           `json:"startDate" example:"2026-10-01T00:00:00Z"`                                                                    // When saving for the goal started. Defaults to now
	EstimatedEndDate *time.Time          `json:"estimatedEndDate" example:"2027-05-01T00:00:00Z"`                                                             // When the goal should be reached
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:             editable.Name,
		Note:             editable.Note,
		Category:         editable.Category,
		Icon:             editable.Icon,
		Color:            editable.Color,
		TargetAmount:     editable.TargetAmount,
		StartDate:        editable.StartDate,
		EstimatedEndDate: editable.EstimatedEndDate,
	}
}

// ChallengeEditable is the definition of a savings challenge.
type ChallengeEditable struct {
	Type           progression.ChallengeType `json:"type" example:"FixedDaily"`  // One of FixedDaily, FixedWeekly, DailyIncrement
	InitialValue   decimal.Decimal           `json:"initialValue" example:"10"`  // Value of the first period
	IncrementValue decimal.Decimal           `json:"incrementValue" example:"0"` // Growth per day, only for DailyIncrement
	DurationDays   int                       `json:"durationDays" example:"30"`  // Length of the challenge in days
}

func (editable ChallengeEditable) definition() progression.Definition {
	return progression.Definition{
		Type:           editable.Type,
		InitialValue:   editable.InitialValue,
		IncrementValue: editable.IncrementValue,
		DurationDays:   editable.DurationDays,
	}
}

type GoalCreate struct {
	GoalEditable
	Challenge *ChallengeEditable `json:"challenge"` // Challenge to start together with the goal
}

type GoalLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                           // The goal itself
	Challenge    string `json:"challenge" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/challenge"`            // The active challenge
	Deposits     string `json:"deposits" example:"https://example.com/api/v1/deposits?goal=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`               // Deposits into the goal
	Achievements string `json:"achievements" example:"https://example.com/api/v1/achievements?goal=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`       // Achievements of the goal
	Statement    string `json:"statement" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/statement?format=csv"` // Deposit statement
}

type Goal struct {
	models.Goal
	Progress decimal.Decimal `json:"progress" example:"42.5"` // Current amount as percentage of the target amount
	Links    GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		Goal:     model,
		Progress: model.Progress(),
		Links: GoalLinks{
			Self:         fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Challenge:    fmt.Sprintf("%s/v1/goals/%s/challenge", url, model.ID),
			Deposits:     fmt.Sprintf("%s/v1/deposits?goal=%s", url, model.ID),
			Achievements: fmt.Sprintf("%s/v1/achievements?goal=%s", url, model.ID),
			Statement:    fmt.Sprintf("%s/v1/goals/%s/statement?format=csv", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Name     string              `form:"name" filterField:"false"`   // By name
	Note     string              `form:"note" filterField:"false"`   // By the note
	Search   string              `form:"search" filterField:"false"` // By string in name or note
	Category models.GoalCategory `form:"category"`                   // By category
	Offset   uint                `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int                 `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Goal{
		Category: f.Category,
	}
}
