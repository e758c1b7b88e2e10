package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	ez_uuid "github.com/poupix/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type ChallengeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/challenges/1d2b3b4f-43a5-4e4b-a4d0-a2f1c5ba7bd5"` // The challenge itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The goal the challenge is run for
}

type Challenge struct {
	models.Challenge
	Saved decimal.Decimal `json:"saved" example:"70"` // Amount deposited by the challenge so far
	Links ChallengeLinks  `json:"links"`
}

// newChallenge returns the API v1 representation of the resource
func newChallenge(c *gin.Context, model models.Challenge) Challenge {
	url := c.GetString(string(models.DBContextURL))

	return Challenge{
		Challenge: model,
		Saved:     model.Saved(),
		Links: ChallengeLinks{
			Self: fmt.Sprintf("%s/v1/challenges/%s", url, model.ID),
			Goal: fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
		},
	}
}

type ChallengeResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Challenge `json:"data"`                                                          // The resource
}

type ChallengeListResponse struct {
	Data       []Challenge `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ChallengeQueryFilter struct {
	GoalID ez_uuid.UUID              `form:"goal"`                       // By goal ID
	Type   progression.ChallengeType `form:"type"`                       // By challenge type
	Active bool                      `form:"active"`                     // Is the challenge running?
	Offset uint                      `form:"offset" filterField:"false"` // The offset of the first challenge returned. Defaults to 0.
	Limit  int                       `form:"limit" filterField:"false"`  // Maximum number of challenges to return. Defaults to 50.
}

func (f ChallengeQueryFilter) model() models.Challenge {
	return models.Challenge{
		GoalID: f.GoalID.UUID,
		Type:   f.Type,
		Active: f.Active,
	}
}

// PeriodResult is the outcome of completing a challenge period.
type PeriodResult struct {
	Goal         Goal          `json:"goal"`         // The goal after the deposit
	Challenge    Challenge     `json:"challenge"`    // The challenge after the period
	Deposit      Deposit       `json:"deposit"`      // The deposit of the period value
	Achievements []Achievement `json:"achievements"` // Achievements unlocked with the period
}

type PeriodResponse struct {
	Error *string       `json:"error" example:"challenge not active"` // The error, if any occurred
	Data  *PeriodResult `json:"data"`                                 // The result
}

// FinalizeResult is the outcome of finalizing a challenge.
type FinalizeResult struct {
	Challenge    Challenge     `json:"challenge"`    // The finished challenge
	Achievements []Achievement `json:"achievements"` // Achievements unlocked by finishing the challenge
}

type FinalizeResponse struct {
	Error *string         `json:"error" example:"the goal has no active challenge"` // The error, if any occurred
	Data  *FinalizeResult `json:"data"`                                             // The result
}

func newAchievements(c *gin.Context, resources []models.Achievement) []Achievement {
	achievements := make([]Achievement, 0, len(resources))
	for _, a := range resources {
		achievements = append(achievements, newAchievement(c, a))
	}

	return achievements
}
