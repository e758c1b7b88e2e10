package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	ez_uuid "github.com/poupix/backend/internal/uuid"
)

type AchievementLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/achievements/2ab9a1f2-5c6e-46be-8f4c-0b6a1a6f3e55"` // The achievement itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`        // The goal the achievement was unlocked for
}

type Achievement struct {
	models.Achievement
	Links AchievementLinks `json:"links"`
}

// newAchievement returns the API v1 representation of the resource
func newAchievement(c *gin.Context, model models.Achievement) Achievement {
	url := c.GetString(string(models.DBContextURL))

	return Achievement{
		Achievement: model,
		Links: AchievementLinks{
			Self: fmt.Sprintf("%s/v1/achievements/%s", url, model.ID),
			Goal: fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
		},
	}
}

type AchievementResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Achievement `json:"data"`                                                          // The resource
}

type AchievementListResponse struct {
	Data       []Achievement `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type AchievementQueryFilter struct {
	GoalID ez_uuid.UUID                `form:"goal"`                       // By goal ID
	Type   progression.AchievementType `form:"type"`                       // By achievement type
	Offset uint                        `form:"offset" filterField:"false"` // The offset of the first achievement returned. Defaults to 0.
	Limit  int                         `form:"limit" filterField:"false"`  // Maximum number of achievements to return. Defaults to 50.
}

func (f AchievementQueryFilter) model() models.Achievement {
	return models.Achievement{
		GoalID: f.GoalID.UUID,
		Type:   f.Type,
	}
}
