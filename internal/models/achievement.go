package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/progression"
)

// Achievement is a badge unlocked for a goal.
//
// Milestone is the de-duplication key within the achievement type,
// e.g. "1000" for ValueReached or the challenge ID for ChallengeCompleted.
type Achievement struct {
	DefaultModel
	UserID      uuid.UUID                   `json:"userId" gorm:"index"`
	GoalID      uuid.UUID                   `json:"goalId" gorm:"uniqueIndex:achievement_milestone"`
	Type        progression.AchievementType `json:"type" gorm:"uniqueIndex:achievement_milestone"`
	Milestone   string                      `json:"milestone" gorm:"uniqueIndex:achievement_milestone"`
	Description string                      `json:"description"`
	Icon        string                      `json:"icon"`
	Unlocked    bool                        `json:"unlocked"`
	UnlockedAt  time.Time                   `json:"unlockedAt"`
}

func (a Achievement) milestone() progression.Milestone {
	return progression.Milestone{Type: a.Type, Key: a.Milestone}
}

func (Achievement) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Achievement](userID)
}
