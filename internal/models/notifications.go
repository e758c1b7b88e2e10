package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChallengeReward is shown to the user after a challenge period has been completed.
type ChallengeReward struct {
	Key         string          `json:"key"` // Acknowledgement key
	GoalID      uuid.UUID       `json:"goalId"`
	ChallengeID uuid.UUID       `json:"challengeId"`
	ElapsedDays int             `json:"elapsedDays"`
	Saved       decimal.Decimal `json:"saved"`
	Completed   bool            `json:"completed"`
}

// RewardKey is the acknowledgement key of the reward for a goal's challenge period.
func RewardKey(goalID uuid.UUID, elapsedDays int) string {
	return fmt.Sprintf("%s_%d", goalID, elapsedDays)
}

// Notifications are the achievements and challenge rewards that the user
// has not acknowledged yet.
type Notifications struct {
	Achievements []Achievement     `json:"achievements"`
	Rewards      []ChallengeReward `json:"rewards"`
}

// PendingNotifications returns the notifications of the user that are not acknowledged.
func PendingNotifications(userID uuid.UUID) (Notifications, error) {
	n := Notifications{
		Achievements: []Achievement{},
		Rewards:      []ChallengeReward{},
	}

	var acks []Acknowledgement
	if err := DB.Scopes(OwnedBy(userID)).Find(&acks).Error; err != nil {
		return Notifications{}, err
	}

	seen := make(map[NotificationKind]map[string]bool)
	for _, a := range acks {
		if seen[a.Kind] == nil {
			seen[a.Kind] = make(map[string]bool)
		}
		seen[a.Kind][a.Key] = true
	}

	var achievements []Achievement
	if err := DB.Scopes(OwnedBy(userID)).Order("unlocked_at ASC").Find(&achievements).Error; err != nil {
		return Notifications{}, err
	}

	for _, a := range achievements {
		if !seen[NotificationAchievement][a.ID.String()] {
			n.Achievements = append(n.Achievements, a)
		}
	}

	var challenges []Challenge
	if err := DB.Scopes(OwnedBy(userID)).Where("elapsed_days > 0").Order("start_date ASC").Find(&challenges).Error; err != nil {
		return Notifications{}, err
	}

	for _, c := range challenges {
		key := RewardKey(c.GoalID, c.ElapsedDays)
		if seen[NotificationChallengeReward][key] {
			continue
		}

		n.Rewards = append(n.Rewards, ChallengeReward{
			Key:         key,
			GoalID:      c.GoalID,
			ChallengeID: c.ID,
			ElapsedDays: c.ElapsedDays,
			Saved:       c.Saved(),
			Completed:   !c.Active,
		})
	}

	return n, nil
}

// Acknowledge records that the user has seen a notification. Acknowledging
// the same notification again has no effect.
func Acknowledge(userID uuid.UUID, kind NotificationKind, key string) (Acknowledgement, error) {
	if !kind.Valid() {
		return Acknowledgement{}, ErrAcknowledgementKind
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Acknowledgement{}, ErrAcknowledgementKeyEmpty
	}

	var ack Acknowledgement
	err := transaction(func(tx *gorm.DB) error {
		return tx.Where(Acknowledgement{UserID: userID, Kind: kind, Key: key}).FirstOrCreate(&ack).Error
	})

	return ack, err
}
