package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationKind string

const (
	NotificationAchievement     NotificationKind = "Achievement"
	NotificationChallengeReward NotificationKind = "ChallengeReward"
)

func (k NotificationKind) Valid() bool {
	return k == NotificationAchievement || k == NotificationChallengeReward
}

// Acknowledgement records that a user has seen a notification.
type Acknowledgement struct {
	DefaultModel
	UserID uuid.UUID        `json:"userId" gorm:"uniqueIndex:acknowledgement_key"`
	Kind   NotificationKind `json:"kind" gorm:"uniqueIndex:acknowledgement_key"`
	Key    string           `json:"key" gorm:"uniqueIndex:acknowledgement_key"`
}

func (a *Acknowledgement) BeforeSave(_ *gorm.DB) error {
	a.Key = strings.TrimSpace(a.Key)

	if !a.Kind.Valid() {
		return ErrAcknowledgementKind
	}

	if a.Key == "" {
		return ErrAcknowledgementKeyEmpty
	}

	return nil
}

func (Acknowledgement) Export(userID uuid.UUID) (json.RawMessage, error) {
	return exportOwned[Acknowledgement](userID)
}
