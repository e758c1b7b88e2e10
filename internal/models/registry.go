package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is a resource that belongs to a user.
type Model interface {
	Export(userID uuid.UUID) (json.RawMessage, error) // All instances of this model owned by the user
}

// Registry lists all models owned by users so that operations
// on all of them do not need to name each one.
var Registry = []Model{
	Achievement{},
	Acknowledgement{},
	Challenge{},
	Debt{},
	Deposit{},
	Expense{},
	Goal{},
	Income{},
	Installment{},
	SavingSuggestion{},
	SuggestionRule{},
}

func exportOwned[T any](userID uuid.UUID) (json.RawMessage, error) {
	var resources []T

	err := DB.Scopes(OwnedBy(userID)).Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(resources)
}

// Cleanup permanently deletes all resources of a user. The user itself is kept.
func Cleanup(userID uuid.UUID) error {
	return transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{SkipHooks: true})

		for _, model := range Registry {
			err := tx.Unscoped().Scopes(OwnedBy(userID)).Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
