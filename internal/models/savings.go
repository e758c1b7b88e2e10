package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/metrics"
	"github.com/poupix/backend/internal/progression"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Evaluator renders the achievements unlocked by deposits.
var Evaluator = progression.DefaultEvaluator

// PeriodResult is the outcome of completing a challenge period.
type PeriodResult struct {
	Goal         Goal          `json:"goal"`
	Challenge    Challenge     `json:"challenge"`
	Deposit      Deposit       `json:"deposit"`
	Achievements []Achievement `json:"achievements"`
}

// DepositResult is the outcome of a deposit into a goal.
type DepositResult struct {
	Goal         Goal          `json:"goal"`
	Deposit      Deposit       `json:"deposit"`
	Achievements []Achievement `json:"achievements"`
}

// CreateGoal creates a goal. If definition is not nil, a challenge is
// started for the new goal in the same transaction.
func CreateGoal(goal *Goal, definition *progression.Definition) (*Challenge, error) {
	var (
		challenge    *Challenge
		achievements []Achievement
	)

	err := transaction(func(tx *gorm.DB) error {
		goal.CurrentAmount = decimal.Zero
		goal.ActiveChallengeID = nil

		if err := tx.Create(goal).Error; err != nil {
			return err
		}

		if definition == nil {
			return nil
		}

		c, unlocked, err := startChallenge(tx, goal, *definition)
		challenge = &c
		achievements = unlocked
		return err
	})
	if err != nil {
		return nil, err
	}

	countAchievements(achievements)
	return challenge, nil
}

// StartChallenge starts a challenge for the goal of the user.
func StartChallenge(userID, goalID uuid.UUID, definition progression.Definition) (Challenge, error) {
	var (
		challenge    Challenge
		achievements []Achievement
	)

	err := transaction(func(tx *gorm.DB) error {
		var goal Goal
		if err := tx.Scopes(OwnedBy(userID)).First(&goal, "id = ?", goalID).Error; err != nil {
			return err
		}

		c, unlocked, err := startChallenge(tx, &goal, definition)
		challenge = c
		achievements = unlocked
		return err
	})
	if err != nil {
		return challenge, err
	}

	countAchievements(achievements)
	return challenge, nil
}

// startChallenge creates the challenge, makes it the active one of the goal
// and unlocks the ChallengeStarted achievement for it.
func startChallenge(tx *gorm.DB, goal *Goal, definition progression.Definition) (Challenge, []Achievement, error) {
	if goal.ActiveChallengeID != nil {
		var active Challenge
		if err := tx.First(&active, "id = ?", *goal.ActiveChallengeID).Error; err != nil {
			return Challenge{}, nil, err
		}

		if active.Active {
			return Challenge{}, nil, ErrChallengeAlreadyExist
		}
	}

	plan, err := progression.Configure(definition)
	if err != nil {
		return Challenge{}, nil, err
	}

	challenge := Challenge{
		UserID:         goal.UserID,
		GoalID:         goal.ID,
		Type:           plan.Type,
		InitialValue:   plan.InitialValue,
		IncrementValue: plan.IncrementValue,
		DurationDays:   plan.DurationDays,
		PeriodValue:    plan.FirstPeriodValue,
		ExpectedTotal:  plan.ExpectedTotal,
		Active:         true,
		StartDate:      time.Now().In(time.UTC),
	}

	if err := tx.Create(&challenge).Error; err != nil {
		return Challenge{}, nil, err
	}

	goal.ActiveChallengeID = &challenge.ID
	if err := tx.Model(goal).Update("active_challenge_id", challenge.ID).Error; err != nil {
		return Challenge{}, nil, err
	}

	unlock := Evaluator.ChallengeStartedUnlock(challenge.ID.String(), challenge.Type, challenge.ExpectedTotal)
	achievements, err := recordUnlocks(tx, goal, []progression.Unlock{unlock})
	if err != nil {
		return Challenge{}, nil, err
	}

	return challenge, achievements, nil
}

// ActiveChallenge returns the challenge referenced by the goal of the user.
func ActiveChallenge(userID, goalID uuid.UUID) (Challenge, error) {
	var goal Goal
	if err := DB.Scopes(OwnedBy(userID)).First(&goal, "id = ?", goalID).Error; err != nil {
		return Challenge{}, err
	}

	if goal.ActiveChallengeID == nil {
		return Challenge{}, ErrNoActiveChallenge
	}

	var challenge Challenge
	err := DB.First(&challenge, "id = ?", *goal.ActiveChallengeID).Error
	return challenge, err
}

// periodNote describes the challenge deposit for the period ending on the elapsed days.
func periodNote(c Challenge) string {
	if c.Type == progression.FixedWeekly {
		return fmt.Sprintf("Challenge deposit, week %d", (c.ElapsedDays+6)/7)
	}

	return fmt.Sprintf("Challenge deposit, day %d", c.ElapsedDays)
}

// CompleteChallengePeriod marks the current period of the goal's active challenge
// as done. The period value is deposited into the goal and the challenge
// completes when its duration is reached.
func CompleteChallengePeriod(userID, goalID uuid.UUID) (PeriodResult, error) {
	var result PeriodResult

	err := transaction(func(tx *gorm.DB) error {
		var goal Goal
		if err := tx.Scopes(OwnedBy(userID)).First(&goal, "id = ?", goalID).Error; err != nil {
			return err
		}

		if goal.ActiveChallengeID == nil {
			return ErrNoActiveChallenge
		}

		var challenge Challenge
		if err := tx.First(&challenge, "id = ?", *goal.ActiveChallengeID).Error; err != nil {
			return err
		}

		step, err := progression.Advance(challenge.state())
		if err != nil {
			return err
		}

		challenge.ElapsedDays = step.ElapsedDays
		challenge.PeriodValue = step.PeriodValue
		challenge.Active = step.StillActive
		if !step.StillActive {
			now := time.Now().In(time.UTC)
			challenge.EndDate = &now
		}

		if err := tx.Save(&challenge).Error; err != nil {
			return err
		}

		deposit := Deposit{
			Amount: step.PeriodValue,
			Method: MethodFromChallenge,
			Note:   periodNote(challenge),
		}

		achievements, err := addDeposit(tx, &goal, &deposit)
		if err != nil {
			return err
		}

		if !step.StillActive {
			a, err := completeChallenge(tx, &goal, challenge)
			if err != nil {
				return err
			}
			achievements = append(achievements, a...)
		}

		result = PeriodResult{
			Goal:         goal,
			Challenge:    challenge,
			Deposit:      deposit,
			Achievements: achievements,
		}
		return nil
	})
	if err != nil {
		return PeriodResult{}, err
	}

	metrics.ChallengePeriods.WithLabelValues(string(result.Challenge.Type)).Inc()
	countDeposit(result.Deposit, result.Achievements)
	return result, nil
}

// FinalizeChallenge ends the active challenge of the goal before its duration is reached.
//
// If the referenced challenge is already inactive, only the reference is cleared.
func FinalizeChallenge(userID, goalID uuid.UUID) (Challenge, []Achievement, error) {
	var challenge Challenge
	var achievements []Achievement

	err := transaction(func(tx *gorm.DB) error {
		var goal Goal
		if err := tx.Scopes(OwnedBy(userID)).First(&goal, "id = ?", goalID).Error; err != nil {
			return err
		}

		if goal.ActiveChallengeID == nil {
			return ErrNoActiveChallenge
		}

		if err := tx.First(&challenge, "id = ?", *goal.ActiveChallengeID).Error; err != nil {
			return err
		}

		if !challenge.Active {
			goal.ActiveChallengeID = nil
			return tx.Model(&goal).Update("active_challenge_id", nil).Error
		}

		now := time.Now().In(time.UTC)
		challenge.Active = false
		challenge.EndDate = &now
		if err := tx.Save(&challenge).Error; err != nil {
			return err
		}

		a, err := completeChallenge(tx, &goal, challenge)
		achievements = a
		return err
	})
	if err != nil {
		return Challenge{}, nil, err
	}

	countAchievements(achievements)
	return challenge, achievements, nil
}

// completeChallenge unlocks the achievement for a finished challenge and
// clears the reference on the goal.
func completeChallenge(tx *gorm.DB, goal *Goal, challenge Challenge) ([]Achievement, error) {
	goal.ActiveChallengeID = nil
	if err := tx.Model(goal).Update("active_challenge_id", nil).Error; err != nil {
		return nil, err
	}

	unlock := Evaluator.ChallengeCompletedUnlock(challenge.ID.String(), challenge.Type, challenge.Saved())
	return recordUnlocks(tx, goal, []progression.Unlock{unlock})
}

// AddDeposit deposits into the goal of the user referenced by deposit.GoalID.
func AddDeposit(userID uuid.UUID, deposit Deposit) (DepositResult, error) {
	var result DepositResult

	err := transaction(func(tx *gorm.DB) error {
		var goal Goal
		if err := tx.Scopes(OwnedBy(userID)).First(&goal, "id = ?", deposit.GoalID).Error; err != nil {
			return err
		}

		achievements, err := addDeposit(tx, &goal, &deposit)
		if err != nil {
			return err
		}

		result = DepositResult{Goal: goal, Deposit: deposit, Achievements: achievements}
		return nil
	})
	if err != nil {
		return DepositResult{}, err
	}

	countDeposit(result.Deposit, result.Achievements)
	return result, nil
}

// addDeposit records the deposit, updates the amount of the goal and
// unlocks the achievements reached with it.
func addDeposit(tx *gorm.DB, goal *Goal, deposit *Deposit) ([]Achievement, error) {
	if err := deposit.normalize(); err != nil {
		return nil, err
	}

	if err := progression.AcceptDeposit(goal.Progress(), deposit.Method == MethodFromChallenge); err != nil {
		return nil, err
	}

	deposit.UserID = goal.UserID
	deposit.GoalID = goal.ID
	if err := tx.Create(deposit).Error; err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(deposit.Amount)
	if err := tx.Model(goal).Update("current_amount", goal.CurrentAmount).Error; err != nil {
		return nil, err
	}

	if deposit.FromIncome {
		expense := Expense{
			UserID: goal.UserID,
			Name:   goal.Name,
			Amount: deposit.Amount,
		}

		if err := tx.Create(&expense).Error; err != nil {
			return nil, err
		}
	}

	var existing []Achievement
	if err := tx.Where("goal_id = ?", goal.ID).Find(&existing).Error; err != nil {
		return nil, err
	}

	milestones := make([]progression.Milestone, 0, len(existing))
	for _, a := range existing {
		milestones = append(milestones, a.milestone())
	}

	var unlocks []progression.Unlock
	first := Evaluator.FirstDepositUnlock()
	if !containsMilestone(milestones, first.Milestone) {
		unlocks = append(unlocks, first)
	}

	unlocks = append(unlocks, Evaluator.Evaluate(goal.CurrentAmount, goal.Progress(), milestones)...)
	return recordUnlocks(tx, goal, unlocks)
}

func containsMilestone(milestones []progression.Milestone, m progression.Milestone) bool {
	for _, e := range milestones {
		if e == m {
			return true
		}
	}
	return false
}

func recordUnlocks(tx *gorm.DB, goal *Goal, unlocks []progression.Unlock) ([]Achievement, error) {
	achievements := make([]Achievement, 0, len(unlocks))
	now := time.Now().In(time.UTC)

	for _, u := range unlocks {
		a := Achievement{
			UserID:      goal.UserID,
			GoalID:      goal.ID,
			Type:        u.Type,
			Milestone:   u.Key,
			Description: u.Description,
			Icon:        u.Icon,
			Unlocked:    true,
			UnlockedAt:  now,
		}

		if err := tx.Create(&a).Error; err != nil {
			return nil, err
		}

		achievements = append(achievements, a)
	}

	return achievements, nil
}

// ApplySuggestion deposits the suggested amount of the suggestion into the goal
// and marks the suggestion as applied. If the deposit is rejected, the
// suggestion stays unchanged.
func ApplySuggestion(userID, suggestionID, goalID uuid.UUID) (SavingSuggestion, DepositResult, error) {
	var suggestion SavingSuggestion
	var result DepositResult

	err := transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(OwnedBy(userID)).First(&suggestion, "id = ?", suggestionID).Error; err != nil {
			return err
		}

		if suggestion.Applied {
			return ErrSuggestionAlreadyApplied
		}

		var goal Goal
		if err := tx.Scopes(OwnedBy(userID)).First(&goal, "id = ?", goalID).Error; err != nil {
			return err
		}

		deposit := Deposit{
			Amount: suggestion.SuggestedAmount,
			Method: MethodFromSavedExpense,
			Note:   fmt.Sprintf("Saved on %s", suggestion.Kind),
		}

		achievements, err := addDeposit(tx, &goal, &deposit)
		if err != nil {
			return err
		}

		suggestion.Applied = true
		suggestion.Read = true
		if err := tx.Save(&suggestion).Error; err != nil {
			return err
		}

		result = DepositResult{Goal: goal, Deposit: deposit, Achievements: achievements}
		return nil
	})
	if err != nil {
		return SavingSuggestion{}, DepositResult{}, err
	}

	countDeposit(result.Deposit, result.Achievements)
	return suggestion, result, nil
}

func countDeposit(d Deposit, achievements []Achievement) {
	metrics.Deposits.WithLabelValues(string(d.Method)).Inc()
	countAchievements(achievements)
}

func countAchievements(achievements []Achievement) {
	for _, a := range achievements {
		metrics.Achievements.WithLabelValues(string(a.Type)).Inc()
	}
}
