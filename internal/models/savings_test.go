package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateGoalDefaults() {
	goal := suite.createTestGoal(models.Goal{Name: "  Trip to Lisbon ", TargetAmount: decimal.NewFromFloat(3000)})

	assert.Equal(suite.T(), "Trip to Lisbon", goal.Name)
	assert.Equal(suite.T(), models.DefaultGoalIcon, goal.Icon)
	assert.Equal(suite.T(), models.DefaultGoalColor, goal.Color)
	assert.Equal(suite.T(), models.CategoryOther, goal.Category)
	assert.True(suite.T(), goal.CurrentAmount.IsZero())
	assert.False(suite.T(), goal.StartDate.IsZero())
	assert.Nil(suite.T(), goal.ActiveChallengeID)
}

func (suite *TestSuiteStandard) TestCreateGoalInvalid() {
	userID := suite.createTestUser("").ID

	tests := []struct {
		name string
		goal models.Goal
		err  error
	}{
		{"Empty name", models.Goal{UserID: userID, Name: " "}, models.ErrGoalNameEmpty},
		{"Negative target", models.Goal{UserID: userID, Name: "Car", TargetAmount: decimal.NewFromFloat(-1)}, models.ErrGoalTargetNegative},
		{"Unknown category", models.Goal{UserID: userID, Name: "Car", Category: "Yacht"}, models.ErrGoalCategoryUnknown},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.CreateGoal(&tt.goal, nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateGoalWithChallenge() {
	userID := suite.createTestUser("").ID
	goal := models.Goal{UserID: userID, Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(1000)}

	challenge, err := models.CreateGoal(&goal, &progression.Definition{
		Type:           progression.FixedDaily,
		InitialValue:   decimal.NewFromFloat(10),
		IncrementValue: decimal.NewFromFloat(5),
		DurationDays:   30,
	})
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), challenge)

	assert.True(suite.T(), challenge.Active)
	assert.True(suite.T(), challenge.IncrementValue.IsZero(), "increment must be dropped for fixed challenges")
	assert.True(suite.T(), decimal.NewFromFloat(300).Equal(challenge.ExpectedTotal))
	require.NotNil(suite.T(), goal.ActiveChallengeID)
	assert.Equal(suite.T(), challenge.ID, *goal.ActiveChallengeID)

	active, err := models.ActiveChallenge(userID, goal.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), challenge.ID, active.ID)

	var started models.Achievement
	require.Nil(suite.T(), models.DB.First(&started, "goal_id = ? AND type = ?", goal.ID, progression.ChallengeStarted).Error)
	assert.Equal(suite.T(), challenge.ID.String(), started.Milestone)
}

func (suite *TestSuiteStandard) TestCreateGoalWithInvalidChallenge() {
	userID := suite.createTestUser("").ID
	goal := models.Goal{UserID: userID, Name: "Laptop"}

	_, err := models.CreateGoal(&goal, &progression.Definition{Type: progression.DailyIncrement, InitialValue: decimal.NewFromFloat(1), DurationDays: 10})
	assert.ErrorIs(suite.T(), err, progression.ErrIncrementValueNotPositive)

	var count int64
	models.DB.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "the goal must not be created when the challenge is invalid")
}

func (suite *TestSuiteStandard) TestStartChallengeTwice() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(500)})
	definition := progression.Definition{Type: progression.FixedDaily, InitialValue: decimal.NewFromFloat(5), DurationDays: 10}

	_, err := models.StartChallenge(goal.UserID, goal.ID, definition)
	require.Nil(suite.T(), err)

	_, err = models.StartChallenge(goal.UserID, goal.ID, definition)
	assert.ErrorIs(suite.T(), err, models.ErrChallengeAlreadyExist)
	assert.ErrorIs(suite.T(), err, progression.ErrDomain)

	_, _, err = models.FinalizeChallenge(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)

	_, err = models.StartChallenge(goal.UserID, goal.ID, definition)
	assert.Nil(suite.T(), err, "a new challenge can be started after the previous one was finalized")
}

func (suite *TestSuiteStandard) TestStartChallengeUnlocksAchievement() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(500)})
	definition := progression.Definition{Type: progression.FixedWeekly, InitialValue: decimal.NewFromFloat(25), DurationDays: 28}

	first, err := models.StartChallenge(goal.UserID, goal.ID, definition)
	require.Nil(suite.T(), err)

	var started []models.Achievement
	require.Nil(suite.T(), models.DB.Where("goal_id = ? AND type = ?", goal.ID, progression.ChallengeStarted).Find(&started).Error)
	require.Len(suite.T(), started, 1)
	assert.Equal(suite.T(), first.ID.String(), started[0].Milestone)
	assert.Contains(suite.T(), started[0].Description, "FixedWeekly")

	_, _, err = models.FinalizeChallenge(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)

	// Every challenge of a goal has its own badge
	second, err := models.StartChallenge(goal.UserID, goal.ID, definition)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), models.DB.Where("goal_id = ? AND type = ?", goal.ID, progression.ChallengeStarted).Find(&started).Error)
	milestones := make([]string, 0, len(started))
	for _, a := range started {
		milestones = append(milestones, a.Milestone)
	}
	assert.ElementsMatch(suite.T(), []string{first.ID.String(), second.ID.String()}, milestones)

	// A rejected challenge unlocks nothing
	_, err = models.StartChallenge(goal.UserID, goal.ID, definition)
	require.ErrorIs(suite.T(), err, models.ErrChallengeAlreadyExist)

	var count int64
	models.DB.Model(&models.Achievement{}).Where("goal_id = ? AND type = ?", goal.ID, progression.ChallengeStarted).Count(&count)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestStartChallengeOtherUser() {
	goal := suite.createTestGoal(models.Goal{})
	other := suite.createTestUser("")

	_, err := models.StartChallenge(other.ID, goal.ID, progression.Definition{Type: progression.FixedDaily, InitialValue: decimal.NewFromFloat(5), DurationDays: 10})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestWeeklyChallengeCompletes() {
	goal := suite.createTestGoal(models.Goal{Name: "Bike", TargetAmount: decimal.NewFromFloat(1000)})
	_, err := models.StartChallenge(goal.UserID, goal.ID, progression.Definition{Type: progression.FixedWeekly, InitialValue: decimal.NewFromFloat(50), DurationDays: 10})
	require.Nil(suite.T(), err)

	first, err := models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 7, first.Challenge.ElapsedDays)
	assert.True(suite.T(), first.Challenge.Active)
	assert.Equal(suite.T(), models.MethodFromChallenge, first.Deposit.Method)
	assert.Equal(suite.T(), "Challenge deposit, week 1", first.Deposit.Note)
	assert.True(suite.T(), decimal.NewFromFloat(50).Equal(first.Goal.CurrentAmount))
	require.Len(suite.T(), first.Achievements, 1)
	assert.Equal(suite.T(), progression.FirstDeposit, first.Achievements[0].Type)

	second, err := models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 10, second.Challenge.ElapsedDays, "weekly challenges are clamped to their duration")
	assert.False(suite.T(), second.Challenge.Active)
	assert.NotNil(suite.T(), second.Challenge.EndDate)
	assert.Nil(suite.T(), second.Goal.ActiveChallengeID)
	assert.True(suite.T(), decimal.NewFromFloat(100).Equal(second.Goal.CurrentAmount))

	types := make([]progression.AchievementType, 0, len(second.Achievements))
	for _, a := range second.Achievements {
		types = append(types, a.Type)
	}
	assert.Equal(suite.T(), []progression.AchievementType{progression.ValueReached, progression.ChallengeCompleted}, types)
	assert.Equal(suite.T(), second.Challenge.ID.String(), second.Achievements[1].Milestone)

	_, err = models.CompleteChallengePeriod(goal.UserID, goal.ID)
	assert.ErrorIs(suite.T(), err, models.ErrNoActiveChallenge)
}

func (suite *TestSuiteStandard) TestDailyIncrementChallenge() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(1000)})
	_, err := models.StartChallenge(goal.UserID, goal.ID, progression.Definition{
		Type:           progression.DailyIncrement,
		InitialValue:   decimal.NewFromFloat(1),
		IncrementValue: decimal.NewFromFloat(1),
		DurationDays:   3,
	})
	require.Nil(suite.T(), err)

	var result models.PeriodResult
	for range 3 {
		result, err = models.CompleteChallengePeriod(goal.UserID, goal.ID)
		require.Nil(suite.T(), err)
	}

	assert.True(suite.T(), decimal.NewFromFloat(3).Equal(result.Deposit.Amount))
	assert.Equal(suite.T(), "Challenge deposit, day 3", result.Deposit.Note)
	assert.True(suite.T(), decimal.NewFromFloat(6).Equal(result.Goal.CurrentAmount))
	assert.True(suite.T(), result.Challenge.ExpectedTotal.Equal(result.Goal.CurrentAmount))
}

func (suite *TestSuiteStandard) TestCompleteWithoutChallenge() {
	goal := suite.createTestGoal(models.Goal{})

	_, err := models.CompleteChallengePeriod(goal.UserID, goal.ID)
	assert.ErrorIs(suite.T(), err, models.ErrNoActiveChallenge)

	_, _, err = models.FinalizeChallenge(goal.UserID, goal.ID)
	assert.ErrorIs(suite.T(), err, models.ErrNoActiveChallenge)
}

func (suite *TestSuiteStandard) TestFinalizeChallenge() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(1000)})
	started, err := models.StartChallenge(goal.UserID, goal.ID, progression.Definition{Type: progression.FixedDaily, InitialValue: decimal.NewFromFloat(20), DurationDays: 30})
	require.Nil(suite.T(), err)

	_, err = models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)

	challenge, achievements, err := models.FinalizeChallenge(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), started.ID, challenge.ID)
	assert.False(suite.T(), challenge.Active)
	assert.Equal(suite.T(), 1, challenge.ElapsedDays)
	require.Len(suite.T(), achievements, 1)
	assert.Equal(suite.T(), progression.ChallengeCompleted, achievements[0].Type)
	assert.Contains(suite.T(), achievements[0].Description, "FixedDaily")

	var reloaded models.Goal
	require.Nil(suite.T(), models.DB.First(&reloaded, "id = ?", goal.ID).Error)
	assert.Nil(suite.T(), reloaded.ActiveChallengeID)
}

func (suite *TestSuiteStandard) TestDepositRejectedWhenGoalMet() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(100)})

	result, err := models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(100)})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultDepositNote, result.Deposit.Note)
	assert.Equal(suite.T(), models.MethodManual, result.Deposit.Method)
	assert.True(suite.T(), result.Goal.Progress().Equal(decimal.NewFromInt(100)))

	// first deposit, 100 saved, 25%, 50%, 75% and 100% of the goal
	assert.Len(suite.T(), result.Achievements, 6)

	_, err = models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(1)})
	assert.ErrorIs(suite.T(), err, progression.ErrGoalAlreadyMet)

	var count int64
	models.DB.Model(&models.Deposit{}).Where("goal_id = ?", goal.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestChallengeDepositAfterGoalMet() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(10)})
	_, err := models.StartChallenge(goal.UserID, goal.ID, progression.Definition{Type: progression.FixedDaily, InitialValue: decimal.NewFromFloat(10), DurationDays: 3})
	require.Nil(suite.T(), err)

	_, err = models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)

	result, err := models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err, "challenge deposits are accepted after the goal is met")
	assert.True(suite.T(), decimal.NewFromFloat(20).Equal(result.Goal.CurrentAmount))
}

func (suite *TestSuiteStandard) TestDepositInvalid() {
	goal := suite.createTestGoal(models.Goal{})

	tests := []struct {
		name    string
		deposit models.Deposit
		err     error
	}{
		{"Zero amount", models.Deposit{GoalID: goal.ID}, models.ErrDepositAmountNotPositive},
		{"Negative amount", models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(-5)}, models.ErrDepositAmountNotPositive},
		{"Unknown method", models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(5), Method: "Cheque"}, models.ErrDepositMethodUnknown},
		{"Unknown goal", models.Deposit{GoalID: uuid.New(), Amount: decimal.NewFromFloat(5)}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.AddDeposit(goal.UserID, tt.deposit)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestDepositFromIncome() {
	goal := suite.createTestGoal(models.Goal{Name: "Vacation", TargetAmount: decimal.NewFromFloat(1000)})

	_, err := models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(150), FromIncome: true, Method: models.MethodPix})
	require.Nil(suite.T(), err)

	var expenses []models.Expense
	require.Nil(suite.T(), models.DB.Where("user_id = ?", goal.UserID).Find(&expenses).Error)
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), "Vacation", expenses[0].Name)
	assert.True(suite.T(), decimal.NewFromFloat(150).Equal(expenses[0].Amount))
}

func (suite *TestSuiteStandard) TestAchievementsUnlockOnce() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(10000)})

	first, err := models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(120)})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), first.Achievements, 2)

	second, err := models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(10)})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), second.Achievements, 0)

	// Unlocking a milestone twice is rejected by the database
	duplicate := first.Achievements[0]
	duplicate.ID = uuid.Nil
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrAchievementNotUnique)
}

func (suite *TestSuiteStandard) TestDeleteGoalDeletesHistory() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(1000)})
	_, err := models.StartChallenge(goal.UserID, goal.ID, progression.Definition{Type: progression.FixedDaily, InitialValue: decimal.NewFromFloat(10), DurationDays: 5})
	require.Nil(suite.T(), err)

	_, err = models.CompleteChallengePeriod(goal.UserID, goal.ID)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), models.DB.Delete(&goal).Error)

	for _, m := range []any{&models.Deposit{}, &models.Achievement{}, &models.Challenge{}} {
		var count int64
		models.DB.Model(m).Where("goal_id = ?", goal.ID).Count(&count)
		assert.Equal(suite.T(), int64(0), count, "%T must be deleted with the goal", m)
	}
}
