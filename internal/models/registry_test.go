package models_test

import (
	"encoding/json"

	"github.com/poupix/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	goal := suite.createTestGoal(models.Goal{Name: "House"})
	_ = suite.createTestGoal(models.Goal{Name: "Other user's goal"})

	raw, err := models.Goal{}.Export(goal.UserID)
	require.Nil(suite.T(), err)

	var goals []models.Goal
	require.Nil(suite.T(), json.Unmarshal(raw, &goals))
	require.Len(suite.T(), goals, 1)
	assert.Equal(suite.T(), "House", goals[0].Name)

	for _, model := range models.Registry {
		_, err := model.Export(goal.UserID)
		assert.Nil(suite.T(), err, "exporting %T failed", model)
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(100)})
	_, err := models.AddDeposit(goal.UserID, models.Deposit{GoalID: goal.ID, Amount: decimal.NewFromFloat(5)})
	require.Nil(suite.T(), err)
	_ = suite.createTestDebt(models.Debt{UserID: goal.UserID, Name: "Loan", TotalAmount: decimal.NewFromFloat(50), InstallmentCount: 2})

	untouched := suite.createTestGoal(models.Goal{})

	require.Nil(suite.T(), models.Cleanup(goal.UserID))

	for _, model := range models.Registry {
		var count int64
		models.DB.Unscoped().Model(&model).Where("user_id = ?", goal.UserID).Count(&count)
		assert.Equal(suite.T(), int64(0), count, "%T was not deleted", model)
	}

	var user models.User
	assert.Nil(suite.T(), models.DB.First(&user, "id = ?", goal.UserID).Error, "the user is kept")

	var reloaded models.Goal
	assert.Nil(suite.T(), models.DB.First(&reloaded, "id = ?", untouched.ID).Error, "resources of other users are kept")
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	userID := suite.createTestUser("").ID
	suite.CloseDB()

	err := models.Cleanup(userID)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
