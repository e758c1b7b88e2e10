package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	"github.com/poupix/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDepositsOptions() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/deposits", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(100)}})
	deposit := createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(10)})

	r = test.Request(suite.T(), http.MethodOptions, deposit.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDepositsCreate() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})

	deposit := createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(150)})
	suite.Assert().Equal(models.DefaultDepositNote, deposit.Data.Note)
	suite.Assert().Equal(models.MethodManual, deposit.Data.Method)
	suite.Assert().False(deposit.Data.Date.IsZero())
	suite.Assert().Equal(goal.Data.Links.Self, deposit.Data.Links.Goal)

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.CurrentAmount.Equal(decimal.NewFromInt(150)), "Current amount is %s", updated.Data.CurrentAmount)
	suite.Assert().True(updated.Data.Progress.Equal(decimal.NewFromInt(15)), "Progress is %s", updated.Data.Progress)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Achievements, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var achievements v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &r, &achievements)
	suite.Assert().ElementsMatch([]progression.AchievementType{progression.FirstDeposit, progression.ValueReached}, achievementTypes(achievements.Data))

	// The first deposit achievement is only unlocked once per goal
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(1)})

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s&type=FirstDeposit", goal.Data.Links.Achievements), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &achievements)
	suite.Assert().Len(achievements.Data, 1)
}

func (suite *TestSuiteStandard) TestDepositsFromIncome() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromInt(1000)}})

	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(200), FromIncome: true, Method: models.MethodPix})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Require().Len(expenses.Data, 1)
	suite.Assert().Equal("Emergency fund", expenses.Data[0].Name)
	suite.Assert().True(expenses.Data[0].Amount.Equal(decimal.NewFromInt(200)))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/deposits?fromIncome=true&method=Pix", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var deposits v1.DepositListResponse
	test.DecodeResponse(suite.T(), &r, &deposits)
	suite.Assert().Len(deposits.Data, 1)
}

func (suite *TestSuiteStandard) TestDepositsCreateFails() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(100)}})
	met := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(10)}})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: met.Data.ID, Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name    string
		deposit v1.DepositEditable
		status  int
	}{
		{"No goal", v1.DepositEditable{Amount: decimal.NewFromInt(5)}, http.StatusBadRequest},
		{"Goal does not exist", v1.DepositEditable{GoalID: uuid.New(), Amount: decimal.NewFromInt(5)}, http.StatusNotFound},
		{"Zero amount", v1.DepositEditable{GoalID: goal.Data.ID}, http.StatusBadRequest},
		{"Negative amount", v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest},
		{"Unknown method", v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(5), Method: "Cash"}, http.StatusBadRequest},
		{"Challenge method", v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(5), Method: models.MethodFromChallenge}, http.StatusBadRequest},
		{"Goal reached", v1.DepositEditable{GoalID: met.Data.ID, Amount: decimal.NewFromInt(5)}, http.StatusConflict},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/deposits", []v1.DepositEditable{tt.deposit}, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var deposit v1.DepositCreateResponse
			test.DecodeResponse(t, &r, &deposit)
			assert.NotNil(t, deposit.Data[0].Error)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/deposits", `[{ "amount": "lots" }]`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Failed deposits do not change the goal
	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unchanged v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &unchanged)
	suite.Assert().True(unchanged.Data.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestDepositsGet() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})
	other := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})

	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(5), Note: "Birthday money"})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(5), Method: models.MethodTransfer})
	deposit := createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: other.Data.ID, Amount: decimal.NewFromInt(5)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Goal", fmt.Sprintf("goal=%s", goal.Data.ID), 2},
		{"Method", "method=Transfer", 1},
		{"Note", "note=birthday", 1},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/deposits?%s", tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var deposits v1.DepositListResponse
			test.DecodeResponse(t, &r, &deposits)
			assert.Len(t, deposits.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, deposit.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, deposit.Data.Links.Self, "", createTestUser(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAchievementsGet() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(400)}})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(200)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/achievements?type=PercentOfGoal", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var achievements v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &r, &achievements)
	suite.Require().Len(achievements.Data, 2)

	milestones := []string{achievements.Data[0].Milestone, achievements.Data[1].Milestone}
	suite.Assert().ElementsMatch([]string{"25", "50"}, milestones)

	for _, a := range achievements.Data {
		suite.Assert().True(a.Unlocked)
		suite.Assert().NotEmpty(a.Description)
	}

	r = test.Request(suite.T(), http.MethodGet, achievements.Data[0].Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodOptions, achievements.Data[0].Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
