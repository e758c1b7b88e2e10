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

func (suite *TestSuiteStandard) TestGoalsUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{})

	r = test.Request(suite.T(), http.MethodOptions, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals/NotParseableAsUUID", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsCreateDefaults() {
	headers := createTestUser(suite.T())

	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{
		Name:         "Trip to Lisbon",
		TargetAmount: decimal.NewFromInt(5000),
	}})

	suite.Assert().Equal("Trip to Lisbon", goal.Data.Name)
	suite.Assert().Equal(models.DefaultGoalIcon, goal.Data.Icon)
	suite.Assert().Equal(models.DefaultGoalColor, goal.Data.Color)
	suite.Assert().Equal(models.CategoryOther, goal.Data.Category)
	suite.Assert().True(goal.Data.CurrentAmount.IsZero())
	suite.Assert().False(goal.Data.StartDate.IsZero())
	suite.Assert().Nil(goal.Data.ActiveChallengeID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID), goal.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/deposits?goal=%s", goal.Data.ID), goal.Data.Links.Deposits)
}

func (suite *TestSuiteStandard) TestGoalsCreateWithChallenge() {
	headers := createTestUser(suite.T())

	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{
		GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)},
		Challenge: &v1.ChallengeEditable{
			Type:         progression.FixedDaily,
			InitialValue: decimal.NewFromInt(10),
			DurationDays: 30,
		},
	})
	suite.Require().NotNil(goal.Data.ActiveChallengeID)

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Challenge, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var challenge v1.ChallengeResponse
	test.DecodeResponse(suite.T(), &r, &challenge)
	suite.Assert().Equal(*goal.Data.ActiveChallengeID, challenge.Data.ID)
	suite.Assert().True(challenge.Data.Active)
	suite.Assert().Equal(0, challenge.Data.ElapsedDays)
	suite.Assert().True(challenge.Data.ExpectedTotal.Equal(decimal.NewFromInt(300)), "Expected total is %s", challenge.Data.ExpectedTotal)
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	headers := createTestUser(suite.T())

	tests := []struct {
		name string
		goal v1.GoalCreate
	}{
		{"Negative target", v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(-5)}}},
		{"Unknown category", v1.GoalCreate{GoalEditable: v1.GoalEditable{Category: "Yacht"}}},
		{"Challenge without duration", v1.GoalCreate{Challenge: &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(5)}}},
		{"Unknown challenge type", v1.GoalCreate{Challenge: &v1.ChallengeEditable{Type: "Monthly", InitialValue: decimal.NewFromInt(5), DurationDays: 10}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestGoal(t, headers, tt.goal, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", `[{ "name": 2 }]`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	headers := createTestUser(suite.T())

	createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Trip to Lisbon", Note: "Two weeks in May", Category: models.CategoryTravel}})
	createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "New laptop", Category: models.CategoryPurchase}})
	createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Rainy days", Note: "For the trip home", Category: models.CategoryEmergencyFund}})

	// Goals of other users are never returned
	createTestGoal(suite.T(), createTestUser(suite.T()), v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Trip to Rome", Category: models.CategoryTravel}})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Category", "category=Travel", 1},
		{"Name", "name=New%20laptop", 1},
		{"Fuzzy name", "name=trip", 1},
		{"Note", "note=weeks", 1},
		{"Search", "search=trip", 2},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No match", "search=yacht", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var goals v1.GoalListResponse
			test.DecodeResponse(t, &r, &goals)
			assert.Len(t, goals.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsOtherUser() {
	goal := createTestGoal(suite.T(), createTestUser(suite.T()), v1.GoalCreate{})
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"name": "Mine now"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{
		Name:         "Bike",
		Note:         "A red one",
		TargetAmount: decimal.NewFromInt(800),
	}})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"name": "Racing bike",
		"note": "",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Racing bike", updated.Data.Name)
	suite.Assert().Equal("", updated.Data.Note)
	suite.Assert().True(updated.Data.TargetAmount.Equal(decimal.NewFromInt(800)))

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"targetAmount": -1}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, `{ "name": 2 }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{
		GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(100)},
		Challenge:    &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(5), DurationDays: 10},
	})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deposits, achievements and challenges are removed with the goal
	for _, path := range []string{"deposits", "achievements", "challenges"} {
		r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/%s?goal=%s", path, goal.Data.ID), "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var list struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Len(list.Data, 0, "%s were not deleted", path)
	}
}

func (suite *TestSuiteStandard) TestGoalsDatabaseClosed() {
	headers := createTestUser(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
