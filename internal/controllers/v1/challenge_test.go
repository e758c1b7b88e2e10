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

func startTestChallenge(t *testing.T, headers map[string]string, goal v1.GoalResponse, c v1.ChallengeEditable, expectedStatus ...int) v1.ChallengeResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, goal.Data.Links.Challenge, c, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var challenge v1.ChallengeResponse
	test.DecodeResponse(t, &r, &challenge)
	return challenge
}

func completeTestPeriod(t *testing.T, headers map[string]string, goal v1.GoalResponse, expectedStatus ...int) v1.PeriodResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("%s/complete-period", goal.Data.Links.Challenge), "", headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var period v1.PeriodResponse
	test.DecodeResponse(t, &r, &period)
	return period
}

func achievementTypes(achievements []v1.Achievement) []progression.AchievementType {
	types := make([]progression.AchievementType, 0, len(achievements))
	for _, a := range achievements {
		types = append(types, a.Type)
	}
	return types
}

func (suite *TestSuiteStandard) TestChallengesOptions() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/challenges", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{})

	r = test.Request(suite.T(), http.MethodOptions, goal.Data.Links.Challenge, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/complete-period", goal.Data.Links.Challenge), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestChallengesWeeklyLifecycle() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})

	challenge := startTestChallenge(suite.T(), headers, goal, v1.ChallengeEditable{
		Type:           progression.FixedWeekly,
		InitialValue:   decimal.NewFromInt(50),
		IncrementValue: decimal.NewFromInt(3),
		DurationDays:   10,
	})
	suite.Assert().True(challenge.Data.ExpectedTotal.Equal(decimal.NewFromInt(100)), "Expected total is %s", challenge.Data.ExpectedTotal)
	suite.Assert().True(challenge.Data.IncrementValue.IsZero(), "Increment is only kept for DailyIncrement")

	// Only one challenge can run at a time
	startTestChallenge(suite.T(), headers, goal, v1.ChallengeEditable{
		Type:         progression.FixedDaily,
		InitialValue: decimal.NewFromInt(5),
		DurationDays: 5,
	}, http.StatusConflict)

	period := completeTestPeriod(suite.T(), headers, goal)
	suite.Assert().Equal(7, period.Data.Challenge.ElapsedDays)
	suite.Assert().True(period.Data.Challenge.Active)
	suite.Assert().True(period.Data.Deposit.Amount.Equal(decimal.NewFromInt(50)))
	suite.Assert().Equal(models.MethodFromChallenge, period.Data.Deposit.Method)
	suite.Assert().True(period.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(50)))
	suite.Assert().Contains(achievementTypes(period.Data.Achievements), progression.FirstDeposit)

	// The last week is clamped to the duration
	period = completeTestPeriod(suite.T(), headers, goal)
	suite.Assert().Equal(10, period.Data.Challenge.ElapsedDays)
	suite.Assert().False(period.Data.Challenge.Active)
	suite.Assert().NotNil(period.Data.Challenge.EndDate)
	suite.Assert().Nil(period.Data.Goal.ActiveChallengeID)
	suite.Assert().True(period.Data.Challenge.Saved.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(period.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(100)))
	suite.Assert().Contains(achievementTypes(period.Data.Achievements), progression.ChallengeCompleted)
	suite.Assert().Contains(achievementTypes(period.Data.Achievements), progression.ValueReached)

	completeTestPeriod(suite.T(), headers, goal, http.StatusConflict)

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Challenge, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("%s/finalize", goal.Data.Links.Challenge), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// The finished challenge is still listed
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/challenges?goal=%s&active=false", goal.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var challenges v1.ChallengeListResponse
	test.DecodeResponse(suite.T(), &r, &challenges)
	suite.Require().Len(challenges.Data, 1)
	suite.Assert().Equal(challenge.Data.ID, challenges.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, challenges.Data[0].Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestChallengesDailyIncrement() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})

	challenge := startTestChallenge(suite.T(), headers, goal, v1.ChallengeEditable{
		Type:           progression.DailyIncrement,
		InitialValue:   decimal.NewFromInt(10),
		IncrementValue: decimal.NewFromInt(5),
		DurationDays:   5,
	})

	// 10 + 15 + 20 + 25 + 30
	suite.Assert().True(challenge.Data.ExpectedTotal.Equal(decimal.NewFromInt(100)), "Expected total is %s", challenge.Data.ExpectedTotal)

	values := []int64{10, 15, 20}
	for i, v := range values {
		period := completeTestPeriod(suite.T(), headers, goal)
		suite.Assert().Equal(i+1, period.Data.Challenge.ElapsedDays)
		suite.Assert().True(period.Data.Deposit.Amount.Equal(decimal.NewFromInt(v)), "Deposit %d is %s", i+1, period.Data.Deposit.Amount)
	}

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Challenge, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var active v1.ChallengeResponse
	test.DecodeResponse(suite.T(), &r, &active)
	suite.Assert().True(active.Data.Saved.Equal(decimal.NewFromInt(45)), "Saved is %s", active.Data.Saved)
}

func (suite *TestSuiteStandard) TestChallengesStartInvalid() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{})

	tests := []struct {
		name      string
		challenge v1.ChallengeEditable
	}{
		{"Unknown type", v1.ChallengeEditable{Type: "Monthly", InitialValue: decimal.NewFromInt(5), DurationDays: 10}},
		{"Zero initial value", v1.ChallengeEditable{Type: progression.FixedDaily, DurationDays: 10}},
		{"Negative duration", v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(5), DurationDays: -1}},
		{"Increment missing", v1.ChallengeEditable{Type: progression.DailyIncrement, InitialValue: decimal.NewFromInt(5), DurationDays: 10}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			startTestChallenge(t, headers, goal, tt.challenge, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/goals/%s/challenge", uuid.New()), v1.ChallengeEditable{
		Type:         progression.FixedDaily,
		InitialValue: decimal.NewFromInt(5),
		DurationDays: 10,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestChallengesFinalize() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{
		GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)},
		Challenge:    &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(5), DurationDays: 30},
	})

	completeTestPeriod(suite.T(), headers, goal)

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("%s/finalize", goal.Data.Links.Challenge), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var finalized v1.FinalizeResponse
	test.DecodeResponse(suite.T(), &r, &finalized)
	suite.Assert().False(finalized.Data.Challenge.Active)
	suite.Assert().Equal(1, finalized.Data.Challenge.ElapsedDays)
	suite.Assert().True(finalized.Data.Challenge.Saved.Equal(decimal.NewFromInt(5)))
	suite.Assert().Equal([]progression.AchievementType{progression.ChallengeCompleted}, achievementTypes(finalized.Data.Achievements))

	// A new challenge can be started after the previous one ended
	startTestChallenge(suite.T(), headers, goal, v1.ChallengeEditable{
		Type:         progression.FixedWeekly,
		InitialValue: decimal.NewFromInt(20),
		DurationDays: 28,
	})
}

func (suite *TestSuiteStandard) TestChallengesStartUnlocksAchievement() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})

	challenge := startTestChallenge(suite.T(), headers, goal, v1.ChallengeEditable{
		Type:         progression.FixedDaily,
		InitialValue: decimal.NewFromInt(5),
		DurationDays: 30,
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s&type=ChallengeStarted", goal.Data.Links.Achievements), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var achievements v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &r, &achievements)
	suite.Require().Len(achievements.Data, 1)
	suite.Assert().Equal(challenge.Data.ID.String(), achievements.Data[0].Milestone)
	suite.Assert().True(achievements.Data[0].Unlocked)
}

func (suite *TestSuiteStandard) TestChallengesContinueAfterTargetReached() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{
		GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(10)},
		Challenge:    &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(10), DurationDays: 3},
	})

	period := completeTestPeriod(suite.T(), headers, goal)
	suite.Assert().True(period.Data.Goal.Progress.Equal(decimal.NewFromInt(100)), "Progress is %s", period.Data.Goal.Progress)

	// Challenge deposits are accepted for goals that reached their target
	period = completeTestPeriod(suite.T(), headers, goal)
	suite.Assert().True(period.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(20)))

	// Manual deposits are not
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(1)}, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestChallengesOtherUser() {
	owner := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), owner, v1.GoalCreate{
		Challenge: &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(10), DurationDays: 3},
	})

	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/challenges/%s", *goal.Data.ActiveChallengeID), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	completeTestPeriod(suite.T(), headers, goal, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/challenges", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var challenges v1.ChallengeListResponse
	test.DecodeResponse(suite.T(), &r, &challenges)
	assert.Len(suite.T(), challenges.Data, 0)
}
