package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	"github.com/poupix/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func getTestNotifications(t *testing.T, headers map[string]string) v1.Notifications {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/notifications", "", headers)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var notifications v1.NotificationsResponse
	test.DecodeResponse(t, &r, &notifications)
	require.NotNil(t, notifications.Data)
	return *notifications.Data
}

func acknowledgeTestNotification(t *testing.T, headers map[string]string, ack v1.AcknowledgementEditable, expectedStatus ...int) {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/notifications/acknowledge", ack, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)
}

func (suite *TestSuiteStandard) TestNotificationsOptions() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/notifications", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/notifications/acknowledge", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestNotificationsEmpty() {
	n := getTestNotifications(suite.T(), createTestUser(suite.T()))
	suite.Assert().Len(n.Achievements, 0)
	suite.Assert().Len(n.Rewards, 0)
}

func (suite *TestSuiteStandard) TestNotificationsAcknowledge() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{
		GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)},
		Challenge:    &v1.ChallengeEditable{Type: progression.FixedDaily, InitialValue: decimal.NewFromInt(10), DurationDays: 3},
	})
	completeTestPeriod(suite.T(), headers, goal)

	n := getTestNotifications(suite.T(), headers)
	suite.Require().Len(n.Achievements, 2)
	suite.Assert().ElementsMatch([]progression.AchievementType{progression.ChallengeStarted, progression.FirstDeposit}, achievementTypes(n.Achievements))
	suite.Require().Len(n.Rewards, 1)
	suite.Assert().Equal(models.RewardKey(goal.Data.ID, 1), n.Rewards[0].Key)
	suite.Assert().True(n.Rewards[0].Saved.Equal(decimal.NewFromInt(10)))
	suite.Assert().False(n.Rewards[0].Completed)

	for _, a := range n.Achievements {
		acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: models.NotificationAchievement, Key: a.ID.String()})
	}
	acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: models.NotificationChallengeReward, Key: n.Rewards[0].Key})

	// Acknowledging twice has no effect
	acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: models.NotificationChallengeReward, Key: n.Rewards[0].Key})

	n = getTestNotifications(suite.T(), headers)
	suite.Assert().Len(n.Achievements, 0)
	suite.Assert().Len(n.Rewards, 0)

	// The next period is a new reward
	completeTestPeriod(suite.T(), headers, goal)

	n = getTestNotifications(suite.T(), headers)
	suite.Require().Len(n.Rewards, 1)
	suite.Assert().Equal(models.RewardKey(goal.Data.ID, 2), n.Rewards[0].Key)
}

func (suite *TestSuiteStandard) TestNotificationsAcknowledgeFails() {
	headers := createTestUser(suite.T())

	acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: "Badge", Key: "something"}, http.StatusBadRequest)
	acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: models.NotificationAchievement}, http.StatusBadRequest)
	acknowledgeTestNotification(suite.T(), headers, v1.AcknowledgementEditable{Kind: models.NotificationAchievement, Key: "   "}, http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/notifications/acknowledge", `{ "kind": 1 }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
