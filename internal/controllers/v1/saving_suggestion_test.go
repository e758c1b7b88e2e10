package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/advisor"
	"github.com/poupix/backend/internal/config"
	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/router"
	"github.com/poupix/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

// analyzeRequest posts to the analyze endpoint of a router using the advisor.
func analyzeRequest(t *testing.T, a *advisor.Advisor, headers map[string]string) httptest.ResponseRecorder {
	cfg, err := config.Load()
	require.Nil(t, err)

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err)
	defer teardown()

	router.AttachRoutes(r.Group("/"), cfg, a)

	req, err := http.NewRequest(http.MethodPost, "http://example.com/v1/saving-suggestions/analyze", bytes.NewBuffer(nil))
	require.Nil(t, err)

	for header, value := range headers {
		req.Header.Set(header, value)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return *recorder
}

func createTestSavingSuggestion(t *testing.T, headers map[string]string, s v1.SavingSuggestionEditable, expectedStatus ...int) v1.SavingSuggestionResponse {
	if s.Message == "" {
		s.Message = "You could save on delivery"
	}

	if s.SuggestedAmount.IsZero() {
		s.SuggestedAmount = decimal.NewFromInt(40)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/saving-suggestions", []v1.SavingSuggestionEditable{s}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var suggestion v1.SavingSuggestionCreateResponse
	test.DecodeResponse(t, &r, &suggestion)
	require.Len(t, suggestion.Data, 1)
	return suggestion.Data[0]
}

func createTestExpense(t *testing.T, headers map[string]string, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{e}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)
	require.Len(t, expense.Data, 1)
	return expense.Data[0]
}

func (suite *TestSuiteStandard) TestSavingSuggestionsOptions() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/saving-suggestions", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	suggestion := createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{})

	r = test.Request(suite.T(), http.MethodOptions, suggestion.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/apply", suggestion.Data.Links.Self), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/saving-suggestions/analyze", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSavingSuggestionsCreate() {
	headers := createTestUser(suite.T())

	suggestion := createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{Message: "  Cook at home  "})
	suite.Assert().Equal("Cook at home", suggestion.Data.Message)
	suite.Assert().Equal(models.SuggestionOther, suggestion.Data.Kind)
	suite.Assert().False(suggestion.Data.Date.IsZero())
	suite.Assert().False(suggestion.Data.Read)
	suite.Assert().False(suggestion.Data.Applied)
	suite.Assert().Nil(suggestion.Data.ExpenseID)

	expense := createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Food delivery", Amount: decimal.NewFromInt(120)})
	suggestion = createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{Kind: models.SuggestionDelivery, ExpenseID: &expense.Data.ID})
	suite.Require().NotNil(suggestion.Data.ExpenseID)
	suite.Assert().Equal(expense.Data.ID, *suggestion.Data.ExpenseID)

	r := test.Request(suite.T(), http.MethodGet, expense.Data.Links.Suggestions, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var suggestions v1.SavingSuggestionListResponse
	test.DecodeResponse(suite.T(), &r, &suggestions)
	suite.Assert().Len(suggestions.Data, 1)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsCreateFails() {
	headers := createTestUser(suite.T())
	missing := uuid.New()

	createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{Kind: "Gambling"}, http.StatusBadRequest)
	createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{SuggestedAmount: decimal.NewFromInt(-1)}, http.StatusBadRequest)
	createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{ExpenseID: &missing}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsUpdateDelete() {
	headers := createTestUser(suite.T())
	suggestion := createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{})

	r := test.Request(suite.T(), http.MethodPatch, suggestion.Data.Links.Self, map[string]any{"read": true}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SavingSuggestionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.Read)
	suite.Assert().Equal(suggestion.Data.Message, updated.Data.Message)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/saving-suggestions?read=false", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unread v1.SavingSuggestionListResponse
	test.DecodeResponse(suite.T(), &r, &unread)
	suite.Assert().Len(unread.Data, 0)

	r = test.Request(suite.T(), http.MethodDelete, suggestion.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, suggestion.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsApply() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)}})
	suggestion := createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{Kind: models.SuggestionDelivery, SuggestedAmount: decimal.NewFromInt(40)})
	apply := fmt.Sprintf("%s/apply", suggestion.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodPost, apply, v1.SavingSuggestionApply{}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, apply, v1.SavingSuggestionApply{GoalID: uuid.New()}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, apply, v1.SavingSuggestionApply{GoalID: goal.Data.ID}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var applied v1.ApplyResponse
	test.DecodeResponse(suite.T(), &r, &applied)
	suite.Assert().True(applied.Data.Suggestion.Applied)
	suite.Assert().True(applied.Data.Suggestion.Read)
	suite.Assert().Equal(models.MethodFromSavedExpense, applied.Data.Deposit.Method)
	suite.Assert().Equal("Saved on Delivery", applied.Data.Deposit.Note)
	suite.Assert().True(applied.Data.Deposit.Amount.Equal(decimal.NewFromInt(40)))
	suite.Assert().True(applied.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(40)))
	suite.Assert().NotEmpty(applied.Data.Achievements)

	// A suggestion can only be applied once
	r = test.Request(suite.T(), http.MethodPost, apply, v1.SavingSuggestionApply{GoalID: goal.Data.ID}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsApplyGoalReached() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{TargetAmount: decimal.NewFromInt(10)}})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(10)})
	suggestion := createTestSavingSuggestion(suite.T(), headers, v1.SavingSuggestionEditable{})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("%s/apply", suggestion.Data.Links.Self), v1.SavingSuggestionApply{GoalID: goal.Data.ID}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// The suggestion stays available
	r = test.Request(suite.T(), http.MethodGet, suggestion.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unchanged v1.SavingSuggestionResponse
	test.DecodeResponse(suite.T(), &r, &unchanged)
	suite.Assert().False(unchanged.Data.Applied)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsAnalyzeNotConfigured() {
	headers := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/saving-suggestions/analyze", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsAnalyze() {
	headers := createTestUser(suite.T())
	delivery := createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Food delivery", Amount: decimal.NewFromInt(300)})
	gym := createTestExpense(suite.T(), headers, v1.ExpenseEditable{Name: "Gym", Amount: decimal.NewFromInt(100)})

	answer, err := json.Marshal([]map[string]any{
		{"expense_id": delivery.Data.ID.String(), "kind": "Delivery", "message": "Order twice a week less", "amount": "120"},
		{"expense_id": gym.Data.ID.String(), "kind": "Sports", "message": "", "amount": "25.555"},
		{"expense_id": uuid.NewString(), "kind": "Other", "message": "Unknown expense", "amount": "10"},
		{"expense_id": gym.Data.ID.String(), "kind": "Other", "message": "More than the expense", "amount": "500"},
		{"expense_id": delivery.Data.ID.String(), "kind": "Delivery", "message": "Less than a cent", "amount": "0.004"},
	})
	suite.Require().Nil(err)

	r := analyzeRequest(suite.T(), advisor.NewWithGenerator(fakeGenerator{text: fmt.Sprintf("```json\n%s\n```", answer)}), headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var suggestions v1.SavingSuggestionListResponse
	test.DecodeResponse(suite.T(), &r, &suggestions)
	suite.Require().Len(suggestions.Data, 2)

	suite.Assert().Equal(models.SuggestionDelivery, suggestions.Data[0].Kind)
	suite.Assert().Equal("Order twice a week less", suggestions.Data[0].Message)
	suite.Assert().Equal(delivery.Data.ID, *suggestions.Data[0].ExpenseID)

	suite.Assert().Equal(models.SuggestionOther, suggestions.Data[1].Kind)
	suite.Assert().True(suggestions.Data[1].SuggestedAmount.Equal(decimal.RequireFromString("25.56")), "Amount is %s", suggestions.Data[1].SuggestedAmount)
	suite.Assert().Equal("You could save 25.56 on Gym", suggestions.Data[1].Message)
}

func (suite *TestSuiteStandard) TestSavingSuggestionsAnalyzeFails() {
	headers := createTestUser(suite.T())
	createTestExpense(suite.T(), headers, v1.ExpenseEditable{Amount: decimal.NewFromInt(50)})

	tests := []struct {
		name      string
		generator fakeGenerator
		status    int
	}{
		{"Unparseable", fakeGenerator{text: "I think you should spend less"}, http.StatusBadGateway},
		{"Empty", fakeGenerator{err: advisor.ErrEmptyResponse}, http.StatusBadGateway},
		{"API error", fakeGenerator{err: errors.New("quota exceeded")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := analyzeRequest(t, advisor.NewWithGenerator(tt.generator), headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var suggestions v1.SavingSuggestionListResponse
			test.DecodeResponse(t, &r, &suggestions)
			assert.NotNil(t, suggestions.Error)
		})
	}
}
