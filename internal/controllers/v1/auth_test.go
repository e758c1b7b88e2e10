package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/poupix/backend/internal/auth"
	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"register", "login", "logout"} {
		r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/auth/%s", path), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/auth/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAuthSession() {
	credentials := v1.Credentials{Email: "Ana@Example.com", Password: "correct horse"}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var registered v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &registered)
	suite.Assert().Equal("ana@example.com", registered.Data.User.Email)
	suite.Assert().NotEmpty(registered.Data.Token)
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), auth.CookieName)

	// The address is unique regardless of case
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{Email: "ANA@example.com", Password: "another password"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Email: "ana@example.com", Password: "correct horse"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var session v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &session)
	suite.Assert().Equal(registered.Data.User.ID, session.Data.User.ID)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", "", map[string]string{"Authorization": fmt.Sprintf("Bearer %s", session.Data.Token)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var me v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &me)
	suite.Assert().Equal(registered.Data.User.ID, me.Data.ID)

	// The session cookie authenticates as well
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "", map[string]string{"Cookie": fmt.Sprintf("%s=%s", auth.CookieName, session.Data.Token)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "Max-Age=0")
}

func (suite *TestSuiteStandard) TestAuthFails() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{Email: "bea@example.com", Password: "a secret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name        string
		path        string
		credentials any
		status      int
	}{
		{"Register short password", "register", v1.Credentials{Email: "carla@example.com", Password: "short"}, http.StatusBadRequest},
		{"Register invalid email", "register", v1.Credentials{Email: "carla", Password: "long enough"}, http.StatusBadRequest},
		{"Register no password", "register", v1.Credentials{Email: "carla@example.com"}, http.StatusBadRequest},
		{"Register broken body", "register", `{ "email": 3 }`, http.StatusBadRequest},
		{"Login wrong password", "login", v1.Credentials{Email: "bea@example.com", Password: "not the secret"}, http.StatusUnauthorized},
		{"Login unknown email", "login", v1.Credentials{Email: "nobody@example.com", Password: "a secret"}, http.StatusUnauthorized},
		{"Login no email", "login", v1.Credentials{Password: "a secret"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/auth/%s", tt.path), tt.credentials)
			test.AssertHTTPStatus(t, &r, tt.status)

			var session v1.SessionResponse
			test.DecodeResponse(t, &r, &session)
			assert.NotNil(t, session.Error)
			assert.Nil(t, session.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthTokenRejected() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"No token", map[string]string{}},
		{"Garbage token", map[string]string{"Authorization": "Bearer not-a-jwt"}},
		{"Wrong scheme", map[string]string{"Authorization": "Basic YW5hOnNlY3JldA=="}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/auth/me", "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}
