package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/config"
	"github.com/poupix/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The body can be a string, which is sent as is, or anything else, which
// is marshalled to JSON.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	if body == nil {
		byteBuffer = new(bytes.Buffer)
	} else if reflect.TypeOf(body).Kind() == reflect.String {
		byteBuffer = bytes.NewBufferString(body.(string))
	} else {
		b, err := json.Marshal(body)
		require.Nil(t, err, "Marshalling the request body failed")
		byteBuffer = bytes.NewBuffer(b)
	}

	cfg, err := config.Load()
	require.Nil(t, err, "Loading the configuration failed")

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err, "Router configuration failed")
	defer teardown()

	router.AttachRoutes(r.Group("/"), cfg, nil)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, url, byteBuffer)
	require.Nil(t, err)

	for _, h := range headers {
		for header, value := range h {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AuthHeader returns the headers authenticating a request as the user.
func AuthHeader(t *testing.T, userID uuid.UUID) map[string]string {
	cfg, err := config.Load()
	require.Nil(t, err, "Loading the configuration failed")

	token, err := auth.New(cfg.Auth).Issue(userID)
	require.Nil(t, err, "Issuing a token failed")

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	assert.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
