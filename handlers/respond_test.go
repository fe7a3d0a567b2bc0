package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"towline/database/repository/outcome"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFor(outcome.OkNone))
	assert.Equal(t, http.StatusCreated, statusFor(outcome.OkCreated))
	assert.Equal(t, http.StatusOK, statusFor(outcome.OkUpdated))
	assert.Equal(t, http.StatusNotFound, statusFor(outcome.NotFoundNone))
	assert.Equal(t, http.StatusBadRequest, statusFor(outcome.ValidationErrorNone))
}

func TestRespondValidationCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respond(c, nil, outcome.ValidationErrorNone, &outcome.ValidationCause{
		Cause: "provider does not exist",
		Data:  "p-ghost",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "provider does not exist", body["error"])
	assert.Equal(t, "p-ghost", body["data"])
}

func TestRespondHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respond(c, nil, outcome.OkNone, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
