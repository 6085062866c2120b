package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsKinds(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", Invalid("Name and email are required"), http.StatusBadRequest, `{"error":"Name and email are required"}`},
		{"not found", NotFound("User not found"), http.StatusNotFound, `{"error":"User not found"}`},
		{"wrapped validation", fmt.Errorf("users: %w", Invalid("ID is required")), http.StatusBadRequest, `{"error":"users: ID is required"}`},
		{"internal", errors.New("pq: password authentication failed"), http.StatusInternalServerError, `{"error":"Failed to create user"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondError(rr, tc.err, "Failed to create user")
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.body, rr.Body.String())
		})
	}
}

func TestAllowOnlyRejectsOtherMethods(t *testing.T) {
	called := false
	h := AllowOnly(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/users/create", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"Method GET Not Allowed"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/users/create", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":3,"name":"Ada"}`))
	require.NoError(t, DecodeJSON(rr, req, &target))
	assert.EqualValues(t, 3, target.ID)
	assert.Equal(t, "Ada", target.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"three"}`))
	err := DecodeJSON(rr, req, &target)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Invalid request body", err.Error())

	var empty struct {
		ID int64 `json:"id"`
	}
	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	require.NoError(t, DecodeJSON(rr, req, &empty))
	assert.Zero(t, empty.ID)

	big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	err = DecodeJSON(rr, req, &target)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Request body too large", err.Error())
}
