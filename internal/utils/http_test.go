package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "auth response", data: models.AuthResponse{Token: "t", User: models.UserProfile{ID: 1, Name: "Ann", Email: "a@b.c"}}, status: http.StatusCreated,
			wantBody: `{"token":"t","user":{"id":1,"name":"Ann","email":"a@b.c"}}`},
		{name: "empty list", data: []models.JobApplication{}, status: http.StatusOK, wantBody: `[]`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "not found status kept", data: map[string]string{"message": "x"}, status: http.StatusNotFound, wantBody: `{"message":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := WriteJSON(rr, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEqual(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestWriteMessage(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteMessage(rr, "Invalid credentials", http.StatusBadRequest)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"message":"Invalid credentials"}`, rr.Body.String())
}
