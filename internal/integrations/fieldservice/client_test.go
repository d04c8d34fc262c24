package fieldservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

func newTestServer(t *testing.T, field *Field) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if field == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(field))
	}))
}

func TestGetActiveField(t *testing.T) {
	srv := newTestServer(t, &Field{
		ID:            7,
		OwnerID:       50,
		Name:          "Willow Meadow",
		IsActive:      true,
		OperatingDays: []string{"Monday", "Tuesday"},
		OpeningTime:   "08:00",
		ClosingTime:   "18:00",
	})
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	field, err := client.GetActiveField(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), field.ID)
	assert.Equal(t, int64(50), field.OwnerID)
	assert.Equal(t, []string{"Monday", "Tuesday"}, field.OperatingDays)
}

func TestGetActiveFieldInactive(t *testing.T) {
	// A delisted field must read as not found so nothing can be scheduled
	// against it.
	srv := newTestServer(t, &Field{ID: 7, OwnerID: 50, IsActive: false})
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	_, err := client.GetActiveField(context.Background(), 7)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGetActiveFieldNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	_, err := client.GetActiveField(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
