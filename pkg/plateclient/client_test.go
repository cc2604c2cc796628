package plateclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsByPlate(t *testing.T) {
	eventID := uuid.New()
	normalized := "УУ12390"

	var gotToken, gotPlate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/internal/anpr/events", r.URL.Path)
		gotToken = r.Header.Get("X-Internal-Token")
		gotPlate = r.URL.Query().Get("plate")

		resp := map[string]any{
			"data": []Event{{
				ID:              eventID,
				CameraID:        uuid.New(),
				RawPlate:        "YY1239O",
				NormalizedPlate: &normalized,
				DetectedAt:      time.Now().UTC(),
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := New(server.URL, "shared-token")

	events, err := client.EventsByPlate(context.Background(), "YY1239O", time.Now().Add(-time.Hour), time.Now(), nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.Equal(t, &normalized, events[0].NormalizedPlate)
	assert.Equal(t, "shared-token", gotToken)
	assert.Equal(t, "YY1239O", gotPlate)
}

func TestIngest(t *testing.T) {
	eventID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/internal/anpr/events", r.URL.Path)

		var input IngestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "YY1239O", input.Plate)

		normalized := "УУ12390"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": IngestResult{
				EventID:         eventID,
				RawPlate:        input.Plate,
				NormalizedPlate: &normalized,
				Matched:         true,
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, "shared-token")

	result, err := client.Ingest(context.Background(), IngestInput{
		CameraID:  uuid.NewString(),
		Plate:     "YY1239O",
		EventTime: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, eventID, result.EventID)
	assert.True(t, result.Matched)
}

func TestErrorStatusIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid internal token"}`))
	}))
	defer server.Close()

	client := New(server.URL, "wrong")

	_, err := client.EventsByPlate(context.Background(), "YY1239O", time.Now().Add(-time.Hour), time.Now(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestUnconfiguredBaseURL(t *testing.T) {
	client := New("", "token")

	_, err := client.EventsByPlate(context.Background(), "YY1239O", time.Now().Add(-time.Hour), time.Now(), nil)
	require.Error(t, err)

	_, err = client.Ingest(context.Background(), IngestInput{Plate: "YY1239O"})
	require.Error(t, err)
}
