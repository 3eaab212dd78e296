package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "12 High Street, Bristol, GB", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"latitude":51.4545,"longitude":-2.5879,"label":"12 High Street, Bristol, United Kingdom"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)

	result, err := client.Geocode(context.Background(), "12 High Street, Bristol, GB")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 51.4545, result.Latitude)
	assert.Equal(t, -2.5879, result.Longitude)
	assert.Contains(t, result.Label, "Bristol")
}

func TestClientGeocodeNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)

	result, err := client.Geocode(context.Background(), "asdfghjkl")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestClientGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)

	_, err := client.Geocode(context.Background(), "somewhere")
	assert.Error(t, err)
}

func TestClientGeocodeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, "test-key", time.Second)

	_, err := client.Geocode(context.Background(), "somewhere")
	assert.Error(t, err)
}

func TestNoopGeocoderAcceptsEverything(t *testing.T) {
	result, err := NoopGeocoder{}.Geocode(context.Background(), "anywhere at all")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "anywhere at all", result.Label)
}
