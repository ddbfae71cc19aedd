package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Austin TX, 78701", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lng":-97.74,"lat":30.27}}}]}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint("test-key", srv.URL)
	coords, err := c.Resolve(context.Background(), "Austin TX, 78701")
	require.NoError(t, err)
	assert.InDelta(t, -97.74, coords.Lng, 1e-9)
	assert.InDelta(t, 30.27, coords.Lat, 1e-9)
}

func TestResolveZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint("test-key", srv.URL)
	_, err := c.Resolve(context.Background(), "Nowhere ZZ, 00000")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWithEndpoint("test-key", srv.URL)
	_, err := c.Resolve(context.Background(), "Austin TX")
	assert.Error(t, err)
}
