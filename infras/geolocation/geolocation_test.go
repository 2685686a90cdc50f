package geolocation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/geolocation"
	otelMocks "bouncepro-reminder/infras/otel/mocks"
	"bouncepro-reminder/shared/failure"
)

func newGeolocator(geocodingURL, timezoneURL, apiKey string) geolocation.Geolocator {
	cfg := &config.Config{}
	cfg.External.GoogleMaps.APIKey = apiKey
	cfg.External.GoogleMaps.GeocodingURL = geocodingURL
	cfg.External.GoogleMaps.TimezoneURL = timezoneURL
	cfg.External.GoogleMaps.TimeoutSeconds = 2

	return geolocation.New(cfg, otelMocks.NewOtel())
}

func TestGoogleMaps_Enabled(t *testing.T) {
	assert.True(t, newGeolocator("", "", "key-123").Enabled())
	assert.False(t, newGeolocator("", "", "").Enabled())
}

func TestGoogleMaps_TimezoneForAddress(t *testing.T) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123 Main St, Springfield, IL", r.URL.Query().Get("address"))
		assert.Equal(t, "key-123", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 39.7817, "lng": -89.6501}}}]
		}`))
	}))
	defer geocode.Close()

	tz := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("location"))
		assert.NotEmpty(t, r.URL.Query().Get("timestamp"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "timeZoneId": "America/Chicago"}`))
	}))
	defer tz.Close()

	geo := newGeolocator(geocode.URL, tz.URL, "key-123")

	zone, err := geo.TimezoneForAddress(context.Background(), "123 Main St, Springfield, IL")

	assert.NoError(t, err)
	assert.Equal(t, "America/Chicago", zone)
}

func TestGoogleMaps_TimezoneForAddress_NoGeocodeResults(t *testing.T) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer geocode.Close()

	geo := newGeolocator(geocode.URL, "http://unused.invalid", "key-123")

	_, err := geo.TimezoneForAddress(context.Background(), "nowhere at all")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGoogleMaps_TimezoneForAddress_TimezoneStatusNotOK(t *testing.T) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 1, "lng": 2}}}]
		}`))
	}))
	defer geocode.Close()

	tz := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT"}`))
	}))
	defer tz.Close()

	geo := newGeolocator(geocode.URL, tz.URL, "key-123")

	_, err := geo.TimezoneForAddress(context.Background(), "123 Main St")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestGoogleMaps_TimezoneForAddress_ServerError(t *testing.T) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer geocode.Close()

	geo := newGeolocator(geocode.URL, "http://unused.invalid", "key-123")

	_, err := geo.TimezoneForAddress(context.Background(), "123 Main St")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
