package geolocation

//go:generate go run go.uber.org/mock/mockgen -source=./geolocation.go -destination=./mocks/geolocation_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/shared/constant"
	"bouncepro-reminder/shared/failure"
)

// Geolocator resolves a formatted street address to an IANA timezone
// identifier through an external lookup service.
type Geolocator interface {
	// Enabled reports whether the lookup service is configured at all.
	// When false, TimezoneForAddress must not be called.
	Enabled() bool

	// TimezoneForAddress geocodes the address and resolves the timezone at
	// the resulting coordinates for the current instant.
	TimezoneForAddress(ctx context.Context, address string) (string, error)
}

type googleMaps struct {
	cfg  *config.Config
	hc   *http.Client
	otel otel.Otel
}

// New builds the Google Maps backed geolocator. Both the geocoding and the
// timezone call share one bounded-timeout client so a slow lookup can never
// stall a whole reminder batch.
func New(cfg *config.Config, ot otel.Otel) Geolocator {
	return &googleMaps{
		cfg:  cfg,
		hc:   &http.Client{Timeout: time.Duration(cfg.External.GoogleMaps.TimeoutSeconds) * time.Second},
		otel: ot,
	}
}

func (g *googleMaps) Enabled() bool {
	return g.cfg.External.GoogleMaps.APIKey != ""
}

func (g *googleMaps) TimezoneForAddress(ctx context.Context, address string) (res string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".geolocation.TimezoneForAddress")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("geolocation.address", address)

	lat, lng, err := g.geocode(ctx, address)
	if err != nil {
		return "", err
	}

	zone, err := g.timezoneAt(ctx, lat, lng)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("address", address).
		Float64("lat", lat).
		Float64("lng", lng).
		Str("timezone", zone).
		Msg("Resolved timezone for address")

	return zone, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *googleMaps) geocode(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.cfg.External.GoogleMaps.APIKey)

	var res geocodeResponse

	if err := g.getJSON(ctx, g.cfg.External.GoogleMaps.GeocodingURL, params, &res); err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}

	if len(res.Results) == 0 {
		return 0, 0, failure.NotFound(fmt.Sprintf("no geocoding results for address %q (status %s)", address, res.Status))
	}

	loc := res.Results[0].Geometry.Location

	return loc.Lat, loc.Lng, nil
}

type timezoneResponse struct {
	Status     string `json:"status"`
	TimeZoneID string `json:"timeZoneId"`
}

func (g *googleMaps) timezoneAt(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("key", g.cfg.External.GoogleMaps.APIKey)

	var res timezoneResponse

	if err := g.getJSON(ctx, g.cfg.External.GoogleMaps.TimezoneURL, params, &res); err != nil {
		return "", fmt.Errorf("timezone request failed: %w", err)
	}

	if res.Status != "OK" || res.TimeZoneID == "" {
		return "", fmt.Errorf("timezone lookup returned status %s", res.Status)
	}

	return res.TimeZoneID, nil
}

func (g *googleMaps) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
