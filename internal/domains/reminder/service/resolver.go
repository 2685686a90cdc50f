package service

import (
	"context"

	bookingModel "bouncepro-reminder/internal/domains/booking/model"
	"bouncepro-reminder/shared"
	"bouncepro-reminder/shared/constant"

	"github.com/rs/zerolog/log"
)

// resolveTimezone resolves the booking's delivery address to an IANA
// timezone, degrading to the tenant default on any failure. It never
// returns an error: a wrong-but-present timezone beats blocking the batch.
func (s *serviceImpl) resolveTimezone(ctx context.Context, booking bookingModel.Booking, tenantDefault string) string {
	addr, ok := booking.Address()
	if !ok || !addr.HasLocality() || !s.geo.Enabled() {
		log.Debug().
			Str("bookingID", booking.ID).
			Str("timezone", tenantDefault).
			Msg("No geocodable address or lookup disabled, using tenant timezone")

		return tenantDefault
	}

	formatted := addr.Formatted()
	cacheKey := shared.BuildCacheKey(constant.CacheTimezonePrefix, formatted)

	var zone string
	if err := s.cache.Get(ctx, cacheKey, &zone); err == nil && zone != "" {
		log.Debug().Str("bookingID", booking.ID).Str("timezone", zone).Msg("timezone cache hit for address")

		return zone
	}

	zone, err := s.geo.TimezoneForAddress(ctx, formatted)
	if err != nil {
		log.Warn().
			Err(err).
			Str("bookingID", booking.ID).
			Str("address", formatted).
			Str("timezone", tenantDefault).
			Msg("timezone lookup failed, using tenant timezone")

		return tenantDefault
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, zone, s.cfg.Cache.TimezoneTTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache resolved timezone")
		}
	}()

	return zone
}
