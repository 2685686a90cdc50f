//go:build wireinject
// +build wireinject

package di

import (
	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/geolocation"
	"bouncepro-reminder/infras/mailer"
	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/infras/postgres"
	"bouncepro-reminder/infras/redis"
	"bouncepro-reminder/internal/scheduler"
	"bouncepro-reminder/shared/cache"
	"bouncepro-reminder/transport/http"

	bookingRepository "bouncepro-reminder/internal/domains/booking/repository"
	customerRepository "bouncepro-reminder/internal/domains/customer/repository"
	reminderService "bouncepro-reminder/internal/domains/reminder/service"
	tenantRepository "bouncepro-reminder/internal/domains/tenant/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	geolocation.New,
	mailer.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	bookingRepository.New,
	customerRepository.New,
	tenantRepository.New,
	reminderService.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		scheduler.New,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return nil
}
