package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/infras/postgres"
	"bouncepro-reminder/internal/domains/tenant/model"
	gDto "bouncepro-reminder/shared/dto"
	gRepo "bouncepro-reminder/shared/repository"
)

type Tenant interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tenant, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Tenant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tenant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tenant](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
