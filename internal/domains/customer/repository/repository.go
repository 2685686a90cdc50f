package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/infras/postgres"
	"bouncepro-reminder/internal/domains/customer/model"
	gDto "bouncepro-reminder/shared/dto"
	gRepo "bouncepro-reminder/shared/repository"
)

type Customer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
