package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lessons/infras/otel"
	"lessons/infras/postgres"
	"lessons/internal/domains/lesson/model"
	gDto "lessons/shared/dto"
	gRepo "lessons/shared/repository"
)

type LessonBooking interface {
	Insert(ctx context.Context, model model.LessonBooking) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LessonBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LessonBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) LessonBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LessonBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
