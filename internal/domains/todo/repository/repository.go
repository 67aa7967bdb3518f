package repository

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"todoapi/infras/database"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	gDto "todoapi/shared/dto"
	gRepo "todoapi/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Todo, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *database.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
