package service

import (
	"context"
	"fmt"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/shared"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// List returns the oldest todos first, at most constant.ListLimit of them.
func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		Limit:   constant.ListLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound(dto.MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

// Update writes the single column chosen by req. A missing todo shows up as zero returned rows.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	columns := req.ToColumns()
	if len(columns) == 0 {
		return res, failure.BadRequestFromString(dto.MessageUpdateInvalid) // nolint:wrapcheck
	}

	todo, err := s.repo.Update(ctx, columns, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound(dto.MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

// Delete checks for the todo and deletes it as two separate statements. A concurrent delete
// between them surfaces as zero affected rows.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound(dto.MessageNotFound) // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		log.Warn().Int64("id", id).Msg("todo vanished between existence check and delete")

		return failure.NotFound(dto.MessageDeleteFailed) // nolint:wrapcheck
	}

	return nil
}
