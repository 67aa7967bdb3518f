package todo

import (
	"net/http"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared"
	"todoapi/shared/constant"
	"todoapi/shared/validator"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Patch("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos lists the oldest todos.
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("todo.count", len(todos))

	response.WithJSON(writer, http.StatusOK, ListTodosResponse{
		Success:  response.NewSuccess(),
		AllToDos: todos,
	})
}

// CreateTodo stores a new todo from {"text": "..."}.
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req, err := dto.NewCreateTodoRequest(decodeTodoBody(request))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid create todo request")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("todo created")

	response.WithJSON(writer, http.StatusCreated, CreateTodoResponse{
		Success: response.NewSuccess(),
		NewTodo: todo,
	})
}

// GetTodoByID returns one todo.
func (handler *Handler) GetTodoByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	scope.SetAttribute("todo.id", id)

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, GetTodoResponse{
		Success: response.NewSuccess(),
		Todo:    todo,
	})
}

// UpdateTodo changes either the text or the done flag of a todo.
func (handler *Handler) UpdateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	scope.SetAttribute("todo.id", id)

	req, err := dto.NewUpdateTodoRequest(decodeTodoBody(request))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("id", id).Msg("invalid update todo request")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(writer, err)

		return
	}

	res := UpdateTodoResponse{Success: response.NewSuccess()}
	res.Data.Todo = todo

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteTodo removes a todo.
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	scope.SetAttribute("todo.id", id)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer, http.StatusOK)
}

// decodeTodoBody reads the request body. A body that is not a JSON object reads as empty,
// leaving the request constructors to reject it with their own message.
func decodeTodoBody(request *http.Request) dto.TodoBody {
	body := dto.TodoBody{}

	if err := validator.Validate(request.Body, &body); err != nil {
		log.Debug().Err(err).Msg("unreadable todo body")

		return dto.TodoBody{}
	}

	return body
}
