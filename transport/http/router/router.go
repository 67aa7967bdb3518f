package router

import (
	"todoapi/internal/handlers/landing"
	"todoapi/internal/handlers/todo"
	"todoapi/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Landing landing.Handler
	Todo    todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Landing.Router(router)
	r.DomainHandlers.Todo.Router(router)

	router.Handle("/metrics", middleware.MetricsHandler())
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
