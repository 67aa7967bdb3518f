package landing

import (
	"net/http"

	"todoapi/public"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	page []byte
}

func New() Handler {
	return Handler{
		page: public.IndexHTML,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
}

// Index serves the landing page.
func (handler *Handler) Index(writer http.ResponseWriter, _ *http.Request) {
	response.WithHTML(writer, http.StatusOK, handler.page)
}
