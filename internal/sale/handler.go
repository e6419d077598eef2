// AngelaMos | 2026
// handler.go

package sale

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

const resourceName = "product sale"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

// RegisterRoutes also serves the list under /produtos, the older name
// for the same collection.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/produtos_vendidos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
	})
	r.Get("/produtos", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductSoldResponseList(sales))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductSoldRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	ps, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.ServiceError(w, err, resourceName)
		return
	}

	core.OK(w, ToProductSoldResponse(ps))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.BadRequest(w, "invalid id")
		return
	}

	var req UpdateProductSoldRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	ps, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.ServiceError(w, err, resourceName)
		return
	}

	core.OK(w, ToProductSoldResponse(ps))
}
