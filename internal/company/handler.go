// AngelaMos | 2026
// handler.go

package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

const resourceName = "company"

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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/empresas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCompanyResponseList(companies))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	company, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.ServiceError(w, err, resourceName)
		return
	}

	core.OK(w, ToCompanyResponse(company))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.BadRequest(w, "invalid id")
		return
	}

	var req UpdateCompanyRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	company, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.ServiceError(w, err, resourceName)
		return
	}

	core.OK(w, ToCompanyResponse(company))
}
