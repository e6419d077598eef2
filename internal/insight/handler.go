// AngelaMos | 2026
// handler.go

package insight

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/insights", report(h.repo.CompanySummaries))
	r.Get("/insights/maior_lucro", report(h.repo.ProfitLeaders))
	r.Get("/pioresdiretores", report(h.repo.LowestRevenueDirectors))
	r.Get("/melhoresdiretores", report(h.repo.SampleDirectors))
	r.Get("/faturamento_por_produto", report(h.repo.ProductsBySales))
	r.Get("/faturamento_mensal_por_empresa", report(h.repo.MonthlyRevenueByCompany))
	r.Get("/media_notas_diretor", report(h.repo.DirectorScores))
}

func report[T any](query func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := query(r.Context())
		if err != nil {
			core.InternalServerError(w, err)
			return
		}

		core.OK(w, rows)
	}
}
