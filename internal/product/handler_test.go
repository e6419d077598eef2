// AngelaMos | 2026
// handler_test.go

package product

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type memRepo struct {
	rows []Detail
}

func (m *memRepo) Create(_ context.Context, d *Detail) error {
	d.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *d)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*Detail, error) {
	for _, d := range m.rows {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) List(_ context.Context) ([]Detail, error) {
	return append([]Detail{}, m.rows...), nil
}

func (m *memRepo) Update(_ context.Context, d *Detail) error {
	for i := range m.rows {
		if m.rows[i].ID == d.ID {
			m.rows[i] = *d
			return nil
		}
	}
	return core.ErrNotFound
}

type companySet map[int64]bool

func (c companySet) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	return rec
}

func TestDetailCreateAndUpdate(t *testing.T) {
	repo := &memRepo{}
	r := chi.NewRouter()
	NewHandler(NewService(repo, companySet{1: true})).RegisterRoutes(r)

	rec := send(r, http.MethodPost, "/detalhes_produtos/", `{
		"id_empresa": 1,
		"nome_produto": "Widget",
		"categoria": "Tools",
		"preco_unitario": 9.5,
		"margem_lucro_percentual": 12.5,
		"data_lancamento": "2023-04-01"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created DetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, core.NewDate(2023, time.April, 1), created.LaunchDate)

	rec = send(r, http.MethodPut, "/detalhes_produtos/1", `{"data_lancamento":"2024-01-31"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"data_lancamento":"2024-01-31"`)
	assert.Equal(t, "Widget", repo.rows[0].Name)
	assert.Equal(t, 9.5, repo.rows[0].UnitPrice)
}

func TestDetailCreateRejects(t *testing.T) {
	tests := map[string]struct {
		body   string
		status int
	}{
		"bad date": {
			`{"id_empresa":1,"nome_produto":"W","categoria":"T","preco_unitario":1,"margem_lucro_percentual":1,"data_lancamento":"01/04/2023"}`,
			http.StatusBadRequest,
		},
		"missing price": {
			`{"id_empresa":1,"nome_produto":"W","categoria":"T","margem_lucro_percentual":1,"data_lancamento":"2023-04-01"}`,
			http.StatusBadRequest,
		},
		"unknown company": {
			`{"id_empresa":8,"nome_produto":"W","categoria":"T","preco_unitario":1,"margem_lucro_percentual":1,"data_lancamento":"2023-04-01"}`,
			http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := chi.NewRouter()
			NewHandler(NewService(&memRepo{}, companySet{1: true})).RegisterRoutes(r)

			assert.Equal(t, tt.status, send(r, http.MethodPost, "/detalhes_produtos/", tt.body).Code)
		})
	}
}
