// AngelaMos | 2026
// service_test.go

package sale

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type memRepo struct {
	rows []ProductSold
}

func (m *memRepo) Create(_ context.Context, ps *ProductSold) error {
	ps.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *ps)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*ProductSold, error) {
	for _, ps := range m.rows {
		if ps.ID == id {
			return &ps, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) List(_ context.Context) ([]ProductSold, error) {
	return append([]ProductSold{}, m.rows...), nil
}

func (m *memRepo) Update(_ context.Context, ps *ProductSold) error {
	for i := range m.rows {
		if m.rows[i].ID == ps.ID {
			m.rows[i] = *ps
			return nil
		}
	}
	return core.ErrNotFound
}

type revenueSet map[int64]bool

func (s revenueSet) Exists(_ context.Context, id int64) (bool, error) {
	return s[id], nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateRequiresExistingRevenue(t *testing.T) {
	svc := NewService(&memRepo{}, revenueSet{3: true})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductSoldRequest{
		RevenueID:   ptr(int64(4)),
		ProductName: "Widget",
		Quantity:    ptr(5),
	})
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	ps, err := svc.Create(ctx, CreateProductSoldRequest{
		RevenueID:   ptr(int64(3)),
		ProductName: "Widget",
		Quantity:    ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, ps.Quantity)
}

func TestUpdateKeepsAbsentFields(t *testing.T) {
	svc := NewService(&memRepo{}, revenueSet{1: true})
	ctx := context.Background()

	ps, err := svc.Create(ctx, CreateProductSoldRequest{
		RevenueID:   ptr(int64(1)),
		ProductName: "Widget",
		Quantity:    ptr(5),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ps.ID, UpdateProductSoldRequest{Quantity: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, ProductSold{ID: ps.ID, RevenueID: 1, ProductName: "Widget", Quantity: 9}, *updated)

	_, err = svc.Update(ctx, ps.ID, UpdateProductSoldRequest{RevenueID: ptr(int64(2))})
	assert.True(t, core.IsAppError(err))
}

func TestListServedUnderBothPaths(t *testing.T) {
	repo := &memRepo{rows: []ProductSold{{ID: 1, RevenueID: 1, ProductName: "Widget", Quantity: 2}}}
	r := chi.NewRouter()
	NewHandler(NewService(repo, revenueSet{})).RegisterRoutes(r)

	for _, path := range []string{"/produtos_vendidos/", "/produtos"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var list []ProductSoldResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "Widget", list[0].ProductName)
	}
}

func TestQuantityMustFitIntegerColumn(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(&memRepo{rows: []ProductSold{{ID: 1, RevenueID: 1, ProductName: "Widget"}}},
		revenueSet{1: true})).RegisterRoutes(r)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"negative", http.MethodPost, "/produtos_vendidos/",
			`{"id_faturamento":1,"nome_produto":"Widget","produtos_vendidos":-1}`, http.StatusBadRequest},
		{"above int32", http.MethodPost, "/produtos_vendidos/",
			`{"id_faturamento":1,"nome_produto":"Widget","produtos_vendidos":2147483648}`, http.StatusBadRequest},
		{"int32 max", http.MethodPost, "/produtos_vendidos/",
			`{"id_faturamento":1,"nome_produto":"Widget","produtos_vendidos":2147483647}`, http.StatusOK},
		{"update above int32", http.MethodPut, "/produtos_vendidos/1",
			`{"produtos_vendidos":2147483648}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}
