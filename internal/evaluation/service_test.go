// AngelaMos | 2026
// service_test.go

package evaluation

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type memRepo struct {
	rows []Evaluation
}

func (m *memRepo) Create(_ context.Context, e *Evaluation) error {
	e.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*Evaluation, error) {
	for _, e := range m.rows {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) List(_ context.Context) ([]Evaluation, error) {
	return append([]Evaluation{}, m.rows...), nil
}

func (m *memRepo) Update(_ context.Context, e *Evaluation) error {
	for i := range m.rows {
		if m.rows[i].ID == e.ID {
			m.rows[i] = *e
			return nil
		}
	}
	return core.ErrNotFound
}

type companySet map[int64]bool

func (c companySet) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

func ptr[T any](v T) *T { return &v }

func TestEvaluationLifecycle(t *testing.T) {
	svc := NewService(&memRepo{}, companySet{1: true})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEvaluationRequest{
		CompanyID:     ptr(int64(2)),
		DirectorScore: ptr(8),
		CompanyScore:  ptr(7),
		Comment:       ptr(""),
	})
	assert.True(t, core.IsAppError(err))

	e, err := svc.Create(ctx, CreateEvaluationRequest{
		CompanyID:     ptr(int64(1)),
		DirectorScore: ptr(8),
		CompanyScore:  ptr(7),
		Comment:       ptr("solid year"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, e.ID, UpdateEvaluationRequest{DirectorScore: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, Evaluation{
		ID:            e.ID,
		CompanyID:     1,
		DirectorScore: 3,
		CompanyScore:  7,
		Comment:       "solid year",
	}, *updated)

	_, err = svc.Update(ctx, 77, UpdateEvaluationRequest{})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateIgnoresCompanyField(t *testing.T) {
	repo := &memRepo{rows: []Evaluation{{ID: 1, CompanyID: 1, DirectorScore: 5, CompanyScore: 5}}}
	r := chi.NewRouter()
	NewHandler(NewService(repo, companySet{1: true, 2: true})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/avaliacoes/1",
		bytes.NewBufferString(`{"id_empresa":2,"comentario":"moved?"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), repo.rows[0].CompanyID)
	assert.Equal(t, "moved?", repo.rows[0].Comment)
}

func TestCreateRequiresCommentKey(t *testing.T) {
	repo := &memRepo{}
	r := chi.NewRouter()
	NewHandler(NewService(repo, companySet{1: true})).RegisterRoutes(r)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing", `{"id_empresa":1,"nota_diretor":8,"nota_geral_empresa":7}`, http.StatusBadRequest},
		{"null", `{"id_empresa":1,"nota_diretor":8,"nota_geral_empresa":7,"comentario":null}`, http.StatusBadRequest},
		{"empty", `{"id_empresa":1,"nota_diretor":8,"nota_geral_empresa":7,"comentario":""}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/avaliacoes/",
				bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	require.Len(t, repo.rows, 1)
	assert.Empty(t, repo.rows[0].Comment)
}
