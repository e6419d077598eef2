// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct{ pingErr error }

func (f fakeDB) Ping(context.Context) error { return f.pingErr }
func (fakeDB) Stats() sql.DBStats { return sql.DBStats{MaxOpenConnections: 25, InUse: 2} }

type fakeRedis struct{}

func (fakeRedis) Ping(context.Context) error { return nil }
func (fakeRedis) PoolStats() *redis.PoolStats { return &redis.PoolStats{Hits: 3, TotalConns: 1} }

func passThrough(next http.Handler) http.Handler { return next }

func newRouter(t *testing.T, db DatabaseProbe, rp RedisProbe) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	r := chi.NewRouter()
	NewHandler(db, rp, NewRepository(sqlx.NewDb(conn, "sqlmock"))).RegisterRoutes(r, passThrough)
	return r, mock
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSystemStatsWithoutRedis(t *testing.T) {
	r, _ := newRouter(t, fakeDB{pingErr: errors.New("down")}, nil)

	rec := get(r, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotContains(t, body, "redis")

	var db DatabaseStatus
	require.NoError(t, json.Unmarshal(body["database"], &db))
	assert.False(t, db.Healthy)
	assert.Equal(t, 25, db.Stats.MaxOpenConnections)

	assert.Equal(t, http.StatusNotFound, get(r, "/admin/stats/redis").Code)
}

func TestSystemStatsWithRedis(t *testing.T) {
	r, _ := newRouter(t, fakeDB{}, fakeRedis{})

	rec := get(r, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Redis)
	assert.True(t, body.Redis.Healthy)
	assert.Equal(t, uint32(3), body.Redis.Stats.Hits)
}

func TestRecordCounts(t *testing.T) {
	r, mock := newRouter(t, fakeDB{}, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM companies")).
		WillReturnRows(sqlmock.NewRows([]string{
			"users", "companies", "revenues", "products_sold", "product_details", "director_evaluations",
		}).AddRow(1, 2, 3, 4, 5, 6))

	rec := get(r, "/admin/stats/records")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts RecordCounts
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&counts))
	assert.Equal(t, RecordCounts{
		Users: 1, Companies: 2, Revenues: 3, ProductsSold: 4, ProductDetails: 5, Evaluations: 6,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
