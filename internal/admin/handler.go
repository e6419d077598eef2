// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

type RedisProbe interface {
	Ping(ctx context.Context) error
	PoolStats() *redis.PoolStats
}

// Handler reports operational state of the running instance. Redis is
// nil when the service runs without it; the redis section is then left
// out of the responses.
type Handler struct {
	db      DatabaseProbe
	redis   RedisProbe
	records Repository
}

func NewHandler(db DatabaseProbe, redis RedisProbe, records Repository) *Handler {
	return &Handler{
		db:      db,
		redis:   redis,
		records: records,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/db", h.GetDatabaseStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
		r.Get("/stats/records", h.GetRecordCounts)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: h.db.Ping(ctx) == nil,
			Stats:   dbPoolStats(h.db.Stats()),
		},
		Runtime: readRuntimeStats(),
	}

	if h.redis != nil {
		response.Redis = &RedisStatus{
			Healthy: h.redis.Ping(ctx) == nil,
			Stats:   redisPoolStats(h.redis.PoolStats()),
		}
	}

	core.OK(w, response)
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, dbPoolStats(h.db.Stats()))
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	if h.redis == nil {
		core.NotFound(w, "redis")
		return
	}
	core.OK(w, redisPoolStats(h.redis.PoolStats()))
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, readRuntimeStats())
}

func (h *Handler) GetRecordCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.records.CountRecords(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, counts)
}

func readRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

func dbPoolStats(stats sql.DBStats) DBPoolStats {
	return DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxIdleTimeClosed:  stats.MaxIdleTimeClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func redisPoolStats(stats *redis.PoolStats) RedisPoolStats {
	return RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    *RedisStatus   `json:"redis,omitempty"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool        `json:"healthy"`
	Stats   DBPoolStats `json:"stats"`
}

type RedisStatus struct {
	Healthy bool           `json:"healthy"`
	Stats   RedisPoolStats `json:"stats"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
	MaxIdleClosed      int64  `json:"max_idle_closed"`
	MaxIdleTimeClosed  int64  `json:"max_idle_time_closed"`
	MaxLifetimeClosed  int64  `json:"max_lifetime_closed"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
