package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Probe and check states.
const (
	statusOK      = "ok"
	statusPending = "pending"
	statusDown    = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// schemaState reports how far the database schema has been migrated.
type schemaState interface {
	HasPending(ctx context.Context) (bool, error)
	GetDBVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      pinger
	schema  schemaState
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil to skip the
// migration check.
func NewHealthHandler(db pinger, schema schemaState, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthReport is the JSON body of every probe.
type HealthReport struct {
	Status    string           `json:"status"`
	Version   string           `json:"version,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Check is the outcome of a single dependency check.
type Check struct {
	Status        string `json:"status"`
	Latency       string `json:"latency,omitempty"`
	SchemaVersion int64  `json:"schemaVersion,omitempty"`
}

// Live always reports ok; it touches no dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthReport{Status: statusOK, Timestamp: time.Now()})
}

// Ready reports 200 only when the database answers and no migrations are
// pending, so traffic is not routed to an instance running on an old schema.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	report := h.check(r.Context())
	writeJSON(w, report.httpStatus(), report)
}

// Health is Ready plus the build version and per-check latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.check(r.Context())
	report.Version = h.version
	writeJSON(w, report.httpStatus(), report)
}

func (h *HealthHandler) check(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	report := HealthReport{
		Status:    statusOK,
		Checks:    make(map[string]Check, 2),
		Timestamp: time.Now(),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		report.Checks["database"] = Check{Status: statusDown}
		report.Status = statusDown
		return report
	}
	report.Checks["database"] = Check{Status: statusOK, Latency: time.Since(start).String()}

	if h.schema != nil {
		schema := h.checkSchema(ctx)
		report.Checks["schema"] = schema
		report.Status = schema.Status
	}
	return report
}

func (h *HealthHandler) checkSchema(ctx context.Context) Check {
	pending, err := h.schema.HasPending(ctx)
	if err != nil {
		return Check{Status: statusDown}
	}
	version, err := h.schema.GetDBVersion(ctx)
	if err != nil {
		return Check{Status: statusDown}
	}
	if pending {
		return Check{Status: statusPending, SchemaVersion: version}
	}
	return Check{Status: statusOK, SchemaVersion: version}
}

func (r HealthReport) httpStatus() int {
	if r.Status != statusOK {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
