// Package server exposes the calculation core, scenario store, and
// persisted state over a JSON HTTP API. It stands in for the browser
// UI's backend boundary; rendering stays on the client.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/collegeroi/collegeroi/internal/colleges"
	"github.com/collegeroi/collegeroi/internal/roi"
	"github.com/collegeroi/collegeroi/internal/scenario"
	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/internal/storage"
	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/numeric"
)

type handler struct {
	logger         *zap.Logger
	store          storage.Store
	scenarios      *scenario.Store
	maxRequestSize int64
	version        string

	// mu serializes every mutate-then-persist sequence so the stored
	// blob is always a fully materialized snapshot.
	mu sync.Mutex
}

// NewHandler constructs the HTTP handler serving the plan API. The
// scenario list is hydrated from the persisted blob; a malformed blob
// falls back to defaults without failing construction.
func NewHandler(logger *zap.Logger, store storage.Store, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = storage.NewMemory()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		store:          store,
		scenarios:      scenario.NewStore(logger),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	if persisted := h.loadPersisted(context.Background()); persisted != nil {
		h.scenarios.Load(persisted.Scenarios)
	}

	mux := http.NewServeMux()

	// Plan computation
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Reference dataset
	mux.HandleFunc("/api/colleges", h.handleColleges)
	mux.HandleFunc("/api/colleges/seed", h.handleCollegeSeed)

	// Persisted state blob
	mux.HandleFunc("/api/state", h.handleState)

	// Comparison scenarios
	mux.HandleFunc("/api/scenarios", h.handleScenarios)
	mux.HandleFunc("/api/scenarios/overwrite", h.handleScenarioOverwrite)
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Shareable links
	mux.HandleFunc("/api/share", h.handleShare)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type estimateResponse struct {
	roi.Result
	Duration string `json:"duration"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var snapshot state.Snapshot
	if !h.decodeBody(w, r, &snapshot, "server.handleEstimate") {
		return
	}

	result := roi.Compute(h.logger, snapshot)
	elapsed := time.Since(start)

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("college", result.CollegeName),
		zap.Int("scheduleMonths", len(result.Schedule)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, estimateResponse{Result: result, Duration: elapsed.String()})
}

func (h *handler) handleColleges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	results := colleges.Lookup(r.URL.Query().Get("q"))
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"colleges": results})
}

type seedRequest struct {
	Name          string `json:"name"`
	InflationRate string `json:"inflationRate"`
}

func (h *handler) handleCollegeSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req seedRequest
	if !h.decodeBody(w, r, &req, "server.handleCollegeSeed") {
		return
	}

	college, found := colleges.Find(req.Name)
	if !found {
		h.respondErrorWithOp(w, http.StatusNotFound, "unknown college", "server.handleCollegeSeed")
		return
	}

	snapshot := colleges.SeedDefault(college)
	if !numeric.IsBlank(req.InflationRate) {
		snapshot = colleges.Seed(college, numeric.Coerce(req.InflationRate))
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot": snapshot,
	})
}

func (h *handler) handleState(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleStateLoad(w, r)
	case http.MethodPut:
		h.handleStateSave(w, r)
	case http.MethodDelete:
		h.handleStateClear(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleStateLoad(w http.ResponseWriter, r *http.Request) {
	persisted := h.loadPersisted(r.Context())
	if persisted == nil {
		persisted = state.NewPersistedState()
	}

	// A share payload on load overrides matching keys only; the scenario
	// list and UI toggles stay as persisted.
	if payload := r.URL.Query().Get("share"); payload != "" {
		shared, err := state.DecodeShareable(payload)
		if err != nil {
			h.logger.Warn("ignoring malformed share payload",
				zap.String("op", "server.handleStateLoad"),
				zap.Error(err),
			)
		} else {
			state.ApplyShared(persisted, shared)
		}
	}

	h.writeJSON(w, http.StatusOK, persisted)
}

func (h *handler) handleStateSave(w http.ResponseWriter, r *http.Request) {
	var persisted state.PersistedState
	if !h.decodeBody(w, r, &persisted, "server.handleStateSave") {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// The stored scenario list is authoritative for the session.
	h.scenarios.Load(persisted.Scenarios)
	persisted.Scenarios = h.scenarios.List()

	if err := h.savePersisted(r.Context(), &persisted); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleStateSave")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *handler) handleStateClear(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Clear(r.Context(), constants.StateStorageKey); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleStateClear")
		return
	}
	h.scenarios.Load(nil)
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, map[string]interface{}{"scenarios": h.scenarios.List()})
	case http.MethodPost:
		h.handleScenarioAdd(w, r)
	case http.MethodDelete:
		h.handleScenarioRemove(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleScenarioAdd(w http.ResponseWriter, r *http.Request) {
	var snapshot state.Snapshot
	if !h.decodeBody(w, r, &snapshot, "server.handleScenarioAdd") {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record, err := h.scenarios.Add(snapshot)
	if errors.Is(err, scenario.ErrConfirmRequired) {
		h.writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":           err.Error(),
			"confirmRequired": true,
		})
		return
	}
	if errors.Is(err, scenario.ErrCapacity) {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, err.Error(), "server.handleScenarioAdd")
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleScenarioAdd")
		return
	}

	h.persistScenarios(r.Context(), "server.handleScenarioAdd")
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"scenario": record})
}

func (h *handler) handleScenarioOverwrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var snapshot state.Snapshot
	if !h.decodeBody(w, r, &snapshot, "server.handleScenarioOverwrite") {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record, err := h.scenarios.Overwrite(snapshot)
	if errors.Is(err, scenario.ErrCapacity) {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, err.Error(), "server.handleScenarioOverwrite")
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleScenarioOverwrite")
		return
	}

	h.persistScenarios(r.Context(), "server.handleScenarioOverwrite")
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"scenario": record})
}

func (h *handler) handleScenarioRemove(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing scenario id", "server.handleScenarioRemove")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.scenarios.Remove(id)
	h.persistScenarios(r.Context(), "server.handleScenarioRemove")
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type comparisonEntry struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Metrics scenario.Metrics `json:"metrics"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	records := h.scenarios.List()
	entries := make([]comparisonEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, comparisonEntry{
			ID:      record.ID,
			Name:    record.Name,
			Metrics: scenario.ComputeMetrics(record.Snapshot),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"comparison": entries})
}

func (h *handler) handleShare(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var snapshot state.Snapshot
		if !h.decodeBody(w, r, &snapshot, "server.handleShare") {
			return
		}
		payload, err := state.EncodeShareable(snapshot)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleShare")
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"payload": payload})
	case http.MethodGet:
		payload := r.URL.Query().Get("payload")
		snapshot, err := state.DecodeShareable(payload)
		if err != nil {
			// Decode failure falls back to defaults; it never surfaces
			// as an error to the user.
			h.logger.Warn("malformed share payload",
				zap.String("op", "server.handleShare"),
				zap.Error(err),
			)
			h.writeJSON(w, http.StatusOK, map[string]interface{}{
				"snapshot": state.Snapshot{},
				"decoded":  false,
			})
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]interface{}{
			"snapshot": snapshot,
			"decoded":  true,
		})
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// loadPersisted reads the stored blob, returning nil when it is absent
// or unreadable. A malformed blob is logged and discarded.
func (h *handler) loadPersisted(ctx context.Context) *state.PersistedState {
	blob, found, err := h.store.Load(ctx, constants.StateStorageKey)
	if err != nil {
		h.logger.Warn("failed to load persisted state",
			zap.String("op", "server.loadPersisted"),
			zap.Error(err),
		)
		return nil
	}
	if !found {
		return nil
	}

	persisted, err := state.DecodePersisted(blob)
	if err != nil {
		h.logger.Warn("discarding malformed persisted state",
			zap.String("op", "server.loadPersisted"),
			zap.Error(err),
		)
		return nil
	}
	return persisted
}

// savePersisted serializes a fully materialized state and replaces the
// stored blob whole.
func (h *handler) savePersisted(ctx context.Context, persisted *state.PersistedState) error {
	blob, err := state.EncodePersisted(persisted)
	if err != nil {
		return err
	}
	return h.store.Save(ctx, constants.StateStorageKey, blob)
}

// persistScenarios folds the current scenario list into the stored blob.
// Persistence failures are logged, not surfaced: the in-memory session
// remains authoritative and the worst case is a scenario not saved.
func (h *handler) persistScenarios(ctx context.Context, op string) {
	persisted := h.loadPersisted(ctx)
	if persisted == nil {
		persisted = state.NewPersistedState()
	}
	persisted.Scenarios = h.scenarios.List()

	if err := h.savePersisted(ctx, persisted); err != nil {
		h.logger.Warn("failed to persist scenarios",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge, "request body too large", op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, "failed to decode request body: "+err.Error(), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
