// Package chi implements the HTTP API over the storage facade: a hand-routed
// chi router, bearer-key auth and JSON error mapping from domain sentinels.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	healthuc "github.com/fluxkit-io/fieldstore/internal/usecase/health"
	storageuc "github.com/fluxkit-io/fieldstore/internal/usecase/storage"
)

// Error response codes.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeConflict      = "conflict"
	codeValidation    = "validation_failed"
	codeInternalError = "internal_error"
)

// errorResponse is the JSON error body of every non-2xx reply.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes the HTTP API onto the storage facade.
type Server struct {
	storage       *storageuc.Facade
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(storage *storageuc.Facade, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		storage: storage,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeConflict),
		sentinelHandler(domain.ErrTypeImmutable, http.StatusConflict, codeConflict),
		sentinelHandler(domain.ErrInvalidName, http.StatusBadRequest, codeValidation),
		sentinelHandler(domain.ErrInvalidField, http.StatusBadRequest, codeValidation),
		sentinelHandler(domain.ErrInvalidValue, http.StatusBadRequest, codeValidation),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeValidation),
		sentinelHandler(domain.ErrUnknownFieldType, http.StatusBadRequest, codeValidation),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Route("/fields", func(r chi.Router) {
			r.Get("/", s.ListFields)
			r.Get("/table", s.FieldTable)
			r.Post("/positions", s.SetFieldPositions)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.GetField)
				r.Put("/", s.StoreField)
				r.Delete("/", s.DeleteField)
				r.Post("/move-up", s.MoveFieldUp)
				r.Post("/move-down", s.MoveFieldDown)
			})
		})
		r.Get("/field-inputs", s.FieldInputs)
		r.Get("/field-type-inputs", s.FieldTypeInputs)

		r.Route("/values", func(r chi.Router) {
			r.Get("/", s.ListValues)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.GetValue)
				r.Put("/", s.StoreValue)
				r.Patch("/", s.PatchValue)
				r.Delete("/", s.DeleteValue)
				r.Get("/text", s.ValueAsText)
				r.Get("/format", s.ValueAsFormat)
				r.Get("/inputs", s.ValueInputs)
			})
		})
		r.Get("/value-table", s.ValueTable)
		r.Get("/new-value-inputs", s.NewValueInputs)
		r.Get("/value-filter-inputs", s.ValueFilterInputs)
	})
}

// --- field handlers ---

// ListFields handles GET /api/fields.
func (s *Server) ListFields(w http.ResponseWriter, r *http.Request) {
	fields, err := s.storage.Fields(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fieldsToView(fields))
}

// GetField handles GET /api/fields/{name}.
func (s *Server) GetField(w http.ResponseWriter, r *http.Request) {
	f, err := s.storage.Field(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fieldToView(f))
}

// StoreField handles PUT /api/fields/{name}.
func (s *Server) StoreField(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	name := chi.URLParam(r, "name")
	if err := s.storage.StoreField(r.Context(), name, req.toDomain(name)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteField handles DELETE /api/fields/{name}.
func (s *Server) DeleteField(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteField(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveFieldUp handles POST /api/fields/{name}/move-up.
func (s *Server) MoveFieldUp(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MoveFieldUp(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveFieldDown handles POST /api/fields/{name}/move-down.
func (s *Server) MoveFieldDown(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MoveFieldDown(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFieldPositions handles POST /api/fields/positions.
func (s *Server) SetFieldPositions(w http.ResponseWriter, r *http.Request) {
	var req positionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.storage.SetFieldPositions(r.Context(), req.Names); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FieldInputs handles GET /api/field-inputs. Exactly one of ?type= and ?name=
// selects the definition editor schema.
func (s *Server) FieldInputs(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	name := r.URL.Query().Get("name")

	inputs, err := s.storage.FieldInputs(r.Context(), typ, name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inputs)
}

// FieldTypeInputs handles GET /api/field-type-inputs.
func (s *Server) FieldTypeInputs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.storage.FieldTypeInputs())
}

// FieldTable handles GET /api/fields/table.
func (s *Server) FieldTable(w http.ResponseWriter, r *http.Request) {
	table, err := s.storage.FieldTable(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// --- value handlers ---

// ListValues handles GET /api/values; query parameters form the filter.
func (s *Server) ListValues(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	values, err := s.storage.Values(r.Context(), filter)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// GetValue handles GET /api/values/{name}.
func (s *Server) GetValue(w http.ResponseWriter, r *http.Request) {
	v, err := s.storage.Value(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// StoreValue handles PUT /api/values/{name}: a full store, unmentioned fields
// reset to their no-value form.
func (s *Server) StoreValue(w http.ResponseWriter, r *http.Request) {
	s.storeValue(w, r, false)
}

// PatchValue handles PATCH /api/values/{name}: a partial store, unmentioned
// fields keep their stored value.
func (s *Server) PatchValue(w http.ResponseWriter, r *http.Request) {
	s.storeValue(w, r, true)
}

func (s *Server) storeValue(w http.ResponseWriter, r *http.Request, keepOthers bool) {
	var values []domvalue.NamedValue
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.storage.StoreValue(r.Context(), chi.URLParam(r, "name"), values, keepOthers); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteValue handles DELETE /api/values/{name}.
func (s *Server) DeleteValue(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteValue(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValueAsText handles GET /api/values/{name}/text.
func (s *Server) ValueAsText(w http.ResponseWriter, r *http.Request) {
	texts, err := s.storage.ValueAsText(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, texts)
}

// ValueAsFormat handles GET /api/values/{name}/format.
func (s *Server) ValueAsFormat(w http.ResponseWriter, r *http.Request) {
	formats, err := s.storage.ValueAsFormat(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formats)
}

// ValueInputs handles GET /api/values/{name}/inputs.
func (s *Server) ValueInputs(w http.ResponseWriter, r *http.Request) {
	inputs, err := s.storage.ValueInputs(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inputs)
}

// NewValueInputs handles GET /api/new-value-inputs.
func (s *Server) NewValueInputs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.storage.NewValueInputs())
}

// ValueFilterInputs handles GET /api/value-filter-inputs.
func (s *Server) ValueFilterInputs(w http.ResponseWriter, r *http.Request) {
	inputs, err := s.storage.ValueFilterInputs(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inputs)
}

// ValueTable handles GET /api/value-table; query parameters form the filter.
func (s *Server) ValueTable(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	table, err := s.storage.ValueTable(r.Context(), filter)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// --- operational handlers ---

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- error plumbing ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrTypeImmutable,
		domain.ErrInvalidName,
		domain.ErrInvalidField,
		domain.ErrInvalidValue,
		domain.ErrInvalidFilter,
		domain.ErrUnknownFieldType,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
