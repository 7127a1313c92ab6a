package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/agenthub/docs"
	"github.com/mtlprog/agenthub/internal/config"
	"github.com/mtlprog/agenthub/internal/directory"
	"github.com/mtlprog/agenthub/internal/handler/dto"
	"github.com/mtlprog/agenthub/internal/middleware"
	"github.com/mtlprog/agenthub/internal/render"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	dir      *directory.Directory
	page     []byte
	pageETag string
}

// New creates a Handler. The landing page is rendered once here: the
// directory never changes while the process runs.
func New(dir *directory.Directory, renderer *render.Renderer) (*Handler, error) {
	page, err := renderer.RenderBytes(dir)
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}

	sum := sha256.Sum256(page)

	return &Handler{
		dir:      dir,
		page:     page,
		pageETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health checks
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.HandleFunc("GET /api/health", h.handleHealth)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	// API
	mux.HandleFunc("GET /api/agents", h.handleListAgents)
	mux.HandleFunc("GET /api/agents/{id}", h.handleGetAgent)
	mux.HandleFunc("GET /api/", h.handleAPINotFound)

	// Everything else is the landing page
	mux.HandleFunc("GET /", h.handlePage)
}

// Routes returns the full handler chain: routes wrapped in request logging
// and CORS.
func (h *Handler) Routes(allowedOrigin string) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	return middleware.RequestLogger(middleware.CORS(allowedOrigin)(mux))
}

// handleHealthz returns 200 OK while the process is serving.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleHealth reports service identity.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
		Version: config.Version,
	})
}

// handlePage serves the pre-rendered landing page.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.pageETag)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Header.Get("If-None-Match") == h.pageETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page); err != nil {
		slog.Debug("failed to write landing page", "error", err)
	}
}

func (h *Handler) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "no such endpoint")
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err and writes it.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}
