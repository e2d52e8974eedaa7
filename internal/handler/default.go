package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/ballou-sms/internal/response"
)

// Pinger is satisfied by the cache client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves basic root and health endpoints.
type HomeHandler struct {
	appName string
	cache   Pinger
}

// NewHomeHandler returns a new HomeHandler. cache may be nil.
func NewHomeHandler(appName string, cache Pinger) *HomeHandler {
	return &HomeHandler{appName: appName, cache: cache}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to " + h.appName,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Reports whether the API and its cache are reachable.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := response.HealthPayload{
		Status: "ok",
	}

	if h.cache == nil {
		response.RespondJSON(w, http.StatusOK, payload)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		payload.Status = "degraded"
		payload.Cache = "unreachable"
		response.RespondJSON(w, http.StatusServiceUnavailable, payload)
		return
	}

	payload.Cache = "ok"
	response.RespondJSON(w, http.StatusOK, payload)
}
